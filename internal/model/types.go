package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Template identifies one of the starter-kit repositories that can be
// scaffolded. The set is closed: unsupported values are rejected at parse
// time instead of falling through to a default.
type Template string

const (
	// TemplateExpressAPI is the plain Express.js REST API starter.
	TemplateExpressAPI Template = "express-api"

	// TemplateExpressSequelize is the Express.js starter wired to
	// Sequelize and a relational database.
	TemplateExpressSequelize Template = "express-api-sequelize"

	// TemplateNextJS is the Next.js application starter.
	TemplateNextJS Template = "nextjs-starter"
)

// Templates returns all supported templates in display order.
// The prompt layer uses this to build the selection list.
func Templates() []Template {
	return []Template{TemplateExpressAPI, TemplateExpressSequelize, TemplateNextJS}
}

// String returns the string representation of the Template.
// This is also the repository name under the template origin.
func (t Template) String() string {
	return string(t)
}

// IsValid checks whether the Template value is one of the supported starters.
func (t Template) IsValid() bool {
	switch t {
	case TemplateExpressAPI, TemplateExpressSequelize, TemplateNextJS:
		return true
	default:
		return false
	}
}

// ParseTemplate converts a string to a Template.
// Returns an error if the string does not match any supported starter.
func ParseTemplate(s string) (Template, error) {
	t := Template(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown template %q (valid: express-api, express-api-sequelize, nextjs-starter)", s)
	}
	return t, nil
}

// PackageManager identifies the tool used to install the scaffolded
// project's dependencies. The set is closed: an unrecognized value is a
// validation error, never a silent fallback to npm.
type PackageManager string

const (
	// PackageManagerYarn installs with `yarn`.
	PackageManagerYarn PackageManager = "yarn"

	// PackageManagerPnpm installs with `pnpm install`.
	PackageManagerPnpm PackageManager = "pnpm"

	// PackageManagerNpm installs with `npm install`.
	PackageManagerNpm PackageManager = "npm"
)

// PackageManagers returns all supported package managers in display order.
func PackageManagers() []PackageManager {
	return []PackageManager{PackageManagerYarn, PackageManagerPnpm, PackageManagerNpm}
}

// String returns the string representation of the PackageManager.
// This is also the name of the binary invoked for the install step.
func (p PackageManager) String() string {
	return string(p)
}

// IsValid checks whether the PackageManager value is one of the
// supported tools.
func (p PackageManager) IsValid() bool {
	switch p {
	case PackageManagerYarn, PackageManagerPnpm, PackageManagerNpm:
		return true
	default:
		return false
	}
}

// ParsePackageManager converts a string to a PackageManager.
// Returns an error if the string does not match any supported tool.
func ParsePackageManager(s string) (PackageManager, error) {
	p := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown package manager %q (valid: yarn, pnpm, npm)", s)
	}
	return p, nil
}

// InstallArgs returns the exact argv for the install command.
// Yarn installs with the bare `yarn` command; pnpm and npm take an
// explicit `install` subcommand.
func (p PackageManager) InstallArgs() []string {
	if p == PackageManagerYarn {
		return []string{"yarn"}
	}
	return []string{p.String(), "install"}
}

// Selection holds the three answers collected by the interactive prompts.
// It is created once after prompting completes and is immutable thereafter.
type Selection struct {
	// Template is the chosen starter-kit repository.
	Template Template

	// ProjectName is the validated project directory name.
	ProjectName string

	// PackageManager is the tool that installs dependencies.
	PackageManager PackageManager
}

// Invocation captures the process-level context at startup.
// It is created once in the CLI layer and read-only thereafter.
type Invocation struct {
	// NameArg is the optional positional argument. It is used only as
	// the default offered by the project-name prompt, never as a
	// binding value.
	NameArg string

	// WorkDir is the directory the CLI was invoked from. The project
	// directory is created directly beneath it.
	WorkDir string

	// NodeVersion is the detected Node.js runtime version.
	NodeVersion *semver.Version
}

// projectNameRegex validates project names: letters, digits, underscores,
// dots and hyphens only. This matches what every supported package manager
// accepts as a directory and package name.
var projectNameRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidateProjectName checks if the given name is a valid project name.
// The prompt layer uses this as its field validator, so an invalid name
// results in a re-prompt rather than a hard failure.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !projectNameRegex.MatchString(name) {
		return fmt.Errorf("invalid project name %q: only letters, digits, '_', '.' and '-' are allowed", name)
	}
	return nil
}

// ErrorKind classifies failures for top-level error reporting.
// Every kind terminates the process with exit code 1; the kind only
// controls the message prefix, not the exit code.
type ErrorKind string

const (
	// KindEnvironment indicates the local runtime does not meet the
	// minimum requirements (e.g., Node.js too old or missing).
	KindEnvironment ErrorKind = "environment"

	// KindValidation indicates user input failed validation.
	KindValidation ErrorKind = "validation"

	// KindFilesystem indicates a directory could not be created or the
	// target name is already taken.
	KindFilesystem ErrorKind = "filesystem"

	// KindCommand indicates an external process (git clone, package
	// manager install) exited non-zero.
	KindCommand ErrorKind = "command"

	// KindCancelled indicates the user aborted an interactive prompt.
	KindCancelled ErrorKind = "cancelled"
)

// ExitCode defines the CLI process exit codes. The contract is binary:
// 0 on full success, 1 on any failure (validation, filesystem, clone,
// install, or prompt cancellation).
type ExitCode int

const (
	// ExitSuccess indicates the scaffold completed fully.
	ExitSuccess ExitCode = 0

	// ExitFailure indicates any fatal error.
	ExitFailure ExitCode = 1
)

// CLIError is a custom error type that carries an ErrorKind.
// This allows the CLI layer to format domain errors consistently
// while always terminating with ExitFailure.
type CLIError struct {
	// Kind classifies the failure per the error taxonomy.
	Kind ErrorKind

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given kind and message.
func NewCLIError(kind ErrorKind, message string) *CLIError {
	return &CLIError{Kind: kind, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(kind ErrorKind, message string, err error) *CLIError {
	return &CLIError{Kind: kind, Message: message, Err: err}
}
