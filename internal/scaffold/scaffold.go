// Package scaffold orchestrates the project setup sequence:
// directory creation, starter clone, dependency install, and
// version-control metadata cleanup.
//
// The sequence is strictly linear with no rollback: any step's failure
// aborts the remaining steps, and partially cloned or installed contents
// are left on disk for the user to inspect or delete. The external
// capabilities (clone, install) are injected as small interfaces so
// tests substitute fakes instead of touching the network.
//
// Nothing here changes the process working directory; every operation
// receives the project path explicitly.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/masb0ymas/create-app/internal/model"
	"github.com/masb0ymas/create-app/internal/nodeproj"
	"github.com/masb0ymas/create-app/internal/registry"
)

// Cloner fetches a starter repository and strips its metadata.
// Implemented by gitclone.GitCloner.
type Cloner interface {
	Clone(ctx context.Context, url, dir string) error
	RemoveMetadata(dir string) error
}

// Installer installs the project's dependencies with a package manager.
// Implemented by installer.ExecInstaller.
type Installer interface {
	Install(ctx context.Context, dir string, pm model.PackageManager) error
}

// Result summarizes a completed scaffold run for the CLI's final output.
type Result struct {
	// ProjectPath is the absolute path of the created project directory.
	ProjectPath string

	// Package holds the starter's parsed package.json, or nil when it
	// could not be read. Absence is reported via PackageWarning instead
	// of failing the run.
	Package *nodeproj.PackageJSON

	// PackageWarning carries the non-fatal package.json read problem,
	// empty on success.
	PackageWarning string

	// LockfileManager is the package manager the starter pins via its
	// lockfile; only meaningful when LockfileFound is true.
	LockfileManager model.PackageManager

	// LockfileFound reports whether a known lockfile was present.
	LockfileFound bool
}

// Orchestrator runs the setup sequence as one unit of work.
type Orchestrator struct {
	cloner    Cloner
	installer Installer

	// repoURL maps a template to its clone URL. Defaults to
	// registry.RepoURL; overridable in tests.
	repoURL func(model.Template) string

	// logf receives step-by-step progress messages. Defaults to a
	// no-op; the CLI wires in its verbose logger.
	logf func(format string, args ...any)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRepoURL overrides the template-to-URL mapping.
func WithRepoURL(fn func(model.Template) string) Option {
	return func(o *Orchestrator) { o.repoURL = fn }
}

// WithLogf wires a progress logger.
func WithLogf(fn func(format string, args ...any)) Option {
	return func(o *Orchestrator) { o.logf = fn }
}

// New creates an Orchestrator with the given capabilities.
func New(cloner Cloner, installer Installer, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cloner:    cloner,
		installer: installer,
		repoURL:   registry.RepoURL,
		logf:      func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CreateProjectDir creates the project directory.
//
// It fails fast when the directory already exists: merging into or
// overwriting existing contents is never attempted. Directory creation
// is atomic at this granularity, so no partial-creation cleanup exists.
func CreateProjectDir(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		if os.IsExist(err) {
			return model.NewCLIError(model.KindFilesystem,
				fmt.Sprintf("the name %q is already taken: a file or directory with that name exists here", filepath.Base(path)))
		}
		return model.WrapCLIError(model.KindFilesystem,
			fmt.Sprintf("could not create project directory %s", path), err)
	}
	return nil
}

// Run executes the full setup sequence for the given selection inside
// workDir. It returns a Result for the final summary, or the first
// step's error. On error, no cleanup of prior steps is performed.
func (o *Orchestrator) Run(ctx context.Context, workDir string, sel *model.Selection) (*Result, error) {
	projectPath := filepath.Join(workDir, sel.ProjectName)

	o.logf("Creating project directory %s", projectPath)
	if err := CreateProjectDir(projectPath); err != nil {
		return nil, err
	}

	url := o.repoURL(sel.Template)
	o.logf("Cloning %s (depth 1)", url)
	if err := o.cloner.Clone(ctx, url, projectPath); err != nil {
		return nil, err
	}

	result := &Result{ProjectPath: projectPath}

	// Inspect the starter before installing so the summary works even
	// when the user reads it mid-install. Failures here are warnings:
	// the clone already succeeded and the install may still work.
	pkg, err := nodeproj.LoadPackageJSON(projectPath)
	if err != nil {
		result.PackageWarning = fmt.Sprintf("could not read the starter's package.json: %v", err)
	} else {
		result.Package = pkg
	}
	if pm, found := nodeproj.DetectLockfile(projectPath); found {
		result.LockfileManager = pm
		result.LockfileFound = true
	}

	o.logf("Installing dependencies with %s", sel.PackageManager)
	if err := o.installer.Install(ctx, projectPath, sel.PackageManager); err != nil {
		return nil, err
	}

	o.logf("Removing version-control metadata")
	if err := o.cloner.RemoveMetadata(projectPath); err != nil {
		return nil, err
	}

	return result, nil
}
