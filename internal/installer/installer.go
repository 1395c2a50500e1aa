// Package installer runs the selected package manager's install command
// inside the scaffolded project directory.
//
// No dependency resolution happens here; that is delegated entirely to
// the external tool (yarn, pnpm, or npm). The package's only jobs are
// picking the right argv for the tool, running it with the project
// directory as the working directory (the process-wide working directory
// is never changed), and converting a non-zero exit into a CLIError.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/masb0ymas/create-app/internal/model"
)

// runCommand executes an external command in the given directory with
// the given output streams. Package-level variable so tests can record
// invocations instead of spawning real processes.
var runCommand = func(ctx context.Context, dir string, argv []string, stdout, stderr io.Writer) error {
	// #nosec G204 — argv comes from the closed PackageManager enum
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	// Inherit the parent environment so registry configuration,
	// proxies, and auth tokens keep working.
	cmd.Env = os.Environ()
	return cmd.Run()
}

// ExecInstaller installs dependencies by spawning the package manager
// as a child process.
type ExecInstaller struct {
	// Stdout and Stderr receive the package manager's own output.
	// Installs can take minutes, so by default the output streams
	// straight to the terminal instead of being captured.
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecInstaller creates an installer that streams tool output to the
// current process's stdout and stderr.
func NewExecInstaller() *ExecInstaller {
	return &ExecInstaller{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Install runs the package manager's install command with dir as the
// working directory. The call blocks until the external process exits.
//
// An invalid package manager value is a validation error; it can only
// happen when a caller bypasses ParsePackageManager, and failing loudly
// here beats silently installing with npm.
func (i *ExecInstaller) Install(ctx context.Context, dir string, pm model.PackageManager) error {
	if !pm.IsValid() {
		return model.NewCLIError(model.KindValidation,
			fmt.Sprintf("unsupported package manager %q", pm))
	}

	argv := pm.InstallArgs()
	if err := runCommand(ctx, dir, argv, i.Stdout, i.Stderr); err != nil {
		return model.WrapCLIError(model.KindCommand,
			fmt.Sprintf("`%s` failed in %s", strings.Join(argv, " "), dir), err)
	}
	return nil
}
