package installer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masb0ymas/create-app/internal/model"
)

// recordedRun captures a single runCommand invocation.
type recordedRun struct {
	dir  string
	argv []string
}

// fakeRun swaps runCommand for a recorder that returns err, restoring
// the real implementation on cleanup.
func fakeRun(t *testing.T, err error) *[]recordedRun {
	t.Helper()

	orig := runCommand
	t.Cleanup(func() { runCommand = orig })

	var runs []recordedRun
	runCommand = func(_ context.Context, dir string, argv []string, _, _ io.Writer) error {
		runs = append(runs, recordedRun{dir: dir, argv: append([]string(nil), argv...)})
		return err
	}
	return &runs
}

// TestInstall_CommandPerManager verifies the exact command run for each
// supported package manager and that the project directory is used as
// the working directory rather than a process-wide chdir.
func TestInstall_CommandPerManager(t *testing.T) {
	tests := []struct {
		pm   model.PackageManager
		argv []string
	}{
		{model.PackageManagerYarn, []string{"yarn"}},
		{model.PackageManagerPnpm, []string{"pnpm", "install"}},
		{model.PackageManagerNpm, []string{"npm", "install"}},
	}

	for _, tt := range tests {
		t.Run(tt.pm.String(), func(t *testing.T) {
			runs := fakeRun(t, nil)

			err := NewExecInstaller().Install(context.Background(), "/work/demo", tt.pm)
			require.NoError(t, err)

			require.Len(t, *runs, 1)
			assert.Equal(t, tt.argv, (*runs)[0].argv)
			assert.Equal(t, "/work/demo", (*runs)[0].dir)
		})
	}
}

// TestInstall_NonZeroExit converts an external failure into a command
// error naming the tool and directory.
func TestInstall_NonZeroExit(t *testing.T) {
	fakeRun(t, errors.New("exit status 1"))

	err := NewExecInstaller().Install(context.Background(), "/work/demo", model.PackageManagerNpm)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.KindCommand, cliErr.Kind)
	assert.Contains(t, cliErr.Message, "npm install")
	assert.Contains(t, cliErr.Message, "/work/demo")
}

// TestInstall_RejectsUnknownManager verifies an out-of-enum value is a
// validation error and never spawns a process. This is the guard against
// the historical "anything else means npm" fallback.
func TestInstall_RejectsUnknownManager(t *testing.T) {
	runs := fakeRun(t, nil)

	err := NewExecInstaller().Install(context.Background(), "/work/demo", model.PackageManager("bun"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.KindValidation, cliErr.Kind)
	assert.Empty(t, *runs, "no process should be spawned for an unknown manager")
}
