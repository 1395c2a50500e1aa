package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masb0ymas/create-app/internal/model"
	"github.com/masb0ymas/create-app/internal/registry"
	"github.com/masb0ymas/create-app/internal/scaffold"
)

// scaffoldSeams replaces the flow seams with fakes and restores them on
// cleanup. It returns recorders for the prompt and setup stages.
type scaffoldSeams struct {
	promptCalled bool
	gotDefault   string
	setupCalled  bool
	gotSelection *model.Selection
}

func installSeams(t *testing.T, nodeVersion string, nodeErr error) *scaffoldSeams {
	t.Helper()

	origDetect, origCollect, origSetup := detectNodeVersion, collectSelection, runSetup
	t.Cleanup(func() {
		detectNodeVersion, collectSelection, runSetup = origDetect, origCollect, origSetup
	})

	seams := &scaffoldSeams{}

	detectNodeVersion = func() (*semver.Version, error) {
		if nodeErr != nil {
			return nil, nodeErr
		}
		return semver.MustParse(nodeVersion), nil
	}
	collectSelection = func(entries []registry.Entry, defaultName string) (*model.Selection, error) {
		seams.promptCalled = true
		seams.gotDefault = defaultName
		return &model.Selection{
			Template:       model.TemplateExpressAPI,
			ProjectName:    "demo",
			PackageManager: model.PackageManagerNpm,
		}, nil
	}
	runSetup = func(_ context.Context, workDir string, sel *model.Selection) (*scaffold.Result, error) {
		seams.setupCalled = true
		seams.gotSelection = sel
		return &scaffold.Result{ProjectPath: workDir + "/demo"}, nil
	}

	return seams
}

// TestRunScaffold_UnsupportedNodeStopsBeforePrompts verifies a runtime
// below the minimum terminates without ever reaching the prompt stage.
func TestRunScaffold_UnsupportedNodeStopsBeforePrompts(t *testing.T) {
	seams := installSeams(t, "18.19.1", nil)

	err := runScaffold(context.Background(), nil)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.KindEnvironment, cliErr.Kind)

	assert.False(t, seams.promptCalled, "prompts must not run on an unsupported runtime")
	assert.False(t, seams.setupCalled)
}

// TestRunScaffold_AdvisoryVersionContinues verifies the 20..21 band
// warns but still reaches the prompt and setup stages.
func TestRunScaffold_AdvisoryVersionContinues(t *testing.T) {
	seams := installSeams(t, "20.11.1", nil)

	err := runScaffold(context.Background(), nil)
	require.NoError(t, err)

	assert.True(t, seams.promptCalled)
	assert.True(t, seams.setupCalled)
}

// TestRunScaffold_MissingNodeIsFatal verifies a failed detection stops
// the run before prompting.
func TestRunScaffold_MissingNodeIsFatal(t *testing.T) {
	seams := installSeams(t, "", model.NewCLIError(model.KindEnvironment, "Node.js was not found on PATH"))

	err := runScaffold(context.Background(), nil)
	require.Error(t, err)
	assert.False(t, seams.promptCalled)
}

// TestRunScaffold_ArgBecomesPromptDefault verifies the positional
// argument is threaded through as the name prompt's default, not used
// directly.
func TestRunScaffold_ArgBecomesPromptDefault(t *testing.T) {
	seams := installSeams(t, "22.11.0", nil)

	err := runScaffold(context.Background(), []string{"demo"})
	require.NoError(t, err)

	assert.Equal(t, "demo", seams.gotDefault)
	require.NotNil(t, seams.gotSelection)
	assert.Equal(t, "demo", seams.gotSelection.ProjectName)
}

// TestRunScaffold_NoArgStillPrompts verifies zero arguments is not an
// error: the flow proceeds with an empty default.
func TestRunScaffold_NoArgStillPrompts(t *testing.T) {
	seams := installSeams(t, "22.11.0", nil)

	err := runScaffold(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, seams.promptCalled)
	assert.Empty(t, seams.gotDefault)
}

// TestRunScaffold_PromptCancellationPropagates verifies a cancelled
// prompt aborts the run before any setup step.
func TestRunScaffold_PromptCancellationPropagates(t *testing.T) {
	seams := installSeams(t, "22.11.0", nil)

	origCollect := collectSelection
	t.Cleanup(func() { collectSelection = origCollect })
	collectSelection = func([]registry.Entry, string) (*model.Selection, error) {
		return nil, model.NewCLIError(model.KindCancelled, "scaffolding cancelled")
	}

	err := runScaffold(context.Background(), nil)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.KindCancelled, cliErr.Kind)
	assert.False(t, seams.setupCalled)
}

// TestRunScaffold_SetupErrorPropagates verifies orchestrator failures
// surface unchanged to the top-level handler.
func TestRunScaffold_SetupErrorPropagates(t *testing.T) {
	installSeams(t, "22.11.0", nil)

	origSetup := runSetup
	t.Cleanup(func() { runSetup = origSetup })
	wantErr := model.NewCLIError(model.KindFilesystem, "the name \"demo\" is already taken")
	runSetup = func(context.Context, string, *model.Selection) (*scaffold.Result, error) {
		return nil, wantErr
	}

	err := runScaffold(context.Background(), []string{"demo"})
	assert.ErrorIs(t, err, wantErr)
}

// TestNewRootCommand_ArgLimit verifies at most one positional argument
// is accepted.
func TestNewRootCommand_ArgLimit(t *testing.T) {
	cmd := NewRootCommand()
	assert.Error(t, cmd.Args(cmd, []string{"one", "two"}))
	assert.NoError(t, cmd.Args(cmd, []string{"one"}))
	assert.NoError(t, cmd.Args(cmd, nil))
}

// TestNewRootCommand_RegistersSubcommands verifies templates and doctor
// are wired onto the root.
func TestNewRootCommand_RegistersSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["templates"])
	assert.True(t, names["doctor"])
}

// TestPrintErrorDoesNotPanicWithoutKind guards the generic error path in
// Execute, which formats non-CLIError failures.
func TestPrintErrorDoesNotPanicWithoutKind(t *testing.T) {
	assert.NotPanics(t, func() {
		printError("", errors.New("plain failure").Error())
	})
}
