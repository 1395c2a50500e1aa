// Package cli implements the cobra-based commands for create-app.
//
// The root command itself performs the scaffold: validate the
// environment, collect the three interactive answers, then run the
// setup sequence. Auxiliary subcommands (templates, doctor) live in
// their own files within this package.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/masb0ymas/create-app/internal/envcheck"
	"github.com/masb0ymas/create-app/internal/gitclone"
	"github.com/masb0ymas/create-app/internal/installer"
	"github.com/masb0ymas/create-app/internal/model"
	"github.com/masb0ymas/create-app/internal/prompt"
	"github.com/masb0ymas/create-app/internal/registry"
	"github.com/masb0ymas/create-app/internal/scaffold"
)

// Global flag variables bound to cobra persistent flags on the root
// command, available to every subcommand.
var (
	// jsonOutput switches command output to structured JSON for
	// machine consumption.
	jsonOutput bool

	// verbose enables step-by-step progress output on stderr.
	verbose bool
)

// Version, Commit, and Date are set at build time via ldflags and
// injected from the main package.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Colorized printers for user-facing output, one per severity.
var (
	successf = color.New(color.FgGreen).FprintfFunc()
	warnf    = color.New(color.FgHiMagenta).FprintfFunc()
	errorf   = color.New(color.FgRed).FprintfFunc()
)

// Seams for the scaffold flow. Package-level variables so tests can
// substitute fakes for the pieces that hit the terminal, the network,
// or external binaries.
var (
	detectNodeVersion = envcheck.DetectNodeVersion
	collectSelection  = func(entries []registry.Entry, defaultName string) (*model.Selection, error) {
		return prompt.NewCollector().Collect(entries, defaultName)
	}
	runSetup = func(ctx context.Context, workDir string, sel *model.Selection) (*scaffold.Result, error) {
		o := scaffold.New(gitclone.NewGitCloner(), installer.NewExecInstaller(), scaffold.WithLogf(VerboseLog))
		return o.Run(ctx, workDir, sel)
	}
)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "create-app [project-name]",
		Short: "Scaffold a new project from a starter kit",
		Long: `create-app scaffolds a new project from one of the masb0ymas starter kits.

It asks three questions (starter template, project name, package manager),
clones the chosen starter into a new directory, installs its dependencies,
and removes the starter's Git history so the project begins clean.

The optional positional argument pre-fills the project-name prompt.`,

		// Zero or one positional argument: the project-name suggestion.
		Args: cobra.MaximumNArgs(1),

		// We format errors ourselves for a consistent prefixed format,
		// so cobra's automatic usage/error printing is silenced.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd.Context(), args)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewTemplatesCommand())
	rootCmd.AddCommand(NewDoctorCommand())

	return rootCmd
}

// Execute runs the root command and translates errors into the process
// exit code. Success exits 0; every failure, regardless of kind, exits 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Kind, cliErr.Error())
		} else {
			printError("", err.Error())
		}
		os.Exit(int(model.ExitFailure))
	}
}

// runScaffold is the main orchestration for the root command:
// validate, prompt, scaffold, summarize.
func runScaffold(ctx context.Context, args []string) error {
	// Step 1: Environment validation. An unsupported Node.js runtime
	// terminates here; the prompts are never reached.
	nodeVersion, err := detectNodeVersion()
	if err != nil {
		return err
	}
	advisory, err := envcheck.Check(nodeVersion)
	if err != nil {
		return err
	}
	if advisory != "" {
		warnf(os.Stderr, "%s\n", advisory)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.KindFilesystem, "failed to get current directory", err)
	}

	// Step 2: Argument handling. A missing name is not an error; it is
	// collected interactively with no default. The Invocation is
	// read-only from here on.
	inv := model.Invocation{WorkDir: workDir, NodeVersion: nodeVersion}
	if len(args) > 0 {
		inv.NameArg = args[0]
	} else {
		fmt.Fprintln(os.Stderr, "Tip: you can pass the project name directly: create-app <project-name>")
	}

	// Step 3: Load the template catalog (built-ins plus optional user
	// descriptions) and collect the three answers.
	entries, err := loadCatalog()
	if err != nil {
		return err
	}

	sel, err := collectSelection(entries, inv.NameArg)
	if err != nil {
		return err
	}
	VerboseLog("Selected template=%s name=%s packageManager=%s", sel.Template, sel.ProjectName, sel.PackageManager)

	// Step 4: Run the setup sequence.
	result, err := runSetup(ctx, inv.WorkDir, sel)
	if err != nil {
		return err
	}

	// Step 5: Final summary.
	printScaffoldResult(sel, result)
	return nil
}

// loadCatalog returns the effective template catalog, warning about
// overlay entries outside the closed template set.
func loadCatalog() ([]registry.Entry, error) {
	path, err := registry.UserCatalogPath()
	if err != nil {
		// No resolvable config dir: fall back to the built-ins silently.
		return registry.Builtin(), nil
	}

	entries, skipped, err := registry.Load(path)
	if err != nil {
		return nil, model.WrapCLIError(model.KindValidation, "invalid user template catalog", err)
	}
	for _, name := range skipped {
		warnf(os.Stderr, "Ignoring unknown template %q in %s\n", name, path)
	}
	return entries, nil
}

// printScaffoldResult outputs the run summary in text or JSON format.
func printScaffoldResult(sel *model.Selection, result *scaffold.Result) {
	if jsonOutput {
		printScaffoldResultJSON(sel, result)
		return
	}

	if result.PackageWarning != "" {
		warnf(os.Stderr, "%s\n", result.PackageWarning)
	}
	if result.LockfileFound && result.LockfileManager != sel.PackageManager {
		warnf(os.Stderr, "Note: the starter ships a %s lockfile but dependencies were installed with %s\n",
			result.LockfileManager, sel.PackageManager)
	}

	successf(os.Stdout, "Created %s at %s\n", sel.ProjectName, result.ProjectPath)
	if result.Package != nil && len(result.Package.Scripts) > 0 {
		fmt.Println()
		fmt.Println("Available scripts:")
		for _, name := range result.Package.ScriptNames() {
			fmt.Printf("  %s run %s\n", sel.PackageManager, name)
		}
	}
	fmt.Println()
	fmt.Printf("Next: cd %s\n", sel.ProjectName)
}

// printScaffoldResultJSON outputs the run summary as structured JSON.
func printScaffoldResultJSON(sel *model.Selection, result *scaffold.Result) {
	out := map[string]any{
		"name":           sel.ProjectName,
		"template":       sel.Template.String(),
		"packageManager": sel.PackageManager.String(),
		"path":           result.ProjectPath,
	}
	if result.Package != nil {
		out["scripts"] = result.Package.ScriptNames()
	}
	if result.PackageWarning != "" {
		out["warning"] = result.PackageWarning
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}

// printError outputs an error message in the appropriate format based on
// the --json flag. Errors go to stderr in both modes; stdout is reserved
// for successful command output.
func printError(kind model.ErrorKind, message string) {
	if jsonOutput {
		errObj := map[string]any{
			"error": map[string]any{
				"message": message,
			},
		}
		if kind != "" {
			errObj["error"].(map[string]any)["kind"] = string(kind)
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		return
	}

	errorf(os.Stderr, "Error: %s\n", message)
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled. Used throughout the CLI for progress/trace output.
func VerboseLog(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
