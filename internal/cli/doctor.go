// Package cli — doctor.go implements the "create-app doctor" subcommand,
// a read-only report of the local toolchain: Node.js version against the
// supported thresholds, plus availability of git and the three package
// managers.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/masb0ymas/create-app/internal/envcheck"
)

// NewDoctorCommand creates the "doctor" cobra command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the local toolchain",
		Long: `Report the detected Node.js version and whether git and the supported
package managers are available on PATH.

Unlike the scaffold itself, doctor never fails on a missing tool; it only
reports. An unsupported Node.js version is still reported as an error so
the command is usable as a pre-flight check in scripts.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

// doctorReport is the JSON shape of the doctor output.
type doctorReport struct {
	NodeVersion string       `json:"nodeVersion,omitempty"`
	NodeError   string       `json:"nodeError,omitempty"`
	Advisory    string       `json:"advisory,omitempty"`
	Tools       []toolReport `json:"tools"`
}

type toolReport struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// runDoctor gathers and prints the toolchain report. The command itself
// fails only when Node.js is below the supported minimum, so scripts can
// use it as a pre-flight gate.
func runDoctor() error {
	report := doctorReport{}

	nodeVersion, nodeErr := detectNodeVersion()
	var checkErr error
	if nodeErr != nil {
		report.NodeError = nodeErr.Error()
		checkErr = nodeErr
	} else {
		report.NodeVersion = nodeVersion.String()
		report.Advisory, checkErr = envcheck.Check(nodeVersion)
	}

	for _, tool := range envcheck.CheckTools("git", "yarn", "pnpm", "npm") {
		report.Tools = append(report.Tools, toolReport{Name: tool.Name, Found: tool.Found, Path: tool.Path})
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(data))
	} else {
		printDoctorText(report, checkErr)
	}

	return checkErr
}

// printDoctorText renders the report for humans, one line per check.
func printDoctorText(report doctorReport, checkErr error) {
	if report.NodeError != "" {
		errorf(os.Stdout, "  node   %s\n", report.NodeError)
	} else if checkErr != nil {
		errorf(os.Stdout, "  node   %s (minimum is %d)\n", report.NodeVersion, envcheck.MinimumMajor)
	} else if report.Advisory != "" {
		warnf(os.Stdout, "  node   %s (%d recommended)\n", report.NodeVersion, envcheck.RecommendedMajor)
	} else {
		successf(os.Stdout, "  node   %s\n", report.NodeVersion)
	}

	for _, tool := range report.Tools {
		if tool.Found {
			successf(os.Stdout, "  %-6s %s\n", tool.Name, tool.Path)
		} else {
			warnf(os.Stdout, "  %-6s not found on PATH\n", tool.Name)
		}
	}
}
