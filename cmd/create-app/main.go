// Package main is the entry point for the create-app CLI.
//
// This binary scaffolds new projects from the masb0ymas starter kits:
// it prompts for a template, a project name, and a package manager,
// clones the chosen starter, installs dependencies, and strips the
// starter's Git history. All functionality is delegated to the
// internal/cli package, which defines cobra commands.
package main

import (
	"github.com/masb0ymas/create-app/internal/cli"
)

// version, commit, and date are set at build time via ldflags by
// GoReleaser. During development they default to "dev", "none", and
// "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package, keeping the
	// build system decoupled from the CLI framework.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
