// Package model defines the domain types and value objects for the
// create-app CLI.
//
// This package contains pure data structures with no side effects.
// All entities (Template, PackageManager, Selection, Invocation) are
// transient and single-use: they are built once per run from CLI
// arguments and prompt answers, and their lifecycle ends when the
// process exits. There is no persistent state between runs.
//
// The package also defines the error taxonomy (ErrorKind) and a custom
// error type (CLIError) that carries the kind, enabling consistent
// top-level error formatting and process exit handling.
package model
