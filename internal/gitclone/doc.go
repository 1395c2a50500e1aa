// Package gitclone fetches starter-kit repositories and strips their
// version-control metadata.
//
// It wraps the git CLI (via os/exec) rather than using a Go Git library:
// shallow clones over every transport git supports are exactly what the
// system git binary is best at, and the user already needs git installed
// for the starters' own workflows.
//
// All errors from git commands are wrapped in model.CLIError with
// KindCommand so the top-level handler reports them uniformly.
package gitclone
