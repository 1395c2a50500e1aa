package gitclone

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/masb0ymas/create-app/internal/model"
)

// GitCloner performs clone and cleanup operations by invoking the git CLI.
//
// It is stateless; the struct exists as a receiver so the scaffold
// orchestrator can depend on a small interface and tests can substitute
// a fake.
type GitCloner struct{}

// NewGitCloner creates a new GitCloner instance.
func NewGitCloner() *GitCloner {
	return &GitCloner{}
}

// Clone performs a shallow clone (depth 1) of url into dir.
//
// Depth 1 keeps the download small: the starter's history is discarded
// anyway when RemoveMetadata deletes .git. The destination directory may
// already exist but must be empty; git itself enforces that, and the
// orchestrator creates it beforehand so the "name already taken" check
// happens before any network traffic.
func (g *GitCloner) Clone(ctx context.Context, url, dir string) error {
	_, err := runGit(ctx, "clone", "--depth", "1", url, dir)
	return err
}

// RemoveMetadata deletes the .git directory inside the cloned copy.
// This is irreversible: the scaffolded project starts with no history,
// ready for the user's own `git init`.
func (g *GitCloner) RemoveMetadata(dir string) error {
	gitDir := filepath.Join(dir, ".git")
	if err := os.RemoveAll(gitDir); err != nil {
		return model.WrapCLIError(model.KindCommand,
			fmt.Sprintf("removing version-control metadata at %s", gitDir), err)
	}
	return nil
}

// runGit executes a git command with the given arguments.
//
// It captures stdout and stderr separately so stderr can be folded into
// the error message while stdout is returned on success. Failures are
// wrapped in model.CLIError with KindCommand.
func runGit(ctx context.Context, args ...string) (string, error) {
	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", model.WrapCLIError(model.KindCommand, message, err)
	}

	return stdout.String(), nil
}
