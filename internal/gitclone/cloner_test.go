package gitclone

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masb0ymas/create-app/internal/model"
)

// setupSourceRepo creates a temporary Git repository with a single commit
// to act as a clone source. Local user identity is configured so commits
// work in CI environments without a global Git config.
//
// Returns a file:// URL for the repository, since git only honors
// --depth for transport-based (non-local-path) clones.
func setupSourceRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	runTestGit(t, dir, "init")
	runTestGit(t, dir, "config", "user.email", "test@example.com")
	runTestGit(t, dir, "config", "user.name", "Test User")

	pkg := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(pkg, []byte(`{"name": "starter"}`+"\n"), 0o644))

	runTestGit(t, dir, "add", ".")
	runTestGit(t, dir, "commit", "-m", "initial commit")

	return "file://" + dir
}

// runTestGit runs a git command in the given directory and fails the test
// on a non-zero exit.
func runTestGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, string(output))
	return string(output)
}

// TestClone verifies a shallow clone lands the working tree and its
// .git metadata in the target directory.
func TestClone(t *testing.T) {
	url := setupSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "demo")

	err := NewGitCloner().Clone(context.Background(), url, dest)
	require.NoError(t, err)

	// Working tree content arrived.
	_, statErr := os.Stat(filepath.Join(dest, "package.json"))
	assert.NoError(t, statErr, "cloned files should exist")

	// Metadata still present until RemoveMetadata runs.
	info, statErr := os.Stat(filepath.Join(dest, ".git"))
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

// TestClone_IsShallow verifies the clone carries exactly one commit.
func TestClone_IsShallow(t *testing.T) {
	url := setupSourceRepo(t)

	// Add a second commit so a full clone would have two.
	srcDir := url[len("file://"):]
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "README.md"), []byte("# Starter\n"), 0o644))
	runTestGit(t, srcDir, "add", ".")
	runTestGit(t, srcDir, "commit", "-m", "second commit")

	dest := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, NewGitCloner().Clone(context.Background(), url, dest))

	count := runTestGit(t, dest, "rev-list", "--count", "HEAD")
	assert.Equal(t, "1\n", count, "depth-1 clone should contain a single commit")
}

// TestClone_BadURL verifies a failed clone surfaces a command error with
// git's stderr folded into the message.
func TestClone_BadURL(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "demo")

	err := NewGitCloner().Clone(context.Background(), "file:///nonexistent/starter-repo", dest)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.KindCommand, cliErr.Kind)
	assert.Contains(t, cliErr.Message, "git clone")
}

// TestRemoveMetadata verifies the .git directory is removed and the
// working tree is left intact.
func TestRemoveMetadata(t *testing.T) {
	url := setupSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, NewGitCloner().Clone(context.Background(), url, dest))

	require.NoError(t, NewGitCloner().RemoveMetadata(dest))

	_, err := os.Stat(filepath.Join(dest, ".git"))
	assert.True(t, os.IsNotExist(err), ".git should be gone")

	_, err = os.Stat(filepath.Join(dest, "package.json"))
	assert.NoError(t, err, "project files should remain")
}

// TestRemoveMetadata_NoGitDir verifies removing metadata from a directory
// without .git is a no-op, matching os.RemoveAll semantics.
func TestRemoveMetadata_NoGitDir(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, NewGitCloner().RemoveMetadata(dir))
}
