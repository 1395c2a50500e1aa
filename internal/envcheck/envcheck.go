// Package envcheck validates the local toolchain before scaffolding starts.
//
// Every starter template is a Node.js project, so the CLI refuses to run
// when the local Node.js runtime is older than the supported minimum.
// The version is read by executing `node --version` because create-app is
// a native binary and has no runtime version of its own to consult.
//
// Version comparison uses github.com/Masterminds/semver/v3 rather than
// hand-rolled string slicing, which keeps pre-release and build-metadata
// suffixes from tripping the check.
package envcheck

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/masb0ymas/create-app/internal/model"
)

const (
	// MinimumMajor is the oldest Node.js major version create-app runs
	// against. Older runtimes fail fatally before any prompt is shown.
	MinimumMajor = 20

	// RecommendedMajor is the Node.js major version the starters are
	// developed against. Versions between minimum and recommended get a
	// printed advisory but continue.
	RecommendedMajor = 22
)

// runNodeVersion executes `node --version` and returns its stdout.
// It is a package-level variable so tests can substitute a fake instead
// of requiring a local Node.js installation.
var runNodeVersion = func() (string, error) {
	out, err := exec.Command("node", "--version").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// lookPath resolves a binary on PATH. Variable for the same reason as
// runNodeVersion.
var lookPath = exec.LookPath

// DetectNodeVersion runs `node --version` and parses the reported version.
//
// A missing node binary is a fatal environment error: the clone targets
// are Node projects, so proceeding would only move the failure to the
// install step with a much less helpful message.
func DetectNodeVersion() (*semver.Version, error) {
	out, err := runNodeVersion()
	if err != nil {
		return nil, model.WrapCLIError(model.KindEnvironment,
			"Node.js was not found on PATH; install Node.js 20 or newer from https://nodejs.org", err)
	}

	// node prints "v20.11.1\n"; semver wants the bare version.
	raw := strings.TrimPrefix(strings.TrimSpace(out), "v")
	version, err := semver.NewVersion(raw)
	if err != nil {
		return nil, model.WrapCLIError(model.KindEnvironment,
			fmt.Sprintf("could not parse Node.js version %q", raw), err)
	}
	return version, nil
}

// Check applies the version policy to a detected Node.js version.
//
// It returns a non-empty advisory when the version is supported but older
// than recommended, and an error when the version is below the minimum.
// Exactly one of the two is ever set.
func Check(version *semver.Version) (advisory string, err error) {
	major := version.Major()

	if major < MinimumMajor {
		return "", model.NewCLIError(model.KindEnvironment, fmt.Sprintf(
			"Node.js %s is not supported: create-app requires Node.js %d or newer (%d recommended). Upgrade via https://nodejs.org and re-run.",
			version, MinimumMajor, RecommendedMajor))
	}

	if major < RecommendedMajor {
		advisory = fmt.Sprintf(
			"Node.js %s works, but the starters are developed against Node.js %d. Consider upgrading.",
			version, RecommendedMajor)
	}

	return advisory, nil
}

// Tool reports whether a named binary is available on PATH.
// Used by the doctor command; absence is informational there, not fatal.
type Tool struct {
	// Name is the binary name looked up on PATH.
	Name string

	// Path is the resolved location, empty when not found.
	Path string

	// Found indicates the lookup succeeded.
	Found bool
}

// CheckTools resolves each named binary on PATH, preserving order.
func CheckTools(names ...string) []Tool {
	tools := make([]Tool, 0, len(names))
	for _, name := range names {
		path, err := lookPath(name)
		tools = append(tools, Tool{Name: name, Path: path, Found: err == nil})
	}
	return tools
}
