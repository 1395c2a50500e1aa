// Package nodeproj inspects the Node.js project laid down by a clone.
//
// It reads the starter's package.json to enrich the final summary
// (project name, available scripts) and detects which package manager
// the starter itself pins via its lockfile. package.json files in the
// wild occasionally carry comments or trailing commas, so the bytes are
// run through github.com/tidwall/jsonc before the standard
// encoding/json parse.
package nodeproj

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/jsonc"

	"github.com/masb0ymas/create-app/internal/model"
)

// PackageJSON holds the subset of package.json fields the CLI reports.
// Everything else is silently ignored during parsing.
type PackageJSON struct {
	// Name is the package name declared by the starter.
	Name string `json:"name"`

	// Version is the starter's declared version.
	Version string `json:"version"`

	// Scripts maps script names to their shell commands. Only the
	// names are reported; commands are never executed by create-app.
	Scripts map[string]string `json:"scripts"`
}

// ScriptNames returns the script names in sorted order for stable output.
func (p *PackageJSON) ScriptNames() []string {
	names := make([]string, 0, len(p.Scripts))
	for name := range p.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPackageJSON reads and parses dir/package.json.
//
// A missing file is returned as an error the caller is expected to treat
// as non-fatal: a starter without package.json is unusual but not a
// reason to abort after the clone and install already succeeded.
func LoadPackageJSON(dir string) (*PackageJSON, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg PackageJSON
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &pkg, nil
}

// lockfiles maps lockfile names to the package manager that writes them.
// Checked in this order; the first hit wins.
var lockfiles = []struct {
	file    string
	manager model.PackageManager
}{
	{"yarn.lock", model.PackageManagerYarn},
	{"pnpm-lock.yaml", model.PackageManagerPnpm},
	{"package-lock.json", model.PackageManagerNpm},
}

// DetectLockfile reports which package manager the project in dir pins
// through its lockfile. The second return value is false when no known
// lockfile exists.
func DetectLockfile(dir string) (model.PackageManager, bool) {
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
			return lf.manager, true
		}
	}
	return "", false
}
