// Package registry defines the catalog of starter-kit templates that
// create-app can scaffold.
//
// The catalog is built in: exactly three starters hosted under a fixed
// GitHub origin. An optional YAML file lets users re-describe the built-in
// entries for the template prompt and the `templates` listing, but it can
// never widen the set. Unknown names in the user file are skipped so the
// template enum stays closed.
package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/masb0ymas/create-app/internal/model"
)

// DefaultOrigin is the fixed GitHub account hosting all starter-kit
// repositories. Clone URLs are formed by joining this origin with the
// template name.
const DefaultOrigin = "https://github.com/masb0ymas"

// Entry pairs a template with its display description. The prompt layer
// and the `templates` subcommand render entries; the orchestrator only
// needs the template itself.
type Entry struct {
	// Template is the starter identifier, also the repository name.
	Template model.Template

	// Description is the one-line summary shown next to the template
	// in the selection prompt and listing.
	Description string
}

// userCatalog mirrors the YAML structure of the optional user overlay file.
type userCatalog struct {
	Templates []userEntry `yaml:"templates"`
}

// userEntry is a single overlay record. Only the description is honored;
// the name must match a built-in template.
type userEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Builtin returns the built-in catalog in display order.
func Builtin() []Entry {
	return []Entry{
		{Template: model.TemplateExpressAPI, Description: "Express.js REST API starter (TypeScript)"},
		{Template: model.TemplateExpressSequelize, Description: "Express.js + Sequelize starter with relational DB setup"},
		{Template: model.TemplateNextJS, Description: "Next.js application starter"},
	}
}

// RepoURL returns the clone URL for a template: the fixed origin joined
// with the template name.
func RepoURL(t model.Template) string {
	return DefaultOrigin + "/" + t.String()
}

// UserCatalogPath returns the location of the optional overlay file,
// honoring XDG_CONFIG_HOME and falling back to ~/.config.
func UserCatalogPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(configDir, "create-app", "templates.yaml"), nil
}

// Load returns the effective catalog: the built-in entries with any
// descriptions overridden by the user overlay file at path.
//
// A missing overlay file is not an error; the built-in catalog is
// returned as-is. A malformed overlay IS an error, because silently
// ignoring a file the user wrote would hide their mistake.
//
// Overlay entries whose name does not match a built-in template are
// collected into the skipped return value so the caller can warn about
// them without aborting the run.
func Load(path string) (entries []Entry, skipped []string, err error) {
	entries = Builtin()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil, nil
		}
		return nil, nil, fmt.Errorf("reading template catalog %s: %w", path, err)
	}

	var overlay userCatalog
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, nil, fmt.Errorf("parsing template catalog %s: %w", path, err)
	}

	for _, ue := range overlay.Templates {
		tmpl, parseErr := model.ParseTemplate(ue.Name)
		if parseErr != nil {
			skipped = append(skipped, ue.Name)
			continue
		}
		for i := range entries {
			if entries[i].Template == tmpl && ue.Description != "" {
				entries[i].Description = ue.Description
			}
		}
	}

	return entries, skipped, nil
}
