// Package cli — templates.go implements the "create-app templates"
// subcommand, which lists the starter catalog without scaffolding
// anything.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/masb0ymas/create-app/internal/registry"
)

// NewTemplatesCommand creates the "templates" cobra command.
func NewTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available starter templates",
		Long: `List the starter templates create-app can scaffold.

Descriptions can be customized per user via a templates.yaml file in the
create-app config directory; the set of templates itself is fixed.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadCatalog()
			if err != nil {
				return err
			}

			if IsJSONOutput() {
				printTemplatesJSON(entries)
			} else {
				printTemplatesText(entries)
			}
			return nil
		},
	}
}

// printTemplatesText renders the catalog as an aligned two-column list.
func printTemplatesText(entries []registry.Entry) {
	// Compute the widest template name for column alignment.
	width := 0
	for _, e := range entries {
		if len(e.Template.String()) > width {
			width = len(e.Template.String())
		}
	}

	for _, e := range entries {
		fmt.Printf("  %-*s  %s\n", width, e.Template, e.Description)
	}
	fmt.Println()
	fmt.Printf("Repositories are cloned from %s\n", registry.DefaultOrigin)
}

// printTemplatesJSON renders the catalog as a JSON array including the
// resolved clone URL per template.
func printTemplatesJSON(entries []registry.Entry) {
	type templateJSON struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Repository  string `json:"repository"`
	}

	out := make([]templateJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, templateJSON{
			Name:        e.Template.String(),
			Description: e.Description,
			Repository:  registry.RepoURL(e.Template),
		})
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(os.Stdout, string(data))
}
