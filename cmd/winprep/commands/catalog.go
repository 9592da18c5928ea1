package commands

import (
	"github.com/spf13/cobra"

	"github.com/winprep/winprep/cmd/winprep/handlers"
)

// Catalog returns the command that lists the application catalog.
func Catalog() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the application catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Catalog(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, or yaml")

	return cmd
}
