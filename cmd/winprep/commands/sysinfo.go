package commands

import (
	"github.com/spf13/cobra"

	"github.com/winprep/winprep/cmd/winprep/handlers"
)

// Sysinfo returns the command that prints host hardware information.
func Sysinfo() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sysinfo",
		Short: "Show host hardware information",
		Long: `Show processor, memory, volume, and display adapter information.

Examples:
  winprep sysinfo
  winprep sysinfo -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Sysinfo(cmd.Context(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, or yaml")

	return cmd
}
