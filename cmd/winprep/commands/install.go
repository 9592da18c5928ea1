package commands

import (
	"github.com/spf13/cobra"

	"github.com/winprep/winprep/cmd/winprep/handlers"
)

// Install returns the command that runs the install workflow.
//
// The command checks elevation and winget availability, presents the
// checkbox selection form, then executes the resulting plan strictly
// sequentially: probe each package, install the missing ones, run the
// optional bulk upgrade, and finish with the GPU driver advisory.
//
// Optional flags:
//
//	--all: select the whole catalog and skip the form
//	--plain: line-based output instead of the progress TUI
//	--skip-gpu: omit the GPU driver advisory step
func Install() *cobra.Command {
	var opts handlers.InstallOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Select and install applications",
		Long: `Select applications from the catalog and install the missing ones.

Already-installed packages are skipped. A failing install never aborts
the run; every step reports its own outcome. Requires administrator
rights: a non-elevated invocation relaunches itself elevated.

Examples:
  # Pick applications interactively
  winprep install

  # Install the whole catalog without the form
  winprep install --all

  # Plain log lines, e.g. when capturing output
  winprep install --plain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Install(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Install the whole catalog without prompting")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Line-based progress output instead of the TUI")
	cmd.Flags().BoolVar(&opts.SkipGPU, "skip-gpu", false, "Skip the GPU driver advisory step")

	return cmd
}
