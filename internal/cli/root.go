package cli

import (
	"chrona/internal/service"

	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands
// and TUI views.
type App struct {
	Sessions service.SessionService
	Limits   service.LimitService
	Exchange service.ExchangeService

	// IsInteractive reports whether stdin is a terminal. The root
	// command only launches the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "chrona" command and registers all
// subcommands against the provided App. Running it without a
// subcommand on a terminal opens the dashboard TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chrona",
		Short: "Digital wellbeing tracker",
		Long: "Chrona logs time-boxed activity sessions, shows usage analytics,\n" +
			"watches a daily limit, and runs live and focus timers.\n" +
			"The ledger is in-memory by default: it is empty on every start\n" +
			"and lost on exit unless exported (set CHRONA_DB to a file path\n" +
			"to keep it).",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newSessionCmd(app),
		newReportCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newLimitCmd(app),
	)

	return root
}
