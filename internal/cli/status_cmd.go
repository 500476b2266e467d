package cli

import (
	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Dashboard overview of goals, routine and coach",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Session.Summary(cmd.Context())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatSummary(s))

			goals, err := app.Session.ListGoals(cmd.Context())
			if err != nil {
				return err
			}
			for _, g := range goals {
				if g.IsActive() {
					writeLine(cmd.OutOrStdout(), "  "+formatter.FormatGoalLine(g))
				}
			}
			return nil
		},
	}
}
