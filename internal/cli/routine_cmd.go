package cli

import (
	"errors"

	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/llm"
	"github.com/spf13/cobra"
)

// friendlyError shows a presentation message while keeping the underlying
// error kind reachable through errors.Is.
type friendlyError struct {
	msg string
	err error
}

func (e *friendlyError) Error() string { return e.msg }
func (e *friendlyError) Unwrap() error { return e.err }

// routineError turns routine generation failures into the messages users see.
func (a *App) routineError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNoGoalsProvided):
		return &friendlyError{msg: formatter.NoGoalsMessage, err: err}
	case errors.Is(err, llm.ErrRequestFailed), errors.Is(err, domain.ErrInvalidRoutineFormat):
		a.Logger.Debug().Err(err).Msg("routine generation failed")
		return &friendlyError{msg: formatter.RoutineFailureMessage, err: err}
	default:
		return err
	}
}

func newRoutineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Generate or show the daily routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showRoutine(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "generate",
			Aliases: []string{"gen"},
			Short:   "Ask the AI architect for a new routine",
			Long: `Generate a daily routine from your goals and preferences.
The current routine is replaced only when the new one arrives complete.`,
			RunE: func(cmd *cobra.Command, args []string) error {
				return generateRoutine(cmd, app)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the current routine",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showRoutine(cmd, app)
			},
		},
	)

	return cmd
}

func generateRoutine(cmd *cobra.Command, app *App) error {
	stop := app.spin("Architecting your day...")
	items, err := app.Session.GenerateRoutine(cmd.Context())
	stop()
	if err != nil {
		return app.routineError(err)
	}
	writeLine(cmd.OutOrStdout(), formatter.FormatRoutine(items))
	return nil
}

func showRoutine(cmd *cobra.Command, app *App) error {
	items, err := app.Session.Routine(cmd.Context())
	if err != nil {
		return err
	}
	writeLine(cmd.OutOrStdout(), formatter.FormatRoutine(items))
	return nil
}

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Three actionable insights for your goals and routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := app.spin("Analyzing your goals...")
			text, err := app.Session.GetInsights(cmd.Context())
			stop()
			if err != nil {
				if errors.Is(err, llm.ErrRequestFailed) {
					app.Logger.Debug().Err(err).Msg("insights failed")
					return &friendlyError{msg: formatter.InsightFailureMessage, err: err}
				}
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatInsights(text))
			return nil
		},
	}
}
