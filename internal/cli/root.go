package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/zenith/internal/app"
	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ServeFunc runs the HTTP surface over a session until ctx is done.
type ServeFunc func(ctx context.Context, session app.Facade, addr string) error

// App holds everything the command tree needs. One App drives one Session.
type App struct {
	Session app.Facade
	Logger  zerolog.Logger
	Version string

	// Now is the clock used for relative dates.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. Forms, spinners
	// and the default shell are only used when it returns true.
	IsInteractive func() bool

	// Serve backs the serve command; nil disables it.
	Serve ServeFunc
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// spin starts a spinner on stderr when attached to a terminal. The
// returned func stops it.
func (a *App) spin(message string) func() {
	if !a.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(os.Stderr, message)
}

// NewRootCmd creates the top-level "zenith" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:     "zenith",
		Short:   "AI life architect: goals, daily routines and a coach",
		Version: app.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newGoalCmd(app),
		newPrefsCmd(app),
		newRoutineCmd(app),
		newInsightsCmd(app),
		newCoachCmd(app),
		newStatusCmd(app),
		newShellCmd(app),
	)
	if app.Serve != nil {
		root.AddCommand(newServeCmd(app))
	}

	return root
}

// writeLine writes s and a newline to w.
func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}
