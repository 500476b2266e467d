package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the session over HTTP",
		Long: `Start an HTTP API over one in-memory session. All requests share
the same goals, preferences, routine and coach transcript.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			writeLine(cmd.ErrOrStderr(), formatter.Dim("listening on "+addr))
			return app.Serve(ctx, app.Session, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr(), "Listen address")

	return cmd
}

func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}
