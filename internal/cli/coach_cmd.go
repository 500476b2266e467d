package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/intelligence"
	"github.com/alexanderramin/zenith/internal/llm"
	"github.com/spf13/cobra"
)

func newCoachCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Talk to Zenith, your AI performance coach",
	}

	cmd.AddCommand(
		newCoachSayCmd(app),
		&cobra.Command{
			Use:   "transcript",
			Short: "Show the conversation so far",
			RunE: func(cmd *cobra.Command, args []string) error {
				writeLine(cmd.OutOrStdout(), formatter.FormatTranscript(app.Session.Transcript()))
				return nil
			},
		},
	)

	return cmd
}

func newCoachSayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "say MESSAGE...",
		Short: "Send one message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := app.spin("Zenith is thinking...")
			reply, err := coachReply(cmd.Context(), app, strings.Join(args, " "))
			stop()
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatChatMessage(reply))
			return nil
		},
	}
}

// coachReply sends text and returns the assistant message to show. A
// provider failure is answered with the fallback line, which the session
// records as the reply to that turn.
func coachReply(ctx context.Context, app *App, text string) (domain.ChatMessage, error) {
	reply, err := app.Session.SendChatMessageWithFallback(ctx, text, intelligence.CoachFallback)
	switch {
	case err == nil:
		return domain.ChatMessage{Role: domain.RoleAssistant, Text: reply}, nil
	case errors.Is(err, llm.ErrRequestFailed):
		app.Logger.Debug().Err(err).Msg("coach reply failed")
		return domain.ChatMessage{Role: domain.RoleAssistant, Text: intelligence.CoachFallback, Fallback: true}, nil
	default:
		return domain.ChatMessage{}, err
	}
}
