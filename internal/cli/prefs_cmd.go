package cli

import (
	"strings"

	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prefs",
		Aliases: []string{"preferences"},
		Short:   "Show or change daily preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showPrefs(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show wake, sleep, focus and interests",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showPrefs(cmd, app)
			},
		},
		newPrefsSetCmd(app),
		newPrefsEditCmd(app),
	)

	return cmd
}

func showPrefs(cmd *cobra.Command, app *App) error {
	p, err := app.Session.Preferences(cmd.Context())
	if err != nil {
		return err
	}
	writeLine(cmd.OutOrStdout(), formatter.FormatPreferences(p))
	return nil
}

func newPrefsSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual preferences; omitted flags keep their value",
		Example: `  zenith prefs set --wake 06:30 --focus evening
  zenith prefs set --interests "Tech, Chess"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, err := app.Session.Preferences(ctx)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			in := current.Input()
			in.WakeUpTime = changedOr(fs, "wake", in.WakeUpTime)
			in.SleepTime = changedOr(fs, "sleep", in.SleepTime)
			in.FocusTime = changedOr(fs, "focus", in.FocusTime)
			if fs.Changed("interests") {
				raw, _ := fs.GetString("interests")
				in.Interests = splitTags(raw)
			}

			p, err := app.Session.SetPreferences(ctx, in)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatPreferences(p))
			return nil
		},
	}

	cmd.Flags().String("wake", "", "Wake-up time (HH:MM)")
	cmd.Flags().String("sleep", "", "Sleep time (HH:MM)")
	cmd.Flags().String("focus", "", "Peak focus period: Morning, Afternoon or Evening")
	cmd.Flags().String("interests", "", "Comma-separated interests")

	return cmd
}

func newPrefsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit preferences in a form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			ctx := cmd.Context()
			current, err := app.Session.Preferences(ctx)
			if err != nil {
				return err
			}

			fields := newPrefsFields(current)
			if err := prefsForm(fields).Run(); err != nil {
				return err
			}

			p, err := app.Session.SetPreferences(ctx, fields.input())
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatPreferences(p))
			return nil
		},
	}
}

// prefsFields backs the preferences form. Interests are edited as one
// comma-separated line.
type prefsFields struct {
	wake      string
	sleep     string
	focus     string
	interests string
}

func newPrefsFields(p domain.UserPreferences) *prefsFields {
	return &prefsFields{
		wake:      p.WakeUpTime,
		sleep:     p.SleepTime,
		focus:     string(p.FocusTime),
		interests: strings.Join(p.Interests, ", "),
	}
}

func (f *prefsFields) input() domain.PreferencesInput {
	return domain.PreferencesInput{
		WakeUpTime: f.wake,
		SleepTime:  f.sleep,
		FocusTime:  f.focus,
		Interests:  splitTags(f.interests),
	}
}
