package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/spf13/cobra"
)

// resolveGoalID matches input against full goal ids, then id prefixes.
func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("goal ID is required")
	}

	goals, err := app.Session.ListGoals(ctx)
	if err != nil {
		return "", err
	}

	for _, g := range goals {
		if g.ID == input {
			return g.ID, nil
		}
	}

	var matches []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, strings.ToLower(input)) {
			matches = append(matches, g.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", domain.ErrGoalNotFound, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("goal ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Manage goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listGoals(cmd, app)
		},
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var in domain.GoalInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal",
		Long: `Add a goal with a title, a category and a target date.
Without flags on a terminal, a form asks for each field.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noFlagsSet(cmd.Flags()) && app.interactive() {
				if err := goalForm(&in).Run(); err != nil {
					return err
				}
			}

			g, err := app.Session.AddGoal(cmd.Context(), in)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatGoalAdded(g))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Goal title")
	cmd.Flags().StringVar(&in.Category, "category", "", "One of "+categoryNames())
	cmd.Flags().StringVar(&in.TargetDate, "date", "", "Target date (YYYY-MM-DD)")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals in the order they were added",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listGoals(cmd, app)
		},
	}
}

func listGoals(cmd *cobra.Command, app *App) error {
	goals, err := app.Session.ListGoals(cmd.Context())
	if err != nil {
		return err
	}
	writeLine(cmd.OutOrStdout(), formatter.FormatGoalList(goals, app.now()))
	return nil
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a goal by ID or ID prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes && app.interactive() {
				confirmed := false
				if err := confirmForm("Remove goal "+formatter.ShortID(id)+"?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					writeLine(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Session.RemoveGoal(ctx, id); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatGoalRemoved(id))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func categoryNames() string {
	names := make([]string, len(domain.GoalCategories))
	for i, c := range domain.GoalCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
