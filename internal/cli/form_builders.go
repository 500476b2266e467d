package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var errNotInteractive = errors.New("this command needs a terminal; use flags instead")

// zenithHuhTheme maps the formatter palette onto huh.
func zenithHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themedForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(zenithHuhTheme()).WithShowHelp(false)
}

// goalForm asks for the three goal fields and writes them into in.
func goalForm(in *domain.GoalInput) *huh.Form {
	if in.Category == "" {
		in.Category = string(domain.CategoryPersonal)
	}
	options := make([]huh.Option[string], len(domain.GoalCategories))
	for i, c := range domain.GoalCategories {
		options[i] = huh.NewOption(string(c), string(c))
	}

	return themedForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Placeholder("Run a Marathon").
				Value(&in.Title).
				Validate(validateRequired("a title")),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&in.Category),
			huh.NewInput().
				Title("Target date (YYYY-MM-DD)").
				Placeholder(time.Now().AddDate(0, 3, 0).Format(domain.DateLayout)).
				Value(&in.TargetDate).
				Validate(validateDate),
		),
	)
}

// prefsForm edits all preference fields at once.
func prefsForm(f *prefsFields) *huh.Form {
	options := make([]huh.Option[string], len(domain.FocusPeriods))
	for i, p := range domain.FocusPeriods {
		options[i] = huh.NewOption(string(p), string(p))
	}

	return themedForm(
		huh.NewGroup(
			huh.NewInput().Title("Wake up (HH:MM)").Value(&f.wake).Validate(validateClock),
			huh.NewInput().Title("Sleep (HH:MM)").Value(&f.sleep).Validate(validateClock),
			huh.NewSelect[string]().Title("Peak focus").Options(options...).Value(&f.focus),
			huh.NewInput().
				Title("Interests").
				Description("Comma-separated").
				Value(&f.interests),
		),
	)
}

// confirmForm asks a yes/no question.
func confirmForm(title string, result *bool) *huh.Form {
	return themedForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}

func validateRequired(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("enter %s", what)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil || len(strings.TrimSpace(s)) != 5 {
		return fmt.Errorf("use 24-hour HH:MM")
	}
	return nil
}
