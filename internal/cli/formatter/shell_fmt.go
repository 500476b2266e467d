package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the banner shown on shell startup.
func FormatShellWelcome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  zenith") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n\n")
	b.WriteString(StyleDim.Render("  Add your goals, then let the architect plan your day.") + "\n\n")
	for _, c := range [][]string{
		{"goal add", "Add a goal"},
		{"goals", "List your goals"},
		{"generate", "Generate today's routine"},
		{"insights", "Get three focus insights"},
		{"coach", "Talk to your AI coach"},
		{"help", "Show all commands"},
	} {
		b.WriteString(fmt.Sprintf("  %s%s\n", StyleGreen.Render(fmt.Sprintf("%-15s", c[0])), StyleDim.Render(c[1])))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Tab accepts a suggestion. Up/Down walk history.") + "\n")

	return b.String()
}

type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleGreen.Render(fmt.Sprintf("%-24s", c[0])),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the categorized command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Goals",
			commands: [][]string{
				{"goals", "List goals"},
				{"goal add", "Add a goal (form if flags omitted)"},
				{"goal remove <id>", "Remove a goal (asks to confirm)"},
			},
		},
		{
			title: "Day",
			commands: [][]string{
				{"prefs", "Show daily preferences"},
				{"prefs edit", "Edit preferences in a form"},
				{"generate", "Generate a new routine"},
				{"routine", "Show the current routine"},
				{"insights", "Three insights for your goals"},
				{"status", "Dashboard overview"},
			},
		},
		{
			title: "Coach",
			commands: [][]string{
				{"coach", "Open the chat (/quit to leave)"},
				{"coach say <message>", "Send one message"},
				{"coach transcript", "Show the conversation"},
			},
		},
		{
			title: "Utilities",
			commands: [][]string{
				{"help", "Show this command reference"},
				{"clear", "Clear the screen"},
				{"exit / quit", "Quit zenith"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Every 'zenith' subcommand also works here."))

	return RenderBox("Commands", b.String())
}
