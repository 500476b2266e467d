package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleItalic = lipgloss.NewStyle().Foreground(ColorDim).Italic(true)
)

// GoalCategoryStyle returns the accent used for a goal category.
func GoalCategoryStyle(c domain.GoalCategory) lipgloss.Style {
	switch c {
	case domain.CategoryCareer:
		return StyleBlue
	case domain.CategoryHealth:
		return StyleGreen
	case domain.CategoryPersonal:
		return StylePurple
	case domain.CategoryFinancial:
		return StyleYellow
	case domain.CategorySkill:
		return StyleHeader
	default:
		return StyleDim
	}
}

// ActivityIcon maps a free-form routine category onto a glyph. Deep work,
// movement and rest get their own icons; everything else shares a dot.
func ActivityIcon(category string) string {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "work"), strings.Contains(c, "deep"), strings.Contains(c, "focus"):
		return StyleYellow.Render("◆")
	case strings.Contains(c, "fitness"), strings.Contains(c, "movement"), strings.Contains(c, "health"):
		return StyleGreen.Render("▲")
	case strings.Contains(c, "rest"), strings.Contains(c, "sleep"):
		return StyleBlue.Render("☾")
	default:
		return StylePurple.Render("●")
	}
}

// GoalStatusPill returns a colored status indicator.
func GoalStatusPill(status domain.GoalStatus) string {
	switch status {
	case domain.GoalActive:
		return StyleGreen.Render("● Active")
	case domain.GoalOnHold:
		return StyleYellow.Render("○ On hold")
	case domain.GoalCompleted:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
