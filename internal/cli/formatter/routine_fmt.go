package formatter

import (
	"strings"

	"github.com/alexanderramin/zenith/internal/domain"
)

const (
	// NoGoalsMessage is shown when a routine is requested before any goal exists.
	NoGoalsMessage = "Please add some goals before generating a routine."
	// RoutineFailureMessage is shown when routine generation fails.
	RoutineFailureMessage = "The AI architect is busy. Please try again in a moment."
	// InsightFailureMessage is shown when insights cannot be produced.
	InsightFailureMessage = "Insights are unavailable right now. Please try again in a moment."
)

// FormatRoutine renders the routine timeline in provider order.
func FormatRoutine(items []domain.RoutineItem) string {
	if len(items) == 0 {
		return Dim("No routine yet. Run 'routine generate' to architect your day.")
	}

	headers := []string{"", "TIME", "ACTIVITY", "DURATION", "CATEGORY"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			ActivityIcon(it.Category),
			StyleBold.Render(it.Time),
			it.Activity,
			Dim(it.Duration),
			StylePurple.Render(it.Category),
		})
	}
	return RenderBox("Daily Routine", RenderTable(headers, rows))
}

// FormatInsights renders the provider's insight text as-is inside a box.
func FormatInsights(text string) string {
	return RenderBox("Insights", strings.TrimSpace(text))
}
