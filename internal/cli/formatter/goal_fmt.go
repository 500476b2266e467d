package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/zenith/internal/domain"
)

// FormatGoalList renders goals in insertion order inside a titled box.
func FormatGoalList(goals []domain.Goal, now time.Time) string {
	if len(goals) == 0 {
		return Dim("No goals yet. Add one with 'goal add'.")
	}

	headers := []string{"ID", "TITLE", "CATEGORY", "TARGET", "DUE", "STATUS"}
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			Dim(ShortID(g.ID)),
			Bold(Truncate(g.Title, 40)),
			GoalCategoryStyle(g.Category).Render(string(g.Category)),
			g.TargetDateString(),
			DueStyled(g.TargetDate, now),
			GoalStatusPill(g.Status),
		})
	}
	return RenderBox("Active Goals", RenderTable(headers, rows))
}

// FormatGoalLine renders one goal as "title • category • date".
func FormatGoalLine(g domain.Goal) string {
	sep := Dim(" • ")
	return Bold(g.Title) + sep +
		GoalCategoryStyle(g.Category).Render(string(g.Category)) + sep +
		g.TargetDate.Format("Jan 2, 2006")
}

func FormatGoalAdded(g *domain.Goal) string {
	return fmt.Sprintf("%s %s %s", StyleGreen.Render("✔ Added"), FormatGoalLine(*g), Dim("("+ShortID(g.ID)+")"))
}

func FormatGoalRemoved(id string) string {
	return StyleGreen.Render("✔ Removed") + " " + Dim(ShortID(id))
}
