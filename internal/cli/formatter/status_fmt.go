package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/zenith/internal/app"
	"github.com/alexanderramin/zenith/internal/domain"
)

// FormatSummary renders the dashboard overview.
func FormatSummary(s *app.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s   %s %s\n",
		StyleBold.Render(fmt.Sprint(s.ActiveGoals)), Dim("active goals"),
		StyleBold.Render(fmt.Sprint(s.TotalGoals)), Dim("total"))

	for _, c := range domain.GoalCategories {
		n := s.GoalsByCategory[c]
		if n == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s %d\n", GoalCategoryStyle(c).Render(fmt.Sprintf("%-10s", c)), n)
	}

	b.WriteString("\n")
	if s.NextDeadline != nil {
		d := s.NextDeadline
		fmt.Fprintf(&b, "%s %s %s\n", Dim("Next deadline"), Bold(d.Title),
			DueStyled(d.TargetDate, s.GeneratedAt))
	} else {
		b.WriteString(Dim("No upcoming deadlines") + "\n")
	}

	routine := Dim("not generated")
	if s.RoutineItems > 0 {
		routine = fmt.Sprintf("%d activities", s.RoutineItems)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Routine      "), routine)
	fmt.Fprintf(&b, "%s %d messages\n", Dim("Coach        "), s.ChatMessages)
	fmt.Fprintf(&b, "%s %s-%s, %s focus",
		Dim("Day          "), s.Preferences.WakeUpTime, s.Preferences.SleepTime,
		strings.ToLower(string(s.Preferences.FocusTime)))

	return RenderBox("Zenith", b.String())
}
