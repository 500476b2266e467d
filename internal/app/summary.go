package app

import (
	"time"

	"github.com/alexanderramin/zenith/internal/domain"
)

// GoalDeadline names the goal whose target date comes first.
type GoalDeadline struct {
	GoalID     string
	Title      string
	TargetDate time.Time
	DaysLeft   int
}

// Summary holds the dashboard counts for one session.
type Summary struct {
	GeneratedAt     time.Time
	TotalGoals      int
	ActiveGoals     int
	GoalsByCategory map[domain.GoalCategory]int
	NextDeadline    *GoalDeadline
	RoutineItems    int
	ChatMessages    int
	Preferences     domain.UserPreferences
}

func buildSummary(now time.Time, goals []domain.Goal, routine []domain.RoutineItem, transcript []domain.ChatMessage, prefs domain.UserPreferences) *Summary {
	s := &Summary{
		GeneratedAt:     now,
		TotalGoals:      len(goals),
		GoalsByCategory: make(map[domain.GoalCategory]int, len(domain.GoalCategories)),
		RoutineItems:    len(routine),
		ChatMessages:    len(transcript),
		Preferences:     prefs,
	}
	for _, c := range domain.GoalCategories {
		s.GoalsByCategory[c] = 0
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, g := range goals {
		s.GoalsByCategory[g.Category]++
		if !g.IsActive() {
			continue
		}
		s.ActiveGoals++
		if s.NextDeadline == nil || g.TargetDate.Before(s.NextDeadline.TargetDate) {
			s.NextDeadline = &GoalDeadline{
				GoalID:     g.ID,
				Title:      g.Title,
				TargetDate: g.TargetDate,
				DaysLeft:   int(g.TargetDate.Sub(today).Hours() / 24),
			}
		}
	}
	return s
}
