package testutil

import (
	"time"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/google/uuid"
)

// GoalOption customizes a test goal.
type GoalOption func(*domain.Goal)

func WithCategory(c domain.GoalCategory) GoalOption {
	return func(g *domain.Goal) {
		g.Category = c
	}
}

func WithTargetDate(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.TargetDate = d
	}
}

// NewTestGoal returns an active Health goal with a fresh id, due 2026-12-01.
func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	g := &domain.Goal{
		ID:         uuid.New().String(),
		Title:      title,
		Category:   domain.CategoryHealth,
		TargetDate: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		Status:     domain.GoalActive,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewTestRoutine returns n well-formed routine items one hour apart from 07:00.
func NewTestRoutine(n int) []domain.RoutineItem {
	categories := []string{"Health", "Deep Work", "Rest", "Skill Acquisition"}
	items := make([]domain.RoutineItem, n)
	for i := range items {
		items[i] = domain.RoutineItem{
			Time:     time.Date(0, 1, 1, 7+i%17, 0, 0, 0, time.UTC).Format("15:04"),
			Activity: "Activity " + string(rune('A'+i%26)),
			Duration: "60 mins",
			Category: categories[i%len(categories)],
		}
	}
	return items
}
