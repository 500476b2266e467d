package app

import (
	"context"
	"time"

	"github.com/alexanderramin/zenith/internal/domain"
)

// DemoGoals are the goals a fresh demo session starts with, due relative to now.
func DemoGoals(now time.Time) []domain.GoalInput {
	return []domain.GoalInput{
		{Title: "Run a Marathon", Category: string(domain.CategoryHealth), TargetDate: now.AddDate(0, 6, 0).Format(domain.DateLayout)},
		{Title: "Learn TypeScript Deeply", Category: string(domain.CategorySkill), TargetDate: now.AddDate(0, 3, 0).Format(domain.DateLayout)},
	}
}

// SeedDemoGoals adds DemoGoals to the session.
func (s *Session) SeedDemoGoals(ctx context.Context) error {
	for _, in := range DemoGoals(s.now()) {
		if _, err := s.AddGoal(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
