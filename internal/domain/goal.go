package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for goal target dates.
const DateLayout = "2006-01-02"

type Goal struct {
	ID         string
	Title      string
	Category   GoalCategory
	TargetDate time.Time
	Status     GoalStatus
}

// GoalInput holds the user-supplied fields of a new goal, before validation.
type GoalInput struct {
	Title      string
	Category   string
	TargetDate string
}

// NewGoal validates in and builds an active Goal with the given ID.
func NewGoal(id string, in GoalInput) (*Goal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalidf(ErrInvalidGoal, "title is required")
	}
	category, err := ParseGoalCategory(in.Category)
	if err != nil {
		return nil, err
	}
	raw := strings.TrimSpace(in.TargetDate)
	if raw == "" {
		return nil, invalidf(ErrInvalidGoal, "target date is required")
	}
	target, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, invalidf(ErrInvalidGoal, "target date %q must be YYYY-MM-DD", raw)
	}
	return &Goal{
		ID:         id,
		Title:      title,
		Category:   category,
		TargetDate: target,
		Status:     GoalActive,
	}, nil
}

// TargetDateString returns the target date in DateLayout.
func (g *Goal) TargetDateString() string {
	return g.TargetDate.Format(DateLayout)
}

// IsActive reports whether the goal is still being pursued.
func (g *Goal) IsActive() bool {
	return g.Status == GoalActive
}

// GoalTitles returns the titles of goals in order.
func GoalTitles(goals []Goal) []string {
	titles := make([]string, len(goals))
	for i, g := range goals {
		titles[i] = g.Title
	}
	return titles
}
