package domain

import "strings"

type GoalCategory string

const (
	CategoryCareer    GoalCategory = "Career"
	CategoryHealth    GoalCategory = "Health"
	CategoryPersonal  GoalCategory = "Personal"
	CategoryFinancial GoalCategory = "Financial"
	CategorySkill     GoalCategory = "Skill"
)

// GoalCategories is the closed set of accepted categories, in display order.
var GoalCategories = []GoalCategory{
	CategoryCareer,
	CategoryHealth,
	CategoryPersonal,
	CategoryFinancial,
	CategorySkill,
}

// ParseGoalCategory narrows free text to a GoalCategory. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseGoalCategory(s string) (GoalCategory, error) {
	s = strings.TrimSpace(s)
	for _, c := range GoalCategories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", invalidf(ErrInvalidCategory, "%q is not one of %s", s, joinCategories())
}

func joinCategories() string {
	names := make([]string, len(GoalCategories))
	for i, c := range GoalCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalOnHold    GoalStatus = "on-hold"
)

type FocusPeriod string

const (
	FocusMorning   FocusPeriod = "Morning"
	FocusAfternoon FocusPeriod = "Afternoon"
	FocusEvening   FocusPeriod = "Evening"
)

// FocusPeriods is the closed set of accepted focus periods.
var FocusPeriods = []FocusPeriod{FocusMorning, FocusAfternoon, FocusEvening}

// ParseFocusPeriod narrows free text to a FocusPeriod, case-insensitively.
func ParseFocusPeriod(s string) (FocusPeriod, error) {
	s = strings.TrimSpace(s)
	for _, f := range FocusPeriods {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", invalidf(ErrInvalidPreferences, "focus time %q must be Morning, Afternoon or Evening", s)
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)
