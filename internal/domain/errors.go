package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGoalsProvided indicates a routine was requested for an empty goal list.
	ErrNoGoalsProvided = errors.New("no goals provided")

	// ErrInvalidRoutineFormat indicates the provider answered but the payload
	// is not a well-formed list of complete routine items.
	ErrInvalidRoutineFormat = errors.New("invalid routine format")

	// ErrInvalidCategory indicates a goal category outside the closed set.
	ErrInvalidCategory = errors.New("invalid goal category")

	// ErrInvalidGoal indicates missing or malformed goal fields.
	ErrInvalidGoal = errors.New("invalid goal")

	// ErrInvalidPreferences indicates malformed preference fields.
	ErrInvalidPreferences = errors.New("invalid preferences")

	// ErrGoalNotFound indicates no goal with the given ID exists in the store.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrEmptyMessage indicates a blank chat message.
	ErrEmptyMessage = errors.New("message is empty")
)

func invalidf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
