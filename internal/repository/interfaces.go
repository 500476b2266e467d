package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/zenith/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// GoalRepo is the Goal Store: goals are added, listed in insertion order and
// removed. Stored goals are never edited in place.
type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	List(ctx context.Context) ([]domain.Goal, error)
	// Delete fails with domain.ErrGoalNotFound for an unknown id.
	Delete(ctx context.Context, id string) error
}

// PreferencesRepo holds the single live UserPreferences value.
type PreferencesRepo interface {
	// Get fails with ErrNotFound until preferences are first stored.
	Get(ctx context.Context) (*domain.UserPreferences, error)
	Upsert(ctx context.Context, p *domain.UserPreferences) error
}

// RoutineRepo holds the current routine. Replace swaps the whole sequence
// atomically: on error the previous routine is left intact.
type RoutineRepo interface {
	Get(ctx context.Context) ([]domain.RoutineItem, error)
	Replace(ctx context.Context, items []domain.RoutineItem) error
}

// Store groups the repositories backing one session.
type Store struct {
	Goals       GoalRepo
	Preferences PreferencesRepo
	Routine     RoutineRepo
}
