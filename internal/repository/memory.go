package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/zenith/internal/domain"
)

// MemoryGoalRepo implements GoalRepo with a mutex-guarded slice.
type MemoryGoalRepo struct {
	mu    sync.RWMutex
	goals []domain.Goal
}

// NewMemoryGoalRepo creates an empty MemoryGoalRepo.
func NewMemoryGoalRepo() *MemoryGoalRepo {
	return &MemoryGoalRepo{}
}

func (r *MemoryGoalRepo) Create(_ context.Context, g *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.goals {
		if existing.ID == g.ID {
			return fmt.Errorf("inserting goal: duplicate id %s", g.ID)
		}
	}
	r.goals = append(r.goals, *g)
	return nil
}

func (r *MemoryGoalRepo) List(_ context.Context) ([]domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Goal, len(r.goals))
	copy(out, r.goals)
	return out, nil
}

func (r *MemoryGoalRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.goals {
		if g.ID == id {
			r.goals = append(r.goals[:i:i], r.goals[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrGoalNotFound, id)
}

// MemoryPreferencesRepo implements PreferencesRepo in memory.
type MemoryPreferencesRepo struct {
	mu    sync.RWMutex
	prefs *domain.UserPreferences
}

// NewMemoryPreferencesRepo creates an empty MemoryPreferencesRepo.
func NewMemoryPreferencesRepo() *MemoryPreferencesRepo {
	return &MemoryPreferencesRepo{}
}

func (r *MemoryPreferencesRepo) Get(_ context.Context) (*domain.UserPreferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.prefs == nil {
		return nil, fmt.Errorf("preferences: %w", ErrNotFound)
	}
	p := r.prefs.Clone()
	return &p, nil
}

func (r *MemoryPreferencesRepo) Upsert(_ context.Context, p *domain.UserPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := p.Clone()
	r.prefs = &c
	return nil
}

// MemoryRoutineRepo implements RoutineRepo in memory.
type MemoryRoutineRepo struct {
	mu    sync.RWMutex
	items []domain.RoutineItem
}

// NewMemoryRoutineRepo creates an empty MemoryRoutineRepo.
func NewMemoryRoutineRepo() *MemoryRoutineRepo {
	return &MemoryRoutineRepo{}
}

func (r *MemoryRoutineRepo) Get(_ context.Context) ([]domain.RoutineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.CloneRoutine(r.items), nil
}

func (r *MemoryRoutineRepo) Replace(_ context.Context, items []domain.RoutineItem) error {
	next := domain.CloneRoutine(items)
	r.mu.Lock()
	r.items = next
	r.mu.Unlock()
	return nil
}
