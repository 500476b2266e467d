package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/intelligence"
	"github.com/alexanderramin/zenith/internal/llm"
	"github.com/alexanderramin/zenith/internal/repository"
	"github.com/google/uuid"
)

// Session exclusively owns one user's goals, preferences, current routine
// and coaching transcript. It is shared by reference with whichever surface
// drives it.
type Session struct {
	store    *repository.Store
	routines intelligence.RoutineService
	insights intelligence.InsightService
	coach    *intelligence.CoachSession

	newID func() string
	now   func() time.Time

	// routineMu runs generations one at a time, so the last call wins.
	routineMu sync.Mutex
}

// Option customizes a Session.
type Option func(*Session)

// WithIDGenerator overrides goal id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

// WithClock overrides the time source used for summaries.
func WithClock(fn func() time.Time) Option {
	return func(s *Session) { s.now = fn }
}

// NewSession wires a Session over store with AI services backed by client.
func NewSession(store *repository.Store, client llm.Client, opts ...Option) *Session {
	s := &Session{
		store:    store,
		routines: intelligence.NewRoutineService(client),
		insights: intelligence.NewInsightService(client),
		coach:    intelligence.NewCoachSession(client),
		newID:    func() string { return uuid.New().String() },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return s.store.Goals.List(ctx)
}

// AddGoal validates in, assigns a fresh id and stores an active goal.
func (s *Session) AddGoal(ctx context.Context, in domain.GoalInput) (*domain.Goal, error) {
	g, err := domain.NewGoal(s.newID(), in)
	if err != nil {
		return nil, err
	}
	if err := s.store.Goals.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Session) RemoveGoal(ctx context.Context, id string) error {
	return s.store.Goals.Delete(ctx, id)
}

// Preferences returns the live preferences, or the defaults if none were set.
func (s *Session) Preferences(ctx context.Context) (domain.UserPreferences, error) {
	p, err := s.store.Preferences.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.UserPreferences{}, err
	}
	return *p, nil
}

// SetPreferences validates in and replaces the live preferences whole. On
// error the previous value is kept.
func (s *Session) SetPreferences(ctx context.Context, in domain.PreferencesInput) (domain.UserPreferences, error) {
	p, err := domain.NewPreferences(in)
	if err != nil {
		return domain.UserPreferences{}, err
	}
	if err := s.store.Preferences.Upsert(ctx, &p); err != nil {
		return domain.UserPreferences{}, err
	}
	return p, nil
}

// Routine returns the current routine; empty before the first success.
func (s *Session) Routine(ctx context.Context) ([]domain.RoutineItem, error) {
	return s.store.Routine.Get(ctx)
}

// GenerateRoutine asks for a fresh routine and replaces the current one only
// if the whole sequence arrives valid.
func (s *Session) GenerateRoutine(ctx context.Context) ([]domain.RoutineItem, error) {
	s.routineMu.Lock()
	defer s.routineMu.Unlock()

	goals, err := s.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	prefs, err := s.Preferences(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.routines.Generate(ctx, goals, prefs)
	if err != nil {
		return nil, err
	}
	if err := s.store.Routine.Replace(ctx, items); err != nil {
		return nil, fmt.Errorf("storing routine: %w", err)
	}
	return domain.CloneRoutine(items), nil
}

func (s *Session) GetInsights(ctx context.Context) (string, error) {
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return "", err
	}
	routine, err := s.Routine(ctx)
	if err != nil {
		return "", err
	}
	return s.insights.Insights(ctx, goals, routine)
}

func (s *Session) SendChatMessage(ctx context.Context, text string) (string, error) {
	return s.coach.Send(ctx, text)
}

// SendChatMessageWithFallback sends text and, if the provider fails, records
// fallback as a flagged reply to that same turn. The error is still returned.
func (s *Session) SendChatMessageWithFallback(ctx context.Context, text, fallback string) (string, error) {
	return s.coach.SendWithFallback(ctx, text, fallback)
}

func (s *Session) Transcript() []domain.ChatMessage {
	return s.coach.Transcript()
}

// CoachBusy reports whether a chat reply is pending.
func (s *Session) CoachBusy() bool {
	return s.coach.State() == intelligence.CoachAwaitingResponse
}

func (s *Session) Summary(ctx context.Context) (*Summary, error) {
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	routine, err := s.Routine(ctx)
	if err != nil {
		return nil, err
	}
	prefs, err := s.Preferences(ctx)
	if err != nil {
		return nil, err
	}
	return buildSummary(s.now(), goals, routine, s.Transcript(), prefs), nil
}
