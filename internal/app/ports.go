package app

import (
	"context"

	"github.com/alexanderramin/zenith/internal/domain"
)

// GoalUseCase is the Goal Store surface offered to callers.
type GoalUseCase interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	AddGoal(ctx context.Context, in domain.GoalInput) (*domain.Goal, error)
	RemoveGoal(ctx context.Context, id string) error
}

type PreferencesUseCase interface {
	Preferences(ctx context.Context) (domain.UserPreferences, error)
	SetPreferences(ctx context.Context, in domain.PreferencesInput) (domain.UserPreferences, error)
}

type RoutineUseCase interface {
	Routine(ctx context.Context) ([]domain.RoutineItem, error)
	GenerateRoutine(ctx context.Context) ([]domain.RoutineItem, error)
}

type InsightUseCase interface {
	GetInsights(ctx context.Context) (string, error)
}

type CoachUseCase interface {
	SendChatMessage(ctx context.Context, text string) (string, error)
	SendChatMessageWithFallback(ctx context.Context, text, fallback string) (string, error)
	Transcript() []domain.ChatMessage
}

type SummaryUseCase interface {
	Summary(ctx context.Context) (*Summary, error)
}

// Facade is everything a presentation layer needs from one Session.
type Facade interface {
	GoalUseCase
	PreferencesUseCase
	RoutineUseCase
	InsightUseCase
	CoachUseCase
	SummaryUseCase
}

var _ Facade = (*Session)(nil)
