package intelligence

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/llm"
)

// RoutineService turns goals and preferences into a validated daily routine.
type RoutineService interface {
	// Generate fails with domain.ErrNoGoalsProvided before any provider call
	// when goals is empty. Provider failures surface as llm.ErrRequestFailed
	// and malformed payloads as domain.ErrInvalidRoutineFormat.
	Generate(ctx context.Context, goals []domain.Goal, prefs domain.UserPreferences) ([]domain.RoutineItem, error)
}

type routineService struct {
	client llm.Client
}

// NewRoutineService creates a RoutineService backed by an AI client.
func NewRoutineService(client llm.Client) RoutineService {
	return &routineService{client: client}
}

func (s *routineService) Generate(ctx context.Context, goals []domain.Goal, prefs domain.UserPreferences) ([]domain.RoutineItem, error) {
	if len(goals) == 0 {
		return nil, domain.ErrNoGoalsProvided
	}

	raw, err := s.client.CompleteStructured(ctx, llm.StructuredRequest{
		Task:              llm.TaskRoutine,
		Prompt:            BuildRoutinePrompt(goals, prefs),
		SystemInstruction: routineSystemPrompt,
		Schema:            RoutineSchema,
	})
	if err != nil {
		return nil, asRequestFailed(err)
	}

	return ValidateRoutine(raw)
}

// asRequestFailed guarantees err carries llm.ErrRequestFailed.
func asRequestFailed(err error) error {
	if errors.Is(err, llm.ErrRequestFailed) {
		return err
	}
	return fmt.Errorf("%w: %v", llm.ErrRequestFailed, err)
}
