package intelligence

import (
	"context"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/llm"
)

// InsightService produces short, free-form advice about the current plan.
type InsightService interface {
	Insights(ctx context.Context, goals []domain.Goal, routine []domain.RoutineItem) (string, error)
}

type insightService struct {
	client llm.Client
}

// NewInsightService creates an InsightService backed by an AI client.
func NewInsightService(client llm.Client) InsightService {
	return &insightService{client: client}
}

func (s *insightService) Insights(ctx context.Context, goals []domain.Goal, routine []domain.RoutineItem) (string, error) {
	text, err := s.client.CompleteText(ctx, llm.TextRequest{
		Task:              llm.TaskInsight,
		Prompt:            BuildInsightPrompt(goals, routine),
		SystemInstruction: insightSystemPrompt,
	})
	if err != nil {
		return "", asRequestFailed(err)
	}
	return text, nil
}
