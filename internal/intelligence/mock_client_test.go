package intelligence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/llm"
)

// mockLLMClient is a scripted llm.Client. Chat replies are consumed in order.
type mockLLMClient struct {
	mu sync.Mutex

	response string
	err      error
	errs     []error
	replies  []string
	delays   []time.Duration
	gate     chan struct{}

	calls        int
	lastPrompt   string
	lastSystem   string
	lastSchema   *llm.Schema
	lastHistory  []domain.ChatMessage
	lastMessage  string
	lastTaskType llm.TaskType
}

func (m *mockLLMClient) Model() string { return "mock" }

func (m *mockLLMClient) CompleteText(_ context.Context, req llm.TextRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastPrompt, m.lastSystem, m.lastTaskType = req.Prompt, req.SystemInstruction, req.Task
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLMClient) CompleteStructured(_ context.Context, req llm.StructuredRequest) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastPrompt, m.lastSystem, m.lastTaskType = req.Prompt, req.SystemInstruction, req.Task
	m.lastSchema = req.Schema
	if m.err != nil {
		return nil, m.err
	}
	return json.RawMessage(m.response), nil
}

func (m *mockLLMClient) Chat(ctx context.Context, req llm.ChatRequest) (string, error) {
	m.mu.Lock()
	idx := m.calls
	m.calls++
	m.lastHistory = append([]domain.ChatMessage(nil), req.History...)
	m.lastMessage, m.lastSystem, m.lastTaskType = req.Message, req.SystemInstruction, req.Task
	gate := m.gate
	var delay time.Duration
	if idx < len(m.delays) {
		delay = m.delays[idx]
	}
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if delay > 0 {
		time.Sleep(delay)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if idx < len(m.errs) && m.errs[idx] != nil {
		return "", m.errs[idx]
	}
	if m.err != nil {
		return "", m.err
	}
	if idx < len(m.replies) {
		return m.replies[idx], nil
	}
	return m.response, nil
}

func (m *mockLLMClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func testGoals() []domain.Goal {
	return []domain.Goal{
		{ID: "g1", Title: "Run a Marathon", Category: domain.CategoryHealth, TargetDate: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), Status: domain.GoalActive},
		{ID: "g2", Title: "Learn TypeScript Deeply", Category: domain.CategorySkill, TargetDate: time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC), Status: domain.GoalActive},
	}
}
