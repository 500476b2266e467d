package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FakeClient returns deterministic payloads per task for offline use and demos.
type FakeClient struct {
	observer Observer
}

// NewFakeClient creates a FakeClient reporting calls to observer.
func NewFakeClient(observer Observer) *FakeClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &FakeClient{observer: observer}
}

func (f *FakeClient) Model() string { return "fake" }

func (f *FakeClient) CompleteText(ctx context.Context, req TextRequest) (string, error) {
	if err := f.done(ctx, req.Task); err != nil {
		return "", err
	}
	return strings.Join([]string{
		"1. **Protect your first focus block.** Start deep work before checking messages so your most important goal gets your best energy.",
		"2. **Anchor habits to existing cues.** Attach each new behaviour to something you already do every day.",
		"3. **Review the day in two minutes.** A short evening check-in keeps the routine honest and easy to adjust.",
	}, "\n"), nil
}

func (f *FakeClient) CompleteStructured(ctx context.Context, req StructuredRequest) (json.RawMessage, error) {
	if err := f.done(ctx, req.Task); err != nil {
		return nil, err
	}
	routine := []map[string]string{
		{"time": "07:00", "activity": "Wake up, hydrate and stretch", "duration": "20 mins", "category": "Health"},
		{"time": "07:30", "activity": "Deep work on top goal", "duration": "90 mins", "category": "Focus"},
		{"time": "09:00", "activity": "Planning and email", "duration": "30 mins", "category": "Work"},
		{"time": "12:30", "activity": "Lunch and short walk", "duration": "45 mins", "category": "Rest"},
		{"time": "18:00", "activity": "Skill practice", "duration": "60 mins", "category": "Learning"},
		{"time": "22:00", "activity": "Wind down and read", "duration": "30 mins", "category": "Rest"},
	}
	raw, err := json.Marshal(routine)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	return raw, nil
}

func (f *FakeClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if err := f.done(ctx, req.Task); err != nil {
		return "", err
	}
	return fmt.Sprintf("I hear you. You said %q. What is one small step you could take on that today?", req.Message), nil
}

func (f *FakeClient) done(ctx context.Context, task TaskType) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		f.observer.OnCallComplete(LLMCallEvent{Task: task, Model: f.Model(), Success: false, ErrorCode: ErrorCodeTimeout})
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	f.observer.OnCallComplete(LLMCallEvent{Task: task, Model: f.Model(), LatencyMs: time.Since(start).Milliseconds(), Success: true})
	return nil
}
