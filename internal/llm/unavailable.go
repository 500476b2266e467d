package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// NewClient picks the provider described by config. Without an API key it
// returns a client whose calls fail with ErrRequestFailed, so commands that
// never reach the provider keep working.
func NewClient(ctx context.Context, config LLMConfig, observer Observer) (Client, error) {
	if config.Fake {
		return NewFakeClient(observer), nil
	}
	c, err := NewGeminiClient(ctx, config, observer)
	if errors.Is(err, ErrAPIKeyMissing) {
		return &unavailableClient{model: config.Model, cause: err}, nil
	}
	return c, err
}

type unavailableClient struct {
	model string
	cause error
}

func (u *unavailableClient) Model() string { return u.model }

func (u *unavailableClient) fail() error {
	return fmt.Errorf("%w: %w", ErrRequestFailed, u.cause)
}

func (u *unavailableClient) CompleteText(context.Context, TextRequest) (string, error) {
	return "", u.fail()
}

func (u *unavailableClient) CompleteStructured(context.Context, StructuredRequest) (json.RawMessage, error) {
	return nil, u.fail()
}

func (u *unavailableClient) Chat(context.Context, ChatRequest) (string, error) {
	return "", u.fail()
}
