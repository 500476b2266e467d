package llm

import (
	"context"
	"encoding/json"

	"github.com/alexanderramin/zenith/internal/domain"
)

// TextRequest holds the parameters for a free-form completion.
type TextRequest struct {
	Task              TaskType
	Prompt            string
	SystemInstruction string
}

// StructuredRequest holds the parameters for a schema-constrained completion.
type StructuredRequest struct {
	Task              TaskType
	Prompt            string
	SystemInstruction string
	Schema            *Schema
}

// ChatRequest holds one conversational turn. History is the full prior
// transcript in order; Message is the new user message.
type ChatRequest struct {
	Task              TaskType
	History           []domain.ChatMessage
	Message           string
	SystemInstruction string
}

// Client is the narrow capability wrapping the generative-AI provider. It is
// the only component that performs network I/O. Every failure is reported
// as ErrRequestFailed; implementations never retry.
type Client interface {
	// CompleteText returns trimmed free-form text.
	CompleteText(ctx context.Context, req TextRequest) (string, error)

	// CompleteStructured requests schema-constrained output and returns it
	// as well-formed JSON.
	CompleteStructured(ctx context.Context, req StructuredRequest) (json.RawMessage, error)

	// Chat presents History followed by Message and returns the reply text.
	Chat(ctx context.Context, req ChatRequest) (string, error)

	// Model names the provider model in use.
	Model() string
}
