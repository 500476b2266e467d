package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/zenith/internal/domain"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by geminiClient.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiClient struct {
	config   LLMConfig
	models   contentGenerator
	observer Observer
}

// NewGeminiClient creates a Client backed by the Gemini API.
func NewGeminiClient(ctx context.Context, config LLMConfig, observer Observer) (Client, error) {
	if config.APIKey == "" {
		return nil, ErrAPIKeyMissing
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return newGeminiClient(config, client.Models, observer), nil
}

func newGeminiClient(config LLMConfig, models contentGenerator, observer Observer) *geminiClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{config: config, models: models, observer: observer}
}

func (c *geminiClient) Model() string {
	return c.config.Model
}

func (c *geminiClient) CompleteText(ctx context.Context, req TextRequest) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}
	return c.generate(ctx, req.Task, contents, c.generationConfig(req.Task, req.SystemInstruction))
}

func (c *geminiClient) CompleteStructured(ctx context.Context, req StructuredRequest) (json.RawMessage, error) {
	cfg := c.generationConfig(req.Task, req.SystemInstruction)
	cfg.ResponseMIMEType = "application/json"
	cfg.ResponseSchema = req.Schema.toGenai()

	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}

	start := time.Now()
	text, err := c.call(ctx, req.Task, contents, cfg)
	if err != nil {
		c.emit(req.Task, start, classifyError(err))
		return nil, err
	}
	block, err := ExtractJSONValue(text)
	if err != nil {
		c.emit(req.Task, start, ErrorCodeMalformed)
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	c.emit(req.Task, start, "")
	return block, nil
}

func (c *geminiClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, msg := range req.History {
		if msg.Fallback {
			continue
		}
		role := genai.Role(genai.RoleUser)
		if msg.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(req.Message, genai.RoleUser))
	return c.generate(ctx, req.Task, contents, c.generationConfig(req.Task, req.SystemInstruction))
}

func (c *geminiClient) generate(ctx context.Context, task TaskType, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	start := time.Now()
	text, err := c.call(ctx, task, contents, cfg)
	if err != nil {
		c.emit(task, start, classifyError(err))
		return "", err
	}
	c.emit(task, start, "")
	return text, nil
}

// call performs exactly one provider request under the task timeout.
func (c *geminiClient) call(ctx context.Context, task TaskType, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	timeout := time.Duration(c.config.TaskTimeout(task)) * time.Millisecond
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := c.models.GenerateContent(ctx, c.config.Model, contents, cfg)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %w", ErrRequestFailed, errTimeout)
		}
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, errEmptyResponse)
	}
	return text, nil
}

func (c *geminiClient) generationConfig(task TaskType, system string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if tc, ok := c.config.Tasks[task]; ok {
		if tc.Temperature > 0 {
			temp := float32(tc.Temperature)
			cfg.Temperature = &temp
		}
		if tc.MaxTokens > 0 {
			cfg.MaxOutputTokens = int32(tc.MaxTokens)
		}
	}
	return cfg
}

func (c *geminiClient) emit(task TaskType, start time.Time, code string) {
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      task,
		Model:     c.config.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   code == "",
		ErrorCode: code,
	})
}

var (
	errTimeout       = errors.New("request timed out")
	errEmptyResponse = errors.New("empty response")
)

func classifyError(err error) string {
	switch {
	case errors.Is(err, errTimeout):
		return ErrorCodeTimeout
	case errors.Is(err, errEmptyResponse):
		return ErrorCodeEmpty
	default:
		return ErrorCodeProvider
	}
}

// responseText concatenates the non-thought text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}
