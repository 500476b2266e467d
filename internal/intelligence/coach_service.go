package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/llm"
)

// ErrSessionBusy is returned when a send overlaps one still awaiting a reply.
var ErrSessionBusy = errors.New("coach session is awaiting a response")

// CoachState is the send state of a CoachSession.
type CoachState int

const (
	CoachIdle CoachState = iota
	CoachAwaitingResponse
)

func (s CoachState) String() string {
	if s == CoachAwaitingResponse {
		return "awaiting_response"
	}
	return "idle"
}

// CoachSession owns one append-only coaching transcript. Sends are
// serialized: a second send while one is pending fails with ErrSessionBusy.
type CoachSession struct {
	client llm.Client

	awaiting atomic.Bool

	mu         sync.Mutex
	transcript []domain.ChatMessage
}

// NewCoachSession creates an idle session with an empty transcript.
func NewCoachSession(client llm.Client) *CoachSession {
	return &CoachSession{client: client}
}

// Send appends text as a user message, asks the provider for a reply given
// the prior transcript and appends the reply on success. On failure the user
// message stays in the transcript.
func (s *CoachSession) Send(ctx context.Context, text string) (string, error) {
	return s.send(ctx, text, "")
}

// SendWithFallback is Send, except that a provider failure also appends
// fallback as a flagged assistant turn before the session goes idle again.
// The provider error is still returned.
func (s *CoachSession) SendWithFallback(ctx context.Context, text, fallback string) (string, error) {
	return s.send(ctx, text, fallback)
}

func (s *CoachSession) send(ctx context.Context, text, fallback string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.ErrEmptyMessage
	}
	if !s.awaiting.CompareAndSwap(false, true) {
		return "", ErrSessionBusy
	}
	defer s.awaiting.Store(false)

	s.mu.Lock()
	history := append([]domain.ChatMessage(nil), s.transcript...)
	s.transcript = append(s.transcript, domain.ChatMessage{Role: domain.RoleUser, Text: text})
	s.mu.Unlock()

	reply, err := s.client.Chat(ctx, llm.ChatRequest{
		Task:              llm.TaskCoach,
		History:           history,
		Message:           text,
		SystemInstruction: CoachSystemPrompt,
	})
	if err == nil {
		if reply = strings.TrimSpace(reply); reply == "" {
			err = fmt.Errorf("%w: empty reply", llm.ErrRequestFailed)
		}
	} else {
		err = asRequestFailed(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err == nil:
		s.transcript = append(s.transcript, domain.ChatMessage{Role: domain.RoleAssistant, Text: reply})
		return reply, nil
	case fallback != "":
		s.transcript = append(s.transcript, domain.ChatMessage{Role: domain.RoleAssistant, Text: fallback, Fallback: true})
	}
	return "", err
}

// Transcript returns a copy of the messages in append order.
func (s *CoachSession) Transcript() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// State reports whether a send is in flight.
func (s *CoachSession) State() CoachState {
	if s.awaiting.Load() {
		return CoachAwaitingResponse
	}
	return CoachIdle
}
