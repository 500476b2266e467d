package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeClient_StructuredIsRoutineArray(t *testing.T) {
	c := NewFakeClient(nil)
	raw, err := c.CompleteStructured(context.Background(), StructuredRequest{Task: TaskRoutine})
	require.NoError(t, err)

	entries, err := ExtractJSON[[]map[string]string](string(raw), nil)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.NotEmpty(t, e["time"])
		assert.NotEmpty(t, e["activity"])
		assert.NotEmpty(t, e["duration"])
		assert.NotEmpty(t, e["category"])
	}
}

func TestFakeClient_ChatEchoesMessage(t *testing.T) {
	obs := &recordingObserver{}
	c := NewFakeClient(obs)
	reply, err := c.Chat(context.Background(), ChatRequest{Task: TaskCoach, Message: "I feel stuck"})
	require.NoError(t, err)
	assert.Contains(t, reply, "I feel stuck")
	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
}

func TestFakeClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFakeClient(nil).CompleteText(ctx, TextRequest{Task: TaskInsight})
	assert.ErrorIs(t, err, ErrRequestFailed)
}
