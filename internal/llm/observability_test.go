package llm

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogObserver_Success(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(zerolog.New(&buf))

	obs.OnCallComplete(LLMCallEvent{Task: TaskRoutine, Model: "gemini-2.5-flash", LatencyMs: 42, Success: true})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "llm_call", line["message"])
	assert.Equal(t, "routine", line["task"])
	assert.Equal(t, "gemini-2.5-flash", line["model"])
	assert.EqualValues(t, 42, line["latency_ms"])
	assert.NotContains(t, line, "error_code")
}

func TestLogObserver_Failure(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(zerolog.New(&buf))

	obs.OnCallComplete(LLMCallEvent{Task: TaskCoach, Model: "m", Success: false, ErrorCode: ErrorCodeTimeout})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, ErrorCodeTimeout, line["error_code"])
	assert.Equal(t, false, line["success"])
}
