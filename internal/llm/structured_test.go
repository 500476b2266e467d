package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntry struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

func TestExtractJSON_CleanArray(t *testing.T) {
	raw := `[{"time":"07:00","activity":"Run"},{"time":"08:00","activity":"Read"}]`
	result, err := ExtractJSON[[]testEntry](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Run", result[0].Activity)
	assert.Equal(t, "08:00", result[1].Time)
}

func TestExtractJSON_FencedArray(t *testing.T) {
	raw := "```json\n[{\"time\":\"07:00\",\"activity\":\"Run\"}]\n```"
	result, err := ExtractJSON[[]testEntry](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Run", result[0].Activity)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is your day:\n[{\"time\":\"06:30\",\"activity\":\"Stretch\"}]\nEnjoy!"
	result, err := ExtractJSON[[]testEntry](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Stretch", result[0].Activity)
}

func TestExtractJSON_Object(t *testing.T) {
	raw := `{"time":"07:00","activity":"Run"}`
	result, err := ExtractJSON[testEntry](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Run", result.Activity)
}

func TestExtractJSON_BracketsInsideStrings(t *testing.T) {
	raw := `[{"time":"07:00","activity":"Review [draft] notes {v2}"}]`
	result, err := ExtractJSON[[]testEntry](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Review [draft] notes {v2}", result[0].Activity)
}

func TestExtractJSON_EmptyArray(t *testing.T) {
	result, err := ExtractJSON[[]testEntry]("  []  ", nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[[]testEntry]("I could not build a routine.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, err := ExtractJSON[[]testEntry](`[{"time":"07:00"`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[[]testEntry](`[{"time":"07:00", broken}]`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_WrongShape(t *testing.T) {
	_, err := ExtractJSON[[]testEntry](`{"routine":"none"}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	validator := func(entries []testEntry) error {
		if len(entries) > 1 {
			return fmt.Errorf("expected at most one entry, got %d", len(entries))
		}
		return nil
	}
	_, err := ExtractJSON[[]testEntry](`[{"time":"1"},{"time":"2"}]`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_ProseAndFenceAroundValue(t *testing.T) {
	raw := "Sure, here it is:\n```json\n[{\"time\":\"07:00\",\"activity\":\"Run\"}]\n```\nLet me know if {anything} changes."
	result, err := ExtractJSON[[]testEntry](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Run", result[0].Activity)
}

func TestExtractJSON_CommentsAreRejected(t *testing.T) {
	_, err := ExtractJSON[[]testEntry]("[\n  // first\n  {\"time\":\"07:00\"}\n]", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONValue_ReturnsBlockOnly(t *testing.T) {
	block, err := ExtractJSONValue("Sure! [1, 2, 3] That's it.")
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(block))
}
