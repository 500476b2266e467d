package intelligence

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoutine_Valid(t *testing.T) {
	raw := json.RawMessage(`[
		{"time":"07:00","activity":"Run","duration":"30m","category":"Health"},
		{"time":"08:00","activity":"Deep work","duration":"2h","category":"Deep Work","note":"extra fields are ignored"}
	]`)
	items, err := ValidateRoutine(raw)
	require.NoError(t, err)
	assert.Equal(t, []domain.RoutineItem{
		{Time: "07:00", Activity: "Run", Duration: "30m", Category: "Health"},
		{Time: "08:00", Activity: "Deep work", Duration: "2h", Category: "Deep Work"},
	}, items)
}

func TestValidateRoutine_EmptyIsNotAnError(t *testing.T) {
	for _, raw := range []string{"", "   ", "null", "[]", " [ ] "} {
		items, err := ValidateRoutine(json.RawMessage(raw))
		require.NoError(t, err, "input %q", raw)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	}
}

func TestValidateRoutine_RejectsWholeBatch(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing fields", `[{"time":"07:00"}]`},
		{"one bad record among good ones", `[{"time":"07:00","activity":"Run","duration":"30m","category":"Health"},{"time":"08:00","activity":"Read","duration":"1h"}]`},
		{"empty field", `[{"time":"07:00","activity":"","duration":"30m","category":"Health"}]`},
		{"blank field", `[{"time":"07:00","activity":"  ","duration":"30m","category":"Health"}]`},
		{"non-text field", `[{"time":"07:00","activity":"Run","duration":30,"category":"Health"}]`},
		{"null record", `[null]`},
		{"not an array", `{"time":"07:00","activity":"Run","duration":"30m","category":"Health"}`},
		{"array of strings", `["07:00 Run"]`},
		{"not json", `the AI architect is busy`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ValidateRoutine(json.RawMessage(tt.raw))
			assert.ErrorIs(t, err, domain.ErrInvalidRoutineFormat)
			assert.Nil(t, items)
		})
	}
}

func TestRoutineSchema_RequiresAllFields(t *testing.T) {
	require.NotNil(t, RoutineSchema.Items)
	assert.ElementsMatch(t, []string{"time", "activity", "duration", "category"}, RoutineSchema.Items.Required)
	assert.Equal(t, []string{"time", "activity", "duration", "category"}, RoutineSchema.Items.PropertyOrdering)
	for _, f := range RoutineSchema.Items.Required {
		assert.Contains(t, RoutineSchema.Items.Properties, f)
	}
}
