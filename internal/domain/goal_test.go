package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoal_Valid(t *testing.T) {
	g, err := NewGoal("g1", GoalInput{Title: "  Run a Marathon ", Category: "health", TargetDate: "2026-12-01"})
	require.NoError(t, err)
	assert.Equal(t, "g1", g.ID)
	assert.Equal(t, "Run a Marathon", g.Title)
	assert.Equal(t, CategoryHealth, g.Category)
	assert.Equal(t, "2026-12-01", g.TargetDateString())
	assert.Equal(t, GoalActive, g.Status)
	assert.True(t, g.IsActive())
}

func TestNewGoal_InvalidCategory(t *testing.T) {
	_, err := NewGoal("g1", GoalInput{Title: "Travel", Category: "Leisure", TargetDate: "2026-12-01"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Contains(t, err.Error(), "Leisure")
}

func TestNewGoal_MissingFields(t *testing.T) {
	cases := map[string]GoalInput{
		"blank title":  {Title: "   ", Category: "Skill", TargetDate: "2026-01-01"},
		"missing date": {Title: "Learn Go", Category: "Skill"},
		"bad date":     {Title: "Learn Go", Category: "Skill", TargetDate: "01/02/2026"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewGoal("g1", in)
			assert.ErrorIs(t, err, ErrInvalidGoal)
		})
	}
}

func TestParseGoalCategory_AllCategories(t *testing.T) {
	for _, c := range GoalCategories {
		got, err := ParseGoalCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestGoalTitles(t *testing.T) {
	goals := []Goal{{Title: "A"}, {Title: "B"}}
	assert.Equal(t, []string{"A", "B"}, GoalTitles(goals))
	assert.Empty(t, GoalTitles(nil))
}
