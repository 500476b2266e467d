package intelligence

import (
	"strings"
	"testing"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildRoutinePrompt_EmbedsInputs(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prompt := BuildRoutinePrompt(testGoals(), prefs)

	assert.Contains(t, prompt, "Run a Marathon, Learn TypeScript Deeply")
	assert.Contains(t, prompt, "Wake up at 07:00")
	assert.Contains(t, prompt, "Sleep at 22:30")
	assert.Contains(t, prompt, "Peak focus in the Morning")
	assert.Contains(t, prompt, "Interests: Tech, Philosophy, Fitness.")
	assert.Contains(t, prompt, "time, activity, duration, and category")
}

func TestBuildRoutinePrompt_Deterministic(t *testing.T) {
	prefs := domain.UserPreferences{
		WakeUpTime: "05:45",
		SleepTime:  "21:00",
		FocusTime:  domain.FocusEvening,
		Interests:  []string{"Chess", "Cooking"},
	}
	first := BuildRoutinePrompt(testGoals(), prefs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildRoutinePrompt(testGoals(), prefs))
	}
}

func TestBuildRoutinePrompt_NoInterests(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.Interests = nil
	prompt := BuildRoutinePrompt(testGoals()[:1], prefs)
	assert.Contains(t, prompt, "goals: Run a Marathon.")
	assert.Contains(t, prompt, "Interests: .")
}

func TestBuildInsightPrompt_SerializesAsJSON(t *testing.T) {
	goals := testGoals()
	goals[0].Title = `R&D "sprint" <plan>`
	routine := []domain.RoutineItem{{Time: "07:00", Activity: "Run", Duration: "30m", Category: "Health"}}

	prompt := BuildInsightPrompt(goals, routine)

	assert.Contains(t, prompt, `"title":"R&D \"sprint\" <plan>"`)
	assert.Contains(t, prompt, `"targetDate":"2026-12-01"`)
	assert.Contains(t, prompt, `"status":"active"`)
	assert.Contains(t, prompt, `Current Routine: [{"time":"07:00","activity":"Run","duration":"30m","category":"Health"}]`)
	assert.Contains(t, prompt, "exactly 3 actionable insights")
}

func TestBuildInsightPrompt_EmptyInputs(t *testing.T) {
	prompt := BuildInsightPrompt(nil, nil)
	assert.Contains(t, prompt, "Goals: []\n")
	assert.Contains(t, prompt, "Current Routine: []\n")
	assert.Equal(t, prompt, BuildInsightPrompt(nil, nil))
	assert.False(t, strings.Contains(prompt, "null"))
}
