package cli

import (
	"testing"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validateDate("2027-04-19"))
	assert.NoError(t, validateDate(" 2027-04-19 "))
	assert.Error(t, validateDate(""))
	assert.Error(t, validateDate("19/04/2027"))

	assert.NoError(t, validateClock("07:00"))
	assert.NoError(t, validateClock("23:59"))
	assert.Error(t, validateClock("7:00"))
	assert.Error(t, validateClock("24:00"))
	assert.Error(t, validateClock("noon"))

	required := validateRequired("a title")
	assert.NoError(t, required("Run"))
	assert.EqualError(t, required("  "), "enter a title")
}

func TestGoalForm_DefaultsCategory(t *testing.T) {
	in := domain.GoalInput{}
	assert.NotNil(t, goalForm(&in))
	assert.Equal(t, string(domain.CategoryPersonal), in.Category)

	in = domain.GoalInput{Category: "Skill"}
	goalForm(&in)
	assert.Equal(t, "Skill", in.Category)
}

func TestPrefsFields_RoundTrip(t *testing.T) {
	f := newPrefsFields(domain.DefaultPreferences())
	assert.Equal(t, "Tech, Philosophy, Fitness", f.interests)
	assert.NotNil(t, prefsForm(f))

	f.interests = " Chess,, Go "
	in := f.input()
	assert.Equal(t, []string{"Chess", "Go"}, in.Interests)
	assert.Equal(t, "07:00", in.WakeUpTime)
	assert.Equal(t, "Morning", in.FocusTime)
}
