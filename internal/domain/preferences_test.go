package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreferences_Valid(t *testing.T) {
	p, err := NewPreferences(PreferencesInput{
		WakeUpTime: "06:15",
		SleepTime:  "23:00",
		FocusTime:  "evening",
		Interests:  []string{" Chess ", "", "Running"},
	})
	require.NoError(t, err)
	assert.Equal(t, "06:15", p.WakeUpTime)
	assert.Equal(t, "23:00", p.SleepTime)
	assert.Equal(t, FocusEvening, p.FocusTime)
	assert.Equal(t, []string{"Chess", "Running"}, p.Interests)
}

func TestNewPreferences_Invalid(t *testing.T) {
	base := DefaultPreferences().Input()

	badWake := base
	badWake.WakeUpTime = "7am"
	badSleep := base
	badSleep.SleepTime = "24:00"
	badFocus := base
	badFocus.FocusTime = "Night"

	for name, in := range map[string]PreferencesInput{
		"wake":  badWake,
		"sleep": badSleep,
		"focus": badFocus,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewPreferences(in)
			assert.ErrorIs(t, err, ErrInvalidPreferences)
		})
	}
}

func TestDefaultPreferences_RoundTripsThroughInput(t *testing.T) {
	def := DefaultPreferences()
	again, err := NewPreferences(def.Input())
	require.NoError(t, err)
	assert.Equal(t, def, again)
}

func TestPreferencesClone_DoesNotShareInterests(t *testing.T) {
	p := DefaultPreferences()
	c := p.Clone()
	c.Interests[0] = "changed"
	assert.Equal(t, "Tech", p.Interests[0])
}
