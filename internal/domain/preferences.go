package domain

import (
	"regexp"
	"strings"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type UserPreferences struct {
	WakeUpTime string
	SleepTime  string
	FocusTime  FocusPeriod
	Interests  []string
}

// PreferencesInput holds user-supplied preference fields, before validation.
type PreferencesInput struct {
	WakeUpTime string
	SleepTime  string
	FocusTime  string
	Interests  []string
}

// DefaultPreferences returns the preferences a new session starts with.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		WakeUpTime: "07:00",
		SleepTime:  "22:30",
		FocusTime:  FocusMorning,
		Interests:  []string{"Tech", "Philosophy", "Fitness"},
	}
}

// NewPreferences validates in and returns a complete UserPreferences value.
// Times must be 24-hour HH:MM. Interests are trimmed and blank tags dropped.
func NewPreferences(in PreferencesInput) (UserPreferences, error) {
	wake := strings.TrimSpace(in.WakeUpTime)
	if !timeOfDayPattern.MatchString(wake) {
		return UserPreferences{}, invalidf(ErrInvalidPreferences, "wake-up time %q must be HH:MM", wake)
	}
	sleep := strings.TrimSpace(in.SleepTime)
	if !timeOfDayPattern.MatchString(sleep) {
		return UserPreferences{}, invalidf(ErrInvalidPreferences, "sleep time %q must be HH:MM", sleep)
	}
	focus, err := ParseFocusPeriod(in.FocusTime)
	if err != nil {
		return UserPreferences{}, err
	}

	interests := make([]string, 0, len(in.Interests))
	for _, tag := range in.Interests {
		if tag = strings.TrimSpace(tag); tag != "" {
			interests = append(interests, tag)
		}
	}

	return UserPreferences{
		WakeUpTime: wake,
		SleepTime:  sleep,
		FocusTime:  focus,
		Interests:  interests,
	}, nil
}

// Input converts p back to its editable form.
func (p UserPreferences) Input() PreferencesInput {
	return PreferencesInput{
		WakeUpTime: p.WakeUpTime,
		SleepTime:  p.SleepTime,
		FocusTime:  string(p.FocusTime),
		Interests:  append([]string(nil), p.Interests...),
	}
}

// Clone returns a copy that shares no slices with p.
func (p UserPreferences) Clone() UserPreferences {
	p.Interests = append([]string(nil), p.Interests...)
	return p
}
