package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/zenith/internal/app"
	"github.com/alexanderramin/zenith/internal/cli/formatter"
	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/intelligence"
	"github.com/alexanderramin/zenith/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addGoal(t *testing.T, a *App, title string) *domain.Goal {
	t.Helper()
	g, err := a.Session.AddGoal(context.Background(), domain.GoalInput{
		Title:      title,
		Category:   "Health",
		TargetDate: "2027-04-19",
	})
	require.NoError(t, err)
	return g
}

func TestGoalAdd_WithFlags(t *testing.T) {
	a, _, _ := testApp(t)

	out, err := runCmd(t, a, "goal", "add", "--title", "Run a Marathon", "--category", "health", "--date", "2027-04-19")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Run a Marathon • Health • Apr 19, 2027")

	goals, err := a.Session.ListGoals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, domain.CategoryHealth, goals[0].Category)
	assert.Equal(t, domain.GoalActive, goals[0].Status)
}

func TestGoalAdd_RejectsInvalidInput(t *testing.T) {
	a, _, _ := testApp(t)

	_, err := runCmd(t, a, "goal", "add", "--title", "Retire", "--category", "Leisure", "--date", "2040-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	// No flags and no terminal: nothing to fill a form with.
	_, err = runCmd(t, a, "goal", "add")
	assert.ErrorIs(t, err, domain.ErrInvalidGoal)

	goals, err := a.Session.ListGoals(context.Background())
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalList_InsertionOrder(t *testing.T) {
	a, _, _ := testApp(t)

	out, err := runCmd(t, a, "goal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No goals yet")

	addGoal(t, a, "First goal")
	addGoal(t, a, "Second goal")

	out, err = runCmd(t, a, "goals")
	require.NoError(t, err)
	assert.Contains(t, out, "ACTIVE GOALS")
	first, second := strings.Index(out, "First goal"), strings.Index(out, "Second goal")
	assert.True(t, first >= 0 && second > first, "goals out of order:\n%s", out)
}

func TestGoalRemove_ByPrefix(t *testing.T) {
	a, _, _ := testApp(t)
	g := addGoal(t, a, "Temporary")

	out, err := runCmd(t, a, "goal", "remove", g.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Removed "+g.ID[:8])

	goals, err := a.Session.ListGoals(context.Background())
	require.NoError(t, err)
	assert.Empty(t, goals)

	_, err = runCmd(t, a, "goal", "rm", g.ID)
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestPrefs_ShowDefaults(t *testing.T) {
	a, _, _ := testApp(t)

	out, err := runCmd(t, a, "prefs")
	require.NoError(t, err)
	assert.Contains(t, out, "07:00")
	assert.Contains(t, out, "22:30")
	assert.Contains(t, out, "Morning")
	assert.Contains(t, out, "#Tech")
}

func TestPrefsSet_OnlyChangesPassedFlags(t *testing.T) {
	a, _, _ := testApp(t)

	_, err := runCmd(t, a, "prefs", "set", "--wake", "06:30", "--focus", "evening", "--interests", "Chess, , Go")
	require.NoError(t, err)

	p, err := a.Session.Preferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "06:30", p.WakeUpTime)
	assert.Equal(t, "22:30", p.SleepTime)
	assert.Equal(t, domain.FocusEvening, p.FocusTime)
	assert.Equal(t, []string{"Chess", "Go"}, p.Interests)
}

func TestPrefsSet_InvalidKeepsPrevious(t *testing.T) {
	a, _, _ := testApp(t)

	_, err := runCmd(t, a, "prefs", "set", "--wake", "25:00")
	assert.ErrorIs(t, err, domain.ErrInvalidPreferences)

	p, err := a.Session.Preferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), p)
}

func TestPrefsEdit_NeedsTerminal(t *testing.T) {
	a, _, _ := testApp(t)

	_, err := runCmd(t, a, "prefs", "edit")
	assert.ErrorIs(t, err, errNotInteractive)
}

func TestRoutineGenerate_NoGoals(t *testing.T) {
	a, _, _ := testApp(t)

	_, err := runCmd(t, a, "routine", "generate")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoGoalsProvided)
	assert.Equal(t, formatter.NoGoalsMessage, err.Error())
}

func TestRoutineGenerate_ReplacesOnlyOnSuccess(t *testing.T) {
	a, _, client := testApp(t)
	addGoal(t, a, "Run a Marathon")

	out, err := runCmd(t, a, "routine", "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "DAILY ROUTINE")
	assert.Contains(t, out, "Deep work on top goal")

	client.setFailing(true)
	_, err = runCmd(t, a, "routine", "gen")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrRequestFailed)
	assert.Equal(t, formatter.RoutineFailureMessage, err.Error())

	out, err = runCmd(t, a, "routine", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Deep work on top goal")
}

func TestRoutineShow_Empty(t *testing.T) {
	a, _, _ := testApp(t)

	out, err := runCmd(t, a, "routine")
	require.NoError(t, err)
	assert.Contains(t, out, "No routine yet")
}

func TestInsights(t *testing.T) {
	a, _, client := testApp(t)

	out, err := runCmd(t, a, "insights")
	require.NoError(t, err)
	assert.Contains(t, out, "INSIGHTS")
	assert.Contains(t, out, "Protect your first focus block")

	client.setFailing(true)
	_, err = runCmd(t, a, "insights")
	assert.ErrorIs(t, err, llm.ErrRequestFailed)
	assert.Equal(t, formatter.InsightFailureMessage, err.Error())
}

func TestCoachSay_AndTranscript(t *testing.T) {
	a, _, _ := testApp(t)

	out, err := runCmd(t, a, "coach", "say", "I", "want", "focus")
	require.NoError(t, err)
	assert.Contains(t, out, `zenith › I hear you. You said "I want focus".`)

	out, err = runCmd(t, a, "coach", "transcript")
	require.NoError(t, err)
	assert.Contains(t, out, "you › I want focus")
	assert.Len(t, a.Session.Transcript(), 2)
}

func TestCoachSay_FailureRecordsFallback(t *testing.T) {
	a, _, client := testApp(t)
	client.setFailing(true)

	out, err := runCmd(t, a, "coach", "say", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, intelligence.CoachFallback)

	transcript := a.Session.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, domain.RoleUser, transcript[0].Role)
	assert.True(t, transcript[1].Fallback)

	// The conversation continues once the provider is back.
	client.setFailing(false)
	_, err = runCmd(t, a, "coach", "say", "again")
	require.NoError(t, err)
	assert.Len(t, a.Session.Transcript(), 4)
}

func TestCoachSay_BlankMessage(t *testing.T) {
	a, _, _ := testApp(t)

	_, err := runCmd(t, a, "coach", "say", "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.Empty(t, a.Session.Transcript())
}

func TestStatus(t *testing.T) {
	a, session, _ := testApp(t)
	require.NoError(t, session.SeedDemoGoals(context.Background()))

	out, err := runCmd(t, a, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "2 active goals")
	assert.Contains(t, out, "Run a Marathon • Health")
	assert.Contains(t, out, "Learn TypeScript Deeply • Skill")
	assert.Contains(t, out, "not generated")
}

func TestRoot_NonInteractivePrintsHelp(t *testing.T) {
	a, _, _ := testApp(t)

	out, err := runCmd(t, a)
	require.NoError(t, err)
	assert.Contains(t, out, "zenith")
	assert.Contains(t, out, "routine")
	assert.NotContains(t, out, "serve")
}

func TestServe_UsesConfiguredFunc(t *testing.T) {
	a, _, _ := testApp(t)

	var gotAddr string
	var gotSession app.Facade
	a.Serve = func(_ context.Context, s app.Facade, addr string) error {
		gotAddr, gotSession = addr, s
		return nil
	}

	_, err := runCmd(t, a, "serve", "--addr", "127.0.0.1:9999")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", gotAddr)
	assert.Same(t, a.Session, gotSession)

	boom := errors.New("bind failed")
	a.Serve = func(context.Context, app.Facade, string) error { return boom }
	_, err = runCmd(t, a, "serve")
	assert.ErrorIs(t, err, boom)
}
