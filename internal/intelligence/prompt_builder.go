package intelligence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/zenith/internal/domain"
)

// BuildRoutinePrompt renders goals and preferences into the routine request.
// Identical inputs always produce identical text.
func BuildRoutinePrompt(goals []domain.Goal, prefs domain.UserPreferences) string {
	var b strings.Builder
	b.WriteString("Act as an expert life coach and routine architect.\n")
	fmt.Fprintf(&b, "Create a highly optimized daily routine based on these goals: %s.\n",
		strings.Join(domain.GoalTitles(goals), ", "))
	fmt.Fprintf(&b, "User preferences: Wake up at %s, Sleep at %s, Peak focus in the %s.\n",
		prefs.WakeUpTime, prefs.SleepTime, prefs.FocusTime)
	fmt.Fprintf(&b, "Interests: %s.\n\n", strings.Join(prefs.Interests, ", "))
	b.WriteString("Format the output as a JSON array of objects with fields: time, activity, duration, and category.")
	return b.String()
}

// insightGoal is the prompt-facing view of a goal.
type insightGoal struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	TargetDate string `json:"targetDate"`
	Status     string `json:"status"`
}

// BuildInsightPrompt embeds JSON serializations of goals and the current
// routine and asks for exactly three recommendations.
func BuildInsightPrompt(goals []domain.Goal, routine []domain.RoutineItem) string {
	views := make([]insightGoal, 0, len(goals))
	for _, g := range goals {
		views = append(views, insightGoal{
			ID:         g.ID,
			Title:      g.Title,
			Category:   string(g.Category),
			TargetDate: g.TargetDateString(),
			Status:     string(g.Status),
		})
	}
	if routine == nil {
		routine = []domain.RoutineItem{}
	}

	var b strings.Builder
	b.WriteString("Analyze my current life plan.\n")
	fmt.Fprintf(&b, "Goals: %s\n", marshalCompact(views))
	fmt.Fprintf(&b, "Current Routine: %s\n\n", marshalCompact(routine))
	b.WriteString("Provide exactly 3 actionable insights to improve productivity or well-being.\n")
	b.WriteString("Keep it concise and encouraging.")
	return b.String()
}

// marshalCompact encodes v without HTML escaping so titles like "R&D" reach
// the model verbatim.
func marshalCompact(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		// Only plain structs of strings are encoded here.
		return "[]"
	}
	return strings.TrimSpace(buf.String())
}
