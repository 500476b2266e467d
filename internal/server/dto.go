package server

import (
	"time"

	"github.com/alexanderramin/zenith/internal/app"
	"github.com/alexanderramin/zenith/internal/domain"
)

type goalDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	TargetDate string `json:"targetDate"`
	Status     string `json:"status"`
}

func toGoalDTO(g domain.Goal) goalDTO {
	return goalDTO{
		ID:         g.ID,
		Title:      g.Title,
		Category:   string(g.Category),
		TargetDate: g.TargetDateString(),
		Status:     string(g.Status),
	}
}

type addGoalRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	TargetDate string `json:"targetDate"`
}

type preferencesDTO struct {
	WakeUpTime string   `json:"wakeUpTime"`
	SleepTime  string   `json:"sleepTime"`
	FocusTime  string   `json:"focusTime"`
	Interests  []string `json:"interests"`
}

func toPreferencesDTO(p domain.UserPreferences) preferencesDTO {
	interests := p.Interests
	if interests == nil {
		interests = []string{}
	}
	return preferencesDTO{
		WakeUpTime: p.WakeUpTime,
		SleepTime:  p.SleepTime,
		FocusTime:  string(p.FocusTime),
		Interests:  interests,
	}
}

func (d preferencesDTO) input() domain.PreferencesInput {
	return domain.PreferencesInput{
		WakeUpTime: d.WakeUpTime,
		SleepTime:  d.SleepTime,
		FocusTime:  d.FocusTime,
		Interests:  d.Interests,
	}
}

type routineResponse struct {
	Items []domain.RoutineItem `json:"items"`
}

type insightsResponse struct {
	Insights string `json:"insights"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatReplyResponse struct {
	Reply domain.ChatMessage `json:"reply"`
}

// chatFailureResponse reports a failed send together with the fallback
// reply that was recorded in its place.
type chatFailureResponse struct {
	errorResponse
	Fallback domain.ChatMessage `json:"fallback"`
}

type transcriptResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type deadlineDTO struct {
	GoalID     string `json:"goalId"`
	Title      string `json:"title"`
	TargetDate string `json:"targetDate"`
	DaysLeft   int    `json:"daysLeft"`
}

type summaryDTO struct {
	GeneratedAt     time.Time      `json:"generatedAt"`
	TotalGoals      int            `json:"totalGoals"`
	ActiveGoals     int            `json:"activeGoals"`
	GoalsByCategory map[string]int `json:"goalsByCategory"`
	NextDeadline    *deadlineDTO   `json:"nextDeadline,omitempty"`
	RoutineItems    int            `json:"routineItems"`
	ChatMessages    int            `json:"chatMessages"`
	Preferences     preferencesDTO `json:"preferences"`
}

func toSummaryDTO(s *app.Summary) summaryDTO {
	out := summaryDTO{
		GeneratedAt:     s.GeneratedAt,
		TotalGoals:      s.TotalGoals,
		ActiveGoals:     s.ActiveGoals,
		GoalsByCategory: make(map[string]int, len(s.GoalsByCategory)),
		RoutineItems:    s.RoutineItems,
		ChatMessages:    s.ChatMessages,
		Preferences:     toPreferencesDTO(s.Preferences),
	}
	for c, n := range s.GoalsByCategory {
		out.GoalsByCategory[string(c)] = n
	}
	if d := s.NextDeadline; d != nil {
		out.NextDeadline = &deadlineDTO{
			GoalID:     d.GoalID,
			Title:      d.Title,
			TargetDate: d.TargetDate.Format(domain.DateLayout),
			DaysLeft:   d.DaysLeft,
		}
	}
	return out
}
