package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/intelligence"
	"github.com/alexanderramin/zenith/internal/llm"
	"github.com/labstack/echo/v4"
)

func (s *Server) registerRoutes() {
	s.GET("/healthz", s.healthHandler)

	s.GET("/goals", s.listGoalsHandler)
	s.POST("/goals", s.addGoalHandler)
	s.DELETE("/goals/:id", s.removeGoalHandler)

	s.GET("/preferences", s.getPreferencesHandler)
	s.PUT("/preferences", s.setPreferencesHandler)

	s.GET("/routine", s.getRoutineHandler)
	s.POST("/routine", s.generateRoutineHandler)

	s.POST("/insights", s.insightsHandler)

	s.GET("/chat", s.transcriptHandler)
	s.POST("/chat", s.chatHandler)

	s.GET("/summary", s.summaryHandler)
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return badRequest(fmt.Errorf("malformed request body: %w", err))
	}
	return nil
}

// ── goals ────────────────────────────────────────────────────────────────────

func (s *Server) listGoalsHandler(c echo.Context) error {
	goals, err := s.session.ListGoals(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]goalDTO, len(goals))
	for i, g := range goals {
		out[i] = toGoalDTO(g)
	}
	return c.JSON(http.StatusOK, map[string][]goalDTO{"goals": out})
}

func (s *Server) addGoalHandler(c echo.Context) error {
	var req addGoalRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	g, err := s.session.AddGoal(c.Request().Context(), domain.GoalInput{
		Title:      req.Title,
		Category:   req.Category,
		TargetDate: req.TargetDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toGoalDTO(*g))
}

func (s *Server) removeGoalHandler(c echo.Context) error {
	if err := s.session.RemoveGoal(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ── preferences ──────────────────────────────────────────────────────────────

func (s *Server) getPreferencesHandler(c echo.Context) error {
	p, err := s.session.Preferences(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPreferencesDTO(p))
}

func (s *Server) setPreferencesHandler(c echo.Context) error {
	var req preferencesDTO
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := s.session.SetPreferences(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPreferencesDTO(p))
}

// ── routine and insights ─────────────────────────────────────────────────────

func (s *Server) getRoutineHandler(c echo.Context) error {
	items, err := s.session.Routine(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, routineResponse{Items: items})
}

func (s *Server) generateRoutineHandler(c echo.Context) error {
	items, err := s.session.GenerateRoutine(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, routineResponse{Items: items})
}

func (s *Server) insightsHandler(c echo.Context) error {
	text, err := s.session.GetInsights(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insightsResponse{Insights: text})
}

// ── coach ────────────────────────────────────────────────────────────────────

func (s *Server) transcriptHandler(c echo.Context) error {
	msgs := s.session.Transcript()
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	return c.JSON(http.StatusOK, transcriptResponse{Messages: msgs})
}

// chatHandler sends one message. When the provider fails, the session records
// the fallback reply for that turn and it is returned alongside the error.
func (s *Server) chatHandler(c echo.Context) error {
	var req chatRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	reply, err := s.session.SendChatMessageWithFallback(c.Request().Context(), req.Message, intelligence.CoachFallback)
	if err == nil {
		return c.JSON(http.StatusOK, chatReplyResponse{
			Reply: domain.ChatMessage{Role: domain.RoleAssistant, Text: reply},
		})
	}
	if !errors.Is(err, llm.ErrRequestFailed) {
		return err
	}

	status, code := classify(err)
	s.logger.Warn().Err(err).Msg("coach reply failed, fallback recorded")
	return c.JSON(status, chatFailureResponse{
		errorResponse: errorResponse{Error: err.Error(), Code: code},
		Fallback:      domain.ChatMessage{Role: domain.RoleAssistant, Text: intelligence.CoachFallback, Fallback: true},
	})
}

// ── summary ──────────────────────────────────────────────────────────────────

func (s *Server) summaryHandler(c echo.Context) error {
	sum, err := s.session.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSummaryDTO(sum))
}
