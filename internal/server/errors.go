package server

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/intelligence"
	"github.com/alexanderramin/zenith/internal/llm"
	"github.com/labstack/echo/v4"
)

// Error codes returned in the "code" field of error bodies.
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeNotFound             = "NOT_FOUND"
	CodeSessionBusy          = "SESSION_BUSY"
	CodeNoGoals              = "NO_GOALS_PROVIDED"
	CodeAIRequestFailed      = "AI_REQUEST_FAILED"
	CodeInvalidRoutineFormat = "INVALID_ROUTINE_FORMAT"
	CodeInternal             = "INTERNAL"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// apiError pairs a status and code with the error that caused it.
type apiError struct {
	status int
	code   string
	err    error
}

func (e *apiError) Error() string { return e.err.Error() }
func (e *apiError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return &apiError{status: http.StatusBadRequest, code: CodeInvalidInput, err: err}
}

// classify maps an error kind onto its HTTP status and code.
func classify(err error) (int, string) {
	var ae *apiError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ae):
		return ae.status, ae.code
	case errors.Is(err, domain.ErrInvalidGoal),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidPreferences),
		errors.Is(err, domain.ErrEmptyMessage):
		return http.StatusBadRequest, CodeInvalidInput
	case errors.Is(err, domain.ErrGoalNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, intelligence.ErrSessionBusy):
		return http.StatusConflict, CodeSessionBusy
	case errors.Is(err, domain.ErrNoGoalsProvided):
		return http.StatusUnprocessableEntity, CodeNoGoals
	case errors.Is(err, domain.ErrInvalidRoutineFormat):
		return http.StatusBadGateway, CodeInvalidRoutineFormat
	case errors.Is(err, llm.ErrRequestFailed):
		return http.StatusBadGateway, CodeAIRequestFailed
	case errors.As(err, &he):
		switch he.Code {
		case http.StatusNotFound:
			return he.Code, CodeNotFound
		case http.StatusBadRequest:
			return he.Code, CodeInvalidInput
		}
		return he.Code, CodeInternal
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// handleError renders every handler error as {"error","code"}.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code := classify(err)
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}
	if status >= http.StatusInternalServerError {
		s.logger.Warn().Err(err).Str("code", code).Msg("request failed")
	}
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}

	if err := c.JSON(status, errorResponse{Error: msg, Code: code}); err != nil {
		s.logger.Error().Err(err).Msg("writing error response")
	}
}
