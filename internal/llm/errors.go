package llm

import "errors"

var (
	// ErrRequestFailed is the single error kind surfaced for any failed AI
	// call: transport failure, provider error, timeout, empty body or a
	// payload that is not parseable data. Callers must not infer which.
	ErrRequestFailed = errors.New("ai request failed")

	// ErrInvalidOutput indicates raw model text could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrAPIKeyMissing indicates no provider credentials were configured.
	ErrAPIKeyMissing = errors.New("gemini api key is not configured (set ZENITH_GEMINI_API_KEY or GEMINI_API_KEY)")
)
