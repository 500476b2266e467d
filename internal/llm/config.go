package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of AI call being performed.
type TaskType string

const (
	TaskRoutine TaskType = "routine"
	TaskInsight TaskType = "insight"
	TaskCoach   TaskType = "coach"
)

// TaskConfig holds per-task generation parameters. Zero values leave the
// provider default in place.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the AI subsystem.
type LLMConfig struct {
	APIKey    string
	Model     string
	Fake      bool
	LogCalls  bool
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Model:     "gemini-2.5-flash",
		TimeoutMs: 30000,
		Tasks: map[TaskType]TaskConfig{
			TaskRoutine: {Temperature: 0.4, MaxTokens: 8192, TimeoutMs: 45000},
			TaskInsight: {Temperature: 0.7, MaxTokens: 2048},
			TaskCoach:   {Temperature: 0.8, MaxTokens: 2048},
		},
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or malformed values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	for _, name := range []string{"ZENITH_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"} {
		if v := os.Getenv(name); v != "" {
			cfg.APIKey = v
			break
		}
	}
	if v := os.Getenv("ZENITH_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ZENITH_LLM_FAKE"); v != "" {
		cfg.Fake, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ZENITH_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ZENITH_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskRoutine, "ZENITH_LLM_ROUTINE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskInsight, "ZENITH_LLM_INSIGHT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskCoach, "ZENITH_LLM_COACH_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout in milliseconds for a task.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
