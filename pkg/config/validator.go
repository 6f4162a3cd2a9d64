package config

import (
	"fmt"
	"time"
)

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config field %q: %s", e.Field, e.Message)
}

// Validate checks the resolved configuration for values that would
// break at runtime.
func Validate(cfg *Config) error {
	if cfg.HTTP.Port < 1 || cfg.HTTP.Port > 65535 {
		return &ValidationError{Field: "http.port", Message: fmt.Sprintf("must be 1-65535, got %d", cfg.HTTP.Port)}
	}
	if cfg.LLM.Addr == "" {
		return &ValidationError{Field: "llm.addr", Message: "is required"}
	}
	if cfg.Calendar.URL == "" {
		return &ValidationError{Field: "calendar.url", Message: "is required"}
	}
	if cfg.Flow.DefaultTimezone != "" {
		if _, err := time.LoadLocation(cfg.Flow.DefaultTimezone); err != nil {
			return &ValidationError{Field: "flow.default_timezone", Message: fmt.Sprintf("unknown timezone %q", cfg.Flow.DefaultTimezone)}
		}
	}
	if cfg.Flow.FuzzyToleranceMinutes < 0 {
		return &ValidationError{Field: "flow.fuzzy_tolerance_minutes", Message: "must not be negative"}
	}
	if cfg.Slack.Enabled && cfg.Slack.TokenEnv == "" {
		return &ValidationError{Field: "slack.token_env", Message: "is required when slack is enabled"}
	}

	for field, v := range map[string]int{
		"retention.sync_retention_days":       cfg.Retention.SyncRetentionDays,
		"retention.declined_retention_days":   cfg.Retention.DeclinedRetentionDays,
		"retention.reflection_retention_days": cfg.Retention.ReflectionRetentionDays,
	} {
		if v < 1 {
			return &ValidationError{Field: field, Message: "must be at least 1"}
		}
	}
	if cfg.Retention.Interval.Std() < time.Minute {
		return &ValidationError{Field: "retention.interval", Message: "must be at least 1m"}
	}

	for field, v := range map[string]int64{
		"limits.durable_prefetch": cfg.Limits.DurablePrefetch,
		"limits.durable_upsert":   cfg.Limits.DurableUpsert,
		"limits.extraction":       cfg.Limits.Extraction,
	} {
		if v < 1 {
			return &ValidationError{Field: field, Message: "must be at least 1"}
		}
	}

	return nil
}
