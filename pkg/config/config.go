// Package config loads and validates the service configuration from a
// YAML file plus environment variables. Database settings come from
// the environment directly (see pkg/database).
package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hugocool/fateforger/pkg/calendar"
)

// Duration is a time.Duration that unmarshals from Go duration syntax
// ("30s", "2m") or integer nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, perr := time.ParseDuration(s)
		if perr != nil {
			return fmt.Errorf("invalid duration %q: %w", s, perr)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	*d = Duration(n)
	return nil
}

// Std converts to the standard library type.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the fully resolved service configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	LLM       LLMConfig       `yaml:"llm"`
	Calendar  calendar.Config `yaml:"calendar"`
	Slack     SlackConfig     `yaml:"slack"`
	Flow      FlowConfig      `yaml:"flow"`
	Limits    LimitsConfig    `yaml:"limits"`
	Retention RetentionConfig `yaml:"retention"`
}

// HTTPConfig holds the API server settings.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// LLMConfig holds the extraction-service connection settings.
type LLMConfig struct {
	// Addr is the gRPC address of the LLM extraction service.
	Addr string `yaml:"addr"`
}

// SlackConfig holds reply delivery settings. TokenEnv names the
// environment variable carrying the bot token so the token itself
// stays out of YAML.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env"`
}

// FlowConfig holds the conversation controller's operational knobs.
// Durations follow Go syntax in YAML ("30s", "2m").
type FlowConfig struct {
	CalendarID      string `yaml:"calendar_id"`
	DefaultTimezone string `yaml:"default_timezone"`

	GraphTurnTimeout   Duration `yaml:"graph_turn_timeout"`
	DecisionTimeout    Duration `yaml:"decision_timeout"`
	GateTimeout        Duration `yaml:"gate_timeout"`
	ExtractorTimeout   Duration `yaml:"extractor_timeout"`
	PrefetchWaitBudget Duration `yaml:"prefetch_wait_budget"`
	CalendarWaitBudget Duration `yaml:"calendar_wait_budget"`

	FuzzyToleranceMinutes int    `yaml:"fuzzy_tolerance_minutes"`
	FallbackBlockMinutes  int    `yaml:"fallback_block_minutes"`
	DebugLogDir           string `yaml:"debug_log_dir"`
}

// RetentionConfig controls how long durable rows are kept before the
// cleanup service deletes them.
type RetentionConfig struct {
	SyncRetentionDays       int      `yaml:"sync_retention_days"`
	DeclinedRetentionDays   int      `yaml:"declined_retention_days"`
	ReflectionRetentionDays int      `yaml:"reflection_retention_days"`
	Interval                Duration `yaml:"interval"`
}

// LimitsConfig bounds the background work per concern.
type LimitsConfig struct {
	DurablePrefetch int64 `yaml:"durable_prefetch"`
	DurableUpsert   int64 `yaml:"durable_upsert"`
	Extraction      int64 `yaml:"extraction"`
}

// Initialize loads, merges with defaults, and validates configuration.
// This is the primary entry point for configuration loading.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"http_port", cfg.HTTP.Port,
		"llm_addr", cfg.LLM.Addr,
		"calendar_url", cfg.Calendar.URL,
		"slack_enabled", cfg.Slack.Enabled)

	return cfg, nil
}
