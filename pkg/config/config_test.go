package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return dir
}

func TestInitialize_DefaultsApplied(t *testing.T) {
	dir := writeConfig(t, `
calendar:
  url: https://calendar.example.com/mcp
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "localhost:50051", cfg.LLM.Addr)
	assert.Equal(t, "primary", cfg.Flow.CalendarID)
	assert.Equal(t, 120*time.Second, cfg.Flow.GraphTurnTimeout.Std())
	assert.Equal(t, int64(3), cfg.Limits.DurablePrefetch)
	assert.Equal(t, "https://calendar.example.com/mcp", cfg.Calendar.URL)
}

func TestInitialize_UserOverrides(t *testing.T) {
	dir := writeConfig(t, `
http:
  port: 9090
calendar:
  url: https://calendar.example.com/mcp
  calendar_id: work
flow:
  calendar_id: work
  default_timezone: Europe/Amsterdam
  graph_turn_timeout: 45s
  fuzzy_tolerance_minutes: 15
limits:
  extraction: 4
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "work", cfg.Flow.CalendarID)
	assert.Equal(t, "Europe/Amsterdam", cfg.Flow.DefaultTimezone)
	assert.Equal(t, 45*time.Second, cfg.Flow.GraphTurnTimeout.Std())
	assert.Equal(t, 15, cfg.Flow.FuzzyToleranceMinutes)
	assert.Equal(t, int64(4), cfg.Limits.Extraction)
	// Unset values keep defaults.
	assert.Equal(t, 10*time.Second, cfg.Flow.DecisionTimeout.Std())
	assert.Equal(t, int64(1), cfg.Limits.DurableUpsert)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_CAL_URL", "https://cal.internal/mcp")
	t.Setenv("TEST_CAL_TOKEN", "se$cret")

	dir := writeConfig(t, `
calendar:
  url: "{{.TEST_CAL_URL}}"
  bearer_token: "{{.TEST_CAL_TOKEN}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "https://cal.internal/mcp", cfg.Calendar.URL)
	assert.Equal(t, "se$cret", cfg.Calendar.BearerToken)
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "calendar: [unclosed")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing calendar url", func(c *Config) { c.Calendar.URL = "" }, "calendar.url"},
		{"bad port", func(c *Config) { c.HTTP.Port = 0 }, "http.port"},
		{"missing llm addr", func(c *Config) { c.LLM.Addr = "" }, "llm.addr"},
		{"bad timezone", func(c *Config) { c.Flow.DefaultTimezone = "Mars/Olympus" }, "flow.default_timezone"},
		{"negative fuzz", func(c *Config) { c.Flow.FuzzyToleranceMinutes = -1 }, "flow.fuzzy_tolerance_minutes"},
		{"zero limit", func(c *Config) { c.Limits.DurableUpsert = 0 }, "limits.durable_upsert"},
		{"slack without token env", func(c *Config) { c.Slack.Enabled = true; c.Slack.TokenEnv = "" }, "slack.token_env"},
		{"zero retention", func(c *Config) { c.Retention.SyncRetentionDays = 0 }, "retention.sync_retention_days"},
		{"tiny retention interval", func(c *Config) { c.Retention.Interval = Duration(time.Second) }, "retention.interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Calendar.URL = "https://calendar.example.com/mcp"
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestDuration_UnmarshalForms(t *testing.T) {
	dir := writeConfig(t, `
calendar:
  url: https://calendar.example.com/mcp
flow:
  decision_timeout: 1500000000
  gate_timeout: 45s
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, cfg.Flow.DecisionTimeout.Std())
	assert.Equal(t, 45*time.Second, cfg.Flow.GateTimeout.Std())
}
