package config

import "time"

// DefaultConfig returns the built-in defaults. User YAML merges on
// top; unset fields keep these values.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Port: 8080,
		},
		LLM: LLMConfig{
			Addr: "localhost:50051",
		},
		Slack: SlackConfig{
			Enabled:  false,
			TokenEnv: "SLACK_BOT_TOKEN",
		},
		Flow: FlowConfig{
			CalendarID:            "primary",
			DefaultTimezone:       "UTC",
			GraphTurnTimeout:      Duration(120 * time.Second),
			DecisionTimeout:       Duration(10 * time.Second),
			GateTimeout:           Duration(30 * time.Second),
			ExtractorTimeout:      Duration(30 * time.Second),
			PrefetchWaitBudget:    Duration(2 * time.Second),
			CalendarWaitBudget:    Duration(5 * time.Second),
			FuzzyToleranceMinutes: 30,
			FallbackBlockMinutes:  90,
		},
		Limits: LimitsConfig{
			DurablePrefetch: 3,
			DurableUpsert:   1,
			Extraction:      2,
		},
		Retention: RetentionConfig{
			SyncRetentionDays:       90,
			DeclinedRetentionDays:   30,
			ReflectionRetentionDays: 180,
			Interval:                Duration(6 * time.Hour),
		},
	}
}
