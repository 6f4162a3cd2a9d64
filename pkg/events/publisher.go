package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// notifyLimit stays under PostgreSQL's 8000-byte NOTIFY payload cap.
const notifyLimit = 7900

// Publisher broadcasts update records via NOTIFY. Nothing is
// persisted here; the sync audit trail lives in sync_records and the
// constraint history in the durable store.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a publisher over the database client's *sql.DB.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishUpdate broadcasts one record to its thread channel and the
// global channel. Best-effort on the global copy: a failure there is
// logged but does not fail the publish.
func (p *Publisher) PublishUpdate(ctx context.Context, record *UpdateRecord) error {
	payload, err := record.Marshal()
	if err != nil {
		return fmt.Errorf("marshal update record: %w", err)
	}

	wire, err := truncateIfNeeded(payload)
	if err != nil {
		return err
	}

	key := record.ChannelID + ":" + record.ThreadTS
	if err := p.notify(ctx, ThreadChannel(key), wire); err != nil {
		return fmt.Errorf("notify thread channel: %w", err)
	}
	if err := p.notify(ctx, GlobalUpdatesChannel, wire); err != nil {
		slog.Warn("Global update notify failed", "session_key", key, "error", err)
	}
	return nil
}

func (p *Publisher) notify(ctx context.Context, channel, payload string) error {
	_, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, payload)
	return err
}

// truncateIfNeeded returns the payload as-is when it fits the NOTIFY
// limit; otherwise a minimal envelope with only routing fields, so
// observers can fetch the full state through the API.
func truncateIfNeeded(payload []byte) (string, error) {
	if len(payload) <= notifyLimit {
		return string(payload), nil
	}

	var routing struct {
		ThreadTS  string `json:"thread_ts"`
		ChannelID string `json:"channel_id"`
		Stage     string `json:"stage"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil {
		return "", fmt.Errorf("extract routing fields for truncation: %w", err)
	}

	truncated, err := json.Marshal(map[string]any{
		"thread_ts":  routing.ThreadTS,
		"channel_id": routing.ChannelID,
		"stage":      routing.Stage,
		"truncated":  true,
	})
	if err != nil {
		return "", fmt.Errorf("marshal truncated payload: %w", err)
	}
	return string(truncated), nil
}
