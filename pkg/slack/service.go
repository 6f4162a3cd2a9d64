package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/hugocool/fateforger/pkg/models"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token string
}

// Service delivers planning replies and kickoff prompts.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a new Slack delivery service. Returns nil if
// Token is empty, which disables delivery cleanly.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" {
		return nil
	}
	return &Service{
		client: NewClient(cfg.Token),
		logger: slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "slack-service"),
	}
}

// SendReply posts one planning reply into its thread.
// Fail-open: errors are logged, never returned.
func (s *Service) SendReply(ctx context.Context, channelID, threadTS string, reply *models.Reply) {
	if s == nil || reply == nil {
		return
	}

	blocks := BuildReplyBlocks(reply)
	if err := s.client.PostMessage(ctx, channelID, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send planning reply",
			"channel_id", channelID,
			"thread_ts", threadTS,
			"error", err)
	}
}

// SendKickoff posts the morning planning prompt and returns its
// timestamp so later replies can thread under it. Fail-open: an empty
// string means the prompt did not go out.
func (s *Service) SendKickoff(ctx context.Context, channelID, plannedDate string) string {
	if s == nil {
		return ""
	}

	// Reuse an existing kickoff for the date if one is already posted.
	existing, err := s.client.FindThreadByFingerprint(ctx, channelID, "time to plan "+plannedDate)
	if err != nil {
		s.logger.Warn("Kickoff lookup failed", "channel_id", channelID, "error", err)
	}
	if existing != "" {
		return existing
	}

	blocks := BuildKickoffBlocks(plannedDate)
	if err := s.client.PostMessage(ctx, channelID, blocks, "", 10*time.Second); err != nil {
		s.logger.Error("Failed to send kickoff prompt",
			"channel_id", channelID,
			"planned_date", plannedDate,
			"error", err)
		return ""
	}

	ts, err := s.client.FindThreadByFingerprint(ctx, channelID, "time to plan "+plannedDate)
	if err != nil {
		s.logger.Warn("Kickoff timestamp lookup failed", "channel_id", channelID, "error", err)
	}
	return ts
}
