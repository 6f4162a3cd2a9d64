// Package cleanup provides data retention for the durable tables.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/hugocool/fateforger/ent"
	"github.com/hugocool/fateforger/ent/constraintrecord"
	"github.com/hugocool/fateforger/ent/reflection"
	"github.com/hugocool/fateforger/ent/syncrecord"
	"github.com/hugocool/fateforger/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes settled sync transactions past the audit retention window
//   - Deletes declined constraints past their retention window
//   - Deletes reflection log entries past their retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"sync_retention_days", s.config.SyncRetentionDays,
		"declined_retention_days", s.config.DeclinedRetentionDays,
		"reflection_retention_days", s.config.ReflectionRetentionDays,
		"interval", s.config.Interval.Std())
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.config.Interval.Std())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs every retention task once.
func (s *Service) Sweep(ctx context.Context) {
	s.pruneSyncRecords(ctx)
	s.pruneDeclinedConstraints(ctx)
	s.pruneReflections(ctx)
}

// settledStatuses are the sync transaction states that can no longer
// be undone or resumed; only these age out of the audit trail.
var settledStatuses = []syncrecord.Status{
	syncrecord.StatusCommitted,
	syncrecord.StatusPartial,
	syncrecord.StatusPartialHalted,
	syncrecord.StatusUndone,
	syncrecord.StatusUndoPartial,
}

func (s *Service) pruneSyncRecords(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.SyncRetentionDays)
	count, err := s.client.SyncRecord.Delete().
		Where(
			syncrecord.StatusIn(settledStatuses...),
			syncrecord.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: sync record cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted settled sync transactions", "count", count)
	}
}

func (s *Service) pruneDeclinedConstraints(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.DeclinedRetentionDays)
	count, err := s.client.ConstraintRecord.Delete().
		Where(
			constraintrecord.StatusEQ(constraintrecord.StatusDeclined),
			constraintrecord.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: declined constraint cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted declined constraints", "count", count)
	}
}

func (s *Service) pruneReflections(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.ReflectionRetentionDays)
	count, err := s.client.Reflection.Delete().
		Where(reflection.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: reflection cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old reflections", "count", count)
	}
}
