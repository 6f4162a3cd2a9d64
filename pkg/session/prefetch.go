package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/hugocool/fateforger/pkg/calendar"
	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/models"
)

// Limits bound the global concurrency of each background tier.
type Limits struct {
	DurablePrefetch int64
	DurableUpsert   int64
	Extraction      int64
}

// DefaultLimits returns the stock tier sizes.
func DefaultLimits() Limits {
	return Limits{DurablePrefetch: 3, DurableUpsert: 1, Extraction: 2}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.DurablePrefetch <= 0 {
		l.DurablePrefetch = d.DurablePrefetch
	}
	if l.DurableUpsert <= 0 {
		l.DurableUpsert = d.DurableUpsert
	}
	if l.Extraction <= 0 {
		l.Extraction = d.Extraction
	}
	return l
}

// Coordinator runs background prefetch and extraction tasks with
// per-tier backpressure and per-task dedupe. Tasks are keyed by
// (session key, label); queuing a key already in flight is a no-op.
type Coordinator struct {
	prefetchSem *semaphore.Weighted
	upsertSem   *semaphore.Weighted
	extractSem  *semaphore.Weighted

	mu       sync.Mutex
	inflight map[string]chan struct{}

	logger *slog.Logger
}

// NewCoordinator creates a coordinator with the given tier limits.
func NewCoordinator(limits Limits) *Coordinator {
	limits = limits.withDefaults()
	return &Coordinator{
		prefetchSem: semaphore.NewWeighted(limits.DurablePrefetch),
		upsertSem:   semaphore.NewWeighted(limits.DurableUpsert),
		extractSem:  semaphore.NewWeighted(limits.Extraction),
		inflight:    make(map[string]chan struct{}),
		logger:      slog.Default().With("component", "prefetch"),
	}
}

// QueueStagePrefetch fetches a stage's durable constraints in the
// background and stores them on the session. No-op when the stage is
// already loaded or a fetch is in flight.
func (c *Coordinator) QueueStagePrefetch(ctx context.Context, s *Session, stage models.Stage, fetch func(context.Context) ([]*constraint.Record, error)) {
	if s.DurableLoaded(stage) {
		return
	}
	c.queue(ctx, stageKey(s.Key, stage), c.prefetchSem, func(ctx context.Context) {
		records, err := fetch(ctx)
		if err != nil {
			c.logger.Warn("Durable prefetch failed",
				"session_key", s.Key, "stage", stage, "error", err)
			if s.NoteStoreUnavailable() {
				s.AddNote("Saved-preferences lookup is unavailable right now; continuing without them.")
			}
			return
		}
		s.SetDurable(stage, records)
		s.Debugf("prefetch: %d constraints for stage %s", len(records), stage)
	})
}

// EnsureStage waits up to budget for a stage's constraints to arrive.
// Returns true when loaded; on timeout the stage proceeds with
// whatever is cached.
func (c *Coordinator) EnsureStage(ctx context.Context, s *Session, stage models.Stage, budget time.Duration) bool {
	if s.DurableLoaded(stage) {
		return true
	}
	c.wait(ctx, stageKey(s.Key, stage), budget)
	return s.DurableLoaded(stage)
}

// QueueCalendarPrefetch lists the remote day in the background and
// caches the snapshot on the session. Deduped per (session, date).
func (c *Coordinator) QueueCalendarPrefetch(ctx context.Context, s *Session, date string, list func(context.Context) (*calendar.Snapshot, error)) {
	if s.Snapshot(date) != nil {
		return
	}
	c.queue(ctx, calendarKey(s.Key, date), c.prefetchSem, func(ctx context.Context) {
		snap, err := list(ctx)
		if err != nil {
			c.logger.Warn("Calendar prefetch failed",
				"session_key", s.Key, "date", date, "error", err)
			return
		}
		s.SetSnapshot(date, snap)
		s.Debugf("prefetch: %d remote events for %s", len(snap.Events), date)
	})
}

// EnsureCalendar waits up to budget for the day snapshot; nil when it
// never arrived.
func (c *Coordinator) EnsureCalendar(ctx context.Context, s *Session, date string, budget time.Duration) *calendar.Snapshot {
	if snap := s.Snapshot(date); snap != nil {
		return snap
	}
	c.wait(ctx, calendarKey(s.Key, date), budget)
	return s.Snapshot(date)
}

// QueueExtraction runs a fire-and-forget extraction task under the
// extraction semaphore, deduped by label.
func (c *Coordinator) QueueExtraction(ctx context.Context, sessionKey, label string, run func(context.Context)) {
	c.queue(ctx, sessionKey+"|extract|"+label, c.extractSem, run)
}

// WithUpsert runs fn under the durable-upsert semaphore, blocking the
// caller. Extraction goroutines funnel their store writes through it.
func (c *Coordinator) WithUpsert(ctx context.Context, fn func(context.Context) error) error {
	if err := c.upsertSem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.upsertSem.Release(1)
	return fn(ctx)
}

// queue registers the key and spawns the task unless the key is
// already in flight.
func (c *Coordinator) queue(ctx context.Context, key string, sem *semaphore.Weighted, run func(context.Context)) {
	c.mu.Lock()
	if _, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		return
	}
	done := make(chan struct{})
	c.inflight[key] = done
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			delete(c.inflight, key)
			c.mu.Unlock()
			close(done)
		}()
		if err := sem.Acquire(ctx, 1); err != nil {
			return
		}
		defer sem.Release(1)
		run(ctx)
	}()
}

// wait blocks until the keyed task finishes, the budget expires, or
// the context is done. Missing keys return immediately.
func (c *Coordinator) wait(ctx context.Context, key string, budget time.Duration) {
	c.mu.Lock()
	done, ok := c.inflight[key]
	c.mu.Unlock()
	if !ok {
		return
	}

	timer := time.NewTimer(budget)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
	case <-ctx.Done():
	}
}

func stageKey(sessionKey string, stage models.Stage) string {
	return sessionKey + "|constraints|" + string(stage)
}

func calendarKey(sessionKey, date string) string {
	return sessionKey + "|calendar|" + date
}
