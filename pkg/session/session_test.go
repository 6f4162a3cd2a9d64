package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/calendar"
	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/models"
)

func TestManager_GetOrCreate(t *testing.T) {
	m := NewManager()

	s, existed := m.GetOrCreate("C1", "T1", "U1")
	require.NotNil(t, s)
	assert.False(t, existed)
	assert.Equal(t, "C1:T1", s.Key)
	assert.Equal(t, models.StageCollectConstraints, s.Stage)

	again, existed := m.GetOrCreate("C1", "T1", "U1")
	assert.True(t, existed)
	assert.Same(t, s, again)

	other, existed := m.GetOrCreate("C1", "T2", "U1")
	assert.False(t, existed)
	assert.NotSame(t, s, other)
	assert.Equal(t, 2, m.Len())
}

func TestManager_ReplaceFinishesOldSession(t *testing.T) {
	m := NewManager()
	old, _ := m.GetOrCreate("C1", "T1", "U1")

	fresh := m.Replace("C1", "T1", "U1")
	assert.NotSame(t, old, fresh)
	assert.True(t, old.Completed)
	assert.Equal(t, ThreadCanceled, old.ThreadState)

	got, err := m.Get("C1", "T1")
	require.NoError(t, err)
	assert.Same(t, fresh, got)
}

func TestSession_DurableSuppression(t *testing.T) {
	s := New("C1", "T1", "U1")
	s.SetDurable(models.StageCollectConstraints, []*constraint.Record{
		{UID: "cr_sleep", Name: "Sleep 23:00 to 07:00"},
		{UID: "cr_calls", Name: "No calls after 18:00"},
	})

	require.Len(t, s.Durable(models.StageCollectConstraints), 2)

	s.SuppressDurable("cr_sleep")
	got := s.Durable(models.StageCollectConstraints)
	require.Len(t, got, 1)
	assert.Equal(t, "cr_calls", got[0].UID)
	assert.True(t, s.DurableSuppressed("cr_sleep"))
}

func TestSession_PreGenSkeletonFingerprint(t *testing.T) {
	s := New("C1", "T1", "U1")
	fp := SkeletonFingerprint("2026-02-13", "Europe/Amsterdam", []string{"standup 09:00"}, "deep work morning")
	s.SetPreGenSkeleton(&SkeletonResult{Fingerprint: fp, Markdown: "## Day"})

	// A changed block plan invalidates the result.
	stale := SkeletonFingerprint("2026-02-13", "Europe/Amsterdam", []string{"standup 09:00"}, "meetings all day")
	assert.Nil(t, s.TakePreGenSkeleton(stale))

	// Consumed results are gone even if the fingerprint matches later.
	s.SetPreGenSkeleton(&SkeletonResult{Fingerprint: fp, Markdown: "## Day"})
	got := s.TakePreGenSkeleton(fp)
	require.NotNil(t, got)
	assert.Equal(t, "## Day", got.Markdown)
	assert.Nil(t, s.TakePreGenSkeleton(fp))
}

func TestSession_NoteStoreUnavailableOnce(t *testing.T) {
	s := New("C1", "T1", "U1")
	assert.True(t, s.NoteStoreUnavailable())
	assert.False(t, s.NoteStoreUnavailable())
}

func TestCoordinator_StagePrefetchAndEnsure(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(DefaultLimits())
	s := New("C1", "T1", "U1")

	started := make(chan struct{})
	release := make(chan struct{})
	c.QueueStagePrefetch(ctx, s, models.StageCollectConstraints, func(context.Context) ([]*constraint.Record, error) {
		close(started)
		<-release
		return []*constraint.Record{{UID: "cr_a"}}, nil
	})
	<-started

	// Budget expires while the fetch is stuck; the stage proceeds
	// without the records.
	assert.False(t, c.EnsureStage(ctx, s, models.StageCollectConstraints, 20*time.Millisecond))

	close(release)
	assert.Eventually(t, func() bool {
		return c.EnsureStage(ctx, s, models.StageCollectConstraints, 100*time.Millisecond)
	}, time.Second, 10*time.Millisecond)
	assert.Len(t, s.Durable(models.StageCollectConstraints), 1)
}

func TestCoordinator_DedupesInflightTasks(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(DefaultLimits())
	s := New("C1", "T1", "U1")

	var calls atomic.Int32
	var wg sync.WaitGroup
	wg.Add(1)
	block := make(chan struct{})
	fetch := func(context.Context) ([]*constraint.Record, error) {
		defer wg.Done()
		calls.Add(1)
		<-block
		return nil, nil
	}

	c.QueueStagePrefetch(ctx, s, models.StageRefine, fetch)
	c.QueueStagePrefetch(ctx, s, models.StageRefine, fetch)
	c.QueueStagePrefetch(ctx, s, models.StageRefine, fetch)

	close(block)
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load(), "in-flight key queues exactly once")
}

func TestCoordinator_CalendarPrefetch(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(DefaultLimits())
	s := New("C1", "T1", "U1")

	c.QueueCalendarPrefetch(ctx, s, "2026-02-13", func(context.Context) (*calendar.Snapshot, error) {
		return &calendar.Snapshot{Events: []calendar.RemoteEvent{{ID: "ff7g_x", Summary: "Standup"}}}, nil
	})

	snap := c.EnsureCalendar(ctx, s, "2026-02-13", time.Second)
	require.NotNil(t, snap)
	assert.Len(t, snap.Events, 1)

	// Cached snapshots skip re-listing.
	c.QueueCalendarPrefetch(ctx, s, "2026-02-13", func(context.Context) (*calendar.Snapshot, error) {
		t.Fatal("cached date must not re-list")
		return nil, nil
	})
}

func TestCoordinator_UpsertSerializes(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(Limits{DurableUpsert: 1})

	var inFlight, maxInFlight atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.WithUpsert(ctx, func(context.Context) error {
				n := inFlight.Add(1)
				for {
					cur := maxInFlight.Load()
					if n <= cur || maxInFlight.CompareAndSwap(cur, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				inFlight.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestDebugLog_WriteAfterCloseIsDropped(t *testing.T) {
	dl, err := OpenDebugLog(t.TempDir(), "C1:T1")
	require.NoError(t, err)

	dl.Printf("turn %d", 1)
	dl.Close()
	dl.Printf("late write")
	dl.Close()
}
