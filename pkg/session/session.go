// Package session holds per-thread planning state: the committed day
// frame, fact caches, plan artifacts, and the background prefetch
// scratch that stage turns read from.
package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hugocool/fateforger/pkg/calendar"
	"github.com/hugocool/fateforger/pkg/calsync"
	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/extract"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// ThreadState tracks the lifecycle of the owning thread.
type ThreadState string

const (
	ThreadActive   ThreadState = "active"
	ThreadCanceled ThreadState = "canceled"
	ThreadDone     ThreadState = "done"
)

// KeyOf derives the session key from the routing pair.
func KeyOf(channelID, threadTS string) string {
	return channelID + ":" + threadTS
}

// SkeletonResult is a pre-generated first-pass day layout. The
// fingerprint records the inputs it was generated from; a stale
// fingerprint means the result must be discarded.
type SkeletonResult struct {
	Fingerprint string
	Markdown    string
	Plan        *timebox.Plan
}

// SkeletonFingerprint hashes the inputs a skeleton depends on. Any
// change to them invalidates a pre-generated result.
func SkeletonFingerprint(plannedDate, timezone string, immovables, blockPlan any) string {
	var sb strings.Builder
	sb.WriteString(plannedDate)
	sb.WriteString("|")
	sb.WriteString(timezone)
	sb.WriteString("|")
	sb.WriteString(renderFact(immovables))
	sb.WriteString("|")
	sb.WriteString(renderFact(blockPlan))
	return sb.String()
}

func renderFact(v any) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// Session is the per-thread state. Stage-turn fields (commitment, fact
// caches, plan artifacts, stage output) are mutated only by the turn
// that holds the session's turn lock. Scratch fields written by
// background tasks live behind the internal mutex and are accessed via
// the accessor methods.
type Session struct {
	Channel  string
	ThreadTS string
	UserID   string
	Key      string

	// Commitment.
	PlannedDate string
	Timezone    string
	Stage       models.Stage
	Committed   bool
	Completed   bool
	ThreadState ThreadState

	// Fact caches.
	FrameFacts      map[string]any
	InputFacts      map[string]any
	LastUserMessage string

	// Plan artifacts.
	Plan             *timebox.Plan
	BaseSnapshot     *timebox.Plan
	EventIDMap       map[string]string
	RemoteIDsByIndex []string
	PatchHistory     []timebox.Patch

	// Stage output.
	StageReady      bool
	StageMissing    []string
	StageQuestion   string
	GateCache       map[models.Stage]*extract.StageGate
	ForceStageRerun bool

	// Submission.
	PendingSubmit bool
	LastSyncTx    *calsync.Transaction

	CreatedAt time.Time
	UpdatedAt time.Time

	// turnMu serializes graph turns; at most one turn mutates the
	// session at a time.
	turnMu sync.Mutex

	// mu guards the background scratch below.
	mu                    sync.RWMutex
	durableByStage        map[models.Stage][]*constraint.Record
	loadedStages          map[models.Stage]bool
	suppressedDurableUIDs map[string]bool
	snapshotsByDate       map[string]*calendar.Snapshot
	prefetchedTasks       []string
	preGenSkeleton        *SkeletonResult
	backgroundNotes       []string
	storeUnavailableNoted bool

	debugLog *DebugLog
}

// New creates a session for a thread. The stage starts at collect.
func New(channelID, threadTS, userID string) *Session {
	now := time.Now()
	return &Session{
		Channel:               channelID,
		ThreadTS:              threadTS,
		UserID:                userID,
		Key:                   KeyOf(channelID, threadTS),
		Stage:                 models.StageCollectConstraints,
		ThreadState:           ThreadActive,
		FrameFacts:            make(map[string]any),
		InputFacts:            make(map[string]any),
		EventIDMap:            make(map[string]string),
		GateCache:             make(map[models.Stage]*extract.StageGate),
		CreatedAt:             now,
		UpdatedAt:             now,
		durableByStage:        make(map[models.Stage][]*constraint.Record),
		loadedStages:          make(map[models.Stage]bool),
		suppressedDurableUIDs: make(map[string]bool),
		snapshotsByDate:       make(map[string]*calendar.Snapshot),
	}
}

// LockTurn takes the exclusive graph-turn lock. Concurrent replies in
// the same thread queue here; different threads run in parallel.
func (s *Session) LockTurn() { s.turnMu.Lock() }

// UnlockTurn releases the graph-turn lock.
func (s *Session) UnlockTurn() { s.turnMu.Unlock() }

// Touch bumps the update timestamp; callers hold the turn lock.
func (s *Session) Touch() { s.UpdatedAt = time.Now() }

// SetDurable stores prefetched constraints for a stage and marks the
// stage loaded.
func (s *Session) SetDurable(stage models.Stage, records []*constraint.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.durableByStage[stage] = records
	s.loadedStages[stage] = true
}

// Durable returns the prefetched constraints for a stage, filtered by
// the suppressed identity set.
func (s *Session) Durable(stage models.Stage) []*constraint.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.durableByStage[stage]
	out := make([]*constraint.Record, 0, len(records))
	for _, r := range records {
		if s.suppressedDurableUIDs[r.UID] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// DurableLoaded reports whether a stage's constraints have arrived.
func (s *Session) DurableLoaded(stage models.Stage) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedStages[stage]
}

// SuppressDurable records that the user overrode a durable default;
// future passes treat the session value as authoritative.
func (s *Session) SuppressDurable(uid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppressedDurableUIDs[uid] = true
}

// DurableSuppressed reports whether an identity has been overridden.
func (s *Session) DurableSuppressed(uid string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.suppressedDurableUIDs[uid]
}

// SetSnapshot caches a remote calendar snapshot for a date.
func (s *Session) SetSnapshot(date string, snap *calendar.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshotsByDate[date] = snap
}

// Snapshot returns the cached remote snapshot for a date, if any.
func (s *Session) Snapshot(date string) *calendar.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotsByDate[date]
}

// DropSnapshot invalidates the cached snapshot for a date, forcing the
// next baseline refresh to hit the remote.
func (s *Session) DropSnapshot(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshotsByDate, date)
}

// SetPendingTasks stores prefetched pending tasks for injection into
// the capture stage.
func (s *Session) SetPendingTasks(tasks []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefetchedTasks = tasks
}

// PendingTasks returns the prefetched pending tasks.
func (s *Session) PendingTasks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefetchedTasks
}

// SetPreGenSkeleton stores a background-generated skeleton.
func (s *Session) SetPreGenSkeleton(r *SkeletonResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preGenSkeleton = r
}

// TakePreGenSkeleton consumes the pre-generated skeleton when its
// fingerprint still matches; a stale result is discarded either way.
func (s *Session) TakePreGenSkeleton(fingerprint string) *SkeletonResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.preGenSkeleton
	s.preGenSkeleton = nil
	if r == nil || r.Fingerprint != fingerprint {
		return nil
	}
	return r
}

// AddNote appends a background note surfaced on the next presenter
// pass.
func (s *Session) AddNote(note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backgroundNotes = append(s.backgroundNotes, note)
}

// DrainNotes returns and clears accumulated background notes.
func (s *Session) DrainNotes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes := s.backgroundNotes
	s.backgroundNotes = nil
	return notes
}

// NoteStoreUnavailable marks the durable store down once per session.
// Returns true the first time so the caller can surface it.
func (s *Session) NoteStoreUnavailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.storeUnavailableNoted {
		return false
	}
	s.storeUnavailableNoted = true
	return true
}

// AttachDebugLog hands the session its debug logger; the session owns
// it and closes it on completion.
func (s *Session) AttachDebugLog(dl *DebugLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugLog = dl
}

// Debugf writes to the session debug log when one is attached and
// still open. Safe from background goroutines.
func (s *Session) Debugf(format string, args ...any) {
	s.mu.RLock()
	dl := s.debugLog
	s.mu.RUnlock()
	if dl != nil {
		dl.Printf(format, args...)
	}
}

// Finish transitions the session to a terminal state and closes the
// debug log. State moves first so background tasks observing the
// session see completion before the logger goes away.
func (s *Session) Finish(state ThreadState) {
	s.Completed = true
	s.ThreadState = state
	s.Touch()

	s.mu.Lock()
	dl := s.debugLog
	s.debugLog = nil
	s.mu.Unlock()
	if dl != nil {
		dl.Close()
	}
}
