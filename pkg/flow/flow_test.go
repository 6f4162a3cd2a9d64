package flow

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/calendar"
	"github.com/hugocool/fateforger/pkg/calsync"
	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/extract"
	"github.com/hugocool/fateforger/pkg/llm"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/patcher"
	"github.com/hugocool/fateforger/pkg/prompt"
	"github.com/hugocool/fateforger/pkg/reconcile"
	"github.com/hugocool/fateforger/pkg/retriever"
	"github.com/hugocool/fateforger/pkg/session"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// routingGen replays scripted responses per extractor, classified by
// the system prompt.
type routingGen struct {
	mu        sync.Mutex
	responses map[string][]string
	delay     time.Duration
	calls     []string
}

func (g *routingGen) CollectText(ctx context.Context, _ string, messages []llm.Message) (string, error) {
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	key := classifyPrompt(messages[0].Content)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, key)

	queue := g.responses[key]
	if len(queue) == 0 {
		return "", fmt.Errorf("no scripted response for %s", key)
	}
	resp := queue[0]
	g.responses[key] = queue[1:]
	return resp, nil
}

func classifyPrompt(sys string) string {
	switch {
	case strings.Contains(sys, "planned day"):
		return "planned_date"
	case strings.Contains(sys, "route one user turn"):
		return "decision"
	case strings.Contains(sys, "readiness gate"):
		return "gate"
	case strings.Contains(sys, "first skeleton"):
		return "skeleton"
	case strings.Contains(sys, "Markdown overview"):
		return "overview"
	case strings.Contains(sys, "durable scheduling rule"):
		return "interpreter"
	case strings.Contains(sys, "durable constraint record"):
		return "constraint"
	case strings.Contains(sys, "edit a day plan"):
		return "patch"
	default:
		return "unknown"
	}
}

type fakeCalendar struct {
	mu    sync.Mutex
	snap  *calendar.Snapshot
	err   error
	calls int
}

func (f *fakeCalendar) ListDayEvents(_ context.Context, _, _, _ string) (*calendar.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

type fakeSyncer struct {
	mu        sync.Mutex
	execOps   [][]calsync.Op
	undoCalls int
	execErr   error
}

func (f *fakeSyncer) ExecuteSync(_ context.Context, sessionKey, calendarID, plannedDate string, ops []calsync.Op, _ bool) (*calsync.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execOps = append(f.execOps, ops)

	results := make([]calsync.Result, len(ops))
	for i, op := range ops {
		results[i] = calsync.Result{OK: true, EventID: op.EventID}
	}
	tx := &calsync.Transaction{
		ID:          "sync_test",
		SessionKey:  sessionKey,
		CalendarID:  calendarID,
		PlannedDate: plannedDate,
		Status:      calsync.StatusCommitted,
		Ops:         ops,
		Results:     results,
	}
	return tx, f.execErr
}

func (f *fakeSyncer) UndoSync(_ context.Context, tx *calsync.Transaction) (*calsync.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.undoCalls++
	return &calsync.Transaction{ID: tx.ID + "_undo", Status: calsync.StatusCommitted, Ops: tx.Ops}, nil
}

func newTestController(gen *routingGen) (*Controller, *fakeCalendar, *fakeSyncer) {
	store := constraint.NewMemStore()
	cal := &fakeCalendar{snap: &calendar.Snapshot{}}
	syn := &fakeSyncer{}
	prompts := prompt.NewBuilder()

	c := NewController(Deps{
		Sessions:  session.NewManager(),
		Coord:     session.NewCoordinator(session.DefaultLimits()),
		Gen:       gen,
		Prompts:   prompts,
		Store:     store,
		Retriever: retriever.New(store),
		Patcher:   patcher.New(gen, prompts),
		Calendar:  cal,
		Syncer:    syn,
	}, Config{
		CalendarID:         "primary",
		DefaultTimezone:    "Europe/Amsterdam",
		PrefetchWaitBudget: 100 * time.Millisecond,
		CalendarWaitBudget: 100 * time.Millisecond,
	})
	return c, cal, syn
}

func committedSession(c *Controller, stage models.Stage) *session.Session {
	s, _ := c.sessions.GetOrCreate("C1", "T1", "U1")
	s.PlannedDate = "2026-02-13"
	s.Timezone = "Europe/Amsterdam"
	s.Committed = true
	s.Stage = stage
	return s
}

func meetingPlan() *timebox.Plan {
	return &timebox.Plan{
		Date:     "2026-02-13",
		Timezone: "Europe/Amsterdam",
		Events: []timebox.Event{{
			Name: "Meeting",
			Type: timebox.EventMeeting,
			Timing: timebox.FixedWindow{
				Start: timebox.TimeOfDay{Hour: 10},
				End:   timebox.TimeOfDay{Hour: 11},
			},
		}},
	}
}

func userReply(c *Controller, text string) *models.Reply {
	return c.UserReply(context.Background(), models.UserReplyRequest{
		ThreadRef: models.ThreadRef{ChannelID: "C1", ThreadTS: "T1", UserID: "U1"},
		Text:      text,
	})
}

func TestCollect_DurableDefaultNormalization(t *testing.T) {
	gen := &routingGen{responses: map[string][]string{
		"gate": {`{"stage_id":"collect_constraints","ready":false,"missing":["sleep target"],"facts":{"work_window":"09:00-17:00"},"question":"When do you want to sleep?"}`},
	}}
	c, _, _ := newTestController(gen)
	s := committedSession(c, models.StageCollectConstraints)
	s.SetDurable(models.StageCollectConstraints, []*constraint.Record{{
		UID:      "cr_sleep",
		Name:     "Sleep 23:00 to 07:00",
		RuleKind: "sleep_window",
		Status:   constraint.StatusLocked,
		Windows:  []constraint.Window{{Kind: "sleep", Start: "23:00", End: "07:00"}},
	}})

	reply := userReply(c, "I work 9 to 5 with a standup at 10")
	require.NotNil(t, reply)

	assert.Contains(t, reply.Text, "Using your saved defaults")
	assert.True(t, s.StageReady, "defaults cover the only missing item")
	assert.Equal(t, "23:00-07:00", s.FrameFacts["sleep_target"])
	assert.Equal(t, "09:00-17:00", s.FrameFacts["work_window"])
	assert.False(t, s.DurableSuppressed("cr_sleep"))
}

func TestCollect_UserOverrideSuppressesDurable(t *testing.T) {
	gen := &routingGen{responses: map[string][]string{
		"decision": {`{"action":"provide_info"}`},
		"gate":     {`{"stage_id":"collect_constraints","ready":true,"facts":{"sleep_target":"00:00-08:00"},"question":"Anything else?"}`},
	}}
	c, _, _ := newTestController(gen)
	s := committedSession(c, models.StageCollectConstraints)
	s.StageReady = true
	s.SetDurable(models.StageCollectConstraints, []*constraint.Record{{
		UID:      "cr_sleep",
		Name:     "Sleep 23:00 to 07:00",
		RuleKind: "sleep_window",
		Windows:  []constraint.Window{{Kind: "sleep", Start: "23:00", End: "07:00"}},
	}})

	reply := userReply(c, "actually tonight I sleep midnight to eight")
	require.NotNil(t, reply)

	assert.True(t, s.DurableSuppressed("cr_sleep"), "session override beats the saved default")
	assert.Equal(t, "00:00-08:00", s.FrameFacts["sleep_target"])
	assert.Empty(t, s.Durable(models.StageCollectConstraints), "suppressed identities drop out")
}

func TestDecision_FallsBackToProvideInfoOnGarbage(t *testing.T) {
	gen := &routingGen{responses: map[string][]string{
		"decision": {`complete nonsense, no json here`},
		"gate":     {`{"stage_id":"collect_constraints","ready":false,"missing":["work window"],"question":"What's your work window?"}`},
	}}
	c, _, _ := newTestController(gen)
	s := committedSession(c, models.StageCollectConstraints)
	s.StageReady = true

	reply := userReply(c, "hmm let me think about that")
	require.NotNil(t, reply)
	assert.Contains(t, reply.Text, "work window", "turn degrades to rerunning the stage, never crashes")
	assert.Equal(t, models.StageCollectConstraints, s.Stage)
}

func TestStageAction_ProceedRejectedWhenUnready(t *testing.T) {
	gen := &routingGen{responses: map[string][]string{}}
	c, _, _ := newTestController(gen)
	s := committedSession(c, models.StageCaptureInputs)
	s.StageReady = false
	s.StageMissing = []string{"daily one-thing", "task list"}

	reply := c.StageAction(context.Background(), models.StageActionRequest{
		ThreadRef: models.ThreadRef{ChannelID: "C1", ThreadTS: "T1", UserID: "U1"},
		Action:    models.StageActionProceed,
	})
	require.NotNil(t, reply)
	assert.Contains(t, reply.Text, "daily one-thing")
	assert.Contains(t, reply.Text, "task list")
	assert.Equal(t, models.StageCaptureInputs, s.Stage, "stage does not advance")
}

func TestSkeleton_ConsumesPreGeneratedResult(t *testing.T) {
	// No skeleton/overview responses scripted: consuming the pre-gen
	// result must not call the LLM.
	gen := &routingGen{responses: map[string][]string{}}
	c, _, _ := newTestController(gen)
	s := committedSession(c, models.StageCaptureInputs)
	s.StageReady = true
	s.FrameFacts["immovables"] = "standup 10:00"
	s.InputFacts["block_plan"] = "deep work morning"

	pre := meetingPlan()
	s.SetPreGenSkeleton(&session.SkeletonResult{
		Fingerprint: c.skeletonFingerprint(s),
		Markdown:    "## Your Friday\n- 10:00 Meeting",
		Plan:        pre,
	})

	reply := c.StageAction(context.Background(), models.StageActionRequest{
		ThreadRef: models.ThreadRef{ChannelID: "C1", ThreadTS: "T1", UserID: "U1"},
		Action:    models.StageActionProceed,
	})
	require.NotNil(t, reply)

	assert.Equal(t, models.StageSkeleton, s.Stage)
	assert.Contains(t, reply.Text, "Your Friday")
	require.NotNil(t, s.Plan)
	require.NotNil(t, s.BaseSnapshot)
	assert.NotSame(t, s.Plan, s.BaseSnapshot, "baseline is a deep copy")
	assert.NotContains(t, gen.calls, "skeleton")
}

func TestReview_ProvideInfoRewindsToRefine(t *testing.T) {
	gen := &routingGen{responses: map[string][]string{
		"decision": {`{"action":"provide_info"}`},
		"patch":    {`{"ops":[{"op":"ue","index":0,"name":"Team sync"}]}`},
	}}
	c, _, _ := newTestController(gen)
	s := committedSession(c, models.StageReviewCommit)
	s.StageReady = true
	s.PendingSubmit = true
	s.Plan = meetingPlan()
	s.BaseSnapshot = s.Plan.Clone()

	reply := userReply(c, "rename the meeting to Team sync")
	require.NotNil(t, reply)

	assert.Equal(t, models.StageRefine, s.Stage, "review detail reopens refinement")
	assert.Equal(t, "Team sync", s.Plan.Events[0].Name)
	assert.Len(t, s.PatchHistory, 1)
}

func TestConfirmSubmit_CreatesAndRecordsIDs(t *testing.T) {
	gen := &routingGen{responses: map[string][]string{}}
	c, _, syn := newTestController(gen)
	s := committedSession(c, models.StageReviewCommit)
	s.Plan = meetingPlan()
	s.BaseSnapshot = s.Plan.Clone()
	s.PendingSubmit = true

	reply := c.ConfirmSubmit(context.Background(), models.SubmitRequest{
		ThreadRef: models.ThreadRef{ChannelID: "C1", ThreadTS: "T1", UserID: "U1"},
	})
	require.NotNil(t, reply)

	assert.Contains(t, reply.Text, "1 created")
	require.Len(t, syn.execOps, 1)
	require.Len(t, syn.execOps[0], 1)
	assert.Equal(t, calsync.OpCreate, syn.execOps[0][0].Kind)

	require.NotNil(t, s.LastSyncTx)
	assert.False(t, s.PendingSubmit)
	key := reconcile.IDKey("Meeting", timebox.TimeOfDay{Hour: 10})
	assert.Equal(t, syn.execOps[0][0].EventID, s.EventIDMap[key])

	// The positional hint pins the remote id at the plan index.
	require.Len(t, s.RemoteIDsByIndex, 1)
	assert.Equal(t, syn.execOps[0][0].EventID, s.RemoteIDsByIndex[0])
}

func TestUndoSubmit_RestoresBaselineAndRewinds(t *testing.T) {
	gen := &routingGen{responses: map[string][]string{}}
	c, _, syn := newTestController(gen)
	s := committedSession(c, models.StageReviewCommit)
	s.Plan = meetingPlan()
	s.BaseSnapshot = s.Plan.Clone()
	s.PendingSubmit = true

	c.ConfirmSubmit(context.Background(), models.SubmitRequest{
		ThreadRef: models.ThreadRef{ChannelID: "C1", ThreadTS: "T1", UserID: "U1"},
	})
	require.NotNil(t, s.LastSyncTx)

	reply := c.UndoSubmit(context.Background(), models.SubmitRequest{
		ThreadRef: models.ThreadRef{ChannelID: "C1", ThreadTS: "T1", UserID: "U1"},
	})
	require.NotNil(t, reply)

	assert.Equal(t, 1, syn.undoCalls)
	assert.Contains(t, reply.Text, "Rolled back")
	assert.Equal(t, models.StageRefine, s.Stage)
	assert.Nil(t, s.LastSyncTx)
	assert.Nil(t, s.RemoteIDsByIndex, "positional hints die with the undone sync")

	// The rewound stage reruns on the next turn instead of routing a
	// stale-ready decision through the extractor.
	require.True(t, s.ForceStageRerun)
	d := c.decide(context.Background(), s, "tighten the morning", nil)
	assert.Equal(t, extract.ActionRedo, d.Action)
	assert.False(t, s.ForceStageRerun)
}

func TestPresent_KeepsUndoWhileRearmed(t *testing.T) {
	gen := &routingGen{responses: map[string][]string{}}
	c, _, _ := newTestController(gen)
	s := committedSession(c, models.StageReviewCommit)
	s.PendingSubmit = true
	s.LastSyncTx = &calsync.Transaction{ID: "sync_live", Status: calsync.StatusCommitted}

	reply := c.present(s, nil)
	require.NotNil(t, reply)

	ids := make([]string, 0, len(reply.Buttons))
	for _, b := range reply.Buttons {
		ids = append(ids, b.ID)
	}
	assert.Contains(t, ids, models.ButtonConfirmSubmit)
	assert.Contains(t, ids, models.ButtonCancelSubmit)
	assert.Contains(t, ids, models.ButtonUndoSubmit, "a live prior sync stays reversible")
}

func TestRunTurn_TimesOutDeterministically(t *testing.T) {
	gen := &routingGen{
		delay:     200 * time.Millisecond,
		responses: map[string][]string{},
	}
	c, _, _ := newTestController(gen)
	c.cfg.GraphTurnTimeout = 50 * time.Millisecond
	s := committedSession(c, models.StageCollectConstraints)
	s.StageReady = false

	reply := userReply(c, "plan my day please")
	require.NotNil(t, reply)
	assert.Equal(t, processingTimeoutText, reply.Text)
	assert.False(t, s.Completed, "timeout never kills the session")
}

func TestCancelDecisionFinishesSession(t *testing.T) {
	gen := &routingGen{responses: map[string][]string{
		"decision": {`{"action":"cancel"}`},
	}}
	c, _, _ := newTestController(gen)
	s := committedSession(c, models.StageCaptureInputs)
	s.StageReady = true

	reply := userReply(c, "forget it, stop planning today")
	require.NotNil(t, reply)
	assert.Contains(t, reply.Text, "Canceled")
	assert.True(t, s.Completed)
	assert.Equal(t, session.ThreadCanceled, s.ThreadState)

	again := userReply(c, "hello?")
	assert.Contains(t, again.Text, "session has ended")
}
