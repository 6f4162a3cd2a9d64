package calsync

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/calendar"
	"github.com/hugocool/fateforger/pkg/reconcile"
	"github.com/hugocool/fateforger/pkg/timebox"
)

var amsterdam = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		panic(err)
	}
	return loc
}()

func at(hhmm string) time.Time {
	tod, err := timebox.ParseTimeOfDay(hhmm)
	if err != nil {
		panic(err)
	}
	return tod.On(time.Date(2026, 2, 13, 0, 0, 0, 0, amsterdam), amsterdam)
}

func desiredEvent(index int, name string, et timebox.EventType, start, end string) timebox.ResolvedEvent {
	s, e := at(start), at(end)
	return timebox.ResolvedEvent{
		Index:    index,
		Event:    timebox.Event{Name: name, Type: et},
		Start:    s,
		End:      e,
		Duration: e.Sub(s),
	}
}

func remoteEvent(id, summary, start, end, colorID string) calendar.RemoteEvent {
	return calendar.RemoteEvent{
		ID:      id,
		Summary: summary,
		Status:  "confirmed",
		ColorID: colorID,
		Start:   at(start),
		End:     at(end),
	}
}

// fakeRemote is an in-memory calendar that the engine mutates.
type fakeRemote struct {
	events map[string]calendar.EventPayload
	failOn map[string]error
	calls  []string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		events: make(map[string]calendar.EventPayload),
		failOn: make(map[string]error),
	}
}

func (f *fakeRemote) CreateEvent(_ context.Context, _ string, eventID string, payload calendar.EventPayload) (string, error) {
	f.calls = append(f.calls, "create:"+eventID)
	if err := f.failOn[eventID]; err != nil {
		return "", err
	}
	f.events[eventID] = payload
	return fmt.Sprintf(`{"id":%q}`, eventID), nil
}

func (f *fakeRemote) UpdateEvent(_ context.Context, _ string, eventID string, payload calendar.EventPayload) (string, error) {
	f.calls = append(f.calls, "update:"+eventID)
	if err := f.failOn[eventID]; err != nil {
		return "", err
	}
	f.events[eventID] = payload
	return fmt.Sprintf(`{"id":%q}`, eventID), nil
}

func (f *fakeRemote) DeleteEvent(_ context.Context, _ string, eventID string) (string, error) {
	f.calls = append(f.calls, "delete:"+eventID)
	if err := f.failOn[eventID]; err != nil {
		return "", err
	}
	delete(f.events, eventID)
	return "{}", nil
}

func TestPlanSync_CreateOnly(t *testing.T) {
	desired := []timebox.ResolvedEvent{
		desiredEvent(0, "Focus", timebox.EventDeepWork, "09:00", "10:00"),
	}

	ops := PlanSync(desired, nil, nil, nil, "2026-02-13", "Europe/Amsterdam", 30)

	require.Len(t, ops, 1)
	op := ops[0]
	assert.Equal(t, OpCreate, op.Kind)
	assert.True(t, strings.HasPrefix(op.EventID, reconcile.OwnedPrefix))
	require.NotNil(t, op.After)
	assert.Equal(t, "Focus", op.After.Summary)
	assert.Equal(t, "2026-02-13T09:00:00", op.After.Start)
	assert.Equal(t, "2026-02-13T10:00:00", op.After.End)
	assert.Equal(t, "Europe/Amsterdam", op.After.TimeZone)
	assert.Equal(t, timebox.EventDeepWork.ColorID(), op.After.ColorID)

	// Deterministic: re-planning the same day yields the same id.
	again := PlanSync(desired, nil, nil, nil, "2026-02-13", "Europe/Amsterdam", 30)
	assert.Equal(t, op.EventID, again[0].EventID)
}

func TestPlanSync_IdenticalPlansYieldNoOps(t *testing.T) {
	desired := []timebox.ResolvedEvent{
		desiredEvent(0, "Focus", timebox.EventDeepWork, "09:00", "10:00"),
	}
	remote := []calendar.RemoteEvent{
		remoteEvent("ff7g_focus", "Focus", "09:00", "10:00", timebox.EventDeepWork.ColorID()),
	}

	ops := PlanSync(desired, remote, nil, nil, "2026-02-13", "Europe/Amsterdam", 30)
	assert.Empty(t, ops)
}

func TestPlanSync_Ordering(t *testing.T) {
	desired := []timebox.ResolvedEvent{
		desiredEvent(0, "New block", timebox.EventShallowWork, "09:00", "10:00"),
		desiredEvent(1, "Lunch", timebox.EventHabit, "12:00", "13:00"),
	}
	remote := []calendar.RemoteEvent{
		remoteEvent("ff7g_lunch", "Lunch", "12:00", "12:45", timebox.EventHabit.ColorID()),
		remoteEvent("ff7g_stale", "Old block", "15:00", "16:00", timebox.EventBuffer.ColorID()),
	}

	ops := PlanSync(desired, remote, nil, nil, "2026-02-13", "Europe/Amsterdam", 30)

	require.Len(t, ops, 3)
	assert.Equal(t, OpCreate, ops[0].Kind)
	assert.Equal(t, OpUpdate, ops[1].Kind)
	require.NotNil(t, ops[1].Before, "update carries the reverse payload")
	assert.Equal(t, "2026-02-13T12:45:00", ops[1].Before.End)
	assert.Equal(t, OpDelete, ops[2].Kind)
	assert.Equal(t, "ff7g_stale", ops[2].EventID)
}

func TestExecuteSync_HaltsOnFirstError(t *testing.T) {
	remote := newFakeRemote()
	remote.failOn["ff7g_bad"] = fmt.Errorf("backend exploded")

	ops := []Op{
		{Kind: OpCreate, EventID: "ff7g_ok", After: &calendar.EventPayload{Summary: "A"}},
		{Kind: OpUpdate, EventID: "ff7g_bad", After: &calendar.EventPayload{Summary: "B"}, Before: &calendar.EventPayload{Summary: "B0"}},
		{Kind: OpDelete, EventID: "ff7g_never", Before: &calendar.EventPayload{Summary: "C"}},
	}

	engine := NewEngine(remote, nil)
	tx, err := engine.ExecuteSync(context.Background(), "C1:T1", "primary", "2026-02-13", ops, true)
	require.Error(t, err)

	assert.Equal(t, StatusPartialHalted, tx.Status)
	require.Len(t, tx.Results, 2, "ops after the failure are absent from results")
	assert.True(t, tx.Results[0].OK)
	assert.False(t, tx.Results[1].OK)
	assert.Contains(t, tx.Results[1].Error, "backend exploded")
	assert.NotContains(t, remote.calls, "delete:ff7g_never")
}

func TestUndoSync_RoundTrip(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	remote.events["ff7g_b"] = calendar.EventPayload{Summary: "B", Start: "2026-02-13T10:00:00", End: "2026-02-13T11:00:00", TimeZone: "Europe/Amsterdam"}
	remote.events["ff7g_c"] = calendar.EventPayload{Summary: "C", Start: "2026-02-13T14:00:00", End: "2026-02-13T15:00:00", TimeZone: "Europe/Amsterdam"}
	original := map[string]calendar.EventPayload{
		"ff7g_b": remote.events["ff7g_b"],
		"ff7g_c": remote.events["ff7g_c"],
	}

	bBefore := remote.events["ff7g_b"]
	bAfter := bBefore
	bAfter.End = "2026-02-13T11:30:00"
	cBefore := remote.events["ff7g_c"]

	ops := []Op{
		{Kind: OpCreate, EventID: "ff7g_a", After: &calendar.EventPayload{Summary: "A", Start: "2026-02-13T09:00:00", End: "2026-02-13T10:00:00", TimeZone: "Europe/Amsterdam"}},
		{Kind: OpUpdate, EventID: "ff7g_b", After: &bAfter, Before: &bBefore},
		{Kind: OpDelete, EventID: "ff7g_c", Before: &cBefore},
	}

	engine := NewEngine(remote, nil)
	tx, err := engine.ExecuteSync(ctx, "C1:T1", "primary", "2026-02-13", ops, true)
	require.NoError(t, err)
	require.Equal(t, StatusCommitted, tx.Status)
	assert.NotContains(t, remote.events, "ff7g_c")

	undoTx, err := engine.UndoSync(ctx, tx)
	require.NoError(t, err)
	assert.Equal(t, StatusCommitted, undoTx.Status)
	assert.Equal(t, StatusUndone, tx.Status)

	// Compensation runs in reverse: create C, update B-before, delete A.
	require.Len(t, undoTx.Ops, 3)
	assert.Equal(t, OpCreate, undoTx.Ops[0].Kind)
	assert.Equal(t, "ff7g_c", undoTx.Ops[0].EventID)
	assert.Equal(t, OpUpdate, undoTx.Ops[1].Kind)
	assert.Equal(t, "2026-02-13T11:00:00", undoTx.Ops[1].After.End)
	assert.Equal(t, OpDelete, undoTx.Ops[2].Kind)
	assert.Equal(t, "ff7g_a", undoTx.Ops[2].EventID)

	assert.Equal(t, original, remote.events, "owned subset restored")
}

func TestUndoSync_CompensatesHaltedPrefix(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	remote.failOn["ff7g_bad"] = fmt.Errorf("backend exploded")

	ops := []Op{
		{Kind: OpCreate, EventID: "ff7g_first", After: &calendar.EventPayload{Summary: "A"}},
		{Kind: OpCreate, EventID: "ff7g_bad", After: &calendar.EventPayload{Summary: "B"}},
		{Kind: OpCreate, EventID: "ff7g_never", After: &calendar.EventPayload{Summary: "C"}},
	}

	engine := NewEngine(remote, nil)
	tx, err := engine.ExecuteSync(ctx, "C1:T1", "primary", "2026-02-13", ops, true)
	require.Error(t, err)
	require.Equal(t, StatusPartialHalted, tx.Status)
	require.Len(t, tx.Results, 2)
	assert.Contains(t, remote.events, "ff7g_first")

	// The executed prefix is still undoable.
	undoTx, err := engine.UndoSync(ctx, tx)
	require.NoError(t, err)
	require.Len(t, undoTx.Ops, 1, "only the successful create is compensated")
	assert.Equal(t, OpDelete, undoTx.Ops[0].Kind)
	assert.Equal(t, "ff7g_first", undoTx.Ops[0].EventID)
	assert.Equal(t, StatusUndone, tx.Status)
	assert.Empty(t, remote.events, "the stranded create is removed")
	assert.NotContains(t, remote.calls, "delete:ff7g_never")
}

func TestUndoSync_RefusesWithoutResults(t *testing.T) {
	engine := NewEngine(newFakeRemote(), nil)
	tx := &Transaction{
		ID:  "sync_crashed",
		Ops: []Op{{Kind: OpCreate, EventID: "ff7g_x", After: &calendar.EventPayload{}}},
	}

	_, err := engine.UndoSync(context.Background(), tx)
	require.ErrorIs(t, err, ErrUndoUnavailable)
}

func TestUndoSync_SkipsFailedOps(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	engine := NewEngine(remote, nil)

	tx := &Transaction{
		ID:          "sync_partial",
		CalendarID:  "primary",
		PlannedDate: "2026-02-13",
		Status:      StatusPartial,
		Ops: []Op{
			{Kind: OpCreate, EventID: "ff7g_ok", After: &calendar.EventPayload{Summary: "A"}},
			{Kind: OpCreate, EventID: "ff7g_failed", After: &calendar.EventPayload{Summary: "B"}},
		},
		Results: []Result{
			{OK: true, EventID: "ff7g_ok"},
			{OK: false, EventID: "ff7g_failed", Error: "boom"},
		},
	}
	remote.events["ff7g_ok"] = *tx.Ops[0].After

	undoTx, err := engine.UndoSync(ctx, tx)
	require.NoError(t, err)
	require.Len(t, undoTx.Ops, 1, "only successful ops are compensated")
	assert.Equal(t, OpDelete, undoTx.Ops[0].Kind)
	assert.Equal(t, "ff7g_ok", undoTx.Ops[0].EventID)
	assert.Empty(t, remote.events)
}
