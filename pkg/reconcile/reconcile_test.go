package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/calendar"
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

func remoteEvent(id, summary, start, end string) calendar.RemoteEvent {
	return calendar.RemoteEvent{
		ID:      id,
		Summary: summary,
		Status:  "confirmed",
		Start:   at(start),
		End:     at(end),
	}
}

func TestReconcile_OwnedVsForeign(t *testing.T) {
	remote := []calendar.RemoteEvent{
		remoteEvent("abc123", "Lunch", "12:00", "13:00"),
		remoteEvent("ff7g_lunch", "Lunch", "12:00", "13:00"),
	}
	desired := []timebox.ResolvedEvent{
		desiredEvent(0, "Lunch", timebox.EventHabit, "12:10", "13:10"),
	}

	plan := Reconcile(desired, remote, nil, nil, 30)

	require.Len(t, plan.Updates, 1, "desired pairs with the owned remote")
	assert.Equal(t, "ff7g_lunch", plan.Updates[0].Remote.ID)
	assert.Equal(t, "fuzzy", plan.Updates[0].Pass)
	assert.Empty(t, plan.Creates)
	assert.Empty(t, plan.Deletes, "foreign events are never deleted")
	require.Len(t, plan.Skips, 1)
	assert.Equal(t, "abc123", plan.Skips[0].Remote.ID)
}

func TestReconcile_IDPassWins(t *testing.T) {
	remote := []calendar.RemoteEvent{
		remoteEvent("ff7g_a", "Focus", "09:00", "10:00"),
		remoteEvent("ff7g_b", "Focus", "09:00", "10:00"),
	}
	desired := []timebox.ResolvedEvent{
		desiredEvent(0, "Focus", timebox.EventDeepWork, "09:00", "10:00"),
	}
	idMap := map[string]string{
		IDKey("Focus", timebox.TimeOfDay{Hour: 9}): "ff7g_b",
	}

	plan := Reconcile(desired, remote, idMap, nil, 30)

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, "ff7g_b", plan.Updates[0].Remote.ID)
	assert.Equal(t, "id", plan.Updates[0].Pass)
	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, "ff7g_a", plan.Deletes[0].ID)
}

func TestReconcile_PositionalHint(t *testing.T) {
	remote := []calendar.RemoteEvent{
		remoteEvent("ff7g_pos", "Renamed block", "09:00", "10:00"),
	}
	desired := []timebox.ResolvedEvent{
		desiredEvent(0, "Deep work", timebox.EventDeepWork, "09:00", "10:00"),
	}

	plan := Reconcile(desired, remote, nil, []string{"ff7g_pos"}, 30)

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, "id", plan.Updates[0].Pass)
	assert.Empty(t, plan.Creates)
}

func TestReconcile_CanonicalPass(t *testing.T) {
	remote := []calendar.RemoteEvent{
		remoteEvent("foreign1", "Team standup", "09:30", "09:45"),
	}
	desired := []timebox.ResolvedEvent{
		desiredEvent(0, "  Team   Standup ", timebox.EventMeeting, "09:30", "09:45"),
	}

	plan := Reconcile(desired, remote, nil, nil, 30)

	require.Len(t, plan.Noops, 1, "foreign match is a noop, never mutated")
	assert.Equal(t, "canonical", plan.Noops[0].Pass)
	assert.Empty(t, plan.Creates)
	assert.Empty(t, plan.Skips)
}

func TestReconcile_FuzzyToleranceRejects(t *testing.T) {
	remote := []calendar.RemoteEvent{
		remoteEvent("ff7g_old", "Gym", "06:00", "07:00"),
	}
	desired := []timebox.ResolvedEvent{
		desiredEvent(0, "Gym", timebox.EventHabit, "19:00", "20:00"),
	}

	plan := Reconcile(desired, remote, nil, nil, 30)

	assert.Empty(t, plan.Matches, "zero overlap beyond tolerance never matches")
	require.Len(t, plan.Creates, 1)
	require.Len(t, plan.Deletes, 1)
}

func TestReconcile_EveryEventClassifiedOnce(t *testing.T) {
	remote := []calendar.RemoteEvent{
		remoteEvent("ff7g_keep", "Focus", "09:00", "10:00"),
		remoteEvent("ff7g_stale", "Old block", "14:00", "15:00"),
		remoteEvent("xyz", "1:1 with Sam", "11:00", "11:30"),
	}
	desired := []timebox.ResolvedEvent{
		desiredEvent(0, "Focus", timebox.EventDeepWork, "09:00", "10:00"),
		desiredEvent(1, "New habit", timebox.EventHabit, "18:00", "18:30"),
	}

	plan := Reconcile(desired, remote, nil, nil, 30)

	assert.Equal(t, len(desired), len(plan.Matches)+len(plan.Creates),
		"each desired event is matched or created")
	assert.Equal(t, len(remote), len(plan.Matches)+len(plan.Deletes)+len(plan.Skips),
		"each remote event appears exactly once")
	require.Len(t, plan.Creates, 1)
	assert.Equal(t, "New habit", plan.Creates[0].Event.Name)
	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, "ff7g_stale", plan.Deletes[0].ID)
	require.Len(t, plan.Skips, 1)
	assert.Equal(t, "xyz", plan.Skips[0].Remote.ID)
}
