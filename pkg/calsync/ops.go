// Package calsync turns a reconciliation into an ordered, reversible
// transaction of remote calendar mutations.
package calsync

import (
	"crypto/sha256"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/hugocool/fateforger/pkg/calendar"
	"github.com/hugocool/fateforger/pkg/reconcile"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// OpKind is the mutation class of one sync op.
type OpKind string

const (
	OpCreate OpKind = "create"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// Status tracks a transaction through execution and undo.
type Status string

const (
	StatusPending       Status = "pending"
	StatusCommitted     Status = "committed"
	StatusPartial       Status = "partial"
	StatusPartialHalted Status = "partial_halted"
	StatusUndone        Status = "undone"
	StatusUndoPartial   Status = "undo_partial"
)

// Op is one remote mutation with enough payload to reverse it.
type Op struct {
	Kind    OpKind `json:"kind"`
	EventID string `json:"event_id"`
	Tool    string `json:"tool"`
	// PlanIndex is the desired event's index in the resolved plan;
	// -1 for deletes, which have no desired counterpart.
	PlanIndex int `json:"plan_index"`
	// After is the forward payload (create/update).
	After *calendar.EventPayload `json:"after,omitempty"`
	// Before is the reverse payload (update/delete).
	Before *calendar.EventPayload `json:"before,omitempty"`
}

// Result records one executed op. Results are parallel to the ops
// slice; a halted transaction has fewer results than ops.
type Result struct {
	OK      bool   `json:"ok"`
	EventID string `json:"event_id"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Transaction is an ordered sync over one calendar and day.
type Transaction struct {
	ID          string   `json:"id"`
	SessionKey  string   `json:"session_key"`
	CalendarID  string   `json:"calendar_id"`
	PlannedDate string   `json:"planned_date"`
	Status      Status   `json:"status"`
	Ops         []Op     `json:"ops"`
	Results     []Result `json:"results"`
}

// OwnedEventID derives a deterministic external id for a created
// event. The hash input pins (date, name, start, index) so re-planning
// the same day yields the same ids. base32hex keeps the id within the
// remote API's identifier alphabet.
func OwnedEventID(date, name string, start timebox.TimeOfDay, index int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%d", date, name, start, index)))
	enc := base32.HexEncoding.WithPadding(base32.NoPadding).EncodeToString(sum[:10])
	return reconcile.OwnedPrefix + strings.ToLower(enc)
}

// PlanSync reconciles desired against remote and derives the ordered
// op list: creates, then updates, then deletes. Identical plans yield
// no ops.
func PlanSync(
	desired []timebox.ResolvedEvent,
	remote []calendar.RemoteEvent,
	eventIDMap map[string]string,
	remoteIDsByIndex []string,
	plannedDate, timezone string,
	fuzzyToleranceMinutes int,
) []Op {
	rec := reconcile.Reconcile(desired, remote, eventIDMap, remoteIDsByIndex, fuzzyToleranceMinutes)

	var ops []Op

	for _, d := range rec.Creates {
		after := payloadFromResolved(d, timezone)
		ops = append(ops, Op{
			Kind:      OpCreate,
			EventID:   OwnedEventID(plannedDate, d.Event.Name, timebox.TimeOfDayFrom(d.Start), d.Index),
			Tool:      calendar.ToolCreateEvent,
			PlanIndex: d.Index,
			After:     &after,
		})
	}

	for _, m := range rec.Updates {
		after := payloadFromResolved(m.Desired, timezone)
		before := payloadFromRemote(m.Remote, timezone)
		if !payloadChanged(before, after) {
			continue
		}
		ops = append(ops, Op{
			Kind:      OpUpdate,
			EventID:   m.Remote.ID,
			Tool:      calendar.ToolUpdateEvent,
			PlanIndex: m.Desired.Index,
			After:     &after,
			Before:    &before,
		})
	}

	for _, r := range rec.Deletes {
		before := payloadFromRemote(r, timezone)
		ops = append(ops, Op{
			Kind:      OpDelete,
			EventID:   r.ID,
			Tool:      calendar.ToolDeleteEvent,
			PlanIndex: -1,
			Before:    &before,
		})
	}

	return ops
}

// payloadFromResolved renders a desired event as the wire payload.
// Start and end carry local wall-clock times; the zone travels in
// TimeZone.
func payloadFromResolved(d timebox.ResolvedEvent, timezone string) calendar.EventPayload {
	return calendar.EventPayload{
		Summary:     d.Event.Name,
		Description: d.Event.Description,
		Start:       d.Start.Format(wallClockLayout),
		End:         d.End.Format(wallClockLayout),
		TimeZone:    timezone,
		ColorID:     d.Event.Type.ColorID(),
	}
}

func payloadFromRemote(r calendar.RemoteEvent, timezone string) calendar.EventPayload {
	return calendar.EventPayload{
		Summary:     r.Summary,
		Description: r.Description,
		Start:       r.Start.Format(wallClockLayout),
		End:         r.End.Format(wallClockLayout),
		TimeZone:    timezone,
		ColorID:     r.ColorID,
	}
}

const wallClockLayout = "2006-01-02T15:04:05"

// payloadChanged is the structural diff over the canonical subset:
// summary, start, end, description, color.
func payloadChanged(before, after calendar.EventPayload) bool {
	return before.Summary != after.Summary ||
		before.Start != after.Start ||
		before.End != after.End ||
		before.Description != after.Description ||
		before.ColorID != after.ColorID
}
