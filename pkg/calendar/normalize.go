package calendar

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hugocool/fateforger/pkg/timebox"
)

// RemoteEvent is a normalized remote calendar event.
type RemoteEvent struct {
	ID          string
	Summary     string
	Description string
	Status      string
	ColorID     string
	Start       time.Time
	End         time.Time
	// AllDay is set when the remote event carries only a date, no times.
	AllDay bool
}

// EventPayload is the wire payload for create/update calls. Start and
// End carry local wall-clock times; the offset comes from TimeZone.
type EventPayload struct {
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	TimeZone    string `json:"timeZone"`
	ColorID     string `json:"colorId,omitempty"`
}

func (p EventPayload) toArgs() map[string]any {
	args := map[string]any{
		"summary":  p.Summary,
		"start":    p.Start,
		"end":      p.End,
		"timeZone": p.TimeZone,
	}
	if p.Description != "" {
		args["description"] = p.Description
	}
	if p.ColorID != "" {
		args["colorId"] = p.ColorID
	}
	return args
}

// Snapshot is a normalized day view of the remote calendar.
type Snapshot struct {
	Events []RemoteEvent
	// Diagnostics records events dropped during normalization.
	Diagnostics []string
}

// wire shapes for the calendar MCP server responses.
type wireTime struct {
	DateTime string `json:"dateTime"`
	Date     string `json:"date"`
	TimeZone string `json:"timeZone"`
}

type wireEvent struct {
	ID          string   `json:"id"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	ColorID     string   `json:"colorId"`
	Start       wireTime `json:"start"`
	End         wireTime `json:"end"`
}

type wireEventList struct {
	Events []wireEvent `json:"events"`
}

// parseEventList parses a list-events response. Non-JSON text raises
// RPCError with the tool name and payload.
func parseEventList(tool, text string) ([]RemoteEvent, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	var list wireEventList
	if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
		// Some servers return a bare array.
		var arr []wireEvent
		if err2 := json.Unmarshal([]byte(trimmed), &arr); err2 != nil {
			return nil, &RPCError{Tool: tool, Payload: text}
		}
		list.Events = arr
	}

	events := make([]RemoteEvent, 0, len(list.Events))
	for _, w := range list.Events {
		events = append(events, fromWire(w))
	}
	return events, nil
}

// parseEvent parses a single-event response.
func parseEvent(tool, text string) (*RemoteEvent, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	var w wireEvent
	if err := json.Unmarshal([]byte(trimmed), &w); err != nil {
		return nil, &RPCError{Tool: tool, Payload: text}
	}
	ev := fromWire(w)
	return &ev, nil
}

func fromWire(w wireEvent) RemoteEvent {
	ev := RemoteEvent{
		ID:          w.ID,
		Summary:     w.Summary,
		Description: w.Description,
		Status:      w.Status,
		ColorID:     w.ColorID,
	}
	if w.Start.DateTime == "" && w.Start.Date != "" {
		ev.AllDay = true
		return ev
	}
	ev.Start = parseWireTime(w.Start)
	ev.End = parseWireTime(w.End)
	return ev
}

// parseWireTime accepts RFC3339 or a naive local datetime. A zero time
// marks the bound as missing.
func parseWireTime(wt wireTime) time.Time {
	if wt.DateTime == "" {
		return time.Time{}
	}
	loc := time.UTC
	if wt.TimeZone != "" {
		if l, err := time.LoadLocation(wt.TimeZone); err == nil {
			loc = l
		}
	}
	if t, err := time.Parse(time.RFC3339, wt.DateTime); err == nil {
		return t.In(loc)
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", wt.DateTime, loc); err == nil {
		return t
	}
	return time.Time{}
}

// NormalizeDay filters a raw event list down to the day snapshot:
// cancelled and all-day events are dropped, times are clamped to the
// local day, and the result is stably sorted by start time.
func NormalizeDay(events []RemoteEvent, localDay, timezone string) (*Snapshot, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	day, err := time.ParseInLocation("2006-01-02", localDay, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid local day %q: %w", localDay, err)
	}
	dayStart := day
	dayEnd := day.Add(24*time.Hour - time.Minute)

	snapshot := &Snapshot{}
	for _, ev := range events {
		switch {
		case strings.EqualFold(ev.Status, "cancelled"):
			snapshot.Diagnostics = append(snapshot.Diagnostics,
				fmt.Sprintf("dropped cancelled event %q", ev.Summary))
			continue
		case ev.AllDay || ev.Start.IsZero() || ev.End.IsZero():
			snapshot.Diagnostics = append(snapshot.Diagnostics,
				fmt.Sprintf("dropped event %q without concrete date-time bounds", ev.Summary))
			continue
		}

		ev.Start = clamp(ev.Start.In(loc), dayStart, dayEnd)
		ev.End = clamp(ev.End.In(loc), dayStart, dayEnd)
		snapshot.Events = append(snapshot.Events, ev)
	}

	sort.SliceStable(snapshot.Events, func(i, j int) bool {
		return snapshot.Events[i].Start.Before(snapshot.Events[j].Start)
	})
	return snapshot, nil
}

func clamp(t, lo, hi time.Time) time.Time {
	if t.Before(lo) {
		return lo
	}
	if t.After(hi) {
		return hi
	}
	return t
}

// ToPlan converts the snapshot into a Plan of fixed-window events. The
// event type is recovered from the color identifier when possible,
// defaulting to meeting for foreign events.
func (s *Snapshot) ToPlan(localDay, timezone string) *timebox.Plan {
	plan := &timebox.Plan{
		Date:     localDay,
		Timezone: timezone,
	}
	for _, ev := range s.Events {
		et := timebox.EventMeeting
		if t, ok := timebox.EventTypeForColor(ev.ColorID); ok {
			et = t
		}
		plan.Events = append(plan.Events, timebox.Event{
			Name:        ev.Summary,
			Description: ev.Description,
			Type:        et,
			Timing: timebox.FixedWindow{
				Start: timebox.TimeOfDayFrom(ev.Start),
				End:   timebox.TimeOfDayFrom(ev.End),
			},
		})
	}
	return plan
}
