// Package timebox defines the typed day-plan model: events, timing
// variants, plan validation, time resolution, and patch operations.
package timebox

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventType classifies a plan event. The short codes match the wire
// format used by the extractors and the calendar color mapping.
type EventType string

const (
	EventMeeting     EventType = "M"
	EventCommute     EventType = "C"
	EventDeepWork    EventType = "DW"
	EventShallowWork EventType = "SW"
	EventPlanReview  EventType = "PR"
	EventHabit       EventType = "H"
	EventRegen       EventType = "R"
	EventBuffer      EventType = "BU"
	EventBackground  EventType = "BG"
)

// colorIDs maps event types to the external calendar color identifier.
var colorIDs = map[EventType]string{
	EventMeeting:     "11",
	EventCommute:     "8",
	EventDeepWork:    "9",
	EventShallowWork: "7",
	EventPlanReview:  "3",
	EventHabit:       "10",
	EventRegen:       "2",
	EventBuffer:      "5",
	EventBackground:  "1",
}

// ParseEventType validates a wire code.
func ParseEventType(s string) (EventType, error) {
	et := EventType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := colorIDs[et]; !ok {
		return "", &UnknownEnumError{Kind: "event_type", Value: s}
	}
	return et, nil
}

// ColorID returns the external calendar color identifier for the type.
func (t EventType) ColorID() string {
	if c, ok := colorIDs[t]; ok {
		return c
	}
	return colorIDs[EventBuffer]
}

// Valid reports whether the type is a recognized code.
func (t EventType) Valid() bool {
	_, ok := colorIDs[t]
	return ok
}

// EventTypeForColor resolves an external calendar color identifier back
// to the event type it encodes.
func EventTypeForColor(colorID string) (EventType, bool) {
	for et, c := range colorIDs {
		if c == colorID {
			return et, true
		}
	}
	return "", false
}

// Anchor identifies a Timing variant (wire discriminator "a").
type Anchor string

const (
	AnchorAfterPrev   Anchor = "ap"
	AnchorBeforeNext  Anchor = "bn"
	AnchorFixedStart  Anchor = "fs"
	AnchorFixedWindow Anchor = "fw"
)

// Timing is the tagged union of the four timing variants.
type Timing interface {
	anchor() Anchor
}

// AfterPrev schedules the event immediately after its predecessor.
type AfterPrev struct {
	Duration time.Duration
}

// BeforeNext schedules the event to end exactly when its successor
// starts; the backward pass fills the start.
type BeforeNext struct {
	Duration time.Duration
}

// FixedStart anchors the event at a local time of day.
type FixedStart struct {
	Start    TimeOfDay
	Duration time.Duration
}

// FixedWindow anchors both endpoints at local times of day.
type FixedWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (AfterPrev) anchor() Anchor   { return AnchorAfterPrev }
func (BeforeNext) anchor() Anchor  { return AnchorBeforeNext }
func (FixedStart) anchor() Anchor  { return AnchorFixedStart }
func (FixedWindow) anchor() Anchor { return AnchorFixedWindow }

// AnchorOf returns the discriminator of a timing value.
func AnchorOf(t Timing) Anchor {
	if t == nil {
		return ""
	}
	return t.anchor()
}

// Anchored reports whether the timing pins the event to the clock
// independently of its neighbours.
func Anchored(t Timing) bool {
	switch t.(type) {
	case FixedStart, FixedWindow:
		return true
	default:
		return false
	}
}

// timingJSON is the wire envelope for all timing variants.
type timingJSON struct {
	Anchor   Anchor `json:"a"`
	Duration string `json:"duration,omitempty"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
}

// MarshalTiming encodes a timing value into its tagged wire form.
func MarshalTiming(t Timing) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("timing is nil")
	}
	env := timingJSON{Anchor: t.anchor()}
	switch v := t.(type) {
	case AfterPrev:
		env.Duration = FormatISODuration(v.Duration)
	case BeforeNext:
		env.Duration = FormatISODuration(v.Duration)
	case FixedStart:
		env.Start = v.Start.String()
		env.Duration = FormatISODuration(v.Duration)
	case FixedWindow:
		env.Start = v.Start.String()
		env.End = v.End.String()
	default:
		return nil, fmt.Errorf("unknown timing variant %T", t)
	}
	return json.Marshal(env)
}

// UnmarshalTiming decodes a tagged timing envelope.
func UnmarshalTiming(data []byte) (Timing, error) {
	var env timingJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("timing envelope: %w", err)
	}
	switch env.Anchor {
	case AnchorAfterPrev, AnchorBeforeNext:
		d, err := ParseISODuration(env.Duration)
		if err != nil {
			return nil, fmt.Errorf("timing %q: %w", env.Anchor, err)
		}
		if env.Anchor == AnchorAfterPrev {
			return AfterPrev{Duration: d}, nil
		}
		return BeforeNext{Duration: d}, nil
	case AnchorFixedStart:
		start, err := ParseTimeOfDay(env.Start)
		if err != nil {
			return nil, fmt.Errorf("timing fs: %w", err)
		}
		d, err := ParseISODuration(env.Duration)
		if err != nil {
			return nil, fmt.Errorf("timing fs: %w", err)
		}
		return FixedStart{Start: start, Duration: d}, nil
	case AnchorFixedWindow:
		start, err := ParseTimeOfDay(env.Start)
		if err != nil {
			return nil, fmt.Errorf("timing fw: %w", err)
		}
		end, err := ParseTimeOfDay(env.End)
		if err != nil {
			return nil, fmt.Errorf("timing fw: %w", err)
		}
		return FixedWindow{Start: start, End: end}, nil
	default:
		return nil, &UnknownEnumError{Kind: "timing_anchor", Value: string(env.Anchor)}
	}
}

// Event is one named interval in a plan.
type Event struct {
	Name        string
	Description string
	Type        EventType
	Timing      Timing
}

type eventJSON struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	EventType   EventType       `json:"event_type"`
	Timing      json.RawMessage `json:"timing"`
}

// MarshalJSON encodes the event with its tagged timing envelope.
func (e Event) MarshalJSON() ([]byte, error) {
	timing, err := MarshalTiming(e.Timing)
	if err != nil {
		return nil, fmt.Errorf("event %q: %w", e.Name, err)
	}
	return json.Marshal(eventJSON{
		Name:        e.Name,
		Description: e.Description,
		EventType:   e.Type,
		Timing:      timing,
	})
}

// UnmarshalJSON decodes the event and its tagged timing envelope.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw eventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	timing, err := UnmarshalTiming(raw.Timing)
	if err != nil {
		return fmt.Errorf("event %q: %w", raw.Name, err)
	}
	e.Name = raw.Name
	e.Description = raw.Description
	e.Type = raw.EventType
	e.Timing = timing
	return nil
}
