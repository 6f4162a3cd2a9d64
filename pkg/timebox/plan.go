package timebox

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Plan is an ordered sequence of events for one local date.
type Plan struct {
	Events   []Event `json:"events"`
	Date     string  `json:"date"`     // local ISO date, e.g. "2026-02-13"
	Timezone string  `json:"timezone"` // IANA name, e.g. "Europe/Amsterdam"
}

// ResolvedEvent is a plan event with concrete local times.
type ResolvedEvent struct {
	Index    int
	Event    Event
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// Location resolves the plan timezone.
func (p *Plan) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("plan timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}

// Day parses the plan date in its timezone.
func (p *Plan) Day() (time.Time, error) {
	loc, err := p.Location()
	if err != nil {
		return time.Time{}, err
	}
	day, err := time.ParseInLocation("2006-01-02", p.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("plan date %q: %w", p.Date, err)
	}
	return day, nil
}

// Clone deep-copies the plan. Timing values are immutable value types,
// so copying the event slice is sufficient.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	events := make([]Event, len(p.Events))
	copy(events, p.Events)
	return &Plan{Events: events, Date: p.Date, Timezone: p.Timezone}
}

// ResolveTimes computes concrete start/end times for every event.
//
// Forward pass fills fs/fw directly and ap from the previous end;
// backward pass fills bn from the following start. When
// validateNonOverlap is true (the default for desired plans; false for
// remote snapshots) consecutive non-background events must not overlap.
func (p *Plan) ResolveTimes(validateNonOverlap bool) ([]ResolvedEvent, error) {
	day, err := p.Day()
	if err != nil {
		return nil, err
	}
	loc := day.Location()

	resolved := make([]ResolvedEvent, len(p.Events))
	pending := make([]bool, len(p.Events))

	// Forward pass.
	var cursorSet bool
	var cursor time.Time
	for i, ev := range p.Events {
		re := ResolvedEvent{Index: i, Event: ev}
		switch t := ev.Timing.(type) {
		case FixedStart:
			re.Start = t.Start.On(day, loc)
			re.End = re.Start.Add(t.Duration)
		case FixedWindow:
			re.Start = t.Start.On(day, loc)
			re.End = t.End.On(day, loc)
		case AfterPrev:
			if !cursorSet {
				return nil, &BrokenChainError{Index: i, Name: ev.Name, Kind: AnchorAfterPrev}
			}
			re.Start = cursor
			re.End = re.Start.Add(t.Duration)
		case BeforeNext:
			pending[i] = true
			re.Duration = t.Duration
		default:
			return nil, &UnknownEnumError{Kind: "timing_anchor", Value: string(AnchorOf(ev.Timing))}
		}
		if !pending[i] {
			re.Duration = re.End.Sub(re.Start)
			cursor = re.End
			cursorSet = true
		}
		resolved[i] = re
	}

	// Backward pass: fill bn from the following start.
	for i := len(p.Events) - 1; i >= 0; i-- {
		if !pending[i] {
			continue
		}
		if i == len(p.Events)-1 {
			return nil, &BrokenChainError{Index: i, Name: p.Events[i].Name, Kind: AnchorBeforeNext}
		}
		next := resolved[i+1]
		resolved[i].End = next.Start
		resolved[i].Start = next.Start.Add(-resolved[i].Duration)
		pending[i] = false
	}

	if validateNonOverlap {
		if err := checkNonOverlap(resolved); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

// checkNonOverlap verifies that non-background events do not overlap.
// Events with identical starts retain insertion order.
func checkNonOverlap(resolved []ResolvedEvent) error {
	timed := make([]ResolvedEvent, 0, len(resolved))
	for _, re := range resolved {
		if re.Event.Type != EventBackground {
			timed = append(timed, re)
		}
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].Start.Before(timed[j].Start)
	})
	for i := 0; i+1 < len(timed); i++ {
		a, b := timed[i], timed[i+1]
		if a.End.After(b.Start) {
			return &OverlapError{
				AIndex: a.Index, AName: a.Event.Name, AEnd: a.End.Format("15:04"),
				BIndex: b.Index, BName: b.Event.Name, BStart: b.Start.Format("15:04"),
			}
		}
	}
	return nil
}

// Validate checks all plan invariants: structural rules, resolvable
// times, positive durations, and non-overlap of non-background events.
func (p *Plan) Validate() error {
	var issues []Issue
	anchored := false
	for i, ev := range p.Events {
		loc := fmt.Sprintf("events[%d]", i)
		if ev.Timing == nil {
			issues = append(issues, Issue{Location: loc, Type: "missing_timing", Message: "event has no timing"})
			continue
		}
		if !ev.Type.Valid() {
			issues = append(issues, Issue{
				Location: loc, Type: "unknown_enum",
				Message: fmt.Sprintf("unknown event_type %q", ev.Type),
			})
		}
		if ev.Type == EventBackground && !Anchored(ev.Timing) {
			issues = append(issues, Issue{
				Location: loc, Type: "background_timing",
				Message: "background events must use fixed-start or fixed-window timing",
			})
		}
		if ev.Type != EventBackground && Anchored(ev.Timing) {
			anchored = true
		}
	}
	if !anchored && len(p.Events) > 0 {
		issues = append(issues, Issue{
			Location: "events", Type: "no_anchor",
			Message: "at least one non-background event must be anchored (fs or fw)",
		})
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}

	resolved, err := p.ResolveTimes(true)
	if err != nil {
		return err
	}
	for _, re := range resolved {
		if re.Duration <= 0 {
			issues = append(issues, Issue{
				Location: fmt.Sprintf("events[%d]", re.Index),
				Type:     "nonpositive_duration",
				Message:  fmt.Sprintf("event %q resolves to a non-positive duration", re.Event.Name),
			})
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// MarshalIndent renders the plan as indented JSON for prompts and logs.
func (p *Plan) MarshalIndent() (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
