// Package reconcile classifies the difference between a desired day
// plan and a remote calendar snapshot into creates, updates, deletes,
// no-ops, and skips.
package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/hugocool/fateforger/pkg/calendar"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// OwnedPrefix marks remote events this system created and may mutate.
// All other event ids are foreign and read-only.
const OwnedPrefix = "ff7g"

// DefaultFuzzyToleranceMinutes bounds the start-time drift a fuzzy
// match will accept when the candidate windows do not overlap.
const DefaultFuzzyToleranceMinutes = 30

// IsOwned reports whether an external event id carries the owned marker.
func IsOwned(eventID string) bool {
	return strings.HasPrefix(eventID, OwnedPrefix)
}

// IDKey builds the event-id map key for a desired event.
func IDKey(name string, start timebox.TimeOfDay) string {
	return name + "|" + start.String()
}

// Match pairs one desired event with one remote event.
type Match struct {
	Desired timebox.ResolvedEvent
	Remote  calendar.RemoteEvent
	// Pass records which matching pass produced the pair: "id",
	// "canonical", or "fuzzy".
	Pass string
}

// Skip is an unmatched foreign remote event, left untouched.
type Skip struct {
	Remote calendar.RemoteEvent
	Reason string
}

// Plan is the classified outcome of one reconciliation.
type Plan struct {
	Matches []Match
	Creates []timebox.ResolvedEvent
	Updates []Match
	Noops   []Match
	Deletes []calendar.RemoteEvent
	Skips   []Skip
}

// Reconcile matches desired events against the remote snapshot and
// classifies every event on both sides exactly once.
//
// Matching runs three passes; a desired and a remote event may pair at
// most once:
//  1. id pass: hinted external ids from the event-id map (keyed
//     name|start) and the positional hint list.
//  2. canonical pass: exact (name, start, end) identity.
//  3. fuzzy pass: normalized name equality, scored by overlap then
//     start and duration drift.
func Reconcile(
	desired []timebox.ResolvedEvent,
	remote []calendar.RemoteEvent,
	eventIDMap map[string]string,
	remoteIDsByIndex []string,
	fuzzyToleranceMinutes int,
) *Plan {
	if fuzzyToleranceMinutes <= 0 {
		fuzzyToleranceMinutes = DefaultFuzzyToleranceMinutes
	}

	matchedDesired := make([]bool, len(desired))
	matchedRemote := make([]bool, len(remote))
	plan := &Plan{}

	record := func(di, ri int, pass string) {
		matchedDesired[di] = true
		matchedRemote[ri] = true
		plan.Matches = append(plan.Matches, Match{
			Desired: desired[di],
			Remote:  remote[ri],
			Pass:    pass,
		})
	}

	// Pass 1: hinted external ids.
	for di, d := range desired {
		if matchedDesired[di] {
			continue
		}
		hint := eventIDMap[IDKey(d.Event.Name, timebox.TimeOfDayFrom(d.Start))]
		if hint == "" && di < len(remoteIDsByIndex) {
			hint = remoteIDsByIndex[di]
		}
		if hint == "" {
			continue
		}
		for ri, r := range remote {
			if !matchedRemote[ri] && r.ID == hint {
				record(di, ri, "id")
				break
			}
		}
	}

	// Pass 2: canonical (name, start, end) identity.
	for di, d := range desired {
		if matchedDesired[di] {
			continue
		}
		for ri, r := range remote {
			if matchedRemote[ri] {
				continue
			}
			if normalizeName(d.Event.Name) == normalizeName(r.Summary) &&
				sameMinute(d.Start, r.Start) && sameMinute(d.End, r.End) {
				record(di, ri, "canonical")
				break
			}
		}
	}

	// Pass 3: fuzzy by name with scored time proximity.
	for di, d := range desired {
		if matchedDesired[di] {
			continue
		}
		best := -1
		var bestScore fuzzyScore
		for ri, r := range remote {
			if matchedRemote[ri] {
				continue
			}
			if normalizeName(d.Event.Name) != normalizeName(r.Summary) {
				continue
			}
			score := scoreCandidate(d, r)
			if score.overlapMinutes <= 0 && score.startDeltaMinutes > fuzzyToleranceMinutes {
				continue
			}
			// Equal scores prefer an owned candidate so a foreign twin
			// never shadows the event we created.
			switch {
			case best < 0 || score.better(bestScore):
				best = ri
				bestScore = score
			case score == bestScore && IsOwned(r.ID) && !IsOwned(remote[best].ID):
				best = ri
			}
		}
		if best >= 0 {
			record(di, best, "fuzzy")
		}
	}

	// Classification.
	for di, d := range desired {
		if !matchedDesired[di] {
			plan.Creates = append(plan.Creates, d)
		}
	}
	for _, m := range plan.Matches {
		if IsOwned(m.Remote.ID) {
			plan.Updates = append(plan.Updates, m)
		} else {
			plan.Noops = append(plan.Noops, m)
		}
	}
	for ri, r := range remote {
		if matchedRemote[ri] {
			continue
		}
		if IsOwned(r.ID) {
			plan.Deletes = append(plan.Deletes, r)
		} else {
			plan.Skips = append(plan.Skips, Skip{
				Remote: r,
				Reason: fmt.Sprintf("foreign event %q has no desired counterpart", r.Summary),
			})
		}
	}

	return plan
}

type fuzzyScore struct {
	overlapMinutes       int
	startDeltaMinutes    int
	durationDeltaMinutes int
}

// better orders scores by (overlap, -startDelta, -durationDelta).
func (s fuzzyScore) better(o fuzzyScore) bool {
	if s.overlapMinutes != o.overlapMinutes {
		return s.overlapMinutes > o.overlapMinutes
	}
	if s.startDeltaMinutes != o.startDeltaMinutes {
		return s.startDeltaMinutes < o.startDeltaMinutes
	}
	return s.durationDeltaMinutes < o.durationDeltaMinutes
}

func scoreCandidate(d timebox.ResolvedEvent, r calendar.RemoteEvent) fuzzyScore {
	overlapStart := maxTime(d.Start, r.Start)
	overlapEnd := minTime(d.End, r.End)
	overlap := int(overlapEnd.Sub(overlapStart).Minutes())
	if overlap < 0 {
		overlap = 0
	}

	return fuzzyScore{
		overlapMinutes:       overlap,
		startDeltaMinutes:    absMinutes(d.Start.Sub(r.Start)),
		durationDeltaMinutes: absMinutes(d.Duration - r.End.Sub(r.Start)),
	}
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// sameMinute compares instants at minute precision, the granularity of
// the plan model.
func sameMinute(a, b time.Time) bool {
	return a.Truncate(time.Minute).Equal(b.Truncate(time.Minute))
}

func absMinutes(d time.Duration) int {
	if d < 0 {
		d = -d
	}
	return int(d.Minutes())
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
