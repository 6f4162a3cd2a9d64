// Package constraint implements the durable constraint store: the
// content-addressed preference records that survive across planning
// sessions, the backend-agnostic Store interface, and its in-memory
// and Postgres (ent) backends.
package constraint

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// Necessity grades how binding a constraint is.
type Necessity string

const (
	NecessityMust   Necessity = "must"
	NecessityShould Necessity = "should"
)

// Status is the lifecycle state of a record.
type Status string

const (
	StatusProposed Status = "proposed"
	StatusLocked   Status = "locked"
	StatusDeclined Status = "declined"
)

// Source records where the constraint came from.
type Source string

const (
	SourceUser     Source = "user"
	SourceCalendar Source = "calendar"
	SourceSystem   Source = "system"
	SourceFeedback Source = "feedback"
)

// Scope bounds the applicability of the record.
type Scope string

const (
	ScopeSession  Scope = "session"
	ScopeProfile  Scope = "profile"
	ScopeDatespan Scope = "datespan"
)

// Weekday is the two-letter day code used on the wire (MO..SU).
type Weekday string

var weekdayOrder = map[Weekday]int{
	"MO": 0, "TU": 1, "WE": 2, "TH": 3, "FR": 4, "SA": 5, "SU": 6,
}

// Window is one time-of-day interval in the rule payload.
type Window struct {
	Kind  string `json:"kind"` // e.g. "avoid", "prefer", "work"
	Start string `json:"start"`
	End   string `json:"end"`
}

// Record is a durable, content-addressed preference constraint.
type Record struct {
	// Identity
	UID         string `json:"uid,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Governance
	Necessity  Necessity `json:"necessity"`
	Status     Status    `json:"status"`
	Source     Source    `json:"source"`
	Confidence float64   `json:"confidence"`
	Scope      Scope     `json:"scope"`

	// Applicability
	StartDate  string    `json:"start_date,omitempty"` // local ISO date
	EndDate    string    `json:"end_date,omitempty"`
	DaysOfWeek []Weekday `json:"days_of_week,omitempty"`
	Timezone   string    `json:"timezone,omitempty"`
	Recurrence string    `json:"recurrence,omitempty"`
	TTLDays    int       `json:"ttl_days,omitempty"`

	// Routing
	AppliesStages     []models.Stage      `json:"applies_stages,omitempty"`
	AppliesEventTypes []timebox.EventType `json:"applies_event_types,omitempty"`
	Topics            []string            `json:"topics,omitempty"`
	Tags              []string            `json:"tags,omitempty"`

	// Rule payload
	RuleKind     string             `json:"rule_kind"`
	ScalarParams map[string]float64 `json:"scalar_params,omitempty"`
	Windows      []Window           `json:"windows,omitempty"`

	// Lifecycle
	SupersedesUIDs []string  `json:"supersedes_uids,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// Clone deep-copies the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	out.DaysOfWeek = append([]Weekday(nil), r.DaysOfWeek...)
	out.AppliesStages = append([]models.Stage(nil), r.AppliesStages...)
	out.AppliesEventTypes = append([]timebox.EventType(nil), r.AppliesEventTypes...)
	out.Topics = append([]string(nil), r.Topics...)
	out.Tags = append([]string(nil), r.Tags...)
	out.Windows = append([]Window(nil), r.Windows...)
	out.SupersedesUIDs = append([]string(nil), r.SupersedesUIDs...)
	if r.ScalarParams != nil {
		out.ScalarParams = make(map[string]float64, len(r.ScalarParams))
		for k, v := range r.ScalarParams {
			out.ScalarParams[k] = v
		}
	}
	return &out
}

// ValidateEnums checks that all enum-valued fields carry known codes.
func (r *Record) ValidateEnums() error {
	switch r.Necessity {
	case NecessityMust, NecessityShould:
	default:
		return fmt.Errorf("unknown necessity %q", r.Necessity)
	}
	switch r.Status {
	case StatusProposed, StatusLocked, StatusDeclined:
	default:
		return fmt.Errorf("unknown status %q", r.Status)
	}
	switch r.Source {
	case SourceUser, SourceCalendar, SourceSystem, SourceFeedback:
	default:
		return fmt.Errorf("unknown source %q", r.Source)
	}
	switch r.Scope {
	case ScopeSession, ScopeProfile, ScopeDatespan:
	default:
		return fmt.Errorf("unknown scope %q", r.Scope)
	}
	for _, d := range r.DaysOfWeek {
		if _, ok := weekdayOrder[Weekday(strings.ToUpper(string(d)))]; !ok {
			return fmt.Errorf("unknown day of week %q", d)
		}
	}
	return nil
}

// ActiveOn reports whether the record's date window covers the given
// local ISO date. Open sides are permitted.
func (r *Record) ActiveOn(asOf string) bool {
	if asOf == "" {
		return true
	}
	if r.StartDate != "" && asOf < r.StartDate {
		return false
	}
	if r.EndDate != "" && asOf > r.EndDate {
		return false
	}
	return true
}

// statusRank orders statuses for canonical-record selection:
// locked > proposed > declined.
func statusRank(s Status) int {
	switch s {
	case StatusLocked:
		return 2
	case StatusProposed:
		return 1
	default:
		return 0
	}
}

// unionStrings merges b into a as a set, preserving a's order first.
func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func sortedDays(days []Weekday) []Weekday {
	out := make([]Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, Weekday(strings.ToUpper(string(d))))
	}
	sort.Slice(out, func(i, j int) bool {
		return weekdayOrder[out[i]] < weekdayOrder[out[j]]
	})
	return out
}
