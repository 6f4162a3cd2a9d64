package constraint

import (
	"context"
	"strings"

	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// TypeInfo is one entry of the ranked constraint type catalog.
type TypeInfo struct {
	TypeID    string `json:"type_id"`
	Name      string `json:"name"`
	RuleShape string `json:"rule_shape"`
	Count     int    `json:"count"` // active constraints of this type
}

// Filters narrow a constraint query.
type Filters struct {
	AsOf           string              // local ISO date; active-window check
	Stage          models.Stage        // match records routed to this stage (or unrouted)
	EventTypesAny  []timebox.EventType // any-overlap with applies_event_types
	StatusesAny    []Status
	ScopesAny      []Scope
	NecessitiesAny []Necessity
	TextQuery      string // substring over name+description
	RequireActive  bool
}

// SortField orders query results.
type SortField string

const (
	SortByStatus  SortField = "status"
	SortByUpdated SortField = "updated_at"
)

// SortSpec is one (field, descending) ordering term.
type SortSpec struct {
	Field SortField
	Desc  bool
}

// UpdatePatch merges partial properties into a record. Nil fields are
// left unchanged; Topics and Tags are additive set unions.
type UpdatePatch struct {
	Description *string
	Necessity   *Necessity
	Status      *Status
	Confidence  *float64
	StartDate   *string
	EndDate     *string
	TTLDays     *int
	Topics      []string
	Tags        []string
}

// DedupeResult reports what a dedupe pass did (or would do).
type DedupeResult struct {
	Groups   int `json:"groups"`   // identity groups with >1 record
	Archived int `json:"archived"` // non-canonical records archived
	Kept     int `json:"kept"`     // canonical records retained
}

// Reflection is one durable reflection log entry; delivery is
// best-effort.
type Reflection struct {
	SessionKey string         `json:"session_key,omitempty"`
	Stage      models.Stage   `json:"stage,omitempty"`
	Kind       string         `json:"kind"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// Event annotates a mutation with its trigger for audit purposes.
type Event struct {
	SessionKey string
	Trigger    string
}

// Store is the backend-agnostic durable constraint facade. All
// operations are safe for concurrent use; uid-keyed upserts are
// idempotent.
type Store interface {
	// QueryTypes returns the constraint type catalog for a stage,
	// sorted by descending active constraint count.
	QueryTypes(ctx context.Context, stage models.Stage, eventTypes []timebox.EventType) ([]TypeInfo, error)

	// QueryConstraints retrieves records matching the filters.
	QueryConstraints(ctx context.Context, filters Filters, typeIDs []string, tags []string, sort []SortSpec, limit int) ([]*Record, error)

	// GetConstraint fetches a single record; nil when absent.
	GetConstraint(ctx context.Context, uid string) (*Record, error)

	// UpsertConstraint creates or updates by uid (computed when empty).
	// Topics/tags merge additively; other fields overwrite. Records
	// named in supersedes_uids are archived.
	UpsertConstraint(ctx context.Context, record *Record, event *Event) (*Record, error)

	// UpdateConstraint merges partial properties into an existing record.
	UpdateConstraint(ctx context.Context, uid string, patch UpdatePatch, event *Event) (*Record, error)

	// ArchiveConstraint sets status=declined. Idempotent.
	ArchiveConstraint(ctx context.Context, uid string, reason string) error

	// SupersedeConstraint archives uid and upserts the replacement as
	// an atomic pair.
	SupersedeConstraint(ctx context.Context, uid string, replacement *Record, event *Event) (*Record, error)

	// FindEquivalentConstraint returns an existing record with the
	// same identity tuple, if any.
	FindEquivalentConstraint(ctx context.Context, record *Record) (*Record, error)

	// DedupeConstraints groups records by identity tuple, keeps the
	// canonical one per group, and archives the rest (recording
	// supersession). dryRun reports without mutating.
	DedupeConstraints(ctx context.Context, limit int, dryRun bool) (*DedupeResult, error)

	// AddReflection appends to the durable reflection log.
	AddReflection(ctx context.Context, r *Reflection) error
}

// canonicalOf picks the record to keep from an identity group:
// locked > proposed > declined, tiebreak by most recent updated_at.
func canonicalOf(group []*Record) *Record {
	best := group[0]
	for _, r := range group[1:] {
		br, rr := statusRank(best.Status), statusRank(r.Status)
		if rr > br || (rr == br && r.UpdatedAt.After(best.UpdatedAt)) {
			best = r
		}
	}
	return best
}

// matchesFilters applies the in-memory filter semantics shared by the
// backends (EntStore post-filters the same way for the fields that do
// not map onto SQL predicates).
func matchesFilters(r *Record, f Filters) bool {
	if f.RequireActive && !r.ActiveOn(f.AsOf) {
		return false
	}
	if len(f.StatusesAny) > 0 && !containsStatus(f.StatusesAny, r.Status) {
		return false
	}
	if len(f.ScopesAny) > 0 && !containsScope(f.ScopesAny, r.Scope) {
		return false
	}
	if len(f.NecessitiesAny) > 0 && !containsNecessity(f.NecessitiesAny, r.Necessity) {
		return false
	}
	if f.Stage != "" && len(r.AppliesStages) > 0 && !containsStage(r.AppliesStages, f.Stage) {
		return false
	}
	if len(f.EventTypesAny) > 0 && len(r.AppliesEventTypes) > 0 && !anyEventTypeOverlap(r.AppliesEventTypes, f.EventTypesAny) {
		return false
	}
	if f.TextQuery != "" {
		q := normalizeText(f.TextQuery)
		if !containsText(r.Name, q) && !containsText(r.Description, q) {
			return false
		}
	}
	return true
}

func containsStatus(xs []Status, x Status) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsScope(xs []Scope, x Scope) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsNecessity(xs []Necessity, x Necessity) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsStage(xs []models.Stage, x models.Stage) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func anyEventTypeOverlap(a, b []timebox.EventType) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func containsText(haystack, normalizedNeedle string) bool {
	return haystack != "" && strings.Contains(normalizeText(haystack), normalizedNeedle)
}
