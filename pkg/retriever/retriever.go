// Package retriever derives the stage-specific constraint query plan
// and fetches durable constraints for a planning turn.
package retriever

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// StartupPrefetchTag marks records meant to seed the collect stage
// (sleep targets, standing work windows) before any routing exists.
const StartupPrefetchTag = "startup_prefetch"

// Defaults for the query plan.
const (
	DefaultMaxTypeIDs = 4
	DefaultQueryLimit = 25
)

// PlanningContext summarizes what the session already knows; routing
// widens with the facts on hand.
type PlanningContext struct {
	HasWorkWindow  bool
	HasImmovables  bool
	HasCommutes    bool
	HasSleepTarget bool
	HasHabits      bool
	HasBlocks      bool
}

// hasGaps reports whether the day has schedulable gaps worth guarding
// with buffers: a work window plus something already on the clock.
func (pc PlanningContext) hasGaps() bool {
	return pc.HasWorkWindow && (pc.HasImmovables || pc.HasBlocks)
}

// Retriever owns the stage-specific constraint fetch.
type Retriever struct {
	store      constraint.Store
	maxTypeIDs int
	queryLimit int
	logger     *slog.Logger
}

// New creates a retriever over a constraint store.
func New(store constraint.Store) *Retriever {
	return &Retriever{
		store:      store,
		maxTypeIDs: DefaultMaxTypeIDs,
		queryLimit: DefaultQueryLimit,
		logger:     slog.Default().With("component", "retriever"),
	}
}

// DeriveEventTypes routes a stage plus context to the event types whose
// constraints matter for it. The collect stage returns nil: routing is
// suppressed there because startup defaults would be filtered away.
func (r *Retriever) DeriveEventTypes(stage models.Stage, pc PlanningContext) []timebox.EventType {
	if stage == models.StageCollectConstraints {
		return nil
	}

	types := []timebox.EventType{timebox.EventDeepWork, timebox.EventShallowWork}

	if pc.HasImmovables {
		types = append(types, timebox.EventMeeting)
	}
	if pc.HasCommutes {
		types = append(types, timebox.EventCommute)
	}
	if pc.HasSleepTarget {
		types = append(types, timebox.EventRegen)
	}
	if pc.HasHabits {
		types = append(types, timebox.EventHabit)
	}

	if stage.SchedulingStage() {
		if pc.hasGaps() {
			types = append(types, timebox.EventBuffer, timebox.EventBackground)
		}
		types = append(types, timebox.EventPlanReview)
	}

	return types
}

// Fetch runs the full query plan: event-type routing, type selection,
// then the final filtered query. Results are deduplicated by uid.
func (r *Retriever) Fetch(ctx context.Context, stage models.Stage, plannedDate string, pc PlanningContext) ([]*constraint.Record, error) {
	if stage == models.StageCollectConstraints {
		records, err := r.store.QueryConstraints(ctx, constraint.Filters{
			ScopesAny: []constraint.Scope{constraint.ScopeProfile, constraint.ScopeDatespan},
		}, nil, []string{StartupPrefetchTag}, nil, r.queryLimit)
		if err != nil {
			return nil, fmt.Errorf("startup prefetch query: %w", err)
		}
		if len(records) > 0 {
			return dedupeByUID(records), nil
		}
		// Nothing tagged for startup; fall through to the broad query.
	}

	eventTypes := r.DeriveEventTypes(stage, pc)

	typeIDs, err := r.selectTypeIDs(ctx, stage, eventTypes)
	if err != nil {
		return nil, err
	}

	records, err := r.store.QueryConstraints(ctx, constraint.Filters{
		AsOf:          plannedDate,
		Stage:         stage,
		EventTypesAny: eventTypes,
		StatusesAny:   []constraint.Status{constraint.StatusLocked, constraint.StatusProposed},
		RequireActive: true,
	}, typeIDs, nil,
		[]constraint.SortSpec{{Field: constraint.SortByStatus, Desc: true}},
		r.queryLimit)
	if err != nil {
		return nil, fmt.Errorf("constraint query for stage %s: %w", stage, err)
	}

	r.logger.Debug("Fetched durable constraints",
		"stage", stage, "event_types", len(eventTypes),
		"type_ids", len(typeIDs), "records", len(records))
	return dedupeByUID(records), nil
}

// selectTypeIDs keeps the top-ranked type ids from the catalog.
func (r *Retriever) selectTypeIDs(ctx context.Context, stage models.Stage, eventTypes []timebox.EventType) ([]string, error) {
	types, err := r.store.QueryTypes(ctx, stage, eventTypes)
	if err != nil {
		return nil, fmt.Errorf("type catalog query for stage %s: %w", stage, err)
	}
	ids := make([]string, 0, r.maxTypeIDs)
	for _, ti := range types {
		if len(ids) >= r.maxTypeIDs {
			break
		}
		ids = append(ids, ti.TypeID)
	}
	return ids, nil
}

func dedupeByUID(records []*constraint.Record) []*constraint.Record {
	seen := make(map[string]bool, len(records))
	out := records[:0]
	for _, rec := range records {
		if rec.UID != "" && seen[rec.UID] {
			continue
		}
		seen[rec.UID] = true
		out = append(out, rec)
	}
	return out
}
