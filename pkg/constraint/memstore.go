package constraint

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// MemStore is an in-memory Store. It backs tests and deployments
// without a durable backend; semantics match EntStore.
type MemStore struct {
	mu          sync.RWMutex
	records     map[string]*Record // uid → record
	reflections []*Reflection
	now         func() time.Time
	logger      *slog.Logger
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		records: make(map[string]*Record),
		now:     time.Now,
		logger:  slog.Default().With("component", "constraint-memstore"),
	}
}

// QueryTypes returns the rule-kind catalog for a stage, ranked by
// descending active constraint count.
func (s *MemStore) QueryTypes(ctx context.Context, stage models.Stage, eventTypes []timebox.EventType) ([]TypeInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, r := range s.records {
		if r.Status == StatusDeclined {
			continue
		}
		if stage != "" && len(r.AppliesStages) > 0 && !containsStage(r.AppliesStages, stage) {
			continue
		}
		if len(eventTypes) > 0 && len(r.AppliesEventTypes) > 0 && !anyEventTypeOverlap(r.AppliesEventTypes, eventTypes) {
			continue
		}
		counts[normalizeText(r.RuleKind)]++
	}

	out := make([]TypeInfo, 0, len(counts))
	for kind, n := range counts {
		out = append(out, TypeInfo{TypeID: kind, Name: kind, RuleShape: kind, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].TypeID < out[j].TypeID
	})
	return out, nil
}

// QueryConstraints retrieves records matching the filters. Idempotent.
func (s *MemStore) QueryConstraints(ctx context.Context, filters Filters, typeIDs []string, tags []string, sortSpec []SortSpec, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	typeSet := make(map[string]bool, len(typeIDs))
	for _, id := range typeIDs {
		typeSet[normalizeText(id)] = true
	}
	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}

	out := make([]*Record, 0)
	for _, r := range s.records {
		if !matchesFilters(r, filters) {
			continue
		}
		if len(typeSet) > 0 && !typeSet[normalizeText(r.RuleKind)] {
			continue
		}
		if len(tagSet) > 0 && !anyTagMatch(r, tagSet) {
			continue
		}
		out = append(out, r.Clone())
	}

	sortRecords(out, sortSpec)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func anyTagMatch(r *Record, tagSet map[string]bool) bool {
	for _, t := range r.Tags {
		if tagSet[t] {
			return true
		}
	}
	for _, t := range r.Topics {
		if tagSet[t] {
			return true
		}
	}
	return false
}

// sortRecords applies the sort terms; ties fall back to uid so output
// order is deterministic.
func sortRecords(records []*Record, spec []SortSpec) {
	sort.SliceStable(records, func(i, j int) bool {
		for _, term := range spec {
			var cmp int
			switch term.Field {
			case SortByStatus:
				cmp = statusRank(records[i].Status) - statusRank(records[j].Status)
			case SortByUpdated:
				switch {
				case records[i].UpdatedAt.Before(records[j].UpdatedAt):
					cmp = -1
				case records[i].UpdatedAt.After(records[j].UpdatedAt):
					cmp = 1
				}
			}
			if cmp != 0 {
				if term.Desc {
					return cmp > 0
				}
				return cmp < 0
			}
		}
		return records[i].UID < records[j].UID
	})
}

// GetConstraint fetches one record; nil when absent.
func (s *MemStore) GetConstraint(ctx context.Context, uid string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[uid].Clone(), nil
}

// UpsertConstraint creates or updates by uid. Idempotent in uid:
// topics and tags merge additively, all other fields overwrite.
// Records named in supersedes_uids are archived with their end date
// closed at the new record's start date (or today).
func (s *MemStore) UpsertConstraint(ctx context.Context, record *Record, event *Event) (*Record, error) {
	if err := record.ValidateEnums(); err != nil {
		return nil, fmt.Errorf("upsert constraint: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := record.Clone()
	if rec.UID == "" {
		rec.UID = ComputeUID(rec)
	}
	now := s.now().UTC()
	if existing, ok := s.records[rec.UID]; ok {
		rec.Topics = unionStrings(existing.Topics, rec.Topics)
		rec.Tags = unionStrings(existing.Tags, rec.Tags)
		rec.CreatedAt = existing.CreatedAt
	} else {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	s.records[rec.UID] = rec

	for _, old := range rec.SupersedesUIDs {
		s.archiveLocked(old, rec.StartDate)
	}

	if event != nil {
		s.logger.Debug("constraint upserted",
			"uid", rec.UID, "session", event.SessionKey, "trigger", event.Trigger)
	}
	return rec.Clone(), nil
}

// archiveLocked marks a record declined and closes its date window.
// Caller holds s.mu.
func (s *MemStore) archiveLocked(uid, endDate string) {
	r, ok := s.records[uid]
	if !ok {
		return
	}
	r.Status = StatusDeclined
	if endDate == "" {
		endDate = s.now().UTC().Format("2006-01-02")
	}
	r.EndDate = endDate
	r.UpdatedAt = s.now().UTC()
}

// UpdateConstraint merges partial properties into an existing record.
func (s *MemStore) UpdateConstraint(ctx context.Context, uid string, patch UpdatePatch, event *Event) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[uid]
	if !ok {
		return nil, fmt.Errorf("update constraint: uid %q not found", uid)
	}
	merged := mergePatch(r, patch)
	if err := merged.ValidateEnums(); err != nil {
		return nil, fmt.Errorf("update constraint %q: %w", uid, err)
	}
	merged.UpdatedAt = s.now().UTC()
	s.records[uid] = merged
	return merged.Clone(), nil
}

// ArchiveConstraint sets status=declined. Idempotent.
func (s *MemStore) ArchiveConstraint(ctx context.Context, uid string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archiveLocked(uid, "")
	if reason != "" {
		s.logger.Debug("constraint archived", "uid", uid, "reason", reason)
	}
	return nil
}

// SupersedeConstraint archives uid and upserts the replacement.
func (s *MemStore) SupersedeConstraint(ctx context.Context, uid string, replacement *Record, event *Event) (*Record, error) {
	rec := replacement.Clone()
	rec.SupersedesUIDs = unionStrings(rec.SupersedesUIDs, []string{uid})
	return s.UpsertConstraint(ctx, rec, event)
}

// FindEquivalentConstraint returns an existing record with the same
// identity tuple, if any.
func (s *MemStore) FindEquivalentConstraint(ctx context.Context, record *Record) (*Record, error) {
	key := IdentityOf(record).Key()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if IdentityOf(r).Key() == key {
			return r.Clone(), nil
		}
	}
	return nil, nil
}

// DedupeConstraints groups records by identity tuple, keeps the
// canonical one per group, and archives the rest.
func (s *MemStore) DedupeConstraints(ctx context.Context, limit int, dryRun bool) (*DedupeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make(map[string][]*Record)
	for _, r := range s.records {
		key := IdentityOf(r).Key()
		groups[key] = append(groups[key], r)
	}

	result := &DedupeResult{}
	processed := 0
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		if limit > 0 && processed >= limit {
			break
		}
		processed++
		result.Groups++

		keep := canonicalOf(group)
		result.Kept++
		changed := false
		for _, r := range group {
			if r.UID == keep.UID {
				continue
			}
			result.Archived++
			if dryRun {
				continue
			}
			if r.Status != StatusDeclined {
				s.archiveLocked(r.UID, "")
				changed = true
			}
			merged := unionStrings(keep.SupersedesUIDs, []string{r.UID})
			if len(merged) != len(keep.SupersedesUIDs) {
				keep.SupersedesUIDs = merged
				changed = true
			}
		}
		// A second pass over an already-deduped store must not mutate.
		if changed {
			keep.UpdatedAt = s.now().UTC()
		}
	}
	return result, nil
}

// AddReflection appends to the reflection log. Best-effort by
// contract; the in-memory form never fails.
func (s *MemStore) AddReflection(ctx context.Context, r *Reflection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reflections = append(s.reflections, r)
	return nil
}

// Reflections returns a snapshot of the reflection log (test helper).
func (s *MemStore) Reflections() []*Reflection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Reflection(nil), s.reflections...)
}

// mergePatch produces the merged record without mutating the input.
func mergePatch(r *Record, patch UpdatePatch) *Record {
	out := r.Clone()
	if patch.Description != nil {
		out.Description = *patch.Description
	}
	if patch.Necessity != nil {
		out.Necessity = *patch.Necessity
	}
	if patch.Status != nil {
		out.Status = *patch.Status
	}
	if patch.Confidence != nil {
		out.Confidence = *patch.Confidence
	}
	if patch.StartDate != nil {
		out.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		out.EndDate = *patch.EndDate
	}
	if patch.TTLDays != nil {
		out.TTLDays = *patch.TTLDays
	}
	out.Topics = unionStrings(out.Topics, patch.Topics)
	out.Tags = unionStrings(out.Tags, patch.Tags)
	return out
}
