package constraint

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hugocool/fateforger/ent"
	"github.com/hugocool/fateforger/ent/constraintrecord"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// EntStore is the Postgres-backed Store. One logical backend per
// process; per-record correctness relies on uid-keyed idempotent
// upserts, not on store-level serialization.
type EntStore struct {
	client *ent.Client
	logger *slog.Logger
}

// NewEntStore creates a Store over an ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{
		client: client,
		logger: slog.Default().With("component", "constraint-entstore"),
	}
}

// QueryTypes returns the rule-kind catalog, ranked by descending
// active constraint count.
func (s *EntStore) QueryTypes(ctx context.Context, stage models.Stage, eventTypes []timebox.EventType) ([]TypeInfo, error) {
	rows, err := s.client.ConstraintRecord.Query().
		Where(constraintrecord.StatusNEQ(constraintrecord.StatusDeclined)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query constraint types: %w", err)
	}

	counts := make(map[string]int)
	for _, row := range rows {
		r := fromEnt(row)
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

// QueryConstraints retrieves records matching the filters. SQL narrows
// by status/scope/rule-kind; routing, activity windows, and text
// matching post-filter in memory with the shared semantics.
func (s *EntStore) QueryConstraints(ctx context.Context, filters Filters, typeIDs []string, tags []string, sortSpec []SortSpec, limit int) ([]*Record, error) {
	q := s.client.ConstraintRecord.Query()
	if len(filters.StatusesAny) > 0 {
		statuses := make([]constraintrecord.Status, 0, len(filters.StatusesAny))
		for _, st := range filters.StatusesAny {
			statuses = append(statuses, constraintrecord.Status(st))
		}
		q = q.Where(constraintrecord.StatusIn(statuses...))
	}
	if len(filters.ScopesAny) > 0 {
		scopes := make([]constraintrecord.Scope, 0, len(filters.ScopesAny))
		for _, sc := range filters.ScopesAny {
			scopes = append(scopes, constraintrecord.Scope(sc))
		}
		q = q.Where(constraintrecord.ScopeIn(scopes...))
	}
	if len(typeIDs) > 0 {
		q = q.Where(constraintrecord.RuleKindIn(typeIDs...))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query constraints: %w", err)
	}

	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}

	out := make([]*Record, 0, len(rows))
	for _, row := range rows {
		r := fromEnt(row)
		if !matchesFilters(r, filters) {
			continue
		}
		if len(tagSet) > 0 && !anyTagMatch(r, tagSet) {
			continue
		}
		out = append(out, r)
	}
	sortRecords(out, sortSpec)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetConstraint fetches one record; nil when absent.
func (s *EntStore) GetConstraint(ctx context.Context, uid string) (*Record, error) {
	row, err := s.client.ConstraintRecord.Get(ctx, uid)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get constraint %q: %w", uid, err)
	}
	return fromEnt(row), nil
}

// UpsertConstraint creates or updates by uid inside one transaction,
// archiving any superseded records.
func (s *EntStore) UpsertConstraint(ctx context.Context, record *Record, event *Event) (*Record, error) {
	if err := record.ValidateEnums(); err != nil {
		return nil, fmt.Errorf("upsert constraint: %w", err)
	}
	rec := record.Clone()
	if rec.UID == "" {
		rec.UID = ComputeUID(rec)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert constraint: begin tx: %w", err)
	}
	result, err := s.upsertInTx(ctx, tx, rec)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("upsert constraint: commit: %w", err)
	}

	if event != nil {
		s.logger.Debug("constraint upserted",
			"uid", result.UID, "session", event.SessionKey, "trigger", event.Trigger)
	}
	return result, nil
}

func (s *EntStore) upsertInTx(ctx context.Context, tx *ent.Tx, rec *Record) (*Record, error) {
	existing, err := tx.ConstraintRecord.Get(ctx, rec.UID)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("upsert constraint %q: %w", rec.UID, err)
	}

	if existing != nil {
		prev := fromEnt(existing)
		rec.Topics = unionStrings(prev.Topics, rec.Topics)
		rec.Tags = unionStrings(prev.Tags, rec.Tags)
		row, err := recordUpdater(tx, rec).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("upsert constraint %q: %w", rec.UID, err)
		}
		rec = fromEnt(row)
	} else {
		row, err := recordCreator(tx, rec).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("upsert constraint %q: %w", rec.UID, err)
		}
		rec = fromEnt(row)
	}

	for _, old := range rec.SupersedesUIDs {
		if err := archiveInTx(ctx, tx, old, rec.StartDate); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// UpdateConstraint merges partial properties into an existing record.
func (s *EntStore) UpdateConstraint(ctx context.Context, uid string, patch UpdatePatch, event *Event) (*Record, error) {
	current, err := s.GetConstraint(ctx, uid)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("update constraint: uid %q not found", uid)
	}
	merged := mergePatch(current, patch)
	if err := merged.ValidateEnums(); err != nil {
		return nil, fmt.Errorf("update constraint %q: %w", uid, err)
	}

	row, err := s.client.ConstraintRecord.UpdateOneID(uid).
		SetDescription(merged.Description).
		SetNecessity(constraintrecord.Necessity(merged.Necessity)).
		SetStatus(constraintrecord.Status(merged.Status)).
		SetConfidence(merged.Confidence).
		SetStartDate(merged.StartDate).
		SetEndDate(merged.EndDate).
		SetTTLDays(merged.TTLDays).
		SetTopics(merged.Topics).
		SetTags(merged.Tags).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update constraint %q: %w", uid, err)
	}
	return fromEnt(row), nil
}

// ArchiveConstraint sets status=declined. Idempotent.
func (s *EntStore) ArchiveConstraint(ctx context.Context, uid string, reason string) error {
	err := s.client.ConstraintRecord.UpdateOneID(uid).
		SetStatus(constraintrecord.StatusDeclined).
		SetEndDate(time.Now().UTC().Format("2006-01-02")).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("archive constraint %q: %w", uid, err)
	}
	if reason != "" {
		s.logger.Debug("constraint archived", "uid", uid, "reason", reason)
	}
	return nil
}

func archiveInTx(ctx context.Context, tx *ent.Tx, uid, endDate string) error {
	if endDate == "" {
		endDate = time.Now().UTC().Format("2006-01-02")
	}
	err := tx.ConstraintRecord.UpdateOneID(uid).
		SetStatus(constraintrecord.StatusDeclined).
		SetEndDate(endDate).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("archive superseded %q: %w", uid, err)
	}
	return nil
}

// SupersedeConstraint archives uid and upserts the replacement as one
// transaction.
func (s *EntStore) SupersedeConstraint(ctx context.Context, uid string, replacement *Record, event *Event) (*Record, error) {
	rec := replacement.Clone()
	rec.SupersedesUIDs = unionStrings(rec.SupersedesUIDs, []string{uid})
	return s.UpsertConstraint(ctx, rec, event)
}

// FindEquivalentConstraint looks up by the indexed identity key.
func (s *EntStore) FindEquivalentConstraint(ctx context.Context, record *Record) (*Record, error) {
	row, err := s.client.ConstraintRecord.Query().
		Where(constraintrecord.IdentityKeyEQ(IdentityOf(record).Key())).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find equivalent constraint: %w", err)
	}
	return fromEnt(row), nil
}

// DedupeConstraints groups rows by identity key, keeps the canonical
// record per group, and archives the rest.
func (s *EntStore) DedupeConstraints(ctx context.Context, limit int, dryRun bool) (*DedupeResult, error) {
	rows, err := s.client.ConstraintRecord.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dedupe constraints: %w", err)
	}

	groups := make(map[string][]*Record)
	for _, row := range rows {
		r := fromEnt(row)
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
		var newlySuperseded []string
		for _, r := range group {
			if r.UID == keep.UID {
				continue
			}
			result.Archived++
			if dryRun {
				continue
			}
			if r.Status != StatusDeclined {
				if err := archiveInTx0(ctx, s.client, r.UID); err != nil {
					return nil, err
				}
			}
			newlySuperseded = append(newlySuperseded, r.UID)
		}
		if dryRun {
			continue
		}
		merged := unionStrings(keep.SupersedesUIDs, newlySuperseded)
		if len(merged) != len(keep.SupersedesUIDs) {
			err := s.client.ConstraintRecord.UpdateOneID(keep.UID).
				SetSupersedesUids(merged).
				Exec(ctx)
			if err != nil {
				return nil, fmt.Errorf("dedupe constraints: record supersession on %q: %w", keep.UID, err)
			}
		}
	}
	return result, nil
}

func archiveInTx0(ctx context.Context, client *ent.Client, uid string) error {
	err := client.ConstraintRecord.UpdateOneID(uid).
		SetStatus(constraintrecord.StatusDeclined).
		SetEndDate(time.Now().UTC().Format("2006-01-02")).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("dedupe archive %q: %w", uid, err)
	}
	return nil
}

// AddReflection appends to the durable reflection log. Best-effort:
// failures are logged and swallowed.
func (s *EntStore) AddReflection(ctx context.Context, r *Reflection) error {
	err := s.client.Reflection.Create().
		SetID(uuid.New().String()).
		SetSessionKey(r.SessionKey).
		SetStage(string(r.Stage)).
		SetKind(r.Kind).
		SetPayload(r.Payload).
		Exec(ctx)
	if err != nil {
		s.logger.Warn("reflection write failed", "kind", r.Kind, "error", err)
	}
	return nil
}

// ─── ent row conversion ───

func recordCreator(tx *ent.Tx, r *Record) *ent.ConstraintRecordCreate {
	return tx.ConstraintRecord.Create().
		SetID(r.UID).
		SetName(r.Name).
		SetDescription(r.Description).
		SetNecessity(constraintrecord.Necessity(r.Necessity)).
		SetStatus(constraintrecord.Status(r.Status)).
		SetSource(constraintrecord.Source(r.Source)).
		SetConfidence(r.Confidence).
		SetScope(constraintrecord.Scope(r.Scope)).
		SetStartDate(r.StartDate).
		SetEndDate(r.EndDate).
		SetDaysOfWeek(daysToStrings(r.DaysOfWeek)).
		SetTimezone(r.Timezone).
		SetRecurrence(r.Recurrence).
		SetTTLDays(r.TTLDays).
		SetAppliesStages(stagesToStrings(r.AppliesStages)).
		SetAppliesEventTypes(eventTypesToStrings(r.AppliesEventTypes)).
		SetTopics(r.Topics).
		SetTags(r.Tags).
		SetRuleKind(r.RuleKind).
		SetScalarParams(r.ScalarParams).
		SetWindows(windowsToMaps(r.Windows)).
		SetSupersedesUids(r.SupersedesUIDs).
		SetIdentityKey(IdentityOf(r).Key())
}

func recordUpdater(tx *ent.Tx, r *Record) *ent.ConstraintRecordUpdateOne {
	return tx.ConstraintRecord.UpdateOneID(r.UID).
		SetName(r.Name).
		SetDescription(r.Description).
		SetNecessity(constraintrecord.Necessity(r.Necessity)).
		SetStatus(constraintrecord.Status(r.Status)).
		SetSource(constraintrecord.Source(r.Source)).
		SetConfidence(r.Confidence).
		SetScope(constraintrecord.Scope(r.Scope)).
		SetStartDate(r.StartDate).
		SetEndDate(r.EndDate).
		SetDaysOfWeek(daysToStrings(r.DaysOfWeek)).
		SetTimezone(r.Timezone).
		SetRecurrence(r.Recurrence).
		SetTTLDays(r.TTLDays).
		SetAppliesStages(stagesToStrings(r.AppliesStages)).
		SetAppliesEventTypes(eventTypesToStrings(r.AppliesEventTypes)).
		SetTopics(r.Topics).
		SetTags(r.Tags).
		SetRuleKind(r.RuleKind).
		SetScalarParams(r.ScalarParams).
		SetWindows(windowsToMaps(r.Windows)).
		SetSupersedesUids(r.SupersedesUIDs).
		SetIdentityKey(IdentityOf(r).Key())
}

func fromEnt(row *ent.ConstraintRecord) *Record {
	return &Record{
		UID:               row.ID,
		Name:              row.Name,
		Description:       row.Description,
		Necessity:         Necessity(row.Necessity),
		Status:            Status(row.Status),
		Source:            Source(row.Source),
		Confidence:        row.Confidence,
		Scope:             Scope(row.Scope),
		StartDate:         row.StartDate,
		EndDate:           row.EndDate,
		DaysOfWeek:        stringsToDays(row.DaysOfWeek),
		Timezone:          row.Timezone,
		Recurrence:        row.Recurrence,
		TTLDays:           row.TTLDays,
		AppliesStages:     stringsToStages(row.AppliesStages),
		AppliesEventTypes: stringsToEventTypes(row.AppliesEventTypes),
		Topics:            row.Topics,
		Tags:              row.Tags,
		RuleKind:          row.RuleKind,
		ScalarParams:      row.ScalarParams,
		Windows:           mapsToWindows(row.Windows),
		SupersedesUIDs:    row.SupersedesUids,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func daysToStrings(days []Weekday) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)
	}
	return out
}

func stringsToDays(xs []string) []Weekday {
	out := make([]Weekday, len(xs))
	for i, s := range xs {
		out[i] = Weekday(s)
	}
	return out
}

func stagesToStrings(stages []models.Stage) []string {
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = string(s)
	}
	return out
}

func stringsToStages(xs []string) []models.Stage {
	out := make([]models.Stage, len(xs))
	for i, s := range xs {
		out[i] = models.Stage(s)
	}
	return out
}

func eventTypesToStrings(types []timebox.EventType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func stringsToEventTypes(xs []string) []timebox.EventType {
	out := make([]timebox.EventType, len(xs))
	for i, s := range xs {
		out[i] = timebox.EventType(s)
	}
	return out
}

func windowsToMaps(ws []Window) []map[string]string {
	out := make([]map[string]string, len(ws))
	for i, w := range ws {
		out[i] = map[string]string{"kind": w.Kind, "start": w.Start, "end": w.End}
	}
	return out
}

func mapsToWindows(ms []map[string]string) []Window {
	out := make([]Window, len(ms))
	for i, m := range ms {
		out[i] = Window{Kind: m["kind"], Start: m["start"], End: m["end"]}
	}
	return out
}
