// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hugocool/fateforger/ent/constraintrecord"
	"github.com/hugocool/fateforger/ent/predicate"
)

// ConstraintRecordUpdate is the builder for updating ConstraintRecord entities.
type ConstraintRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ConstraintRecordMutation
}

// Where appends a list predicates to the ConstraintRecordUpdate builder.
func (_u *ConstraintRecordUpdate) Where(ps ...predicate.ConstraintRecord) *ConstraintRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ConstraintRecordUpdate) SetName(v string) *ConstraintRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableName(v *string) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ConstraintRecordUpdate) SetDescription(v string) *ConstraintRecordUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableDescription(v *string) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ConstraintRecordUpdate) ClearDescription() *ConstraintRecordUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetNecessity sets the "necessity" field.
func (_u *ConstraintRecordUpdate) SetNecessity(v constraintrecord.Necessity) *ConstraintRecordUpdate {
	_u.mutation.SetNecessity(v)
	return _u
}

// SetNillableNecessity sets the "necessity" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableNecessity(v *constraintrecord.Necessity) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetNecessity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConstraintRecordUpdate) SetStatus(v constraintrecord.Status) *ConstraintRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableStatus(v *constraintrecord.Status) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ConstraintRecordUpdate) SetSource(v constraintrecord.Source) *ConstraintRecordUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableSource(v *constraintrecord.Source) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ConstraintRecordUpdate) SetConfidence(v float64) *ConstraintRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableConfidence(v *float64) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ConstraintRecordUpdate) AddConfidence(v float64) *ConstraintRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetScope sets the "scope" field.
func (_u *ConstraintRecordUpdate) SetScope(v constraintrecord.Scope) *ConstraintRecordUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableScope(v *constraintrecord.Scope) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ConstraintRecordUpdate) SetStartDate(v string) *ConstraintRecordUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableStartDate(v *string) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ConstraintRecordUpdate) ClearStartDate() *ConstraintRecordUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ConstraintRecordUpdate) SetEndDate(v string) *ConstraintRecordUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableEndDate(v *string) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ConstraintRecordUpdate) ClearEndDate() *ConstraintRecordUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_u *ConstraintRecordUpdate) SetDaysOfWeek(v []string) *ConstraintRecordUpdate {
	_u.mutation.SetDaysOfWeek(v)
	return _u
}

// AppendDaysOfWeek appends value to the "days_of_week" field.
func (_u *ConstraintRecordUpdate) AppendDaysOfWeek(v []string) *ConstraintRecordUpdate {
	_u.mutation.AppendDaysOfWeek(v)
	return _u
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (_u *ConstraintRecordUpdate) ClearDaysOfWeek() *ConstraintRecordUpdate {
	_u.mutation.ClearDaysOfWeek()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ConstraintRecordUpdate) SetTimezone(v string) *ConstraintRecordUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableTimezone(v *string) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *ConstraintRecordUpdate) ClearTimezone() *ConstraintRecordUpdate {
	_u.mutation.ClearTimezone()
	return _u
}

// SetRecurrence sets the "recurrence" field.
func (_u *ConstraintRecordUpdate) SetRecurrence(v string) *ConstraintRecordUpdate {
	_u.mutation.SetRecurrence(v)
	return _u
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableRecurrence(v *string) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetRecurrence(*v)
	}
	return _u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (_u *ConstraintRecordUpdate) ClearRecurrence() *ConstraintRecordUpdate {
	_u.mutation.ClearRecurrence()
	return _u
}

// SetTTLDays sets the "ttl_days" field.
func (_u *ConstraintRecordUpdate) SetTTLDays(v int) *ConstraintRecordUpdate {
	_u.mutation.ResetTTLDays()
	_u.mutation.SetTTLDays(v)
	return _u
}

// SetNillableTTLDays sets the "ttl_days" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableTTLDays(v *int) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetTTLDays(*v)
	}
	return _u
}

// AddTTLDays adds value to the "ttl_days" field.
func (_u *ConstraintRecordUpdate) AddTTLDays(v int) *ConstraintRecordUpdate {
	_u.mutation.AddTTLDays(v)
	return _u
}

// ClearTTLDays clears the value of the "ttl_days" field.
func (_u *ConstraintRecordUpdate) ClearTTLDays() *ConstraintRecordUpdate {
	_u.mutation.ClearTTLDays()
	return _u
}

// SetAppliesStages sets the "applies_stages" field.
func (_u *ConstraintRecordUpdate) SetAppliesStages(v []string) *ConstraintRecordUpdate {
	_u.mutation.SetAppliesStages(v)
	return _u
}

// AppendAppliesStages appends value to the "applies_stages" field.
func (_u *ConstraintRecordUpdate) AppendAppliesStages(v []string) *ConstraintRecordUpdate {
	_u.mutation.AppendAppliesStages(v)
	return _u
}

// ClearAppliesStages clears the value of the "applies_stages" field.
func (_u *ConstraintRecordUpdate) ClearAppliesStages() *ConstraintRecordUpdate {
	_u.mutation.ClearAppliesStages()
	return _u
}

// SetAppliesEventTypes sets the "applies_event_types" field.
func (_u *ConstraintRecordUpdate) SetAppliesEventTypes(v []string) *ConstraintRecordUpdate {
	_u.mutation.SetAppliesEventTypes(v)
	return _u
}

// AppendAppliesEventTypes appends value to the "applies_event_types" field.
func (_u *ConstraintRecordUpdate) AppendAppliesEventTypes(v []string) *ConstraintRecordUpdate {
	_u.mutation.AppendAppliesEventTypes(v)
	return _u
}

// ClearAppliesEventTypes clears the value of the "applies_event_types" field.
func (_u *ConstraintRecordUpdate) ClearAppliesEventTypes() *ConstraintRecordUpdate {
	_u.mutation.ClearAppliesEventTypes()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *ConstraintRecordUpdate) SetTopics(v []string) *ConstraintRecordUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *ConstraintRecordUpdate) AppendTopics(v []string) *ConstraintRecordUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *ConstraintRecordUpdate) ClearTopics() *ConstraintRecordUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ConstraintRecordUpdate) SetTags(v []string) *ConstraintRecordUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ConstraintRecordUpdate) AppendTags(v []string) *ConstraintRecordUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ConstraintRecordUpdate) ClearTags() *ConstraintRecordUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetRuleKind sets the "rule_kind" field.
func (_u *ConstraintRecordUpdate) SetRuleKind(v string) *ConstraintRecordUpdate {
	_u.mutation.SetRuleKind(v)
	return _u
}

// SetNillableRuleKind sets the "rule_kind" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableRuleKind(v *string) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetRuleKind(*v)
	}
	return _u
}

// SetScalarParams sets the "scalar_params" field.
func (_u *ConstraintRecordUpdate) SetScalarParams(v map[string]float64) *ConstraintRecordUpdate {
	_u.mutation.SetScalarParams(v)
	return _u
}

// ClearScalarParams clears the value of the "scalar_params" field.
func (_u *ConstraintRecordUpdate) ClearScalarParams() *ConstraintRecordUpdate {
	_u.mutation.ClearScalarParams()
	return _u
}

// SetWindows sets the "windows" field.
func (_u *ConstraintRecordUpdate) SetWindows(v []map[string]string) *ConstraintRecordUpdate {
	_u.mutation.SetWindows(v)
	return _u
}

// AppendWindows appends value to the "windows" field.
func (_u *ConstraintRecordUpdate) AppendWindows(v []map[string]string) *ConstraintRecordUpdate {
	_u.mutation.AppendWindows(v)
	return _u
}

// ClearWindows clears the value of the "windows" field.
func (_u *ConstraintRecordUpdate) ClearWindows() *ConstraintRecordUpdate {
	_u.mutation.ClearWindows()
	return _u
}

// SetSupersedesUids sets the "supersedes_uids" field.
func (_u *ConstraintRecordUpdate) SetSupersedesUids(v []string) *ConstraintRecordUpdate {
	_u.mutation.SetSupersedesUids(v)
	return _u
}

// AppendSupersedesUids appends value to the "supersedes_uids" field.
func (_u *ConstraintRecordUpdate) AppendSupersedesUids(v []string) *ConstraintRecordUpdate {
	_u.mutation.AppendSupersedesUids(v)
	return _u
}

// ClearSupersedesUids clears the value of the "supersedes_uids" field.
func (_u *ConstraintRecordUpdate) ClearSupersedesUids() *ConstraintRecordUpdate {
	_u.mutation.ClearSupersedesUids()
	return _u
}

// SetIdentityKey sets the "identity_key" field.
func (_u *ConstraintRecordUpdate) SetIdentityKey(v string) *ConstraintRecordUpdate {
	_u.mutation.SetIdentityKey(v)
	return _u
}

// SetNillableIdentityKey sets the "identity_key" field if the given value is not nil.
func (_u *ConstraintRecordUpdate) SetNillableIdentityKey(v *string) *ConstraintRecordUpdate {
	if v != nil {
		_u.SetIdentityKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConstraintRecordUpdate) SetUpdatedAt(v time.Time) *ConstraintRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConstraintRecordMutation object of the builder.
func (_u *ConstraintRecordUpdate) Mutation() *ConstraintRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConstraintRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConstraintRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConstraintRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConstraintRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConstraintRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := constraintrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConstraintRecordUpdate) check() error {
	if v, ok := _u.mutation.Necessity(); ok {
		if err := constraintrecord.NecessityValidator(v); err != nil {
			return &ValidationError{Name: "necessity", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.necessity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := constraintrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := constraintrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := constraintrecord.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *ConstraintRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(constraintrecord.Table, constraintrecord.Columns, sqlgraph.NewFieldSpec(constraintrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(constraintrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(constraintrecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(constraintrecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Necessity(); ok {
		_spec.SetField(constraintrecord.FieldNecessity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(constraintrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(constraintrecord.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(constraintrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(constraintrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(constraintrecord.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(constraintrecord.FieldStartDate, field.TypeString, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(constraintrecord.FieldStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(constraintrecord.FieldEndDate, field.TypeString, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(constraintrecord.FieldEndDate, field.TypeString)
	}
	if value, ok := _u.mutation.DaysOfWeek(); ok {
		_spec.SetField(constraintrecord.FieldDaysOfWeek, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDaysOfWeek(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldDaysOfWeek, value)
		})
	}
	if _u.mutation.DaysOfWeekCleared() {
		_spec.ClearField(constraintrecord.FieldDaysOfWeek, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(constraintrecord.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(constraintrecord.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.Recurrence(); ok {
		_spec.SetField(constraintrecord.FieldRecurrence, field.TypeString, value)
	}
	if _u.mutation.RecurrenceCleared() {
		_spec.ClearField(constraintrecord.FieldRecurrence, field.TypeString)
	}
	if value, ok := _u.mutation.TTLDays(); ok {
		_spec.SetField(constraintrecord.FieldTTLDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTTLDays(); ok {
		_spec.AddField(constraintrecord.FieldTTLDays, field.TypeInt, value)
	}
	if _u.mutation.TTLDaysCleared() {
		_spec.ClearField(constraintrecord.FieldTTLDays, field.TypeInt)
	}
	if value, ok := _u.mutation.AppliesStages(); ok {
		_spec.SetField(constraintrecord.FieldAppliesStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppliesStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldAppliesStages, value)
		})
	}
	if _u.mutation.AppliesStagesCleared() {
		_spec.ClearField(constraintrecord.FieldAppliesStages, field.TypeJSON)
	}
	if value, ok := _u.mutation.AppliesEventTypes(); ok {
		_spec.SetField(constraintrecord.FieldAppliesEventTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppliesEventTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldAppliesEventTypes, value)
		})
	}
	if _u.mutation.AppliesEventTypesCleared() {
		_spec.ClearField(constraintrecord.FieldAppliesEventTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(constraintrecord.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(constraintrecord.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(constraintrecord.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(constraintrecord.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.RuleKind(); ok {
		_spec.SetField(constraintrecord.FieldRuleKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScalarParams(); ok {
		_spec.SetField(constraintrecord.FieldScalarParams, field.TypeJSON, value)
	}
	if _u.mutation.ScalarParamsCleared() {
		_spec.ClearField(constraintrecord.FieldScalarParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Windows(); ok {
		_spec.SetField(constraintrecord.FieldWindows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWindows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldWindows, value)
		})
	}
	if _u.mutation.WindowsCleared() {
		_spec.ClearField(constraintrecord.FieldWindows, field.TypeJSON)
	}
	if value, ok := _u.mutation.SupersedesUids(); ok {
		_spec.SetField(constraintrecord.FieldSupersedesUids, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupersedesUids(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldSupersedesUids, value)
		})
	}
	if _u.mutation.SupersedesUidsCleared() {
		_spec.ClearField(constraintrecord.FieldSupersedesUids, field.TypeJSON)
	}
	if value, ok := _u.mutation.IdentityKey(); ok {
		_spec.SetField(constraintrecord.FieldIdentityKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(constraintrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{constraintrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConstraintRecordUpdateOne is the builder for updating a single ConstraintRecord entity.
type ConstraintRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConstraintRecordMutation
}

// SetName sets the "name" field.
func (_u *ConstraintRecordUpdateOne) SetName(v string) *ConstraintRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableName(v *string) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ConstraintRecordUpdateOne) SetDescription(v string) *ConstraintRecordUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableDescription(v *string) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ConstraintRecordUpdateOne) ClearDescription() *ConstraintRecordUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetNecessity sets the "necessity" field.
func (_u *ConstraintRecordUpdateOne) SetNecessity(v constraintrecord.Necessity) *ConstraintRecordUpdateOne {
	_u.mutation.SetNecessity(v)
	return _u
}

// SetNillableNecessity sets the "necessity" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableNecessity(v *constraintrecord.Necessity) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetNecessity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConstraintRecordUpdateOne) SetStatus(v constraintrecord.Status) *ConstraintRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableStatus(v *constraintrecord.Status) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ConstraintRecordUpdateOne) SetSource(v constraintrecord.Source) *ConstraintRecordUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableSource(v *constraintrecord.Source) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ConstraintRecordUpdateOne) SetConfidence(v float64) *ConstraintRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableConfidence(v *float64) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ConstraintRecordUpdateOne) AddConfidence(v float64) *ConstraintRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetScope sets the "scope" field.
func (_u *ConstraintRecordUpdateOne) SetScope(v constraintrecord.Scope) *ConstraintRecordUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableScope(v *constraintrecord.Scope) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ConstraintRecordUpdateOne) SetStartDate(v string) *ConstraintRecordUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableStartDate(v *string) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ConstraintRecordUpdateOne) ClearStartDate() *ConstraintRecordUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ConstraintRecordUpdateOne) SetEndDate(v string) *ConstraintRecordUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableEndDate(v *string) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ConstraintRecordUpdateOne) ClearEndDate() *ConstraintRecordUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_u *ConstraintRecordUpdateOne) SetDaysOfWeek(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.SetDaysOfWeek(v)
	return _u
}

// AppendDaysOfWeek appends value to the "days_of_week" field.
func (_u *ConstraintRecordUpdateOne) AppendDaysOfWeek(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.AppendDaysOfWeek(v)
	return _u
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (_u *ConstraintRecordUpdateOne) ClearDaysOfWeek() *ConstraintRecordUpdateOne {
	_u.mutation.ClearDaysOfWeek()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ConstraintRecordUpdateOne) SetTimezone(v string) *ConstraintRecordUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableTimezone(v *string) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *ConstraintRecordUpdateOne) ClearTimezone() *ConstraintRecordUpdateOne {
	_u.mutation.ClearTimezone()
	return _u
}

// SetRecurrence sets the "recurrence" field.
func (_u *ConstraintRecordUpdateOne) SetRecurrence(v string) *ConstraintRecordUpdateOne {
	_u.mutation.SetRecurrence(v)
	return _u
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableRecurrence(v *string) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetRecurrence(*v)
	}
	return _u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (_u *ConstraintRecordUpdateOne) ClearRecurrence() *ConstraintRecordUpdateOne {
	_u.mutation.ClearRecurrence()
	return _u
}

// SetTTLDays sets the "ttl_days" field.
func (_u *ConstraintRecordUpdateOne) SetTTLDays(v int) *ConstraintRecordUpdateOne {
	_u.mutation.ResetTTLDays()
	_u.mutation.SetTTLDays(v)
	return _u
}

// SetNillableTTLDays sets the "ttl_days" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableTTLDays(v *int) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetTTLDays(*v)
	}
	return _u
}

// AddTTLDays adds value to the "ttl_days" field.
func (_u *ConstraintRecordUpdateOne) AddTTLDays(v int) *ConstraintRecordUpdateOne {
	_u.mutation.AddTTLDays(v)
	return _u
}

// ClearTTLDays clears the value of the "ttl_days" field.
func (_u *ConstraintRecordUpdateOne) ClearTTLDays() *ConstraintRecordUpdateOne {
	_u.mutation.ClearTTLDays()
	return _u
}

// SetAppliesStages sets the "applies_stages" field.
func (_u *ConstraintRecordUpdateOne) SetAppliesStages(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.SetAppliesStages(v)
	return _u
}

// AppendAppliesStages appends value to the "applies_stages" field.
func (_u *ConstraintRecordUpdateOne) AppendAppliesStages(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.AppendAppliesStages(v)
	return _u
}

// ClearAppliesStages clears the value of the "applies_stages" field.
func (_u *ConstraintRecordUpdateOne) ClearAppliesStages() *ConstraintRecordUpdateOne {
	_u.mutation.ClearAppliesStages()
	return _u
}

// SetAppliesEventTypes sets the "applies_event_types" field.
func (_u *ConstraintRecordUpdateOne) SetAppliesEventTypes(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.SetAppliesEventTypes(v)
	return _u
}

// AppendAppliesEventTypes appends value to the "applies_event_types" field.
func (_u *ConstraintRecordUpdateOne) AppendAppliesEventTypes(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.AppendAppliesEventTypes(v)
	return _u
}

// ClearAppliesEventTypes clears the value of the "applies_event_types" field.
func (_u *ConstraintRecordUpdateOne) ClearAppliesEventTypes() *ConstraintRecordUpdateOne {
	_u.mutation.ClearAppliesEventTypes()
	return _u
}

// SetTopics sets the "topics" field.
func (_u *ConstraintRecordUpdateOne) SetTopics(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *ConstraintRecordUpdateOne) AppendTopics(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *ConstraintRecordUpdateOne) ClearTopics() *ConstraintRecordUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ConstraintRecordUpdateOne) SetTags(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ConstraintRecordUpdateOne) AppendTags(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ConstraintRecordUpdateOne) ClearTags() *ConstraintRecordUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetRuleKind sets the "rule_kind" field.
func (_u *ConstraintRecordUpdateOne) SetRuleKind(v string) *ConstraintRecordUpdateOne {
	_u.mutation.SetRuleKind(v)
	return _u
}

// SetNillableRuleKind sets the "rule_kind" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableRuleKind(v *string) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetRuleKind(*v)
	}
	return _u
}

// SetScalarParams sets the "scalar_params" field.
func (_u *ConstraintRecordUpdateOne) SetScalarParams(v map[string]float64) *ConstraintRecordUpdateOne {
	_u.mutation.SetScalarParams(v)
	return _u
}

// ClearScalarParams clears the value of the "scalar_params" field.
func (_u *ConstraintRecordUpdateOne) ClearScalarParams() *ConstraintRecordUpdateOne {
	_u.mutation.ClearScalarParams()
	return _u
}

// SetWindows sets the "windows" field.
func (_u *ConstraintRecordUpdateOne) SetWindows(v []map[string]string) *ConstraintRecordUpdateOne {
	_u.mutation.SetWindows(v)
	return _u
}

// AppendWindows appends value to the "windows" field.
func (_u *ConstraintRecordUpdateOne) AppendWindows(v []map[string]string) *ConstraintRecordUpdateOne {
	_u.mutation.AppendWindows(v)
	return _u
}

// ClearWindows clears the value of the "windows" field.
func (_u *ConstraintRecordUpdateOne) ClearWindows() *ConstraintRecordUpdateOne {
	_u.mutation.ClearWindows()
	return _u
}

// SetSupersedesUids sets the "supersedes_uids" field.
func (_u *ConstraintRecordUpdateOne) SetSupersedesUids(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.SetSupersedesUids(v)
	return _u
}

// AppendSupersedesUids appends value to the "supersedes_uids" field.
func (_u *ConstraintRecordUpdateOne) AppendSupersedesUids(v []string) *ConstraintRecordUpdateOne {
	_u.mutation.AppendSupersedesUids(v)
	return _u
}

// ClearSupersedesUids clears the value of the "supersedes_uids" field.
func (_u *ConstraintRecordUpdateOne) ClearSupersedesUids() *ConstraintRecordUpdateOne {
	_u.mutation.ClearSupersedesUids()
	return _u
}

// SetIdentityKey sets the "identity_key" field.
func (_u *ConstraintRecordUpdateOne) SetIdentityKey(v string) *ConstraintRecordUpdateOne {
	_u.mutation.SetIdentityKey(v)
	return _u
}

// SetNillableIdentityKey sets the "identity_key" field if the given value is not nil.
func (_u *ConstraintRecordUpdateOne) SetNillableIdentityKey(v *string) *ConstraintRecordUpdateOne {
	if v != nil {
		_u.SetIdentityKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConstraintRecordUpdateOne) SetUpdatedAt(v time.Time) *ConstraintRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConstraintRecordMutation object of the builder.
func (_u *ConstraintRecordUpdateOne) Mutation() *ConstraintRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConstraintRecordUpdate builder.
func (_u *ConstraintRecordUpdateOne) Where(ps ...predicate.ConstraintRecord) *ConstraintRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConstraintRecordUpdateOne) Select(field string, fields ...string) *ConstraintRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConstraintRecord entity.
func (_u *ConstraintRecordUpdateOne) Save(ctx context.Context) (*ConstraintRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConstraintRecordUpdateOne) SaveX(ctx context.Context) *ConstraintRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConstraintRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConstraintRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConstraintRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := constraintrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConstraintRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Necessity(); ok {
		if err := constraintrecord.NecessityValidator(v); err != nil {
			return &ValidationError{Name: "necessity", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.necessity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := constraintrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := constraintrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := constraintrecord.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *ConstraintRecordUpdateOne) sqlSave(ctx context.Context) (_node *ConstraintRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(constraintrecord.Table, constraintrecord.Columns, sqlgraph.NewFieldSpec(constraintrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConstraintRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, constraintrecord.FieldID)
		for _, f := range fields {
			if !constraintrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != constraintrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(constraintrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(constraintrecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(constraintrecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Necessity(); ok {
		_spec.SetField(constraintrecord.FieldNecessity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(constraintrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(constraintrecord.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(constraintrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(constraintrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(constraintrecord.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(constraintrecord.FieldStartDate, field.TypeString, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(constraintrecord.FieldStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(constraintrecord.FieldEndDate, field.TypeString, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(constraintrecord.FieldEndDate, field.TypeString)
	}
	if value, ok := _u.mutation.DaysOfWeek(); ok {
		_spec.SetField(constraintrecord.FieldDaysOfWeek, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDaysOfWeek(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldDaysOfWeek, value)
		})
	}
	if _u.mutation.DaysOfWeekCleared() {
		_spec.ClearField(constraintrecord.FieldDaysOfWeek, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(constraintrecord.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(constraintrecord.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.Recurrence(); ok {
		_spec.SetField(constraintrecord.FieldRecurrence, field.TypeString, value)
	}
	if _u.mutation.RecurrenceCleared() {
		_spec.ClearField(constraintrecord.FieldRecurrence, field.TypeString)
	}
	if value, ok := _u.mutation.TTLDays(); ok {
		_spec.SetField(constraintrecord.FieldTTLDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTTLDays(); ok {
		_spec.AddField(constraintrecord.FieldTTLDays, field.TypeInt, value)
	}
	if _u.mutation.TTLDaysCleared() {
		_spec.ClearField(constraintrecord.FieldTTLDays, field.TypeInt)
	}
	if value, ok := _u.mutation.AppliesStages(); ok {
		_spec.SetField(constraintrecord.FieldAppliesStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppliesStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldAppliesStages, value)
		})
	}
	if _u.mutation.AppliesStagesCleared() {
		_spec.ClearField(constraintrecord.FieldAppliesStages, field.TypeJSON)
	}
	if value, ok := _u.mutation.AppliesEventTypes(); ok {
		_spec.SetField(constraintrecord.FieldAppliesEventTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppliesEventTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldAppliesEventTypes, value)
		})
	}
	if _u.mutation.AppliesEventTypesCleared() {
		_spec.ClearField(constraintrecord.FieldAppliesEventTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(constraintrecord.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(constraintrecord.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(constraintrecord.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(constraintrecord.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.RuleKind(); ok {
		_spec.SetField(constraintrecord.FieldRuleKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScalarParams(); ok {
		_spec.SetField(constraintrecord.FieldScalarParams, field.TypeJSON, value)
	}
	if _u.mutation.ScalarParamsCleared() {
		_spec.ClearField(constraintrecord.FieldScalarParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Windows(); ok {
		_spec.SetField(constraintrecord.FieldWindows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWindows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldWindows, value)
		})
	}
	if _u.mutation.WindowsCleared() {
		_spec.ClearField(constraintrecord.FieldWindows, field.TypeJSON)
	}
	if value, ok := _u.mutation.SupersedesUids(); ok {
		_spec.SetField(constraintrecord.FieldSupersedesUids, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupersedesUids(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, constraintrecord.FieldSupersedesUids, value)
		})
	}
	if _u.mutation.SupersedesUidsCleared() {
		_spec.ClearField(constraintrecord.FieldSupersedesUids, field.TypeJSON)
	}
	if value, ok := _u.mutation.IdentityKey(); ok {
		_spec.SetField(constraintrecord.FieldIdentityKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(constraintrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConstraintRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{constraintrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
