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
	"github.com/hugocool/fateforger/ent/predicate"
	"github.com/hugocool/fateforger/ent/syncrecord"
)

// SyncRecordUpdate is the builder for updating SyncRecord entities.
type SyncRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SyncRecordMutation
}

// Where appends a list predicates to the SyncRecordUpdate builder.
func (_u *SyncRecordUpdate) Where(ps ...predicate.SyncRecord) *SyncRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *SyncRecordUpdate) SetSessionKey(v string) *SyncRecordUpdate {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *SyncRecordUpdate) SetNillableSessionKey(v *string) *SyncRecordUpdate {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetCalendarID sets the "calendar_id" field.
func (_u *SyncRecordUpdate) SetCalendarID(v string) *SyncRecordUpdate {
	_u.mutation.SetCalendarID(v)
	return _u
}

// SetNillableCalendarID sets the "calendar_id" field if the given value is not nil.
func (_u *SyncRecordUpdate) SetNillableCalendarID(v *string) *SyncRecordUpdate {
	if v != nil {
		_u.SetCalendarID(*v)
	}
	return _u
}

// SetPlannedDate sets the "planned_date" field.
func (_u *SyncRecordUpdate) SetPlannedDate(v string) *SyncRecordUpdate {
	_u.mutation.SetPlannedDate(v)
	return _u
}

// SetNillablePlannedDate sets the "planned_date" field if the given value is not nil.
func (_u *SyncRecordUpdate) SetNillablePlannedDate(v *string) *SyncRecordUpdate {
	if v != nil {
		_u.SetPlannedDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncRecordUpdate) SetStatus(v syncrecord.Status) *SyncRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncRecordUpdate) SetNillableStatus(v *syncrecord.Status) *SyncRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOps sets the "ops" field.
func (_u *SyncRecordUpdate) SetOps(v []map[string]interface{}) *SyncRecordUpdate {
	_u.mutation.SetOps(v)
	return _u
}

// AppendOps appends value to the "ops" field.
func (_u *SyncRecordUpdate) AppendOps(v []map[string]interface{}) *SyncRecordUpdate {
	_u.mutation.AppendOps(v)
	return _u
}

// SetResults sets the "results" field.
func (_u *SyncRecordUpdate) SetResults(v []map[string]interface{}) *SyncRecordUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *SyncRecordUpdate) AppendResults(v []map[string]interface{}) *SyncRecordUpdate {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *SyncRecordUpdate) ClearResults() *SyncRecordUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SyncRecordUpdate) SetUpdatedAt(v time.Time) *SyncRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SyncRecordMutation object of the builder.
func (_u *SyncRecordUpdate) Mutation() *SyncRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SyncRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := syncrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := syncrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncrecord.Table, syncrecord.Columns, sqlgraph.NewFieldSpec(syncrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(syncrecord.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CalendarID(); ok {
		_spec.SetField(syncrecord.FieldCalendarID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlannedDate(); ok {
		_spec.SetField(syncrecord.FieldPlannedDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(syncrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Ops(); ok {
		_spec.SetField(syncrecord.FieldOps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncrecord.FieldOps, value)
		})
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(syncrecord.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncrecord.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(syncrecord.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(syncrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncRecordUpdateOne is the builder for updating a single SyncRecord entity.
type SyncRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncRecordMutation
}

// SetSessionKey sets the "session_key" field.
func (_u *SyncRecordUpdateOne) SetSessionKey(v string) *SyncRecordUpdateOne {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *SyncRecordUpdateOne) SetNillableSessionKey(v *string) *SyncRecordUpdateOne {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetCalendarID sets the "calendar_id" field.
func (_u *SyncRecordUpdateOne) SetCalendarID(v string) *SyncRecordUpdateOne {
	_u.mutation.SetCalendarID(v)
	return _u
}

// SetNillableCalendarID sets the "calendar_id" field if the given value is not nil.
func (_u *SyncRecordUpdateOne) SetNillableCalendarID(v *string) *SyncRecordUpdateOne {
	if v != nil {
		_u.SetCalendarID(*v)
	}
	return _u
}

// SetPlannedDate sets the "planned_date" field.
func (_u *SyncRecordUpdateOne) SetPlannedDate(v string) *SyncRecordUpdateOne {
	_u.mutation.SetPlannedDate(v)
	return _u
}

// SetNillablePlannedDate sets the "planned_date" field if the given value is not nil.
func (_u *SyncRecordUpdateOne) SetNillablePlannedDate(v *string) *SyncRecordUpdateOne {
	if v != nil {
		_u.SetPlannedDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncRecordUpdateOne) SetStatus(v syncrecord.Status) *SyncRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncRecordUpdateOne) SetNillableStatus(v *syncrecord.Status) *SyncRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOps sets the "ops" field.
func (_u *SyncRecordUpdateOne) SetOps(v []map[string]interface{}) *SyncRecordUpdateOne {
	_u.mutation.SetOps(v)
	return _u
}

// AppendOps appends value to the "ops" field.
func (_u *SyncRecordUpdateOne) AppendOps(v []map[string]interface{}) *SyncRecordUpdateOne {
	_u.mutation.AppendOps(v)
	return _u
}

// SetResults sets the "results" field.
func (_u *SyncRecordUpdateOne) SetResults(v []map[string]interface{}) *SyncRecordUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *SyncRecordUpdateOne) AppendResults(v []map[string]interface{}) *SyncRecordUpdateOne {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *SyncRecordUpdateOne) ClearResults() *SyncRecordUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SyncRecordUpdateOne) SetUpdatedAt(v time.Time) *SyncRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SyncRecordMutation object of the builder.
func (_u *SyncRecordUpdateOne) Mutation() *SyncRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncRecordUpdate builder.
func (_u *SyncRecordUpdateOne) Where(ps ...predicate.SyncRecord) *SyncRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncRecordUpdateOne) Select(field string, fields ...string) *SyncRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncRecord entity.
func (_u *SyncRecordUpdateOne) Save(ctx context.Context) (*SyncRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncRecordUpdateOne) SaveX(ctx context.Context) *SyncRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SyncRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := syncrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := syncrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncRecordUpdateOne) sqlSave(ctx context.Context) (_node *SyncRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncrecord.Table, syncrecord.Columns, sqlgraph.NewFieldSpec(syncrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncrecord.FieldID)
		for _, f := range fields {
			if !syncrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncrecord.FieldID {
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
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(syncrecord.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CalendarID(); ok {
		_spec.SetField(syncrecord.FieldCalendarID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlannedDate(); ok {
		_spec.SetField(syncrecord.FieldPlannedDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(syncrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Ops(); ok {
		_spec.SetField(syncrecord.FieldOps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncrecord.FieldOps, value)
		})
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(syncrecord.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncrecord.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(syncrecord.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(syncrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SyncRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
