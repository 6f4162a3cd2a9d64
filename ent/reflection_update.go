// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hugocool/fateforger/ent/predicate"
	"github.com/hugocool/fateforger/ent/reflection"
)

// ReflectionUpdate is the builder for updating Reflection entities.
type ReflectionUpdate struct {
	config
	hooks    []Hook
	mutation *ReflectionMutation
}

// Where appends a list predicates to the ReflectionUpdate builder.
func (_u *ReflectionUpdate) Where(ps ...predicate.Reflection) *ReflectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *ReflectionUpdate) SetSessionKey(v string) *ReflectionUpdate {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *ReflectionUpdate) SetNillableSessionKey(v *string) *ReflectionUpdate {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// ClearSessionKey clears the value of the "session_key" field.
func (_u *ReflectionUpdate) ClearSessionKey() *ReflectionUpdate {
	_u.mutation.ClearSessionKey()
	return _u
}

// SetStage sets the "stage" field.
func (_u *ReflectionUpdate) SetStage(v string) *ReflectionUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ReflectionUpdate) SetNillableStage(v *string) *ReflectionUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *ReflectionUpdate) ClearStage() *ReflectionUpdate {
	_u.mutation.ClearStage()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReflectionUpdate) SetKind(v string) *ReflectionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReflectionUpdate) SetNillableKind(v *string) *ReflectionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ReflectionUpdate) SetPayload(v map[string]interface{}) *ReflectionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ReflectionUpdate) ClearPayload() *ReflectionUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the ReflectionMutation object of the builder.
func (_u *ReflectionUpdate) Mutation() *ReflectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReflectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReflectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReflectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReflectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReflectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(reflection.Table, reflection.Columns, sqlgraph.NewFieldSpec(reflection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(reflection.FieldSessionKey, field.TypeString, value)
	}
	if _u.mutation.SessionKeyCleared() {
		_spec.ClearField(reflection.FieldSessionKey, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(reflection.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(reflection.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reflection.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(reflection.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(reflection.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reflection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReflectionUpdateOne is the builder for updating a single Reflection entity.
type ReflectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReflectionMutation
}

// SetSessionKey sets the "session_key" field.
func (_u *ReflectionUpdateOne) SetSessionKey(v string) *ReflectionUpdateOne {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *ReflectionUpdateOne) SetNillableSessionKey(v *string) *ReflectionUpdateOne {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// ClearSessionKey clears the value of the "session_key" field.
func (_u *ReflectionUpdateOne) ClearSessionKey() *ReflectionUpdateOne {
	_u.mutation.ClearSessionKey()
	return _u
}

// SetStage sets the "stage" field.
func (_u *ReflectionUpdateOne) SetStage(v string) *ReflectionUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ReflectionUpdateOne) SetNillableStage(v *string) *ReflectionUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *ReflectionUpdateOne) ClearStage() *ReflectionUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReflectionUpdateOne) SetKind(v string) *ReflectionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReflectionUpdateOne) SetNillableKind(v *string) *ReflectionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ReflectionUpdateOne) SetPayload(v map[string]interface{}) *ReflectionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ReflectionUpdateOne) ClearPayload() *ReflectionUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the ReflectionMutation object of the builder.
func (_u *ReflectionUpdateOne) Mutation() *ReflectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReflectionUpdate builder.
func (_u *ReflectionUpdateOne) Where(ps ...predicate.Reflection) *ReflectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReflectionUpdateOne) Select(field string, fields ...string) *ReflectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reflection entity.
func (_u *ReflectionUpdateOne) Save(ctx context.Context) (*Reflection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReflectionUpdateOne) SaveX(ctx context.Context) *Reflection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReflectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReflectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReflectionUpdateOne) sqlSave(ctx context.Context) (_node *Reflection, err error) {
	_spec := sqlgraph.NewUpdateSpec(reflection.Table, reflection.Columns, sqlgraph.NewFieldSpec(reflection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reflection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reflection.FieldID)
		for _, f := range fields {
			if !reflection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reflection.FieldID {
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
		_spec.SetField(reflection.FieldSessionKey, field.TypeString, value)
	}
	if _u.mutation.SessionKeyCleared() {
		_spec.ClearField(reflection.FieldSessionKey, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(reflection.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(reflection.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reflection.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(reflection.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(reflection.FieldPayload, field.TypeJSON)
	}
	_node = &Reflection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reflection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
