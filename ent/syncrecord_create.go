// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hugocool/fateforger/ent/syncrecord"
)

// SyncRecordCreate is the builder for creating a SyncRecord entity.
type SyncRecordCreate struct {
	config
	mutation *SyncRecordMutation
	hooks    []Hook
}

// SetSessionKey sets the "session_key" field.
func (_c *SyncRecordCreate) SetSessionKey(v string) *SyncRecordCreate {
	_c.mutation.SetSessionKey(v)
	return _c
}

// SetCalendarID sets the "calendar_id" field.
func (_c *SyncRecordCreate) SetCalendarID(v string) *SyncRecordCreate {
	_c.mutation.SetCalendarID(v)
	return _c
}

// SetPlannedDate sets the "planned_date" field.
func (_c *SyncRecordCreate) SetPlannedDate(v string) *SyncRecordCreate {
	_c.mutation.SetPlannedDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SyncRecordCreate) SetStatus(v syncrecord.Status) *SyncRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SyncRecordCreate) SetNillableStatus(v *syncrecord.Status) *SyncRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOps sets the "ops" field.
func (_c *SyncRecordCreate) SetOps(v []map[string]interface{}) *SyncRecordCreate {
	_c.mutation.SetOps(v)
	return _c
}

// SetResults sets the "results" field.
func (_c *SyncRecordCreate) SetResults(v []map[string]interface{}) *SyncRecordCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SyncRecordCreate) SetCreatedAt(v time.Time) *SyncRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SyncRecordCreate) SetNillableCreatedAt(v *time.Time) *SyncRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SyncRecordCreate) SetUpdatedAt(v time.Time) *SyncRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SyncRecordCreate) SetNillableUpdatedAt(v *time.Time) *SyncRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SyncRecordCreate) SetID(v string) *SyncRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SyncRecordMutation object of the builder.
func (_c *SyncRecordCreate) Mutation() *SyncRecordMutation {
	return _c.mutation
}

// Save creates the SyncRecord in the database.
func (_c *SyncRecordCreate) Save(ctx context.Context) (*SyncRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncRecordCreate) SaveX(ctx context.Context) *SyncRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := syncrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := syncrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := syncrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncRecordCreate) check() error {
	if _, ok := _c.mutation.SessionKey(); !ok {
		return &ValidationError{Name: "session_key", err: errors.New(`ent: missing required field "SyncRecord.session_key"`)}
	}
	if _, ok := _c.mutation.CalendarID(); !ok {
		return &ValidationError{Name: "calendar_id", err: errors.New(`ent: missing required field "SyncRecord.calendar_id"`)}
	}
	if _, ok := _c.mutation.PlannedDate(); !ok {
		return &ValidationError{Name: "planned_date", err: errors.New(`ent: missing required field "SyncRecord.planned_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SyncRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := syncrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ops(); !ok {
		return &ValidationError{Name: "ops", err: errors.New(`ent: missing required field "SyncRecord.ops"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SyncRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SyncRecord.updated_at"`)}
	}
	return nil
}

func (_c *SyncRecordCreate) sqlSave(ctx context.Context) (*SyncRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SyncRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SyncRecordCreate) createSpec() (*SyncRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syncrecord.Table, sqlgraph.NewFieldSpec(syncrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionKey(); ok {
		_spec.SetField(syncrecord.FieldSessionKey, field.TypeString, value)
		_node.SessionKey = value
	}
	if value, ok := _c.mutation.CalendarID(); ok {
		_spec.SetField(syncrecord.FieldCalendarID, field.TypeString, value)
		_node.CalendarID = value
	}
	if value, ok := _c.mutation.PlannedDate(); ok {
		_spec.SetField(syncrecord.FieldPlannedDate, field.TypeString, value)
		_node.PlannedDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(syncrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Ops(); ok {
		_spec.SetField(syncrecord.FieldOps, field.TypeJSON, value)
		_node.Ops = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(syncrecord.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(syncrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(syncrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SyncRecordCreateBulk is the builder for creating many SyncRecord entities in bulk.
type SyncRecordCreateBulk struct {
	config
	err      error
	builders []*SyncRecordCreate
}

// Save creates the SyncRecord entities in the database.
func (_c *SyncRecordCreateBulk) Save(ctx context.Context) ([]*SyncRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SyncRecordCreateBulk) SaveX(ctx context.Context) []*SyncRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
