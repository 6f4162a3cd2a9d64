// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hugocool/fateforger/ent/reflection"
)

// ReflectionCreate is the builder for creating a Reflection entity.
type ReflectionCreate struct {
	config
	mutation *ReflectionMutation
	hooks    []Hook
}

// SetSessionKey sets the "session_key" field.
func (_c *ReflectionCreate) SetSessionKey(v string) *ReflectionCreate {
	_c.mutation.SetSessionKey(v)
	return _c
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_c *ReflectionCreate) SetNillableSessionKey(v *string) *ReflectionCreate {
	if v != nil {
		_c.SetSessionKey(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *ReflectionCreate) SetStage(v string) *ReflectionCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *ReflectionCreate) SetNillableStage(v *string) *ReflectionCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *ReflectionCreate) SetKind(v string) *ReflectionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ReflectionCreate) SetPayload(v map[string]interface{}) *ReflectionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReflectionCreate) SetCreatedAt(v time.Time) *ReflectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReflectionCreate) SetNillableCreatedAt(v *time.Time) *ReflectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReflectionCreate) SetID(v string) *ReflectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReflectionMutation object of the builder.
func (_c *ReflectionCreate) Mutation() *ReflectionMutation {
	return _c.mutation
}

// Save creates the Reflection in the database.
func (_c *ReflectionCreate) Save(ctx context.Context) (*Reflection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReflectionCreate) SaveX(ctx context.Context) *Reflection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReflectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReflectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReflectionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reflection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReflectionCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Reflection.kind"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reflection.created_at"`)}
	}
	return nil
}

func (_c *ReflectionCreate) sqlSave(ctx context.Context) (*Reflection, error) {
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
			return nil, fmt.Errorf("unexpected Reflection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReflectionCreate) createSpec() (*Reflection, *sqlgraph.CreateSpec) {
	var (
		_node = &Reflection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reflection.Table, sqlgraph.NewFieldSpec(reflection.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionKey(); ok {
		_spec.SetField(reflection.FieldSessionKey, field.TypeString, value)
		_node.SessionKey = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(reflection.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(reflection.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(reflection.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reflection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ReflectionCreateBulk is the builder for creating many Reflection entities in bulk.
type ReflectionCreateBulk struct {
	config
	err      error
	builders []*ReflectionCreate
}

// Save creates the Reflection entities in the database.
func (_c *ReflectionCreateBulk) Save(ctx context.Context) ([]*Reflection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reflection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReflectionMutation)
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
func (_c *ReflectionCreateBulk) SaveX(ctx context.Context) []*Reflection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReflectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReflectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
