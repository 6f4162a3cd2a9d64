// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hugocool/fateforger/ent/constraintrecord"
	"github.com/hugocool/fateforger/ent/predicate"
)

// ConstraintRecordDelete is the builder for deleting a ConstraintRecord entity.
type ConstraintRecordDelete struct {
	config
	hooks    []Hook
	mutation *ConstraintRecordMutation
}

// Where appends a list predicates to the ConstraintRecordDelete builder.
func (_d *ConstraintRecordDelete) Where(ps ...predicate.ConstraintRecord) *ConstraintRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConstraintRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConstraintRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConstraintRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(constraintrecord.Table, sqlgraph.NewFieldSpec(constraintrecord.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ConstraintRecordDeleteOne is the builder for deleting a single ConstraintRecord entity.
type ConstraintRecordDeleteOne struct {
	_d *ConstraintRecordDelete
}

// Where appends a list predicates to the ConstraintRecordDelete builder.
func (_d *ConstraintRecordDeleteOne) Where(ps ...predicate.ConstraintRecord) *ConstraintRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConstraintRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{constraintrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConstraintRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
