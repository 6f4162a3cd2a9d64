// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hugocool/fateforger/ent/constraintrecord"
)

// ConstraintRecordCreate is the builder for creating a ConstraintRecord entity.
type ConstraintRecordCreate struct {
	config
	mutation *ConstraintRecordMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ConstraintRecordCreate) SetName(v string) *ConstraintRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ConstraintRecordCreate) SetDescription(v string) *ConstraintRecordCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableDescription(v *string) *ConstraintRecordCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetNecessity sets the "necessity" field.
func (_c *ConstraintRecordCreate) SetNecessity(v constraintrecord.Necessity) *ConstraintRecordCreate {
	_c.mutation.SetNecessity(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConstraintRecordCreate) SetStatus(v constraintrecord.Status) *ConstraintRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableStatus(v *constraintrecord.Status) *ConstraintRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ConstraintRecordCreate) SetSource(v constraintrecord.Source) *ConstraintRecordCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableSource(v *constraintrecord.Source) *ConstraintRecordCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ConstraintRecordCreate) SetConfidence(v float64) *ConstraintRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableConfidence(v *float64) *ConstraintRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetScope sets the "scope" field.
func (_c *ConstraintRecordCreate) SetScope(v constraintrecord.Scope) *ConstraintRecordCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *ConstraintRecordCreate) SetStartDate(v string) *ConstraintRecordCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableStartDate(v *string) *ConstraintRecordCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *ConstraintRecordCreate) SetEndDate(v string) *ConstraintRecordCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableEndDate(v *string) *ConstraintRecordCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_c *ConstraintRecordCreate) SetDaysOfWeek(v []string) *ConstraintRecordCreate {
	_c.mutation.SetDaysOfWeek(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *ConstraintRecordCreate) SetTimezone(v string) *ConstraintRecordCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableTimezone(v *string) *ConstraintRecordCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetRecurrence sets the "recurrence" field.
func (_c *ConstraintRecordCreate) SetRecurrence(v string) *ConstraintRecordCreate {
	_c.mutation.SetRecurrence(v)
	return _c
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableRecurrence(v *string) *ConstraintRecordCreate {
	if v != nil {
		_c.SetRecurrence(*v)
	}
	return _c
}

// SetTTLDays sets the "ttl_days" field.
func (_c *ConstraintRecordCreate) SetTTLDays(v int) *ConstraintRecordCreate {
	_c.mutation.SetTTLDays(v)
	return _c
}

// SetNillableTTLDays sets the "ttl_days" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableTTLDays(v *int) *ConstraintRecordCreate {
	if v != nil {
		_c.SetTTLDays(*v)
	}
	return _c
}

// SetAppliesStages sets the "applies_stages" field.
func (_c *ConstraintRecordCreate) SetAppliesStages(v []string) *ConstraintRecordCreate {
	_c.mutation.SetAppliesStages(v)
	return _c
}

// SetAppliesEventTypes sets the "applies_event_types" field.
func (_c *ConstraintRecordCreate) SetAppliesEventTypes(v []string) *ConstraintRecordCreate {
	_c.mutation.SetAppliesEventTypes(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *ConstraintRecordCreate) SetTopics(v []string) *ConstraintRecordCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *ConstraintRecordCreate) SetTags(v []string) *ConstraintRecordCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetRuleKind sets the "rule_kind" field.
func (_c *ConstraintRecordCreate) SetRuleKind(v string) *ConstraintRecordCreate {
	_c.mutation.SetRuleKind(v)
	return _c
}

// SetScalarParams sets the "scalar_params" field.
func (_c *ConstraintRecordCreate) SetScalarParams(v map[string]float64) *ConstraintRecordCreate {
	_c.mutation.SetScalarParams(v)
	return _c
}

// SetWindows sets the "windows" field.
func (_c *ConstraintRecordCreate) SetWindows(v []map[string]string) *ConstraintRecordCreate {
	_c.mutation.SetWindows(v)
	return _c
}

// SetSupersedesUids sets the "supersedes_uids" field.
func (_c *ConstraintRecordCreate) SetSupersedesUids(v []string) *ConstraintRecordCreate {
	_c.mutation.SetSupersedesUids(v)
	return _c
}

// SetIdentityKey sets the "identity_key" field.
func (_c *ConstraintRecordCreate) SetIdentityKey(v string) *ConstraintRecordCreate {
	_c.mutation.SetIdentityKey(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConstraintRecordCreate) SetCreatedAt(v time.Time) *ConstraintRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableCreatedAt(v *time.Time) *ConstraintRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConstraintRecordCreate) SetUpdatedAt(v time.Time) *ConstraintRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConstraintRecordCreate) SetNillableUpdatedAt(v *time.Time) *ConstraintRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConstraintRecordCreate) SetID(v string) *ConstraintRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConstraintRecordMutation object of the builder.
func (_c *ConstraintRecordCreate) Mutation() *ConstraintRecordMutation {
	return _c.mutation
}

// Save creates the ConstraintRecord in the database.
func (_c *ConstraintRecordCreate) Save(ctx context.Context) (*ConstraintRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConstraintRecordCreate) SaveX(ctx context.Context) *ConstraintRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConstraintRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConstraintRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConstraintRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := constraintrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := constraintrecord.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := constraintrecord.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := constraintrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := constraintrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConstraintRecordCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ConstraintRecord.name"`)}
	}
	if _, ok := _c.mutation.Necessity(); !ok {
		return &ValidationError{Name: "necessity", err: errors.New(`ent: missing required field "ConstraintRecord.necessity"`)}
	}
	if v, ok := _c.mutation.Necessity(); ok {
		if err := constraintrecord.NecessityValidator(v); err != nil {
			return &ValidationError{Name: "necessity", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.necessity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConstraintRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := constraintrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ConstraintRecord.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := constraintrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ConstraintRecord.confidence"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "ConstraintRecord.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := constraintrecord.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ConstraintRecord.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RuleKind(); !ok {
		return &ValidationError{Name: "rule_kind", err: errors.New(`ent: missing required field "ConstraintRecord.rule_kind"`)}
	}
	if _, ok := _c.mutation.IdentityKey(); !ok {
		return &ValidationError{Name: "identity_key", err: errors.New(`ent: missing required field "ConstraintRecord.identity_key"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConstraintRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConstraintRecord.updated_at"`)}
	}
	return nil
}

func (_c *ConstraintRecordCreate) sqlSave(ctx context.Context) (*ConstraintRecord, error) {
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
			return nil, fmt.Errorf("unexpected ConstraintRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConstraintRecordCreate) createSpec() (*ConstraintRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ConstraintRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(constraintrecord.Table, sqlgraph.NewFieldSpec(constraintrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(constraintrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(constraintrecord.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Necessity(); ok {
		_spec.SetField(constraintrecord.FieldNecessity, field.TypeEnum, value)
		_node.Necessity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(constraintrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(constraintrecord.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(constraintrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(constraintrecord.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(constraintrecord.FieldStartDate, field.TypeString, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(constraintrecord.FieldEndDate, field.TypeString, value)
		_node.EndDate = value
	}
	if value, ok := _c.mutation.DaysOfWeek(); ok {
		_spec.SetField(constraintrecord.FieldDaysOfWeek, field.TypeJSON, value)
		_node.DaysOfWeek = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(constraintrecord.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Recurrence(); ok {
		_spec.SetField(constraintrecord.FieldRecurrence, field.TypeString, value)
		_node.Recurrence = value
	}
	if value, ok := _c.mutation.TTLDays(); ok {
		_spec.SetField(constraintrecord.FieldTTLDays, field.TypeInt, value)
		_node.TTLDays = value
	}
	if value, ok := _c.mutation.AppliesStages(); ok {
		_spec.SetField(constraintrecord.FieldAppliesStages, field.TypeJSON, value)
		_node.AppliesStages = value
	}
	if value, ok := _c.mutation.AppliesEventTypes(); ok {
		_spec.SetField(constraintrecord.FieldAppliesEventTypes, field.TypeJSON, value)
		_node.AppliesEventTypes = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(constraintrecord.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(constraintrecord.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.RuleKind(); ok {
		_spec.SetField(constraintrecord.FieldRuleKind, field.TypeString, value)
		_node.RuleKind = value
	}
	if value, ok := _c.mutation.ScalarParams(); ok {
		_spec.SetField(constraintrecord.FieldScalarParams, field.TypeJSON, value)
		_node.ScalarParams = value
	}
	if value, ok := _c.mutation.Windows(); ok {
		_spec.SetField(constraintrecord.FieldWindows, field.TypeJSON, value)
		_node.Windows = value
	}
	if value, ok := _c.mutation.SupersedesUids(); ok {
		_spec.SetField(constraintrecord.FieldSupersedesUids, field.TypeJSON, value)
		_node.SupersedesUids = value
	}
	if value, ok := _c.mutation.IdentityKey(); ok {
		_spec.SetField(constraintrecord.FieldIdentityKey, field.TypeString, value)
		_node.IdentityKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(constraintrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(constraintrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ConstraintRecordCreateBulk is the builder for creating many ConstraintRecord entities in bulk.
type ConstraintRecordCreateBulk struct {
	config
	err      error
	builders []*ConstraintRecordCreate
}

// Save creates the ConstraintRecord entities in the database.
func (_c *ConstraintRecordCreateBulk) Save(ctx context.Context) ([]*ConstraintRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConstraintRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConstraintRecordMutation)
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
func (_c *ConstraintRecordCreateBulk) SaveX(ctx context.Context) []*ConstraintRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConstraintRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConstraintRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
