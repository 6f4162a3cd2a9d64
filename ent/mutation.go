// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hugocool/fateforger/ent/constraintrecord"
	"github.com/hugocool/fateforger/ent/predicate"
	"github.com/hugocool/fateforger/ent/reflection"
	"github.com/hugocool/fateforger/ent/syncrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConstraintRecord = "ConstraintRecord"
	TypeReflection       = "Reflection"
	TypeSyncRecord       = "SyncRecord"
)

// ConstraintRecordMutation represents an operation that mutates the ConstraintRecord nodes in the graph.
type ConstraintRecordMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	name                      *string
	description               *string
	necessity                 *constraintrecord.Necessity
	status                    *constraintrecord.Status
	source                    *constraintrecord.Source
	confidence                *float64
	addconfidence             *float64
	scope                     *constraintrecord.Scope
	start_date                *string
	end_date                  *string
	days_of_week              *[]string
	appenddays_of_week        []string
	timezone                  *string
	recurrence                *string
	ttl_days                  *int
	addttl_days               *int
	applies_stages            *[]string
	appendapplies_stages      []string
	applies_event_types       *[]string
	appendapplies_event_types []string
	topics                    *[]string
	appendtopics              []string
	tags                      *[]string
	appendtags                []string
	rule_kind                 *string
	scalar_params             *map[string]float64
	windows                   *[]map[string]string
	appendwindows             []map[string]string
	supersedes_uids           *[]string
	appendsupersedes_uids     []string
	identity_key              *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*ConstraintRecord, error)
	predicates                []predicate.ConstraintRecord
}

var _ ent.Mutation = (*ConstraintRecordMutation)(nil)

// constraintrecordOption allows management of the mutation configuration using functional options.
type constraintrecordOption func(*ConstraintRecordMutation)

// newConstraintRecordMutation creates new mutation for the ConstraintRecord entity.
func newConstraintRecordMutation(c config, op Op, opts ...constraintrecordOption) *ConstraintRecordMutation {
	m := &ConstraintRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeConstraintRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConstraintRecordID sets the ID field of the mutation.
func withConstraintRecordID(id string) constraintrecordOption {
	return func(m *ConstraintRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ConstraintRecord
		)
		m.oldValue = func(ctx context.Context) (*ConstraintRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConstraintRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConstraintRecord sets the old ConstraintRecord of the mutation.
func withConstraintRecord(node *ConstraintRecord) constraintrecordOption {
	return func(m *ConstraintRecordMutation) {
		m.oldValue = func(context.Context) (*ConstraintRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConstraintRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConstraintRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConstraintRecord entities.
func (m *ConstraintRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConstraintRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConstraintRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConstraintRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ConstraintRecordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConstraintRecordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ConstraintRecordMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ConstraintRecordMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ConstraintRecordMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ConstraintRecordMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[constraintrecord.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ConstraintRecordMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ConstraintRecordMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, constraintrecord.FieldDescription)
}

// SetNecessity sets the "necessity" field.
func (m *ConstraintRecordMutation) SetNecessity(c constraintrecord.Necessity) {
	m.necessity = &c
}

// Necessity returns the value of the "necessity" field in the mutation.
func (m *ConstraintRecordMutation) Necessity() (r constraintrecord.Necessity, exists bool) {
	v := m.necessity
	if v == nil {
		return
	}
	return *v, true
}

// OldNecessity returns the old "necessity" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldNecessity(ctx context.Context) (v constraintrecord.Necessity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNecessity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNecessity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNecessity: %w", err)
	}
	return oldValue.Necessity, nil
}

// ResetNecessity resets all changes to the "necessity" field.
func (m *ConstraintRecordMutation) ResetNecessity() {
	m.necessity = nil
}

// SetStatus sets the "status" field.
func (m *ConstraintRecordMutation) SetStatus(c constraintrecord.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConstraintRecordMutation) Status() (r constraintrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldStatus(ctx context.Context) (v constraintrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConstraintRecordMutation) ResetStatus() {
	m.status = nil
}

// SetSource sets the "source" field.
func (m *ConstraintRecordMutation) SetSource(c constraintrecord.Source) {
	m.source = &c
}

// Source returns the value of the "source" field in the mutation.
func (m *ConstraintRecordMutation) Source() (r constraintrecord.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldSource(ctx context.Context) (v constraintrecord.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ConstraintRecordMutation) ResetSource() {
	m.source = nil
}

// SetConfidence sets the "confidence" field.
func (m *ConstraintRecordMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ConstraintRecordMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ConstraintRecordMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ConstraintRecordMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ConstraintRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetScope sets the "scope" field.
func (m *ConstraintRecordMutation) SetScope(c constraintrecord.Scope) {
	m.scope = &c
}

// Scope returns the value of the "scope" field in the mutation.
func (m *ConstraintRecordMutation) Scope() (r constraintrecord.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldScope(ctx context.Context) (v constraintrecord.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *ConstraintRecordMutation) ResetScope() {
	m.scope = nil
}

// SetStartDate sets the "start_date" field.
func (m *ConstraintRecordMutation) SetStartDate(s string) {
	m.start_date = &s
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *ConstraintRecordMutation) StartDate() (r string, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldStartDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *ConstraintRecordMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[constraintrecord.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *ConstraintRecordMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *ConstraintRecordMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, constraintrecord.FieldStartDate)
}

// SetEndDate sets the "end_date" field.
func (m *ConstraintRecordMutation) SetEndDate(s string) {
	m.end_date = &s
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *ConstraintRecordMutation) EndDate() (r string, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldEndDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *ConstraintRecordMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[constraintrecord.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *ConstraintRecordMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *ConstraintRecordMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, constraintrecord.FieldEndDate)
}

// SetDaysOfWeek sets the "days_of_week" field.
func (m *ConstraintRecordMutation) SetDaysOfWeek(s []string) {
	m.days_of_week = &s
	m.appenddays_of_week = nil
}

// DaysOfWeek returns the value of the "days_of_week" field in the mutation.
func (m *ConstraintRecordMutation) DaysOfWeek() (r []string, exists bool) {
	v := m.days_of_week
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysOfWeek returns the old "days_of_week" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldDaysOfWeek(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysOfWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysOfWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysOfWeek: %w", err)
	}
	return oldValue.DaysOfWeek, nil
}

// AppendDaysOfWeek adds s to the "days_of_week" field.
func (m *ConstraintRecordMutation) AppendDaysOfWeek(s []string) {
	m.appenddays_of_week = append(m.appenddays_of_week, s...)
}

// AppendedDaysOfWeek returns the list of values that were appended to the "days_of_week" field in this mutation.
func (m *ConstraintRecordMutation) AppendedDaysOfWeek() ([]string, bool) {
	if len(m.appenddays_of_week) == 0 {
		return nil, false
	}
	return m.appenddays_of_week, true
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (m *ConstraintRecordMutation) ClearDaysOfWeek() {
	m.days_of_week = nil
	m.appenddays_of_week = nil
	m.clearedFields[constraintrecord.FieldDaysOfWeek] = struct{}{}
}

// DaysOfWeekCleared returns if the "days_of_week" field was cleared in this mutation.
func (m *ConstraintRecordMutation) DaysOfWeekCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldDaysOfWeek]
	return ok
}

// ResetDaysOfWeek resets all changes to the "days_of_week" field.
func (m *ConstraintRecordMutation) ResetDaysOfWeek() {
	m.days_of_week = nil
	m.appenddays_of_week = nil
	delete(m.clearedFields, constraintrecord.FieldDaysOfWeek)
}

// SetTimezone sets the "timezone" field.
func (m *ConstraintRecordMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *ConstraintRecordMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ClearTimezone clears the value of the "timezone" field.
func (m *ConstraintRecordMutation) ClearTimezone() {
	m.timezone = nil
	m.clearedFields[constraintrecord.FieldTimezone] = struct{}{}
}

// TimezoneCleared returns if the "timezone" field was cleared in this mutation.
func (m *ConstraintRecordMutation) TimezoneCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldTimezone]
	return ok
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *ConstraintRecordMutation) ResetTimezone() {
	m.timezone = nil
	delete(m.clearedFields, constraintrecord.FieldTimezone)
}

// SetRecurrence sets the "recurrence" field.
func (m *ConstraintRecordMutation) SetRecurrence(s string) {
	m.recurrence = &s
}

// Recurrence returns the value of the "recurrence" field in the mutation.
func (m *ConstraintRecordMutation) Recurrence() (r string, exists bool) {
	v := m.recurrence
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrence returns the old "recurrence" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldRecurrence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrence: %w", err)
	}
	return oldValue.Recurrence, nil
}

// ClearRecurrence clears the value of the "recurrence" field.
func (m *ConstraintRecordMutation) ClearRecurrence() {
	m.recurrence = nil
	m.clearedFields[constraintrecord.FieldRecurrence] = struct{}{}
}

// RecurrenceCleared returns if the "recurrence" field was cleared in this mutation.
func (m *ConstraintRecordMutation) RecurrenceCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldRecurrence]
	return ok
}

// ResetRecurrence resets all changes to the "recurrence" field.
func (m *ConstraintRecordMutation) ResetRecurrence() {
	m.recurrence = nil
	delete(m.clearedFields, constraintrecord.FieldRecurrence)
}

// SetTTLDays sets the "ttl_days" field.
func (m *ConstraintRecordMutation) SetTTLDays(i int) {
	m.ttl_days = &i
	m.addttl_days = nil
}

// TTLDays returns the value of the "ttl_days" field in the mutation.
func (m *ConstraintRecordMutation) TTLDays() (r int, exists bool) {
	v := m.ttl_days
	if v == nil {
		return
	}
	return *v, true
}

// OldTTLDays returns the old "ttl_days" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldTTLDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTTLDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTTLDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTTLDays: %w", err)
	}
	return oldValue.TTLDays, nil
}

// AddTTLDays adds i to the "ttl_days" field.
func (m *ConstraintRecordMutation) AddTTLDays(i int) {
	if m.addttl_days != nil {
		*m.addttl_days += i
	} else {
		m.addttl_days = &i
	}
}

// AddedTTLDays returns the value that was added to the "ttl_days" field in this mutation.
func (m *ConstraintRecordMutation) AddedTTLDays() (r int, exists bool) {
	v := m.addttl_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearTTLDays clears the value of the "ttl_days" field.
func (m *ConstraintRecordMutation) ClearTTLDays() {
	m.ttl_days = nil
	m.addttl_days = nil
	m.clearedFields[constraintrecord.FieldTTLDays] = struct{}{}
}

// TTLDaysCleared returns if the "ttl_days" field was cleared in this mutation.
func (m *ConstraintRecordMutation) TTLDaysCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldTTLDays]
	return ok
}

// ResetTTLDays resets all changes to the "ttl_days" field.
func (m *ConstraintRecordMutation) ResetTTLDays() {
	m.ttl_days = nil
	m.addttl_days = nil
	delete(m.clearedFields, constraintrecord.FieldTTLDays)
}

// SetAppliesStages sets the "applies_stages" field.
func (m *ConstraintRecordMutation) SetAppliesStages(s []string) {
	m.applies_stages = &s
	m.appendapplies_stages = nil
}

// AppliesStages returns the value of the "applies_stages" field in the mutation.
func (m *ConstraintRecordMutation) AppliesStages() (r []string, exists bool) {
	v := m.applies_stages
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliesStages returns the old "applies_stages" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldAppliesStages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliesStages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliesStages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliesStages: %w", err)
	}
	return oldValue.AppliesStages, nil
}

// AppendAppliesStages adds s to the "applies_stages" field.
func (m *ConstraintRecordMutation) AppendAppliesStages(s []string) {
	m.appendapplies_stages = append(m.appendapplies_stages, s...)
}

// AppendedAppliesStages returns the list of values that were appended to the "applies_stages" field in this mutation.
func (m *ConstraintRecordMutation) AppendedAppliesStages() ([]string, bool) {
	if len(m.appendapplies_stages) == 0 {
		return nil, false
	}
	return m.appendapplies_stages, true
}

// ClearAppliesStages clears the value of the "applies_stages" field.
func (m *ConstraintRecordMutation) ClearAppliesStages() {
	m.applies_stages = nil
	m.appendapplies_stages = nil
	m.clearedFields[constraintrecord.FieldAppliesStages] = struct{}{}
}

// AppliesStagesCleared returns if the "applies_stages" field was cleared in this mutation.
func (m *ConstraintRecordMutation) AppliesStagesCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldAppliesStages]
	return ok
}

// ResetAppliesStages resets all changes to the "applies_stages" field.
func (m *ConstraintRecordMutation) ResetAppliesStages() {
	m.applies_stages = nil
	m.appendapplies_stages = nil
	delete(m.clearedFields, constraintrecord.FieldAppliesStages)
}

// SetAppliesEventTypes sets the "applies_event_types" field.
func (m *ConstraintRecordMutation) SetAppliesEventTypes(s []string) {
	m.applies_event_types = &s
	m.appendapplies_event_types = nil
}

// AppliesEventTypes returns the value of the "applies_event_types" field in the mutation.
func (m *ConstraintRecordMutation) AppliesEventTypes() (r []string, exists bool) {
	v := m.applies_event_types
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliesEventTypes returns the old "applies_event_types" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldAppliesEventTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliesEventTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliesEventTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliesEventTypes: %w", err)
	}
	return oldValue.AppliesEventTypes, nil
}

// AppendAppliesEventTypes adds s to the "applies_event_types" field.
func (m *ConstraintRecordMutation) AppendAppliesEventTypes(s []string) {
	m.appendapplies_event_types = append(m.appendapplies_event_types, s...)
}

// AppendedAppliesEventTypes returns the list of values that were appended to the "applies_event_types" field in this mutation.
func (m *ConstraintRecordMutation) AppendedAppliesEventTypes() ([]string, bool) {
	if len(m.appendapplies_event_types) == 0 {
		return nil, false
	}
	return m.appendapplies_event_types, true
}

// ClearAppliesEventTypes clears the value of the "applies_event_types" field.
func (m *ConstraintRecordMutation) ClearAppliesEventTypes() {
	m.applies_event_types = nil
	m.appendapplies_event_types = nil
	m.clearedFields[constraintrecord.FieldAppliesEventTypes] = struct{}{}
}

// AppliesEventTypesCleared returns if the "applies_event_types" field was cleared in this mutation.
func (m *ConstraintRecordMutation) AppliesEventTypesCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldAppliesEventTypes]
	return ok
}

// ResetAppliesEventTypes resets all changes to the "applies_event_types" field.
func (m *ConstraintRecordMutation) ResetAppliesEventTypes() {
	m.applies_event_types = nil
	m.appendapplies_event_types = nil
	delete(m.clearedFields, constraintrecord.FieldAppliesEventTypes)
}

// SetTopics sets the "topics" field.
func (m *ConstraintRecordMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *ConstraintRecordMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *ConstraintRecordMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *ConstraintRecordMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *ConstraintRecordMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[constraintrecord.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *ConstraintRecordMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *ConstraintRecordMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, constraintrecord.FieldTopics)
}

// SetTags sets the "tags" field.
func (m *ConstraintRecordMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ConstraintRecordMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ConstraintRecordMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ConstraintRecordMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ConstraintRecordMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[constraintrecord.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ConstraintRecordMutation) TagsCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ConstraintRecordMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, constraintrecord.FieldTags)
}

// SetRuleKind sets the "rule_kind" field.
func (m *ConstraintRecordMutation) SetRuleKind(s string) {
	m.rule_kind = &s
}

// RuleKind returns the value of the "rule_kind" field in the mutation.
func (m *ConstraintRecordMutation) RuleKind() (r string, exists bool) {
	v := m.rule_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleKind returns the old "rule_kind" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldRuleKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleKind: %w", err)
	}
	return oldValue.RuleKind, nil
}

// ResetRuleKind resets all changes to the "rule_kind" field.
func (m *ConstraintRecordMutation) ResetRuleKind() {
	m.rule_kind = nil
}

// SetScalarParams sets the "scalar_params" field.
func (m *ConstraintRecordMutation) SetScalarParams(value map[string]float64) {
	m.scalar_params = &value
}

// ScalarParams returns the value of the "scalar_params" field in the mutation.
func (m *ConstraintRecordMutation) ScalarParams() (r map[string]float64, exists bool) {
	v := m.scalar_params
	if v == nil {
		return
	}
	return *v, true
}

// OldScalarParams returns the old "scalar_params" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldScalarParams(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScalarParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScalarParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScalarParams: %w", err)
	}
	return oldValue.ScalarParams, nil
}

// ClearScalarParams clears the value of the "scalar_params" field.
func (m *ConstraintRecordMutation) ClearScalarParams() {
	m.scalar_params = nil
	m.clearedFields[constraintrecord.FieldScalarParams] = struct{}{}
}

// ScalarParamsCleared returns if the "scalar_params" field was cleared in this mutation.
func (m *ConstraintRecordMutation) ScalarParamsCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldScalarParams]
	return ok
}

// ResetScalarParams resets all changes to the "scalar_params" field.
func (m *ConstraintRecordMutation) ResetScalarParams() {
	m.scalar_params = nil
	delete(m.clearedFields, constraintrecord.FieldScalarParams)
}

// SetWindows sets the "windows" field.
func (m *ConstraintRecordMutation) SetWindows(value []map[string]string) {
	m.windows = &value
	m.appendwindows = nil
}

// Windows returns the value of the "windows" field in the mutation.
func (m *ConstraintRecordMutation) Windows() (r []map[string]string, exists bool) {
	v := m.windows
	if v == nil {
		return
	}
	return *v, true
}

// OldWindows returns the old "windows" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldWindows(ctx context.Context) (v []map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindows: %w", err)
	}
	return oldValue.Windows, nil
}

// AppendWindows adds value to the "windows" field.
func (m *ConstraintRecordMutation) AppendWindows(value []map[string]string) {
	m.appendwindows = append(m.appendwindows, value...)
}

// AppendedWindows returns the list of values that were appended to the "windows" field in this mutation.
func (m *ConstraintRecordMutation) AppendedWindows() ([]map[string]string, bool) {
	if len(m.appendwindows) == 0 {
		return nil, false
	}
	return m.appendwindows, true
}

// ClearWindows clears the value of the "windows" field.
func (m *ConstraintRecordMutation) ClearWindows() {
	m.windows = nil
	m.appendwindows = nil
	m.clearedFields[constraintrecord.FieldWindows] = struct{}{}
}

// WindowsCleared returns if the "windows" field was cleared in this mutation.
func (m *ConstraintRecordMutation) WindowsCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldWindows]
	return ok
}

// ResetWindows resets all changes to the "windows" field.
func (m *ConstraintRecordMutation) ResetWindows() {
	m.windows = nil
	m.appendwindows = nil
	delete(m.clearedFields, constraintrecord.FieldWindows)
}

// SetSupersedesUids sets the "supersedes_uids" field.
func (m *ConstraintRecordMutation) SetSupersedesUids(s []string) {
	m.supersedes_uids = &s
	m.appendsupersedes_uids = nil
}

// SupersedesUids returns the value of the "supersedes_uids" field in the mutation.
func (m *ConstraintRecordMutation) SupersedesUids() (r []string, exists bool) {
	v := m.supersedes_uids
	if v == nil {
		return
	}
	return *v, true
}

// OldSupersedesUids returns the old "supersedes_uids" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldSupersedesUids(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupersedesUids is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupersedesUids requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupersedesUids: %w", err)
	}
	return oldValue.SupersedesUids, nil
}

// AppendSupersedesUids adds s to the "supersedes_uids" field.
func (m *ConstraintRecordMutation) AppendSupersedesUids(s []string) {
	m.appendsupersedes_uids = append(m.appendsupersedes_uids, s...)
}

// AppendedSupersedesUids returns the list of values that were appended to the "supersedes_uids" field in this mutation.
func (m *ConstraintRecordMutation) AppendedSupersedesUids() ([]string, bool) {
	if len(m.appendsupersedes_uids) == 0 {
		return nil, false
	}
	return m.appendsupersedes_uids, true
}

// ClearSupersedesUids clears the value of the "supersedes_uids" field.
func (m *ConstraintRecordMutation) ClearSupersedesUids() {
	m.supersedes_uids = nil
	m.appendsupersedes_uids = nil
	m.clearedFields[constraintrecord.FieldSupersedesUids] = struct{}{}
}

// SupersedesUidsCleared returns if the "supersedes_uids" field was cleared in this mutation.
func (m *ConstraintRecordMutation) SupersedesUidsCleared() bool {
	_, ok := m.clearedFields[constraintrecord.FieldSupersedesUids]
	return ok
}

// ResetSupersedesUids resets all changes to the "supersedes_uids" field.
func (m *ConstraintRecordMutation) ResetSupersedesUids() {
	m.supersedes_uids = nil
	m.appendsupersedes_uids = nil
	delete(m.clearedFields, constraintrecord.FieldSupersedesUids)
}

// SetIdentityKey sets the "identity_key" field.
func (m *ConstraintRecordMutation) SetIdentityKey(s string) {
	m.identity_key = &s
}

// IdentityKey returns the value of the "identity_key" field in the mutation.
func (m *ConstraintRecordMutation) IdentityKey() (r string, exists bool) {
	v := m.identity_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentityKey returns the old "identity_key" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldIdentityKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentityKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentityKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentityKey: %w", err)
	}
	return oldValue.IdentityKey, nil
}

// ResetIdentityKey resets all changes to the "identity_key" field.
func (m *ConstraintRecordMutation) ResetIdentityKey() {
	m.identity_key = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConstraintRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConstraintRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConstraintRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConstraintRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConstraintRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConstraintRecord entity.
// If the ConstraintRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConstraintRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConstraintRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConstraintRecordMutation builder.
func (m *ConstraintRecordMutation) Where(ps ...predicate.ConstraintRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConstraintRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConstraintRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConstraintRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConstraintRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConstraintRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConstraintRecord).
func (m *ConstraintRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConstraintRecordMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.name != nil {
		fields = append(fields, constraintrecord.FieldName)
	}
	if m.description != nil {
		fields = append(fields, constraintrecord.FieldDescription)
	}
	if m.necessity != nil {
		fields = append(fields, constraintrecord.FieldNecessity)
	}
	if m.status != nil {
		fields = append(fields, constraintrecord.FieldStatus)
	}
	if m.source != nil {
		fields = append(fields, constraintrecord.FieldSource)
	}
	if m.confidence != nil {
		fields = append(fields, constraintrecord.FieldConfidence)
	}
	if m.scope != nil {
		fields = append(fields, constraintrecord.FieldScope)
	}
	if m.start_date != nil {
		fields = append(fields, constraintrecord.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, constraintrecord.FieldEndDate)
	}
	if m.days_of_week != nil {
		fields = append(fields, constraintrecord.FieldDaysOfWeek)
	}
	if m.timezone != nil {
		fields = append(fields, constraintrecord.FieldTimezone)
	}
	if m.recurrence != nil {
		fields = append(fields, constraintrecord.FieldRecurrence)
	}
	if m.ttl_days != nil {
		fields = append(fields, constraintrecord.FieldTTLDays)
	}
	if m.applies_stages != nil {
		fields = append(fields, constraintrecord.FieldAppliesStages)
	}
	if m.applies_event_types != nil {
		fields = append(fields, constraintrecord.FieldAppliesEventTypes)
	}
	if m.topics != nil {
		fields = append(fields, constraintrecord.FieldTopics)
	}
	if m.tags != nil {
		fields = append(fields, constraintrecord.FieldTags)
	}
	if m.rule_kind != nil {
		fields = append(fields, constraintrecord.FieldRuleKind)
	}
	if m.scalar_params != nil {
		fields = append(fields, constraintrecord.FieldScalarParams)
	}
	if m.windows != nil {
		fields = append(fields, constraintrecord.FieldWindows)
	}
	if m.supersedes_uids != nil {
		fields = append(fields, constraintrecord.FieldSupersedesUids)
	}
	if m.identity_key != nil {
		fields = append(fields, constraintrecord.FieldIdentityKey)
	}
	if m.created_at != nil {
		fields = append(fields, constraintrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, constraintrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConstraintRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case constraintrecord.FieldName:
		return m.Name()
	case constraintrecord.FieldDescription:
		return m.Description()
	case constraintrecord.FieldNecessity:
		return m.Necessity()
	case constraintrecord.FieldStatus:
		return m.Status()
	case constraintrecord.FieldSource:
		return m.Source()
	case constraintrecord.FieldConfidence:
		return m.Confidence()
	case constraintrecord.FieldScope:
		return m.Scope()
	case constraintrecord.FieldStartDate:
		return m.StartDate()
	case constraintrecord.FieldEndDate:
		return m.EndDate()
	case constraintrecord.FieldDaysOfWeek:
		return m.DaysOfWeek()
	case constraintrecord.FieldTimezone:
		return m.Timezone()
	case constraintrecord.FieldRecurrence:
		return m.Recurrence()
	case constraintrecord.FieldTTLDays:
		return m.TTLDays()
	case constraintrecord.FieldAppliesStages:
		return m.AppliesStages()
	case constraintrecord.FieldAppliesEventTypes:
		return m.AppliesEventTypes()
	case constraintrecord.FieldTopics:
		return m.Topics()
	case constraintrecord.FieldTags:
		return m.Tags()
	case constraintrecord.FieldRuleKind:
		return m.RuleKind()
	case constraintrecord.FieldScalarParams:
		return m.ScalarParams()
	case constraintrecord.FieldWindows:
		return m.Windows()
	case constraintrecord.FieldSupersedesUids:
		return m.SupersedesUids()
	case constraintrecord.FieldIdentityKey:
		return m.IdentityKey()
	case constraintrecord.FieldCreatedAt:
		return m.CreatedAt()
	case constraintrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConstraintRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case constraintrecord.FieldName:
		return m.OldName(ctx)
	case constraintrecord.FieldDescription:
		return m.OldDescription(ctx)
	case constraintrecord.FieldNecessity:
		return m.OldNecessity(ctx)
	case constraintrecord.FieldStatus:
		return m.OldStatus(ctx)
	case constraintrecord.FieldSource:
		return m.OldSource(ctx)
	case constraintrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case constraintrecord.FieldScope:
		return m.OldScope(ctx)
	case constraintrecord.FieldStartDate:
		return m.OldStartDate(ctx)
	case constraintrecord.FieldEndDate:
		return m.OldEndDate(ctx)
	case constraintrecord.FieldDaysOfWeek:
		return m.OldDaysOfWeek(ctx)
	case constraintrecord.FieldTimezone:
		return m.OldTimezone(ctx)
	case constraintrecord.FieldRecurrence:
		return m.OldRecurrence(ctx)
	case constraintrecord.FieldTTLDays:
		return m.OldTTLDays(ctx)
	case constraintrecord.FieldAppliesStages:
		return m.OldAppliesStages(ctx)
	case constraintrecord.FieldAppliesEventTypes:
		return m.OldAppliesEventTypes(ctx)
	case constraintrecord.FieldTopics:
		return m.OldTopics(ctx)
	case constraintrecord.FieldTags:
		return m.OldTags(ctx)
	case constraintrecord.FieldRuleKind:
		return m.OldRuleKind(ctx)
	case constraintrecord.FieldScalarParams:
		return m.OldScalarParams(ctx)
	case constraintrecord.FieldWindows:
		return m.OldWindows(ctx)
	case constraintrecord.FieldSupersedesUids:
		return m.OldSupersedesUids(ctx)
	case constraintrecord.FieldIdentityKey:
		return m.OldIdentityKey(ctx)
	case constraintrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case constraintrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConstraintRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConstraintRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case constraintrecord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case constraintrecord.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case constraintrecord.FieldNecessity:
		v, ok := value.(constraintrecord.Necessity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNecessity(v)
		return nil
	case constraintrecord.FieldStatus:
		v, ok := value.(constraintrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case constraintrecord.FieldSource:
		v, ok := value.(constraintrecord.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case constraintrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case constraintrecord.FieldScope:
		v, ok := value.(constraintrecord.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case constraintrecord.FieldStartDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case constraintrecord.FieldEndDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case constraintrecord.FieldDaysOfWeek:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysOfWeek(v)
		return nil
	case constraintrecord.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case constraintrecord.FieldRecurrence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrence(v)
		return nil
	case constraintrecord.FieldTTLDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTTLDays(v)
		return nil
	case constraintrecord.FieldAppliesStages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliesStages(v)
		return nil
	case constraintrecord.FieldAppliesEventTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliesEventTypes(v)
		return nil
	case constraintrecord.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case constraintrecord.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case constraintrecord.FieldRuleKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleKind(v)
		return nil
	case constraintrecord.FieldScalarParams:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScalarParams(v)
		return nil
	case constraintrecord.FieldWindows:
		v, ok := value.([]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindows(v)
		return nil
	case constraintrecord.FieldSupersedesUids:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupersedesUids(v)
		return nil
	case constraintrecord.FieldIdentityKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentityKey(v)
		return nil
	case constraintrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case constraintrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConstraintRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConstraintRecordMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, constraintrecord.FieldConfidence)
	}
	if m.addttl_days != nil {
		fields = append(fields, constraintrecord.FieldTTLDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConstraintRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case constraintrecord.FieldConfidence:
		return m.AddedConfidence()
	case constraintrecord.FieldTTLDays:
		return m.AddedTTLDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConstraintRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case constraintrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case constraintrecord.FieldTTLDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTTLDays(v)
		return nil
	}
	return fmt.Errorf("unknown ConstraintRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConstraintRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(constraintrecord.FieldDescription) {
		fields = append(fields, constraintrecord.FieldDescription)
	}
	if m.FieldCleared(constraintrecord.FieldStartDate) {
		fields = append(fields, constraintrecord.FieldStartDate)
	}
	if m.FieldCleared(constraintrecord.FieldEndDate) {
		fields = append(fields, constraintrecord.FieldEndDate)
	}
	if m.FieldCleared(constraintrecord.FieldDaysOfWeek) {
		fields = append(fields, constraintrecord.FieldDaysOfWeek)
	}
	if m.FieldCleared(constraintrecord.FieldTimezone) {
		fields = append(fields, constraintrecord.FieldTimezone)
	}
	if m.FieldCleared(constraintrecord.FieldRecurrence) {
		fields = append(fields, constraintrecord.FieldRecurrence)
	}
	if m.FieldCleared(constraintrecord.FieldTTLDays) {
		fields = append(fields, constraintrecord.FieldTTLDays)
	}
	if m.FieldCleared(constraintrecord.FieldAppliesStages) {
		fields = append(fields, constraintrecord.FieldAppliesStages)
	}
	if m.FieldCleared(constraintrecord.FieldAppliesEventTypes) {
		fields = append(fields, constraintrecord.FieldAppliesEventTypes)
	}
	if m.FieldCleared(constraintrecord.FieldTopics) {
		fields = append(fields, constraintrecord.FieldTopics)
	}
	if m.FieldCleared(constraintrecord.FieldTags) {
		fields = append(fields, constraintrecord.FieldTags)
	}
	if m.FieldCleared(constraintrecord.FieldScalarParams) {
		fields = append(fields, constraintrecord.FieldScalarParams)
	}
	if m.FieldCleared(constraintrecord.FieldWindows) {
		fields = append(fields, constraintrecord.FieldWindows)
	}
	if m.FieldCleared(constraintrecord.FieldSupersedesUids) {
		fields = append(fields, constraintrecord.FieldSupersedesUids)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConstraintRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConstraintRecordMutation) ClearField(name string) error {
	switch name {
	case constraintrecord.FieldDescription:
		m.ClearDescription()
		return nil
	case constraintrecord.FieldStartDate:
		m.ClearStartDate()
		return nil
	case constraintrecord.FieldEndDate:
		m.ClearEndDate()
		return nil
	case constraintrecord.FieldDaysOfWeek:
		m.ClearDaysOfWeek()
		return nil
	case constraintrecord.FieldTimezone:
		m.ClearTimezone()
		return nil
	case constraintrecord.FieldRecurrence:
		m.ClearRecurrence()
		return nil
	case constraintrecord.FieldTTLDays:
		m.ClearTTLDays()
		return nil
	case constraintrecord.FieldAppliesStages:
		m.ClearAppliesStages()
		return nil
	case constraintrecord.FieldAppliesEventTypes:
		m.ClearAppliesEventTypes()
		return nil
	case constraintrecord.FieldTopics:
		m.ClearTopics()
		return nil
	case constraintrecord.FieldTags:
		m.ClearTags()
		return nil
	case constraintrecord.FieldScalarParams:
		m.ClearScalarParams()
		return nil
	case constraintrecord.FieldWindows:
		m.ClearWindows()
		return nil
	case constraintrecord.FieldSupersedesUids:
		m.ClearSupersedesUids()
		return nil
	}
	return fmt.Errorf("unknown ConstraintRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConstraintRecordMutation) ResetField(name string) error {
	switch name {
	case constraintrecord.FieldName:
		m.ResetName()
		return nil
	case constraintrecord.FieldDescription:
		m.ResetDescription()
		return nil
	case constraintrecord.FieldNecessity:
		m.ResetNecessity()
		return nil
	case constraintrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case constraintrecord.FieldSource:
		m.ResetSource()
		return nil
	case constraintrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case constraintrecord.FieldScope:
		m.ResetScope()
		return nil
	case constraintrecord.FieldStartDate:
		m.ResetStartDate()
		return nil
	case constraintrecord.FieldEndDate:
		m.ResetEndDate()
		return nil
	case constraintrecord.FieldDaysOfWeek:
		m.ResetDaysOfWeek()
		return nil
	case constraintrecord.FieldTimezone:
		m.ResetTimezone()
		return nil
	case constraintrecord.FieldRecurrence:
		m.ResetRecurrence()
		return nil
	case constraintrecord.FieldTTLDays:
		m.ResetTTLDays()
		return nil
	case constraintrecord.FieldAppliesStages:
		m.ResetAppliesStages()
		return nil
	case constraintrecord.FieldAppliesEventTypes:
		m.ResetAppliesEventTypes()
		return nil
	case constraintrecord.FieldTopics:
		m.ResetTopics()
		return nil
	case constraintrecord.FieldTags:
		m.ResetTags()
		return nil
	case constraintrecord.FieldRuleKind:
		m.ResetRuleKind()
		return nil
	case constraintrecord.FieldScalarParams:
		m.ResetScalarParams()
		return nil
	case constraintrecord.FieldWindows:
		m.ResetWindows()
		return nil
	case constraintrecord.FieldSupersedesUids:
		m.ResetSupersedesUids()
		return nil
	case constraintrecord.FieldIdentityKey:
		m.ResetIdentityKey()
		return nil
	case constraintrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case constraintrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConstraintRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConstraintRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConstraintRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConstraintRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConstraintRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConstraintRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConstraintRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConstraintRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConstraintRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConstraintRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConstraintRecord edge %s", name)
}

// ReflectionMutation represents an operation that mutates the Reflection nodes in the graph.
type ReflectionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	session_key   *string
	stage         *string
	kind          *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Reflection, error)
	predicates    []predicate.Reflection
}

var _ ent.Mutation = (*ReflectionMutation)(nil)

// reflectionOption allows management of the mutation configuration using functional options.
type reflectionOption func(*ReflectionMutation)

// newReflectionMutation creates new mutation for the Reflection entity.
func newReflectionMutation(c config, op Op, opts ...reflectionOption) *ReflectionMutation {
	m := &ReflectionMutation{
		config:        c,
		op:            op,
		typ:           TypeReflection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReflectionID sets the ID field of the mutation.
func withReflectionID(id string) reflectionOption {
	return func(m *ReflectionMutation) {
		var (
			err   error
			once  sync.Once
			value *Reflection
		)
		m.oldValue = func(ctx context.Context) (*Reflection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reflection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReflection sets the old Reflection of the mutation.
func withReflection(node *Reflection) reflectionOption {
	return func(m *ReflectionMutation) {
		m.oldValue = func(context.Context) (*Reflection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReflectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReflectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Reflection entities.
func (m *ReflectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReflectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReflectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reflection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionKey sets the "session_key" field.
func (m *ReflectionMutation) SetSessionKey(s string) {
	m.session_key = &s
}

// SessionKey returns the value of the "session_key" field in the mutation.
func (m *ReflectionMutation) SessionKey() (r string, exists bool) {
	v := m.session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKey returns the old "session_key" field's value of the Reflection entity.
// If the Reflection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReflectionMutation) OldSessionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKey: %w", err)
	}
	return oldValue.SessionKey, nil
}

// ClearSessionKey clears the value of the "session_key" field.
func (m *ReflectionMutation) ClearSessionKey() {
	m.session_key = nil
	m.clearedFields[reflection.FieldSessionKey] = struct{}{}
}

// SessionKeyCleared returns if the "session_key" field was cleared in this mutation.
func (m *ReflectionMutation) SessionKeyCleared() bool {
	_, ok := m.clearedFields[reflection.FieldSessionKey]
	return ok
}

// ResetSessionKey resets all changes to the "session_key" field.
func (m *ReflectionMutation) ResetSessionKey() {
	m.session_key = nil
	delete(m.clearedFields, reflection.FieldSessionKey)
}

// SetStage sets the "stage" field.
func (m *ReflectionMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ReflectionMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Reflection entity.
// If the Reflection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReflectionMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ClearStage clears the value of the "stage" field.
func (m *ReflectionMutation) ClearStage() {
	m.stage = nil
	m.clearedFields[reflection.FieldStage] = struct{}{}
}

// StageCleared returns if the "stage" field was cleared in this mutation.
func (m *ReflectionMutation) StageCleared() bool {
	_, ok := m.clearedFields[reflection.FieldStage]
	return ok
}

// ResetStage resets all changes to the "stage" field.
func (m *ReflectionMutation) ResetStage() {
	m.stage = nil
	delete(m.clearedFields, reflection.FieldStage)
}

// SetKind sets the "kind" field.
func (m *ReflectionMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ReflectionMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Reflection entity.
// If the Reflection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReflectionMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ReflectionMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *ReflectionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ReflectionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Reflection entity.
// If the Reflection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReflectionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *ReflectionMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[reflection.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *ReflectionMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[reflection.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *ReflectionMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, reflection.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReflectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReflectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reflection entity.
// If the Reflection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReflectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReflectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReflectionMutation builder.
func (m *ReflectionMutation) Where(ps ...predicate.Reflection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReflectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReflectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reflection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReflectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReflectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reflection).
func (m *ReflectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReflectionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session_key != nil {
		fields = append(fields, reflection.FieldSessionKey)
	}
	if m.stage != nil {
		fields = append(fields, reflection.FieldStage)
	}
	if m.kind != nil {
		fields = append(fields, reflection.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, reflection.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, reflection.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReflectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reflection.FieldSessionKey:
		return m.SessionKey()
	case reflection.FieldStage:
		return m.Stage()
	case reflection.FieldKind:
		return m.Kind()
	case reflection.FieldPayload:
		return m.Payload()
	case reflection.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReflectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reflection.FieldSessionKey:
		return m.OldSessionKey(ctx)
	case reflection.FieldStage:
		return m.OldStage(ctx)
	case reflection.FieldKind:
		return m.OldKind(ctx)
	case reflection.FieldPayload:
		return m.OldPayload(ctx)
	case reflection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Reflection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReflectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reflection.FieldSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKey(v)
		return nil
	case reflection.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case reflection.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case reflection.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case reflection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Reflection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReflectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReflectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReflectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Reflection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReflectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reflection.FieldSessionKey) {
		fields = append(fields, reflection.FieldSessionKey)
	}
	if m.FieldCleared(reflection.FieldStage) {
		fields = append(fields, reflection.FieldStage)
	}
	if m.FieldCleared(reflection.FieldPayload) {
		fields = append(fields, reflection.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReflectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReflectionMutation) ClearField(name string) error {
	switch name {
	case reflection.FieldSessionKey:
		m.ClearSessionKey()
		return nil
	case reflection.FieldStage:
		m.ClearStage()
		return nil
	case reflection.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Reflection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReflectionMutation) ResetField(name string) error {
	switch name {
	case reflection.FieldSessionKey:
		m.ResetSessionKey()
		return nil
	case reflection.FieldStage:
		m.ResetStage()
		return nil
	case reflection.FieldKind:
		m.ResetKind()
		return nil
	case reflection.FieldPayload:
		m.ResetPayload()
		return nil
	case reflection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Reflection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReflectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReflectionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReflectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReflectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReflectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReflectionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReflectionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Reflection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReflectionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Reflection edge %s", name)
}

// SyncRecordMutation represents an operation that mutates the SyncRecord nodes in the graph.
type SyncRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	session_key   *string
	calendar_id   *string
	planned_date  *string
	status        *syncrecord.Status
	ops           *[]map[string]interface{}
	appendops     []map[string]interface{}
	results       *[]map[string]interface{}
	appendresults []map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SyncRecord, error)
	predicates    []predicate.SyncRecord
}

var _ ent.Mutation = (*SyncRecordMutation)(nil)

// syncrecordOption allows management of the mutation configuration using functional options.
type syncrecordOption func(*SyncRecordMutation)

// newSyncRecordMutation creates new mutation for the SyncRecord entity.
func newSyncRecordMutation(c config, op Op, opts ...syncrecordOption) *SyncRecordMutation {
	m := &SyncRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncRecordID sets the ID field of the mutation.
func withSyncRecordID(id string) syncrecordOption {
	return func(m *SyncRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncRecord
		)
		m.oldValue = func(ctx context.Context) (*SyncRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncRecord sets the old SyncRecord of the mutation.
func withSyncRecord(node *SyncRecord) syncrecordOption {
	return func(m *SyncRecordMutation) {
		m.oldValue = func(context.Context) (*SyncRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SyncRecord entities.
func (m *SyncRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionKey sets the "session_key" field.
func (m *SyncRecordMutation) SetSessionKey(s string) {
	m.session_key = &s
}

// SessionKey returns the value of the "session_key" field in the mutation.
func (m *SyncRecordMutation) SessionKey() (r string, exists bool) {
	v := m.session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKey returns the old "session_key" field's value of the SyncRecord entity.
// If the SyncRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRecordMutation) OldSessionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKey: %w", err)
	}
	return oldValue.SessionKey, nil
}

// ResetSessionKey resets all changes to the "session_key" field.
func (m *SyncRecordMutation) ResetSessionKey() {
	m.session_key = nil
}

// SetCalendarID sets the "calendar_id" field.
func (m *SyncRecordMutation) SetCalendarID(s string) {
	m.calendar_id = &s
}

// CalendarID returns the value of the "calendar_id" field in the mutation.
func (m *SyncRecordMutation) CalendarID() (r string, exists bool) {
	v := m.calendar_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarID returns the old "calendar_id" field's value of the SyncRecord entity.
// If the SyncRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRecordMutation) OldCalendarID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarID: %w", err)
	}
	return oldValue.CalendarID, nil
}

// ResetCalendarID resets all changes to the "calendar_id" field.
func (m *SyncRecordMutation) ResetCalendarID() {
	m.calendar_id = nil
}

// SetPlannedDate sets the "planned_date" field.
func (m *SyncRecordMutation) SetPlannedDate(s string) {
	m.planned_date = &s
}

// PlannedDate returns the value of the "planned_date" field in the mutation.
func (m *SyncRecordMutation) PlannedDate() (r string, exists bool) {
	v := m.planned_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedDate returns the old "planned_date" field's value of the SyncRecord entity.
// If the SyncRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRecordMutation) OldPlannedDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedDate: %w", err)
	}
	return oldValue.PlannedDate, nil
}

// ResetPlannedDate resets all changes to the "planned_date" field.
func (m *SyncRecordMutation) ResetPlannedDate() {
	m.planned_date = nil
}

// SetStatus sets the "status" field.
func (m *SyncRecordMutation) SetStatus(s syncrecord.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SyncRecordMutation) Status() (r syncrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SyncRecord entity.
// If the SyncRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRecordMutation) OldStatus(ctx context.Context) (v syncrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SyncRecordMutation) ResetStatus() {
	m.status = nil
}

// SetOps sets the "ops" field.
func (m *SyncRecordMutation) SetOps(value []map[string]interface{}) {
	m.ops = &value
	m.appendops = nil
}

// Ops returns the value of the "ops" field in the mutation.
func (m *SyncRecordMutation) Ops() (r []map[string]interface{}, exists bool) {
	v := m.ops
	if v == nil {
		return
	}
	return *v, true
}

// OldOps returns the old "ops" field's value of the SyncRecord entity.
// If the SyncRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRecordMutation) OldOps(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOps: %w", err)
	}
	return oldValue.Ops, nil
}

// AppendOps adds value to the "ops" field.
func (m *SyncRecordMutation) AppendOps(value []map[string]interface{}) {
	m.appendops = append(m.appendops, value...)
}

// AppendedOps returns the list of values that were appended to the "ops" field in this mutation.
func (m *SyncRecordMutation) AppendedOps() ([]map[string]interface{}, bool) {
	if len(m.appendops) == 0 {
		return nil, false
	}
	return m.appendops, true
}

// ResetOps resets all changes to the "ops" field.
func (m *SyncRecordMutation) ResetOps() {
	m.ops = nil
	m.appendops = nil
}

// SetResults sets the "results" field.
func (m *SyncRecordMutation) SetResults(value []map[string]interface{}) {
	m.results = &value
	m.appendresults = nil
}

// Results returns the value of the "results" field in the mutation.
func (m *SyncRecordMutation) Results() (r []map[string]interface{}, exists bool) {
	v := m.results
	if v == nil {
		return
	}
	return *v, true
}

// OldResults returns the old "results" field's value of the SyncRecord entity.
// If the SyncRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRecordMutation) OldResults(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResults: %w", err)
	}
	return oldValue.Results, nil
}

// AppendResults adds value to the "results" field.
func (m *SyncRecordMutation) AppendResults(value []map[string]interface{}) {
	m.appendresults = append(m.appendresults, value...)
}

// AppendedResults returns the list of values that were appended to the "results" field in this mutation.
func (m *SyncRecordMutation) AppendedResults() ([]map[string]interface{}, bool) {
	if len(m.appendresults) == 0 {
		return nil, false
	}
	return m.appendresults, true
}

// ClearResults clears the value of the "results" field.
func (m *SyncRecordMutation) ClearResults() {
	m.results = nil
	m.appendresults = nil
	m.clearedFields[syncrecord.FieldResults] = struct{}{}
}

// ResultsCleared returns if the "results" field was cleared in this mutation.
func (m *SyncRecordMutation) ResultsCleared() bool {
	_, ok := m.clearedFields[syncrecord.FieldResults]
	return ok
}

// ResetResults resets all changes to the "results" field.
func (m *SyncRecordMutation) ResetResults() {
	m.results = nil
	m.appendresults = nil
	delete(m.clearedFields, syncrecord.FieldResults)
}

// SetCreatedAt sets the "created_at" field.
func (m *SyncRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SyncRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SyncRecord entity.
// If the SyncRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SyncRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SyncRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SyncRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SyncRecord entity.
// If the SyncRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SyncRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SyncRecordMutation builder.
func (m *SyncRecordMutation) Where(ps ...predicate.SyncRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncRecord).
func (m *SyncRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_key != nil {
		fields = append(fields, syncrecord.FieldSessionKey)
	}
	if m.calendar_id != nil {
		fields = append(fields, syncrecord.FieldCalendarID)
	}
	if m.planned_date != nil {
		fields = append(fields, syncrecord.FieldPlannedDate)
	}
	if m.status != nil {
		fields = append(fields, syncrecord.FieldStatus)
	}
	if m.ops != nil {
		fields = append(fields, syncrecord.FieldOps)
	}
	if m.results != nil {
		fields = append(fields, syncrecord.FieldResults)
	}
	if m.created_at != nil {
		fields = append(fields, syncrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, syncrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case syncrecord.FieldSessionKey:
		return m.SessionKey()
	case syncrecord.FieldCalendarID:
		return m.CalendarID()
	case syncrecord.FieldPlannedDate:
		return m.PlannedDate()
	case syncrecord.FieldStatus:
		return m.Status()
	case syncrecord.FieldOps:
		return m.Ops()
	case syncrecord.FieldResults:
		return m.Results()
	case syncrecord.FieldCreatedAt:
		return m.CreatedAt()
	case syncrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case syncrecord.FieldSessionKey:
		return m.OldSessionKey(ctx)
	case syncrecord.FieldCalendarID:
		return m.OldCalendarID(ctx)
	case syncrecord.FieldPlannedDate:
		return m.OldPlannedDate(ctx)
	case syncrecord.FieldStatus:
		return m.OldStatus(ctx)
	case syncrecord.FieldOps:
		return m.OldOps(ctx)
	case syncrecord.FieldResults:
		return m.OldResults(ctx)
	case syncrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case syncrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SyncRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case syncrecord.FieldSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKey(v)
		return nil
	case syncrecord.FieldCalendarID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarID(v)
		return nil
	case syncrecord.FieldPlannedDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedDate(v)
		return nil
	case syncrecord.FieldStatus:
		v, ok := value.(syncrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case syncrecord.FieldOps:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOps(v)
		return nil
	case syncrecord.FieldResults:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResults(v)
		return nil
	case syncrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case syncrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SyncRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SyncRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(syncrecord.FieldResults) {
		fields = append(fields, syncrecord.FieldResults)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncRecordMutation) ClearField(name string) error {
	switch name {
	case syncrecord.FieldResults:
		m.ClearResults()
		return nil
	}
	return fmt.Errorf("unknown SyncRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncRecordMutation) ResetField(name string) error {
	switch name {
	case syncrecord.FieldSessionKey:
		m.ResetSessionKey()
		return nil
	case syncrecord.FieldCalendarID:
		m.ResetCalendarID()
		return nil
	case syncrecord.FieldPlannedDate:
		m.ResetPlannedDate()
		return nil
	case syncrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case syncrecord.FieldOps:
		m.ResetOps()
		return nil
	case syncrecord.FieldResults:
		m.ResetResults()
		return nil
	case syncrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case syncrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SyncRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SyncRecord edge %s", name)
}
