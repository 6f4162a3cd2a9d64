// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hugocool/fateforger/ent/constraintrecord"
)

// ConstraintRecord is the model entity for the ConstraintRecord schema.
type ConstraintRecord struct {
	config `json:"-"`
	// ID of the ent.
	// Content hash over the canonical identity tuple
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Necessity holds the value of the "necessity" field.
	Necessity constraintrecord.Necessity `json:"necessity,omitempty"`
	// Status holds the value of the "status" field.
	Status constraintrecord.Status `json:"status,omitempty"`
	// Source holds the value of the "source" field.
	Source constraintrecord.Source `json:"source,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope constraintrecord.Scope `json:"scope,omitempty"`
	// Local ISO date; open when empty
	StartDate string `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate string `json:"end_date,omitempty"`
	// DaysOfWeek holds the value of the "days_of_week" field.
	DaysOfWeek []string `json:"days_of_week,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Recurrence holds the value of the "recurrence" field.
	Recurrence string `json:"recurrence,omitempty"`
	// TTLDays holds the value of the "ttl_days" field.
	TTLDays int `json:"ttl_days,omitempty"`
	// AppliesStages holds the value of the "applies_stages" field.
	AppliesStages []string `json:"applies_stages,omitempty"`
	// AppliesEventTypes holds the value of the "applies_event_types" field.
	AppliesEventTypes []string `json:"applies_event_types,omitempty"`
	// Topics holds the value of the "topics" field.
	Topics []string `json:"topics,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// RuleKind holds the value of the "rule_kind" field.
	RuleKind string `json:"rule_kind,omitempty"`
	// ScalarParams holds the value of the "scalar_params" field.
	ScalarParams map[string]float64 `json:"scalar_params,omitempty"`
	// Windows holds the value of the "windows" field.
	Windows []map[string]string `json:"windows,omitempty"`
	// SupersedesUids holds the value of the "supersedes_uids" field.
	SupersedesUids []string `json:"supersedes_uids,omitempty"`
	// Stable render of the identity tuple for equivalence lookups
	IdentityKey string `json:"identity_key,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConstraintRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case constraintrecord.FieldDaysOfWeek, constraintrecord.FieldAppliesStages, constraintrecord.FieldAppliesEventTypes, constraintrecord.FieldTopics, constraintrecord.FieldTags, constraintrecord.FieldScalarParams, constraintrecord.FieldWindows, constraintrecord.FieldSupersedesUids:
			values[i] = new([]byte)
		case constraintrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case constraintrecord.FieldTTLDays:
			values[i] = new(sql.NullInt64)
		case constraintrecord.FieldID, constraintrecord.FieldName, constraintrecord.FieldDescription, constraintrecord.FieldNecessity, constraintrecord.FieldStatus, constraintrecord.FieldSource, constraintrecord.FieldScope, constraintrecord.FieldStartDate, constraintrecord.FieldEndDate, constraintrecord.FieldTimezone, constraintrecord.FieldRecurrence, constraintrecord.FieldRuleKind, constraintrecord.FieldIdentityKey:
			values[i] = new(sql.NullString)
		case constraintrecord.FieldCreatedAt, constraintrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConstraintRecord fields.
func (_m *ConstraintRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case constraintrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case constraintrecord.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case constraintrecord.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case constraintrecord.FieldNecessity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field necessity", values[i])
			} else if value.Valid {
				_m.Necessity = constraintrecord.Necessity(value.String)
			}
		case constraintrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = constraintrecord.Status(value.String)
			}
		case constraintrecord.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = constraintrecord.Source(value.String)
			}
		case constraintrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case constraintrecord.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = constraintrecord.Scope(value.String)
			}
		case constraintrecord.FieldStartDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.String
			}
		case constraintrecord.FieldEndDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = value.String
			}
		case constraintrecord.FieldDaysOfWeek:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field days_of_week", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DaysOfWeek); err != nil {
					return fmt.Errorf("unmarshal field days_of_week: %w", err)
				}
			}
		case constraintrecord.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case constraintrecord.FieldRecurrence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence", values[i])
			} else if value.Valid {
				_m.Recurrence = value.String
			}
		case constraintrecord.FieldTTLDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ttl_days", values[i])
			} else if value.Valid {
				_m.TTLDays = int(value.Int64)
			}
		case constraintrecord.FieldAppliesStages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field applies_stages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AppliesStages); err != nil {
					return fmt.Errorf("unmarshal field applies_stages: %w", err)
				}
			}
		case constraintrecord.FieldAppliesEventTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field applies_event_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AppliesEventTypes); err != nil {
					return fmt.Errorf("unmarshal field applies_event_types: %w", err)
				}
			}
		case constraintrecord.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case constraintrecord.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case constraintrecord.FieldRuleKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_kind", values[i])
			} else if value.Valid {
				_m.RuleKind = value.String
			}
		case constraintrecord.FieldScalarParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scalar_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ScalarParams); err != nil {
					return fmt.Errorf("unmarshal field scalar_params: %w", err)
				}
			}
		case constraintrecord.FieldWindows:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field windows", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Windows); err != nil {
					return fmt.Errorf("unmarshal field windows: %w", err)
				}
			}
		case constraintrecord.FieldSupersedesUids:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field supersedes_uids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SupersedesUids); err != nil {
					return fmt.Errorf("unmarshal field supersedes_uids: %w", err)
				}
			}
		case constraintrecord.FieldIdentityKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identity_key", values[i])
			} else if value.Valid {
				_m.IdentityKey = value.String
			}
		case constraintrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case constraintrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConstraintRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ConstraintRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConstraintRecord.
// Note that you need to call ConstraintRecord.Unwrap() before calling this method if this ConstraintRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConstraintRecord) Update() *ConstraintRecordUpdateOne {
	return NewConstraintRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConstraintRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConstraintRecord) Unwrap() *ConstraintRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConstraintRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConstraintRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ConstraintRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("necessity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Necessity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate)
	builder.WriteString(", ")
	builder.WriteString("end_date=")
	builder.WriteString(_m.EndDate)
	builder.WriteString(", ")
	builder.WriteString("days_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DaysOfWeek))
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("recurrence=")
	builder.WriteString(_m.Recurrence)
	builder.WriteString(", ")
	builder.WriteString("ttl_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.TTLDays))
	builder.WriteString(", ")
	builder.WriteString("applies_stages=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppliesStages))
	builder.WriteString(", ")
	builder.WriteString("applies_event_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppliesEventTypes))
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("rule_kind=")
	builder.WriteString(_m.RuleKind)
	builder.WriteString(", ")
	builder.WriteString("scalar_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScalarParams))
	builder.WriteString(", ")
	builder.WriteString("windows=")
	builder.WriteString(fmt.Sprintf("%v", _m.Windows))
	builder.WriteString(", ")
	builder.WriteString("supersedes_uids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupersedesUids))
	builder.WriteString(", ")
	builder.WriteString("identity_key=")
	builder.WriteString(_m.IdentityKey)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConstraintRecords is a parsable slice of ConstraintRecord.
type ConstraintRecords []*ConstraintRecord
