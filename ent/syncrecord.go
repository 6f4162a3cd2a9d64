// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hugocool/fateforger/ent/syncrecord"
)

// SyncRecord is the model entity for the SyncRecord schema.
type SyncRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionKey holds the value of the "session_key" field.
	SessionKey string `json:"session_key,omitempty"`
	// CalendarID holds the value of the "calendar_id" field.
	CalendarID string `json:"calendar_id,omitempty"`
	// Local ISO date the transaction targets
	PlannedDate string `json:"planned_date,omitempty"`
	// Status holds the value of the "status" field.
	Status syncrecord.Status `json:"status,omitempty"`
	// Ordered ops with forward/reverse payloads
	Ops []map[string]interface{} `json:"ops,omitempty"`
	// Per-op results parallel to ops
	Results []map[string]interface{} `json:"results,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncrecord.FieldOps, syncrecord.FieldResults:
			values[i] = new([]byte)
		case syncrecord.FieldID, syncrecord.FieldSessionKey, syncrecord.FieldCalendarID, syncrecord.FieldPlannedDate, syncrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case syncrecord.FieldCreatedAt, syncrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncRecord fields.
func (_m *SyncRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case syncrecord.FieldSessionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_key", values[i])
			} else if value.Valid {
				_m.SessionKey = value.String
			}
		case syncrecord.FieldCalendarID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_id", values[i])
			} else if value.Valid {
				_m.CalendarID = value.String
			}
		case syncrecord.FieldPlannedDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field planned_date", values[i])
			} else if value.Valid {
				_m.PlannedDate = value.String
			}
		case syncrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = syncrecord.Status(value.String)
			}
		case syncrecord.FieldOps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ops", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Ops); err != nil {
					return fmt.Errorf("unmarshal field ops: %w", err)
				}
			}
		case syncrecord.FieldResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Results); err != nil {
					return fmt.Errorf("unmarshal field results: %w", err)
				}
			}
		case syncrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case syncrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SyncRecord.
// This includes values selected through modifiers, order, etc.
func (_m *SyncRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SyncRecord.
// Note that you need to call SyncRecord.Unwrap() before calling this method if this SyncRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyncRecord) Update() *SyncRecordUpdateOne {
	return NewSyncRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyncRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyncRecord) Unwrap() *SyncRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyncRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SyncRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_key=")
	builder.WriteString(_m.SessionKey)
	builder.WriteString(", ")
	builder.WriteString("calendar_id=")
	builder.WriteString(_m.CalendarID)
	builder.WriteString(", ")
	builder.WriteString("planned_date=")
	builder.WriteString(_m.PlannedDate)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("ops=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ops))
	builder.WriteString(", ")
	builder.WriteString("results=")
	builder.WriteString(fmt.Sprintf("%v", _m.Results))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SyncRecords is a parsable slice of SyncRecord.
type SyncRecords []*SyncRecord
