// Code generated by ent, DO NOT EDIT.

package syncrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the syncrecord type in the database.
	Label = "sync_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "transaction_id"
	// FieldSessionKey holds the string denoting the session_key field in the database.
	FieldSessionKey = "session_key"
	// FieldCalendarID holds the string denoting the calendar_id field in the database.
	FieldCalendarID = "calendar_id"
	// FieldPlannedDate holds the string denoting the planned_date field in the database.
	FieldPlannedDate = "planned_date"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOps holds the string denoting the ops field in the database.
	FieldOps = "ops"
	// FieldResults holds the string denoting the results field in the database.
	FieldResults = "results"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the syncrecord in the database.
	Table = "sync_records"
)

// Columns holds all SQL columns for syncrecord fields.
var Columns = []string{
	FieldID,
	FieldSessionKey,
	FieldCalendarID,
	FieldPlannedDate,
	FieldStatus,
	FieldOps,
	FieldResults,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending       Status = "pending"
	StatusCommitted     Status = "committed"
	StatusPartial       Status = "partial"
	StatusPartialHalted Status = "partial_halted"
	StatusUndone        Status = "undone"
	StatusUndoPartial   Status = "undo_partial"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusCommitted, StatusPartial, StatusPartialHalted, StatusUndone, StatusUndoPartial:
		return nil
	default:
		return fmt.Errorf("syncrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SyncRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionKey orders the results by the session_key field.
func BySessionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionKey, opts...).ToFunc()
}

// ByCalendarID orders the results by the calendar_id field.
func ByCalendarID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalendarID, opts...).ToFunc()
}

// ByPlannedDate orders the results by the planned_date field.
func ByPlannedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlannedDate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
