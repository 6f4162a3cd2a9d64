// Code generated by ent, DO NOT EDIT.

package constraintrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the constraintrecord type in the database.
	Label = "constraint_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "uid"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldNecessity holds the string denoting the necessity field in the database.
	FieldNecessity = "necessity"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldDaysOfWeek holds the string denoting the days_of_week field in the database.
	FieldDaysOfWeek = "days_of_week"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldRecurrence holds the string denoting the recurrence field in the database.
	FieldRecurrence = "recurrence"
	// FieldTTLDays holds the string denoting the ttl_days field in the database.
	FieldTTLDays = "ttl_days"
	// FieldAppliesStages holds the string denoting the applies_stages field in the database.
	FieldAppliesStages = "applies_stages"
	// FieldAppliesEventTypes holds the string denoting the applies_event_types field in the database.
	FieldAppliesEventTypes = "applies_event_types"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldRuleKind holds the string denoting the rule_kind field in the database.
	FieldRuleKind = "rule_kind"
	// FieldScalarParams holds the string denoting the scalar_params field in the database.
	FieldScalarParams = "scalar_params"
	// FieldWindows holds the string denoting the windows field in the database.
	FieldWindows = "windows"
	// FieldSupersedesUids holds the string denoting the supersedes_uids field in the database.
	FieldSupersedesUids = "supersedes_uids"
	// FieldIdentityKey holds the string denoting the identity_key field in the database.
	FieldIdentityKey = "identity_key"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the constraintrecord in the database.
	Table = "constraint_records"
)

// Columns holds all SQL columns for constraintrecord fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldNecessity,
	FieldStatus,
	FieldSource,
	FieldConfidence,
	FieldScope,
	FieldStartDate,
	FieldEndDate,
	FieldDaysOfWeek,
	FieldTimezone,
	FieldRecurrence,
	FieldTTLDays,
	FieldAppliesStages,
	FieldAppliesEventTypes,
	FieldTopics,
	FieldTags,
	FieldRuleKind,
	FieldScalarParams,
	FieldWindows,
	FieldSupersedesUids,
	FieldIdentityKey,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Necessity defines the type for the "necessity" enum field.
type Necessity string

// Necessity values.
const (
	NecessityMust   Necessity = "must"
	NecessityShould Necessity = "should"
)

func (n Necessity) String() string {
	return string(n)
}

// NecessityValidator is a validator for the "necessity" field enum values. It is called by the builders before save.
func NecessityValidator(n Necessity) error {
	switch n {
	case NecessityMust, NecessityShould:
		return nil
	default:
		return fmt.Errorf("constraintrecord: invalid enum value for necessity field: %q", n)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusProposed is the default value of the Status enum.
const DefaultStatus = StatusProposed

// Status values.
const (
	StatusProposed Status = "proposed"
	StatusLocked   Status = "locked"
	StatusDeclined Status = "declined"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusProposed, StatusLocked, StatusDeclined:
		return nil
	default:
		return fmt.Errorf("constraintrecord: invalid enum value for status field: %q", s)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// SourceUser is the default value of the Source enum.
const DefaultSource = SourceUser

// Source values.
const (
	SourceUser     Source = "user"
	SourceCalendar Source = "calendar"
	SourceSystem   Source = "system"
	SourceFeedback Source = "feedback"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceUser, SourceCalendar, SourceSystem, SourceFeedback:
		return nil
	default:
		return fmt.Errorf("constraintrecord: invalid enum value for source field: %q", s)
	}
}

// Scope defines the type for the "scope" enum field.
type Scope string

// Scope values.
const (
	ScopeSession  Scope = "session"
	ScopeProfile  Scope = "profile"
	ScopeDatespan Scope = "datespan"
)

func (s Scope) String() string {
	return string(s)
}

// ScopeValidator is a validator for the "scope" field enum values. It is called by the builders before save.
func ScopeValidator(s Scope) error {
	switch s {
	case ScopeSession, ScopeProfile, ScopeDatespan:
		return nil
	default:
		return fmt.Errorf("constraintrecord: invalid enum value for scope field: %q", s)
	}
}

// OrderOption defines the ordering options for the ConstraintRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByNecessity orders the results by the necessity field.
func ByNecessity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNecessity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByRecurrence orders the results by the recurrence field.
func ByRecurrence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecurrence, opts...).ToFunc()
}

// ByTTLDays orders the results by the ttl_days field.
func ByTTLDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTTLDays, opts...).ToFunc()
}

// ByRuleKind orders the results by the rule_kind field.
func ByRuleKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleKind, opts...).ToFunc()
}

// ByIdentityKey orders the results by the identity_key field.
func ByIdentityKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentityKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
