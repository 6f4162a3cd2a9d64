// Code generated by ent, DO NOT EDIT.

package constraintrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hugocool/fateforger/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldDescription, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldConfidence, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldEndDate, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldTimezone, v))
}

// Recurrence applies equality check predicate on the "recurrence" field. It's identical to RecurrenceEQ.
func Recurrence(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldRecurrence, v))
}

// TTLDays applies equality check predicate on the "ttl_days" field. It's identical to TTLDaysEQ.
func TTLDays(v int) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldTTLDays, v))
}

// RuleKind applies equality check predicate on the "rule_kind" field. It's identical to RuleKindEQ.
func RuleKind(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldRuleKind, v))
}

// IdentityKey applies equality check predicate on the "identity_key" field. It's identical to IdentityKeyEQ.
func IdentityKey(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldIdentityKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContainsFold(FieldDescription, v))
}

// NecessityEQ applies the EQ predicate on the "necessity" field.
func NecessityEQ(v Necessity) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldNecessity, v))
}

// NecessityNEQ applies the NEQ predicate on the "necessity" field.
func NecessityNEQ(v Necessity) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldNecessity, v))
}

// NecessityIn applies the In predicate on the "necessity" field.
func NecessityIn(vs ...Necessity) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldNecessity, vs...))
}

// NecessityNotIn applies the NotIn predicate on the "necessity" field.
func NecessityNotIn(vs ...Necessity) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldNecessity, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldSource, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldConfidence, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v Scope) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v Scope) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...Scope) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...Scope) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldScope, vs...))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldStartDate, v))
}

// StartDateContains applies the Contains predicate on the "start_date" field.
func StartDateContains(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContains(FieldStartDate, v))
}

// StartDateHasPrefix applies the HasPrefix predicate on the "start_date" field.
func StartDateHasPrefix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasPrefix(FieldStartDate, v))
}

// StartDateHasSuffix applies the HasSuffix predicate on the "start_date" field.
func StartDateHasSuffix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasSuffix(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldStartDate))
}

// StartDateEqualFold applies the EqualFold predicate on the "start_date" field.
func StartDateEqualFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEqualFold(FieldStartDate, v))
}

// StartDateContainsFold applies the ContainsFold predicate on the "start_date" field.
func StartDateContainsFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContainsFold(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldEndDate, v))
}

// EndDateContains applies the Contains predicate on the "end_date" field.
func EndDateContains(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContains(FieldEndDate, v))
}

// EndDateHasPrefix applies the HasPrefix predicate on the "end_date" field.
func EndDateHasPrefix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasPrefix(FieldEndDate, v))
}

// EndDateHasSuffix applies the HasSuffix predicate on the "end_date" field.
func EndDateHasSuffix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasSuffix(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldEndDate))
}

// EndDateEqualFold applies the EqualFold predicate on the "end_date" field.
func EndDateEqualFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEqualFold(FieldEndDate, v))
}

// EndDateContainsFold applies the ContainsFold predicate on the "end_date" field.
func EndDateContainsFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContainsFold(FieldEndDate, v))
}

// DaysOfWeekIsNil applies the IsNil predicate on the "days_of_week" field.
func DaysOfWeekIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldDaysOfWeek))
}

// DaysOfWeekNotNil applies the NotNil predicate on the "days_of_week" field.
func DaysOfWeekNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldDaysOfWeek))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneIsNil applies the IsNil predicate on the "timezone" field.
func TimezoneIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldTimezone))
}

// TimezoneNotNil applies the NotNil predicate on the "timezone" field.
func TimezoneNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldTimezone))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContainsFold(FieldTimezone, v))
}

// RecurrenceEQ applies the EQ predicate on the "recurrence" field.
func RecurrenceEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldRecurrence, v))
}

// RecurrenceNEQ applies the NEQ predicate on the "recurrence" field.
func RecurrenceNEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldRecurrence, v))
}

// RecurrenceIn applies the In predicate on the "recurrence" field.
func RecurrenceIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldRecurrence, vs...))
}

// RecurrenceNotIn applies the NotIn predicate on the "recurrence" field.
func RecurrenceNotIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldRecurrence, vs...))
}

// RecurrenceGT applies the GT predicate on the "recurrence" field.
func RecurrenceGT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldRecurrence, v))
}

// RecurrenceGTE applies the GTE predicate on the "recurrence" field.
func RecurrenceGTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldRecurrence, v))
}

// RecurrenceLT applies the LT predicate on the "recurrence" field.
func RecurrenceLT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldRecurrence, v))
}

// RecurrenceLTE applies the LTE predicate on the "recurrence" field.
func RecurrenceLTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldRecurrence, v))
}

// RecurrenceContains applies the Contains predicate on the "recurrence" field.
func RecurrenceContains(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContains(FieldRecurrence, v))
}

// RecurrenceHasPrefix applies the HasPrefix predicate on the "recurrence" field.
func RecurrenceHasPrefix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasPrefix(FieldRecurrence, v))
}

// RecurrenceHasSuffix applies the HasSuffix predicate on the "recurrence" field.
func RecurrenceHasSuffix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasSuffix(FieldRecurrence, v))
}

// RecurrenceIsNil applies the IsNil predicate on the "recurrence" field.
func RecurrenceIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldRecurrence))
}

// RecurrenceNotNil applies the NotNil predicate on the "recurrence" field.
func RecurrenceNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldRecurrence))
}

// RecurrenceEqualFold applies the EqualFold predicate on the "recurrence" field.
func RecurrenceEqualFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEqualFold(FieldRecurrence, v))
}

// RecurrenceContainsFold applies the ContainsFold predicate on the "recurrence" field.
func RecurrenceContainsFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContainsFold(FieldRecurrence, v))
}

// TTLDaysEQ applies the EQ predicate on the "ttl_days" field.
func TTLDaysEQ(v int) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldTTLDays, v))
}

// TTLDaysNEQ applies the NEQ predicate on the "ttl_days" field.
func TTLDaysNEQ(v int) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldTTLDays, v))
}

// TTLDaysIn applies the In predicate on the "ttl_days" field.
func TTLDaysIn(vs ...int) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldTTLDays, vs...))
}

// TTLDaysNotIn applies the NotIn predicate on the "ttl_days" field.
func TTLDaysNotIn(vs ...int) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldTTLDays, vs...))
}

// TTLDaysGT applies the GT predicate on the "ttl_days" field.
func TTLDaysGT(v int) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldTTLDays, v))
}

// TTLDaysGTE applies the GTE predicate on the "ttl_days" field.
func TTLDaysGTE(v int) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldTTLDays, v))
}

// TTLDaysLT applies the LT predicate on the "ttl_days" field.
func TTLDaysLT(v int) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldTTLDays, v))
}

// TTLDaysLTE applies the LTE predicate on the "ttl_days" field.
func TTLDaysLTE(v int) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldTTLDays, v))
}

// TTLDaysIsNil applies the IsNil predicate on the "ttl_days" field.
func TTLDaysIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldTTLDays))
}

// TTLDaysNotNil applies the NotNil predicate on the "ttl_days" field.
func TTLDaysNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldTTLDays))
}

// AppliesStagesIsNil applies the IsNil predicate on the "applies_stages" field.
func AppliesStagesIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldAppliesStages))
}

// AppliesStagesNotNil applies the NotNil predicate on the "applies_stages" field.
func AppliesStagesNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldAppliesStages))
}

// AppliesEventTypesIsNil applies the IsNil predicate on the "applies_event_types" field.
func AppliesEventTypesIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldAppliesEventTypes))
}

// AppliesEventTypesNotNil applies the NotNil predicate on the "applies_event_types" field.
func AppliesEventTypesNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldAppliesEventTypes))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldTopics))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldTags))
}

// RuleKindEQ applies the EQ predicate on the "rule_kind" field.
func RuleKindEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldRuleKind, v))
}

// RuleKindNEQ applies the NEQ predicate on the "rule_kind" field.
func RuleKindNEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldRuleKind, v))
}

// RuleKindIn applies the In predicate on the "rule_kind" field.
func RuleKindIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldRuleKind, vs...))
}

// RuleKindNotIn applies the NotIn predicate on the "rule_kind" field.
func RuleKindNotIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldRuleKind, vs...))
}

// RuleKindGT applies the GT predicate on the "rule_kind" field.
func RuleKindGT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldRuleKind, v))
}

// RuleKindGTE applies the GTE predicate on the "rule_kind" field.
func RuleKindGTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldRuleKind, v))
}

// RuleKindLT applies the LT predicate on the "rule_kind" field.
func RuleKindLT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldRuleKind, v))
}

// RuleKindLTE applies the LTE predicate on the "rule_kind" field.
func RuleKindLTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldRuleKind, v))
}

// RuleKindContains applies the Contains predicate on the "rule_kind" field.
func RuleKindContains(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContains(FieldRuleKind, v))
}

// RuleKindHasPrefix applies the HasPrefix predicate on the "rule_kind" field.
func RuleKindHasPrefix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasPrefix(FieldRuleKind, v))
}

// RuleKindHasSuffix applies the HasSuffix predicate on the "rule_kind" field.
func RuleKindHasSuffix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasSuffix(FieldRuleKind, v))
}

// RuleKindEqualFold applies the EqualFold predicate on the "rule_kind" field.
func RuleKindEqualFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEqualFold(FieldRuleKind, v))
}

// RuleKindContainsFold applies the ContainsFold predicate on the "rule_kind" field.
func RuleKindContainsFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContainsFold(FieldRuleKind, v))
}

// ScalarParamsIsNil applies the IsNil predicate on the "scalar_params" field.
func ScalarParamsIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldScalarParams))
}

// ScalarParamsNotNil applies the NotNil predicate on the "scalar_params" field.
func ScalarParamsNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldScalarParams))
}

// WindowsIsNil applies the IsNil predicate on the "windows" field.
func WindowsIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldWindows))
}

// WindowsNotNil applies the NotNil predicate on the "windows" field.
func WindowsNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldWindows))
}

// SupersedesUidsIsNil applies the IsNil predicate on the "supersedes_uids" field.
func SupersedesUidsIsNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIsNull(FieldSupersedesUids))
}

// SupersedesUidsNotNil applies the NotNil predicate on the "supersedes_uids" field.
func SupersedesUidsNotNil() predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotNull(FieldSupersedesUids))
}

// IdentityKeyEQ applies the EQ predicate on the "identity_key" field.
func IdentityKeyEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldIdentityKey, v))
}

// IdentityKeyNEQ applies the NEQ predicate on the "identity_key" field.
func IdentityKeyNEQ(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldIdentityKey, v))
}

// IdentityKeyIn applies the In predicate on the "identity_key" field.
func IdentityKeyIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldIdentityKey, vs...))
}

// IdentityKeyNotIn applies the NotIn predicate on the "identity_key" field.
func IdentityKeyNotIn(vs ...string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldIdentityKey, vs...))
}

// IdentityKeyGT applies the GT predicate on the "identity_key" field.
func IdentityKeyGT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldIdentityKey, v))
}

// IdentityKeyGTE applies the GTE predicate on the "identity_key" field.
func IdentityKeyGTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldIdentityKey, v))
}

// IdentityKeyLT applies the LT predicate on the "identity_key" field.
func IdentityKeyLT(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldIdentityKey, v))
}

// IdentityKeyLTE applies the LTE predicate on the "identity_key" field.
func IdentityKeyLTE(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldIdentityKey, v))
}

// IdentityKeyContains applies the Contains predicate on the "identity_key" field.
func IdentityKeyContains(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContains(FieldIdentityKey, v))
}

// IdentityKeyHasPrefix applies the HasPrefix predicate on the "identity_key" field.
func IdentityKeyHasPrefix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasPrefix(FieldIdentityKey, v))
}

// IdentityKeyHasSuffix applies the HasSuffix predicate on the "identity_key" field.
func IdentityKeyHasSuffix(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldHasSuffix(FieldIdentityKey, v))
}

// IdentityKeyEqualFold applies the EqualFold predicate on the "identity_key" field.
func IdentityKeyEqualFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEqualFold(FieldIdentityKey, v))
}

// IdentityKeyContainsFold applies the ContainsFold predicate on the "identity_key" field.
func IdentityKeyContainsFold(v string) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldContainsFold(FieldIdentityKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConstraintRecord) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConstraintRecord) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConstraintRecord) predicate.ConstraintRecord {
	return predicate.ConstraintRecord(sql.NotPredicates(p))
}
