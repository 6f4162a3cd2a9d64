// Code generated by ent, DO NOT EDIT.

package syncrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hugocool/fateforger/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldContainsFold(FieldID, id))
}

// SessionKey applies equality check predicate on the "session_key" field. It's identical to SessionKeyEQ.
func SessionKey(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldSessionKey, v))
}

// CalendarID applies equality check predicate on the "calendar_id" field. It's identical to CalendarIDEQ.
func CalendarID(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldCalendarID, v))
}

// PlannedDate applies equality check predicate on the "planned_date" field. It's identical to PlannedDateEQ.
func PlannedDate(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldPlannedDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionKeyEQ applies the EQ predicate on the "session_key" field.
func SessionKeyEQ(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldSessionKey, v))
}

// SessionKeyNEQ applies the NEQ predicate on the "session_key" field.
func SessionKeyNEQ(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNEQ(FieldSessionKey, v))
}

// SessionKeyIn applies the In predicate on the "session_key" field.
func SessionKeyIn(vs ...string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldIn(FieldSessionKey, vs...))
}

// SessionKeyNotIn applies the NotIn predicate on the "session_key" field.
func SessionKeyNotIn(vs ...string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNotIn(FieldSessionKey, vs...))
}

// SessionKeyGT applies the GT predicate on the "session_key" field.
func SessionKeyGT(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGT(FieldSessionKey, v))
}

// SessionKeyGTE applies the GTE predicate on the "session_key" field.
func SessionKeyGTE(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGTE(FieldSessionKey, v))
}

// SessionKeyLT applies the LT predicate on the "session_key" field.
func SessionKeyLT(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLT(FieldSessionKey, v))
}

// SessionKeyLTE applies the LTE predicate on the "session_key" field.
func SessionKeyLTE(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLTE(FieldSessionKey, v))
}

// SessionKeyContains applies the Contains predicate on the "session_key" field.
func SessionKeyContains(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldContains(FieldSessionKey, v))
}

// SessionKeyHasPrefix applies the HasPrefix predicate on the "session_key" field.
func SessionKeyHasPrefix(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldHasPrefix(FieldSessionKey, v))
}

// SessionKeyHasSuffix applies the HasSuffix predicate on the "session_key" field.
func SessionKeyHasSuffix(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldHasSuffix(FieldSessionKey, v))
}

// SessionKeyEqualFold applies the EqualFold predicate on the "session_key" field.
func SessionKeyEqualFold(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEqualFold(FieldSessionKey, v))
}

// SessionKeyContainsFold applies the ContainsFold predicate on the "session_key" field.
func SessionKeyContainsFold(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldContainsFold(FieldSessionKey, v))
}

// CalendarIDEQ applies the EQ predicate on the "calendar_id" field.
func CalendarIDEQ(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldCalendarID, v))
}

// CalendarIDNEQ applies the NEQ predicate on the "calendar_id" field.
func CalendarIDNEQ(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNEQ(FieldCalendarID, v))
}

// CalendarIDIn applies the In predicate on the "calendar_id" field.
func CalendarIDIn(vs ...string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldIn(FieldCalendarID, vs...))
}

// CalendarIDNotIn applies the NotIn predicate on the "calendar_id" field.
func CalendarIDNotIn(vs ...string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNotIn(FieldCalendarID, vs...))
}

// CalendarIDGT applies the GT predicate on the "calendar_id" field.
func CalendarIDGT(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGT(FieldCalendarID, v))
}

// CalendarIDGTE applies the GTE predicate on the "calendar_id" field.
func CalendarIDGTE(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGTE(FieldCalendarID, v))
}

// CalendarIDLT applies the LT predicate on the "calendar_id" field.
func CalendarIDLT(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLT(FieldCalendarID, v))
}

// CalendarIDLTE applies the LTE predicate on the "calendar_id" field.
func CalendarIDLTE(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLTE(FieldCalendarID, v))
}

// CalendarIDContains applies the Contains predicate on the "calendar_id" field.
func CalendarIDContains(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldContains(FieldCalendarID, v))
}

// CalendarIDHasPrefix applies the HasPrefix predicate on the "calendar_id" field.
func CalendarIDHasPrefix(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldHasPrefix(FieldCalendarID, v))
}

// CalendarIDHasSuffix applies the HasSuffix predicate on the "calendar_id" field.
func CalendarIDHasSuffix(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldHasSuffix(FieldCalendarID, v))
}

// CalendarIDEqualFold applies the EqualFold predicate on the "calendar_id" field.
func CalendarIDEqualFold(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEqualFold(FieldCalendarID, v))
}

// CalendarIDContainsFold applies the ContainsFold predicate on the "calendar_id" field.
func CalendarIDContainsFold(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldContainsFold(FieldCalendarID, v))
}

// PlannedDateEQ applies the EQ predicate on the "planned_date" field.
func PlannedDateEQ(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldPlannedDate, v))
}

// PlannedDateNEQ applies the NEQ predicate on the "planned_date" field.
func PlannedDateNEQ(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNEQ(FieldPlannedDate, v))
}

// PlannedDateIn applies the In predicate on the "planned_date" field.
func PlannedDateIn(vs ...string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldIn(FieldPlannedDate, vs...))
}

// PlannedDateNotIn applies the NotIn predicate on the "planned_date" field.
func PlannedDateNotIn(vs ...string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNotIn(FieldPlannedDate, vs...))
}

// PlannedDateGT applies the GT predicate on the "planned_date" field.
func PlannedDateGT(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGT(FieldPlannedDate, v))
}

// PlannedDateGTE applies the GTE predicate on the "planned_date" field.
func PlannedDateGTE(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGTE(FieldPlannedDate, v))
}

// PlannedDateLT applies the LT predicate on the "planned_date" field.
func PlannedDateLT(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLT(FieldPlannedDate, v))
}

// PlannedDateLTE applies the LTE predicate on the "planned_date" field.
func PlannedDateLTE(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLTE(FieldPlannedDate, v))
}

// PlannedDateContains applies the Contains predicate on the "planned_date" field.
func PlannedDateContains(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldContains(FieldPlannedDate, v))
}

// PlannedDateHasPrefix applies the HasPrefix predicate on the "planned_date" field.
func PlannedDateHasPrefix(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldHasPrefix(FieldPlannedDate, v))
}

// PlannedDateHasSuffix applies the HasSuffix predicate on the "planned_date" field.
func PlannedDateHasSuffix(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldHasSuffix(FieldPlannedDate, v))
}

// PlannedDateEqualFold applies the EqualFold predicate on the "planned_date" field.
func PlannedDateEqualFold(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEqualFold(FieldPlannedDate, v))
}

// PlannedDateContainsFold applies the ContainsFold predicate on the "planned_date" field.
func PlannedDateContainsFold(v string) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldContainsFold(FieldPlannedDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultsIsNil applies the IsNil predicate on the "results" field.
func ResultsIsNil() predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldIsNull(FieldResults))
}

// ResultsNotNil applies the NotNil predicate on the "results" field.
func ResultsNotNil() predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNotNull(FieldResults))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SyncRecord {
	return predicate.SyncRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyncRecord) predicate.SyncRecord {
	return predicate.SyncRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyncRecord) predicate.SyncRecord {
	return predicate.SyncRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyncRecord) predicate.SyncRecord {
	return predicate.SyncRecord(sql.NotPredicates(p))
}
