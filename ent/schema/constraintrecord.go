package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConstraintRecord holds the schema definition for durable,
// content-addressed preference constraints.
type ConstraintRecord struct {
	ent.Schema
}

// Fields of the ConstraintRecord.
func (ConstraintRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("uid").
			Unique().
			Immutable().
			Comment("Content hash over the canonical identity tuple"),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Enum("necessity").
			Values("must", "should"),
		field.Enum("status").
			Values("proposed", "locked", "declined").
			Default("proposed"),
		field.Enum("source").
			Values("user", "calendar", "system", "feedback").
			Default("user"),
		field.Float("confidence").
			Default(0.5),
		field.Enum("scope").
			Values("session", "profile", "datespan"),
		field.String("start_date").
			Optional().
			Comment("Local ISO date; open when empty"),
		field.String("end_date").
			Optional(),
		field.Strings("days_of_week").
			Optional(),
		field.String("timezone").
			Optional(),
		field.String("recurrence").
			Optional(),
		field.Int("ttl_days").
			Optional(),
		field.Strings("applies_stages").
			Optional(),
		field.Strings("applies_event_types").
			Optional(),
		field.Strings("topics").
			Optional(),
		field.Strings("tags").
			Optional(),
		field.String("rule_kind"),
		field.JSON("scalar_params", map[string]float64{}).
			Optional(),
		field.JSON("windows", []map[string]string{}).
			Optional(),
		field.Strings("supersedes_uids").
			Optional(),
		field.String("identity_key").
			Comment("Stable render of the identity tuple for equivalence lookups"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ConstraintRecord.
func (ConstraintRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("scope"),
		index.Fields("rule_kind"),
		index.Fields("identity_key"),
		index.Fields("updated_at"),
	}
}
