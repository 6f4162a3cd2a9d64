package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reflection holds the schema definition for the durable reflection
// log (best-effort, append-only).
type Reflection struct {
	ent.Schema
}

// Fields of the Reflection.
func (Reflection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("reflection_id").
			Unique().
			Immutable(),
		field.String("session_key").
			Optional(),
		field.String("stage").
			Optional(),
		field.String("kind"),
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Reflection.
func (Reflection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_key"),
		index.Fields("created_at"),
	}
}
