package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncRecord holds the schema definition for persisted calendar sync
// transactions (audit trail; the live undo copy stays on the session).
type SyncRecord struct {
	ent.Schema
}

// Fields of the SyncRecord.
func (SyncRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transaction_id").
			Unique().
			Immutable(),
		field.String("session_key"),
		field.String("calendar_id"),
		field.String("planned_date").
			Comment("Local ISO date the transaction targets"),
		field.Enum("status").
			Values("pending", "committed", "partial", "partial_halted", "undone", "undo_partial").
			Default("pending"),
		field.JSON("ops", []map[string]any{}).
			Comment("Ordered ops with forward/reverse payloads"),
		field.JSON("results", []map[string]any{}).
			Optional().
			Comment("Per-op results parallel to ops"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SyncRecord.
func (SyncRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_key"),
		index.Fields("planned_date"),
		index.Fields("status"),
	}
}
