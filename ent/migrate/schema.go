// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConstraintRecordsColumns holds the columns for the "constraint_records" table.
	ConstraintRecordsColumns = []*schema.Column{
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "necessity", Type: field.TypeEnum, Enums: []string{"must", "should"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"proposed", "locked", "declined"}, Default: "proposed"},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"user", "calendar", "system", "feedback"}, Default: "user"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0.5},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"session", "profile", "datespan"}},
		{Name: "start_date", Type: field.TypeString, Nullable: true},
		{Name: "end_date", Type: field.TypeString, Nullable: true},
		{Name: "days_of_week", Type: field.TypeJSON, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Nullable: true},
		{Name: "recurrence", Type: field.TypeString, Nullable: true},
		{Name: "ttl_days", Type: field.TypeInt, Nullable: true},
		{Name: "applies_stages", Type: field.TypeJSON, Nullable: true},
		{Name: "applies_event_types", Type: field.TypeJSON, Nullable: true},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "rule_kind", Type: field.TypeString},
		{Name: "scalar_params", Type: field.TypeJSON, Nullable: true},
		{Name: "windows", Type: field.TypeJSON, Nullable: true},
		{Name: "supersedes_uids", Type: field.TypeJSON, Nullable: true},
		{Name: "identity_key", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConstraintRecordsTable holds the schema information for the "constraint_records" table.
	ConstraintRecordsTable = &schema.Table{
		Name:       "constraint_records",
		Columns:    ConstraintRecordsColumns,
		PrimaryKey: []*schema.Column{ConstraintRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "constraintrecord_status",
				Unique:  false,
				Columns: []*schema.Column{ConstraintRecordsColumns[4]},
			},
			{
				Name:    "constraintrecord_scope",
				Unique:  false,
				Columns: []*schema.Column{ConstraintRecordsColumns[7]},
			},
			{
				Name:    "constraintrecord_rule_kind",
				Unique:  false,
				Columns: []*schema.Column{ConstraintRecordsColumns[18]},
			},
			{
				Name:    "constraintrecord_identity_key",
				Unique:  false,
				Columns: []*schema.Column{ConstraintRecordsColumns[22]},
			},
			{
				Name:    "constraintrecord_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ConstraintRecordsColumns[24]},
			},
		},
	}
	// ReflectionsColumns holds the columns for the "reflections" table.
	ReflectionsColumns = []*schema.Column{
		{Name: "reflection_id", Type: field.TypeString, Unique: true},
		{Name: "session_key", Type: field.TypeString, Nullable: true},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReflectionsTable holds the schema information for the "reflections" table.
	ReflectionsTable = &schema.Table{
		Name:       "reflections",
		Columns:    ReflectionsColumns,
		PrimaryKey: []*schema.Column{ReflectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reflection_session_key",
				Unique:  false,
				Columns: []*schema.Column{ReflectionsColumns[1]},
			},
			{
				Name:    "reflection_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReflectionsColumns[5]},
			},
		},
	}
	// SyncRecordsColumns holds the columns for the "sync_records" table.
	SyncRecordsColumns = []*schema.Column{
		{Name: "transaction_id", Type: field.TypeString, Unique: true},
		{Name: "session_key", Type: field.TypeString},
		{Name: "calendar_id", Type: field.TypeString},
		{Name: "planned_date", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "committed", "partial", "partial_halted", "undone", "undo_partial"}, Default: "pending"},
		{Name: "ops", Type: field.TypeJSON},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SyncRecordsTable holds the schema information for the "sync_records" table.
	SyncRecordsTable = &schema.Table{
		Name:       "sync_records",
		Columns:    SyncRecordsColumns,
		PrimaryKey: []*schema.Column{SyncRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncrecord_session_key",
				Unique:  false,
				Columns: []*schema.Column{SyncRecordsColumns[1]},
			},
			{
				Name:    "syncrecord_planned_date",
				Unique:  false,
				Columns: []*schema.Column{SyncRecordsColumns[3]},
			},
			{
				Name:    "syncrecord_status",
				Unique:  false,
				Columns: []*schema.Column{SyncRecordsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConstraintRecordsTable,
		ReflectionsTable,
		SyncRecordsTable,
	}
)

func init() {
}
