// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConstraintRecord is the predicate function for constraintrecord builders.
type ConstraintRecord func(*sql.Selector)

// Reflection is the predicate function for reflection builders.
type Reflection func(*sql.Selector)

// SyncRecord is the predicate function for syncrecord builders.
type SyncRecord func(*sql.Selector)
