// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hugocool/fateforger/ent/constraintrecord"
	"github.com/hugocool/fateforger/ent/reflection"
	"github.com/hugocool/fateforger/ent/schema"
	"github.com/hugocool/fateforger/ent/syncrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	constraintrecordFields := schema.ConstraintRecord{}.Fields()
	_ = constraintrecordFields
	// constraintrecordDescConfidence is the schema descriptor for confidence field.
	constraintrecordDescConfidence := constraintrecordFields[6].Descriptor()
	// constraintrecord.DefaultConfidence holds the default value on creation for the confidence field.
	constraintrecord.DefaultConfidence = constraintrecordDescConfidence.Default.(float64)
	// constraintrecordDescCreatedAt is the schema descriptor for created_at field.
	constraintrecordDescCreatedAt := constraintrecordFields[23].Descriptor()
	// constraintrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	constraintrecord.DefaultCreatedAt = constraintrecordDescCreatedAt.Default.(func() time.Time)
	// constraintrecordDescUpdatedAt is the schema descriptor for updated_at field.
	constraintrecordDescUpdatedAt := constraintrecordFields[24].Descriptor()
	// constraintrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	constraintrecord.DefaultUpdatedAt = constraintrecordDescUpdatedAt.Default.(func() time.Time)
	// constraintrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	constraintrecord.UpdateDefaultUpdatedAt = constraintrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	reflectionFields := schema.Reflection{}.Fields()
	_ = reflectionFields
	// reflectionDescCreatedAt is the schema descriptor for created_at field.
	reflectionDescCreatedAt := reflectionFields[5].Descriptor()
	// reflection.DefaultCreatedAt holds the default value on creation for the created_at field.
	reflection.DefaultCreatedAt = reflectionDescCreatedAt.Default.(func() time.Time)
	syncrecordFields := schema.SyncRecord{}.Fields()
	_ = syncrecordFields
	// syncrecordDescCreatedAt is the schema descriptor for created_at field.
	syncrecordDescCreatedAt := syncrecordFields[7].Descriptor()
	// syncrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	syncrecord.DefaultCreatedAt = syncrecordDescCreatedAt.Default.(func() time.Time)
	// syncrecordDescUpdatedAt is the schema descriptor for updated_at field.
	syncrecordDescUpdatedAt := syncrecordFields[8].Descriptor()
	// syncrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	syncrecord.DefaultUpdatedAt = syncrecordDescUpdatedAt.Default.(func() time.Time)
	// syncrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	syncrecord.UpdateDefaultUpdatedAt = syncrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
