package constraint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noCallsRecord() *Record {
	return &Record{
		Name:        "No calls after 17:00",
		Description: "Avoid meetings after 17:00.",
		Necessity:   NecessityMust,
		Status:      StatusProposed,
		Source:      SourceUser,
		Confidence:  0.9,
		Scope:       ScopeProfile,
		DaysOfWeek:  []Weekday{"MO", "TU"},
		RuleKind:    "avoid_window",
		Windows:     []Window{{Kind: "avoid", Start: "17:00", End: "23:59"}},
	}
}

func TestComputeUID_ContentAddressed(t *testing.T) {
	a := noCallsRecord()

	b := noCallsRecord()
	b.Description = "Keep afternoons clear."
	b.DaysOfWeek = []Weekday{"TU", "MO"}
	b.Topics = []string{"meetings"}
	b.Confidence = 0.4

	assert.Equal(t, ComputeUID(a), ComputeUID(b),
		"uid must ignore description wording, topics, confidence and day order")

	t.Run("identity change moves the uid", func(t *testing.T) {
		c := noCallsRecord()
		c.Windows[0].End = "22:00"
		assert.NotEqual(t, ComputeUID(a), ComputeUID(c))

		d := noCallsRecord()
		d.Scope = ScopeDatespan
		assert.NotEqual(t, ComputeUID(a), ComputeUID(d))
	})

	t.Run("name normalization", func(t *testing.T) {
		e := noCallsRecord()
		e.Name = "  no  CALLS after 17:00 "
		assert.Equal(t, ComputeUID(a), ComputeUID(e))
	})
}

func TestFindEquivalentConstraint(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	a, err := store.UpsertConstraint(ctx, noCallsRecord(), nil)
	require.NoError(t, err)

	b := noCallsRecord()
	b.Description = "Keep afternoons clear."
	b.DaysOfWeek = []Weekday{"TU", "MO"}

	found, err := store.FindEquivalentConstraint(ctx, b)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, a.UID, found.UID)

	t.Run("no equivalent for different identity", func(t *testing.T) {
		c := noCallsRecord()
		c.RuleKind = "prefer_window"
		found, err := store.FindEquivalentConstraint(ctx, c)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestBuildJSONPatch_Minimal(t *testing.T) {
	current := noCallsRecord()
	current.UID = ComputeUID(current)

	desc := "Protect the evening."
	status := StatusLocked
	merged := mergePatch(current, UpdatePatch{
		Description: &desc,
		Status:      &status,
		Topics:      []string{"evenings"},
	})

	patch, err := BuildJSONPatch(current, merged)
	require.NoError(t, err)

	assert.Contains(t, patch, "description")
	assert.Contains(t, patch, "status")
	assert.Contains(t, patch, "topics")
	assert.NotContains(t, patch, "name")
	assert.NotContains(t, patch, "rule_kind")
	assert.NotContains(t, patch, "uid")
}
