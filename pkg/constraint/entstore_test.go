package constraint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/constraint"
	testdb "github.com/hugocool/fateforger/test/database"
)

func entTestRecord() *constraint.Record {
	return &constraint.Record{
		Name:       "No calls after 18:00",
		Necessity:  constraint.NecessityMust,
		Status:     constraint.StatusProposed,
		Source:     constraint.SourceUser,
		Confidence: 0.8,
		Scope:      constraint.ScopeProfile,
		RuleKind:   "avoid_window",
		Windows:    []constraint.Window{{Kind: "avoid", Start: "18:00", End: "23:59"}},
		Topics:     []string{"calls"},
	}
}

func TestEntStore_UpsertAndQuery(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	store := constraint.NewEntStore(client.Client)

	rec, err := store.UpsertConstraint(ctx, entTestRecord(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, rec.UID)

	// Same identity upserts into the same row, topics merge additively.
	again := entTestRecord()
	again.Topics = []string{"meetings"}
	second, err := store.UpsertConstraint(ctx, again, &constraint.Event{SessionKey: "C1:T1", Trigger: "test"})
	require.NoError(t, err)
	assert.Equal(t, rec.UID, second.UID)
	assert.ElementsMatch(t, []string{"calls", "meetings"}, second.Topics)

	got, err := store.GetConstraint(ctx, rec.UID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "avoid_window", got.RuleKind)
	assert.Equal(t, []constraint.Window{{Kind: "avoid", Start: "18:00", End: "23:59"}}, got.Windows)

	missing, err := store.GetConstraint(ctx, "cr_missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	types, err := store.QueryTypes(ctx, "", nil)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "avoid_window", types[0].TypeID)
	assert.Equal(t, 1, types[0].Count)
}

func TestEntStore_FindEquivalentAndSupersede(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	store := constraint.NewEntStore(client.Client)

	old, err := store.UpsertConstraint(ctx, entTestRecord(), nil)
	require.NoError(t, err)

	equiv, err := store.FindEquivalentConstraint(ctx, entTestRecord())
	require.NoError(t, err)
	require.NotNil(t, equiv)
	assert.Equal(t, old.UID, equiv.UID)

	repl := entTestRecord()
	repl.Windows[0].Start = "17:00"
	repl.StartDate = "2026-03-01"
	neu, err := store.SupersedeConstraint(ctx, old.UID, repl, nil)
	require.NoError(t, err)
	assert.NotEqual(t, old.UID, neu.UID)
	assert.Contains(t, neu.SupersedesUIDs, old.UID)

	archived, err := store.GetConstraint(ctx, old.UID)
	require.NoError(t, err)
	assert.Equal(t, constraint.StatusDeclined, archived.Status)
	assert.Equal(t, "2026-03-01", archived.EndDate)
}

func TestEntStore_UpdateAndFilters(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	store := constraint.NewEntStore(client.Client)

	rec, err := store.UpsertConstraint(ctx, entTestRecord(), nil)
	require.NoError(t, err)

	locked := constraint.StatusLocked
	updated, err := store.UpdateConstraint(ctx, rec.UID, constraint.UpdatePatch{
		Status: &locked,
		Tags:   []string{"confirmed"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, constraint.StatusLocked, updated.Status)
	assert.Equal(t, []string{"confirmed"}, updated.Tags)

	got, err := store.QueryConstraints(ctx, constraint.Filters{
		StatusesAny:   []constraint.Status{constraint.StatusLocked},
		RequireActive: true,
		AsOf:          "2026-02-13",
	}, nil, []string{"confirmed"}, nil, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.UID, got[0].UID)

	none, err := store.QueryConstraints(ctx, constraint.Filters{
		StatusesAny: []constraint.Status{constraint.StatusDeclined},
	}, nil, nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEntStore_DedupeAndReflection(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	store := constraint.NewEntStore(client.Client)

	mk := func(uid string, status constraint.Status) {
		r := entTestRecord()
		r.UID = uid
		r.Status = status
		_, err := store.UpsertConstraint(ctx, r, nil)
		require.NoError(t, err)
	}
	mk("cr_aaa", constraint.StatusProposed)
	mk("cr_bbb", constraint.StatusLocked)

	res, err := store.DedupeConstraints(ctx, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Groups)
	assert.Equal(t, 1, res.Archived)

	keep, err := store.GetConstraint(ctx, "cr_bbb")
	require.NoError(t, err)
	assert.Equal(t, constraint.StatusLocked, keep.Status)
	assert.Contains(t, keep.SupersedesUIDs, "cr_aaa")

	require.NoError(t, store.AddReflection(ctx, &constraint.Reflection{
		SessionKey: "C1:T1",
		Stage:      "refine",
		Kind:       "session_summary",
		Payload:    map[string]any{"note": "ok"},
	}))
}
