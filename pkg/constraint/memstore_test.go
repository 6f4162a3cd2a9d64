package constraint

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

func sleepTargetRecord() *Record {
	return &Record{
		Name:        "Sleep 23:00 to 07:00",
		Necessity:   NecessityShould,
		Status:      StatusLocked,
		Source:      SourceUser,
		Confidence:  0.95,
		Scope:       ScopeProfile,
		RuleKind:    "sleep_window",
		Windows:     []Window{{Kind: "sleep", Start: "23:00", End: "07:00"}},
		Topics:      []string{"startup_prefetch"},
		AppliesStages: []models.Stage{
			models.StageCollectConstraints,
		},
		AppliesEventTypes: []timebox.EventType{timebox.EventRegen},
	}
}

func TestUpsertConstraint_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	first, err := store.UpsertConstraint(ctx, noCallsRecord(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, first.UID)

	again := noCallsRecord()
	again.Topics = []string{"calls"}
	second, err := store.UpsertConstraint(ctx, again, &Event{SessionKey: "C1:T1", Trigger: "test"})
	require.NoError(t, err)

	assert.Equal(t, first.UID, second.UID)
	assert.Equal(t, []string{"calls"}, second.Topics, "topics merge additively")
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	got, err := store.GetConstraint(ctx, first.UID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second.Topics, got.Topics)
}

func TestUpsertConstraint_Supersedes(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	old, err := store.UpsertConstraint(ctx, noCallsRecord(), nil)
	require.NoError(t, err)

	repl := noCallsRecord()
	repl.Windows[0].End = "21:00"
	repl.StartDate = "2026-03-01"
	repl.SupersedesUIDs = []string{old.UID}

	neu, err := store.UpsertConstraint(ctx, repl, nil)
	require.NoError(t, err)
	assert.NotEqual(t, old.UID, neu.UID)

	archived, err := store.GetConstraint(ctx, old.UID)
	require.NoError(t, err)
	assert.Equal(t, StatusDeclined, archived.Status)
	assert.Equal(t, "2026-03-01", archived.EndDate)
}

func TestQueryConstraints_Filters(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	sleep, err := store.UpsertConstraint(ctx, sleepTargetRecord(), nil)
	require.NoError(t, err)

	expired := noCallsRecord()
	expired.EndDate = "2026-01-01"
	_, err = store.UpsertConstraint(ctx, expired, nil)
	require.NoError(t, err)

	t.Run("require_active drops expired records", func(t *testing.T) {
		got, err := store.QueryConstraints(ctx, Filters{
			AsOf:          "2026-02-13",
			StatusesAny:   []Status{StatusLocked, StatusProposed},
			RequireActive: true,
		}, nil, nil, nil, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, sleep.UID, got[0].UID)
	})

	t.Run("scope and tag filter", func(t *testing.T) {
		got, err := store.QueryConstraints(ctx, Filters{
			ScopesAny: []Scope{ScopeProfile, ScopeDatespan},
		}, nil, []string{"startup_prefetch"}, nil, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, sleep.UID, got[0].UID)
	})

	t.Run("stage routing keeps unrouted records", func(t *testing.T) {
		unrouted := noCallsRecord()
		unrouted.AppliesStages = nil
		unrouted.Name = "Unrouted rule"
		_, err := store.UpsertConstraint(ctx, unrouted, nil)
		require.NoError(t, err)

		got, err := store.QueryConstraints(ctx, Filters{
			Stage: models.StageRefine,
		}, nil, nil, nil, 0)
		require.NoError(t, err)
		// sleepTargetRecord is routed to collect only; unrouted + expired pass.
		for _, r := range got {
			assert.NotEqual(t, sleep.UID, r.UID)
		}
	})

	t.Run("status sort descends", func(t *testing.T) {
		got, err := store.QueryConstraints(ctx, Filters{}, nil, nil,
			[]SortSpec{{Field: SortByStatus, Desc: true}}, 0)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, StatusLocked, got[0].Status)
	})
}

func TestQueryTypes_RankedByCount(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	for _, name := range []string{"a", "b", "c"} {
		r := noCallsRecord()
		r.Name = "avoid " + name
		_, err := store.UpsertConstraint(ctx, r, nil)
		require.NoError(t, err)
	}
	_, err := store.UpsertConstraint(ctx, sleepTargetRecord(), nil)
	require.NoError(t, err)

	types, err := store.QueryTypes(ctx, "", nil)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "avoid_window", types[0].TypeID)
	assert.Equal(t, 3, types[0].Count)
	assert.Equal(t, "sleep_window", types[1].TypeID)
}

func TestUpdateConstraint(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	rec, err := store.UpsertConstraint(ctx, noCallsRecord(), nil)
	require.NoError(t, err)

	status := StatusLocked
	conf := 1.0
	updated, err := store.UpdateConstraint(ctx, rec.UID, UpdatePatch{
		Status:     &status,
		Confidence: &conf,
		Tags:       []string{"confirmed"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusLocked, updated.Status)
	assert.Equal(t, 1.0, updated.Confidence)
	assert.Equal(t, []string{"confirmed"}, updated.Tags)

	t.Run("enum validation", func(t *testing.T) {
		bad := Status("banana")
		_, err := store.UpdateConstraint(ctx, rec.UID, UpdatePatch{Status: &bad}, nil)
		require.Error(t, err)
	})

	t.Run("missing uid", func(t *testing.T) {
		_, err := store.UpdateConstraint(ctx, "cr_missing", UpdatePatch{}, nil)
		require.Error(t, err)
	})
}

func TestDedupeConstraints(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	// Same identity, three statuses; uids forced apart so they coexist.
	mk := func(uid string, status Status) {
		r := noCallsRecord()
		r.UID = uid
		r.Status = status
		_, err := store.UpsertConstraint(ctx, r, nil)
		require.NoError(t, err)
		base = base.Add(time.Minute)
	}
	mk("cr_one", StatusProposed)
	mk("cr_two", StatusLocked)
	mk("cr_three", StatusProposed)

	t.Run("dry run does not mutate", func(t *testing.T) {
		res, err := store.DedupeConstraints(ctx, 0, true)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Groups)
		assert.Equal(t, 2, res.Archived)

		kept, err := store.GetConstraint(ctx, "cr_one")
		require.NoError(t, err)
		assert.Equal(t, StatusProposed, kept.Status)
	})

	t.Run("locked record is canonical", func(t *testing.T) {
		res, err := store.DedupeConstraints(ctx, 0, false)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Archived)

		keep, err := store.GetConstraint(ctx, "cr_two")
		require.NoError(t, err)
		assert.Equal(t, StatusLocked, keep.Status)
		assert.ElementsMatch(t, []string{"cr_one", "cr_three"}, keep.SupersedesUIDs)

		for _, uid := range []string{"cr_one", "cr_three"} {
			r, err := store.GetConstraint(ctx, uid)
			require.NoError(t, err)
			assert.Equal(t, StatusDeclined, r.Status)
		}
	})

	t.Run("second run leaves the store unchanged", func(t *testing.T) {
		before, err := store.GetConstraint(ctx, "cr_two")
		require.NoError(t, err)

		_, err = store.DedupeConstraints(ctx, 0, false)
		require.NoError(t, err)

		after, err := store.GetConstraint(ctx, "cr_two")
		require.NoError(t, err)
		assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
		assert.Equal(t, before.SupersedesUIDs, after.SupersedesUIDs)
	})
}

func TestSupersedeConstraint_AtomicPair(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	old, err := store.UpsertConstraint(ctx, noCallsRecord(), nil)
	require.NoError(t, err)

	repl := noCallsRecord()
	repl.RuleKind = "prefer_window"
	neu, err := store.SupersedeConstraint(ctx, old.UID, repl, nil)
	require.NoError(t, err)
	assert.Contains(t, neu.SupersedesUIDs, old.UID)

	archived, err := store.GetConstraint(ctx, old.UID)
	require.NoError(t, err)
	assert.Equal(t, StatusDeclined, archived.Status)
}

func TestAddReflection(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	require.NoError(t, store.AddReflection(ctx, &Reflection{
		Kind:    "session_summary",
		Payload: map[string]any{"stage": "refine"},
	}))
	assert.Len(t, store.Reflections(), 1)
}
