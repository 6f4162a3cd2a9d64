package retriever

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

func TestDeriveEventTypes(t *testing.T) {
	r := New(constraint.NewMemStore())

	t.Run("collect suppresses routing", func(t *testing.T) {
		assert.Nil(t, r.DeriveEventTypes(models.StageCollectConstraints, PlanningContext{
			HasImmovables: true, HasSleepTarget: true,
		}))
	})

	t.Run("capture with facts", func(t *testing.T) {
		got := r.DeriveEventTypes(models.StageCaptureInputs, PlanningContext{
			HasImmovables:  true,
			HasSleepTarget: true,
		})
		assert.ElementsMatch(t, []timebox.EventType{
			timebox.EventDeepWork, timebox.EventShallowWork,
			timebox.EventMeeting, timebox.EventRegen,
		}, got)
	})

	t.Run("scheduling stage with gaps", func(t *testing.T) {
		got := r.DeriveEventTypes(models.StageRefine, PlanningContext{
			HasWorkWindow: true,
			HasImmovables: true,
			HasCommutes:   true,
		})
		assert.Contains(t, got, timebox.EventBuffer)
		assert.Contains(t, got, timebox.EventBackground)
		assert.Contains(t, got, timebox.EventPlanReview)
		assert.Contains(t, got, timebox.EventCommute)
	})

	t.Run("scheduling stage without gaps still gets plan review", func(t *testing.T) {
		got := r.DeriveEventTypes(models.StageSkeleton, PlanningContext{})
		assert.Contains(t, got, timebox.EventPlanReview)
		assert.NotContains(t, got, timebox.EventBuffer)
	})
}

func seedStore(t *testing.T) constraint.Store {
	t.Helper()
	ctx := context.Background()
	store := constraint.NewMemStore()

	_, err := store.UpsertConstraint(ctx, &constraint.Record{
		Name:       "Sleep 23:00 to 07:00",
		Necessity:  constraint.NecessityShould,
		Status:     constraint.StatusLocked,
		Source:     constraint.SourceUser,
		Confidence: 0.9,
		Scope:      constraint.ScopeProfile,
		RuleKind:   "sleep_window",
		Windows:    []constraint.Window{{Kind: "sleep", Start: "23:00", End: "07:00"}},
		Topics:     []string{StartupPrefetchTag},
	}, nil)
	require.NoError(t, err)

	_, err = store.UpsertConstraint(ctx, &constraint.Record{
		Name:       "No calls after 18:00",
		Necessity:  constraint.NecessityMust,
		Status:     constraint.StatusProposed,
		Source:     constraint.SourceUser,
		Confidence: 0.8,
		Scope:      constraint.ScopeProfile,
		RuleKind:   "avoid_window",
		Windows:    []constraint.Window{{Kind: "avoid", Start: "18:00", End: "23:59"}},
	}, nil)
	require.NoError(t, err)

	return store
}

func TestFetch_CollectPrefersStartupPrefetch(t *testing.T) {
	r := New(seedStore(t))

	got, err := r.Fetch(context.Background(), models.StageCollectConstraints, "2026-02-13", PlanningContext{})
	require.NoError(t, err)
	require.Len(t, got, 1, "only the startup-tagged record comes back")
	assert.Equal(t, "sleep_window", got[0].RuleKind)
}

func TestFetch_CollectFallsBackToBroadQuery(t *testing.T) {
	ctx := context.Background()
	store := constraint.NewMemStore()
	_, err := store.UpsertConstraint(ctx, &constraint.Record{
		Name:       "No calls after 18:00",
		Necessity:  constraint.NecessityMust,
		Status:     constraint.StatusLocked,
		Source:     constraint.SourceUser,
		Confidence: 0.8,
		Scope:      constraint.ScopeProfile,
		RuleKind:   "avoid_window",
		Windows:    []constraint.Window{{Kind: "avoid", Start: "18:00", End: "23:59"}},
	}, nil)
	require.NoError(t, err)

	r := New(store)
	got, err := r.Fetch(ctx, models.StageCollectConstraints, "2026-02-13", PlanningContext{})
	require.NoError(t, err)
	require.Len(t, got, 1, "no startup tags: the broad query serves")
}

func TestFetch_StageQuery(t *testing.T) {
	r := New(seedStore(t))

	got, err := r.Fetch(context.Background(), models.StageRefine, "2026-02-13", PlanningContext{
		HasWorkWindow: true,
		HasImmovables: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	// Locked records sort ahead of proposed ones.
	assert.Equal(t, constraint.StatusLocked, got[0].Status)
}
