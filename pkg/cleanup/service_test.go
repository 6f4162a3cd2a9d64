package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/ent"
	"github.com/hugocool/fateforger/ent/syncrecord"
	"github.com/hugocool/fateforger/pkg/config"
	"github.com/hugocool/fateforger/pkg/constraint"
	testdb "github.com/hugocool/fateforger/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SyncRetentionDays:       90,
		DeclinedRetentionDays:   30,
		ReflectionRetentionDays: 180,
		Interval:                config.Duration(time.Hour),
	}
}

func seedSyncRecord(t *testing.T, client *ent.Client, status syncrecord.Status, age time.Duration) string {
	t.Helper()
	id := "sync_" + uuid.New().String()
	err := client.SyncRecord.Create().
		SetID(id).
		SetSessionKey("C1:T1").
		SetCalendarID("primary").
		SetPlannedDate("2026-02-13").
		SetStatus(status).
		SetOps([]map[string]any{{"kind": "create", "tool": "create-event"}}).
		SetUpdatedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestSweep_DeletesOldSettledSyncRecords(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := seedSyncRecord(t, client.Client, syncrecord.StatusCommitted, 120*24*time.Hour)
	recent := seedSyncRecord(t, client.Client, syncrecord.StatusCommitted, 24*time.Hour)
	// Pending transactions never age out, however old.
	pending := seedSyncRecord(t, client.Client, syncrecord.StatusPending, 120*24*time.Hour)

	svc := NewService(retentionConfig(), client.Client)
	svc.Sweep(ctx)

	remaining, err := client.Client.SyncRecord.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, old)
	assert.Contains(t, remaining, recent)
	assert.Contains(t, remaining, pending)
}

func TestSweep_DeletesOldDeclinedConstraints(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := constraint.NewEntStore(client.Client)

	rec, err := store.UpsertConstraint(ctx, &constraint.Record{
		Name:       "No meetings before 10:00",
		Necessity:  constraint.NecessityShould,
		Status:     constraint.StatusProposed,
		Source:     constraint.SourceUser,
		Confidence: 0.7,
		Scope:      constraint.ScopeProfile,
		RuleKind:   "avoid_window",
		Windows:    []constraint.Window{{Kind: "avoid", Start: "00:00", End: "10:00"}},
	}, nil)
	require.NoError(t, err)
	require.NoError(t, store.ArchiveConstraint(ctx, rec.UID, "superseded by test"))

	// Age the declined row past the retention window.
	err = client.Client.ConstraintRecord.UpdateOneID(rec.UID).
		SetUpdatedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), client.Client)
	svc.Sweep(ctx)

	got, err := store.GetConstraint(ctx, rec.UID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSweep_KeepsRecentDeclinedAndActiveConstraints(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	store := constraint.NewEntStore(client.Client)

	active, err := store.UpsertConstraint(ctx, &constraint.Record{
		Name:       "Lunch at noon",
		Necessity:  constraint.NecessityMust,
		Status:     constraint.StatusLocked,
		Source:     constraint.SourceUser,
		Confidence: 0.9,
		Scope:      constraint.ScopeProfile,
		RuleKind:   "fixed_window",
		Windows:    []constraint.Window{{Kind: "prefer", Start: "12:00", End: "12:30"}},
	}, nil)
	require.NoError(t, err)

	// Even a very old active constraint survives.
	err = client.Client.ConstraintRecord.UpdateOneID(active.UID).
		SetUpdatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), client.Client)
	svc.Sweep(ctx)

	got, err := store.GetConstraint(ctx, active.UID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestSweep_DeletesOldReflections(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	oldID := "rf_" + uuid.New().String()
	err := client.Client.Reflection.Create().
		SetID(oldID).
		SetKind("patch_applied").
		SetCreatedAt(time.Now().Add(-365 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	recentID := "rf_" + uuid.New().String()
	err = client.Client.Reflection.Create().
		SetID(recentID).
		SetKind("patch_applied").
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), client.Client)
	svc.Sweep(ctx)

	remaining, err := client.Client.Reflection.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, oldID)
	assert.Contains(t, remaining, recentID)
}

func TestStartStop_Idempotent(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc := NewService(retentionConfig(), client.Client)
	svc.Start(context.Background())
	svc.Start(context.Background()) // second Start is a no-op
	svc.Stop()
}
