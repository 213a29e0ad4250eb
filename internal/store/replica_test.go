package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

func newTestReplica(t *testing.T) Replica {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "replica.db")
	storages, err := NewStorages(config.Storage{DB: config.DB{DSN: dbPath}}, logger.Nop())
	require.NoError(t, err)

	return storages.Replica
}

func testRecord(id string, status models.SyncStatus, at time.Time) models.Record {
	return models.Record{
		ID:        id,
		Status:    status,
		CreatedAt: at,
		UpdatedAt: at,
		Fields:    map[string]any{"name": "cash", "balance": 12.5},
	}
}

func TestReplica_PutGetRoundTrip(t *testing.T) {
	r := newTestReplica(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	want := testRecord("w1", models.StatusCreated, at)
	require.NoError(t, r.Put(ctx, models.CollectionWallets, want))

	got, err := r.Get(ctx, models.CollectionWallets, "w1")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, models.StatusCreated, got.Status)
	assert.True(t, got.CreatedAt.Equal(at))
	assert.Equal(t, "cash", got.Fields["name"])
	assert.Equal(t, 12.5, got.Fields["balance"])
}

func TestReplica_PutOverwrites(t *testing.T) {
	r := newTestReplica(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	rec := testRecord("w1", models.StatusCreated, at)
	require.NoError(t, r.Put(ctx, models.CollectionWallets, rec))

	rec.Fields = map[string]any{"name": "savings"}
	rec.Status = models.StatusSynced
	require.NoError(t, r.Put(ctx, models.CollectionWallets, rec))

	got, err := r.Get(ctx, models.CollectionWallets, "w1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, got.Status)
	assert.Equal(t, "savings", got.Fields["name"])
	assert.NotContains(t, got.Fields, "balance", "overwrite must not merge old fields")
}

func TestReplica_GetNotFound(t *testing.T) {
	r := newTestReplica(t)

	_, err := r.Get(context.Background(), models.CollectionWallets, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReplica_DeleteAndLog(t *testing.T) {
	r := newTestReplica(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.Put(ctx, models.CollectionPages, testRecord("p1", models.StatusSynced, at)))
	require.NoError(t, r.DeleteAndLog(ctx, models.CollectionPages, "p1"))

	_, err := r.Get(ctx, models.CollectionPages, "p1")
	require.ErrorIs(t, err, ErrNotFound)

	entries, err := r.DeletionLog(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.CollectionPages, entries[0].Collection)
	assert.Equal(t, "p1", entries[0].RecordID)
	assert.Equal(t, models.DeletionAction, entries[0].Action)
}

func TestReplica_ClearDeletionsLeavesOtherEntries(t *testing.T) {
	r := newTestReplica(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.Put(ctx, models.CollectionPages, testRecord("p1", models.StatusSynced, at)))
	require.NoError(t, r.Put(ctx, models.CollectionWallets, testRecord("w1", models.StatusSynced, at)))
	require.NoError(t, r.DeleteAndLog(ctx, models.CollectionPages, "p1"))
	require.NoError(t, r.DeleteAndLog(ctx, models.CollectionWallets, "w1"))

	require.NoError(t, r.ClearDeletions(ctx, models.CollectionPages, []string{"p1"}))

	entries, err := r.DeletionLog(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.CollectionWallets, entries[0].Collection)
}

func TestReplica_PendingSyncAndMarkSynced(t *testing.T) {
	r := newTestReplica(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.Put(ctx, models.CollectionWallets, testRecord("w1", models.StatusCreated, at)))
	require.NoError(t, r.Put(ctx, models.CollectionWallets, testRecord("w2", models.StatusUpdated, at.Add(time.Second))))
	require.NoError(t, r.Put(ctx, models.CollectionWallets, testRecord("w3", models.StatusSynced, at.Add(2*time.Second))))

	pending, err := r.PendingSync(ctx, models.CollectionWallets)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	require.NoError(t, r.MarkSynced(ctx, models.CollectionWallets, []string{"w1", "w2"}))

	pending, err = r.PendingSync(ctx, models.CollectionWallets)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestReplica_QueryByField(t *testing.T) {
	r := newTestReplica(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	parent := testRecord("root", models.StatusSynced, at)
	child := testRecord("child", models.StatusSynced, at.Add(time.Second))
	child.ParentID = "root"
	require.NoError(t, r.Put(ctx, models.CollectionPages, parent))
	require.NoError(t, r.Put(ctx, models.CollectionPages, child))

	got, err := r.QueryByField(ctx, models.CollectionPages, "parent_id", "root")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "child", got[0].ID)

	_, err = r.QueryByField(ctx, models.CollectionPages, "payload", "x")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestReplica_QueryChangedSinceStrictlyGreater(t *testing.T) {
	r := newTestReplica(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.Put(ctx, models.CollectionBlocks, testRecord("b1", models.StatusSynced, at)))
	require.NoError(t, r.Put(ctx, models.CollectionBlocks, testRecord("b2", models.StatusSynced, at.Add(time.Minute))))

	got, err := r.QueryChangedSince(ctx, models.CollectionBlocks, at)
	require.NoError(t, err)
	require.Len(t, got, 1, "record at exactly 'since' must be excluded")
	assert.Equal(t, "b2", got[0].ID)
}

func TestReplica_CheckpointLifecycle(t *testing.T) {
	r := newTestReplica(t)
	ctx := context.Background()

	ts, err := r.Checkpoint(ctx, models.CollectionWallets)
	require.NoError(t, err)
	assert.True(t, ts.IsZero(), "unset checkpoint must be the zero time")

	mark := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)
	require.NoError(t, r.SetCheckpoint(ctx, models.CollectionWallets, mark))

	ts, err = r.Checkpoint(ctx, models.CollectionWallets)
	require.NoError(t, err)
	assert.True(t, ts.Equal(mark))

	// other collections are unaffected
	ts, err = r.Checkpoint(ctx, models.CollectionPages)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())
}

func TestReplica_IdentityLifecycle(t *testing.T) {
	r := newTestReplica(t)
	ctx := context.Background()

	id, err := r.LastIdentity(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, r.SetLastIdentity(ctx, "user-1"))

	id, err = r.LastIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestReplica_WipeClearsEverything(t *testing.T) {
	r := newTestReplica(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.Put(ctx, models.CollectionWallets, testRecord("w1", models.StatusCreated, at)))
	require.NoError(t, r.DeleteAndLog(ctx, models.CollectionWallets, "w1"))
	require.NoError(t, r.SetCheckpoint(ctx, models.CollectionWallets, at))
	require.NoError(t, r.SetLastIdentity(ctx, "user-1"))

	require.NoError(t, r.Wipe(ctx))

	entries, err := r.DeletionLog(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	ts, err := r.Checkpoint(ctx, models.CollectionWallets)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	id, err := r.LastIdentity(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	for _, collection := range models.SyncOrder {
		pending, err := r.PendingSync(ctx, collection)
		require.NoError(t, err)
		assert.Empty(t, pending)
	}
}
