package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ankadash/internal/model"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		Clients: []model.Client{
			{ID: 1, Name: "Ana", Email: "ana@office.com", IsActive: true, CreatedAt: "2024-01-01T10:00:00Z"},
			{ID: 2, Name: "Bruno", IsActive: false},
		},
		Assets: []model.Asset{
			{ID: 1, Ticker: "PETR4", Name: "Petrobras", Exchange: "B3", Currency: "BRL"},
		},
		Allocations: []model.Allocation{
			{ID: 1, ClientID: 1, AssetID: 1, Quantity: "2", BuyPrice: "10.50", BuyDate: "2024-01-10"},
		},
		Movements: []model.Movement{
			{ID: 1, ClientID: 1, Type: model.MovementDeposit, Amount: "100", Date: "2024-01-05", Note: "aporte"},
		},
		FetchedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	require.NoError(t, cache.SaveSnapshot(sampleSnapshot()))

	got, err := cache.LoadSnapshot()
	require.NoError(t, err)

	assert.True(t, got.Stale, "loaded snapshots are always marked stale")
	assert.Equal(t, sampleSnapshot().Clients, got.Clients)
	assert.Equal(t, sampleSnapshot().Assets, got.Assets)
	assert.Equal(t, sampleSnapshot().Allocations, got.Allocations)
	assert.Equal(t, sampleSnapshot().Movements, got.Movements)
	assert.Equal(t, sampleSnapshot().FetchedAt, got.FetchedAt)
}

func TestSaveSnapshot_ReplacesPrevious(t *testing.T) {
	cache := openTestCache(t)
	require.NoError(t, cache.SaveSnapshot(sampleSnapshot()))

	next := sampleSnapshot()
	next.Clients = []model.Client{{ID: 9, Name: "Novo"}}
	require.NoError(t, cache.SaveSnapshot(next))

	got, err := cache.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, got.Clients, 1)
	assert.Equal(t, int64(9), got.Clients[0].ID)
}

func TestComplete(t *testing.T) {
	cache := openTestCache(t)

	complete, err := cache.Complete()
	require.NoError(t, err)
	assert.False(t, complete, "empty cache is incomplete")

	require.NoError(t, cache.SaveSnapshot(sampleSnapshot()))
	complete, err = cache.Complete()
	require.NoError(t, err)
	assert.True(t, complete)
}

func TestInvalidate_SingleEntity(t *testing.T) {
	cache := openTestCache(t)
	require.NoError(t, cache.SaveSnapshot(sampleSnapshot()))

	require.NoError(t, cache.Invalidate(EntityMovements))

	got, err := cache.LoadSnapshot()
	require.NoError(t, err)
	assert.Empty(t, got.Movements, "invalidated entity rows are gone")
	assert.NotEmpty(t, got.Clients, "other entities survive")

	complete, err := cache.Complete()
	require.NoError(t, err)
	assert.False(t, complete, "a missing entity makes the snapshot incomplete")
}

func TestInvalidate_UnknownEntity(t *testing.T) {
	cache := openTestCache(t)
	require.Error(t, cache.Invalidate("budgets"))
}
