package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/criticalmaps/internal/client/storage"
)

func TestSaveAndGetDeviceSeed(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально seed отсутствует
	_, err := store.GetDeviceSeed(ctx)
	assert.ErrorIs(t, err, storage.ErrSeedNotFound)

	require.NoError(t, store.SaveDeviceSeed(ctx, "b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5"))

	seed, err := store.GetDeviceSeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5", seed)
}

func TestGetDeviceSeed_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetDeviceSeed(ctx)
	assert.ErrorIs(t, err, storage.ErrBucketNotFound)

	err = store.SaveDeviceSeed(ctx, "seed")
	assert.ErrorIs(t, err, storage.ErrBucketNotFound)
}

func TestLastUpdate_ZeroBeforeFirstUpdate(t *testing.T) {
	store := createTestStorage(t)

	last, err := store.LastUpdate(context.Background())
	require.NoError(t, err)
	assert.True(t, last.IsZero())
}

func TestMetadata_StorageClosed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.GetDeviceSeed(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.SaveDeviceSeed(ctx, "seed")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.LastUpdate(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestLastUpdate_RoundTrip(t *testing.T) {
	store := createTestStorage(t)

	ts := time.Date(2026, 5, 29, 19, 0, 0, 123, time.UTC)
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return putLastUpdate(tx, ts)
	})
	require.NoError(t, err)

	last, err := store.LastUpdate(context.Background())
	require.NoError(t, err)
	assert.True(t, ts.Equal(last))
}
