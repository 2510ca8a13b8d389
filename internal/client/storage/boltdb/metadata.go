package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/criticalmaps/internal/client/storage"
)

const (
	keyDeviceSeed = "device_seed"
	keyLastUpdate = "last_update"
)

// SaveDeviceSeed saves the seed the device identifier is derived from
func (s *Storage) SaveDeviceSeed(ctx context.Context, seed string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata %w", storage.ErrBucketNotFound)
		}

		if err := bucket.Put([]byte(keyDeviceSeed), []byte(seed)); err != nil {
			return fmt.Errorf("failed to save device seed: %w", err)
		}

		return nil
	})
}

// GetDeviceSeed retrieves the device seed
// Returns storage.ErrSeedNotFound if it has not been generated yet
func (s *Storage) GetDeviceSeed(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var seed string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata %w", storage.ErrBucketNotFound)
		}

		value := bucket.Get([]byte(keyDeviceSeed))
		if value == nil {
			return storage.ErrSeedNotFound
		}

		// Копируем: значение валидно только внутри транзакции
		seed = string(value)
		return nil
	})

	if err != nil {
		return "", err
	}

	return seed, nil
}

// LastUpdate returns the time of the last merged server response
// Returns zero time if nothing has been merged yet
func (s *Storage) LastUpdate(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var last time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata %w", storage.ErrBucketNotFound)
		}

		value := bucket.Get([]byte(keyLastUpdate))
		if value == nil {
			return nil
		}

		// Конвертируем bytes в int64
		last = time.Unix(0, int64(binary.BigEndian.Uint64(value)))
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last update: %w", err)
	}

	return last, nil
}

// putLastUpdate сохраняет время последнего слияния внутри открытой транзакции
func putLastUpdate(tx *bbolt.Tx, t time.Time) error {
	bucket := tx.Bucket(bucketMetadata)
	if bucket == nil {
		return fmt.Errorf("metadata %w", storage.ErrBucketNotFound)
	}

	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(t.UnixNano()))

	if err := bucket.Put([]byte(keyLastUpdate), value); err != nil {
		return fmt.Errorf("failed to save last update: %w", err)
	}
	return nil
}
