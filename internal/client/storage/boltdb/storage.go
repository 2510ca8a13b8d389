package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/criticalmaps/internal/client/storage"
)

// DefaultMessageRetention сколько хранить сообщения чата локально
const DefaultMessageRetention = 24 * time.Hour

var (
	// BoltDB bucket names
	bucketRiders   = []byte("riders")
	bucketMessages = []byte("messages")
	bucketMetadata = []byte("metadata")
)

var (
	_ storage.Store           = (*Storage)(nil)
	_ storage.MetadataStorage = (*Storage)(nil)
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db        *bbolt.DB
	now       func() time.Time
	retention time.Duration
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB. Timeout защищает от вечной блокировки,
	// если файл уже открыт другим процессом клиента
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{
		db:        db,
		now:       time.Now,
		retention: DefaultMessageRetention,
	}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// SetMessageRetention sets how long chat messages are kept locally.
// Zero or negative disables pruning.
func (s *Storage) SetMessageRetention(retention time.Duration) {
	s.retention = retention
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRiders, bucketMessages, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
