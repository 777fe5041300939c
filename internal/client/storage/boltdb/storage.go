package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
)

var (
	// BoltDB bucket names
	bucketCollections = []byte("collections")
	bucketTags        = []byte("tags")
	bucketCards       = []byte("cards")
	bucketQueue       = []byte("queue")
	bucketCheckpoints = []byte("checkpoints")
	bucketAuth        = []byte("auth")
	bucketMeta        = []byte("meta")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance and applies pending schema
// migrations. dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Применяем миграции схемы
	if err := storage.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return storage, nil
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

// Clear wipes all synchronized state: entities, queue and checkpoints.
// Auth data and storage metadata (schema version, device id) survive.
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	cleared := [][]byte{bucketCollections, bucketTags, bucketCards, bucketQueue, bucketCheckpoints}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range cleared {
			// Удаляем bucket полностью и создаем заново пустой
			if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
				return fmt.Errorf("failed to delete bucket %s: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}

// entityBucket возвращает имя бакета для типа сущности
func entityBucket(t models.EntityType) ([]byte, error) {
	switch t {
	case models.TypeCollections:
		return bucketCollections, nil
	case models.TypeTags:
		return bucketTags, nil
	case models.TypeCards:
		return bucketCards, nil
	}
	return nil, fmt.Errorf("unknown entity type: %q", t)
}
