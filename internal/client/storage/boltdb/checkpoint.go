package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
)

// SaveCheckpoint saves the pull cursor for an entity type:
// the maximum server updatedAt observed, Unix milliseconds
func (s *Storage) SaveCheckpoint(ctx context.Context, entityType models.EntityType, timestamp int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCheckpoints)
		if bucket == nil {
			return fmt.Errorf("checkpoints bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		// Сохраняем cursor по ключу типа
		if err := bucket.Put([]byte(entityType), timestampBytes); err != nil {
			return fmt.Errorf("failed to save checkpoint: %w", err)
		}

		return nil
	})
}

// GetCheckpoint retrieves the pull cursor for an entity type
// Returns 0 if the type has never been pulled
func (s *Storage) GetCheckpoint(ctx context.Context, entityType models.EntityType) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var timestamp int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCheckpoints)
		if bucket == nil {
			return fmt.Errorf("checkpoints bucket not found")
		}

		// Получаем cursor
		timestampBytes := bucket.Get([]byte(entityType))
		if timestampBytes == nil {
			// Если cursor не найден, возвращаем 0 (первый pull)
			timestamp = 0
			return nil
		}

		// Конвертируем bytes в int64
		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	return timestamp, nil
}

// ClearCheckpoints drops every pull cursor, forcing the next sync to
// pull everything from scratch
func (s *Storage) ClearCheckpoints(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		// Удаляем bucket полностью
		if err := tx.DeleteBucket(bucketCheckpoints); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}

		// Создаем заново пустой bucket
		if _, err := tx.CreateBucket(bucketCheckpoints); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}
