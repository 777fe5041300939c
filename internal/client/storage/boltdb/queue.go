package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
)

// opKey строит ключ операции. Очередь держит не более одной операции
// на сущность, поэтому ключом служит пара (тип, id).
func opKey(entityType models.EntityType, entityID string) []byte {
	return []byte(string(entityType) + "/" + entityID)
}

// SaveOperation stores or overwrites the operation queued for its entity
func (s *Storage) SaveOperation(ctx context.Context, op *models.Operation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем операцию в JSON
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		if err := bucket.Put(opKey(op.EntityType, op.EntityID), data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetOperation retrieves the operation queued for an entity
func (s *Storage) GetOperation(ctx context.Context, entityType models.EntityType, entityID string) (*models.Operation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var op *models.Operation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrOperationNotFound
		}

		data := bucket.Get(opKey(entityType, entityID))
		if data == nil {
			return storage.ErrOperationNotFound
		}

		// Десериализуем
		op = &models.Operation{}
		if err := json.Unmarshal(data, op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return op, nil
}

// DeleteOperation removes the operation queued for an entity
func (s *Storage) DeleteOperation(ctx context.Context, entityType models.EntityType, entityID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrOperationNotFound
		}

		key := opKey(entityType, entityID)

		// Проверяем существование операции
		if bucket.Get(key) == nil {
			return storage.ErrOperationNotFound
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// ListOperations returns every queued operation in key order.
// Callers sort by CreatedAt for FIFO dispatch.
func (s *Storage) ListOperations(ctx context.Context) ([]*models.Operation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.Operation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var op models.Operation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	return ops, nil
}
