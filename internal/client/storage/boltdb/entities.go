package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
)

// errStopIteration прерывает ForEach после первого совпадения
var errStopIteration = errors.New("stop iteration")

// SaveEntity stores or overwrites an entity in its type bucket
func (s *Storage) SaveEntity(ctx context.Context, entity *models.Entity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	bucketName, err := entityBucket(entity.Type)
	if err != nil {
		return err
	}

	// Сериализуем entity в JSON
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}

		// Сохраняем по ключу ID
		if err := bucket.Put([]byte(entity.ID), data); err != nil {
			return fmt.Errorf("failed to save entity: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetEntity retrieves an entity by type and id
func (s *Storage) GetEntity(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	bucketName, err := entityBucket(entityType)
	if err != nil {
		return nil, err
	}

	var entity *models.Entity

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return storage.ErrEntityNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrEntityNotFound
		}

		// Десериализуем
		entity = &models.Entity{}
		if err := json.Unmarshal(data, entity); err != nil {
			return fmt.Errorf("failed to unmarshal entity: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entity, nil
}

// ListEntities returns entities of one type matching the filter
func (s *Storage) ListEntities(ctx context.Context, entityType models.EntityType, filter storage.Filter) ([]*models.Entity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	bucketName, err := entityBucket(entityType)
	if err != nil {
		return nil, err
	}

	var entities []*models.Entity

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var entity models.Entity
			if err := json.Unmarshal(v, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}

			// Фильтруем
			if !matchFilter(&entity, filter) {
				return nil
			}

			entities = append(entities, &entity)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	return entities, nil
}

// matchFilter проверяет сущность на соответствие фильтру
func matchFilter(e *models.Entity, f storage.Filter) bool {
	if !f.IncludeDeleted && (e.Deleted || e.DeletedLocally) {
		return false
	}
	if f.WorkspaceID != "" && e.WorkspaceID != f.WorkspaceID {
		return false
	}
	if f.ParentID != "" && e.ParentID != f.ParentID {
		return false
	}
	return true
}

// PurgeEntity physically removes an entity from its type bucket.
// Used after a tombstone has been confirmed by the server.
func (s *Storage) PurgeEntity(ctx context.Context, entityType models.EntityType, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	bucketName, err := entityBucket(entityType)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return storage.ErrEntityNotFound
		}

		// Проверяем существование записи
		if bucket.Get([]byte(id)) == nil {
			return storage.ErrEntityNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete entity: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("purge transaction failed: %w", err)
	}

	return nil
}

// HasEntities reports whether the workspace holds any entity of any type.
// Tombstones count: their presence means a sync has happened before.
func (s *Storage) HasEntities(ctx context.Context, workspaceID string) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		for _, t := range models.PullOrder() {
			bucketName, err := entityBucket(t)
			if err != nil {
				return err
			}

			bucket := tx.Bucket(bucketName)
			if bucket == nil {
				continue
			}

			err = bucket.ForEach(func(k, v []byte) error {
				var entity models.Entity
				if err := json.Unmarshal(v, &entity); err != nil {
					return fmt.Errorf("failed to unmarshal entity: %w", err)
				}

				if workspaceID != "" && entity.WorkspaceID != workspaceID {
					return nil
				}

				found = true
				return errStopIteration
			})
			if err != nil && !errors.Is(err, errStopIteration) {
				return err
			}
			if found {
				return nil
			}
		}
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("failed to check entities: %w", err)
	}

	return found, nil
}
