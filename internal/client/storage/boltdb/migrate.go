package boltdb

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/pawkit/pawkit/internal/models"
)

// keySchemaVersion хранит номер последней применённой миграции
const keySchemaVersion = "schema_version"

// migrations применяются по порядку, каждая в своей Update-транзакции.
// Номер миграции равен индексу + 1; уже применённые пропускаются.
var migrations = []func(tx *bbolt.Tx) error{
	migrateCreateBuckets,
	migrateLegacyTagFlags,
}

// migrate приводит схему локального хранилища к актуальной версии
func (s *Storage) migrate() error {
	for i, m := range migrations {
		version := uint64(i + 1)
		err := s.db.Update(func(tx *bbolt.Tx) error {
			meta, err := tx.CreateBucketIfNotExists(bucketMeta)
			if err != nil {
				return fmt.Errorf("failed to create meta bucket: %w", err)
			}
			if schemaVersion(meta) >= version {
				return nil
			}
			if err := m(tx); err != nil {
				return fmt.Errorf("migration %d failed: %w", version, err)
			}
			return saveSchemaVersion(meta, version)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// schemaVersion читает текущую версию схемы, 0 если база новая
func schemaVersion(meta *bbolt.Bucket) uint64 {
	data := meta.Get([]byte(keySchemaVersion))
	if data == nil {
		return 0
	}
	return binary.BigEndian.Uint64(data)
}

func saveSchemaVersion(meta *bbolt.Bucket, version uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, version)
	if err := meta.Put([]byte(keySchemaVersion), buf); err != nil {
		return fmt.Errorf("failed to save schema version: %w", err)
	}
	return nil
}

// migrateCreateBuckets создает все бакеты хранилища
func migrateCreateBuckets(tx *bbolt.Tx) error {
	buckets := [][]byte{
		bucketCollections,
		bucketTags,
		bucketCards,
		bucketQueue,
		bucketCheckpoints,
		bucketAuth,
	}
	for _, name := range buckets {
		if _, err := tx.CreateBucketIfNotExists(name); err != nil {
			return fmt.Errorf("failed to create %s bucket: %w", name, err)
		}
	}
	return nil
}

// migrateLegacyTagFlags конвертирует исторические маркеры-теги
// ("private", "local-only", "conflict") в битовые Flags и убирает их
// из списка тегов.
func migrateLegacyTagFlags(tx *bbolt.Tx) error {
	for _, name := range [][]byte{bucketCollections, bucketTags, bucketCards} {
		bucket := tx.Bucket(name)
		if bucket == nil {
			continue
		}

		// Put внутри ForEach по тому же бакету не допускается,
		// поэтому сначала собираем изменённые записи.
		updated := make(map[string][]byte)

		err := bucket.ForEach(func(k, v []byte) error {
			var entity models.Entity
			if err := json.Unmarshal(v, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal entity %s: %w", k, err)
			}

			var flags models.SyncFlags
			kept := make([]string, 0, len(entity.Tags))
			changed := false
			for _, tag := range entity.Tags {
				if f, ok := models.ParseLegacyTag(tag); ok {
					flags.Set(f)
					changed = true
					continue
				}
				kept = append(kept, tag)
			}
			if !changed {
				return nil
			}

			entity.Tags = kept
			if len(kept) == 0 {
				entity.Tags = nil
			}
			if entity.Flags == nil {
				entity.Flags = &flags
			} else {
				entity.Flags.Set(flags)
			}

			data, err := json.Marshal(&entity)
			if err != nil {
				return fmt.Errorf("failed to marshal entity %s: %w", k, err)
			}
			updated[string(k)] = data
			return nil
		})
		if err != nil {
			return err
		}

		for k, v := range updated {
			if err := bucket.Put([]byte(k), v); err != nil {
				return fmt.Errorf("failed to save migrated entity: %w", err)
			}
		}
	}
	return nil
}
