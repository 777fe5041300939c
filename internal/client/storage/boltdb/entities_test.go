package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
)

// createTestStorage создает временное хранилище для тестов
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		if store.db != nil {
			err := store.Close()
			require.NoError(t, err)
		}
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Errorf("failed to remove tmpDir: %v", err)
		}
	}

	return store, cleanup
}

// createTestCard создает тестовую карточку
func createTestCard(id, workspaceID string, lastModified int64, deleted bool) *models.Entity {
	now := time.Now().UnixMilli()
	return &models.Entity{
		ID:           id,
		Type:         models.TypeCards,
		WorkspaceID:  workspaceID,
		URL:          "https://example.com/" + id,
		Title:        "Card " + id,
		Tags:         []string{"golang"},
		CreatedAt:    now,
		UpdatedAt:    lastModified,
		LastModified: lastModified,
		Version:      1,
		Deleted:      deleted,
	}
}

// createTestCollection создает тестовую коллекцию
func createTestCollection(id, workspaceID, parentID string) *models.Entity {
	now := time.Now().UnixMilli()
	return &models.Entity{
		ID:           id,
		Type:         models.TypeCollections,
		WorkspaceID:  workspaceID,
		ParentID:     parentID,
		Name:         "Collection " + id,
		Slug:         id,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastModified: now,
	}
}

func TestStorage_SaveEntity(t *testing.T) {
	tests := []struct {
		entity  *models.Entity
		name    string
		wantErr bool
	}{
		{
			name:    "successful save card",
			entity:  createTestCard("card-1", "ws-1", 1000, false),
			wantErr: false,
		},
		{
			name:    "successful save collection",
			entity:  createTestCollection("col-1", "ws-1", ""),
			wantErr: false,
		},
		{
			name: "successful save tag",
			entity: &models.Entity{
				ID:          "tag-1",
				Type:        models.TypeTags,
				WorkspaceID: "ws-1",
				Name:        "golang",
				Color:       "#00add8",
			},
			wantErr: false,
		},
		{
			name:    "successful save tombstone",
			entity:  createTestCard("card-2", "ws-1", 2000, true),
			wantErr: false,
		},
		{
			name: "unknown entity type",
			entity: &models.Entity{
				ID:   "x-1",
				Type: models.EntityType("bookmarks"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStorage(t)
			defer cleanup()

			ctx := context.Background()
			err := store.SaveEntity(ctx, tt.entity)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)

			// Проверяем, что сущность можно получить обратно
			retrieved, err := store.GetEntity(ctx, tt.entity.Type, tt.entity.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.entity.ID, retrieved.ID)
			assert.Equal(t, tt.entity.Type, retrieved.Type)
			assert.Equal(t, tt.entity.WorkspaceID, retrieved.WorkspaceID)
			assert.Equal(t, tt.entity.Title, retrieved.Title)
			assert.Equal(t, tt.entity.Name, retrieved.Name)
			assert.Equal(t, tt.entity.Tags, retrieved.Tags)
			assert.Equal(t, tt.entity.LastModified, retrieved.LastModified)
			assert.Equal(t, tt.entity.Deleted, retrieved.Deleted)
		})
	}
}

func TestStorage_SaveEntity_Overwrite(t *testing.T) {
	// Тест проверяет перезапись существующей сущности
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	// Сохраняем первую версию
	card1 := createTestCard("card-1", "ws-1", 1000, false)
	require.NoError(t, store.SaveEntity(ctx, card1))

	// Перезаписываем (новый title и timestamp)
	card2 := createTestCard("card-1", "ws-1", 2000, false)
	card2.Title = "Updated title"
	card2.Version = 2
	require.NoError(t, store.SaveEntity(ctx, card2))

	// Проверяем, что получаем обновленную версию
	retrieved, err := store.GetEntity(ctx, models.TypeCards, "card-1")
	require.NoError(t, err)
	assert.Equal(t, "Updated title", retrieved.Title)
	assert.Equal(t, int64(2), retrieved.Version)
	assert.Equal(t, int64(2000), retrieved.LastModified)
}

func TestStorage_SaveEntity_ClosedDB(t *testing.T) {
	store, cleanup := createTestStorage(t)
	cleanup() // Закрываем сразу

	ctx := context.Background()
	err := store.SaveEntity(ctx, createTestCard("card-1", "ws-1", 1000, false))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestStorage_GetEntity(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	card := createTestCard("card-1", "ws-1", 1000, false)
	collection := createTestCollection("col-1", "ws-1", "")
	require.NoError(t, store.SaveEntity(ctx, card))
	require.NoError(t, store.SaveEntity(ctx, collection))

	tests := []struct {
		wantErr    error
		name       string
		id         string
		entityType models.EntityType
	}{
		{
			name:       "get existing card",
			entityType: models.TypeCards,
			id:         "card-1",
			wantErr:    nil,
		},
		{
			name:       "get existing collection",
			entityType: models.TypeCollections,
			id:         "col-1",
			wantErr:    nil,
		},
		{
			name:       "get non-existing entity",
			entityType: models.TypeCards,
			id:         "non-existing",
			wantErr:    storage.ErrEntityNotFound,
		},
		{
			name:       "type buckets are isolated",
			entityType: models.TypeTags,
			id:         "card-1",
			wantErr:    storage.ErrEntityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieved, err := store.GetEntity(ctx, tt.entityType, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, retrieved)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, retrieved)
			assert.Equal(t, tt.id, retrieved.ID)
			assert.Equal(t, tt.entityType, retrieved.Type)
		})
	}
}

func TestStorage_GetEntity_ClosedDB(t *testing.T) {
	store, cleanup := createTestStorage(t)
	cleanup() // Закрываем сразу

	ctx := context.Background()
	_, err := store.GetEntity(ctx, models.TypeCards, "card-1")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestStorage_ListEntities(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	// Тест на пустом хранилище
	entities, err := store.ListEntities(ctx, models.TypeCards, storage.Filter{})
	require.NoError(t, err)
	assert.Empty(t, entities)

	// Сохраняем карточки в двух workspace, включая tombstone
	// и локально удаленную
	card1 := createTestCard("card-1", "ws-1", 1000, false)
	card2 := createTestCard("card-2", "ws-1", 2000, true) // deleted
	card3 := createTestCard("card-3", "ws-2", 3000, false)
	card4 := createTestCard("card-4", "ws-1", 4000, false)
	card4.DeletedLocally = true

	require.NoError(t, store.SaveEntity(ctx, card1))
	require.NoError(t, store.SaveEntity(ctx, card2))
	require.NoError(t, store.SaveEntity(ctx, card3))
	require.NoError(t, store.SaveEntity(ctx, card4))

	// Коллекции с родителем для фильтра по ParentID
	root := createTestCollection("col-root", "ws-1", "")
	child1 := createTestCollection("col-child-1", "ws-1", "col-root")
	child2 := createTestCollection("col-child-2", "ws-1", "col-root")
	require.NoError(t, store.SaveEntity(ctx, root))
	require.NoError(t, store.SaveEntity(ctx, child1))
	require.NoError(t, store.SaveEntity(ctx, child2))

	tests := []struct {
		name       string
		entityType models.EntityType
		filter     storage.Filter
		wantIDs    []string
	}{
		{
			name:       "live cards only by default",
			entityType: models.TypeCards,
			filter:     storage.Filter{},
			wantIDs:    []string{"card-1", "card-3"},
		},
		{
			name:       "include deleted keeps tombstones",
			entityType: models.TypeCards,
			filter:     storage.Filter{IncludeDeleted: true},
			wantIDs:    []string{"card-1", "card-2", "card-3", "card-4"},
		},
		{
			name:       "workspace filter",
			entityType: models.TypeCards,
			filter:     storage.Filter{WorkspaceID: "ws-1"},
			wantIDs:    []string{"card-1"},
		},
		{
			name:       "workspace filter with deleted",
			entityType: models.TypeCards,
			filter:     storage.Filter{WorkspaceID: "ws-1", IncludeDeleted: true},
			wantIDs:    []string{"card-1", "card-2", "card-4"},
		},
		{
			name:       "parent filter",
			entityType: models.TypeCollections,
			filter:     storage.Filter{ParentID: "col-root"},
			wantIDs:    []string{"col-child-1", "col-child-2"},
		},
		{
			name:       "no matches",
			entityType: models.TypeCards,
			filter:     storage.Filter{WorkspaceID: "ws-unknown"},
			wantIDs:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities, err := store.ListEntities(ctx, tt.entityType, tt.filter)
			require.NoError(t, err)

			gotIDs := make([]string, len(entities))
			for i, e := range entities {
				gotIDs[i] = e.ID
			}
			assert.ElementsMatch(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestStorage_ListEntities_ClosedDB(t *testing.T) {
	store, cleanup := createTestStorage(t)
	cleanup() // Закрываем сразу

	ctx := context.Background()
	_, err := store.ListEntities(ctx, models.TypeCards, storage.Filter{})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestStorage_PurgeEntity(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	card := createTestCard("card-1", "ws-1", 1000, false)
	require.NoError(t, store.SaveEntity(ctx, card))

	// Физически удаляем
	err := store.PurgeEntity(ctx, models.TypeCards, "card-1")
	require.NoError(t, err)

	// Сущность больше не существует
	_, err = store.GetEntity(ctx, models.TypeCards, "card-1")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)

	// Повторное удаление возвращает ошибку
	err = store.PurgeEntity(ctx, models.TypeCards, "card-1")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestStorage_PurgeEntity_ClosedDB(t *testing.T) {
	store, cleanup := createTestStorage(t)
	cleanup() // Закрываем сразу

	ctx := context.Background()
	err := store.PurgeEntity(ctx, models.TypeCards, "card-1")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestStorage_HasEntities(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	// Пустое хранилище
	has, err := store.HasEntities(ctx, "ws-1")
	require.NoError(t, err)
	assert.False(t, has)

	// Сущность в другом workspace не считается
	require.NoError(t, store.SaveEntity(ctx, createTestCard("card-1", "ws-2", 1000, false)))

	has, err = store.HasEntities(ctx, "ws-1")
	require.NoError(t, err)
	assert.False(t, has)

	// Tombstone в нужном workspace считается: была синхронизация
	require.NoError(t, store.SaveEntity(ctx, createTestCard("card-2", "ws-1", 2000, true)))

	has, err = store.HasEntities(ctx, "ws-1")
	require.NoError(t, err)
	assert.True(t, has)

	// Пустой workspaceID принимает любую сущность
	has, err = store.HasEntities(ctx, "")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestStorage_HasEntities_ClosedDB(t *testing.T) {
	store, cleanup := createTestStorage(t)
	cleanup() // Закрываем сразу

	ctx := context.Background()
	_, err := store.HasEntities(ctx, "ws-1")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
