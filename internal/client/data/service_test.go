package data

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawkit/pawkit/internal/client/queue"
	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/internal/validation"
)

const testNow = int64(1700000000000)

// testEnv связывает моки общим состоянием: сущности живут в map и
// переживают вызовы, как в реальном хранилище
type testEnv struct {
	entities    map[string]*models.Entity
	entityStore *storage.EntityStorageMock
	queue       *queue.ServiceMock
	conflicts   *ConflictCleanerMock
	svc         *service
}

func memKey(entityType models.EntityType, id string) string {
	return string(entityType) + "/" + id
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func newTestEnv() *testEnv {
	env := &testEnv{entities: make(map[string]*models.Entity)}

	env.entityStore = &storage.EntityStorageMock{
		SaveEntityFunc: func(ctx context.Context, entity *models.Entity) error {
			env.entities[memKey(entity.Type, entity.ID)] = entity.Clone()
			return nil
		},
		GetEntityFunc: func(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error) {
			entity, ok := env.entities[memKey(entityType, id)]
			if !ok {
				return nil, storage.ErrEntityNotFound
			}
			return entity.Clone(), nil
		},
		ListEntitiesFunc: func(ctx context.Context, entityType models.EntityType, filter storage.Filter) ([]*models.Entity, error) {
			var out []*models.Entity
			for _, e := range env.entities {
				if e.Type != entityType {
					continue
				}
				if filter.WorkspaceID != "" && e.WorkspaceID != filter.WorkspaceID {
					continue
				}
				if filter.ParentID != "" && e.ParentID != filter.ParentID {
					continue
				}
				if !filter.IncludeDeleted && (e.Deleted || e.DeletedLocally) {
					continue
				}
				out = append(out, e.Clone())
			}
			return out, nil
		},
		PurgeEntityFunc: func(ctx context.Context, entityType models.EntityType, id string) error {
			delete(env.entities, memKey(entityType, id))
			return nil
		},
	}

	env.queue = &queue.ServiceMock{
		EnqueueFunc: func(ctx context.Context, entityType models.EntityType, entityID string, kind models.OpKind, payload map[string]any) error {
			return nil
		},
	}

	env.conflicts = &ConflictCleanerMock{
		ResolveConflictOnDeleteFunc: func(ctx context.Context, deleted *models.Entity) (*models.Entity, error) {
			return nil, nil
		},
	}

	env.svc = NewService(env.entityStore, env.queue, env.conflicts, "ws-1", testLogger()).(*service)
	env.svc.now = func() int64 { return testNow }

	return env
}

func (env *testEnv) seed(entity *models.Entity) *models.Entity {
	env.entities[memKey(entity.Type, entity.ID)] = entity
	return entity
}

func seedCard(env *testEnv, id, title string, tags ...string) *models.Entity {
	return env.seed(&models.Entity{
		ID:           id,
		Type:         models.TypeCards,
		WorkspaceID:  "ws-1",
		URL:          "https://example.com/" + id,
		Title:        title,
		Tags:         tags,
		CreatedAt:    1699990000000,
		UpdatedAt:    1699990000000,
		LastModified: 1699990000000,
		Version:      1,
		Synced:       true,
	})
}

func seedCollection(env *testEnv, id, name, slug string) *models.Entity {
	return env.seed(&models.Entity{
		ID:           id,
		Type:         models.TypeCollections,
		WorkspaceID:  "ws-1",
		Name:         name,
		Slug:         slug,
		CreatedAt:    1699990000000,
		UpdatedAt:    1699990000000,
		LastModified: 1699990000000,
		Version:      1,
		Synced:       true,
	})
}

func seedTag(env *testEnv, id, name string) *models.Entity {
	return env.seed(&models.Entity{
		ID:           id,
		Type:         models.TypeTags,
		WorkspaceID:  "ws-1",
		Name:         name,
		CreatedAt:    1699990000000,
		UpdatedAt:    1699990000000,
		LastModified: 1699990000000,
		Version:      1,
		Synced:       true,
	})
}

func TestAddCard(t *testing.T) {
	env := newTestEnv()
	seedCollection(env, "col-1", "Reading", "reading")

	card, err := env.svc.AddCard(context.Background(), CardDraft{
		URL:          "https://example.com/article",
		Title:        "Article",
		CollectionID: "col-1",
		Tags:         []string{"go"},
	})
	require.NoError(t, err)

	require.NotEmpty(t, card.ID)
	assert.Equal(t, models.TypeCards, card.Type)
	assert.Equal(t, "ws-1", card.WorkspaceID)
	assert.Equal(t, "col-1", card.ParentID)
	assert.Equal(t, int64(1), card.Version)
	assert.Equal(t, testNow, card.CreatedAt)
	assert.Equal(t, testNow, card.LastModified)
	assert.False(t, card.Synced)

	// Запись в хранилище и create в очереди
	require.NotNil(t, env.entities[memKey(models.TypeCards, card.ID)])

	calls := env.queue.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpCreate, calls[0].Kind)
	assert.Equal(t, card.ID, calls[0].EntityID)
	assert.Nil(t, calls[0].Payload)
}

func TestAddCard_UnknownCollection(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.AddCard(context.Background(), CardDraft{
		URL:          "https://example.com/article",
		CollectionID: "ghost",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	assert.Empty(t, env.entityStore.SaveEntityCalls())
	assert.Empty(t, env.queue.EnqueueCalls())
}

func TestAddCard_EmptyURL(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.AddCard(context.Background(), CardDraft{Title: "no url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url cannot be empty")
}

func TestUpdateCard(t *testing.T) {
	env := newTestEnv()
	seedCard(env, "card-1", "Old title")

	newTitle := "New title"
	updated, err := env.svc.UpdateCard(context.Background(), "card-1", CardPatch{
		Title: &newTitle,
		Tags:  []string{"go", "sync"},
	})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, []string{"go", "sync"}, updated.Tags)
	assert.False(t, updated.Synced)
	assert.Equal(t, testNow, updated.LastModified)

	stored := env.entities[memKey(models.TypeCards, "card-1")]
	assert.Equal(t, "New title", stored.Title)
	assert.False(t, stored.Synced)

	// В payload входят только измененные поля
	calls := env.queue.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpUpdate, calls[0].Kind)
	assert.Equal(t, map[string]any{
		"title": "New title",
		"tags":  []string{"go", "sync"},
	}, calls[0].Payload)
}

func TestUpdateCard_NoChanges(t *testing.T) {
	env := newTestEnv()
	seedCard(env, "card-1", "Same title")

	sameTitle := "Same title"
	updated, err := env.svc.UpdateCard(context.Background(), "card-1", CardPatch{Title: &sameTitle})
	require.NoError(t, err)

	// Нет изменений: ни записи, ни операции
	assert.True(t, updated.Synced)
	assert.Empty(t, env.entityStore.SaveEntityCalls())
	assert.Empty(t, env.queue.EnqueueCalls())
}

func TestUpdateCard_Deleted(t *testing.T) {
	env := newTestEnv()
	card := seedCard(env, "card-1", "Gone")
	card.Deleted = true

	title := "Resurrect"
	_, err := env.svc.UpdateCard(context.Background(), "card-1", CardPatch{Title: &title})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is deleted")
}

func TestAddCollection(t *testing.T) {
	env := newTestEnv()

	col, err := env.svc.AddCollection(context.Background(), CollectionDraft{Name: "Reading List"})
	require.NoError(t, err)

	assert.Equal(t, "Reading List", col.Name)
	assert.Equal(t, "reading-list", col.Slug)
	assert.Equal(t, models.TypeCollections, col.Type)
	assert.False(t, col.Synced)

	calls := env.queue.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpCreate, calls[0].Kind)
}

func TestAddCollection_SlugCollision(t *testing.T) {
	env := newTestEnv()
	seedCollection(env, "col-1", "Reading List", "reading-list")
	seedCollection(env, "col-2", "Reading List", "reading-list-2")

	col, err := env.svc.AddCollection(context.Background(), CollectionDraft{Name: "Reading List"})
	require.NoError(t, err)

	assert.Equal(t, "reading-list-3", col.Slug)
}

func TestAddCollection_NonLatinName(t *testing.T) {
	env := newTestEnv()

	col, err := env.svc.AddCollection(context.Background(), CollectionDraft{Name: "Закладки"})
	require.NoError(t, err)

	// Из имени slug не выводится: берется фрагмент id
	assert.Equal(t, "c-"+col.ID[:8], col.Slug)
	require.NoError(t, validation.ValidateSlug(col.Slug))
}

func TestUpdateCollection_Rename(t *testing.T) {
	env := newTestEnv()
	seedCollection(env, "col-1", "Old name", "old-name")

	newName := "New name"
	col, err := env.svc.UpdateCollection(context.Background(), "col-1", CollectionPatch{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "New name", col.Name)
	// Slug стабилен после создания
	assert.Equal(t, "old-name", col.Slug)

	calls := env.queue.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{"name": "New name"}, calls[0].Payload)
}

func TestUpdateCollection_MoveUnderDescendant(t *testing.T) {
	env := newTestEnv()
	seedCollection(env, "col-a", "A", "a")
	b := seedCollection(env, "col-b", "B", "b")
	b.ParentID = "col-a"

	parent := "col-b"
	_, err := env.svc.UpdateCollection(context.Background(), "col-a", CollectionPatch{ParentID: &parent})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "descendant")

	assert.Empty(t, env.queue.EnqueueCalls())
}

func TestAddTag(t *testing.T) {
	env := newTestEnv()

	tag, err := env.svc.AddTag(context.Background(), TagDraft{Name: "go", Color: "#00add8"})
	require.NoError(t, err)

	assert.Equal(t, "go", tag.Name)
	assert.Equal(t, "#00add8", tag.Color)
	assert.False(t, tag.Synced)

	require.Len(t, env.queue.EnqueueCalls(), 1)
}

func TestAddTag_DuplicateReturnsExisting(t *testing.T) {
	env := newTestEnv()
	seedTag(env, "tag-1", "go")

	tag, err := env.svc.AddTag(context.Background(), TagDraft{Name: "go"})
	require.NoError(t, err)

	assert.Equal(t, "tag-1", tag.ID)
	assert.Empty(t, env.queue.EnqueueCalls())
}

func TestUpdateTag_RenameRewritesCards(t *testing.T) {
	env := newTestEnv()
	seedTag(env, "tag-1", "go")
	seedCard(env, "card-1", "Tagged", "go", "web")
	seedCard(env, "card-2", "Other", "rust")

	newName := "golang"
	tag, err := env.svc.UpdateTag(context.Background(), "tag-1", TagPatch{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "golang", tag.Name)

	// Ссылка в card-1 переписана, card-2 не тронута
	assert.Equal(t, []string{"golang", "web"}, env.entities[memKey(models.TypeCards, "card-1")].Tags)
	assert.Equal(t, []string{"rust"}, env.entities[memKey(models.TypeCards, "card-2")].Tags)

	calls := env.queue.EnqueueCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "tag-1", calls[0].EntityID)
	assert.Equal(t, map[string]any{"name": "golang"}, calls[0].Payload)
	assert.Equal(t, "card-1", calls[1].EntityID)
	assert.Equal(t, map[string]any{"tags": []string{"golang", "web"}}, calls[1].Payload)
}

func TestUpdateTag_DuplicateName(t *testing.T) {
	env := newTestEnv()
	seedTag(env, "tag-1", "go")
	seedTag(env, "tag-2", "golang")

	newName := "golang"
	_, err := env.svc.UpdateTag(context.Background(), "tag-1", TagPatch{Name: &newName})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestDelete(t *testing.T) {
	env := newTestEnv()
	seedCard(env, "card-1", "Doomed")

	err := env.svc.Delete(context.Background(), models.TypeCards, "card-1")
	require.NoError(t, err)

	stored := env.entities[memKey(models.TypeCards, "card-1")]
	assert.True(t, stored.Deleted)
	assert.Equal(t, testNow, stored.DeletedAt)
	assert.False(t, stored.Synced)

	calls := env.queue.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OpDelete, calls[0].Kind)

	// Повторное удаление идемпотентно
	require.NoError(t, env.svc.Delete(context.Background(), models.TypeCards, "card-1"))
	assert.Len(t, env.queue.EnqueueCalls(), 1)
}

func TestDelete_NeverSyncStaysLocal(t *testing.T) {
	env := newTestEnv()
	col := seedCollection(env, "col-p", "Private", "private")
	flags := models.FlagNeverSync
	col.Flags = &flags

	card := seedCard(env, "card-1", "Local only")
	card.ParentID = "col-p"

	// Флаг унаследован от коллекции: удаление не покидает устройство
	err := env.svc.Delete(context.Background(), models.TypeCards, "card-1")
	require.NoError(t, err)

	stored := env.entities[memKey(models.TypeCards, "card-1")]
	assert.True(t, stored.DeletedLocally)
	assert.False(t, stored.Deleted)

	assert.Empty(t, env.queue.EnqueueCalls())
	assert.Empty(t, env.conflicts.ResolveConflictOnDeleteCalls())
}

func TestDelete_DissolvesConflictPair(t *testing.T) {
	env := newTestEnv()
	card := seedCard(env, "card-1", "Conflict copy")
	card.ConflictWithID = "card-2"

	env.conflicts.ResolveConflictOnDeleteFunc = func(ctx context.Context, deleted *models.Entity) (*models.Entity, error) {
		return &models.Entity{ID: "card-2", Type: models.TypeCards, WorkspaceID: "ws-1"}, nil
	}

	err := env.svc.Delete(context.Background(), models.TypeCards, "card-1")
	require.NoError(t, err)

	require.Len(t, env.conflicts.ResolveConflictOnDeleteCalls(), 1)
	assert.Equal(t, "card-1", env.conflicts.ResolveConflictOnDeleteCalls()[0].Deleted.ID)

	// Очистка выжившей половины уходит на сервер
	calls := env.queue.EnqueueCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, models.OpDelete, calls[0].Kind)
	assert.Equal(t, "card-2", calls[1].EntityID)
	assert.Equal(t, models.OpUpdate, calls[1].Kind)
	assert.Equal(t, map[string]any{"conflictWithId": "", "flags": nil}, calls[1].Payload)
}

func TestPurgeDeleted(t *testing.T) {
	env := newTestEnv()

	confirmed := seedCard(env, "card-a", "Confirmed tombstone")
	confirmed.Deleted = true
	confirmed.Synced = true

	pending := seedCard(env, "card-b", "Unconfirmed tombstone")
	pending.Deleted = true
	pending.Synced = false

	local := seedCard(env, "card-c", "Local tombstone")
	local.DeletedLocally = true

	seedCard(env, "card-d", "Alive")

	colGone := seedCollection(env, "col-x", "Old", "old")
	colGone.Deleted = true
	colGone.Synced = true

	purged, err := env.svc.PurgeDeleted(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, purged)

	assert.NotContains(t, env.entities, memKey(models.TypeCards, "card-a"))
	assert.Contains(t, env.entities, memKey(models.TypeCards, "card-b"))
	assert.NotContains(t, env.entities, memKey(models.TypeCards, "card-c"))
	assert.Contains(t, env.entities, memKey(models.TypeCards, "card-d"))
	assert.NotContains(t, env.entities, memKey(models.TypeCollections, "col-x"))
}

func TestGet_ExcludesTombstones(t *testing.T) {
	env := newTestEnv()
	card := seedCard(env, "card-1", "Gone")
	card.Deleted = true

	_, err := env.svc.Get(context.Background(), models.TypeCards, "card-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is deleted")
}

func TestList_FiltersWorkspace(t *testing.T) {
	env := newTestEnv()
	seedCard(env, "card-1", "Mine")
	foreign := seedCard(env, "card-2", "Foreign")
	foreign.WorkspaceID = "ws-other"
	dead := seedCard(env, "card-3", "Dead")
	dead.Deleted = true

	cards, err := env.svc.List(context.Background(), models.TypeCards)
	require.NoError(t, err)

	require.Len(t, cards, 1)
	assert.Equal(t, "card-1", cards[0].ID)
}
