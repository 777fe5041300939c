package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/pkg/api"
)

func (env *testEnv) newResolver() *Resolver {
	resolver := NewResolver(env.entityStore, testLogger())
	resolver.now = func() int64 { return 1700000500000 }
	return resolver
}

func TestResolveVersionConflict(t *testing.T) {
	env := newTestEnv()
	resolver := env.newResolver()
	ctx := context.Background()

	env.seedEntity(&models.Entity{
		ID:           "card-1",
		Type:         models.TypeCards,
		WorkspaceID:  "ws-1",
		URL:          "https://example.com/article",
		Title:        "Local edit",
		Version:      3,
		CreatedAt:    1700000000000,
		LastModified: 1700000400000,
	})

	server := &api.Entity{
		ID:          "card-1",
		WorkspaceID: "ws-1",
		URL:         "https://example.com/article",
		Title:       "Server edit",
		Version:     5,
		CreatedAt:   1700000000000,
		UpdatedAt:   1700000450000,
	}

	fork, err := resolver.ResolveVersionConflict(ctx, models.TypeCards, "card-1", server)
	require.NoError(t, err)
	require.NotNil(t, fork)

	// Копия уносит локальную правку под новым id
	assert.NotEqual(t, "card-1", fork.ID)
	assert.Equal(t, "Local edit", fork.Title)
	assert.Equal(t, int64(1), fork.Version)
	assert.False(t, fork.Synced)
	assert.Equal(t, int64(1700000500000), fork.LastModified)
	assert.Equal(t, "card-1", fork.ConflictWithID)
	require.NotNil(t, fork.Flags)
	assert.True(t, fork.Flags.Has(models.FlagConflict))

	// Оригинал принимает серверное состояние и ссылку на копию
	original := env.entity(models.TypeCards, "card-1")
	require.NotNil(t, original)
	assert.Equal(t, "Server edit", original.Title)
	assert.Equal(t, int64(5), original.Version)
	assert.True(t, original.Synced)
	assert.Equal(t, int64(1700000450000), original.LastModified)
	assert.Equal(t, fork.ID, original.ConflictWithID)
	require.NotNil(t, original.Flags)
	assert.True(t, original.Flags.Has(models.FlagConflict))

	// Обе половины пары лежат в хранилище
	require.NotNil(t, env.entity(models.TypeCards, fork.ID))
}

func TestResolveVersionConflict_NoServerEntity(t *testing.T) {
	env := newTestEnv()
	resolver := env.newResolver()
	ctx := context.Background()

	fork, err := resolver.ResolveVersionConflict(ctx, models.TypeCards, "card-1", nil)
	require.Error(t, err)
	assert.Nil(t, fork)
	assert.Contains(t, err.Error(), "no server entity")
}

func TestResolveVersionConflict_LocalMissing(t *testing.T) {
	env := newTestEnv()
	resolver := env.newResolver()
	ctx := context.Background()

	server := &api.Entity{
		ID:          "card-1",
		WorkspaceID: "ws-1",
		Title:       "Server edit",
		Version:     5,
		CreatedAt:   1700000000000,
		UpdatedAt:   1700000450000,
	}

	// Локальной копии уже нет: принимаем серверное состояние без копии
	fork, err := resolver.ResolveVersionConflict(ctx, models.TypeCards, "card-1", server)
	require.NoError(t, err)
	assert.Nil(t, fork)

	saved := env.entity(models.TypeCards, "card-1")
	require.NotNil(t, saved)
	assert.Equal(t, "Server edit", saved.Title)
	assert.True(t, saved.Synced)
	assert.Equal(t, int64(1700000450000), saved.LastModified)
	assert.Empty(t, saved.ConflictWithID)
	assert.Nil(t, saved.Flags)
}

func TestResolveVersionConflict_SaveFailure(t *testing.T) {
	env := newTestEnv()
	resolver := env.newResolver()
	ctx := context.Background()

	env.seedEntity(&models.Entity{
		ID:          "card-1",
		Type:        models.TypeCards,
		WorkspaceID: "ws-1",
		Title:       "Local edit",
	})
	env.entityStore.SaveEntityFunc = func(ctx context.Context, entity *models.Entity) error {
		return errors.New("disk full")
	}

	server := &api.Entity{ID: "card-1", WorkspaceID: "ws-1", Version: 5, UpdatedAt: 1700000450000}

	fork, err := resolver.ResolveVersionConflict(ctx, models.TypeCards, "card-1", server)
	require.Error(t, err)
	assert.Nil(t, fork)
	assert.Contains(t, err.Error(), "failed to save conflict copy")
}

func TestResolveConflictOnDelete(t *testing.T) {
	env := newTestEnv()
	resolver := env.newResolver()
	ctx := context.Background()

	flags := models.FlagConflict
	env.seedEntity(&models.Entity{
		ID:             "card-2",
		Type:           models.TypeCards,
		WorkspaceID:    "ws-1",
		Title:          "Conflict copy",
		ConflictWithID: "card-1",
		Flags:          &flags,
		LastModified:   1700000100000,
		Synced:         true,
	})

	deleted := &models.Entity{
		ID:             "card-1",
		Type:           models.TypeCards,
		ConflictWithID: "card-2",
	}

	survivor, err := resolver.ResolveConflictOnDelete(ctx, deleted)
	require.NoError(t, err)
	require.NotNil(t, survivor)

	assert.Equal(t, "card-2", survivor.ID)
	assert.Empty(t, survivor.ConflictWithID)
	// Последний явный флаг снят: сущность снова наследует флаги родителя
	assert.Nil(t, survivor.Flags)
	assert.False(t, survivor.Synced)
	assert.Equal(t, int64(1700000500000), survivor.LastModified)

	saved := env.entity(models.TypeCards, "card-2")
	require.NotNil(t, saved)
	assert.False(t, saved.Synced)
	assert.Empty(t, saved.ConflictWithID)
}

func TestResolveConflictOnDelete_KeepsOtherFlags(t *testing.T) {
	env := newTestEnv()
	resolver := env.newResolver()
	ctx := context.Background()

	flags := models.FlagConflict | models.FlagNeverSync
	env.seedEntity(&models.Entity{
		ID:             "card-2",
		Type:           models.TypeCards,
		WorkspaceID:    "ws-1",
		ConflictWithID: "card-1",
		Flags:          &flags,
	})

	deleted := &models.Entity{ID: "card-1", Type: models.TypeCards, ConflictWithID: "card-2"}

	survivor, err := resolver.ResolveConflictOnDelete(ctx, deleted)
	require.NoError(t, err)
	require.NotNil(t, survivor)

	require.NotNil(t, survivor.Flags)
	assert.False(t, survivor.Flags.Has(models.FlagConflict))
	assert.True(t, survivor.Flags.Has(models.FlagNeverSync))
}

func TestResolveConflictOnDelete_NoPair(t *testing.T) {
	env := newTestEnv()
	resolver := env.newResolver()
	ctx := context.Background()

	// Сущность не состояла в конфликтной паре
	survivor, err := resolver.ResolveConflictOnDelete(ctx, &models.Entity{
		ID:   "card-1",
		Type: models.TypeCards,
	})
	require.NoError(t, err)
	assert.Nil(t, survivor)

	// Вторая половина пары уже удалена
	survivor, err = resolver.ResolveConflictOnDelete(ctx, &models.Entity{
		ID:             "card-1",
		Type:           models.TypeCards,
		ConflictWithID: "ghost",
	})
	require.NoError(t, err)
	assert.Nil(t, survivor)

	assert.Empty(t, env.entityStore.SaveEntityCalls())
}
