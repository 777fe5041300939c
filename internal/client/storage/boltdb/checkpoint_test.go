package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
)

func TestStorage_SaveGetCheckpoint(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	// До первого pull cursor равен 0
	ts, err := store.GetCheckpoint(ctx, models.TypeCards)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)

	// Сохраняем cursor
	err = store.SaveCheckpoint(ctx, models.TypeCards, 1700000000000)
	require.NoError(t, err)

	ts, err = store.GetCheckpoint(ctx, models.TypeCards)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), ts)

	// Перезапись продвигает cursor
	err = store.SaveCheckpoint(ctx, models.TypeCards, 1700000005000)
	require.NoError(t, err)

	ts, err = store.GetCheckpoint(ctx, models.TypeCards)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000005000), ts)
}

func TestStorage_Checkpoint_PerType(t *testing.T) {
	// Курсоры разных типов независимы
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.SaveCheckpoint(ctx, models.TypeCollections, 1000))
	require.NoError(t, store.SaveCheckpoint(ctx, models.TypeCards, 2000))

	ts, err := store.GetCheckpoint(ctx, models.TypeCollections)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), ts)

	ts, err = store.GetCheckpoint(ctx, models.TypeCards)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), ts)

	// Третий тип не тронут
	ts, err = store.GetCheckpoint(ctx, models.TypeTags)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)
}

func TestStorage_ClearCheckpoints(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	for _, entityType := range models.PullOrder() {
		require.NoError(t, store.SaveCheckpoint(ctx, entityType, 5000))
	}

	// Сбрасываем все курсоры
	err := store.ClearCheckpoints(ctx)
	require.NoError(t, err)

	for _, entityType := range models.PullOrder() {
		ts, err := store.GetCheckpoint(ctx, entityType)
		require.NoError(t, err)
		assert.Equal(t, int64(0), ts)
	}

	// После сброса cursor снова можно сохранять
	require.NoError(t, store.SaveCheckpoint(ctx, models.TypeCards, 6000))
	ts, err := store.GetCheckpoint(ctx, models.TypeCards)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), ts)
}

func TestStorage_Checkpoint_ClosedDB(t *testing.T) {
	store, cleanup := createTestStorage(t)
	cleanup() // Закрываем сразу

	ctx := context.Background()

	err := store.SaveCheckpoint(ctx, models.TypeCards, 1000)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.GetCheckpoint(ctx, models.TypeCards)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.ClearCheckpoints(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
