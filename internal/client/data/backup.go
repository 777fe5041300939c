package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
)

// snapshotVersion задает версию формата снапшота
const snapshotVersion = 1

// Snapshot представляет переносимый JSON-слепок живых сущностей workspace'а.
// Tombstone'ы в снапшот не попадают: источником правды об удалениях
// остается сервер.
type Snapshot struct {
	Collections []*models.Entity `json:"collections"`
	Tags        []*models.Entity `json:"tags"`
	Cards       []*models.Entity `json:"cards"`
	WorkspaceID string           `json:"workspaceId"`
	ExportedAt  int64            `json:"exportedAt"`
	Version     int              `json:"version"`
}

// ImportResult содержит итог вливания снапшота
type ImportResult struct {
	Imported int // создано новых сущностей
	Skipped  int // пропущено: уже есть локально либо удалены в снапшоте
}

// Export сериализует живые сущности workspace'а в JSON-снапшот
func (s *service) Export(ctx context.Context) ([]byte, error) {
	snap := Snapshot{
		WorkspaceID: s.workspaceID,
		ExportedAt:  s.now(),
		Version:     snapshotVersion,
	}

	var err error
	if snap.Collections, err = s.List(ctx, models.TypeCollections); err != nil {
		return nil, err
	}
	if snap.Tags, err = s.List(ctx, models.TypeTags); err != nil {
		return nil, err
	}
	if snap.Cards, err = s.List(ctx, models.TypeCards); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	s.logger.Info("workspace exported",
		"collections", len(snap.Collections), "tags", len(snap.Tags), "cards", len(snap.Cards))

	return data, nil
}

// Import вливает снапшот в workspace. Отсутствующие локально сущности
// создаются как несинхронизированные и ставятся в очередь; существующие
// пропускаются: локальное состояние выигрывает у снапшота.
func (s *service) Import(ctx context.Context, data []byte) (*ImportResult, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if snap.Version > snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	result := &ImportResult{}

	// Родительские типы раньше ссылающихся на них, как при pull
	groups := []struct {
		entityType models.EntityType
		entities   []*models.Entity
	}{
		{models.TypeCollections, snap.Collections},
		{models.TypeTags, snap.Tags},
		{models.TypeCards, snap.Cards},
	}

	for _, group := range groups {
		for _, entity := range group.entities {
			imported, err := s.importEntity(ctx, group.entityType, entity)
			if err != nil {
				return result, err
			}
			if imported {
				result.Imported++
			} else {
				result.Skipped++
			}
		}
	}

	s.logger.Info("snapshot imported",
		"imported", result.Imported, "skipped", result.Skipped)

	return result, nil
}

// importEntity вставляет одну сущность снапшота, если ее еще нет локально
func (s *service) importEntity(ctx context.Context, entityType models.EntityType, entity *models.Entity) (bool, error) {
	if entity == nil || entity.ID == "" || entity.Deleted || entity.DeletedLocally {
		return false, nil
	}

	_, err := s.entityStore.GetEntity(ctx, entityType, entity.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrEntityNotFound) {
		return false, fmt.Errorf("failed to load %s: %w", entityType, err)
	}

	restored := entity.Clone()
	restored.Type = entityType
	restored.WorkspaceID = s.workspaceID
	restored.Synced = false
	restored.LastModified = s.now()
	if restored.Version == 0 {
		restored.Version = 1
	}

	if err := s.entityStore.SaveEntity(ctx, restored); err != nil {
		return false, fmt.Errorf("failed to save %s: %w", entityType, err)
	}

	// Стабильный id делает восстановление идемпотентным: на повторный
	// create сервер отвечает существующей записью
	if err := s.queue.Enqueue(ctx, entityType, restored.ID, models.OpCreate, nil); err != nil {
		return false, fmt.Errorf("failed to enqueue create: %w", err)
	}

	return true, nil
}
