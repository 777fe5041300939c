package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pawkit/pawkit/internal/client/queue"
	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/pkg/api"
)

// Resolver выполняет side-эффекты разрешения конфликтов: создает
// конфликтные копии и чистит конфликтные пары. Чистые merge-правила
// живут в internal/merge.
type Resolver struct {
	entityStore storage.EntityStorage
	logger      *slog.Logger
	now         func() int64 // Unix-миллисекунды, подменяется в тестах
}

// Проверяем, что Resolver пригоден как обработчик конфликтов очереди
var _ queue.ConflictHandler = (*Resolver)(nil)

// NewResolver creates a new conflict resolver
func NewResolver(entityStore storage.EntityStorage, logger *slog.Logger) *Resolver {
	return &Resolver{
		entityStore: entityStore,
		logger:      logger,
		now:         func() int64 { return time.Now().UnixMilli() },
	}
}

// ResolveVersionConflict forks the local copy instead of picking a winner.
// Both edits survive: the local state moves into a new entity (the conflict
// copy), and the original takes the server's fields. The two are linked
// through ConflictWithID and both carry FlagConflict.
//
// Возвращенная копия еще не стоит в очереди: вызывающий ставит ее как
// create. Возврат (nil, nil) означает, что копия не нужна.
func (r *Resolver) ResolveVersionConflict(ctx context.Context, entityType models.EntityType, entityID string, serverEntity *api.Entity) (*models.Entity, error) {
	if serverEntity == nil {
		return nil, fmt.Errorf("conflict response carries no server entity for %s/%s", entityType, entityID)
	}

	local, err := r.entityStore.GetEntity(ctx, entityType, entityID)
	if err != nil {
		// Локальной копии уже нет: принимаем серверное состояние, копия не нужна
		r.logger.Warn("conflict without local entity, accepting server state",
			"type", entityType, "id", entityID)
		remote := models.FromWire(entityType, serverEntity)
		remote.Synced = true
		remote.LastModified = remote.UpdatedAt
		if err := r.entityStore.SaveEntity(ctx, remote); err != nil {
			return nil, fmt.Errorf("failed to save server entity: %w", err)
		}
		return nil, nil
	}

	// Конфликтная копия получает до-конфликтные локальные поля
	fork := local.Clone()
	fork.ID = uuid.New().String()
	fork.Version = 1
	fork.UpdatedAt = 0
	fork.Synced = false
	fork.LastModified = r.now()
	fork.ConflictWithID = local.ID
	setConflictFlag(fork)

	// Оригинал принимает серверные поля и ссылку на копию
	original := models.FromWire(entityType, serverEntity)
	original.Synced = true
	original.LastModified = original.UpdatedAt
	original.ConflictWithID = fork.ID
	setConflictFlag(original)

	if err := r.entityStore.SaveEntity(ctx, fork); err != nil {
		return nil, fmt.Errorf("failed to save conflict copy: %w", err)
	}
	if err := r.entityStore.SaveEntity(ctx, original); err != nil {
		return nil, fmt.Errorf("failed to save original after conflict: %w", err)
	}

	r.logger.Info("version conflict forked",
		"type", entityType,
		"id", entityID,
		"copy_id", fork.ID,
		"server_version", serverEntity.Version)

	return fork, nil
}

// ResolveConflictOnDelete repairs the surviving half of a conflict pair
// when its counterpart is deleted: the flag and the link come off, and the
// survivor is marked unsynced so the cleanup reaches the server.
//
// Возвращает выжившую сущность; вызывающий ставит для нее update в очередь.
// (nil, nil) означает, что удаленная сущность не состояла в паре либо пары уже нет.
func (r *Resolver) ResolveConflictOnDelete(ctx context.Context, deleted *models.Entity) (*models.Entity, error) {
	if deleted == nil || deleted.ConflictWithID == "" {
		return nil, nil
	}

	survivor, err := r.entityStore.GetEntity(ctx, deleted.Type, deleted.ConflictWithID)
	if err != nil {
		// Вторая половина пары уже удалена
		return nil, nil
	}

	survivor.ConflictWithID = ""
	clearConflictFlag(survivor)
	survivor.Synced = false
	survivor.LastModified = r.now()

	if err := r.entityStore.SaveEntity(ctx, survivor); err != nil {
		return nil, fmt.Errorf("failed to save conflict survivor: %w", err)
	}

	r.logger.Info("conflict pair dissolved",
		"type", deleted.Type,
		"deleted_id", deleted.ID,
		"survivor_id", survivor.ID)

	return survivor, nil
}

// setConflictFlag помечает сущность как половину конфликтной пары,
// сохраняя остальные явные флаги
func setConflictFlag(e *models.Entity) {
	if e.Flags == nil {
		flags := models.FlagConflict
		e.Flags = &flags
		return
	}
	e.Flags.Set(models.FlagConflict)
}

// clearConflictFlag снимает конфликтный флаг; если явных флагов не
// остается, возвращаем сущность к наследованию флагов от родителя
func clearConflictFlag(e *models.Entity) {
	if e.Flags == nil {
		return
	}
	e.Flags.Clear(models.FlagConflict)
	if *e.Flags == 0 {
		e.Flags = nil
	}
}
