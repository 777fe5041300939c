package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpClient "github.com/pawkit/pawkit/internal/client/api"
	"github.com/pawkit/pawkit/internal/client/queue"
	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/merge"
	"github.com/pawkit/pawkit/internal/models"
)

// SyncResult contains sync operation results
type SyncResult struct {
	Errors    []string // ошибки уровня типа, не прервавшие синхронизацию
	Pushed    int      // количество отправленных на сервер операций
	Pulled    int      // количество полученных с сервера записей
	Merged    int      // количество записей, принятых в локальное хранилище
	Skipped   int      // количество серверных записей, отклоненных merge-правилами
	Conflicts int      // количество version conflict'ов за проход
	Parked    int      // количество операций, запаркованных при отправке
	Deferred  bool     // синхронизацию уже ведет другая сессия
}

// Orchestrator walks a full synchronization pass: push the outbound queue
// first, then pull each entity type since its checkpoint and merge.
type Orchestrator struct {
	apiClient   httpClient.ClientAPI
	entityStore storage.EntityStorage
	checkpoints storage.CheckpointStorage
	queue       queue.Service
	rules       merge.Rules
	logger      *slog.Logger
}

// NewOrchestrator creates a new sync orchestrator
func NewOrchestrator(apiClient httpClient.ClientAPI, entityStore storage.EntityStorage, checkpoints storage.CheckpointStorage, queueSvc queue.Service, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		apiClient:   apiClient,
		entityStore: entityStore,
		checkpoints: checkpoints,
		queue:       queueSvc,
		rules:       merge.NewRules(),
		logger:      logger,
	}
}

// FullSync performs full synchronization with the server:
//  1. Отправляет очередь локальных мутаций (push перед pull)
//  2. Забирает серверные изменения по каждому типу с его checkpoint'а
//  3. Сливает их в локальное хранилище по правилам internal/merge
//
// Ошибка pull'а одного типа записывается в result.Errors, остальные типы
// продолжают синхронизацию. 401 прерывает весь проход.
func (o *Orchestrator) FullSync(ctx context.Context, token, workspaceID string) (*SyncResult, error) {
	o.logger.Info("starting synchronization", "workspace_id", workspaceID)

	result := &SyncResult{}

	if err := o.push(ctx, token, result); err != nil {
		return result, err
	}

	for _, entityType := range models.PullOrder() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := o.pullType(ctx, token, workspaceID, entityType, result); err != nil {
			if errors.Is(err, httpClient.ErrUnauthorized) {
				return result, err
			}
			// Уже принятые изменения остаются: merge идемпотентен
			o.logger.Warn("pull failed for entity type",
				"type", entityType, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", entityType, err))
		}
	}

	o.logger.Info("synchronization completed",
		"pushed", result.Pushed,
		"pulled", result.Pulled,
		"merged", result.Merged,
		"skipped", result.Skipped,
		"conflicts", result.Conflicts,
		"errors", len(result.Errors))

	return result, nil
}

// PushOnlySync drains the outbound queue without pulling
func (o *Orchestrator) PushOnlySync(ctx context.Context, token string) (*SyncResult, error) {
	result := &SyncResult{}
	if err := o.push(ctx, token, result); err != nil {
		return result, err
	}
	return result, nil
}

// DeltaSync chooses the cheapest sufficient pass: a workspace that already
// holds local data pushes only, an empty one needs the full pull.
func (o *Orchestrator) DeltaSync(ctx context.Context, token, workspaceID string) (*SyncResult, error) {
	has, err := o.entityStore.HasEntities(ctx, workspaceID)
	if err != nil {
		return &SyncResult{}, fmt.Errorf("failed to inspect local workspace: %w", err)
	}
	if has {
		return o.PushOnlySync(ctx, token)
	}
	return o.FullSync(ctx, token, workspaceID)
}

// push прогоняет исходящую очередь и переносит счетчики в результат
func (o *Orchestrator) push(ctx context.Context, token string, result *SyncResult) error {
	drained, err := o.queue.Drain(ctx, token)
	if drained != nil {
		result.Pushed += drained.Pushed
		result.Conflicts += drained.Conflicts
		result.Parked += drained.Parked
	}
	if err != nil {
		return fmt.Errorf("push phase failed: %w", err)
	}
	return nil
}

// pullType забирает изменения одного типа с его checkpoint'а и сливает их
func (o *Orchestrator) pullType(ctx context.Context, token, workspaceID string, entityType models.EntityType, result *SyncResult) error {
	since, err := o.checkpoints.GetCheckpoint(ctx, entityType)
	if err != nil {
		o.logger.Warn("failed to read checkpoint, pulling from scratch",
			"type", entityType, "error", err)
		since = 0
	}

	resp, err := o.apiClient.ListEntities(ctx, token, entityType, workspaceID, since)
	if err != nil {
		return fmt.Errorf("list request failed: %w", err)
	}

	result.Pulled += len(resp.Items)
	maxSeen := since

	for i := range resp.Items {
		wire := &resp.Items[i]
		if wire.ID == "" {
			// Поврежденная запись без id: слить некуда
			o.logger.Warn("pulled record without id skipped", "type", entityType)
			result.Skipped++
			continue
		}

		remote := models.FromWire(entityType, wire)
		normalizeRemote(remote, workspaceID)

		if remote.UpdatedAt > maxSeen {
			maxSeen = remote.UpdatedAt
		}

		if err := o.mergeRemote(ctx, remote, result); err != nil {
			o.logger.Warn("failed to merge pulled record",
				"type", entityType, "id", remote.ID, "error", err)
			result.Skipped++
		}
	}

	if maxSeen > since {
		if err := o.checkpoints.SaveCheckpoint(ctx, entityType, maxSeen); err != nil {
			// Следующий pull заберет лишнее, но merge это переживет
			o.logger.Warn("failed to save checkpoint",
				"type", entityType, "error", err)
		}
	}

	o.logger.Debug("pull completed",
		"type", entityType, "since", since, "received", len(resp.Items))

	return nil
}

// mergeRemote применяет merge-решение для одной серверной записи
func (o *Orchestrator) mergeRemote(ctx context.Context, remote *models.Entity, result *SyncResult) error {
	local, err := o.entityStore.GetEntity(ctx, remote.Type, remote.ID)
	if err != nil {
		if !errors.Is(err, storage.ErrEntityNotFound) {
			return fmt.Errorf("failed to read local entity: %w", err)
		}
		local = nil
	}

	status, err := o.queue.EntityStatus(ctx, remote.Type, remote.ID)
	if err != nil {
		return fmt.Errorf("failed to read queue status: %w", err)
	}
	queued := status != models.SyncStatusSynced

	decision := o.rules.Decide(local, remote, queued, o.effectiveFlags(ctx, local))
	switch decision {
	case merge.Skip:
		o.logger.Debug("server record skipped",
			"type", remote.Type, "id", remote.ID, "queued", queued)
		result.Skipped++
		return nil

	case merge.AcceptResurrect:
		o.logger.Info("server edit resurrected locally deleted entity",
			"type", remote.Type, "id", remote.ID)
	}

	// Принятая запись становится локальной копией серверного состояния
	remote.Synced = true
	remote.LastModified = remote.UpdatedAt

	if err := o.entityStore.SaveEntity(ctx, remote); err != nil {
		return fmt.Errorf("failed to save merged entity: %w", err)
	}

	result.Merged++
	return nil
}

// effectiveFlags вычисляет действующие sync-флаги локальной копии
func (o *Orchestrator) effectiveFlags(ctx context.Context, local *models.Entity) models.SyncFlags {
	return models.EffectiveFlags(local, func(id string) *models.Entity {
		parent, err := o.entityStore.GetEntity(ctx, models.TypeCollections, id)
		if err != nil {
			return nil
		}
		return parent
	})
}

// normalizeRemote чинит дефекты серверной записи перед merge'м:
// отсутствующие метки и workspace получают рабочие значения по умолчанию
func normalizeRemote(remote *models.Entity, workspaceID string) {
	if remote.UpdatedAt == 0 {
		if remote.DeletedAt != 0 {
			remote.UpdatedAt = remote.DeletedAt
		} else {
			remote.UpdatedAt = remote.CreatedAt
		}
	}
	if remote.CreatedAt == 0 {
		remote.CreatedAt = remote.UpdatedAt
	}
	if remote.WorkspaceID == "" {
		remote.WorkspaceID = workspaceID
	}
}
