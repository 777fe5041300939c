package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/pawkit/pawkit/internal/client/api"
	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/pkg/api"
)

// Лимиты обработки очереди
const (
	// maxRetries задает число неудачных попыток, после которого операция паркуется
	maxRetries = 3
	// maxConsecutiveFailures задает число подряд неудачных отправок, после которого
	// drain-проход прерывается
	maxConsecutiveFailures = 3
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для queue.Service
type Service interface {
	// Enqueue ставит мутацию в очередь, сливая ее с уже стоящей операцией
	// той же сущности. Сетевых вызовов не делает и не блокируется на них.
	Enqueue(ctx context.Context, entityType models.EntityType, entityID string, kind models.OpKind, payload map[string]any) error

	// Drain отправляет очередь на сервер в порядке FIFO.
	// При отвергнутом токене возвращает ErrUnauthorized вместе с частичным
	// результатом.
	Drain(ctx context.Context, token string) (*DrainResult, error)

	// PendingCount возвращает число операций, ожидающих отправки
	PendingCount(ctx context.Context) (int, error)

	// FailedCount возвращает число запаркованных операций
	FailedCount(ctx context.Context) (int, error)

	// ActiveIDs возвращает ключи "тип/id" операций, отправляемых прямо сейчас
	ActiveIDs() []string

	// EntityStatus возвращает sync-статус сущности для UI
	EntityStatus(ctx context.Context, entityType models.EntityType, entityID string) (models.SyncStatus, error)

	// RetryFailed возвращает запаркованные операции в очередь
	RetryFailed(ctx context.Context) (int, error)

	// DiscardFailed удаляет одну запаркованную операцию из очереди
	DiscardFailed(ctx context.Context, entityType models.EntityType, entityID string) error
}

//go:generate moq -out conflicthandler_mock.go . ConflictHandler

// ConflictHandler разрешает version conflict, о котором сообщил сервер.
// Возвращенная conflict-копия (если она создана) ставится в очередь как create.
type ConflictHandler interface {
	ResolveVersionConflict(ctx context.Context, entityType models.EntityType, entityID string, serverEntity *api.Entity) (*models.Entity, error)
}

// Service handles the durable outbound mutation queue
type service struct {
	queueStore  storage.QueueStorage
	entityStore storage.EntityStorage
	apiClient   httpClient.ClientAPI
	conflicts   ConflictHandler
	logger      *slog.Logger

	mu      sync.Mutex          // защищает переходы операций и active-набор
	active  map[string]struct{} // сущности, отправляемые прямо сейчас
	drainMu sync.Mutex          // сериализует drain-проходы
}

// NewService creates a new queue service
func NewService(queueStore storage.QueueStorage, entityStore storage.EntityStorage, apiClient httpClient.ClientAPI, conflicts ConflictHandler, logger *slog.Logger) Service {
	return &service{
		queueStore:  queueStore,
		entityStore: entityStore,
		apiClient:   apiClient,
		conflicts:   conflicts,
		logger:      logger,
		active:      make(map[string]struct{}),
	}
}

// DrainResult contains the outcome of one drain pass
type DrainResult struct {
	Pushed      int  // количество успешно отправленных операций
	Dropped     int  // количество операций, снятых без повторной попытки (404 и т.п.)
	Conflicts   int  // количество операций, завершившихся version conflict
	Failed      int  // количество неудачных попыток отправки за проход
	Parked      int  // количество операций, запаркованных за проход
	NeedsReauth bool // сервер отверг токен, нужна повторная аутентификация
	Aborted     bool // проход прерван после серии подряд неудачных отправок
}

// Enqueue records a local mutation for later dispatch.
// A new mutation merges with any operation already queued for the same
// entity, so the queue never holds more than one operation per entity:
//
//	create + update -> create
//	update + update -> update с объединенным payload
//	update + delete -> delete
//	create + delete -> пустая очередь (сервер сущность не видел)
//
// Merging preserves the original queue position and resets the retry
// state: a fresh local edit is fresh intent, even for a parked operation.
func (s *service) Enqueue(ctx context.Context, entityType models.EntityType, entityID string, kind models.OpKind, payload map[string]any) error {
	if !entityType.Valid() {
		return fmt.Errorf("unknown entity type: %s", entityType)
	}
	switch kind {
	case models.OpCreate, models.OpUpdate, models.OpDelete:
	default:
		return fmt.Errorf("unknown operation kind: %s", kind)
	}

	op := &models.Operation{
		ID:         uuid.New().String(),
		EntityType: entityType,
		EntityID:   entityID,
		Kind:       kind,
		Status:     models.OpStatusPending,
		CreatedAt:  time.Now().UnixMilli(),
	}

	if kind == models.OpUpdate && len(payload) > 0 {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		op.Payload = raw
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Фиксируем версию сервера, от которой отталкивается мутация
	if entity, err := s.entityStore.GetEntity(ctx, entityType, entityID); err == nil {
		op.BaseVersion = entity.Version
	}

	existing, err := s.queueStore.GetOperation(ctx, entityType, entityID)
	if err != nil && !errors.Is(err, storage.ErrOperationNotFound) {
		return fmt.Errorf("failed to read queued operation: %w", err)
	}

	if existing != nil {
		merged, drop := mergeOperations(existing, op, s.logger)
		if drop {
			if err := s.queueStore.DeleteOperation(ctx, entityType, entityID); err != nil {
				return fmt.Errorf("failed to delete operation: %w", err)
			}
			s.logger.Debug("queued create canceled by delete",
				"type", entityType, "id", entityID)
			return nil
		}
		op = merged
	}

	if err := s.queueStore.SaveOperation(ctx, op); err != nil {
		return fmt.Errorf("failed to save operation: %w", err)
	}

	s.logger.Debug("operation enqueued",
		"type", entityType, "id", entityID, "kind", op.Kind, "merged", existing != nil)

	return nil
}

// mergeOperations сливает новую мутацию с уже стоящей в очереди операцией.
// Возвращает итоговую операцию либо drop=true, когда пара create+delete
// взаимно уничтожается. Итог наследует позицию FIFO и базовую версию
// исходной операции; retry-состояние сбрасывается.
func mergeOperations(existing, incoming *models.Operation, logger *slog.Logger) (*models.Operation, bool) {
	merged := incoming.Clone()
	merged.CreatedAt = existing.CreatedAt
	merged.BaseVersion = existing.BaseVersion

	switch {
	case existing.Kind == models.OpCreate && incoming.Kind == models.OpUpdate:
		// Сервер сущность еще не видел: остаемся create, свежие поля
		// попадут в отправку при чтении живой сущности
		merged.Kind = models.OpCreate
		merged.Payload = nil

	case existing.Kind == models.OpCreate && incoming.Kind == models.OpDelete:
		return nil, true

	case existing.Kind == models.OpUpdate && incoming.Kind == models.OpUpdate:
		merged.Payload = mergePayloads(existing.Payload, incoming.Payload)

	case existing.Kind == models.OpUpdate && incoming.Kind == models.OpDelete:
		merged.Kind = models.OpDelete
		merged.Payload = nil

	case existing.Kind == models.OpDelete && incoming.Kind == models.OpCreate:
		// Пересоздание под тем же id после локального удаления
		logger.Warn("queued delete replaced by create",
			"type", incoming.EntityType, "id", incoming.EntityID)
		merged.Kind = models.OpCreate
		merged.Payload = nil

	case existing.Kind == models.OpDelete && incoming.Kind == models.OpUpdate:
		// Обновление удаленной сущности: удаление остается в силе
		logger.Warn("update for deleted entity ignored",
			"type", incoming.EntityType, "id", incoming.EntityID)
		merged.Kind = models.OpDelete
		merged.Payload = nil

	default:
		// create+create и delete+delete: повтор того же намерения
		merged.Kind = existing.Kind
		merged.Payload = existing.Payload
	}

	return merged, false
}

// mergePayloads накладывает новые частичные поля поверх старых.
// При нечитаемом payload побеждает более новый.
func mergePayloads(oldRaw, newRaw json.RawMessage) json.RawMessage {
	if len(oldRaw) == 0 {
		return newRaw
	}
	if len(newRaw) == 0 {
		return oldRaw
	}

	var oldFields, newFields map[string]any
	if err := json.Unmarshal(oldRaw, &oldFields); err != nil {
		return newRaw
	}
	if err := json.Unmarshal(newRaw, &newFields); err != nil {
		return newRaw
	}

	for k, v := range newFields {
		oldFields[k] = v
	}

	merged, err := json.Marshal(oldFields)
	if err != nil {
		return newRaw
	}
	return merged
}

// PendingCount returns the number of operations awaiting dispatch.
// Parked operations are excluded: they stay out of the active set until
// explicitly retried.
func (s *service) PendingCount(ctx context.Context) (int, error) {
	ops, err := s.queueStore.ListOperations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list operations: %w", err)
	}

	count := 0
	for _, op := range ops {
		if op.Status != models.OpStatusParked {
			count++
		}
	}
	return count, nil
}

// FailedCount returns the number of parked operations
func (s *service) FailedCount(ctx context.Context) (int, error) {
	ops, err := s.queueStore.ListOperations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list operations: %w", err)
	}

	count := 0
	for _, op := range ops {
		if op.Status == models.OpStatusParked {
			count++
		}
	}
	return count, nil
}

// ActiveIDs returns "type/id" keys of the operations being dispatched
// right now
func (s *service) ActiveIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.active))
	for id := range s.active {
		ids = append(ids, id)
	}
	return ids
}

// EntityStatus reports the sync state of a single entity without scanning
// the queue: the operation store is keyed by (type, id).
func (s *service) EntityStatus(ctx context.Context, entityType models.EntityType, entityID string) (models.SyncStatus, error) {
	op, err := s.queueStore.GetOperation(ctx, entityType, entityID)
	if errors.Is(err, storage.ErrOperationNotFound) {
		return models.SyncStatusSynced, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read queued operation: %w", err)
	}

	switch op.Status {
	case models.OpStatusProcessing:
		return models.SyncStatusSyncing, nil
	case models.OpStatusParked:
		return models.SyncStatusFailed, nil
	default:
		return models.SyncStatusQueued, nil
	}
}

// RetryFailed returns every parked operation to the pending set
// with a clean retry state
func (s *service) RetryFailed(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ops, err := s.queueStore.ListOperations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list operations: %w", err)
	}

	count := 0
	for _, op := range ops {
		if op.Status != models.OpStatusParked {
			continue
		}
		op.Status = models.OpStatusPending
		op.RetryCount = 0
		op.LastError = ""
		if err := s.queueStore.SaveOperation(ctx, op); err != nil {
			return count, fmt.Errorf("failed to save operation: %w", err)
		}
		count++
	}

	if count > 0 {
		s.logger.Info("parked operations requeued", "count", count)
	}
	return count, nil
}

// DiscardFailed removes one parked operation from the queue.
// The local entity is left untouched: the data stays on the device,
// it just stops trying to reach the server.
func (s *service) DiscardFailed(ctx context.Context, entityType models.EntityType, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, err := s.queueStore.GetOperation(ctx, entityType, entityID)
	if err != nil {
		return fmt.Errorf("failed to read queued operation: %w", err)
	}
	if op.Status != models.OpStatusParked {
		return fmt.Errorf("operation for %s/%s is not parked", entityType, entityID)
	}

	if err := s.queueStore.DeleteOperation(ctx, entityType, entityID); err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}

	s.logger.Info("parked operation discarded",
		"type", entityType, "id", entityID, "kind", op.Kind)
	return nil
}
