package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	httpClient "github.com/pawkit/pawkit/internal/client/api"
	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/pkg/api"
)

// dispatchOutcome классифицирует результат отправки одной операции
type dispatchOutcome int

const (
	outcomeSuccess dispatchOutcome = iota // сервер принял операцию
	outcomeDropped                        // операция снята без повторной попытки
	outcomeConflict                       // сервер сообщил version conflict
	outcomeFailed                         // отправка не удалась, операция ждет ретрая
	outcomeReauth                         // сервер отверг токен
)

// Drain sends queued operations to the server strictly in FIFO order,
// one at a time.
//
// Outcome handling follows the offline-first contract:
//   - 401 прерывает проход и возвращает ErrUnauthorized, операция
//     остается в очереди
//   - 404 на update/delete означает, что сущности на сервере уже нет:
//     операция снимается как разрешенная, а не проваленная
//   - version conflict передается обработчику, исходная операция снимается
//   - любая другая ошибка учитывает попытку; после maxRetries операция
//     паркуется, а серия подряд неудачных отправок прерывает проход
func (s *service) Drain(ctx context.Context, token string) (*DrainResult, error) {
	s.drainMu.Lock()
	defer s.drainMu.Unlock()

	ops, err := s.listPending(ctx)
	if err != nil {
		return nil, err
	}

	result := &DrainResult{}
	if len(ops) == 0 {
		return result, nil
	}

	s.logger.Info("queue drain started", "pending", len(ops))

	consecutiveFailures := 0
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outcome, parked := s.dispatch(ctx, token, op)
		if parked {
			result.Parked++
		}

		switch outcome {
		case outcomeSuccess:
			result.Pushed++
			consecutiveFailures = 0
		case outcomeDropped:
			result.Dropped++
			consecutiveFailures = 0
		case outcomeConflict:
			result.Conflicts++
			consecutiveFailures = 0
		case outcomeReauth:
			result.NeedsReauth = true
			s.logger.Warn("queue drain stopped: authentication required")
			return result, httpClient.ErrUnauthorized
		case outcomeFailed:
			result.Failed++
			consecutiveFailures++
			if consecutiveFailures >= maxConsecutiveFailures {
				result.Aborted = true
				s.logger.Warn("queue drain aborted after consecutive failures",
					"failures", consecutiveFailures)
				return result, nil
			}
		}
	}

	s.logger.Info("queue drain finished",
		"pushed", result.Pushed,
		"dropped", result.Dropped,
		"conflicts", result.Conflicts,
		"failed", result.Failed,
		"parked", result.Parked)

	return result, nil
}

// listPending возвращает операции для отправки в порядке FIFO.
// Статус processing, оставшийся после падения процесса, трактуется
// как pending: предыдущая отправка заведомо не идет.
func (s *service) listPending(ctx context.Context) ([]*models.Operation, error) {
	ops, err := s.queueStore.ListOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	pending := make([]*models.Operation, 0, len(ops))
	for _, op := range ops {
		if op.Status == models.OpStatusParked {
			continue
		}
		pending = append(pending, op)
	}

	sort.Slice(pending, func(i, j int) bool {
		if pending[i].CreatedAt != pending[j].CreatedAt {
			return pending[i].CreatedAt < pending[j].CreatedAt
		}
		return pending[i].EntityID < pending[j].EntityID
	})

	return pending, nil
}

// dispatch отправляет одну операцию и проводит ее жизненный цикл до конца.
// Второй результат сообщает, запаркована ли операция этой попыткой.
func (s *service) dispatch(ctx context.Context, token string, op *models.Operation) (dispatchOutcome, bool) {
	op, ok := s.beginDispatch(ctx, op)
	if !ok {
		return outcomeDropped, false
	}

	key := activeKey(op)
	s.markActive(key)
	defer s.unmarkActive(key)

	s.logger.Debug("dispatching operation",
		"type", op.EntityType, "id", op.EntityID, "kind", op.Kind, "retries", op.RetryCount)

	switch op.Kind {
	case models.OpCreate:
		return s.dispatchCreate(ctx, token, op)
	case models.OpUpdate:
		return s.dispatchUpdate(ctx, token, op)
	case models.OpDelete:
		return s.dispatchDelete(ctx, token, op)
	default:
		s.logger.Error("unknown operation kind dropped",
			"kind", op.Kind, "type", op.EntityType, "id", op.EntityID)
		s.completeDrop(ctx, op, false)
		return outcomeDropped, false
	}
}

// beginDispatch перечитывает операцию из очереди и помечает ее processing.
// Перечитывание подхватывает мутации, слитые в операцию после составления
// списка прохода.
func (s *service) beginDispatch(ctx context.Context, op *models.Operation) (*models.Operation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.queueStore.GetOperation(ctx, op.EntityType, op.EntityID)
	if err != nil {
		s.logger.Debug("operation gone before dispatch",
			"type", op.EntityType, "id", op.EntityID)
		return nil, false
	}

	stored.Status = models.OpStatusProcessing
	if err := s.queueStore.SaveOperation(ctx, stored); err != nil {
		s.logger.Error("failed to mark operation processing",
			"type", op.EntityType, "id", op.EntityID, "error", err)
		return nil, false
	}

	return stored, true
}

func (s *service) dispatchCreate(ctx context.Context, token string, op *models.Operation) (dispatchOutcome, bool) {
	// Payload для create берется из живой локальной сущности на момент отправки
	entity, err := s.entityStore.GetEntity(ctx, op.EntityType, op.EntityID)
	if err != nil {
		s.logger.Warn("queued create dropped: local entity missing",
			"type", op.EntityType, "id", op.EntityID)
		s.completeDrop(ctx, op, false)
		return outcomeDropped, false
	}

	// Create с tombstone'ом возможен только после падения посреди слияния
	// create+delete; отправлять нечего
	if entity.Deleted || entity.DeletedLocally {
		s.logger.Warn("queued create dropped: local entity deleted",
			"type", op.EntityType, "id", op.EntityID)
		s.completeDrop(ctx, op, false)
		return outcomeDropped, false
	}

	if s.effectiveFlags(ctx, entity).Has(models.FlagNeverSync) {
		s.logger.Debug("queued create dropped: entity excluded from sync",
			"type", op.EntityType, "id", op.EntityID)
		s.completeDrop(ctx, op, false)
		return outcomeDropped, false
	}

	// Повторная отправка того же create отвечает 200 вместо 201,
	// клиентский API трактует оба как успех
	created, err := s.apiClient.CreateEntity(ctx, token, op.EntityType, entity.ToWire())
	if err != nil {
		return s.completeError(ctx, op, err)
	}

	s.completeSuccess(ctx, op, created)
	return outcomeSuccess, false
}

func (s *service) dispatchUpdate(ctx context.Context, token string, op *models.Operation) (dispatchOutcome, bool) {
	entity, err := s.entityStore.GetEntity(ctx, op.EntityType, op.EntityID)
	if err != nil {
		s.logger.Warn("queued update dropped: local entity missing",
			"type", op.EntityType, "id", op.EntityID)
		s.completeDrop(ctx, op, false)
		return outcomeDropped, false
	}

	if s.effectiveFlags(ctx, entity).Has(models.FlagNeverSync) {
		s.logger.Debug("queued update dropped: entity excluded from sync",
			"type", op.EntityType, "id", op.EntityID)
		s.completeDrop(ctx, op, false)
		return outcomeDropped, false
	}

	req := api.UpdateRequest{}
	if len(op.Payload) > 0 {
		if err := json.Unmarshal(op.Payload, &req.Fields); err != nil {
			s.logger.Error("queued update dropped: malformed payload",
				"type", op.EntityType, "id", op.EntityID, "error", err)
			s.completeDrop(ctx, op, false)
			return outcomeDropped, false
		}
	}
	if op.EntityType.Versioned() {
		// Текущая локальная версия, а не версия на момент постановки:
		// успешные отправки между постановкой и диспатчем ее продвигают
		req.ExpectedVersion = entity.Version
	}

	updated, err := s.apiClient.UpdateEntity(ctx, token, op.EntityType, op.EntityID, req)
	if err != nil {
		var conflictErr *httpClient.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			return s.completeConflict(ctx, op, conflictErr.ServerEntity)
		case errors.Is(err, httpClient.ErrNotFound):
			// Сущность удалена на сервере: локальная копия помечается
			// synced, tombstone принесет следующий pull
			s.logger.Debug("queued update dropped: entity deleted remotely",
				"type", op.EntityType, "id", op.EntityID)
			s.completeDrop(ctx, op, true)
			return outcomeDropped, false
		default:
			return s.completeError(ctx, op, err)
		}
	}

	s.completeSuccess(ctx, op, updated)
	return outcomeSuccess, false
}

func (s *service) dispatchDelete(ctx context.Context, token string, op *models.Operation) (dispatchOutcome, bool) {
	if entity, err := s.entityStore.GetEntity(ctx, op.EntityType, op.EntityID); err == nil {
		if s.effectiveFlags(ctx, entity).Has(models.FlagNeverSync) {
			// Сущность на сервер не попадала, удалять там нечего
			s.completeDrop(ctx, op, true)
			return outcomeDropped, false
		}
	}

	err := s.apiClient.DeleteEntity(ctx, token, op.EntityType, op.EntityID)
	if errors.Is(err, httpClient.ErrNotFound) {
		// Сущности на сервере уже нет, цель достигнута
		s.logger.Debug("queued delete dropped: entity already gone",
			"type", op.EntityType, "id", op.EntityID)
		s.completeDrop(ctx, op, true)
		return outcomeDropped, false
	}
	if err != nil {
		return s.completeError(ctx, op, err)
	}

	// Tombstone остается до явной чистки: помеченный synced, он больше
	// не ставится в очередь и не мешает возрождению со стороны сервера
	s.completeSuccess(ctx, op, nil)
	return outcomeSuccess, false
}

// completeError разводит отвергнутый токен и обычную ошибку отправки
func (s *service) completeError(ctx context.Context, op *models.Operation, err error) (dispatchOutcome, bool) {
	if errors.Is(err, httpClient.ErrUnauthorized) {
		s.completeReauth(ctx, op)
		return outcomeReauth, false
	}
	return s.completeFailure(ctx, op, err)
}

// completeSuccess снимает операцию с очереди и применяет к локальной копии
// назначенные сервером поля. Если операция была замещена новой мутацией за
// время отправки, она остается в очереди, а локальная копия не помечается
// synced: замещающая операция отправит свежие изменения следующим проходом.
func (s *service) completeSuccess(ctx context.Context, op *models.Operation, server *api.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	superseded := !s.removeIfCurrent(ctx, op)

	entity, err := s.entityStore.GetEntity(ctx, op.EntityType, op.EntityID)
	if err != nil {
		return
	}

	if server != nil {
		entity.Version = server.Version
		entity.UpdatedAt = server.UpdatedAt
		if server.CreatedAt != 0 {
			entity.CreatedAt = server.CreatedAt
		}
	}
	entity.Synced = !superseded

	if err := s.entityStore.SaveEntity(ctx, entity); err != nil {
		s.logger.Error("failed to save entity after dispatch",
			"type", op.EntityType, "id", op.EntityID, "error", err)
	}
}

// completeDrop снимает операцию с очереди без повторной попытки.
// markSynced дополнительно помечает локальную копию synced: расхождения
// с сервером больше нет либо сущность на сервер не отправляется вовсе.
func (s *service) completeDrop(ctx context.Context, op *models.Operation, markSynced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.removeIfCurrent(ctx, op) {
		return
	}

	if markSynced {
		entity, err := s.entityStore.GetEntity(ctx, op.EntityType, op.EntityID)
		if err != nil {
			return
		}
		entity.Synced = true
		if err := s.entityStore.SaveEntity(ctx, entity); err != nil {
			s.logger.Error("failed to save entity after dispatch",
				"type", op.EntityType, "id", op.EntityID, "error", err)
		}
	}
}

// completeConflict передает конфликт обработчику и безусловно снимает
// исходную операцию: повторять тот же update против новой версии сервера
// бессмысленно. Созданная обработчиком conflict-копия ставится в очередь
// как create.
func (s *service) completeConflict(ctx context.Context, op *models.Operation, server *api.Entity) (dispatchOutcome, bool) {
	s.logger.Info("version conflict reported by server",
		"type", op.EntityType, "id", op.EntityID)

	fork, err := s.conflicts.ResolveVersionConflict(ctx, op.EntityType, op.EntityID, server)
	if err != nil {
		s.logger.Error("conflict resolution failed",
			"type", op.EntityType, "id", op.EntityID, "error", err)
	}

	s.completeDrop(ctx, op, false)

	if fork != nil {
		if err := s.Enqueue(ctx, fork.Type, fork.ID, models.OpCreate, nil); err != nil {
			s.logger.Error("failed to enqueue conflict copy",
				"type", fork.Type, "id", fork.ID, "error", err)
		}
	}

	return outcomeConflict, false
}

// completeFailure возвращает операцию в pending либо паркует ее после
// исчерпания попыток
func (s *service) completeFailure(ctx context.Context, op *models.Operation, dispatchErr error) (dispatchOutcome, bool) {
	s.logger.Warn("operation dispatch failed",
		"type", op.EntityType, "id", op.EntityID, "kind", op.Kind, "error", dispatchErr)

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.queueStore.GetOperation(ctx, op.EntityType, op.EntityID)
	if err != nil || stored.ID != op.ID {
		// Операция снята или замещена за время отправки
		return outcomeFailed, false
	}

	stored.Status = models.OpStatusPending
	stored.RetryCount++
	stored.LastError = dispatchErr.Error()

	parked := false
	if stored.RetryCount >= maxRetries {
		stored.Status = models.OpStatusParked
		parked = true
		s.logger.Warn("operation parked after retries",
			"type", op.EntityType, "id", op.EntityID, "retries", stored.RetryCount)
	}

	if err := s.queueStore.SaveOperation(ctx, stored); err != nil {
		s.logger.Error("failed to save operation",
			"type", op.EntityType, "id", op.EntityID, "error", err)
	}

	return outcomeFailed, parked
}

// completeReauth возвращает операцию в очередь, не засчитывая попытку:
// отвергнутый токен не считается ошибкой операции
func (s *service) completeReauth(ctx context.Context, op *models.Operation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.queueStore.GetOperation(ctx, op.EntityType, op.EntityID)
	if err != nil || stored.ID != op.ID {
		return
	}

	stored.Status = models.OpStatusPending
	if err := s.queueStore.SaveOperation(ctx, stored); err != nil {
		s.logger.Error("failed to save operation",
			"type", op.EntityType, "id", op.EntityID, "error", err)
	}
}

// removeIfCurrent снимает операцию с очереди, если она не была замещена
// более новой мутацией за время отправки. Возвращает false при замещении.
// Вызывается с удержанным s.mu.
func (s *service) removeIfCurrent(ctx context.Context, op *models.Operation) bool {
	stored, err := s.queueStore.GetOperation(ctx, op.EntityType, op.EntityID)
	if err != nil {
		return true // уже снята
	}
	if stored.ID != op.ID {
		return false
	}

	if err := s.queueStore.DeleteOperation(ctx, op.EntityType, op.EntityID); err != nil {
		s.logger.Error("failed to delete operation",
			"type", op.EntityType, "id", op.EntityID, "error", err)
	}
	return true
}

// effectiveFlags вычисляет действующие sync-флаги сущности с учетом
// наследования от родительских коллекций
func (s *service) effectiveFlags(ctx context.Context, entity *models.Entity) models.SyncFlags {
	return models.EffectiveFlags(entity, func(id string) *models.Entity {
		parent, err := s.entityStore.GetEntity(ctx, models.TypeCollections, id)
		if err != nil {
			return nil
		}
		return parent
	})
}

// markActive регистрирует сущность в наборе отправляемых прямо сейчас
func (s *service) markActive(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[key] = struct{}{}
}

func (s *service) unmarkActive(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, key)
}

func activeKey(op *models.Operation) string {
	return string(op.EntityType) + "/" + op.EntityID
}
