package storage

import (
	"context"

	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/pkg/api"
)

// EntityStorage defines interface for synced entity persistence.
// Сервер хранит сущности в том же виде, в каком они ходят по проводу
// (api.Entity); тип сущности задается отдельным аргументом, потому что
// на проводе он выражен endpoint'ом, а не полем.
type EntityStorage interface {
	// CreateEntity inserts a new entity owned by userID.
	// Вставка идемпотентна: если сущность с таким id уже есть, возвращается
	// существующая строка и created=false, без изменения данных.
	// Для новой строки сервер назначает version=1 и updatedAt=now.
	CreateEntity(ctx context.Context, userID string, entityType models.EntityType, entity *api.Entity) (*api.Entity, bool, error)

	// ListEntities retrieves entities of one type owned by userID,
	// ordered by (updatedAt, id) ascending.
	// workspaceID == "" означает все workspace'ы; since задает строгую нижнюю
	// границу по updatedAt (0 = с начала времен); includeDeleted включает
	// tombstone-строки в выдачу.
	ListEntities(ctx context.Context, userID string, entityType models.EntityType, workspaceID string, since int64, includeDeleted bool) ([]*api.Entity, error)

	// UpdateEntity applies a partial field update to an entity.
	// Server-owned поля (id, version, updatedAt) из fields игнорируются.
	// Принятая запись увеличивает version ровно на 1 и ставит updatedAt=now.
	// Returns ErrEntityNotFound if entity doesn't exist.
	// При несовпадении expectedVersion возвращает ErrVersionMismatch ВМЕСТЕ
	// с текущим серверным состоянием, чтобы обработчик мог вернуть его
	// клиенту в теле 409.
	UpdateEntity(ctx context.Context, userID string, entityType models.EntityType, id string, fields map[string]any, expectedVersion int64) (*api.Entity, error)

	// DeleteEntity tombstones an entity: deleted=true, version+1, updatedAt=now.
	// Повторное удаление уже удаленной сущности считается no-op без ошибки.
	// Returns ErrEntityNotFound if entity doesn't exist.
	DeleteEntity(ctx context.Context, userID string, entityType models.EntityType, id string) error
}
