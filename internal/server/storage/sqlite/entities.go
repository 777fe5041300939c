package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/internal/server/storage"
	"github.com/pawkit/pawkit/pkg/api"
)

// serverOwnedFields перечисляет wire-поля, которые назначает только сервер.
// PATCH не может их перезаписать через fields.
var serverOwnedFields = map[string]struct{}{
	"id":        {},
	"version":   {},
	"updatedAt": {},
}

// CreateEntity inserts a new entity owned by userID.
// Вставка идемпотентна: повторный POST того же id возвращает существующую
// строку и created=false, не трогая данные. Для новой строки сервер
// назначает version=1 и updatedAt=now.
func (s *Storage) CreateEntity(ctx context.Context, userID string, entityType models.EntityType, entity *api.Entity) (*api.Entity, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	existing, err := getEntityTx(ctx, tx, userID, entityType, entity.ID)
	if err != nil && !errors.Is(err, storage.ErrEntityNotFound) {
		return nil, false, fmt.Errorf("failed to check existing entity: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	stored := *entity
	stored.Version = 1
	stored.UpdatedAt = time.Now().UnixMilli()

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal entity: %w", err)
	}

	query := `
		INSERT INTO entities (user_id, entity_type, id, workspace_id, version, updated_at, deleted, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query,
		userID,
		string(entityType),
		stored.ID,
		stored.WorkspaceID,
		stored.Version,
		stored.UpdatedAt,
		boolToInt(stored.Deleted),
		string(data),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert entity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &stored, true, nil
}

// ListEntities retrieves entities of one type owned by userID,
// ordered by (updated_at, id) ascending
func (s *Storage) ListEntities(ctx context.Context, userID string, entityType models.EntityType, workspaceID string, since int64, includeDeleted bool) ([]*api.Entity, error) {
	query := `
		SELECT data FROM entities
		WHERE user_id = ? AND entity_type = ?
	`
	args := []any{userID, string(entityType)}

	if workspaceID != "" {
		query += " AND workspace_id = ?"
		args = append(args, workspaceID)
	}
	if since > 0 {
		query += " AND updated_at > ?"
		args = append(args, since)
	}
	if !includeDeleted {
		query += " AND deleted = 0"
	}
	query += " ORDER BY updated_at ASC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entities []*api.Entity

	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan entity: %w", err)
		}

		entity := &api.Entity{}
		if err := json.Unmarshal([]byte(data), entity); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
		}

		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entities, nil
}

// UpdateEntity applies a partial field update to an entity.
// Shallow merge на уровне JSON: каждое поле из fields целиком заменяет
// текущее значение, null удаляет ключ. Принятая запись увеличивает version
// ровно на 1 и ставит updatedAt=now.
func (s *Storage) UpdateEntity(ctx context.Context, userID string, entityType models.EntityType, id string, fields map[string]any, expectedVersion int64) (*api.Entity, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		SELECT data, version FROM entities
		WHERE user_id = ? AND entity_type = ? AND id = ?
	`

	var data string
	var version int64

	err = tx.QueryRowContext(ctx, query, userID, string(entityType), id).Scan(&data, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	// При несовпадении версии возвращаем текущее серверное состояние
	// вместе с ошибкой, чтобы обработчик положил его в тело 409
	if expectedVersion > 0 && version != expectedVersion {
		current := &api.Entity{}
		if err := json.Unmarshal([]byte(data), current); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
		}
		return current, storage.ErrVersionMismatch
	}

	doc := map[string]any{}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	for key, value := range fields {
		if _, owned := serverOwnedFields[key]; owned {
			continue
		}
		if value == nil {
			delete(doc, key)
			continue
		}
		doc[key] = value
	}

	doc["version"] = version + 1
	doc["updatedAt"] = time.Now().UnixMilli()

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	updated := &api.Entity{}
	if err := json.Unmarshal(merged, updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal merged entity: %w", err)
	}

	updateQuery := `
		UPDATE entities
		SET data = ?, workspace_id = ?, version = ?, updated_at = ?, deleted = ?
		WHERE user_id = ? AND entity_type = ? AND id = ?
	`

	_, err = tx.ExecContext(ctx, updateQuery,
		string(merged),
		updated.WorkspaceID,
		updated.Version,
		updated.UpdatedAt,
		boolToInt(updated.Deleted),
		userID,
		string(entityType),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, nil
}

// DeleteEntity tombstones an entity: deleted=true, version+1, updatedAt=now.
// Повторное удаление уже удаленной сущности считается no-op без ошибки.
func (s *Storage) DeleteEntity(ctx context.Context, userID string, entityType models.EntityType, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	entity, err := getEntityTx(ctx, tx, userID, entityType, id)
	if err != nil {
		return err
	}

	if entity.Deleted {
		return nil
	}

	now := time.Now().UnixMilli()
	entity.Deleted = true
	entity.DeletedAt = now
	entity.UpdatedAt = now
	entity.Version++

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	query := `
		UPDATE entities
		SET data = ?, version = ?, updated_at = ?, deleted = 1
		WHERE user_id = ? AND entity_type = ? AND id = ?
	`

	_, err = tx.ExecContext(ctx, query,
		string(data),
		entity.Version,
		entity.UpdatedAt,
		userID,
		string(entityType),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// getEntityTx читает одну сущность в рамках открытой транзакции
func getEntityTx(ctx context.Context, tx *sql.Tx, userID string, entityType models.EntityType, id string) (*api.Entity, error) {
	query := `
		SELECT data FROM entities
		WHERE user_id = ? AND entity_type = ? AND id = ?
	`

	var data string

	err := tx.QueryRowContext(ctx, query, userID, string(entityType), id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	entity := &api.Entity{}
	if err := json.Unmarshal([]byte(data), entity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	return entity, nil
}

// boolToInt конвертирует bool в колонку INTEGER
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
