package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/internal/server/storage"
	"github.com/pawkit/pawkit/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
	// UsernameKey ключ для хранения username в контексте
	UsernameKey contextKey = "username"
)

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername извлекает username из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// EntityHandler обслуживает REST-контур синхронизации: по одному
// однотипному набору операций на каждый тип сущности.
// Тип приходит в пути запроса: /api/v1/{type} и /api/v1/{type}/{id}.
type EntityHandler struct {
	logger  *slog.Logger
	storage storage.EntityStorage
}

// NewEntityHandler creates a new entity handler
func NewEntityHandler(logger *slog.Logger, storage storage.EntityStorage) *EntityHandler {
	return &EntityHandler{
		logger:  logger,
		storage: storage,
	}
}

// List обрабатывает GET /api/v1/{type}?workspaceId=&since=&deleted=true
// Возвращает сущности, измененные строго после since
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	workspaceID := r.URL.Query().Get("workspaceId")

	sinceStr := r.URL.Query().Get("since")
	var since int64
	if sinceStr != "" {
		var err error
		since, err = strconv.ParseInt(sinceStr, 10, 64)
		if err != nil {
			h.logger.Warn("invalid since parameter", "since", sinceStr, "error", err)
			h.sendError(w, "invalid since parameter", http.StatusBadRequest)
			return
		}
	}

	includeDeleted := r.URL.Query().Get("deleted") == "true"

	entities, err := h.storage.ListEntities(ctx, userID, entityType, workspaceID, since, includeDeleted)
	if err != nil {
		h.logger.Error("failed to list entities", "error", err, "user_id", userID, "type", entityType)
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]api.Entity, 0, len(entities))
	for _, entity := range entities {
		items = append(items, *entity)
	}

	h.logger.Info("list entities",
		"user_id", userID,
		"type", entityType,
		"since", since,
		"count", len(items))

	h.sendJSON(w, api.ListResponse{Items: items}, http.StatusOK)
}

// Create обрабатывает POST /api/v1/{type}
// Вставка идемпотентна: повторный POST того же id возвращает 200
// с существующей строкой вместо 201
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	var entity api.Entity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		h.logger.Warn("failed to decode entity", "error", err)
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if entity.ID == "" {
		h.sendError(w, "id is required", http.StatusBadRequest)
		return
	}
	if entity.WorkspaceID == "" {
		h.sendError(w, "workspaceId is required", http.StatusBadRequest)
		return
	}

	created, isNew, err := h.storage.CreateEntity(ctx, userID, entityType, &entity)
	if err != nil {
		h.logger.Error("failed to create entity", "error", err, "user_id", userID, "type", entityType, "entity_id", entity.ID)
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusCreated
	if !isNew {
		// Ретрай после потерянного ответа: строка уже есть
		status = http.StatusOK
	}

	h.logger.Info("create entity",
		"user_id", userID,
		"type", entityType,
		"entity_id", created.ID,
		"new", isNew)

	h.sendJSON(w, created, status)
}

// Update обрабатывает PATCH /api/v1/{type}/{id}
// Частичное обновление: fields накладываются на текущее состояние.
// При несовпадении expectedVersion возвращает 409 с серверной копией
func (h *EntityHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.sendError(w, "id is required", http.StatusBadRequest)
		return
	}

	var req api.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode update request", "error", err)
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Fields) == 0 {
		h.sendError(w, "fields is required", http.StatusBadRequest)
		return
	}

	updated, err := h.storage.UpdateEntity(ctx, userID, entityType, id, req.Fields, req.ExpectedVersion)
	switch {
	case errors.Is(err, storage.ErrEntityNotFound):
		h.sendError(w, "entity not found", http.StatusNotFound)
		return
	case errors.Is(err, storage.ErrVersionMismatch):
		// updated здесь несет текущее серверное состояние
		h.logger.Info("version conflict",
			"user_id", userID,
			"type", entityType,
			"entity_id", id,
			"expected_version", req.ExpectedVersion,
			"server_version", updated.Version)

		resp := api.ConflictResponse{
			ServerEntity: updated,
			Code:         api.CodeVersionConflict,
			Message:      "entity version does not match expectedVersion",
		}
		h.sendJSON(w, resp, http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("failed to update entity", "error", err, "user_id", userID, "type", entityType, "entity_id", id)
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("update entity",
		"user_id", userID,
		"type", entityType,
		"entity_id", id,
		"version", updated.Version)

	h.sendJSON(w, updated, http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/{type}/{id}
// Сущность остается tombstone-строкой, чтобы другие клиенты увидели
// удаление при pull
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.sendError(w, "id is required", http.StatusBadRequest)
		return
	}

	err := h.storage.DeleteEntity(ctx, userID, entityType, id)
	switch {
	case errors.Is(err, storage.ErrEntityNotFound):
		h.sendError(w, "entity not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("failed to delete entity", "error", err, "user_id", userID, "type", entityType, "entity_id", id)
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("delete entity",
		"user_id", userID,
		"type", entityType,
		"entity_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// requestScope достает из запроса владельца (контекст auth middleware)
// и тип сущности (path value). Неизвестный тип дает 404: такого
// endpoint'а не существует
func (h *EntityHandler) requestScope(w http.ResponseWriter, r *http.Request) (string, models.EntityType, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("user_id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	entityType := models.EntityType(r.PathValue("type"))
	if !entityType.Valid() {
		h.sendError(w, "unknown entity type", http.StatusNotFound)
		return "", "", false
	}

	return userID, entityType, true
}

// sendJSON отправляет JSON ответ
func (h *EntityHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", "error", err)
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *EntityHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Code:    http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
