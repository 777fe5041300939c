package api

import (
	"context"

	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс HTTP клиента для сервисов клиента
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Refresh обменивает refresh token на новую пару токенов
	Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error)

	// Logout отзывает refresh token на сервере
	Logout(ctx context.Context, token, refreshToken string) error

	// Ping проверяет доступность сервера (connectivity probe)
	Ping(ctx context.Context) error

	// ListEntities запрашивает сущности типа, измененные после since,
	// включая tombstones
	ListEntities(ctx context.Context, token string, entityType models.EntityType, workspaceID string, since int64) (*api.ListResponse, error)

	// CreateEntity создает сущность; 200 при повторной отправке тоже успех
	CreateEntity(ctx context.Context, token string, entityType models.EntityType, entity api.Entity) (*api.Entity, error)

	// UpdateEntity частично обновляет сущность; при несовпадении версии
	// возвращает *ConflictError
	UpdateEntity(ctx context.Context, token string, entityType models.EntityType, id string, req api.UpdateRequest) (*api.Entity, error)

	// DeleteEntity удаляет сущность; 404 различается через ErrNotFound
	DeleteEntity(ctx context.Context, token string, entityType models.EntityType, id string) error
}

// Проверяем, что Client реализует ClientAPI
var _ ClientAPI = (*Client)(nil)
