package auth

import (
	"context"
)

//go:generate moq -out service_mock.go . Service

// Service управляет аккаунтом и сессией устройства: регистрация, вход,
// выдача действующего access token'а для синхронизации.
type Service interface {
	// Register создает аккаунт и сразу выполняет вход на этом устройстве
	Register(ctx context.Context, username, password string) (*Session, error)

	// Login выполняет вход и сохраняет сессию на устройстве
	Login(ctx context.Context, username, password string) (*Session, error)

	// Token возвращает действующий access token, при истечении обновляя
	// пару токенов через refresh. Без сохраненной сессии возвращает
	// ErrNotAuthenticated.
	Token(ctx context.Context) (string, error)

	// Current возвращает сохраненную сессию устройства
	Current(ctx context.Context) (*Session, error)

	// IsAuthenticated проверяет наличие действующей сессии
	IsAuthenticated(ctx context.Context) (bool, error)

	// Logout отзывает refresh token на сервере (best effort) и удаляет
	// локальную сессию
	Logout(ctx context.Context) error
}

// Session содержит сохраненную сессию пользователя на устройстве.
// Токены наружу не отдаются: синхронизация получает их через Token.
type Session struct {
	Username  string
	UserID    string
	ExpiresAt int64 // срок действия access token'а, Unix-секунды
}
