package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/pawkit/pawkit/internal/client/api"
	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/validation"
	"github.com/pawkit/pawkit/pkg/api"
)

// ErrNotAuthenticated возвращается, когда на устройстве нет сохраненной
// сессии. Вызывающий предлагает пользователю войти.
var ErrNotAuthenticated = errors.New("not authenticated")

// refreshSkew задает запас до истечения access token'а, после которого пара
// токенов обновляется заранее, а не по факту 401
const refreshSkew = 30 * time.Second

type service struct {
	apiClient httpClient.ClientAPI
	authStore storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new auth service
func NewService(apiClient httpClient.ClientAPI, authStore storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		authStore: authStore,
		logger:    logger,
		now:       time.Now,
	}
}

// Register создает аккаунт и сразу выполняет вход
func (s *service) Register(ctx context.Context, username, password string) (*Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	if _, err := s.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	}); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("account registered", "username", username)

	// Сразу входим: устройство готово к синхронизации без второй команды
	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login after registration failed: %w", err)
	}

	return s.saveSession(ctx, resp)
}

// Login выполняет вход и сохраняет сессию на устройстве
func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.saveSession(ctx, resp)
}

// Token возвращает действующий access token, обновляя пару при истечении
func (s *service) Token(ctx context.Context) (string, error) {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	if auth.ExpiresAt-int64(refreshSkew.Seconds()) > s.now().Unix() {
		return auth.AccessToken, nil
	}

	return s.refresh(ctx, auth)
}

// Current возвращает сохраненную сессию устройства
func (s *service) Current(ctx context.Context) (*Session, error) {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &Session{
		Username:  auth.Username,
		UserID:    auth.UserID,
		ExpiresAt: auth.ExpiresAt,
	}, nil
}

// IsAuthenticated проверяет наличие действующей сессии
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.authStore.IsAuthenticated(ctx)
}

// Logout отзывает refresh token на сервере и удаляет локальную сессию.
// Отзыв best effort: недоступный сервер не мешает выйти локально.
func (s *service) Logout(ctx context.Context) error {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		s.logger.Debug("no session found during logout", "error", err)
	} else {
		if err := s.apiClient.Logout(ctx, auth.AccessToken, auth.RefreshToken); err != nil {
			s.logger.Warn("failed to revoke tokens on server", "error", err)
		}
	}

	if err := s.authStore.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("logged out")
	return nil
}

// refresh обменивает refresh token на новую пару и сохраняет ее
func (s *service) refresh(ctx context.Context, auth *storage.AuthData) (string, error) {
	resp, err := s.apiClient.Refresh(ctx, api.RefreshRequest{
		RefreshToken: auth.RefreshToken,
	})
	if err != nil {
		return "", fmt.Errorf("token refresh failed: %w", err)
	}

	auth.AccessToken = resp.AccessToken
	auth.RefreshToken = resp.RefreshToken
	auth.ExpiresAt = s.now().Unix() + resp.ExpiresIn

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return "", fmt.Errorf("failed to save refreshed session: %w", err)
	}

	s.logger.Debug("token pair refreshed", "username", auth.Username)

	return resp.AccessToken, nil
}

// saveSession сохраняет полученную пару токенов как сессию устройства
func (s *service) saveSession(ctx context.Context, resp *api.TokenResponse) (*Session, error) {
	auth := &storage.AuthData{
		Username:     resp.Username,
		UserID:       resp.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    s.now().Unix() + resp.ExpiresIn,
	}

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("logged in", "username", auth.Username)

	return &Session{
		Username:  auth.Username,
		UserID:    auth.UserID,
		ExpiresAt: auth.ExpiresAt,
	}, nil
}
