package auth

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/pawkit/pawkit/internal/client/api"
	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/pkg/api"
)

var fixedNow = time.Unix(1700000000, 0)

// authEnv держит состояние моков между вызовами: SaveAuth кладет копию в
// stored, GetAuth ее возвращает, как это делает реальное хранилище
type authEnv struct {
	stored    *storage.AuthData
	authStore *storage.AuthStorageMock
	apiClient *httpClient.ClientAPIMock
	svc       *service
}

func newAuthEnv() *authEnv {
	env := &authEnv{}

	env.authStore = &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			copied := *auth
			env.stored = &copied
			return nil
		},
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			if env.stored == nil {
				return nil, storage.ErrAuthNotFound
			}
			copied := *env.stored
			return &copied, nil
		},
		DeleteAuthFunc: func(ctx context.Context) error {
			env.stored = nil
			return nil
		},
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return env.stored != nil, nil
		},
	}

	env.apiClient = &httpClient.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
			return &api.RegisterResponse{UserID: "user-1", Message: "registered"}, nil
		},
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return &api.TokenResponse{
				UserID:       "user-1",
				Username:     req.Username,
				AccessToken:  "access-1",
				RefreshToken: "refresh-1",
				ExpiresIn:    900,
			}, nil
		},
		RefreshFunc: func(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
			return &api.TokenResponse{
				UserID:       "user-1",
				Username:     "alice",
				AccessToken:  "access-2",
				RefreshToken: "refresh-2",
				ExpiresIn:    900,
			}, nil
		},
		LogoutFunc: func(ctx context.Context, token, refreshToken string) error {
			return nil
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	env.svc = NewService(env.apiClient, env.authStore, logger).(*service)
	env.svc.now = func() time.Time { return fixedNow }

	return env
}

func (env *authEnv) seedSession(expiresAt int64) {
	env.stored = &storage.AuthData{
		Username:     "alice",
		UserID:       "user-1",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    expiresAt,
	}
}

func TestLogin_SavesSession(t *testing.T) {
	env := newAuthEnv()

	session, err := env.svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)

	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, fixedNow.Unix()+900, session.ExpiresAt)

	require.NotNil(t, env.stored)
	assert.Equal(t, "access-1", env.stored.AccessToken)
	assert.Equal(t, "refresh-1", env.stored.RefreshToken)
	assert.Equal(t, fixedNow.Unix()+900, env.stored.ExpiresAt)
}

func TestLogin_RejectsInvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		errMsg   string
	}{
		{
			name:     "bad username",
			username: "ab",
			password: "password123",
			errMsg:   "invalid username",
		},
		{
			name:     "bad password",
			username: "alice",
			password: "short",
			errMsg:   "invalid password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newAuthEnv()

			_, err := env.svc.Login(context.Background(), tt.username, tt.password)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			// До сервера запрос не дошел
			assert.Empty(t, env.apiClient.LoginCalls())
		})
	}
}

func TestRegister_LogsInImmediately(t *testing.T) {
	env := newAuthEnv()

	session, err := env.svc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	require.Len(t, env.apiClient.RegisterCalls(), 1)
	require.Len(t, env.apiClient.LoginCalls(), 1)
	assert.Equal(t, "alice", env.apiClient.LoginCalls()[0].Req.Username)

	assert.Equal(t, "alice", session.Username)
	require.NotNil(t, env.stored)
	assert.Equal(t, "access-1", env.stored.AccessToken)
}

func TestToken_ReturnsStoredToken(t *testing.T) {
	env := newAuthEnv()
	env.seedSession(fixedNow.Unix() + 3600)

	token, err := env.svc.Token(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "access-1", token)
	assert.Empty(t, env.apiClient.RefreshCalls())
}

func TestToken_RefreshesExpiringToken(t *testing.T) {
	env := newAuthEnv()
	// Истекает через 10 секунд, внутри 30-секундного запаса
	env.seedSession(fixedNow.Unix() + 10)

	token, err := env.svc.Token(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "access-2", token)

	require.Len(t, env.apiClient.RefreshCalls(), 1)
	assert.Equal(t, "refresh-1", env.apiClient.RefreshCalls()[0].Req.RefreshToken)

	// Ротация: обе половины пары заменены и сохранены
	require.NotNil(t, env.stored)
	assert.Equal(t, "access-2", env.stored.AccessToken)
	assert.Equal(t, "refresh-2", env.stored.RefreshToken)
	assert.Equal(t, fixedNow.Unix()+900, env.stored.ExpiresAt)
}

func TestToken_NotAuthenticated(t *testing.T) {
	env := newAuthEnv()

	_, err := env.svc.Token(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestToken_RefreshUnauthorized(t *testing.T) {
	env := newAuthEnv()
	env.seedSession(fixedNow.Unix() - 100)

	env.apiClient.RefreshFunc = func(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
		return nil, httpClient.ErrUnauthorized
	}

	_, err := env.svc.Token(context.Background())
	require.Error(t, err)
	// Вызывающий различает отозванную сессию по сентинелу
	assert.ErrorIs(t, err, httpClient.ErrUnauthorized)
}

func TestCurrent(t *testing.T) {
	env := newAuthEnv()
	env.seedSession(fixedNow.Unix() + 3600)

	session, err := env.svc.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, fixedNow.Unix()+3600, session.ExpiresAt)
}

func TestCurrent_NotAuthenticated(t *testing.T) {
	env := newAuthEnv()

	_, err := env.svc.Current(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLogout_RevokesAndDeletes(t *testing.T) {
	env := newAuthEnv()
	env.seedSession(fixedNow.Unix() + 3600)

	err := env.svc.Logout(context.Background())
	require.NoError(t, err)

	require.Len(t, env.apiClient.LogoutCalls(), 1)
	assert.Equal(t, "access-1", env.apiClient.LogoutCalls()[0].Token)
	assert.Equal(t, "refresh-1", env.apiClient.LogoutCalls()[0].RefreshToken)

	assert.Nil(t, env.stored)
}

func TestLogout_ServerUnavailable(t *testing.T) {
	env := newAuthEnv()
	env.seedSession(fixedNow.Unix() + 3600)

	env.apiClient.LogoutFunc = func(ctx context.Context, token, refreshToken string) error {
		return errors.New("connection refused")
	}

	// Недоступный сервер не мешает выйти локально
	err := env.svc.Logout(context.Background())
	require.NoError(t, err)
	assert.Nil(t, env.stored)
}

func TestLogout_NoSession(t *testing.T) {
	env := newAuthEnv()

	err := env.svc.Logout(context.Background())
	require.NoError(t, err)

	assert.Empty(t, env.apiClient.LogoutCalls())
	require.Len(t, env.authStore.DeleteAuthCalls(), 1)
}

func TestIsAuthenticated(t *testing.T) {
	env := newAuthEnv()

	ok, err := env.svc.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	env.seedSession(fixedNow.Unix() + 3600)

	ok, err = env.svc.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}
