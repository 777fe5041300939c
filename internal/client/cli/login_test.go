package cli

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawkit/pawkit/internal/client/auth"
	"github.com/pawkit/pawkit/internal/client/sync"
)

func TestCli_runLogin_Success(t *testing.T) {
	ctx := context.Background()

	mockAuth := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, username, password string) (*auth.Session, error) {
			return &auth.Session{
				Username:  username,
				UserID:    "user-1",
				ExpiresAt: 1700000000,
			}, nil
		},
	}
	mockSyncer := &sync.ServiceMock{
		ClearAuthErrorFunc: func() {},
	}

	rec := newRecordingIO()
	rec.scriptInput("alice")
	rec.mock.ReadPasswordFunc = func(prompt string) (string, error) {
		return "s3cret-pass", nil
	}

	cli := &Cli{io: rec.mock, authService: mockAuth, syncer: mockSyncer}

	err := cli.runLogin(ctx)
	require.NoError(t, err)

	require.Len(t, mockAuth.LoginCalls(), 1)
	assert.Equal(t, "alice", mockAuth.LoginCalls()[0].Username)
	assert.Equal(t, "s3cret-pass", mockAuth.LoginCalls()[0].Password)
	assert.Len(t, mockSyncer.ClearAuthErrorCalls(), 1)

	output := rec.output()
	assert.Contains(t, output, "✓ Login successful!")
	assert.Contains(t, output, "Username: alice")
	assert.Contains(t, output, "Token expires: 2023-11-14T22:13:20Z")
	assert.Contains(t, output, "Run 'pawkit sync' to synchronize.")
}

// TestCli_runLogin_PasswordFromEnv проверяет неинтерактивный вход для скриптов
func TestCli_runLogin_PasswordFromEnv(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, os.Setenv("PAWKIT_PASSWORD", "env-pass"))
	defer func() {
		require.NoError(t, os.Unsetenv("PAWKIT_PASSWORD"))
	}()

	mockAuth := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, username, password string) (*auth.Session, error) {
			return &auth.Session{Username: username}, nil
		},
	}
	mockSyncer := &sync.ServiceMock{
		ClearAuthErrorFunc: func() {},
	}

	rec := newRecordingIO()
	rec.scriptInput("alice")
	cli := &Cli{io: rec.mock, authService: mockAuth, syncer: mockSyncer}

	err := cli.runLogin(ctx)
	require.NoError(t, err)

	require.Len(t, mockAuth.LoginCalls(), 1)
	assert.Equal(t, "env-pass", mockAuth.LoginCalls()[0].Password)
	assert.Empty(t, rec.mock.ReadPasswordCalls())
}

func TestCli_runLogin_Failure(t *testing.T) {
	ctx := context.Background()

	mockAuth := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, username, password string) (*auth.Session, error) {
			return nil, errors.New("invalid credentials")
		},
	}
	mockSyncer := &sync.ServiceMock{}

	rec := newRecordingIO()
	rec.scriptInput("alice")
	rec.mock.ReadPasswordFunc = func(prompt string) (string, error) {
		return "wrong-pass", nil
	}

	cli := &Cli{io: rec.mock, authService: mockAuth, syncer: mockSyncer}

	err := cli.runLogin(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Empty(t, mockSyncer.ClearAuthErrorCalls())
}
