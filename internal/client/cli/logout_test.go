package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawkit/pawkit/internal/client/auth"
	"github.com/pawkit/pawkit/internal/client/queue"
	"github.com/pawkit/pawkit/internal/client/sync"
)

func TestCli_runLogout_CleanQueue(t *testing.T) {
	ctx := context.Background()

	mockAuth := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}
	mockQueue := &queue.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) { return 0, nil },
	}
	mockSyncer := &sync.ServiceMock{}
	mockPeers := &PeerNotifierMock{
		AnnounceLogoutFunc: func(ctx context.Context) {},
	}
	mockPurger := &StatePurgerMock{
		ClearFunc: func(ctx context.Context) error { return nil },
	}

	rec := newRecordingIO()
	cli := &Cli{
		io:          rec.mock,
		authService: mockAuth,
		queue:       mockQueue,
		syncer:      mockSyncer,
		peers:       mockPeers,
		purger:      mockPurger,
	}

	err := cli.runLogout(ctx)
	require.NoError(t, err)

	assert.Empty(t, mockSyncer.PushNowCalls())
	assert.Len(t, mockPeers.AnnounceLogoutCalls(), 1)
	assert.Len(t, mockAuth.LogoutCalls(), 1)
	assert.Len(t, mockPurger.ClearCalls(), 1)

	output := rec.output()
	assert.Contains(t, output, "✓ Logout successful!")
	assert.Contains(t, output, "Local session and synchronized data have been removed.")
}

// TestCli_runLogout_FlushesPending проверяет что очередь доталкивается перед выходом
func TestCli_runLogout_FlushesPending(t *testing.T) {
	ctx := context.Background()

	pending := 2
	mockQueue := &queue.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) { return pending, nil },
	}
	mockSyncer := &sync.ServiceMock{
		PushNowFunc: func(ctx context.Context) (*sync.SyncResult, error) {
			pending = 0
			return &sync.SyncResult{Pushed: 2}, nil
		},
	}
	mockAuth := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}
	mockPeers := &PeerNotifierMock{
		AnnounceLogoutFunc: func(ctx context.Context) {},
	}
	mockPurger := &StatePurgerMock{
		ClearFunc: func(ctx context.Context) error { return nil },
	}

	rec := newRecordingIO()
	cli := &Cli{
		io:          rec.mock,
		authService: mockAuth,
		queue:       mockQueue,
		syncer:      mockSyncer,
		peers:       mockPeers,
		purger:      mockPurger,
	}

	err := cli.runLogout(ctx)
	require.NoError(t, err)

	assert.Len(t, mockSyncer.PushNowCalls(), 1)
	assert.Len(t, mockAuth.LogoutCalls(), 1)
	assert.Len(t, mockPurger.ClearCalls(), 1)

	output := rec.output()
	assert.Contains(t, output, "Pushing 2 pending change(s) before logout...")
	assert.NotContains(t, output, "will be discarded")
}

func TestCli_runLogout_DiscardConfirmed(t *testing.T) {
	ctx := context.Background()

	mockQueue := &queue.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) { return 2, nil },
	}
	mockSyncer := &sync.ServiceMock{
		PushNowFunc: func(ctx context.Context) (*sync.SyncResult, error) {
			return nil, errors.New("server unreachable")
		},
	}
	mockAuth := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}
	mockPeers := &PeerNotifierMock{
		AnnounceLogoutFunc: func(ctx context.Context) {},
	}
	mockPurger := &StatePurgerMock{
		ClearFunc: func(ctx context.Context) error { return nil },
	}

	rec := newRecordingIO()
	rec.scriptInput("yes")
	cli := &Cli{
		io:          rec.mock,
		authService: mockAuth,
		queue:       mockQueue,
		syncer:      mockSyncer,
		peers:       mockPeers,
		purger:      mockPurger,
	}

	err := cli.runLogout(ctx)
	require.NoError(t, err)

	assert.Len(t, mockAuth.LogoutCalls(), 1)
	assert.Len(t, mockPurger.ClearCalls(), 1)

	output := rec.output()
	assert.Contains(t, output, "Warning: failed to push pending changes: server unreachable")
	assert.Contains(t, output, "⚠️  2 change(s) could not be pushed and will be discarded.")
	assert.Contains(t, output, "✓ Logout successful!")
}

func TestCli_runLogout_Cancelled(t *testing.T) {
	ctx := context.Background()

	mockQueue := &queue.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) { return 1, nil },
	}
	mockSyncer := &sync.ServiceMock{
		PushNowFunc: func(ctx context.Context) (*sync.SyncResult, error) {
			return &sync.SyncResult{}, nil
		},
	}
	mockAuth := &auth.ServiceMock{}
	mockPeers := &PeerNotifierMock{}
	mockPurger := &StatePurgerMock{}

	rec := newRecordingIO()
	rec.scriptInput("no")
	cli := &Cli{
		io:          rec.mock,
		authService: mockAuth,
		queue:       mockQueue,
		syncer:      mockSyncer,
		peers:       mockPeers,
		purger:      mockPurger,
	}

	err := cli.runLogout(ctx)
	require.NoError(t, err)

	assert.Empty(t, mockAuth.LogoutCalls())
	assert.Empty(t, mockPeers.AnnounceLogoutCalls())
	assert.Empty(t, mockPurger.ClearCalls())
	assert.Contains(t, rec.output(), "Logout cancelled.")
}
