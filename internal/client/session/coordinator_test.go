package session

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// newTestCoordinator возвращает координатор на мок-транспорте и перехваченный
// обработчик входящих сообщений
func newTestCoordinator(t *testing.T) (*Coordinator, *TransportMock, func(Message)) {
	t.Helper()

	var handler func(Message)
	transport := &TransportMock{
		PublishFunc:   func(ctx context.Context, msg Message) error { return nil },
		SubscribeFunc: func(h func(Message)) { handler = h },
		CloseFunc:     func() error { return nil },
	}

	coordinator := NewCoordinator(transport, "session-1", testLogger())
	require.NotNil(t, handler)

	return coordinator, transport, func(msg Message) { handler(msg) }
}

func TestCoordinator_AnnouncePublishes(t *testing.T) {
	coordinator, transport, _ := newTestCoordinator(t)
	ctx := context.Background()

	coordinator.AnnounceSyncStart(ctx)
	coordinator.AnnounceSyncComplete(ctx)
	coordinator.AnnounceLogout(ctx)

	calls := transport.PublishCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, KindSyncStart, calls[0].Msg.Kind)
	assert.Equal(t, KindSyncComplete, calls[1].Msg.Kind)
	assert.Equal(t, KindLogout, calls[2].Msg.Kind)

	for _, call := range calls {
		assert.Equal(t, "session-1", call.Msg.SessionID)
		assert.Positive(t, call.Msg.SentAt)
	}
}

func TestCoordinator_PublishFailureIsAdvisory(t *testing.T) {
	coordinator, transport, _ := newTestCoordinator(t)
	transport.PublishFunc = func(ctx context.Context, msg Message) error {
		return errors.New("channel gone")
	}

	// Ошибка канала не поднимается: синхронизация важнее координации
	coordinator.AnnounceSyncStart(context.Background())
	coordinator.AnnounceSyncComplete(context.Background())
}

func TestCoordinator_PeerSyncing(t *testing.T) {
	coordinator, _, deliver := newTestCoordinator(t)

	now := int64(1700000000000)
	coordinator.now = func() int64 { return now }

	assert.False(t, coordinator.PeerSyncing())

	deliver(Message{Kind: KindSyncStart, SessionID: "session-2", SentAt: now})
	assert.True(t, coordinator.PeerSyncing())

	// Завершение чужого прохода открывает ворота
	deliver(Message{Kind: KindSyncComplete, SessionID: "session-2", SentAt: now})
	assert.False(t, coordinator.PeerSyncing())
}

func TestCoordinator_PeerSyncStartGoesStale(t *testing.T) {
	coordinator, _, deliver := newTestCoordinator(t)

	now := int64(1700000000000)
	coordinator.now = func() int64 { return now }

	deliver(Message{Kind: KindSyncStart, SessionID: "session-2", SentAt: now})
	require.True(t, coordinator.PeerSyncing())

	// Сессия, упавшая посреди прохода, не держит ворота вечно
	now += peerSyncWindow.Milliseconds() + 1
	assert.False(t, coordinator.PeerSyncing())
}

func TestCoordinator_OnLogout(t *testing.T) {
	coordinator, _, deliver := newTestCoordinator(t)

	purged := 0
	coordinator.OnLogout(func() { purged++ })

	deliver(Message{Kind: KindLogout, SessionID: "session-2", SentAt: 1})
	assert.Equal(t, 1, purged)

	// Sync-сообщения обработчик logout не дергают
	deliver(Message{Kind: KindSyncStart, SessionID: "session-2", SentAt: 2})
	assert.Equal(t, 1, purged)
}

func TestCoordinator_Close(t *testing.T) {
	coordinator, transport, _ := newTestCoordinator(t)

	require.NoError(t, coordinator.Close())
	assert.Len(t, transport.CloseCalls(), 1)
}
