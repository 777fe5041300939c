package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// peerSyncWindow задает срок годности чужого sync-start без завершения.
// Сессия, упавшая посреди прохода, не должна вечно держать ворота.
const peerSyncWindow = 30 * time.Second

// Coordinator ведет advisory-координацию поверх канала устройства: объявляет
// проходы своей сессии и отслеживает проходы чужих. Это не настоящий
// замок: гонка двух sync-start ведет к лишнему проходу, не к порче данных.
type Coordinator struct {
	transport Transport
	sessionID string
	logger    *slog.Logger
	now       func() int64 // Unix-миллисекунды, подменяется в тестах

	mu          sync.Mutex
	peerStartAt int64 // момент последнего чужого sync-start, 0 если прохода нет
	onLogout    []func()
}

// NewCoordinator подписывает координатор на канал устройства
func NewCoordinator(transport Transport, sessionID string, logger *slog.Logger) *Coordinator {
	c := &Coordinator{
		transport: transport,
		sessionID: sessionID,
		logger:    logger,
		now:       func() int64 { return time.Now().UnixMilli() },
	}
	transport.Subscribe(c.handle)
	return c
}

// SessionID возвращает идентификатор этой сессии
func (c *Coordinator) SessionID() string {
	return c.sessionID
}

// AnnounceSyncStart объявляет начало прохода синхронизации
func (c *Coordinator) AnnounceSyncStart(ctx context.Context) {
	c.publish(ctx, KindSyncStart)
}

// AnnounceSyncComplete объявляет завершение прохода
func (c *Coordinator) AnnounceSyncComplete(ctx context.Context) {
	c.publish(ctx, KindSyncComplete)
}

// AnnounceLogout объявляет выход пользователя: каждая сессия чистит
// свое локальное состояние
func (c *Coordinator) AnnounceLogout(ctx context.Context) {
	c.publish(ctx, KindLogout)
}

// PeerSyncing сообщает, ведет ли проход другая сессия устройства.
// Sync-start старше peerSyncWindow без завершения игнорируется.
func (c *Coordinator) PeerSyncing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.peerStartAt == 0 {
		return false
	}
	return c.now()-c.peerStartAt < peerSyncWindow.Milliseconds()
}

// OnLogout регистрирует обработчик чужого logout
func (c *Coordinator) OnLogout(handler func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onLogout = append(c.onLogout, handler)
}

// Close закрывает канал устройства
func (c *Coordinator) Close() error {
	return c.transport.Close()
}

// publish отправляет сообщение от имени этой сессии.
// Канал advisory: ошибка публикации не прерывает синхронизацию.
func (c *Coordinator) publish(ctx context.Context, kind MessageKind) {
	msg := Message{
		Kind:      kind,
		SessionID: c.sessionID,
		SentAt:    c.now(),
	}
	if err := c.transport.Publish(ctx, msg); err != nil {
		c.logger.Warn("failed to publish session message",
			"kind", kind, "error", err)
	}
}

// handle обрабатывает сообщение другой сессии
func (c *Coordinator) handle(msg Message) {
	switch msg.Kind {
	case KindSyncStart:
		c.mu.Lock()
		c.peerStartAt = c.now()
		c.mu.Unlock()

	case KindSyncComplete:
		// Перечитывать сервер не нужно: принятые изменения лежат в общем
		// локальном хранилище
		c.mu.Lock()
		c.peerStartAt = 0
		c.mu.Unlock()

	case KindLogout:
		c.mu.Lock()
		handlers := append(([]func())(nil), c.onLogout...)
		c.mu.Unlock()

		c.logger.Info("peer session logged out, purging local state")
		for _, handler := range handlers {
			handler()
		}

	default:
		c.logger.Warn("unknown session message kind", "kind", msg.Kind)
	}
}
