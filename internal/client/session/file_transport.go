package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	messagePrefix = "msg-"
	tmpPrefix     = ".tmp-"
	staleAfter    = time.Minute // сообщения старше окна считаются мусором
)

// FileTransport реализует канал устройства поверх общего каталога: публикация
// атомарно кладет JSON-файл сообщения (tmp + rename), подписка ловит
// появление файлов через fsnotify. Протухшие файлы вычищаются попутно.
type FileTransport struct {
	dir       string
	sessionID string
	watcher   *fsnotify.Watcher
	logger    *slog.Logger

	mu       sync.Mutex
	handlers []func(Message)

	seq       atomic.Int64 // суффикс имени файла, уникальность внутри сессии
	closeOnce sync.Once
	closed    chan struct{}
	done      chan struct{} // горутина watcher'а завершилась
}

// NewFileTransport открывает канал устройства в каталоге dir.
// Собственные сообщения (по sessionID) подписчикам не доставляются.
func NewFileTransport(dir, sessionID string, logger *slog.Logger) (*FileTransport, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create channel directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to start watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch channel directory: %w", err)
	}

	t := &FileTransport{
		dir:       dir,
		sessionID: sessionID,
		watcher:   watcher,
		logger:    logger,
		closed:    make(chan struct{}),
		done:      make(chan struct{}),
	}
	t.cleanupStale()

	go t.loop()

	return t, nil
}

// NewDeviceTransport возвращает файловый канал устройства, откатываясь
// на NopTransport при его недоступности: сессии тогда синхронизируются
// нескоординированно, но корректно
func NewDeviceTransport(dir, sessionID string, logger *slog.Logger) Transport {
	transport, err := NewFileTransport(dir, sessionID, logger)
	if err != nil {
		logger.Warn("session channel unavailable, sessions sync uncoordinated", "error", err)
		return NopTransport{}
	}
	return transport
}

// Publish атомарно публикует сообщение в канал
func (t *FileTransport) Publish(_ context.Context, msg Message) error {
	select {
	case <-t.closed:
		return fmt.Errorf("session channel is closed")
	default:
	}

	t.cleanupStale()

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	name := fmt.Sprintf("%s%s-%d.json", messagePrefix, t.sessionID, t.seq.Add(1))
	tmp := filepath.Join(t.dir, tmpPrefix+name)
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write message file: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(t.dir, name)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to publish message file: %w", err)
	}
	return nil
}

// Subscribe регистрирует обработчик сообщений других сессий
func (t *FileTransport) Subscribe(handler func(Message)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers = append(t.handlers, handler)
}

// Close останавливает watcher и доставку. Повторные вызовы безопасны.
func (t *FileTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.closed)
		err = t.watcher.Close()
		<-t.done
	})
	return err
}

// loop доставляет появляющиеся файлы сообщений подписчикам
func (t *FileTransport) loop() {
	defer close(t.done)

	for {
		select {
		case event, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			// rename в каталог приходит как Create; Rename оставлен на всякий
			// случай для других платформ
			if event.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			t.deliver(event.Name)

		case err, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			t.logger.Warn("session channel watcher error", "error", err)
		}
	}
}

// deliver читает файл сообщения и раздает его подписчикам
func (t *FileTransport) deliver(path string) {
	name := filepath.Base(path)
	if !strings.HasPrefix(name, messagePrefix) || !strings.HasSuffix(name, ".json") {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Файл уже вычищен другой сессией
		return
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.logger.Warn("malformed session message skipped", "file", name, "error", err)
		return
	}
	if msg.SessionID == t.sessionID {
		return
	}

	t.mu.Lock()
	handlers := append(([]func(Message))(nil), t.handlers...)
	t.mu.Unlock()

	for _, handler := range handlers {
		handler(msg)
	}
}

// cleanupStale убирает файлы сообщений старше окна staleAfter
func (t *FileTransport) cleanupStale() {
	entries, err := os.ReadDir(t.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-staleAfter)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, messagePrefix) && !strings.HasPrefix(name, tmpPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		_ = os.Remove(filepath.Join(t.dir, name))
	}
}
