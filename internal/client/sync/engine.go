package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	httpClient "github.com/pawkit/pawkit/internal/client/api"
	"github.com/pawkit/pawkit/internal/client/queue"
)

// State описывает состояние движка синхронизации
type State string

// Состояния движка
const (
	StateIdle    State = "idle"    // синхронизация не идет
	StateSyncing State = "syncing" // проход выполняется прямо сейчас
	StateOffline State = "offline" // связи с сервером нет, попытки не делаются
	StateError   State = "error"   // последний проход завершился ошибкой
)

// Status содержит снимок состояния движка для CLI и встраивающего UI
type Status struct {
	ActiveIDs    []string // сущности, отправляемые прямо сейчас
	State        State    // текущее состояние движка
	LastError    string   // текст последней ошибки синхронизации
	LastSyncAt   int64    // момент последнего успешного прохода, Unix-миллисекунды
	PendingCount int      // операции, ожидающие отправки
	Online       bool     // последняя проверка связи прошла успешно
	NeedsReauth  bool     // сервер отверг токен, нужен повторный вход
}

// TokenFunc возвращает действующий access token для синхронизации
type TokenFunc func(ctx context.Context) (string, error)

//go:generate moq -out coordinator_mock.go . SessionCoordinator

// SessionCoordinator обеспечивает advisory координацию сессий на одном устройстве.
// Движок объявляет свои проходы и уступает, если проход уже ведет другая
// сессия.
type SessionCoordinator interface {
	AnnounceSyncStart(ctx context.Context)
	AnnounceSyncComplete(ctx context.Context)
	PeerSyncing() bool
}

// Defaults движка
const (
	DefaultDebounce     = 2 * time.Second // окно слияния всплеска локальных правок
	DefaultProbeTimeout = 3 * time.Second // потолок ожидания connectivity-пробы
)

// Config задает параметры движка синхронизации
type Config struct {
	WorkspaceID  string        // workspace, который синхронизирует движок
	Token        TokenFunc     // источник access token'а
	OnChange     func(Status)  // уведомление о смене состояния, может быть nil
	Debounce     time.Duration // окно debounce для SchedulePush
	ProbeTimeout time.Duration // таймаут connectivity-пробы
}

// Engine ведет синхронизацию процесса: один проход за раз, с пробой связи
// перед сетевыми вызовами и debounce'ом фоновых push'ей.
type Engine struct {
	cfg          Config
	apiClient    httpClient.ClientAPI
	orchestrator *Orchestrator
	queue        queue.Service
	coordinator  SessionCoordinator
	logger       *slog.Logger

	group singleflight.Group // совмещает конкурентные вызовы в один проход

	mu          sync.Mutex
	state       State
	lastError   string
	lastSyncAt  int64
	pushTimer   *time.Timer
	online      bool
	needsReauth bool
}

// NewEngine creates a new sync engine
func NewEngine(cfg Config, apiClient httpClient.ClientAPI, orchestrator *Orchestrator, queueSvc queue.Service, coordinator SessionCoordinator, logger *slog.Logger) *Engine {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = DefaultProbeTimeout
	}

	return &Engine{
		cfg:          cfg,
		apiClient:    apiClient,
		orchestrator: orchestrator,
		queue:        queueSvc,
		coordinator:  coordinator,
		logger:       logger,
		state:        StateIdle,
	}
}

// FullSync выполняет полный проход: push очереди, затем pull всех типов
func (e *Engine) FullSync(ctx context.Context) (*SyncResult, error) {
	return e.run(ctx, func(ctx context.Context, token string) (*SyncResult, error) {
		return e.orchestrator.FullSync(ctx, token, e.cfg.WorkspaceID)
	})
}

// DeltaSync выполняет минимально достаточный проход
func (e *Engine) DeltaSync(ctx context.Context) (*SyncResult, error) {
	return e.run(ctx, func(ctx context.Context, token string) (*SyncResult, error) {
		return e.orchestrator.DeltaSync(ctx, token, e.cfg.WorkspaceID)
	})
}

// PushNow немедленно отправляет очередь: восстановление связи, flush перед
// выходом или навигацией
func (e *Engine) PushNow(ctx context.Context) (*SyncResult, error) {
	return e.run(ctx, func(ctx context.Context, token string) (*SyncResult, error) {
		return e.orchestrator.PushOnlySync(ctx, token)
	})
}

// SchedulePush планирует отправку очереди через окно debounce.
// Повторные вызовы внутри окна переносят отправку, сливая всплеск правок
// в один проход.
func (e *Engine) SchedulePush() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pushTimer != nil {
		e.pushTimer.Reset(e.cfg.Debounce)
		return
	}
	e.pushTimer = time.AfterFunc(e.cfg.Debounce, e.firePush)
}

// Close останавливает отложенные отправки. Текущий проход не прерывается.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pushTimer != nil {
		e.pushTimer.Stop()
		e.pushTimer = nil
	}
}

// NeedsReauth сообщает, что синхронизация остановлена до повторного входа
func (e *Engine) NeedsReauth() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.needsReauth
}

// ClearAuthError снимает блокировку после успешного повторного входа
func (e *Engine) ClearAuthError() {
	e.transition(func() {
		e.needsReauth = false
		e.lastError = ""
		if e.state == StateError {
			e.state = StateIdle
		}
	})
}

// Status возвращает снимок состояния движка
func (e *Engine) Status(ctx context.Context) Status {
	e.mu.Lock()
	st := e.statusLocked()
	e.mu.Unlock()

	st.ActiveIDs = e.queue.ActiveIDs()
	if pending, err := e.queue.PendingCount(ctx); err == nil {
		st.PendingCount = pending
	}
	return st
}

// run совмещает конкурентные вызовы: пока проход в полете, остальные
// вызывающие ждут его результат вместо запуска собственного
func (e *Engine) run(ctx context.Context, fn func(ctx context.Context, token string) (*SyncResult, error)) (*SyncResult, error) {
	v, err, _ := e.group.Do("sync", func() (any, error) {
		return e.attempt(ctx, fn)
	})

	result, _ := v.(*SyncResult)
	return result, err
}

// attempt выполняет один проход синхронизации
func (e *Engine) attempt(ctx context.Context, fn func(ctx context.Context, token string) (*SyncResult, error)) (*SyncResult, error) {
	// Advisory-ворота: проход уже ведет другая сессия этого устройства
	if e.coordinator.PeerSyncing() {
		e.logger.Debug("peer session is syncing, deferring")
		return &SyncResult{Deferred: true}, nil
	}

	// Проба связи до любых сетевых попыток
	if !e.probe(ctx) {
		e.transition(func() {
			e.state = StateOffline
			e.online = false
		})
		e.logger.Warn("connectivity probe failed, skipping sync")
		return &SyncResult{}, nil
	}

	token, err := e.cfg.Token(ctx)
	if err != nil {
		e.transition(func() {
			e.state = StateError
			e.lastError = err.Error()
		})
		return nil, fmt.Errorf("failed to acquire token: %w", err)
	}

	e.transition(func() {
		e.state = StateSyncing
		e.online = true
	})

	e.coordinator.AnnounceSyncStart(ctx)
	defer e.coordinator.AnnounceSyncComplete(ctx)

	result, err := fn(ctx, token)
	if err != nil {
		e.transition(func() {
			e.state = StateError
			e.lastError = err.Error()
			if errors.Is(err, httpClient.ErrUnauthorized) {
				e.needsReauth = true
			}
		})
		return result, err
	}

	e.transition(func() {
		e.state = StateIdle
		e.lastError = ""
		e.lastSyncAt = time.Now().UnixMilli()
	})

	return result, nil
}

// probe проверяет доступность сервера коротким запросом
func (e *Engine) probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, e.cfg.ProbeTimeout)
	defer cancel()
	return e.apiClient.Ping(probeCtx) == nil
}

// firePush выполняет отложенный push по срабатыванию debounce-таймера
func (e *Engine) firePush() {
	e.mu.Lock()
	e.pushTimer = nil
	e.mu.Unlock()

	if _, err := e.PushNow(context.Background()); err != nil {
		e.logger.Warn("scheduled push failed", "error", err)
	}
}

// transition меняет состояние и уведомляет подписчика
func (e *Engine) transition(mutate func()) {
	e.mu.Lock()
	mutate()
	st := e.statusLocked()
	e.mu.Unlock()

	if e.cfg.OnChange == nil {
		return
	}
	st.ActiveIDs = e.queue.ActiveIDs()
	if pending, err := e.queue.PendingCount(context.Background()); err == nil {
		st.PendingCount = pending
	}
	e.cfg.OnChange(st)
}

// statusLocked собирает поля снимка, принадлежащие движку.
// Вызывается с удержанным e.mu.
func (e *Engine) statusLocked() Status {
	return Status{
		State:       e.state,
		LastError:   e.lastError,
		LastSyncAt:  e.lastSyncAt,
		Online:      e.online,
		NeedsReauth: e.needsReauth,
	}
}
