package sync

import (
	"context"
)

//go:generate moq -out service_mock.go . Service

// Service перечисляет операции движка синхронизации, доступные CLI и встраивающему
// UI. Реализуется Engine.
type Service interface {
	// FullSync выполняет полный проход: push очереди, затем pull всех типов
	FullSync(ctx context.Context) (*SyncResult, error)

	// DeltaSync выполняет минимально достаточный проход
	DeltaSync(ctx context.Context) (*SyncResult, error)

	// PushNow немедленно отправляет очередь на сервер
	PushNow(ctx context.Context) (*SyncResult, error)

	// SchedulePush планирует отправку очереди через окно debounce
	SchedulePush()

	// Status возвращает снимок состояния движка
	Status(ctx context.Context) Status

	// NeedsReauth сообщает, что синхронизация остановлена до повторного входа
	NeedsReauth() bool

	// ClearAuthError снимает блокировку после успешного повторного входа
	ClearAuthError()

	// Close останавливает отложенные отправки
	Close()
}

var _ Service = (*Engine)(nil)
