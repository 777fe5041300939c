package session

import "context"

//go:generate moq -out transport_mock.go . Transport

// Transport описывает широковещательный канал между сессиями одного устройства.
// Доставка best-effort: потерянное сообщение ведет к лишнему проходу
// синхронизации, но не к потере данных.
type Transport interface {
	// Publish отправляет сообщение всем сессиям устройства
	Publish(ctx context.Context, msg Message) error

	// Subscribe регистрирует обработчик входящих сообщений от других
	// сессий. Обработчики вызываются последовательно.
	Subscribe(handler func(Message))

	// Close останавливает доставку
	Close() error
}

// NopTransport служит заглушкой на случай недоступного канала: сессии
// синхронизируются нескоординированно, но корректно
type NopTransport struct{}

// Publish ничего не отправляет
func (NopTransport) Publish(_ context.Context, _ Message) error { return nil }

// Subscribe никогда не доставляет сообщений
func (NopTransport) Subscribe(_ func(Message)) {}

// Close ничего не делает
func (NopTransport) Close() error { return nil }
