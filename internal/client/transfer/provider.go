// Package transfer содержит провайдеров внешнего хранения резервных
// копий. Контракт нарочно минимальный: выгрузить байты по пути, скачать
// байты по идентификатору. Внутренности провайдеров (облачные SDK,
// диски) за пределами контракта не протекают.
package transfer

import "context"

//go:generate moq -out provider_mock.go . Provider

// Provider описывает внешнее хранилище файлов резервных копий
type Provider interface {
	// Upload сохраняет данные по пути path и возвращает идентификатор
	// для последующего скачивания
	Upload(ctx context.Context, data []byte, path string) (string, error)

	// Download возвращает содержимое по идентификатору, выданному Upload
	Download(ctx context.Context, id string) ([]byte, error)
}
