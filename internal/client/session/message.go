// Package session координирует сессии Pawkit на одном устройстве:
// широковещательный канал сообщений и advisory-взаимное исключение
// проходов синхронизации.
package session

// MessageKind задает вид сообщения канала координации
type MessageKind string

// Виды сообщений
const (
	KindSyncStart    MessageKind = "sync-start"    // сессия начала проход синхронизации
	KindSyncComplete MessageKind = "sync-complete" // сессия завершила проход
	KindLogout       MessageKind = "logout"        // пользователь вышел, сессии чистят локальное состояние
)

// Message представляет одно сообщение канала устройства
type Message struct {
	Kind      MessageKind `json:"kind"`
	SessionID string      `json:"sessionId"` // отправитель, для фильтрации собственных сообщений
	SentAt    int64       `json:"sentAt"`    // момент отправки, Unix-миллисекунды
}
