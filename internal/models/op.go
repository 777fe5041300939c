package models

import "encoding/json"

// OpKind определяет вид отложенной мутации.
type OpKind string

// Виды операций
const (
	OpCreate OpKind = "create"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// OpStatus определяет состояние операции в очереди.
type OpStatus string

// Состояния операции
const (
	// OpStatusPending операция ждет отправки.
	OpStatusPending OpStatus = "pending"
	// OpStatusProcessing операция отправляется прямо сейчас.
	OpStatusProcessing OpStatus = "processing"
	// OpStatusParked операция исчерпала ретраи и исключена из обработки
	// до явного retry или discard.
	OpStatusParked OpStatus = "parked"
)

// Operation представляет отложенную мутацию в исходящей очереди.
// На пару (EntityType, EntityID) существует не более одной операции:
// новые мутации сливаются с уже стоящей в очереди.
type Operation struct {
	ID          string          `json:"id"`                  // ID уникальный идентификатор операции (UUID)
	EntityType  EntityType      `json:"entityType"`          // EntityType тип сущности
	EntityID    string          `json:"entityId"`            // EntityID идентификатор сущности
	Kind        OpKind          `json:"kind"`                // Kind вид мутации: create, update, delete
	Status      OpStatus        `json:"status"`              // Status pending, processing или parked
	LastError   string          `json:"lastError,omitempty"` // LastError текст последней ошибки отправки
	Payload     json.RawMessage `json:"payload,omitempty"`   // Payload частичные поля для update; пусто для delete и create
	BaseVersion int64           `json:"baseVersion"`         // BaseVersion ожидаемая версия сервера на момент постановки
	CreatedAt   int64           `json:"createdAt"`           // CreatedAt момент постановки, Unix-миллисекунды (порядок FIFO)
	RetryCount  int             `json:"retryCount"`          // RetryCount число неудачных попыток отправки
}

// Clone создает копию операции с собственным Payload.
func (o *Operation) Clone() *Operation {
	clone := *o
	if o.Payload != nil {
		clone.Payload = make(json.RawMessage, len(o.Payload))
		copy(clone.Payload, o.Payload)
	}
	return &clone
}
