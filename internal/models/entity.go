package models

import "github.com/pawkit/pawkit/pkg/api"

// EntityType определяет тип синхронизируемой сущности.
// Значение совпадает с именем REST endpoint'а и bbolt-бакета.
type EntityType string

// Типы сущностей
const (
	TypeCollections EntityType = "collections"
	TypeTags        EntityType = "tags"
	TypeCards       EntityType = "cards"
)

// PullOrder возвращает типы в порядке зависимостей: родительские типы
// раньше ссылающихся на них, чтобы merge видел уже существующие id.
func PullOrder() []EntityType {
	return []EntityType{TypeCollections, TypeTags, TypeCards}
}

// Valid проверяет, что тип известен движку.
func (t EntityType) Valid() bool {
	switch t {
	case TypeCollections, TypeTags, TypeCards:
		return true
	}
	return false
}

// Versioned сообщает, использует ли тип счетчик версий сервера для
// оптимистичной конкуренции. Версионируются только карточки, единственный
// тип, который редактируют одновременно с нескольких устройств.
func (t EntityType) Versioned() bool {
	return t == TypeCards
}

// SyncStatus описывает статус сущности для UI (status surface).
type SyncStatus string

// Статусы сущности
const (
	SyncStatusSynced  SyncStatus = "synced"  // локальная копия совпадает с сервером
	SyncStatusQueued  SyncStatus = "queued"  // есть необработанная операция в очереди
	SyncStatusSyncing SyncStatus = "syncing" // операция отправляется прямо сейчас
	SyncStatusFailed  SyncStatus = "failed"  // операция запаркована после исчерпания ретраев
)

// Entity представляет локальную копию синхронизируемой сущности.
// Один плоский конверт обслуживает все три типа (карточки, коллекции,
// теги): неиспользуемые типом поля остаются пустыми, а весь sync-контур
// (store, очередь, оркестратор, resolver) работает с единственным типом.
// Все временные метки заданы в Unix-миллисекундах.
type Entity struct {
	Metadata       map[string]string `json:"metadata,omitempty"`       // Metadata произвольные scraped-метаданные карточки
	ID             string            `json:"id"`                       // ID стабильный UUID сущности
	Type           EntityType        `json:"type"`                     // Type тип сущности (дублирует бакет для удобства)
	WorkspaceID    string            `json:"workspaceId"`              // WorkspaceID workspace-владелец
	ParentID       string            `json:"parentId,omitempty"`       // ParentID коллекция-владелец или родительская коллекция
	URL            string            `json:"url,omitempty"`            // URL исходный адрес закладки (карточки)
	Title          string            `json:"title,omitempty"`          // Title заголовок страницы (карточки)
	Description    string            `json:"description,omitempty"`    // Description описание страницы (карточки)
	ImageURL       string            `json:"imageUrl,omitempty"`       // ImageURL превью-изображение (карточки)
	ArticleBody    string            `json:"articleBody,omitempty"`    // ArticleBody извлеченный текст статьи (карточки)
	Name           string            `json:"name,omitempty"`           // Name имя коллекции или тега
	Slug           string            `json:"slug,omitempty"`           // Slug slug коллекции внутри workspace
	Color          string            `json:"color,omitempty"`          // Color цвет тега
	ConflictWithID string            `json:"conflictWithId,omitempty"` // ConflictWithID вторая половина конфликтной пары
	Tags           []string          `json:"tags,omitempty"`           // Tags имена тегов карточки
	Flags          *SyncFlags        `json:"flags,omitempty"`          // Flags явные sync-флаги; nil наследует от родителя
	CreatedAt      int64             `json:"createdAt"`                // CreatedAt момент создания (выставляет клиент)
	UpdatedAt      int64             `json:"updatedAt"`                // UpdatedAt момент последней записи сервера (serverVersion)
	DeletedAt      int64             `json:"deletedAt,omitempty"`      // DeletedAt момент удаления, если Deleted
	LastModified   int64             `json:"lastModified"`             // LastModified момент последней ЛОКАЛЬНОЙ записи
	Version        int64             `json:"version"`                  // Version счетчик версий сервера (versioned-типы)
	Deleted        bool              `json:"deleted"`                  // Deleted синхронизируемый soft-delete tombstone
	DeletedLocally bool              `json:"deletedLocally,omitempty"` // DeletedLocally локальный tombstone до полной очистки
	Synced         bool              `json:"synced"`                   // Synced локальная копия совпадает с сервером
}

// Clone создает глубокую копию сущности
func (e *Entity) Clone() *Entity {
	clone := *e

	if e.Metadata != nil {
		clone.Metadata = make(map[string]string, len(e.Metadata))
		for k, v := range e.Metadata {
			clone.Metadata[k] = v
		}
	}
	if e.Tags != nil {
		clone.Tags = make([]string, len(e.Tags))
		copy(clone.Tags, e.Tags)
	}
	if e.Flags != nil {
		flags := *e.Flags
		clone.Flags = &flags
	}

	return &clone
}

// ToWire конвертирует локальную сущность в wire-представление.
// Локальные поля (Synced, LastModified, DeletedLocally, Type) на провод
// не попадают.
func (e *Entity) ToWire() api.Entity {
	w := api.Entity{
		Metadata:       e.Metadata,
		ID:             e.ID,
		WorkspaceID:    e.WorkspaceID,
		ParentID:       e.ParentID,
		URL:            e.URL,
		Title:          e.Title,
		Description:    e.Description,
		ImageURL:       e.ImageURL,
		ArticleBody:    e.ArticleBody,
		Name:           e.Name,
		Slug:           e.Slug,
		Color:          e.Color,
		ConflictWithID: e.ConflictWithID,
		Tags:           e.Tags,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
		DeletedAt:      e.DeletedAt,
		Version:        e.Version,
		Deleted:        e.Deleted,
	}
	if e.Flags != nil {
		flags := uint8(*e.Flags)
		w.Flags = &flags
	}
	return w
}

// FromWire конвертирует wire-представление в локальную сущность.
// Synced/LastModified не трогаем: их выставляет merge-логика вызывающего.
func FromWire(t EntityType, w *api.Entity) *Entity {
	e := &Entity{
		Metadata:       w.Metadata,
		ID:             w.ID,
		Type:           t,
		WorkspaceID:    w.WorkspaceID,
		ParentID:       w.ParentID,
		URL:            w.URL,
		Title:          w.Title,
		Description:    w.Description,
		ImageURL:       w.ImageURL,
		ArticleBody:    w.ArticleBody,
		Name:           w.Name,
		Slug:           w.Slug,
		Color:          w.Color,
		ConflictWithID: w.ConflictWithID,
		Tags:           w.Tags,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
		DeletedAt:      w.DeletedAt,
		Version:        w.Version,
		Deleted:        w.Deleted,
	}
	if w.Flags != nil {
		flags := SyncFlags(*w.Flags)
		e.Flags = &flags
	}
	return e
}
