package api

// Entity представляет сущность на проводе: карточку, коллекцию или тег.
// Тип определяется endpoint'ом, поэтому отдельного поля type на проводе нет.
// Все временные метки заданы в Unix-миллисекундах.
type Entity struct {
	Metadata       map[string]string `json:"metadata,omitempty"`       // произвольные scraped-метаданные (og:* и т.п.)
	ID             string            `json:"id"`                       // стабильный UUID сущности
	WorkspaceID    string            `json:"workspaceId"`              // workspace, которому принадлежит сущность
	ParentID       string            `json:"parentId,omitempty"`       // коллекция-владелец (карточки) или родительская коллекция
	URL            string            `json:"url,omitempty"`            // исходный URL закладки (карточки)
	Title          string            `json:"title,omitempty"`          // заголовок страницы (карточки)
	Description    string            `json:"description,omitempty"`    // описание страницы (карточки)
	ImageURL       string            `json:"imageUrl,omitempty"`       // превью-изображение (карточки)
	ArticleBody    string            `json:"articleBody,omitempty"`    // извлеченный текст статьи (карточки)
	Name           string            `json:"name,omitempty"`           // имя коллекции или тега
	Slug           string            `json:"slug,omitempty"`           // slug коллекции внутри workspace
	Color          string            `json:"color,omitempty"`          // цвет тега
	ConflictWithID string            `json:"conflictWithId,omitempty"` // ссылка на вторую половину конфликтной пары
	Tags           []string          `json:"tags,omitempty"`           // имена тегов карточки
	Flags          *uint8            `json:"flags,omitempty"`          // явные sync-флаги; nil наследует от родителя
	CreatedAt      int64             `json:"createdAt"`                // момент создания (выставляет клиент)
	UpdatedAt      int64             `json:"updatedAt"`                // момент последней записи (выставляет сервер)
	DeletedAt      int64             `json:"deletedAt,omitempty"`      // момент удаления, если Deleted
	Version        int64             `json:"version"`                  // счетчик версий сервера (+1 на каждую запись)
	Deleted        bool              `json:"deleted"`                  // soft-delete tombstone
}

// ListResponse представляет ответ на GET {endpoint}?workspaceId=&since=
type ListResponse struct {
	Items []Entity `json:"items"` // сущности, измененные после since
}

// UpdateRequest представляет тело PATCH {endpoint}/{id}: частичный набор
// полей сущности плюс ожидаемая версия для versioned-типов.
type UpdateRequest struct {
	Fields          map[string]any `json:"fields"`                    // изменяемые поля (wire-имена)
	ExpectedVersion int64          `json:"expectedVersion,omitempty"` // ожидаемая версия; 0 отключает проверку
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Code    string `json:"code"`              // машинный код ошибки
	Message string `json:"message,omitempty"` // человекочитаемое описание
}

// ConflictResponse возвращается на PATCH при несовпадении версии (409).
type ConflictResponse struct {
	ServerEntity *Entity `json:"serverEntity"` // актуальное состояние сущности на сервере
	Code         string  `json:"code"`         // всегда CodeVersionConflict
	Message      string  `json:"message,omitempty"`
}

// CodeVersionConflict возвращается при несовпадении версии в PATCH.
const CodeVersionConflict = "VERSION_CONFLICT"
