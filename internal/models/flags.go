package models

// SyncFlags хранит типизированный набор sync-флагов сущности.
// Заменяет исторические маркеры-теги ("private", "local-only", "conflict"),
// которые хранились как обычные строки в списке тегов карточки и требовали
// строкового сравнения на каждом фильтре.
type SyncFlags uint8

// Флаги синхронизации
const (
	// FlagNeverSync запрещает отправку сущности на сервер и перезапись
	// локальной копии при pull.
	FlagNeverSync SyncFlags = 1 << iota
	// FlagConflict помечает сущность как половину конфликтной пары.
	FlagConflict
)

// Has проверяет, установлен ли флаг.
func (f SyncFlags) Has(flag SyncFlags) bool {
	return f&flag != 0
}

// Set устанавливает флаг.
func (f *SyncFlags) Set(flag SyncFlags) {
	*f |= flag
}

// Clear снимает флаг.
func (f *SyncFlags) Clear(flag SyncFlags) {
	*f &^= flag
}

// String возвращает человекочитаемое представление флагов.
func (f SyncFlags) String() string {
	switch {
	case f.Has(FlagNeverSync) && f.Has(FlagConflict):
		return "never-sync|conflict"
	case f.Has(FlagNeverSync):
		return "never-sync"
	case f.Has(FlagConflict):
		return "conflict"
	}
	return "none"
}

// Легаси-маркеры, которые старые версии хранили как строки в Tags.
const (
	legacyTagPrivate   = "private"
	legacyTagLocalOnly = "local-only"
	legacyTagConflict  = "conflict"
)

// ParseLegacyTag распознает исторический маркер-тег и возвращает
// соответствующий флаг. Используется миграцией локального хранилища.
func ParseLegacyTag(tag string) (SyncFlags, bool) {
	switch tag {
	case legacyTagPrivate, legacyTagLocalOnly:
		return FlagNeverSync, true
	case legacyTagConflict:
		return FlagConflict, true
	}
	return 0, false
}

// maxFlagDepth ограничивает подъем по цепочке родительских коллекций.
const maxFlagDepth = 16

// EffectiveFlags возвращает действующие флаги сущности.
// Явно заданные флаги имеют приоритет; иначе флаги наследуются от цепочки
// родительских коллекций (первый родитель с явными флагами выигрывает).
// lookup возвращает родительскую коллекцию по id либо nil.
func EffectiveFlags(e *Entity, lookup func(id string) *Entity) SyncFlags {
	if e == nil {
		return 0
	}
	if e.Flags != nil {
		return *e.Flags
	}
	if lookup == nil {
		return 0
	}

	// Поднимаемся по родительским коллекциям; защищаемся от циклов.
	seen := map[string]bool{e.ID: true}
	parentID := e.ParentID
	for depth := 0; depth < maxFlagDepth && parentID != "" && !seen[parentID]; depth++ {
		seen[parentID] = true
		parent := lookup(parentID)
		if parent == nil {
			break
		}
		if parent.Flags != nil {
			return *parent.Flags
		}
		parentID = parent.ParentID
	}
	return 0
}
