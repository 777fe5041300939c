// Package merge содержит чистые правила слияния локальной и серверной
// копий сущности при pull-синхронизации. Пакет не делает I/O: все решения
// принимаются по переданным данным, side-эффекты выполняет вызывающий.
package merge

import (
	"time"

	"github.com/pawkit/pawkit/internal/models"
)

// Decision описывает решение о судьбе серверной записи при merge.
type Decision int

// Решения merge
const (
	// Skip оставляет локальную копию, серверная запись игнорируется.
	Skip Decision = iota
	// Accept перезаписывает локальную копию серверной записью.
	Accept
	// AcceptResurrect отменяет локальное удаление серверной правкой:
	// перезаписываем и снимаем локальный tombstone.
	AcceptResurrect
)

// String возвращает человекочитаемое представление решения.
func (d Decision) String() string {
	switch d {
	case Skip:
		return "skip"
	case Accept:
		return "accept"
	case AcceptResurrect:
		return "accept-resurrect"
	default:
		return "unknown"
	}
}

// DefaultRecencyThreshold задает окно "свежей правки" по умолчанию.
// Эвристика: правка, сделанная в пределах часа от серверной метки,
// считается сознательным действием пользователя и не затирается фоновым
// опросом. Значение настраиваемое, а не контрактное.
const DefaultRecencyThreshold = time.Hour

// Rules задает параметры merge-решений.
type Rules struct {
	// RecencyThreshold задает окно, в котором локальная несинхронизированная
	// правка предпочитается чуть более новой серверной.
	RecencyThreshold time.Duration
}

// NewRules возвращает правила с параметрами по умолчанию.
func NewRules() Rules {
	return Rules{RecencyThreshold: DefaultRecencyThreshold}
}

// Decide принимает merge-решение для одной серверной записи.
//
// Приоритет (первое сработавшее правило выигрывает):
//  1. На сущность стоит локальная операция в очереди (queued): Skip.
//     Локальная мутация всегда важнее; сервер доедет после drain'а.
//  2. flags содержит FlagNeverSync: Skip безусловно.
//  3. local == nil, сущности еще нет локально: Accept.
//  4. Удаления упорядочиваются по меткам: более новое удаление бьет более
//     старую правку; серверная правка новее локального удаления
//     "воскрешает" сущность; серверное удаление старше локальной правки
//     отклоняется.
//  5. Локальная LastModified строго новее серверной UpdatedAt: Skip.
//  6. Несинхронизированная локальная правка в пределах RecencyThreshold от
//     серверной метки предпочитается, если серверная сторона не богаче по
//     качеству метаданных (см. Quality).
//  7. Иначе Accept: LWW, при равных метках выигрывает сервер.
func (r Rules) Decide(local *models.Entity, remote *models.Entity, queued bool, flags models.SyncFlags) Decision {
	if queued {
		return Skip
	}
	if flags.Has(models.FlagNeverSync) {
		return Skip
	}
	if local == nil {
		return Accept
	}

	// Серверное удаление против локального состояния.
	if remote.Deleted && !localDeleted(local) {
		if remoteStamp(remote) >= local.LastModified {
			return Accept
		}
		// Локальная правка новее удаления и остается.
		return Skip
	}

	// Серверная правка против локального удаления: воскрешение.
	if !remote.Deleted && localDeleted(local) {
		if remoteStamp(remote) > localDeleteStamp(local) {
			return AcceptResurrect
		}
		// Наше удаление новее, оно уедет на сервер при drain'е.
		return Skip
	}

	// Оба удалены: принимаем серверный tombstone, это идемпотентно.
	if remote.Deleted && localDeleted(local) {
		return Accept
	}

	// Обычное LWW-сравнение правок.
	if local.LastModified > remoteStamp(remote) {
		return Skip
	}

	// Свежая несинхронизированная правка: при почти-равных метках
	// предпочитаем локальную, если сервер не выигрывает по качеству.
	if !local.Synced {
		delta := remoteStamp(remote) - local.LastModified
		if delta < r.RecencyThreshold.Milliseconds() && Quality(remote) <= Quality(local) {
			return Skip
		}
	}

	return Accept
}

// remoteStamp возвращает серверную метку записи: UpdatedAt, а для
// tombstone'ов без UpdatedAt берется DeletedAt.
func remoteStamp(remote *models.Entity) int64 {
	if remote.UpdatedAt != 0 {
		return remote.UpdatedAt
	}
	return remote.DeletedAt
}

// localDeleted учитывает оба вида локального удаления: синхронизируемый
// tombstone и локальный маркер отложенной очистки.
func localDeleted(local *models.Entity) bool {
	return local.Deleted || local.DeletedLocally
}

// localDeleteStamp возвращает момент локального удаления.
func localDeleteStamp(local *models.Entity) int64 {
	if local.DeletedAt != 0 {
		return local.DeletedAt
	}
	return local.LastModified
}
