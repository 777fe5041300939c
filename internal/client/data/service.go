// Package data реализует типизированные локальные мутации поверх
// локального хранилища и исходящей очереди: каждая запись сохраняется
// сразу (изменение видно мгновенно, даже офлайн) и сопровождается
// операцией в очереди, которая доедет до сервера при следующем drain.
package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pawkit/pawkit/internal/client/queue"
	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для клиентского data сервиса
type Service interface {
	// AddCard сохраняет новую карточку и ставит ее в очередь на отправку
	AddCard(ctx context.Context, draft CardDraft) (*models.Entity, error)

	// UpdateCard применяет частичное обновление карточки
	UpdateCard(ctx context.Context, id string, patch CardPatch) (*models.Entity, error)

	// AddCollection сохраняет новую коллекцию, выводя slug из имени
	AddCollection(ctx context.Context, draft CollectionDraft) (*models.Entity, error)

	// UpdateCollection применяет частичное обновление коллекции
	UpdateCollection(ctx context.Context, id string, patch CollectionPatch) (*models.Entity, error)

	// AddTag сохраняет новый тег; повторное имя возвращает существующий
	AddTag(ctx context.Context, draft TagDraft) (*models.Entity, error)

	// UpdateTag применяет частичное обновление тега. Карточки ссылаются
	// на тег по имени, поэтому переименование переписывает ссылки.
	UpdateTag(ctx context.Context, id string, patch TagPatch) (*models.Entity, error)

	// Get возвращает живую сущность по типу и id
	Get(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error)

	// List возвращает живые сущности типа в workspace
	List(ctx context.Context, entityType models.EntityType) ([]*models.Entity, error)

	// Delete помечает сущность удаленной и ставит удаление в очередь.
	// Для сущностей вне синхронизации ставится локальный tombstone.
	Delete(ctx context.Context, entityType models.EntityType, id string) error

	// PurgeDeleted физически удаляет подтвержденные tombstone'ы
	PurgeDeleted(ctx context.Context) (int, error)

	// Export сериализует живые сущности workspace'а в JSON-снапшот
	Export(ctx context.Context) ([]byte, error)

	// Import вливает снапшот: отсутствующие локально сущности создаются
	// и ставятся в очередь, существующие пропускаются
	Import(ctx context.Context, data []byte) (*ImportResult, error)
}

//go:generate moq -out conflictcleaner_mock.go . ConflictCleaner

// ConflictCleaner растворяет конфликтную пару при удалении одной из ее
// половин: снимает метки с выжившей сущности и возвращает ее.
type ConflictCleaner interface {
	ResolveConflictOnDelete(ctx context.Context, deleted *models.Entity) (*models.Entity, error)
}

// CardDraft содержит поля новой карточки
type CardDraft struct {
	Tags         []string // имена тегов
	URL          string   // адрес закладки, обязателен
	Title        string   // заголовок страницы; может быть пустым
	Description  string   // описание страницы
	CollectionID string   // коллекция-владелец; пустая значит корень workspace'а
}

// CardPatch описывает частичное обновление карточки; nil-поля не меняются
type CardPatch struct {
	Tags         []string // новый список тегов целиком; nil значит не менять
	Title        *string  // новый заголовок
	Description  *string  // новое описание
	CollectionID *string  // новая коллекция; пустая строка значит корень
}

// CollectionDraft содержит поля новой коллекции
type CollectionDraft struct {
	Name     string // отображаемое имя, обязательно
	Slug     string // адресуемый slug; пустой выводится из имени
	ParentID string // родительская коллекция; пустая значит верх иерархии
}

// CollectionPatch описывает частичное обновление коллекции; nil-поля не меняются.
// Slug стабилен после создания: переименование его не трогает.
type CollectionPatch struct {
	Name     *string // новое имя
	ParentID *string // новый родитель; пустая строка значит верх иерархии
}

// TagDraft содержит поля нового тега
type TagDraft struct {
	Name  string // имя тега, обязательно; карточки ссылаются на него
	Color string // цвет для UI, например "#ff8800"
}

// TagPatch описывает частичное обновление тега; nil-поля не меняются
type TagPatch struct {
	Name  *string // новое имя; ссылки в карточках переписываются
	Color *string // новый цвет
}

// service handles typed local mutations over the entity store and queue
type service struct {
	entityStore storage.EntityStorage
	queue       queue.Service
	conflicts   ConflictCleaner
	logger      *slog.Logger
	now         func() int64
	workspaceID string
}

// NewService creates a new data service
func NewService(entityStore storage.EntityStorage, queueSvc queue.Service, conflicts ConflictCleaner, workspaceID string, logger *slog.Logger) Service {
	return &service{
		entityStore: entityStore,
		queue:       queueSvc,
		conflicts:   conflicts,
		logger:      logger,
		now:         func() int64 { return time.Now().UnixMilli() },
		workspaceID: workspaceID,
	}
}

// AddCard сохраняет новую карточку и ставит ее в очередь на отправку
func (s *service) AddCard(ctx context.Context, draft CardDraft) (*models.Entity, error) {
	if draft.URL == "" {
		return nil, fmt.Errorf("card url cannot be empty")
	}
	if draft.CollectionID != "" {
		if err := s.ensureCollection(ctx, draft.CollectionID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	card := &models.Entity{
		ID:           uuid.New().String(),
		Type:         models.TypeCards,
		WorkspaceID:  s.workspaceID,
		ParentID:     draft.CollectionID,
		URL:          draft.URL,
		Title:        draft.Title,
		Description:  draft.Description,
		Tags:         draft.Tags,
		CreatedAt:    now,
		LastModified: now,
		Version:      1,
	}

	return s.create(ctx, card)
}

// UpdateCard применяет частичное обновление карточки.
// В очередь уходят только фактически измененные поля.
func (s *service) UpdateCard(ctx context.Context, id string, patch CardPatch) (*models.Entity, error) {
	card, err := s.getLive(ctx, models.TypeCards, id)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if patch.Title != nil && *patch.Title != card.Title {
		card.Title = *patch.Title
		payload["title"] = card.Title
	}
	if patch.Description != nil && *patch.Description != card.Description {
		card.Description = *patch.Description
		payload["description"] = card.Description
	}
	if patch.CollectionID != nil && *patch.CollectionID != card.ParentID {
		if *patch.CollectionID != "" {
			if err := s.ensureCollection(ctx, *patch.CollectionID); err != nil {
				return nil, err
			}
		}
		card.ParentID = *patch.CollectionID
		payload["parentId"] = card.ParentID
	}
	if patch.Tags != nil {
		card.Tags = patch.Tags
		payload["tags"] = card.Tags
	}

	if len(payload) == 0 {
		return card, nil
	}

	return s.update(ctx, card, payload)
}

// AddCollection сохраняет новую коллекцию, выводя slug из имени.
// Занятый slug получает числовой суффикс: "recipes", "recipes-2", ...
func (s *service) AddCollection(ctx context.Context, draft CollectionDraft) (*models.Entity, error) {
	if draft.Name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}
	if draft.ParentID != "" {
		if err := s.ensureCollection(ctx, draft.ParentID); err != nil {
			return nil, err
		}
	}

	id := uuid.New().String()

	slug := draft.Slug
	if slug == "" {
		slug = validation.Slugify(draft.Name)
	}
	if slug == "" {
		// Имя без латинских букв и цифр: выводим slug из id
		slug = "c-" + id[:8]
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, fmt.Errorf("invalid slug: %w", err)
	}

	slug, err := s.uniqueSlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := s.now()
	col := &models.Entity{
		ID:           id,
		Type:         models.TypeCollections,
		WorkspaceID:  s.workspaceID,
		ParentID:     draft.ParentID,
		Name:         draft.Name,
		Slug:         slug,
		CreatedAt:    now,
		LastModified: now,
		Version:      1,
	}

	return s.create(ctx, col)
}

// UpdateCollection применяет частичное обновление коллекции
func (s *service) UpdateCollection(ctx context.Context, id string, patch CollectionPatch) (*models.Entity, error) {
	col, err := s.getLive(ctx, models.TypeCollections, id)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if patch.Name != nil && *patch.Name != col.Name {
		if *patch.Name == "" {
			return nil, fmt.Errorf("collection name cannot be empty")
		}
		col.Name = *patch.Name
		payload["name"] = col.Name
	}
	if patch.ParentID != nil && *patch.ParentID != col.ParentID {
		if *patch.ParentID != "" {
			if err := s.ensureCollection(ctx, *patch.ParentID); err != nil {
				return nil, err
			}
			if err := s.ensureNoCycle(ctx, col.ID, *patch.ParentID); err != nil {
				return nil, err
			}
		}
		col.ParentID = *patch.ParentID
		payload["parentId"] = col.ParentID
	}

	if len(payload) == 0 {
		return col, nil
	}

	return s.update(ctx, col, payload)
}

// AddTag сохраняет новый тег. Повторное добавление того же имени
// возвращает существующий тег без новой записи.
func (s *service) AddTag(ctx context.Context, draft TagDraft) (*models.Entity, error) {
	if draft.Name == "" {
		return nil, fmt.Errorf("tag name cannot be empty")
	}

	existing, err := s.findTag(ctx, draft.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Debug("tag already exists", "name", draft.Name, "id", existing.ID)
		return existing, nil
	}

	now := s.now()
	tag := &models.Entity{
		ID:           uuid.New().String(),
		Type:         models.TypeTags,
		WorkspaceID:  s.workspaceID,
		Name:         draft.Name,
		Color:        draft.Color,
		CreatedAt:    now,
		LastModified: now,
		Version:      1,
	}

	return s.create(ctx, tag)
}

// UpdateTag применяет частичное обновление тега. Карточки ссылаются на
// тег по имени, поэтому переименование каскадно переписывает ссылки:
// каждая затронутая карточка уходит в очередь отдельной операцией.
func (s *service) UpdateTag(ctx context.Context, id string, patch TagPatch) (*models.Entity, error) {
	tag, err := s.getLive(ctx, models.TypeTags, id)
	if err != nil {
		return nil, err
	}

	oldName := tag.Name

	payload := map[string]any{}
	if patch.Name != nil && *patch.Name != tag.Name {
		if *patch.Name == "" {
			return nil, fmt.Errorf("tag name cannot be empty")
		}
		dup, err := s.findTag(ctx, *patch.Name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, fmt.Errorf("tag %q already exists", *patch.Name)
		}
		tag.Name = *patch.Name
		payload["name"] = tag.Name
	}
	if patch.Color != nil && *patch.Color != tag.Color {
		tag.Color = *patch.Color
		payload["color"] = tag.Color
	}

	if len(payload) == 0 {
		return tag, nil
	}

	updated, err := s.update(ctx, tag, payload)
	if err != nil {
		return nil, err
	}

	if updated.Name != oldName {
		if err := s.renameTagRefs(ctx, oldName, updated.Name); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// Get возвращает живую сущность по типу и id
func (s *service) Get(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error) {
	if !entityType.Valid() {
		return nil, fmt.Errorf("unknown entity type: %s", entityType)
	}
	return s.getLive(ctx, entityType, id)
}

// List возвращает живые сущности типа в workspace
func (s *service) List(ctx context.Context, entityType models.EntityType) ([]*models.Entity, error) {
	if !entityType.Valid() {
		return nil, fmt.Errorf("unknown entity type: %s", entityType)
	}

	entities, err := s.entityStore.ListEntities(ctx, entityType, storage.Filter{WorkspaceID: s.workspaceID})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", entityType, err)
	}

	return entities, nil
}

// Delete помечает сущность удаленной и ставит удаление в очередь.
// Tombstone остается в хранилище до PurgeDeleted: так удаление успевает
// доехать до остальных реплик.
func (s *service) Delete(ctx context.Context, entityType models.EntityType, id string) error {
	if !entityType.Valid() {
		return fmt.Errorf("unknown entity type: %s", entityType)
	}

	entity, err := s.entityStore.GetEntity(ctx, entityType, id)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", entityType, err)
	}
	if entity.Deleted || entity.DeletedLocally {
		return nil
	}

	now := s.now()

	// Сущность вне синхронизации сервер не видел: хватает локального
	// tombstone'а до ближайшей очистки
	if s.effectiveFlags(ctx, entity).Has(models.FlagNeverSync) {
		entity.DeletedLocally = true
		entity.LastModified = now
		if err := s.entityStore.SaveEntity(ctx, entity); err != nil {
			return fmt.Errorf("failed to save %s: %w", entityType, err)
		}
		s.logger.Info("entity deleted locally", "type", entityType, "id", id)
		return nil
	}

	entity.Deleted = true
	entity.DeletedAt = now
	entity.LastModified = now
	entity.Synced = false

	if err := s.entityStore.SaveEntity(ctx, entity); err != nil {
		return fmt.Errorf("failed to save %s: %w", entityType, err)
	}
	if err := s.queue.Enqueue(ctx, entityType, id, models.OpDelete, nil); err != nil {
		return fmt.Errorf("failed to enqueue delete: %w", err)
	}

	s.logger.Info("entity deleted", "type", entityType, "id", id)

	return s.dissolveConflictPair(ctx, entity)
}

// PurgeDeleted физически удаляет tombstone'ы, дожившие до очистки:
// подтвержденные сервером soft-delete'ы и локальные маркеры
// DeletedLocally. Неподтвержденный tombstone остается в хранилище.
func (s *service) PurgeDeleted(ctx context.Context) (int, error) {
	purged := 0

	for _, entityType := range models.PullOrder() {
		entities, err := s.entityStore.ListEntities(ctx, entityType, storage.Filter{
			WorkspaceID:    s.workspaceID,
			IncludeDeleted: true,
		})
		if err != nil {
			return purged, fmt.Errorf("failed to list %s: %w", entityType, err)
		}

		for _, entity := range entities {
			confirmed := entity.Deleted && entity.Synced
			if !confirmed && !entity.DeletedLocally {
				continue
			}
			if err := s.entityStore.PurgeEntity(ctx, entityType, entity.ID); err != nil {
				return purged, fmt.Errorf("failed to purge %s %s: %w", entityType, entity.ID, err)
			}
			purged++
		}
	}

	if purged > 0 {
		s.logger.Info("tombstones purged", "count", purged)
	}

	return purged, nil
}

// create сохраняет новую сущность и ставит create в очередь.
// Payload не нужен: create перечитывает живую сущность при отправке.
func (s *service) create(ctx context.Context, entity *models.Entity) (*models.Entity, error) {
	if err := s.entityStore.SaveEntity(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", entity.Type, err)
	}
	if err := s.queue.Enqueue(ctx, entity.Type, entity.ID, models.OpCreate, nil); err != nil {
		return nil, fmt.Errorf("failed to enqueue create: %w", err)
	}

	s.logger.Info("entity created", "type", entity.Type, "id", entity.ID)

	return entity, nil
}

// update сохраняет измененную сущность и ставит update с частичным
// payload в очередь
func (s *service) update(ctx context.Context, entity *models.Entity, payload map[string]any) (*models.Entity, error) {
	entity.LastModified = s.now()
	entity.Synced = false

	if err := s.entityStore.SaveEntity(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", entity.Type, err)
	}
	if err := s.queue.Enqueue(ctx, entity.Type, entity.ID, models.OpUpdate, payload); err != nil {
		return nil, fmt.Errorf("failed to enqueue update: %w", err)
	}

	s.logger.Debug("entity updated", "type", entity.Type, "id", entity.ID, "fields", len(payload))

	return entity, nil
}

// dissolveConflictPair снимает conflict-метки с выжившей половины пары
// и ставит очистку в очередь, чтобы она доехала до сервера
func (s *service) dissolveConflictPair(ctx context.Context, deleted *models.Entity) error {
	survivor, err := s.conflicts.ResolveConflictOnDelete(ctx, deleted)
	if err != nil {
		// Ошибка очистки пары не отменяет состоявшееся удаление
		s.logger.Warn("failed to dissolve conflict pair",
			"type", deleted.Type, "id", deleted.ID, "error", err)
		return nil
	}
	if survivor == nil {
		return nil
	}

	payload := map[string]any{"conflictWithId": ""}
	if survivor.Flags != nil {
		payload["flags"] = uint8(*survivor.Flags)
	} else {
		payload["flags"] = nil
	}

	if err := s.queue.Enqueue(ctx, survivor.Type, survivor.ID, models.OpUpdate, payload); err != nil {
		return fmt.Errorf("failed to enqueue conflict cleanup: %w", err)
	}

	return nil
}

// renameTagRefs переписывает имя тега в списках тегов карточек
func (s *service) renameTagRefs(ctx context.Context, oldName, newName string) error {
	cards, err := s.entityStore.ListEntities(ctx, models.TypeCards, storage.Filter{WorkspaceID: s.workspaceID})
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	renamed := 0
	for _, card := range cards {
		changed := false
		for i, name := range card.Tags {
			if name == oldName {
				card.Tags[i] = newName
				changed = true
			}
		}
		if !changed {
			continue
		}
		if _, err := s.update(ctx, card, map[string]any{"tags": card.Tags}); err != nil {
			return fmt.Errorf("failed to rename tag on card %s: %w", card.ID, err)
		}
		renamed++
	}

	if renamed > 0 {
		s.logger.Info("tag references renamed",
			"old", oldName, "new", newName, "cards", renamed)
	}

	return nil
}

// findTag ищет живой тег по имени; nil без ошибки, если тега нет
func (s *service) findTag(ctx context.Context, name string) (*models.Entity, error) {
	tags, err := s.entityStore.ListEntities(ctx, models.TypeTags, storage.Filter{WorkspaceID: s.workspaceID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	for _, t := range tags {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

// getLive возвращает сущность, отклоняя tombstone'ы
func (s *service) getLive(ctx context.Context, entityType models.EntityType, id string) (*models.Entity, error) {
	entity, err := s.entityStore.GetEntity(ctx, entityType, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", entityType, err)
	}
	if entity.Deleted || entity.DeletedLocally {
		return nil, fmt.Errorf("%s %s is deleted", entityType, id)
	}
	return entity, nil
}

// ensureCollection проверяет, что коллекция существует и жива
func (s *service) ensureCollection(ctx context.Context, id string) error {
	col, err := s.entityStore.GetEntity(ctx, models.TypeCollections, id)
	if err != nil {
		return fmt.Errorf("collection %s not found: %w", id, err)
	}
	if col.Deleted || col.DeletedLocally {
		return fmt.Errorf("collection %s is deleted", id)
	}
	return nil
}

// ensureNoCycle запрещает перенос коллекции под собственного потомка
func (s *service) ensureNoCycle(ctx context.Context, id, newParentID string) error {
	seen := map[string]bool{}
	cur := newParentID
	for cur != "" && !seen[cur] {
		if cur == id {
			return fmt.Errorf("cannot move collection under its own descendant")
		}
		seen[cur] = true

		parent, err := s.entityStore.GetEntity(ctx, models.TypeCollections, cur)
		if err != nil {
			// Оборванная цепочка циклом быть не может
			break
		}
		cur = parent.ParentID
	}
	return nil
}

// uniqueSlug подбирает свободный slug внутри workspace'а
func (s *service) uniqueSlug(ctx context.Context, slug string) (string, error) {
	cols, err := s.entityStore.ListEntities(ctx, models.TypeCollections, storage.Filter{WorkspaceID: s.workspaceID})
	if err != nil {
		return "", fmt.Errorf("failed to list collections: %w", err)
	}

	taken := make(map[string]bool, len(cols))
	for _, c := range cols {
		taken[c.Slug] = true
	}

	if !taken[slug] {
		return slug, nil
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		if !taken[candidate] {
			return candidate, nil
		}
	}
}

// effectiveFlags резолвит sync-флаги с наследованием от цепочки
// родительских коллекций
func (s *service) effectiveFlags(ctx context.Context, entity *models.Entity) models.SyncFlags {
	return models.EffectiveFlags(entity, func(id string) *models.Entity {
		parent, err := s.entityStore.GetEntity(ctx, models.TypeCollections, id)
		if err != nil {
			return nil
		}
		return parent
	})
}
