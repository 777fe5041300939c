package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pawkit/pawkit/internal/client/storage"
	"github.com/pawkit/pawkit/internal/models"
)

// Детальные представления для шаблонов

type cardDetails struct {
	Title       string
	ID          string
	URL         string
	Description string
	Collection  string
	Tags        string
	Created     string
	Modified    string
	Conflict    string
	Status      string
	Version     int64
	LocalOnly   bool
}

type collectionDetails struct {
	Name      string
	ID        string
	Slug      string
	Parent    string
	Created   string
	Modified  string
	Status    string
	LocalOnly bool
}

type tagDetails struct {
	Name     string
	ID       string
	Color    string
	Created  string
	Modified string
	Status   string
}

func (c *Cli) runGet(ctx context.Context, args []string) error {
	// Проверяем наличие ID
	if len(args) == 0 {
		return fmt.Errorf("missing entity id. Usage: pawkit get <id>")
	}

	entity, err := c.findEntity(ctx, args[0])
	if err != nil {
		return err
	}

	switch entity.Type {
	case models.TypeCards:
		return c.renderCardDetails(ctx, entity)
	case models.TypeCollections:
		return c.renderCollectionDetails(ctx, entity)
	default:
		return c.renderTagDetails(ctx, entity)
	}
}

// findEntity ищет живую сущность по id среди всех типов
func (c *Cli) findEntity(ctx context.Context, id string) (*models.Entity, error) {
	for _, entityType := range models.PullOrder() {
		entity, err := c.dataService.Get(ctx, entityType, id)
		if err == nil {
			return entity, nil
		}
		if errors.Is(err, storage.ErrEntityNotFound) {
			continue
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return nil, fmt.Errorf("entity not found with ID: %s", id)
}

func (c *Cli) renderCardDetails(ctx context.Context, e *models.Entity) error {
	details := cardDetails{
		Title:       displayName(e),
		ID:          e.ID,
		URL:         e.URL,
		Description: e.Description,
		Collection:  c.collectionLabel(ctx, e.ParentID),
		Tags:        strings.Join(e.Tags, ", "),
		Created:     formatMillis(e.CreatedAt),
		Modified:    formatMillis(e.LastModified),
		Conflict:    e.ConflictWithID,
		Status:      c.entityStatus(ctx, e),
		Version:     e.Version,
		LocalOnly:   c.effectiveFlags(ctx, e).Has(models.FlagNeverSync),
	}
	return renderTemplate(c.io, cardDetailsTemplate, details)
}

func (c *Cli) renderCollectionDetails(ctx context.Context, e *models.Entity) error {
	details := collectionDetails{
		Name:      displayName(e),
		ID:        e.ID,
		Slug:      e.Slug,
		Parent:    c.collectionLabel(ctx, e.ParentID),
		Created:   formatMillis(e.CreatedAt),
		Modified:  formatMillis(e.LastModified),
		Status:    c.entityStatus(ctx, e),
		LocalOnly: c.effectiveFlags(ctx, e).Has(models.FlagNeverSync),
	}
	return renderTemplate(c.io, collectionDetailsTemplate, details)
}

func (c *Cli) renderTagDetails(ctx context.Context, e *models.Entity) error {
	details := tagDetails{
		Name:     displayName(e),
		ID:       e.ID,
		Color:    e.Color,
		Created:  formatMillis(e.CreatedAt),
		Modified: formatMillis(e.LastModified),
		Status:   c.entityStatus(ctx, e),
	}
	return renderTemplate(c.io, tagDetailsTemplate, details)
}

// collectionLabel возвращает подпись коллекции вида "Имя (id)".
// Нерезолвящийся id выводится как есть.
func (c *Cli) collectionLabel(ctx context.Context, id string) string {
	if id == "" {
		return ""
	}
	col, err := c.dataService.Get(ctx, models.TypeCollections, id)
	if err != nil {
		return id
	}
	return fmt.Sprintf("%s (%s)", col.Name, col.ID)
}

// effectiveFlags вычисляет sync-флаги с учетом наследования от коллекций
func (c *Cli) effectiveFlags(ctx context.Context, e *models.Entity) models.SyncFlags {
	return models.EffectiveFlags(e, func(id string) *models.Entity {
		parent, err := c.dataService.Get(ctx, models.TypeCollections, id)
		if err != nil {
			return nil
		}
		return parent
	})
}
