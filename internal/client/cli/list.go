package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pawkit/pawkit/internal/models"
)

// Строки списков для шаблонов

type cardRow struct {
	Title    string
	ID       string
	URL      string
	Tags     string
	Conflict string
	Status   string
}

type collectionRow struct {
	Name   string
	ID     string
	Slug   string
	Parent string
	Status string
}

type tagRow struct {
	Name   string
	ID     string
	Color  string
	Status string
}

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entity type. Usage: pawkit list <cards|collections|tags>")
	}

	entityType, err := parseEntityType(args[0])
	if err != nil {
		return err
	}

	entities, err := c.dataService.List(ctx, entityType)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", entityType, err)
	}

	switch entityType {
	case models.TypeCards:
		return c.renderCardList(ctx, entities)
	case models.TypeCollections:
		return c.renderCollectionList(ctx, entities)
	default:
		return c.renderTagList(ctx, entities)
	}
}

func (c *Cli) renderCardList(ctx context.Context, entities []*models.Entity) error {
	rows := make([]cardRow, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, cardRow{
			Title:    displayName(e),
			ID:       e.ID,
			URL:      e.URL,
			Tags:     strings.Join(e.Tags, ", "),
			Conflict: e.ConflictWithID,
			Status:   c.entityStatus(ctx, e),
		})
	}
	return renderTemplate(c.io, cardListTemplate, rows)
}

func (c *Cli) renderCollectionList(ctx context.Context, entities []*models.Entity) error {
	rows := make([]collectionRow, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, collectionRow{
			Name:   displayName(e),
			ID:     e.ID,
			Slug:   e.Slug,
			Parent: e.ParentID,
			Status: c.entityStatus(ctx, e),
		})
	}
	return renderTemplate(c.io, collectionListTemplate, rows)
}

func (c *Cli) renderTagList(ctx context.Context, entities []*models.Entity) error {
	rows := make([]tagRow, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, tagRow{
			Name:   displayName(e),
			ID:     e.ID,
			Color:  e.Color,
			Status: c.entityStatus(ctx, e),
		})
	}
	return renderTemplate(c.io, tagListTemplate, rows)
}
