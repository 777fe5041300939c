package cli

import (
	"context"
	"fmt"

	"github.com/pawkit/pawkit/internal/client/data"
)

var addUsage = "Usage: pawkit add <card|collection|tag> [--sync]"

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	// Проверяем подкоманду
	if len(args) == 0 {
		return fmt.Errorf("missing entity type. %s", addUsage)
	}

	// Парсим флаг --sync
	syncAfter := false
	for _, arg := range args[1:] {
		if arg == "--sync" {
			syncAfter = true
			break
		}
	}

	var err error
	switch args[0] {
	case "card":
		err = c.runAddCard(ctx)
	case "collection":
		err = c.runAddCollection(ctx)
	case "tag":
		err = c.runAddTag(ctx)
	default:
		return fmt.Errorf("unknown entity type: %s. %s", args[0], addUsage)
	}
	if err != nil {
		return err
	}

	if syncAfter {
		c.io.Println("Syncing with server...")
		return c.syncOnce(ctx, false)
	}

	c.io.Println("Run 'pawkit sync' to push it to the server.")
	return nil
}

func (c *Cli) runAddCard(ctx context.Context) error {
	c.io.Println("=== Add Card ===")
	c.io.Println()

	url, err := c.io.ReadInput("URL: ")
	if err != nil {
		return fmt.Errorf("failed to read URL: %w", err)
	}
	if url == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	title, err := c.io.ReadInput("Title (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	collectionID, err := c.io.ReadInput("Collection ID (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read collection: %w", err)
	}

	tags, err := c.io.ReadInput("Tags (comma separated, optional): ")
	if err != nil {
		return fmt.Errorf("failed to read tags: %w", err)
	}

	card, err := c.dataService.AddCard(ctx, data.CardDraft{
		URL:          url,
		Title:        title,
		Description:  description,
		CollectionID: collectionID,
		Tags:         parseTags(tags),
	})
	if err != nil {
		return fmt.Errorf("failed to add card: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Card added!")
	c.io.Printf("ID: %s\n", card.ID)
	c.io.Println()

	return nil
}

func (c *Cli) runAddCollection(ctx context.Context) error {
	c.io.Println("=== Add Collection ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	slug, err := c.io.ReadInput("Slug (optional, derived from name): ")
	if err != nil {
		return fmt.Errorf("failed to read slug: %w", err)
	}

	parentID, err := c.io.ReadInput("Parent collection ID (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read parent: %w", err)
	}

	col, err := c.dataService.AddCollection(ctx, data.CollectionDraft{
		Name:     name,
		Slug:     slug,
		ParentID: parentID,
	})
	if err != nil {
		return fmt.Errorf("failed to add collection: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Collection added!")
	c.io.Printf("ID:   %s\n", col.ID)
	c.io.Printf("Slug: %s\n", col.Slug)
	c.io.Println()

	return nil
}

func (c *Cli) runAddTag(ctx context.Context) error {
	c.io.Println("=== Add Tag ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	color, err := c.io.ReadInput("Color (optional, e.g. #ff8800): ")
	if err != nil {
		return fmt.Errorf("failed to read color: %w", err)
	}

	tag, err := c.dataService.AddTag(ctx, data.TagDraft{
		Name:  name,
		Color: color,
	})
	if err != nil {
		return fmt.Errorf("failed to add tag: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Tag added!")
	c.io.Printf("ID: %s\n", tag.ID)
	c.io.Println()

	return nil
}
