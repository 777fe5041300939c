package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	// Проверяем наличие ID
	if len(args) == 0 {
		return fmt.Errorf("missing entity id. Usage: pawkit delete <id>")
	}

	entity, err := c.findEntity(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Println("=== Delete ===")
	c.io.Println()
	c.io.Println("About to delete:")
	c.io.Printf("  Type: %s\n", entity.Type)
	c.io.Printf("  Name: %s\n", displayName(entity))
	c.io.Printf("  ID:   %s\n", entity.ID)

	if entity.ConflictWithID != "" {
		c.io.Println()
		c.io.Printf("This entity is half of a conflict pair with %s.\n", entity.ConflictWithID)
		c.io.Println("Deleting it resolves the conflict in favor of the other copy.")
	}
	c.io.Println()

	// Запрашиваем подтверждение
	confirm, err := c.io.ReadInput("Are you sure? (yes/no): ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if confirm != "yes" && confirm != "y" {
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.dataService.Delete(ctx, entity.Type, entity.ID); err != nil {
		return fmt.Errorf("failed to delete %s: %w", entity.Type, err)
	}

	c.io.Println()
	c.io.Println("✓ Deleted!")
	c.io.Println("The entity is marked deleted locally. Run 'pawkit sync' to propagate.")

	return nil
}
