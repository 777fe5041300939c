package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runBackup(ctx context.Context, args []string) error {
	path := fmt.Sprintf("pawkit-backup-%s.json", time.Now().UTC().Format("20060102-150405"))
	if len(args) > 0 {
		path = args[0]
	}

	c.io.Println("=== Backup ===")
	c.io.Println()
	c.io.Println("Exporting workspace...")

	snapshot, err := c.dataService.Export(ctx)
	if err != nil {
		return fmt.Errorf("failed to export workspace: %w", err)
	}

	id, err := c.transfer.Upload(ctx, snapshot, path)
	if err != nil {
		return fmt.Errorf("failed to upload backup: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Backup uploaded!")
	c.io.Printf("Size:      %d bytes\n", len(snapshot))
	c.io.Printf("Backup id: %s\n", id)
	c.io.Println()
	c.io.Println("Use 'pawkit restore <id>' to restore from this backup.")

	return nil
}

func (c *Cli) runRestore(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing backup id. Usage: pawkit restore <id>")
	}

	c.io.Println("=== Restore ===")
	c.io.Println()
	c.io.Println("Downloading backup...")

	snapshot, err := c.transfer.Download(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to download backup: %w", err)
	}

	result, err := c.dataService.Import(ctx, snapshot)
	if err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Restore complete!")
	c.io.Printf("Imported: %d\n", result.Imported)
	c.io.Printf("Skipped (already present): %d\n", result.Skipped)
	c.io.Println()
	c.io.Println("Run 'pawkit sync' to push restored entities to the server.")

	return nil
}
