package cli

import (
	"context"
	"fmt"
)

// runLogout завершает сессию устройства: доталкивает очередь, объявляет
// выход другим сессиям и очищает локальное состояние
func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	pending, err := c.queue.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending operations: %w", err)
	}

	if pending > 0 {
		c.io.Printf("Pushing %d pending change(s) before logout...\n", pending)
		if _, err := c.syncer.PushNow(ctx); err != nil {
			c.io.Printf("Warning: failed to push pending changes: %v\n", err)
		}

		remaining, err := c.queue.PendingCount(ctx)
		if err != nil {
			return fmt.Errorf("failed to check pending operations: %w", err)
		}
		if remaining > 0 {
			c.io.Printf("⚠️  %d change(s) could not be pushed and will be discarded.\n", remaining)
			confirm, err := c.io.ReadInput("Continue with logout? (yes/no): ")
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if confirm != "yes" && confirm != "y" {
				c.io.Println("Logout cancelled.")
				return nil
			}
		}
	}

	// Другие сессии устройства должны узнать о выходе до очистки состояния
	c.peers.AnnounceLogout(ctx)

	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	if err := c.purger.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear local state: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Local session and synchronized data have been removed.")

	return nil
}
