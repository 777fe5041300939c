package cli

import (
	"context"
	"fmt"
)

// runRetry возвращает запаркованные операции в очередь
func (c *Cli) runRetry(ctx context.Context) error {
	requeued, err := c.queue.RetryFailed(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue operations: %w", err)
	}

	if requeued == 0 {
		c.io.Println("No failed operations to retry.")
		return nil
	}

	c.io.Printf("✓ Requeued %d operation(s).\n", requeued)
	c.io.Println("Run 'pawkit sync' to push them now.")

	return nil
}
