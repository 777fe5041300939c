package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pawkit/pawkit/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Pawkit Status ===")
	c.io.Println()

	// Сессия устройства
	session, err := c.authService.Current(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Account: not authenticated")
		c.io.Println("Run 'pawkit login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to check authentication: %w", err)
	default:
		c.io.Println("Account: authenticated")
		c.io.Printf("Username: %s\n", session.Username)

		expiresAt := time.Unix(session.ExpiresAt, 0)
		if time.Now().After(expiresAt) {
			c.io.Println("Access token: expired, will refresh on next sync")
		} else {
			c.io.Printf("Access token expires: %s\n", expiresAt.UTC().Format(time.RFC3339))
		}
	}

	c.io.Println()

	// Состояние движка синхронизации
	st := c.syncer.Status(ctx)
	c.io.Printf("Sync state: %s\n", st.State)
	if st.LastSyncAt > 0 {
		c.io.Printf("Last sync: %s\n", formatMillis(st.LastSyncAt))
	} else {
		c.io.Println("Last sync: never")
	}
	c.io.Printf("Pending operations: %d\n", st.PendingCount)
	if len(st.ActiveIDs) > 0 {
		c.io.Printf("Syncing now: %s\n", strings.Join(st.ActiveIDs, ", "))
	}
	if st.LastError != "" {
		c.io.Printf("Last error: %s\n", st.LastError)
	}
	if st.NeedsReauth {
		c.io.Println("⚠️  Session rejected by server. Run 'pawkit login' again.")
	}

	failed, err := c.queue.FailedCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count parked operations: %w", err)
	}
	switch {
	case failed > 0:
		c.io.Printf("⚠️  Parked operations: %d. Run 'pawkit retry' to requeue them.\n", failed)
	case st.PendingCount == 0 && !st.NeedsReauth:
		c.io.Println("✓ All local changes are synchronized")
	}

	return nil
}
