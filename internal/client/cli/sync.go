package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	httpClient "github.com/pawkit/pawkit/internal/client/api"
	"github.com/pawkit/pawkit/internal/client/auth"
	"github.com/pawkit/pawkit/internal/client/sync"
)

// defaultWatchInterval задает период проходов в режиме --watch без явного
// интервала
const defaultWatchInterval = 30 * time.Second

var syncUsage = "Usage: pawkit sync [--push-only] [--watch [interval]]"

func (c *Cli) runSync(ctx context.Context, args []string) error {
	pushOnly := false
	watch := false
	interval := defaultWatchInterval

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--push-only":
			pushOnly = true
		case "--watch":
			watch = true
			// Следующий аргумент может задавать интервал
			if i+1 < len(args) {
				if d, err := time.ParseDuration(args[i+1]); err == nil && d > 0 {
					interval = d
					i++
				}
			}
		default:
			return fmt.Errorf("unknown sync option: %s. %s", args[i], syncUsage)
		}
	}

	if !watch {
		c.io.Println("=== Synchronization ===")
		return c.syncOnce(ctx, pushOnly)
	}

	c.io.Printf("Watching for changes every %s. Press Ctrl+C to stop.\n", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := c.syncOnce(ctx, pushOnly); err != nil {
			// Ошибка одного прохода не останавливает наблюдение
			c.io.Printf("Sync failed: %v\n", err)
		}

		select {
		case <-ctx.Done():
			c.io.Println("Watch stopped.")
			return nil
		case <-ticker.C:
		}
	}
}

// syncOnce выполняет один проход синхронизации и печатает отчет
func (c *Cli) syncOnce(ctx context.Context, pushOnly bool) error {
	var (
		result *sync.SyncResult
		err    error
	)
	if pushOnly {
		result, err = c.syncer.PushNow(ctx)
	} else {
		result, err = c.syncer.FullSync(ctx)
	}

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotAuthenticated):
			return fmt.Errorf("not authenticated. Please run 'pawkit login' first")
		case errors.Is(err, httpClient.ErrUnauthorized):
			return fmt.Errorf("session rejected by server. Please run 'pawkit login' again")
		default:
			return fmt.Errorf("synchronization failed: %w", err)
		}
	}

	if result.Deferred {
		c.io.Println("Another session is already syncing this workspace. Skipped.")
		return nil
	}

	if st := c.syncer.Status(ctx); st.State == sync.StateOffline {
		c.io.Println("Server is unreachable. Local changes stay queued until it is back.")
		return nil
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed!")
	c.io.Println()
	c.io.Printf("Pushed to server:   %d\n", result.Pushed)
	c.io.Printf("Pulled from server: %d\n", result.Pulled)
	c.io.Printf("Merged locally:     %d\n", result.Merged)
	if result.Conflicts > 0 {
		c.io.Printf("Conflicts resolved: %d\n", result.Conflicts)
	}
	if result.Parked > 0 {
		c.io.Printf("Parked (failed):    %d\n", result.Parked)
		c.io.Println("Run 'pawkit retry' to requeue parked operations.")
	}
	if result.Skipped > 0 {
		c.io.Printf("Skipped by merge:   %d\n", result.Skipped)
	}
	for _, msg := range result.Errors {
		c.io.Printf("Warning: %s\n", msg)
	}

	return nil
}
