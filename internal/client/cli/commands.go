package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. args содержит аргументы после имени команды.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx, args)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "retry":
		return c.runRetry(ctx)
	case "backup":
		return c.runBackup(ctx, args)
	case "restore":
		return c.runRestore(ctx, args)
	case "help", "":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
