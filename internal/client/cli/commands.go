package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду CLI
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "run":
		return c.runDaemon(ctx, args)
	case "send":
		return c.runSend(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
