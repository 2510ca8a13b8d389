package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/criticalmaps/internal/client/location"
	"github.com/iudanet/criticalmaps/internal/client/sync"
)

// runSync один раз запрашивает состояние у сервера и печатает его
func (c *Cli) runSync(ctx context.Context) error {
	// Позиция не нужна, Refresh всегда делает GET
	controller := c.newController(sync.Config{}, location.NewSource(0))

	if err := controller.Refresh(ctx); err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println("✓ Synchronization completed successfully!")
	c.io.Println()

	return c.runStatus(ctx)
}
