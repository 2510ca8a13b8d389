package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/iudanet/criticalmaps/internal/client/location"
	"github.com/iudanet/criticalmaps/internal/client/sync"
	"github.com/iudanet/criticalmaps/internal/models"
	"github.com/iudanet/criticalmaps/internal/validation"
)

// runDaemon запускает периодическую синхронизацию и работает до отмены ctx
func (c *Cli) runDaemon(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(c.io)

	lat := fs.Float64("lat", math.NaN(), "Latitude to report")
	lon := fs.Float64("lon", math.NaN(), "Longitude to report")
	name := fs.String("name", "", "Rider name")
	color := fs.String("color", "", "Rider color")
	interval := fs.Duration("interval", sync.DefaultInterval, "Poll interval")
	maxAge := fs.Duration("max-age", 0, "Stop reporting stdin positions older than this (0 keeps them)")
	fromStdin := fs.Bool("stdin", false, "Read \"latitude,longitude\" lines from stdin")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validation.ValidateName(*name); err != nil {
		return fmt.Errorf("invalid --name: %w", err)
	}
	if err := validation.ValidateColor(*color); err != nil {
		return fmt.Errorf("invalid --color: %w", err)
	}

	var locations *location.Source
	hasLat, hasLon := !math.IsNaN(*lat), !math.IsNaN(*lon)

	switch {
	case *fromStdin && (hasLat || hasLon):
		return errors.New("--stdin cannot be combined with --lat/--lon")
	case *fromStdin:
		locations = location.NewSource(*maxAge).WithProfile(*name, *color)
		go func() {
			if err := locations.Feed(ctx, c.stdin); err != nil && !errors.Is(err, context.Canceled) {
				c.logger.Error("Position feed stopped", "error", err)
			}
		}()
	case hasLat != hasLon:
		return errors.New("both --lat and --lon are required")
	case hasLat:
		var err error
		locations, err = location.NewStaticSource(models.Location{
			Latitude:  *lat,
			Longitude: *lon,
			Name:      *name,
			Color:     *color,
		})
		if err != nil {
			return fmt.Errorf("invalid position: %w", err)
		}
	default:
		// Без позиции только получаем состояние
		locations = location.NewSource(0)
	}

	controller := c.newController(sync.Config{
		Interval:    *interval,
		PollOnStart: true,
	}, locations)

	if err := controller.Start(ctx); err != nil {
		return fmt.Errorf("failed to start sync: %w", err)
	}

	c.io.Printf("Syncing with %s every %s. Press Ctrl+C to stop.\n", c.serverURL, *interval)

	<-ctx.Done()
	controller.Stop()

	waitCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := c.host.Wait(waitCtx); err != nil {
		c.logger.Warn("Pending message submissions did not finish", "error", err)
	}

	c.io.Println("Stopped.")
	return nil
}
