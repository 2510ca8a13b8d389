package storage

import (
	"context"
	"time"

	"github.com/iudanet/criticalmaps/internal/models"
)

//go:generate moq -out location_mock.go . LocationStorage

// LocationStorage defines interface for rider position persistence
type LocationStorage interface {
	// SaveLocation stores the latest position of a device.
	// A position older than the stored one is ignored (Last-Write-Wins by timestamp)
	SaveLocation(ctx context.Context, deviceID string, loc models.Location, receivedAt time.Time) error

	// Locations returns the positions of devices reported at or after since,
	// keyed by device id
	Locations(ctx context.Context, since time.Time) (map[string]models.Location, error)

	// DeleteLocationsBefore removes positions received before the given time
	// Returns number of deleted rows
	DeleteLocationsBefore(ctx context.Context, before time.Time) (int64, error)
}
