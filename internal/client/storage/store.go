package storage

import (
	"context"
	"time"

	"github.com/iudanet/criticalmaps/internal/models"
	"github.com/iudanet/criticalmaps/pkg/api"
)

//go:generate moq -out store_mock.go . Store

// Store defines the local state merged from server responses
type Store interface {
	// Update merges a decoded server response into local state.
	// Riders use Last-Write-Wins per device; riders missing from the
	// response are dropped. Chat messages are merged by identifier.
	Update(ctx context.Context, resp *api.Response) error

	// Riders returns the known riders ordered by device id
	Riders(ctx context.Context) ([]models.Rider, error)

	// ChatMessages returns stored chat messages ordered by timestamp
	ChatMessages(ctx context.Context) ([]models.StoredMessage, error)

	// LastUpdate returns the time of the last successful Update.
	// Returns zero time if no update has been merged yet
	LastUpdate(ctx context.Context) (time.Time, error)
}
