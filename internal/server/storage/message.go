package storage

import (
	"context"
	"time"

	"github.com/iudanet/criticalmaps/internal/models"
)

//go:generate moq -out message_mock.go . MessageStorage

// MessageStorage defines interface for chat message persistence
type MessageStorage interface {
	// SaveMessages stores chat messages sent by a device.
	// Messages whose identifier is already known are ignored, so a client
	// may safely retry a batch.
	SaveMessages(ctx context.Context, deviceID string, messages []models.SendChatMessage, receivedAt time.Time) error

	// ChatMessages returns messages received at or after since, keyed by identifier
	ChatMessages(ctx context.Context, since time.Time) (map[string]models.ChatMessage, error)

	// DeleteMessagesBefore removes messages received before the given time
	// Returns number of deleted rows
	DeleteMessagesBefore(ctx context.Context, before time.Time) (int64, error)
}
