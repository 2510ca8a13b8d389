package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/criticalmaps/internal/models"
	"github.com/iudanet/criticalmaps/internal/server/storage"
)

// SaveMessages stores a batch of chat messages in one transaction.
// Identifiers already stored by the same device are left untouched, so a
// batch can be retried. An identifier owned by another device rejects the
// whole batch with storage.ErrInvalidMessage.
func (s *Storage) SaveMessages(ctx context.Context, deviceID string, messages []models.SendChatMessage, receivedAt time.Time) error {
	if deviceID == "" {
		return storage.ErrInvalidDeviceID
	}
	for _, msg := range messages {
		if msg.Identifier == "" || msg.Text == "" {
			return storage.ErrInvalidMessage
		}
	}
	if len(messages) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chat_messages (id, device_id, message, timestamp, received_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, msg := range messages {
		result, err := stmt.ExecContext(ctx,
			msg.Identifier,
			deviceID,
			msg.Text,
			msg.Timestamp,
			receivedAt.UnixMilli(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert message %s: %w", msg.Identifier, err)
		}

		inserted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if inserted > 0 {
			continue
		}

		// Идентификатор уже есть: повтор своей отправки или чужое сообщение
		var owner string
		if err := tx.QueryRowContext(ctx,
			`SELECT device_id FROM chat_messages WHERE id = ?`, msg.Identifier,
		).Scan(&owner); err != nil {
			return fmt.Errorf("failed to check message %s owner: %w", msg.Identifier, err)
		}
		if owner != deviceID {
			return fmt.Errorf("%w: identifier %s is already used by another device", storage.ErrInvalidMessage, msg.Identifier)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ChatMessages returns messages received at or after since, keyed by identifier
func (s *Storage) ChatMessages(ctx context.Context, since time.Time) (map[string]models.ChatMessage, error) {
	query := `
		SELECT id, message, timestamp
		FROM chat_messages
		WHERE received_at >= ?
	`

	rows, err := s.db.QueryContext(ctx, query, since.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	messages := make(map[string]models.ChatMessage)
	for rows.Next() {
		var id string
		var msg models.ChatMessage
		if err := rows.Scan(&id, &msg.Message, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages[id] = msg
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chat messages: %w", err)
	}

	return messages, nil
}

// DeleteMessagesBefore removes messages received before the given time
func (s *Storage) DeleteMessagesBefore(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE received_at < ?`, before.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete chat messages: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return deleted, nil
}
