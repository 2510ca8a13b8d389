package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/criticalmaps/internal/models"
	"github.com/iudanet/criticalmaps/internal/server/storage"
)

// SaveLocation stores the latest position of a device.
// The stored row is replaced only if the new timestamp is not older.
func (s *Storage) SaveLocation(ctx context.Context, deviceID string, loc models.Location, receivedAt time.Time) error {
	if deviceID == "" {
		return storage.ErrInvalidDeviceID
	}

	query := `
		INSERT INTO locations (
			device_id, longitude, latitude, timestamp, name, color, received_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(device_id) DO UPDATE SET
			longitude = excluded.longitude,
			latitude = excluded.latitude,
			timestamp = excluded.timestamp,
			name = excluded.name,
			color = excluded.color,
			received_at = excluded.received_at
		WHERE excluded.timestamp >= locations.timestamp
	`

	_, err := s.db.ExecContext(ctx, query,
		deviceID,
		loc.Longitude,
		loc.Latitude,
		loc.Timestamp,
		loc.Name,
		loc.Color,
		receivedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}

	return nil
}

// Locations returns positions received at or after since, keyed by device id
func (s *Storage) Locations(ctx context.Context, since time.Time) (map[string]models.Location, error) {
	query := `
		SELECT device_id, longitude, latitude, timestamp, name, color
		FROM locations
		WHERE received_at >= ?
	`

	rows, err := s.db.QueryContext(ctx, query, since.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	locations := make(map[string]models.Location)
	for rows.Next() {
		var deviceID string
		var loc models.Location
		if err := rows.Scan(
			&deviceID,
			&loc.Longitude,
			&loc.Latitude,
			&loc.Timestamp,
			&loc.Name,
			&loc.Color,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations[deviceID] = loc
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return locations, nil
}

// DeleteLocationsBefore removes positions received before the given time
func (s *Storage) DeleteLocationsBefore(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM locations WHERE received_at < ?`, before.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete locations: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return deleted, nil
}
