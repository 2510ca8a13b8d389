package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/criticalmaps/internal/client/storage"
	"github.com/iudanet/criticalmaps/internal/models"
	"github.com/iudanet/criticalmaps/pkg/api"
)

var errNilResponse = errors.New("response is nil")

// Update merges a server response into local state in a single transaction
func (s *Storage) Update(ctx context.Context, resp *api.Response) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if resp == nil {
		return errNilResponse
	}

	now := s.now()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := mergeRiders(tx, resp.Locations); err != nil {
			return err
		}
		if err := mergeMessages(tx, resp.ChatMessages); err != nil {
			return err
		}
		if s.retention > 0 {
			cutoff := models.UnixTimestamp(now.Add(-s.retention))
			if err := pruneMessages(tx, cutoff); err != nil {
				return err
			}
		}
		return putLastUpdate(tx, now)
	})

	if err != nil {
		return fmt.Errorf("update transaction failed: %w", err)
	}

	return nil
}

// mergeRiders применяет LWW для каждого устройства из ответа.
// Устройства, которых нет в ответе, сервер больше не считает активными - удаляем их.
func mergeRiders(tx *bbolt.Tx, locations map[string]models.Location) error {
	bucket := tx.Bucket(bucketRiders)
	if bucket == nil {
		return fmt.Errorf("riders %w", storage.ErrBucketNotFound)
	}

	// Собираем ключи для удаления отдельно: нельзя менять bucket во время ForEach
	var stale [][]byte
	err := bucket.ForEach(func(k, _ []byte) error {
		if _, ok := locations[string(k)]; !ok {
			stale = append(stale, append([]byte(nil), k...))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan riders: %w", err)
	}
	for _, k := range stale {
		if err := bucket.Delete(k); err != nil {
			return fmt.Errorf("failed to delete rider: %w", err)
		}
	}

	for deviceID, location := range locations {
		incoming := &models.Rider{DeviceID: deviceID, Location: location}

		if data := bucket.Get([]byte(deviceID)); data != nil {
			var existing models.Rider
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal rider: %w", err)
			}
			// Существующая позиция свежее - не перезаписываем
			if !incoming.IsNewerThan(&existing) {
				continue
			}
		}

		data, err := json.Marshal(incoming)
		if err != nil {
			return fmt.Errorf("failed to marshal rider: %w", err)
		}
		if err := bucket.Put([]byte(deviceID), data); err != nil {
			return fmt.Errorf("failed to save rider: %w", err)
		}
	}

	return nil
}

// mergeMessages сохраняет сообщения по identifier, существующие перезаписываются
func mergeMessages(tx *bbolt.Tx, messages map[string]models.ChatMessage) error {
	bucket := tx.Bucket(bucketMessages)
	if bucket == nil {
		return fmt.Errorf("messages %w", storage.ErrBucketNotFound)
	}

	for id, msg := range messages {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal chat message: %w", err)
		}
		if err := bucket.Put([]byte(id), data); err != nil {
			return fmt.Errorf("failed to save chat message: %w", err)
		}
	}

	return nil
}

// pruneMessages удаляет сообщения старше cutoff
func pruneMessages(tx *bbolt.Tx, cutoff float64) error {
	bucket := tx.Bucket(bucketMessages)
	if bucket == nil {
		return fmt.Errorf("messages %w", storage.ErrBucketNotFound)
	}

	var expired [][]byte
	err := bucket.ForEach(func(k, v []byte) error {
		var msg models.ChatMessage
		if err := json.Unmarshal(v, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal chat message: %w", err)
		}
		if msg.Timestamp < cutoff {
			expired = append(expired, append([]byte(nil), k...))
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, k := range expired {
		if err := bucket.Delete(k); err != nil {
			return fmt.Errorf("failed to delete chat message: %w", err)
		}
	}
	return nil
}

// Riders returns all known riders ordered by device id
func (s *Storage) Riders(ctx context.Context) ([]models.Rider, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var riders []models.Rider

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRiders)
		if bucket == nil {
			return fmt.Errorf("riders %w", storage.ErrBucketNotFound)
		}

		// bbolt хранит ключи отсортированными, порядок по device id получаем бесплатно
		return bucket.ForEach(func(k, v []byte) error {
			var rider models.Rider
			if err := json.Unmarshal(v, &rider); err != nil {
				return fmt.Errorf("failed to unmarshal rider: %w", err)
			}
			riders = append(riders, rider)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get riders: %w", err)
	}

	return riders, nil
}

// ChatMessages returns stored chat messages ordered by timestamp
func (s *Storage) ChatMessages(ctx context.Context) ([]models.StoredMessage, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var messages []models.StoredMessage

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMessages)
		if bucket == nil {
			return fmt.Errorf("messages %w", storage.ErrBucketNotFound)
		}

		return bucket.ForEach(func(k, v []byte) error {
			msg := models.StoredMessage{ID: string(k)}
			if err := json.Unmarshal(v, &msg.ChatMessage); err != nil {
				return fmt.Errorf("failed to unmarshal chat message: %w", err)
			}
			messages = append(messages, msg)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].Timestamp == messages[j].Timestamp {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].Timestamp < messages[j].Timestamp
	})

	return messages, nil
}
