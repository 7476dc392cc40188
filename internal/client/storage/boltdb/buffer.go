package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bookkeeper/internal/client/storage"
)

var bufferKey = []byte("pending")

// SaveBuffer stores the pending change buffer, replacing any previous state.
// An empty list clears the persisted buffer.
func (s *Storage) SaveBuffer(ctx context.Context, changes []storage.BufferedChange) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBuffer)
		if bucket == nil {
			return fmt.Errorf("buffer bucket not found")
		}

		if len(changes) == 0 {
			if err := bucket.Delete(bufferKey); err != nil {
				return fmt.Errorf("failed to clear buffer: %w", err)
			}
			return nil
		}

		// Сериализуем список в JSON, порядок записей сохраняется
		data, err := json.Marshal(changes)
		if err != nil {
			return fmt.Errorf("failed to marshal buffer: %w", err)
		}

		if err := bucket.Put(bufferKey, data); err != nil {
			return fmt.Errorf("failed to save buffer: %w", err)
		}

		return nil
	})
}

// GetBuffer retrieves the persisted change buffer in recorded order.
// Returns an empty list when nothing is pending.
func (s *Storage) GetBuffer(ctx context.Context) ([]storage.BufferedChange, error) {
	var changes []storage.BufferedChange

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBuffer)
		if bucket == nil {
			return fmt.Errorf("buffer bucket not found")
		}

		data := bucket.Get(bufferKey)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &changes); err != nil {
			return fmt.Errorf("failed to unmarshal buffer: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return changes, nil
}
