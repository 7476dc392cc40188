package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bookkeeper/internal/client/storage"
)

var clockKey = []byte("state")

// SaveClock stores clock state, replacing any previous state
func (s *Storage) SaveClock(ctx context.Context, state *storage.ClockState) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClock)
		if bucket == nil {
			return fmt.Errorf("clock bucket not found")
		}

		// Сериализуем состояние в JSON
		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to marshal clock state: %w", err)
		}

		if err := bucket.Put(clockKey, data); err != nil {
			return fmt.Errorf("failed to save clock state: %w", err)
		}

		return nil
	})
}

// GetClock retrieves persisted clock state
// Returns storage.ErrClockNotFound on a fresh replica
func (s *Storage) GetClock(ctx context.Context) (*storage.ClockState, error) {
	var state *storage.ClockState

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketClock)
		if bucket == nil {
			return fmt.Errorf("clock bucket not found")
		}

		data := bucket.Get(clockKey)
		if data == nil {
			return storage.ErrClockNotFound
		}

		// Десериализуем
		state = &storage.ClockState{}
		if err := json.Unmarshal(data, state); err != nil {
			return fmt.Errorf("failed to unmarshal clock state: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return state, nil
}
