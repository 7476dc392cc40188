package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bookkeeper/internal/client/storage"
)

// Patch merges the given key/value pairs into stored metadata,
// overwriting existing keys and keeping the rest
func (s *Storage) Patch(ctx context.Context, values map[string]string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		for key, value := range values {
			if err := bucket.Put([]byte(key), []byte(value)); err != nil {
				return fmt.Errorf("failed to save metadata key %q: %w", key, err)
			}
		}

		return nil
	})
}

// Get retrieves a single metadata value
// Returns storage.ErrMetadataNotFound if the key doesn't exist
func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrMetadataNotFound
		}

		value = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return value, nil
}

// GetAll returns all stored metadata
func (s *Storage) GetAll(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			result[string(k)] = string(v)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	return result, nil
}
