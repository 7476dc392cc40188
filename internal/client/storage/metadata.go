package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing per-file metadata
// and user preferences that do not belong to any ledger table
type MetadataStorage interface {
	// Patch merges the given key/value pairs into stored metadata,
	// overwriting existing keys and keeping the rest
	Patch(ctx context.Context, values map[string]string) error

	// Get retrieves a single metadata value
	// Returns ErrMetadataNotFound if the key doesn't exist
	Get(ctx context.Context, key string) (string, error)

	// GetAll returns all stored metadata
	GetAll(ctx context.Context) (map[string]string, error)
}
