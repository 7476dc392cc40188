package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketSession  = []byte("session")
	bucketClock    = []byte("clock")
	bucketMetadata = []byte("metadata")
	bucketBuffer   = []byte("buffer")
)

// Storage represents BoltDB storage implementation for client state:
// relay session, hybrid clock state and file metadata.
// Ledger tables live in the SQLite store, not here.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		// Создаем bucket для данных сессии
		if _, err := tx.CreateBucketIfNotExists(bucketSession); err != nil {
			return fmt.Errorf("failed to create session bucket: %w", err)
		}

		// Создаем bucket для состояния часов
		if _, err := tx.CreateBucketIfNotExists(bucketClock); err != nil {
			return fmt.Errorf("failed to create clock bucket: %w", err)
		}

		// Создаем bucket для метаданных файла
		if _, err := tx.CreateBucketIfNotExists(bucketMetadata); err != nil {
			return fmt.Errorf("failed to create metadata bucket: %w", err)
		}

		// Создаем bucket для буфера несинхронизированных правок
		if _, err := tx.CreateBucketIfNotExists(bucketBuffer); err != nil {
			return fmt.Errorf("failed to create buffer bucket: %w", err)
		}

		return nil
	})
}
