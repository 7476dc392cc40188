package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bookkeeper/internal/client/storage"
)

var sessionKey = []byte("current")

// SaveSession stores session data, replacing any previous session
func (s *Storage) SaveSession(ctx context.Context, session *storage.SessionData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session data: %w", err)
		}

		// Сохраняем в bucket
		if err := bucket.Put(sessionKey, data); err != nil {
			return fmt.Errorf("failed to save session data: %w", err)
		}

		return nil
	})
}

// GetSession retrieves stored session data
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	var session *storage.SessionData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Получаем данные
		data := bucket.Get(sessionKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		// Десериализуем
		session = &storage.SessionData{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session data: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes stored session data (logout)
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get(sessionKey) == nil {
			return storage.ErrSessionNotFound
		}

		if err := bucket.Delete(sessionKey); err != nil {
			return fmt.Errorf("failed to delete session data: %w", err)
		}

		return nil
	})
}
