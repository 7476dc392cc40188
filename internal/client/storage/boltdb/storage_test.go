package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/internal/client/storage"
)

// создаём тестовое BoltDB хранилище во временной директории
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "client_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		// Закрываем БД
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestStorage_SaveGetDeleteSession(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	session := &storage.SessionData{
		UserID:    "user-id-123",
		Token:     "opaque-relay-token",
		FileID:    "file-1",
		GroupID:   "group-1",
		KeyID:     "key-1",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}

	// Проверяем что GetSession до сохранения выдаст ErrSessionNotFound
	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Сохраняем сессию
	err = store.SaveSession(ctx, session)
	require.NoError(t, err)

	// Получаем сессию и сравниваем
	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.Token, got.Token)
	assert.Equal(t, session.FileID, got.FileID)
	assert.Equal(t, session.GroupID, got.GroupID)
	assert.Equal(t, session.KeyID, got.KeyID)
	assert.Equal(t, session.ExpiresAt, got.ExpiresAt)

	// Удаляем сессию (logout)
	err = store.DeleteSession(ctx)
	require.NoError(t, err)

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление выдаст ErrSessionNotFound
	err = store.DeleteSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_SaveSession_Overwrite(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.SaveSession(ctx, &storage.SessionData{UserID: "first", Token: "t1"})
	require.NoError(t, err)

	// Новая сессия полностью заменяет предыдущую
	err = store.SaveSession(ctx, &storage.SessionData{UserID: "second", Token: "t2"})
	require.NoError(t, err)

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.UserID)
	assert.Equal(t, "t2", got.Token)
}

func TestStorage_SaveGetClock(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Свежая реплика - состояние часов отсутствует
	_, err := store.GetClock(ctx)
	assert.ErrorIs(t, err, storage.ErrClockNotFound)

	state := &storage.ClockState{
		ClientID: "89c0cf84e65d4c4b",
		Last:     "1696156800000-0003-89c0cf84e65d4c4b",
	}

	err = store.SaveClock(ctx, state)
	require.NoError(t, err)

	got, err := store.GetClock(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.ClientID, got.ClientID)
	assert.Equal(t, state.Last, got.Last)

	// Сохраняем обновлённое состояние
	state.Last = "1696156800001-0000-89c0cf84e65d4c4b"
	err = store.SaveClock(ctx, state)
	require.NoError(t, err)

	got, err = store.GetClock(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.Last, got.Last)
}

func TestStorage_Metadata(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Несуществующий ключ
	_, err := store.Get(ctx, "budgetName")
	assert.ErrorIs(t, err, storage.ErrMetadataNotFound)

	err = store.Patch(ctx, map[string]string{
		"budgetName": "My Finances",
		"groupId":    "group-1",
	})
	require.NoError(t, err)

	value, err := store.Get(ctx, "budgetName")
	require.NoError(t, err)
	assert.Equal(t, "My Finances", value)

	// Patch обновляет существующий ключ и не трогает остальные
	err = store.Patch(ctx, map[string]string{"budgetName": "Renamed"})
	require.NoError(t, err)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"budgetName": "Renamed",
		"groupId":    "group-1",
	}, all)
}
