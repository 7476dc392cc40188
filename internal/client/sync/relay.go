package sync

import (
	"context"

	"github.com/iudanet/bookkeeper/pkg/api"
)

//go:generate moq -out relay_mock.go . RelayAPI

// RelayAPI определяет интерфейс relay-сервера, используемый синхронизацией.
// Реализуется HTTP клиентом из internal/client/api.
type RelayAPI interface {
	// Sync отправляет локальные конверты и получает чужие изменения
	Sync(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error)

	// CreateKey регистрирует новый ключ шифрования файла
	CreateKey(ctx context.Context, req api.CreateKeyRequest) error

	// GetKey получает описание ключа шифрования файла
	GetKey(ctx context.Context, fileID string) (*api.KeyInfo, error)
}
