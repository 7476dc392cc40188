package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("not logged in. Please run 'bookkeeper login' first")
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	// Проверяем что токен не истек
	expiresAt := time.Unix(session.ExpiresAt, 0)
	if time.Now().After(expiresAt) {
		return fmt.Errorf("access token has expired. Please login again")
	}
	c.apiClient.SetToken(session.Token)

	// Прошлый неудачный запуск оставляет сессию в состоянии ошибки
	if c.syncService.State() == sync.StateError {
		c.syncService.Reset()
	}

	// Зашифрованному файлу нужен мастер-ключ до первого обмена
	if session.KeyID != "" {
		password, err := c.getEncryptionPassword()
		if err != nil {
			return err
		}
		if err := c.syncService.UnlockEncryption(ctx, password); err != nil {
			return fmt.Errorf("failed to unlock encryption: %w", err)
		}
	}

	c.io.Println()
	c.io.Println("Starting synchronization with relay server...")

	result, err := c.syncService.Sync(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed successfully!")
	c.io.Println()
	c.io.Printf("Pushed to server:   %d changes\n", result.Pushed)
	c.io.Printf("Pulled from server: %d changes\n", result.Pulled)
	c.io.Printf("Applied locally:    %d changes\n", result.Applied)
	if result.ServerTimestamp != "" {
		c.io.Printf("Server timestamp:   %s\n", result.ServerTimestamp)
	}

	c.io.Println()
	c.io.Println("Your ledger is now synchronized with the relay.")

	return nil
}
