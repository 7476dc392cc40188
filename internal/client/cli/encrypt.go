package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/validation"
)

func (c *Cli) runEncrypt(ctx context.Context) error {
	c.io.Println("=== Enable Encryption ===")
	c.io.Println()

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("not logged in. Please run 'bookkeeper login' first")
		}
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session.KeyID != "" {
		return fmt.Errorf("encryption is already enabled (key %s)", session.KeyID)
	}
	c.apiClient.SetToken(session.Token)

	c.io.Println("After this step every change set leaves the device encrypted.")
	c.io.Println("The password is never sent to the server. Losing it means losing the data.")
	c.io.Println()

	password, err := c.io.ReadPassword("New encryption password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Repeat password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := c.syncService.SetupEncryption(ctx, password); err != nil {
		return fmt.Errorf("failed to enable encryption: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Encryption enabled!")
	c.io.Println("Run 'bookkeeper sync' to push your data with the new key.")

	return nil
}
