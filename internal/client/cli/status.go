package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/client/sync"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Replication Status ===")
	c.io.Println()

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Status: Not logged in")
			c.io.Println()
			c.io.Println("Run 'bookkeeper login' to connect to the relay server.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	remaining := time.Until(expiresAt)

	c.io.Println("Status: Logged in")
	c.io.Printf("Ledger file: %s\n", session.FileID)
	if session.GroupID == "" {
		c.io.Println("⚠️  File is not bound to a sync group yet; local edits stay buffered.")
	}
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	c.io.Println()
	if session.KeyID != "" {
		c.io.Printf("Encryption: enabled (key %s)\n", session.KeyID)
	} else {
		c.io.Println("Encryption: disabled")
	}

	state := c.syncService.State()
	c.io.Printf("Session state: %s\n", state)
	if state == sync.StateError {
		c.io.Println("⚠️  Last sync failed; the session is locked until the next run resets it.")
	}

	pending := c.syncService.Pending()
	c.io.Println()
	if pending > 0 {
		c.io.Printf("⚠️  Pending sync: %d local change(s) waiting to be sent\n", pending)
		c.io.Println("Run 'bookkeeper sync' to synchronize with the relay.")
	} else {
		c.io.Println("✓ All local changes synchronized")
	}

	return nil
}
