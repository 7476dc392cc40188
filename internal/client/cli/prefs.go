package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/bookkeeper/internal/validation"
)

func (c *Cli) runPrefsSet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: bookkeeper prefs-set <key> <value>")
	}
	key, value := args[0], args[1]

	if err := validation.ValidatePrefKey(key); err != nil {
		return err
	}

	if err := c.ledgerService.SetPreference(ctx, key, value); err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}

	c.io.Printf("✓ %s = %s\n", key, value)
	c.io.Println("The preference will replicate to your other devices on the next sync.")

	return nil
}
