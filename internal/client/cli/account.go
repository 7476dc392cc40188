package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/bookkeeper/internal/validation"
)

func (c *Cli) runAccount(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: bookkeeper account <add|list>")
	}

	switch args[0] {
	case "add":
		return c.runAccountAdd(ctx, args[1:])
	case "list":
		return c.runAccountList(ctx)
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: add or list", args[0])
	}
}

func (c *Cli) runAccountAdd(ctx context.Context, args []string) error {
	c.io.Println("=== New Account ===")
	c.io.Println()

	var name string
	var err error
	if len(args) > 0 {
		name = args[0]
	} else {
		name, err = c.io.ReadInput("Account name: ")
		if err != nil {
			return fmt.Errorf("failed to read account name: %w", err)
		}
	}
	if err := validation.ValidateAccountName(name); err != nil {
		return err
	}

	offBudget := false
	answer, err := c.io.ReadInput("Off budget? [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if answer == "y" || answer == "Y" || answer == "yes" {
		offBudget = true
	}

	account, err := c.ledgerService.CreateAccount(ctx, name, offBudget)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Account created!")
	c.io.Printf("ID:   %s\n", account.ID)
	c.io.Printf("Name: %s\n", account.Name)
	c.io.Println()
	c.io.Println("Run 'bookkeeper sync' to replicate it to your other devices.")

	return nil
}

func (c *Cli) runAccountList(ctx context.Context) error {
	c.io.Println("=== Accounts ===")
	c.io.Println()

	accounts, err := c.store.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	if len(accounts) == 0 {
		c.io.Println("No accounts yet. Run 'bookkeeper account add' to create one.")
		return nil
	}

	for _, a := range accounts {
		flags := ""
		if a.OffBudget {
			flags += " [off budget]"
		}
		if a.Closed {
			flags += " [closed]"
		}
		c.io.Printf("%s  %s%s\n", a.ID, a.Name, flags)
	}
	c.io.Println()
	c.io.Printf("Total: %d account(s)\n", len(accounts))

	return nil
}
