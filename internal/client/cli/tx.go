package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/bookkeeper/internal/models"
)

func (c *Cli) runTx(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: bookkeeper tx add")
	}

	switch args[0] {
	case "add":
		return c.runTxAdd(ctx)
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: add", args[0])
	}
}

func (c *Cli) runTxAdd(ctx context.Context) error {
	c.io.Println("=== New Transaction ===")
	c.io.Println()

	accountID, err := c.io.ReadInput("Account ID: ")
	if err != nil {
		return fmt.Errorf("failed to read account id: %w", err)
	}
	if _, err := c.store.GetAccount(ctx, accountID); err != nil {
		return fmt.Errorf("account %s: %w", accountID, err)
	}

	amountStr, err := c.io.ReadInput("Amount (negative for expense, e.g. -12.50): ")
	if err != nil {
		return fmt.Errorf("failed to read amount: %w", err)
	}
	amount, err := models.ParseAmount(amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	dateStr, err := c.io.ReadInput("Date (YYYY-MM-DD, empty for today): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}
	date := time.Now().UTC()
	if dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
	}

	payeeName, err := c.io.ReadInput("Payee (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read payee: %w", err)
	}
	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	txn := &models.Transaction{
		AccountID: accountID,
		Amount:    amount,
		Date:      date,
		Notes:     notes,
	}
	if payeeName != "" {
		payee, err := c.ledgerService.GetOrCreatePayee(ctx, payeeName)
		if err != nil {
			return fmt.Errorf("failed to resolve payee: %w", err)
		}
		txn.PayeeID = payee.ID
	}

	if err := c.ledgerService.CreateTransaction(ctx, txn); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Transaction recorded!")
	c.io.Printf("ID:     %s\n", txn.ID)
	c.io.Printf("Amount: %s\n", models.FormatAmount(txn.Amount))
	c.io.Println()
	c.io.Println("Run 'bookkeeper sync' to replicate it to your other devices.")

	return nil
}
