package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/bookkeeper/internal/client/reconcile"
	"github.com/iudanet/bookkeeper/internal/models"
)

// feedAccountPrefPrefix префикс настроек, связывающих счет гроссбуха
// со счетом у агрегатора: feed.account.<local-id> = <feed-id>
const feedAccountPrefPrefix = "feed.account."

// accessURLPref настройка с access URL SimpleFIN-моста
const accessURLPref = "simplefin.accessUrl"

func (c *Cli) runBankSync(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: bookkeeper bank-sync <account-id> [since YYYY-MM-DD]")
	}
	accountID := args[0]

	since := time.Now().UTC().AddDate(0, 0, -90)
	if len(args) > 1 {
		parsed, err := time.Parse("2006-01-02", args[1])
		if err != nil {
			return fmt.Errorf("invalid since date: %w", err)
		}
		since = parsed
	}

	prefs, err := c.metadata.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}
	accessURL := prefs[accessURLPref]
	if accessURL == "" {
		return fmt.Errorf("bank feed is not configured. Run 'bookkeeper prefs-set %s <url>' first", accessURLPref)
	}

	accounts := make(map[string]string)
	for key, value := range prefs {
		if strings.HasPrefix(key, feedAccountPrefPrefix) {
			accounts[strings.TrimPrefix(key, feedAccountPrefPrefix)] = value
		}
	}

	c.io.Println("=== Bank Reconciliation ===")
	c.io.Println()
	c.io.Printf("Fetching feed for account %s since %s...\n", accountID, since.Format("2006-01-02"))

	provider := c.newProvider(accessURL, accounts)
	engine := reconcile.NewEngine(c.store, c.ledgerService, provider, c.logger)

	results, err := engine.Run(ctx, accountID, since)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	var created, matched int
	for i := range results {
		r := &results[i]
		switch r.Outcome {
		case models.ReconcileCreated:
			created++
			c.io.Printf("+ %s  %s\n", r.Date.Format("2006-01-02"), models.FormatAmount(r.Amount))
		case models.ReconcileMatched:
			matched++
			c.io.Printf("= %s  %s (matched to existing entry)\n", r.Date.Format("2006-01-02"), models.FormatAmount(r.Amount))
		}
	}

	c.io.Println()
	c.io.Println("✓ Reconciliation completed!")
	c.io.Printf("Created: %d  Matched: %d\n", created, matched)
	if created+matched > 0 {
		c.io.Println()
		c.io.Println("Run 'bookkeeper sync' to replicate the imported entries.")
	}

	return nil
}
