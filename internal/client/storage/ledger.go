package storage

import (
	"context"
	"time"

	"github.com/iudanet/bookkeeper/internal/models"
)

//go:generate moq -out ledger_mock.go . LedgerStore

// LedgerStore defines interface for the local ledger replica.
// It works with field-level updates: a row is created implicitly on the
// first update that references it, and absent columns keep their values.
// Conflict resolution happens above this layer; the store only persists.
type LedgerStore interface {
	// HasDataset reports whether this replica has a table for the dataset
	HasDataset(dataset string) bool

	// ResolveColumn maps a wire column name to a local column name.
	// Returns false if the dataset has no such column.
	ResolveColumn(dataset, column string) (string, bool)

	// Update creates the row if it does not exist and sets the given
	// columns. Column names must already be resolved via ResolveColumn.
	// Returns ErrUnknownDataset / ErrUnknownColumn for unmapped names.
	Update(ctx context.Context, dataset, row string, attrs map[string]models.Value) error

	// GetAccount retrieves an account by ID
	// Returns ErrAccountNotFound if account doesn't exist
	GetAccount(ctx context.Context, id string) (*models.Account, error)

	// ListAccounts returns all accounts that are not soft-deleted
	ListAccounts(ctx context.Context) ([]*models.Account, error)

	// GetTransaction retrieves a transaction by ID
	// Returns ErrTransactionNotFound if transaction doesn't exist
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// GetTransactionByImportedID retrieves a transaction on the account
	// carrying the given bank-feed identifier.
	// Returns ErrTransactionNotFound if no such transaction exists.
	GetTransactionByImportedID(ctx context.Context, accountID, importedID string) (*models.Transaction, error)

	// ListTransactions returns non-deleted transactions on the account
	// with from <= date <= to, ordered by date then ID
	ListTransactions(ctx context.Context, accountID string, from, to time.Time) ([]*models.Transaction, error)

	// FindPayeeByName retrieves a payee by exact name
	// Returns ErrPayeeNotFound if no such payee exists
	FindPayeeByName(ctx context.Context, name string) (*models.Payee, error)

	// GetPayee retrieves a payee by ID
	// Returns ErrPayeeNotFound if payee doesn't exist
	GetPayee(ctx context.Context, id string) (*models.Payee, error)
}
