package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
)

// HasDataset reports whether this replica has a table for the dataset
func (s *Storage) HasDataset(dataset string) bool {
	_, ok := schema[dataset]
	return ok
}

// ResolveColumn maps a wire column name to a local column name
func (s *Storage) ResolveColumn(dataset, column string) (string, bool) {
	spec, ok := schema[dataset]
	if !ok {
		return "", false
	}
	local, ok := spec.columns[column]
	return local, ok
}

// Update creates the row if it does not exist and sets the given columns.
// Выполняется в одной транзакции: либо применяются все поля, либо ни одного.
func (s *Storage) Update(ctx context.Context, dataset, row string, attrs map[string]models.Value) error {
	spec, ok := schema[dataset]
	if !ok {
		return fmt.Errorf("dataset %q: %w", dataset, storage.ErrUnknownDataset)
	}

	// Сортируем колонки для детерминированного порядка запроса
	columns := make([]string, 0, len(attrs))
	for column := range attrs {
		if _, ok := spec.columns[column]; !ok {
			return fmt.Errorf("dataset %q column %q: %w", dataset, column, storage.ErrUnknownColumn)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	// Создаем строку, если её ещё нет
	insertQuery := fmt.Sprintf("INSERT INTO %s (id) VALUES (?) ON CONFLICT(id) DO NOTHING", spec.table)
	if _, err := tx.ExecContext(ctx, insertQuery, row); err != nil {
		return fmt.Errorf("failed to ensure row: %w", err)
	}

	if len(columns) > 0 {
		assignments := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns)+1)
		for _, column := range columns {
			assignments = append(assignments, spec.columns[column]+" = ?")
			args = append(args, bindValue(attrs[column]))
		}
		args = append(args, row)

		updateQuery := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?",
			spec.table, strings.Join(assignments, ", "))
		if _, err := tx.ExecContext(ctx, updateQuery, args...); err != nil {
			return fmt.Errorf("failed to update row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// bindValue конвертирует типизированное значение в параметр запроса.
// Булевы значения храним как INTEGER 0/1.
func bindValue(v models.Value) interface{} {
	if v.Kind == models.KindBool {
		if v.Bool {
			return 1
		}
		return 0
	}
	return v.Interface()
}

// GetAccount retrieves an account by ID
func (s *Storage) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	query := `
		SELECT id, name, offbudget, closed, tombstone
		FROM accounts
		WHERE id = ?
	`

	account := &models.Account{}
	var name sql.NullString
	var offBudget, closed, tombstone sql.NullInt64

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&name,
		&offBudget,
		&closed,
		&tombstone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	account.Name = name.String
	account.OffBudget = offBudget.Int64 != 0
	account.Closed = closed.Int64 != 0
	account.Tombstone = tombstone.Int64 != 0

	return account, nil
}

// ListAccounts returns all accounts that are not soft-deleted
func (s *Storage) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	query := `
		SELECT id, name, offbudget, closed, tombstone
		FROM accounts
		WHERE IFNULL(tombstone, 0) = 0
		ORDER BY name, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account := &models.Account{}
		var name sql.NullString
		var offBudget, closed, tombstone sql.NullInt64

		if err := rows.Scan(&account.ID, &name, &offBudget, &closed, &tombstone); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		account.Name = name.String
		account.OffBudget = offBudget.Int64 != 0
		account.Closed = closed.Int64 != 0
		account.Tombstone = tombstone.Int64 != 0
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

const transactionColumns = `id, acct, amount, date, payee, imported_id, notes, cleared, starting_balance_flag, tombstone`

// scanTransaction читает транзакцию из строки результата.
// Любая колонка кроме id могла быть обнулена удаленной репликой.
func scanTransaction(scan func(dest ...interface{}) error) (*models.Transaction, error) {
	txn := &models.Transaction{}
	var acct, payee, importedID, notes sql.NullString
	var amount, date, cleared, startingBalance, tombstone sql.NullInt64

	err := scan(
		&txn.ID,
		&acct,
		&amount,
		&date,
		&payee,
		&importedID,
		&notes,
		&cleared,
		&startingBalance,
		&tombstone,
	)
	if err != nil {
		return nil, err
	}

	txn.AccountID = acct.String
	txn.Amount = amount.Int64
	txn.PayeeID = payee.String
	txn.ImportedID = importedID.String
	txn.Notes = notes.String
	txn.Date = models.DateFromInt(int(date.Int64))
	txn.Cleared = cleared.Int64 != 0
	txn.StartingBalance = startingBalance.Int64 != 0
	txn.Tombstone = tombstone.Int64 != 0

	return txn, nil
}

// GetTransaction retrieves a transaction by ID
func (s *Storage) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`

	txn, err := scanTransaction(s.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return txn, nil
}

// GetTransactionByImportedID retrieves a transaction on the account
// carrying the given bank-feed identifier
func (s *Storage) GetTransactionByImportedID(ctx context.Context, accountID, importedID string) (*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE acct = ? AND imported_id = ? AND IFNULL(tombstone, 0) = 0
		LIMIT 1
	`

	txn, err := scanTransaction(s.db.QueryRowContext(ctx, query, accountID, importedID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by imported id: %w", err)
	}

	return txn, nil
}

// ListTransactions returns non-deleted transactions on the account
// with from <= date <= to, ordered by date then ID
func (s *Storage) ListTransactions(ctx context.Context, accountID string, from, to time.Time) ([]*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE acct = ? AND date >= ? AND date <= ? AND IFNULL(tombstone, 0) = 0
		ORDER BY date, id
	`

	rows, err := s.db.QueryContext(ctx, query, accountID, models.DateToInt(from), models.DateToInt(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*models.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}

// FindPayeeByName retrieves a payee by exact name
func (s *Storage) FindPayeeByName(ctx context.Context, name string) (*models.Payee, error) {
	query := `
		SELECT id, name, tombstone
		FROM payees
		WHERE name = ? AND IFNULL(tombstone, 0) = 0
		LIMIT 1
	`

	payee := &models.Payee{}
	var payeeName sql.NullString
	var tombstone sql.NullInt64

	err := s.db.QueryRowContext(ctx, query, name).Scan(&payee.ID, &payeeName, &tombstone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPayeeNotFound
		}
		return nil, fmt.Errorf("failed to find payee: %w", err)
	}

	payee.Name = payeeName.String
	payee.Tombstone = tombstone.Int64 != 0

	return payee, nil
}

// GetPayee retrieves a payee by ID
func (s *Storage) GetPayee(ctx context.Context, id string) (*models.Payee, error) {
	query := `
		SELECT id, name, tombstone
		FROM payees
		WHERE id = ?
	`

	payee := &models.Payee{}
	var name sql.NullString
	var tombstone sql.NullInt64

	err := s.db.QueryRowContext(ctx, query, id).Scan(&payee.ID, &name, &tombstone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPayeeNotFound
		}
		return nil, fmt.Errorf("failed to get payee: %w", err)
	}

	payee.Name = name.String
	payee.Tombstone = tombstone.Int64 != 0

	return payee, nil
}
