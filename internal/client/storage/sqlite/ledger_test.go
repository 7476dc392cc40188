package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
)

// создаём тестовое in-memory хранилище с применёнными миграциями
func createTestStorage(t *testing.T) *Storage {
	ctx := context.Background()
	store, err := New(ctx, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_HasDataset(t *testing.T) {
	store := createTestStorage(t)

	assert.True(t, store.HasDataset(models.DatasetAccounts))
	assert.True(t, store.HasDataset(models.DatasetPayees))
	assert.True(t, store.HasDataset(models.DatasetTransactions))
	assert.False(t, store.HasDataset("budgets"))
}

func TestStorage_ResolveColumn(t *testing.T) {
	store := createTestStorage(t)

	local, ok := store.ResolveColumn(models.DatasetTransactions, "amount")
	require.True(t, ok)
	assert.Equal(t, "amount", local)

	_, ok = store.ResolveColumn(models.DatasetTransactions, "color")
	assert.False(t, ok)

	_, ok = store.ResolveColumn("budgets", "amount")
	assert.False(t, ok)
}

func TestStorage_Update_CreatesRow(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.Update(ctx, models.DatasetAccounts, "acc-1", map[string]models.Value{
		"name":      models.StringValue("Checking"),
		"offbudget": models.BoolValue(false),
	})
	require.NoError(t, err)

	account, err := store.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Checking", account.Name)
	assert.False(t, account.OffBudget)
	assert.False(t, account.Tombstone)
}

func TestStorage_Update_PartialKeepsOtherColumns(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.Update(ctx, models.DatasetTransactions, "tx-1", map[string]models.Value{
		"acct":   models.StringValue("acc-1"),
		"amount": models.IntValue(-1200),
		"date":   models.IntValue(20231001),
		"notes":  models.StringValue("lunch"),
	})
	require.NoError(t, err)

	// Обновляем только сумму - остальные поля не меняются
	err = store.Update(ctx, models.DatasetTransactions, "tx-1", map[string]models.Value{
		"amount": models.IntValue(-1500),
	})
	require.NoError(t, err)

	txn, err := store.GetTransaction(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, int64(-1500), txn.Amount)
	assert.Equal(t, "acc-1", txn.AccountID)
	assert.Equal(t, "lunch", txn.Notes)
	assert.Equal(t, time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC), txn.Date)
}

func TestStorage_Update_NullClearsColumn(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Update(ctx, models.DatasetTransactions, "tx-1", map[string]models.Value{
		"acct":   models.StringValue("acc-1"),
		"amount": models.IntValue(-1200),
		"date":   models.IntValue(20231001),
		"notes":  models.StringValue("lunch"),
	}))

	// Удаленная реплика обнулила заметку - изменение применяется,
	// а не отклоняется хранилищем
	require.NoError(t, store.Update(ctx, models.DatasetTransactions, "tx-1", map[string]models.Value{
		"notes": models.NullValue(),
	}))

	txn, err := store.GetTransaction(ctx, "tx-1")
	require.NoError(t, err)
	assert.Empty(t, txn.Notes)
	assert.Equal(t, int64(-1200), txn.Amount)

	// Обнулённый tombstone не прячет строку из выборок
	require.NoError(t, store.Update(ctx, models.DatasetTransactions, "tx-1", map[string]models.Value{
		"tombstone": models.NullValue(),
	}))

	from := time.Date(2023, time.September, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)
	txns, err := store.ListTransactions(ctx, "acc-1", from, to)
	require.NoError(t, err)
	require.Len(t, txns, 1)
}

func TestStorage_Update_UnknownDataset(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.Update(ctx, "budgets", "row-1", map[string]models.Value{
		"name": models.StringValue("x"),
	})
	assert.ErrorIs(t, err, storage.ErrUnknownDataset)
}

func TestStorage_Update_UnknownColumn(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.Update(ctx, models.DatasetAccounts, "acc-1", map[string]models.Value{
		"color": models.StringValue("red"),
	})
	assert.ErrorIs(t, err, storage.ErrUnknownColumn)

	// Строка не должна появиться после отклонённого изменения
	_, err = store.GetAccount(ctx, "acc-1")
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)
}

func TestStorage_ListAccounts_SkipsTombstones(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Update(ctx, models.DatasetAccounts, "acc-1", map[string]models.Value{
		"name": models.StringValue("Checking"),
	}))
	require.NoError(t, store.Update(ctx, models.DatasetAccounts, "acc-2", map[string]models.Value{
		"name":      models.StringValue("Closed one"),
		"tombstone": models.BoolValue(true),
	}))

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "acc-1", accounts[0].ID)
}

func TestStorage_GetTransactionByImportedID(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Update(ctx, models.DatasetTransactions, "tx-1", map[string]models.Value{
		"acct":        models.StringValue("acc-1"),
		"amount":      models.IntValue(-1200),
		"date":        models.IntValue(20231001),
		"imported_id": models.StringValue("feed-123"),
	}))

	txn, err := store.GetTransactionByImportedID(ctx, "acc-1", "feed-123")
	require.NoError(t, err)
	assert.Equal(t, "tx-1", txn.ID)

	// На другом счёте такой транзакции нет
	_, err = store.GetTransactionByImportedID(ctx, "acc-2", "feed-123")
	assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
}

func TestStorage_ListTransactions_DateWindow(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	dates := map[string]int64{
		"tx-1": 20230925,
		"tx-2": 20231001,
		"tx-3": 20231010,
	}
	for id, date := range dates {
		require.NoError(t, store.Update(ctx, models.DatasetTransactions, id, map[string]models.Value{
			"acct":   models.StringValue("acc-1"),
			"amount": models.IntValue(-100),
			"date":   models.IntValue(date),
		}))
	}

	from := time.Date(2023, time.September, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)

	txns, err := store.ListTransactions(ctx, "acc-1", from, to)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "tx-2", txns[0].ID)
}

func TestStorage_FindPayeeByName(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Update(ctx, models.DatasetPayees, "payee-1", map[string]models.Value{
		"name": models.StringValue("Coffee Shop"),
	}))

	payee, err := store.FindPayeeByName(ctx, "Coffee Shop")
	require.NoError(t, err)
	assert.Equal(t, "payee-1", payee.ID)

	_, err = store.FindPayeeByName(ctx, "Unknown")
	assert.ErrorIs(t, err, storage.ErrPayeeNotFound)
}
