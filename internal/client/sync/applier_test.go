package sync

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
)

// известные реплике наборы данных и поля для тестов применения
var testColumns = map[string]map[string]bool{
	models.DatasetAccounts:     {"name": true, "offbudget": true, "tombstone": true},
	models.DatasetTransactions: {"acct": true, "amount": true, "date": true, "notes": true, "tombstone": true},
}

func newTestStoreMock() *storage.LedgerStoreMock {
	return &storage.LedgerStoreMock{
		HasDatasetFunc: func(dataset string) bool {
			_, ok := testColumns[dataset]
			return ok
		},
		ResolveColumnFunc: func(dataset string, column string) (string, bool) {
			columns, ok := testColumns[dataset]
			if !ok {
				return "", false
			}
			return column, columns[column]
		},
		UpdateFunc: func(ctx context.Context, dataset string, row string, attrs map[string]models.Value) error {
			return nil
		},
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestApplier_GroupsConsecutiveRows(t *testing.T) {
	store := newTestStoreMock()
	metadata := &storage.MetadataStorageMock{}
	applier := NewApplier(store, metadata, newTestLogger())

	records := []models.ChangeRecord{
		{Dataset: models.DatasetTransactions, Row: "tx-1", Column: "acct", Value: models.StringValue("acc-1")},
		{Dataset: models.DatasetTransactions, Row: "tx-1", Column: "amount", Value: models.IntValue(-1200)},
		{Dataset: models.DatasetTransactions, Row: "tx-1", Column: "date", Value: models.IntValue(20231001)},
		{Dataset: models.DatasetAccounts, Row: "acc-1", Column: "name", Value: models.StringValue("Checking")},
	}

	err := applier.Apply(context.Background(), records)
	require.NoError(t, err)

	// Три подряд идущие записи одной строки объединяются в один вызов
	calls := store.UpdateCalls()
	require.Len(t, calls, 2)

	assert.Equal(t, models.DatasetTransactions, calls[0].Dataset)
	assert.Equal(t, "tx-1", calls[0].Row)
	assert.Len(t, calls[0].Attrs, 3)
	assert.True(t, calls[0].Attrs["amount"].Equal(models.IntValue(-1200)))

	assert.Equal(t, models.DatasetAccounts, calls[1].Dataset)
	assert.Equal(t, "acc-1", calls[1].Row)
}

func TestApplier_InterleavedRowsNotGrouped(t *testing.T) {
	store := newTestStoreMock()
	metadata := &storage.MetadataStorageMock{}
	applier := NewApplier(store, metadata, newTestLogger())

	// Одна и та же строка с разрывом: группировка только для подряд идущих
	records := []models.ChangeRecord{
		{Dataset: models.DatasetTransactions, Row: "tx-1", Column: "amount", Value: models.IntValue(-100)},
		{Dataset: models.DatasetTransactions, Row: "tx-2", Column: "amount", Value: models.IntValue(-200)},
		{Dataset: models.DatasetTransactions, Row: "tx-1", Column: "notes", Value: models.StringValue("late")},
	}

	err := applier.Apply(context.Background(), records)
	require.NoError(t, err)

	calls := store.UpdateCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, "tx-1", calls[0].Row)
	assert.Equal(t, "tx-2", calls[1].Row)
	assert.Equal(t, "tx-1", calls[2].Row)
}

func TestApplier_PrefsGoToMetadata(t *testing.T) {
	store := newTestStoreMock()

	var patched map[string]string
	metadata := &storage.MetadataStorageMock{
		PatchFunc: func(ctx context.Context, values map[string]string) error {
			patched = values
			return nil
		},
	}
	applier := NewApplier(store, metadata, newTestLogger())

	// Имя набора зафиксировано протоколом: чужие реплики шлют именно "prefs"
	records := []models.ChangeRecord{
		{Dataset: "prefs", Row: "budgetName", Column: "value", Value: models.StringValue("My Finances")},
		{Dataset: models.DatasetAccounts, Row: "acc-1", Column: "name", Value: models.StringValue("Checking")},
	}

	err := applier.Apply(context.Background(), records)
	require.NoError(t, err)

	// Настройки не попадают в таблицы гроссбуха
	require.Len(t, store.UpdateCalls(), 1)
	assert.Equal(t, models.DatasetAccounts, store.UpdateCalls()[0].Dataset)

	require.NotNil(t, patched)
	assert.Equal(t, "My Finances", patched["budgetName"])
}

func TestApplier_UnknownDataset(t *testing.T) {
	store := newTestStoreMock()
	metadata := &storage.MetadataStorageMock{}
	applier := NewApplier(store, metadata, newTestLogger())

	records := []models.ChangeRecord{
		{Dataset: models.DatasetAccounts, Row: "acc-1", Column: "name", Value: models.StringValue("Checking")},
		{Dataset: "budgets", Row: "b-1", Column: "amount", Value: models.IntValue(100)},
	}

	err := applier.Apply(context.Background(), records)
	require.ErrorIs(t, err, ErrUnsupportedSchema)

	// Хранилище не тронуто: пакет отклоняется целиком
	assert.Empty(t, store.UpdateCalls())
}

func TestApplier_UnknownColumn(t *testing.T) {
	store := newTestStoreMock()
	metadata := &storage.MetadataStorageMock{}
	applier := NewApplier(store, metadata, newTestLogger())

	records := []models.ChangeRecord{
		{Dataset: models.DatasetAccounts, Row: "acc-1", Column: "color", Value: models.StringValue("red")},
	}

	err := applier.Apply(context.Background(), records)
	require.ErrorIs(t, err, ErrUnsupportedSchema)
	assert.Empty(t, store.UpdateCalls())
}

func TestApplier_Idempotent(t *testing.T) {
	store := newTestStoreMock()
	metadata := &storage.MetadataStorageMock{}
	applier := NewApplier(store, metadata, newTestLogger())

	records := []models.ChangeRecord{
		{Dataset: models.DatasetTransactions, Row: "tx-1", Column: "amount", Value: models.IntValue(-1200)},
	}

	// Повторное применение того же пакета даёт те же вызовы хранилища
	require.NoError(t, applier.Apply(context.Background(), records))
	require.NoError(t, applier.Apply(context.Background(), records))

	calls := store.UpdateCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0].Attrs, calls[1].Attrs)
}
