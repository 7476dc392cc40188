package buffer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/bookkeeper/internal/crdt"
	"github.com/iudanet/bookkeeper/internal/models"
)

func TestBuffer_RecordCoalesces(t *testing.T) {
	ctx := context.Background()
	buf := New()

	require.NoError(t, buf.Record(ctx, models.DatasetTransactions, "tx-1", "amount", models.IntValue(-1200)))
	require.NoError(t, buf.Record(ctx, models.DatasetTransactions, "tx-1", "notes", models.StringValue("lunch")))
	// Повторная запись в то же поле заменяет значение
	require.NoError(t, buf.Record(ctx, models.DatasetTransactions, "tx-1", "amount", models.IntValue(-1500)))

	assert.Equal(t, 2, buf.Len())

	clock := crdt.NewClock(crdt.NewClientID())
	records, err := buf.Flush(ctx, clock)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Наружу уходит только последнее значение поля
	assert.Equal(t, "amount", records[0].Column)
	assert.True(t, records[0].Value.Equal(models.IntValue(-1500)))
	assert.Equal(t, "notes", records[1].Column)
}

func TestBuffer_FlushAssignsOrderedTimestamps(t *testing.T) {
	ctx := context.Background()
	buf := New()

	require.NoError(t, buf.Record(ctx, models.DatasetAccounts, "acc-1", "name", models.StringValue("Checking")))
	require.NoError(t, buf.Record(ctx, models.DatasetTransactions, "tx-1", "amount", models.IntValue(-100)))
	require.NoError(t, buf.Record(ctx, models.DatasetTransactions, "tx-1", "date", models.IntValue(20231001)))

	clock := crdt.NewClock(crdt.NewClientID())
	records, err := buf.Flush(ctx, clock)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Метки назначаются при выгрузке и строго растут в порядке записи
	for i := 1; i < len(records); i++ {
		assert.Less(t, records[i-1].Timestamp, records[i].Timestamp,
			"flush timestamps must be strictly increasing")
	}

	// Буфер пуст после выгрузки
	assert.Equal(t, 0, buf.Len())
	empty, err := buf.Flush(ctx, clock)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBuffer_Discard(t *testing.T) {
	ctx := context.Background()
	buf := New()

	require.NoError(t, buf.Record(ctx, models.DatasetAccounts, "acc-1", "name", models.StringValue("Checking")))
	require.Equal(t, 1, buf.Len())

	require.NoError(t, buf.Discard(ctx))
	assert.Equal(t, 0, buf.Len())

	clock := crdt.NewClock(crdt.NewClientID())
	records, err := buf.Flush(ctx, clock)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestBuffer_WriteThrough проверяет, что каждая запись сразу уходит в хранилище
func TestBuffer_WriteThrough(t *testing.T) {
	ctx := context.Background()

	var saved []storage.BufferedChange
	store := &storage.BufferStorageMock{
		GetBufferFunc: func(ctx context.Context) ([]storage.BufferedChange, error) {
			return nil, nil
		},
		SaveBufferFunc: func(ctx context.Context, changes []storage.BufferedChange) error {
			saved = changes
			return nil
		},
	}

	buf, err := NewPersistent(ctx, store)
	require.NoError(t, err)

	require.NoError(t, buf.Record(ctx, models.DatasetTransactions, "tx-1", "amount", models.IntValue(-500)))
	require.Len(t, saved, 1)
	assert.Equal(t, "amount", saved[0].Column)
	assert.True(t, saved[0].Value.Equal(models.IntValue(-500)))

	clock := crdt.NewClock(crdt.NewClientID())
	_, err = buf.Flush(ctx, clock)
	require.NoError(t, err)
	assert.Empty(t, saved, "flush clears the persisted buffer")
}

// TestBuffer_SurvivesProcessRestart проверяет, что правки, записанные одним
// процессом, доступны буферу следующего процесса и уходят при его Flush
func TestBuffer_SurvivesProcessRestart(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client.db")

	// Первый запуск: правка попадает в буфер, процесс завершается без sync
	boltStorage, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)

	buf, err := NewPersistent(ctx, boltStorage)
	require.NoError(t, err)
	require.NoError(t, buf.Record(ctx, models.DatasetTransactions, "tx-1", "amount", models.IntValue(-1200)))
	require.NoError(t, buf.Record(ctx, models.DatasetTransactions, "tx-1", "acct", models.StringValue("acc-1")))
	require.NoError(t, boltStorage.Close())

	// Второй запуск: свежий буфер видит накопленные правки
	boltStorage, err = boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, boltStorage.Close())
	}()

	buf2, err := NewPersistent(ctx, boltStorage)
	require.NoError(t, err)
	require.Equal(t, 2, buf2.Len(), "pending edits must survive process restart")

	clock := crdt.NewClock(crdt.NewClientID())
	records, err := buf2.Flush(ctx, clock)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "amount", records[0].Column)
	assert.True(t, records[0].Value.Equal(models.IntValue(-1200)))
	assert.Equal(t, "acct", records[1].Column)

	// После выгрузки третий экземпляр стартует пустым
	buf3, err := NewPersistent(ctx, boltStorage)
	require.NoError(t, err)
	assert.Equal(t, 0, buf3.Len())
}
