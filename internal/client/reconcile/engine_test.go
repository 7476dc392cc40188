package reconcile

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookkeeper/internal/client/bankfeed"
	"github.com/iudanet/bookkeeper/internal/client/buffer"
	"github.com/iudanet/bookkeeper/internal/client/ledger"
	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/client/storage/sqlite"
	"github.com/iudanet/bookkeeper/internal/models"
)

// testEnv собирает движок сверки поверх настоящего SQLite in-memory хранилища
type testEnv struct {
	store    *sqlite.Storage
	ledger   *ledger.Service
	provider *bankfeed.ProviderMock
	engine   *Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	metadata := &storage.MetadataStorageMock{
		PatchFunc: func(ctx context.Context, values map[string]string) error {
			return nil
		},
	}

	ledgerSvc := ledger.NewService(store, metadata, buffer.New(), logger)
	provider := &bankfeed.ProviderMock{}

	return &testEnv{
		store:    store,
		ledger:   ledgerSvc,
		provider: provider,
		engine:   NewEngine(store, ledgerSvc, provider, logger),
	}
}

func (env *testEnv) createAccount(t *testing.T, name string, offBudget bool) *models.Account {
	t.Helper()
	account, err := env.ledger.CreateAccount(context.Background(), name, offBudget)
	require.NoError(t, err)
	return account
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReconcile_FirstSyncCreatesStartingBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "Checking", false)

	feed := &bankfeed.FeedResult{
		Balance: 5000,
		Transactions: []bankfeed.FeedTransaction{
			{Date: date(2023, time.October, 1), Amount: -1200, PayeeName: "Coffee Shop", ImportedID: "feed-1", Booked: true},
		},
	}

	imported, err := env.engine.Reconcile(ctx, account, feed)
	require.NoError(t, err)
	require.Len(t, imported, 2)

	// Банк отдал текущий баланс: начальный = 5000 - (-1200) = 6200
	starting := imported[0]
	assert.Equal(t, models.ReconcileCreated, starting.Outcome)
	assert.True(t, starting.StartingBalance)
	assert.Equal(t, int64(6200), starting.Amount)
	assert.Equal(t, date(2023, time.October, 1), starting.Date)
	assert.True(t, starting.Cleared)

	payee, err := env.store.GetPayee(ctx, starting.PayeeID)
	require.NoError(t, err)
	assert.Equal(t, "Starting Balance", payee.Name)

	created := imported[1]
	assert.Equal(t, models.ReconcileCreated, created.Outcome)
	assert.Equal(t, int64(-1200), created.Amount)
	assert.Equal(t, "feed-1", created.ImportedID)

	// Баланс счета сходится с банком
	txns, err := env.store.ListTransactions(ctx, account.ID, date(2000, 1, 1), date(2100, 1, 1))
	require.NoError(t, err)
	var total int64
	for _, txn := range txns {
		total += txn.Amount
	}
	assert.Equal(t, feed.Balance, total)
}

func TestReconcile_RerunIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "Checking", false)

	feed := &bankfeed.FeedResult{
		Balance: 5000,
		Transactions: []bankfeed.FeedTransaction{
			{Date: date(2023, time.October, 1), Amount: -1200, PayeeName: "Coffee Shop", ImportedID: "feed-1", Booked: true},
		},
	}

	first, err := env.engine.Reconcile(ctx, account, feed)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Повторный прогон той же выгрузки ничего не меняет
	second, err := env.engine.Reconcile(ctx, account, feed)
	require.NoError(t, err)
	assert.Empty(t, second)

	txns, err := env.store.ListTransactions(ctx, account.ID, date(2000, 1, 1), date(2100, 1, 1))
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestReconcile_UnbookedSkipped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "Checking", false)

	feed := &bankfeed.FeedResult{
		Balance: 1000,
		Transactions: []bankfeed.FeedTransaction{
			{Date: date(2023, time.October, 2), Amount: -300, ImportedID: "feed-pending", Booked: false},
			{Date: date(2023, time.October, 1), Amount: 1000, ImportedID: "feed-1", Booked: true},
		},
	}

	imported, err := env.engine.Reconcile(ctx, account, feed)
	require.NoError(t, err)

	for _, rec := range imported {
		assert.NotEqual(t, "feed-pending", rec.ImportedID, "pending transactions must never be imported")
	}

	_, err = env.store.GetTransactionByImportedID(ctx, account.ID, "feed-pending")
	assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
}

func TestReconcile_FuzzyMatchPatchesManualEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "Checking", false)

	// Ручная запись без банковского идентификатора
	manual := &models.Transaction{
		AccountID: account.ID,
		Date:      date(2023, time.October, 1),
		Amount:    -500,
		Notes:     "entered by hand",
	}
	require.NoError(t, env.ledger.CreateTransaction(ctx, manual))

	feed := &bankfeed.FeedResult{
		Balance: -500,
		Transactions: []bankfeed.FeedTransaction{
			{Date: date(2023, time.October, 3), Amount: -500, PayeeName: "Grocery", ImportedID: "feed-9", Booked: true},
		},
	}

	imported, err := env.engine.Reconcile(ctx, account, feed)
	require.NoError(t, err)
	require.Len(t, imported, 1)

	assert.Equal(t, models.ReconcileMatched, imported[0].Outcome)
	assert.Equal(t, manual.ID, imported[0].ID, "feed entry must attach to the manual transaction")

	got, err := env.store.GetTransaction(ctx, manual.ID)
	require.NoError(t, err)
	assert.Equal(t, "feed-9", got.ImportedID)
	assert.True(t, got.Cleared)

	// Новая транзакция не создана
	txns, err := env.store.ListTransactions(ctx, account.ID, date(2000, 1, 1), date(2100, 1, 1))
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestReconcile_FuzzyMatchPrefersSamePayee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "Checking", false)

	grocery, err := env.ledger.GetOrCreatePayee(ctx, "Grocery")
	require.NoError(t, err)

	// Кандидат ближе по дате, но с другим получателем
	closer := &models.Transaction{
		AccountID: account.ID,
		Date:      date(2023, time.October, 3),
		Amount:    -500,
	}
	require.NoError(t, env.ledger.CreateTransaction(ctx, closer))

	// Кандидат дальше по дате, но с совпадающим получателем
	samePayee := &models.Transaction{
		AccountID: account.ID,
		Date:      date(2023, time.September, 28),
		Amount:    -500,
		PayeeID:   grocery.ID,
	}
	require.NoError(t, env.ledger.CreateTransaction(ctx, samePayee))

	feed := &bankfeed.FeedResult{
		Balance: -1000,
		Transactions: []bankfeed.FeedTransaction{
			{Date: date(2023, time.October, 3), Amount: -500, PayeeName: "Grocery", ImportedID: "feed-9", Booked: true},
		},
	}

	imported, err := env.engine.Reconcile(ctx, account, feed)
	require.NoError(t, err)
	require.Len(t, imported, 1)

	assert.Equal(t, models.ReconcileMatched, imported[0].Outcome)
	assert.Equal(t, samePayee.ID, imported[0].ID, "candidate with matching payee wins over closer date")
}

func TestReconcile_OffBudgetStartingBalanceHasNoPayee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "Mortgage", true)

	feed := &bankfeed.FeedResult{
		Balance: -250000,
		Transactions: []bankfeed.FeedTransaction{
			{Date: date(2023, time.October, 1), Amount: -1000, ImportedID: "feed-1", Booked: true},
		},
	}

	imported, err := env.engine.Reconcile(ctx, account, feed)
	require.NoError(t, err)
	require.Len(t, imported, 2)

	starting := imported[0]
	assert.True(t, starting.StartingBalance)
	assert.Empty(t, starting.PayeeID, "off-budget starting balance gets no payee")
}

func TestRun_FetchesFeedFromProvider(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "Checking", false)

	since := date(2023, time.July, 1)
	env.provider.FetchAccountFunc = func(ctx context.Context, accountID string, s time.Time) (*bankfeed.FeedResult, error) {
		assert.Equal(t, account.ID, accountID)
		assert.Equal(t, since, s)
		return &bankfeed.FeedResult{
			Balance: 1000,
			Transactions: []bankfeed.FeedTransaction{
				{Date: date(2023, time.October, 1), Amount: 1000, ImportedID: "feed-1", Booked: true},
			},
		}, nil
	}

	imported, err := env.engine.Run(ctx, account.ID, since)
	require.NoError(t, err)
	require.Len(t, imported, 1, "balance equals the single transaction, no starting entry needed")
	assert.Equal(t, "feed-1", imported[0].ImportedID)

	require.Len(t, env.provider.FetchAccountCalls(), 1)
}
