package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/bookkeeper/internal/client/bankfeed"
	"github.com/iudanet/bookkeeper/internal/client/ledger"
	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
)

// startingBalancePayee имя получателя для синтетической записи
// начального баланса на бюджетных счетах
const startingBalancePayee = "Starting Balance"

// matchWindowDays окно нечеткого сопоставления по дате в обе стороны
const matchWindowDays = 7

// Engine сверяет банковскую выгрузку с локальным гроссбухом.
// Импорт идемпотентен: повторный прогон той же выгрузки не создаёт
// ни новых транзакций, ни новых изменений.
type Engine struct {
	store    storage.LedgerStore
	ledger   *ledger.Service
	provider bankfeed.Provider
	logger   *slog.Logger
}

// NewEngine creates a new reconciliation engine
func NewEngine(store storage.LedgerStore, ledgerSvc *ledger.Service, provider bankfeed.Provider, logger *slog.Logger) *Engine {
	return &Engine{
		store:    store,
		ledger:   ledgerSvc,
		provider: provider,
		logger:   logger,
	}
}

// Run загружает выгрузку по счету и сверяет её с гроссбухом
func (e *Engine) Run(ctx context.Context, accountID string, since time.Time) ([]models.ReconciledTransaction, error) {
	account, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	feed, err := e.provider.FetchAccount(ctx, account.ID, since)
	if err != nil {
		return nil, fmt.Errorf("bank feed fetch failed: %w", err)
	}

	return e.Reconcile(ctx, account, feed)
}

// Reconcile сверяет выгрузку с локальными транзакциями счета.
// Транзакции применяются от старых к новым; непроведённые операции
// пропускаются целиком.
func (e *Engine) Reconcile(ctx context.Context, account *models.Account, feed *bankfeed.FeedResult) ([]models.ReconciledTransaction, error) {
	existing, err := e.store.ListTransactions(ctx, account.ID,
		time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	firstSync := len(existing) == 0

	booked := make([]bankfeed.FeedTransaction, 0, len(feed.Transactions))
	for _, ft := range feed.Transactions {
		if ft.Booked {
			booked = append(booked, ft)
		}
	}

	var imported []models.ReconciledTransaction

	// Транзакции, задействованные в этом прогоне: их нельзя
	// сопоставить повторно с другой записью выгрузки
	matched := make(map[string]bool)

	// Первая сверка пустого счета: банк отдаёт текущий баланс,
	// поэтому начальный баланс = баланс минус сумма выгрузки
	if firstSync && len(booked) > 0 {
		starting, err := e.createStartingBalance(ctx, account, feed.Balance, booked)
		if err != nil {
			return nil, err
		}
		if starting != nil {
			matched[starting.ID] = true
			imported = append(imported, *starting)
		}
	}

	// Выгрузка приходит от новых к старым; применяем в обратном порядке
	for i := len(booked) - 1; i >= 0; i-- {
		rec, err := e.reconcileOne(ctx, account, booked[i], matched)
		if err != nil {
			return nil, err
		}
		if rec.Changed() {
			matched[rec.ID] = true
			imported = append(imported, *rec)
		}
	}

	e.logger.Info("Bank feed reconciled",
		"account_id", account.ID,
		"feed_size", len(feed.Transactions),
		"imported", len(imported))

	return imported, nil
}

// createStartingBalance создает синтетическую запись начального баланса
func (e *Engine) createStartingBalance(ctx context.Context, account *models.Account, balance int64, booked []bankfeed.FeedTransaction) (*models.ReconciledTransaction, error) {
	amount := balance
	for _, ft := range booked {
		amount -= ft.Amount
	}
	if amount == 0 {
		return nil, nil
	}

	// Самая старая дата выгрузки; на внебюджетных счетах получатель не нужен
	oldest := booked[0].Date
	for _, ft := range booked[1:] {
		if ft.Date.Before(oldest) {
			oldest = ft.Date
		}
	}

	var payeeID string
	if !account.OffBudget {
		payee, err := e.ledger.GetOrCreatePayee(ctx, startingBalancePayee)
		if err != nil {
			return nil, err
		}
		payeeID = payee.ID
	}

	txn := &models.Transaction{
		AccountID:       account.ID,
		Date:            oldest,
		Amount:          amount,
		PayeeID:         payeeID,
		Cleared:         true,
		StartingBalance: true,
	}
	if err := e.ledger.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	return &models.ReconciledTransaction{Transaction: *txn, Outcome: models.ReconcileCreated}, nil
}

// reconcileOne сверяет одну транзакцию выгрузки с гроссбухом
func (e *Engine) reconcileOne(ctx context.Context, account *models.Account, ft bankfeed.FeedTransaction, matched map[string]bool) (*models.ReconciledTransaction, error) {
	// Уже импортированная транзакция узнаётся по идентификатору банка
	if ft.ImportedID != "" {
		existing, err := e.store.GetTransactionByImportedID(ctx, account.ID, ft.ImportedID)
		if err == nil {
			return &models.ReconciledTransaction{Transaction: *existing, Outcome: models.ReconcileUnchanged}, nil
		}
		if err != storage.ErrTransactionNotFound {
			return nil, fmt.Errorf("failed to look up imported id: %w", err)
		}
	}

	feedPayeeID, err := e.resolveFeedPayee(ctx, ft.PayeeName)
	if err != nil {
		return nil, err
	}

	// Нечеткое сопоставление с ручной записью без банковского идентификатора
	candidate, err := e.findMatch(ctx, account.ID, ft, feedPayeeID, matched)
	if err != nil {
		return nil, err
	}

	if candidate != nil {
		attrs := map[string]models.Value{
			"imported_id": models.StringValue(ft.ImportedID),
			"cleared":     models.BoolValue(true),
		}
		if candidate.PayeeID == "" && feedPayeeID != "" {
			attrs["payee"] = models.StringValue(feedPayeeID)
		}
		if err := e.ledger.UpdateTransaction(ctx, candidate.ID, attrs); err != nil {
			return nil, err
		}

		candidate.ImportedID = ft.ImportedID
		candidate.Cleared = true
		if candidate.PayeeID == "" {
			candidate.PayeeID = feedPayeeID
		}

		return &models.ReconciledTransaction{Transaction: *candidate, Outcome: models.ReconcileMatched}, nil
	}

	payeeID := feedPayeeID
	if payeeID == "" && ft.PayeeName != "" {
		payee, err := e.ledger.GetOrCreatePayee(ctx, ft.PayeeName)
		if err != nil {
			return nil, err
		}
		payeeID = payee.ID
	}

	txn := &models.Transaction{
		AccountID:  account.ID,
		Date:       ft.Date,
		Amount:     ft.Amount,
		PayeeID:    payeeID,
		ImportedID: ft.ImportedID,
		Notes:      ft.Notes,
		Cleared:    true,
	}
	if err := e.ledger.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	return &models.ReconciledTransaction{Transaction: *txn, Outcome: models.ReconcileCreated}, nil
}

// resolveFeedPayee находит получателя по имени из выгрузки, не создавая нового
func (e *Engine) resolveFeedPayee(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", nil
	}

	payee, err := e.store.FindPayeeByName(ctx, name)
	if err == storage.ErrPayeeNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find payee: %w", err)
	}

	return payee.ID, nil
}

// findMatch ищет лучшую ручную запись для транзакции выгрузки.
// Кандидат: та же сумма, без банковского идентификатора, не задействован
// в этом прогоне, дата в пределах окна. Порядок предпочтения: совпадающий
// получатель, затем наименьшее расстояние по дате, затем наименьший ID.
// Порядок детерминирован: одна и та же выгрузка всегда даёт один результат.
func (e *Engine) findMatch(ctx context.Context, accountID string, ft bankfeed.FeedTransaction, feedPayeeID string, matched map[string]bool) (*models.Transaction, error) {
	from := ft.Date.AddDate(0, 0, -matchWindowDays)
	to := ft.Date.AddDate(0, 0, matchWindowDays)

	candidates, err := e.store.ListTransactions(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list match candidates: %w", err)
	}

	var (
		best          *models.Transaction
		bestSamePayee bool
		bestDist      int
	)

	for _, c := range candidates {
		if c.ImportedID != "" || c.StartingBalance || matched[c.ID] || c.Amount != ft.Amount {
			continue
		}

		samePayee := feedPayeeID != "" && c.PayeeID == feedPayeeID
		dist := dateDistanceDays(c.Date, ft.Date)

		switch {
		case best == nil:
		case samePayee != bestSamePayee:
			if !samePayee {
				continue
			}
		case dist != bestDist:
			if dist > bestDist {
				continue
			}
		case c.ID >= best.ID:
			continue
		}

		best = c
		bestSamePayee = samePayee
		bestDist = dist
	}

	return best, nil
}

// dateDistanceDays возвращает расстояние между датами в днях
func dateDistanceDays(a, b time.Time) int {
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}
