package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/iudanet/bookkeeper/internal/client/buffer"
	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
)

// Service фасад локальных правок гроссбуха.
// Каждая правка делает две вещи в связке: пишет в локальное хранилище
// и кладёт те же поля в буфер исходящих изменений. Так локальная
// реплика и то, что уйдёт на сервер, не могут разойтись.
type Service struct {
	store    storage.LedgerStore
	metadata storage.MetadataStorage
	buf      *buffer.Buffer
	logger   *slog.Logger
}

// NewService creates a new ledger editing facade
func NewService(store storage.LedgerStore, metadata storage.MetadataStorage, buf *buffer.Buffer, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		metadata: metadata,
		buf:      buf,
		logger:   logger,
	}
}

// apply пишет поля в хранилище и буфер в связке.
// Поля буферизуются в отсортированном порядке, чтобы порядок меток
// при выгрузке был детерминированным.
func (s *Service) apply(ctx context.Context, dataset, row string, attrs map[string]models.Value) error {
	if err := s.store.Update(ctx, dataset, row, attrs); err != nil {
		return err
	}

	columns := make([]string, 0, len(attrs))
	for column := range attrs {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	for _, column := range columns {
		if err := s.buf.Record(ctx, dataset, row, column, attrs[column]); err != nil {
			return err
		}
	}

	return nil
}

// CreateAccount создает новый счет
func (s *Service) CreateAccount(ctx context.Context, name string, offBudget bool) (*models.Account, error) {
	account := &models.Account{
		ID:        uuid.New().String(),
		Name:      name,
		OffBudget: offBudget,
	}

	attrs := map[string]models.Value{
		"name":      models.StringValue(account.Name),
		"offbudget": models.BoolValue(account.OffBudget),
	}
	if err := s.apply(ctx, models.DatasetAccounts, account.ID, attrs); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("Account created", "account_id", account.ID, "name", name)

	return account, nil
}

// CreateTransaction создает новую транзакцию.
// Если ID не задан, назначается новый UUID.
func (s *Service) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}

	attrs := map[string]models.Value{
		"acct":                  models.StringValue(txn.AccountID),
		"amount":                models.IntValue(txn.Amount),
		"date":                  models.IntValue(int64(models.DateToInt(txn.Date))),
		"notes":                 models.StringValue(txn.Notes),
		"cleared":               models.BoolValue(txn.Cleared),
		"starting_balance_flag": models.BoolValue(txn.StartingBalance),
	}
	if txn.PayeeID != "" {
		attrs["payee"] = models.StringValue(txn.PayeeID)
	}
	if txn.ImportedID != "" {
		attrs["imported_id"] = models.StringValue(txn.ImportedID)
	}

	if err := s.apply(ctx, models.DatasetTransactions, txn.ID, attrs); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// UpdateTransaction обновляет отдельные поля транзакции
func (s *Service) UpdateTransaction(ctx context.Context, id string, attrs map[string]models.Value) error {
	if err := s.apply(ctx, models.DatasetTransactions, id, attrs); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// DeleteTransaction помечает транзакцию удалённой (soft delete)
func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	attrs := map[string]models.Value{
		"tombstone": models.BoolValue(true),
	}
	if err := s.apply(ctx, models.DatasetTransactions, id, attrs); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// GetOrCreatePayee возвращает получателя по имени, создавая при отсутствии
func (s *Service) GetOrCreatePayee(ctx context.Context, name string) (*models.Payee, error) {
	payee, err := s.store.FindPayeeByName(ctx, name)
	if err == nil {
		return payee, nil
	}
	if err != storage.ErrPayeeNotFound {
		return nil, fmt.Errorf("failed to find payee: %w", err)
	}

	payee = &models.Payee{
		ID:   uuid.New().String(),
		Name: name,
	}

	attrs := map[string]models.Value{
		"name": models.StringValue(name),
	}
	if err := s.apply(ctx, models.DatasetPayees, payee.ID, attrs); err != nil {
		return nil, fmt.Errorf("failed to create payee: %w", err)
	}

	return payee, nil
}

// SetPreference сохраняет пользовательскую настройку.
// Настройки реплицируются так же, как правки таблиц.
func (s *Service) SetPreference(ctx context.Context, key, value string) error {
	if err := s.metadata.Patch(ctx, map[string]string{key: value}); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	return s.buf.Record(ctx, models.DatasetPrefs, key, "value", models.StringValue(value))
}
