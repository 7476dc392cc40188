package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
)

// ErrUnsupportedSchema означает, что входящее изменение ссылается на
// набор данных или поле, неизвестные этой реплике. Применять такой
// пакет нельзя: более старая версия клиента молча потеряла бы данные.
var ErrUnsupportedSchema = errors.New("unsupported schema in incoming changes")

// Applier применяет входящие изменения к локальной реплике.
// Записи с одинаковой парой (набор, строка), идущие подряд,
// объединяются в один вызов хранилища.
type Applier struct {
	store    storage.LedgerStore
	metadata storage.MetadataStorage
	logger   *slog.Logger
}

// NewApplier creates a new merge applier
func NewApplier(store storage.LedgerStore, metadata storage.MetadataStorage, logger *slog.Logger) *Applier {
	return &Applier{
		store:    store,
		metadata: metadata,
		logger:   logger,
	}
}

// Apply применяет пакет изменений в порядке поступления.
// Весь пакет проверяется до первой записи в хранилище: при неизвестном
// наборе или поле возвращается ErrUnsupportedSchema и реплика
// остаётся нетронутой.
func (a *Applier) Apply(ctx context.Context, records []models.ChangeRecord) error {
	if err := a.validate(records); err != nil {
		return err
	}

	// Текущая группа: подряд идущие записи одной строки
	var (
		groupDataset string
		groupRow     string
		groupAttrs   map[string]models.Value
		prefs        map[string]string
	)

	flush := func() error {
		if groupAttrs == nil {
			return nil
		}
		if err := a.store.Update(ctx, groupDataset, groupRow, groupAttrs); err != nil {
			return fmt.Errorf("failed to apply changes to %s/%s: %w", groupDataset, groupRow, err)
		}
		groupAttrs = nil
		return nil
	}

	for _, rec := range records {
		// Настройки не являются таблицей гроссбуха и уходят в метаданные
		if rec.Dataset == models.DatasetPrefs {
			if err := flush(); err != nil {
				return err
			}
			if prefs == nil {
				prefs = make(map[string]string)
			}
			prefs[rec.Row] = rec.Value.String()
			continue
		}

		if groupAttrs != nil && (rec.Dataset != groupDataset || rec.Row != groupRow) {
			if err := flush(); err != nil {
				return err
			}
		}

		if groupAttrs == nil {
			groupDataset = rec.Dataset
			groupRow = rec.Row
			groupAttrs = make(map[string]models.Value)
		}

		local, _ := a.store.ResolveColumn(rec.Dataset, rec.Column)
		groupAttrs[local] = rec.Value
	}

	if err := flush(); err != nil {
		return err
	}

	if len(prefs) > 0 {
		if err := a.metadata.Patch(ctx, prefs); err != nil {
			return fmt.Errorf("failed to patch metadata: %w", err)
		}
	}

	a.logger.Debug("applied incoming changes", "count", len(records))

	return nil
}

// validate проверяет, что каждая запись пакета ссылается на известные
// набор данных и поле
func (a *Applier) validate(records []models.ChangeRecord) error {
	for _, rec := range records {
		if rec.Dataset == models.DatasetPrefs {
			continue
		}
		if !a.store.HasDataset(rec.Dataset) {
			return fmt.Errorf("dataset %q: %w", rec.Dataset, ErrUnsupportedSchema)
		}
		if _, ok := a.store.ResolveColumn(rec.Dataset, rec.Column); !ok {
			return fmt.Errorf("dataset %q column %q: %w", rec.Dataset, rec.Column, ErrUnsupportedSchema)
		}
	}
	return nil
}
