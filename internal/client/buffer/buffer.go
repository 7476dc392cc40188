package buffer

import (
	"context"
	"fmt"
	"sync"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/crdt"
	"github.com/iudanet/bookkeeper/internal/models"
)

// entryKey идентифицирует поле строки в буфере
type entryKey struct {
	dataset string
	row     string
	column  string
}

// Buffer накапливает локальные правки между синхронизациями.
// Повторная запись в то же поле заменяет значение, а не добавляет
// новую запись: наружу уходит только последнее состояние поля.
// Метки времени назначаются при выгрузке, а не при записи.
//
// Каждая команда CLI живет в своем процессе, поэтому буфер
// сквозным образом сохраняется в BufferStorage: правка переживает
// завершение процесса и уходит на сервер при следующем sync.
type Buffer struct {
	entries map[entryKey]models.Value
	order   []entryKey // порядок первого появления ключа
	store   storage.BufferStorage
	mu      sync.Mutex
}

// New создает пустой буфер изменений без персистентности.
// Используется в тестах; рабочий клиент создает буфер через NewPersistent.
func New() *Buffer {
	return &Buffer{
		entries: make(map[entryKey]models.Value),
	}
}

// NewPersistent создает буфер, сохраняющий каждое изменение в store,
// и восстанавливает правки, оставшиеся от прошлых запусков процесса
func NewPersistent(ctx context.Context, store storage.BufferStorage) (*Buffer, error) {
	b := &Buffer{
		entries: make(map[entryKey]models.Value),
		store:   store,
	}

	pending, err := store.GetBuffer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending changes: %w", err)
	}
	for _, ch := range pending {
		key := entryKey{dataset: ch.Dataset, row: ch.Row, column: ch.Column}
		if _, ok := b.entries[key]; !ok {
			b.order = append(b.order, key)
		}
		b.entries[key] = ch.Value
	}

	return b, nil
}

// Record записывает новое значение поля, заменяя предыдущее
func (b *Buffer) Record(ctx context.Context, dataset, row, column string, value models.Value) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := entryKey{dataset: dataset, row: row, column: column}
	if _, ok := b.entries[key]; !ok {
		b.order = append(b.order, key)
	}
	b.entries[key] = value

	return b.persist(ctx)
}

// Len возвращает количество накопленных полей
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Flush выгружает накопленные изменения и очищает буфер.
// Каждая запись получает свежую метку часов, поэтому порядок
// меток совпадает с порядком появления полей в буфере.
func (b *Buffer) Flush(ctx context.Context, clock *crdt.Clock) ([]models.ChangeRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	records := make([]models.ChangeRecord, 0, len(b.order))
	for _, key := range b.order {
		records = append(records, models.ChangeRecord{
			Dataset:   key.dataset,
			Row:       key.row,
			Column:    key.column,
			Value:     b.entries[key],
			Timestamp: clock.Now().String(),
		})
	}

	b.entries = make(map[entryKey]models.Value)
	b.order = nil
	if err := b.persist(ctx); err != nil {
		return nil, err
	}

	return records, nil
}

// Discard очищает буфер без выгрузки
func (b *Buffer) Discard(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = make(map[entryKey]models.Value)
	b.order = nil

	return b.persist(ctx)
}

// persist записывает текущее содержимое в хранилище.
// Вызывается под мьютексом.
func (b *Buffer) persist(ctx context.Context) error {
	if b.store == nil {
		return nil
	}

	changes := make([]storage.BufferedChange, 0, len(b.order))
	for _, key := range b.order {
		changes = append(changes, storage.BufferedChange{
			Dataset: key.dataset,
			Row:     key.row,
			Column:  key.column,
			Value:   b.entries[key],
		})
	}

	if err := b.store.SaveBuffer(ctx, changes); err != nil {
		return fmt.Errorf("failed to persist buffer: %w", err)
	}
	return nil
}
