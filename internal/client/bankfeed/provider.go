package bankfeed

import (
	"context"
	"time"
)

//go:generate moq -out provider_mock.go . Provider

// FeedTransaction одна транзакция из банковской выгрузки
type FeedTransaction struct {
	Date       time.Time `json:"date"`       // Date дата проведения
	ImportedID string    `json:"importedId"` // ImportedID стабильный идентификатор транзакции в банке
	PayeeName  string    `json:"payeeName"`  // PayeeName имя контрагента как его видит банк
	Notes      string    `json:"notes"`      // Notes описание операции
	Amount     int64     `json:"amount"`     // Amount сумма в минимальных единицах валюты
	Booked     bool      `json:"booked"`     // Booked операция проведена (не pending)
}

// FeedResult выгрузка по одному счету
type FeedResult struct {
	Transactions []FeedTransaction `json:"transactions"` // от новых к старым, как отдают банки
	Balance      int64             `json:"balance"`      // текущий баланс счета в банке
}

// Provider defines interface for a bank feed source.
// Implementations wrap aggregator APIs and normalize their output.
type Provider interface {
	// FetchAccount returns balance and transactions for the linked account
	// starting from the given date
	FetchAccount(ctx context.Context, accountID string, since time.Time) (*FeedResult, error)
}
