package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Имена наборов данных, известных локальной реплике
const (
	DatasetAccounts     = "accounts"
	DatasetPayees       = "payees"
	DatasetTransactions = "transactions"
	DatasetPrefs        = "prefs"
)

// Account банковский или наличный счет пользователя
type Account struct {
	ID        string `json:"id"`         // ID уникальный идентификатор счета (UUID)
	Name      string `json:"name"`       // Name название счета (например, "Checking")
	OffBudget bool   `json:"off_budget"` // OffBudget счет вне бюджета (инвестиции, ипотека)
	Closed    bool   `json:"closed"`     // Closed счет закрыт
	Tombstone bool   `json:"tombstone"`  // Tombstone флаг soft delete
}

// Payee получатель платежа
type Payee struct {
	ID        string `json:"id"`        // ID уникальный идентификатор (UUID)
	Name      string `json:"name"`      // Name имя получателя
	Tombstone bool   `json:"tombstone"` // Tombstone флаг soft delete
}

// Transaction транзакция по счету.
// Суммы хранятся в минимальных единицах валюты (копейки/центы),
// чтобы избежать ошибок округления при сверке балансов.
type Transaction struct {
	Date            time.Time `json:"date"`             // Date дата транзакции (без времени)
	ID              string    `json:"id"`               // ID уникальный идентификатор (UUID)
	AccountID       string    `json:"account_id"`       // AccountID счет, к которому относится транзакция
	PayeeID         string    `json:"payee_id"`         // PayeeID опциональный получатель
	ImportedID      string    `json:"imported_id"`      // ImportedID идентификатор из банковской выгрузки
	Notes           string    `json:"notes"`            // Notes заметки пользователя
	Amount          int64     `json:"amount"`           // Amount сумма в минимальных единицах валюты
	Cleared         bool      `json:"cleared"`          // Cleared транзакция подтверждена выпиской
	StartingBalance bool      `json:"starting_balance"` // StartingBalance синтетическая запись начального баланса
	Tombstone       bool      `json:"tombstone"`        // Tombstone флаг soft delete
}

// ReconcileOutcome результат сверки одной транзакции из банковской выгрузки
type ReconcileOutcome string

// Возможные исходы сверки
const (
	ReconcileCreated   ReconcileOutcome = "created"   // создана новая транзакция
	ReconcileMatched   ReconcileOutcome = "matched"   // дополнена существующая ручная запись
	ReconcileUnchanged ReconcileOutcome = "unchanged" // уже импортирована ранее, изменений нет
)

// ReconciledTransaction транзакция вместе с исходом её сверки
type ReconciledTransaction struct {
	Transaction
	Outcome ReconcileOutcome `json:"outcome"` // Outcome что сделала сверка с этой транзакцией
}

// Changed сообщает, привела ли сверка к изменению локальных данных
func (r *ReconciledTransaction) Changed() bool {
	return r.Outcome != ReconcileUnchanged
}

// DateToInt кодирует дату в числовой формат yyyymmdd для хранения
func DateToInt(d time.Time) int {
	return d.Year()*10000 + int(d.Month())*100 + d.Day()
}

// DateFromInt восстанавливает дату из числового формата yyyymmdd
func DateFromInt(v int) time.Time {
	year := v / 10000
	month := time.Month(v / 100 % 100)
	day := v % 100
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseAmount переводит десятичную строку вида "-12.34"
// в минимальные единицы валюты. Больше двух знаков после точки - ошибка.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole := s
	frac := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("too many decimal places")
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad integer part: %w", err)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad fractional part: %w", err)
	}

	value := units*100 + cents
	if negative {
		value = -value
	}
	return value, nil
}

// FormatAmount печатает сумму в минимальных единицах как десятичную строку
func FormatAmount(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
