package bankfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/bookkeeper/internal/models"
)

// ErrAccountNotLinked счет не найден в выгрузке агрегатора
var ErrAccountNotLinked = errors.New("account not found in feed")

// simpleFINAccount счет в ответе SimpleFIN-моста
type simpleFINAccount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Balance      string `json:"balance"` // десятичная строка, например "-12.34"
	Transactions []struct {
		ID          string `json:"id"`
		Posted      int64  `json:"posted"` // unix-время проведения
		Amount      string `json:"amount"`
		Description string `json:"description"`
		Payee       string `json:"payee"`
		Pending     bool   `json:"pending"`
	} `json:"transactions"`
}

type simpleFINResponse struct {
	Accounts []simpleFINAccount `json:"accounts"`
	Errors   []string           `json:"errors"`
}

// SimpleFIN банковский фид по протоколу SimpleFIN Bridge.
// Креды агрегатора зашиты в access URL, отдельной авторизации нет.
type SimpleFIN struct {
	httpClient *http.Client
	accessURL  string
	// accounts отображает идентификатор счета гроссбуха
	// в идентификатор счета у агрегатора
	accounts map[string]string
}

var _ Provider = (*SimpleFIN)(nil)

// NewSimpleFIN создает провайдер банковского фида.
// accounts может быть nil - тогда идентификаторы счетов считаются совпадающими.
func NewSimpleFIN(accessURL string, accounts map[string]string) *SimpleFIN {
	return &SimpleFIN{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		accessURL:  strings.TrimRight(accessURL, "/"),
		accounts:   accounts,
	}
}

// FetchAccount запрашивает выгрузку по счету начиная с указанной даты
func (s *SimpleFIN) FetchAccount(ctx context.Context, accountID string, since time.Time) (*FeedResult, error) {
	feedID := accountID
	if mapped, ok := s.accounts[accountID]; ok {
		feedID = mapped
	}

	q := url.Values{}
	q.Set("account", feedID)
	if !since.IsZero() {
		q.Set("start-date", strconv.FormatInt(since.Unix(), 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.accessURL+"/accounts?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed simpleFINResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("feed reported errors: %s", strings.Join(parsed.Errors, "; "))
	}

	for _, acct := range parsed.Accounts {
		if acct.ID == feedID {
			return normalizeAccount(acct)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAccountNotLinked, feedID)
}

func normalizeAccount(acct simpleFINAccount) (*FeedResult, error) {
	balance, err := models.ParseAmount(acct.Balance)
	if err != nil {
		return nil, fmt.Errorf("bad balance %q: %w", acct.Balance, err)
	}

	result := &FeedResult{Balance: balance}
	for _, tx := range acct.Transactions {
		amount, err := models.ParseAmount(tx.Amount)
		if err != nil {
			return nil, fmt.Errorf("bad amount %q in transaction %s: %w", tx.Amount, tx.ID, err)
		}
		payee := tx.Payee
		if payee == "" {
			payee = tx.Description
		}
		result.Transactions = append(result.Transactions, FeedTransaction{
			Date:       time.Unix(tx.Posted, 0).UTC(),
			ImportedID: tx.ID,
			PayeeName:  payee,
			Notes:      tx.Description,
			Amount:     amount,
			Booked:     !tx.Pending,
		})
	}

	// Банки отдают от новых к старым, но SimpleFIN порядок не гарантирует
	sort.SliceStable(result.Transactions, func(i, j int) bool {
		return result.Transactions[i].Date.After(result.Transactions[j].Date)
	})

	return result, nil
}
