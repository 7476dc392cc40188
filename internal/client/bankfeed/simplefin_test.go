package bankfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleFIN_FetchAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts", r.URL.Path)
		assert.Equal(t, "feed-acct-1", r.URL.Query().Get("account"))
		assert.NotEmpty(t, r.URL.Query().Get("start-date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"accounts": [{
				"id": "feed-acct-1",
				"name": "Checking",
				"balance": "1050.00",
				"transactions": [
					{"id": "t-old", "posted": 1696118400, "amount": "-12.50", "description": "COFFEE SHOP", "pending": false},
					{"id": "t-new", "posted": 1696204800, "amount": "-30.00", "description": "CARD PAYMENT", "payee": "Grocer", "pending": true}
				]
			}]
		}`))
	}))
	defer server.Close()

	provider := NewSimpleFIN(server.URL, map[string]string{"local-1": "feed-acct-1"})

	feed, err := provider.FetchAccount(context.Background(), "local-1", time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, int64(105000), feed.Balance)
	require.Len(t, feed.Transactions, 2)

	// порядок от новых к старым
	assert.Equal(t, "t-new", feed.Transactions[0].ImportedID)
	assert.Equal(t, "Grocer", feed.Transactions[0].PayeeName)
	assert.False(t, feed.Transactions[0].Booked)

	assert.Equal(t, "t-old", feed.Transactions[1].ImportedID)
	assert.Equal(t, "COFFEE SHOP", feed.Transactions[1].PayeeName, "payee falls back to description")
	assert.Equal(t, int64(-1250), feed.Transactions[1].Amount)
	assert.True(t, feed.Transactions[1].Booked)
}

func TestSimpleFIN_FetchAccount_NotLinked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accounts": []}`))
	}))
	defer server.Close()

	provider := NewSimpleFIN(server.URL, nil)

	_, err := provider.FetchAccount(context.Background(), "missing", time.Time{})
	require.ErrorIs(t, err, ErrAccountNotLinked)
}

func TestSimpleFIN_FetchAccount_FeedErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accounts": [], "errors": ["Connection to institution failed"]}`))
	}))
	defer server.Close()

	provider := NewSimpleFIN(server.URL, nil)

	_, err := provider.FetchAccount(context.Background(), "acct", time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Connection to institution failed")
}
