package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Totarae/EazyBank/internal/apperr"
	"github.com/Totarae/EazyBank/internal/client"
	"github.com/Totarae/EazyBank/internal/correlation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const mobile = "9876543210"

func TestLoansClient_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/fetch", r.URL.Path)
		assert.Equal(t, mobile, r.URL.Query().Get("mobileNumber"))
		assert.Equal(t, "corr-42", r.Header.Get(correlation.Header))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"mobileNumber":"9876543210","loanNumber":"LN1234567","loanType":"Home Loan","totalLoan":100000,"amountPaid":0,"outstandingAmount":100000}`))
	}))
	defer srv.Close()

	c := client.NewLoansClient(srv.URL, time.Second, zaptest.NewLogger(t))
	loan, ok, err := c.FetchLoan(context.Background(), "corr-42", mobile)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "LN1234567", loan.LoanNumber)
	assert.Equal(t, int64(100000), loan.OutstandingAmount)
}

func TestCardsClient_AbsentOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errorCode":"NOT_FOUND"}`))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}},
		{"null body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("null\n"))
		}},
		{"empty object", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := client.NewCardsClient(srv.URL, time.Second, zaptest.NewLogger(t))
			card, ok, err := c.FetchCard(context.Background(), "corr", mobile)

			assert.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, card)
		})
	}
}

func TestCardsClient_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cardNumber": `))
	}))
	defer srv.Close()

	c := client.NewCardsClient(srv.URL, time.Second, zaptest.NewLogger(t))
	card, ok, err := c.FetchCard(context.Background(), "corr", mobile)

	assert.ErrorIs(t, err, apperr.ErrMalformedDownstreamResponse)
	assert.False(t, ok)
	assert.Nil(t, card)
}

func TestLoansClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := client.NewLoansClient(srv.URL, 50*time.Millisecond, zaptest.NewLogger(t))

	start := time.Now()
	loan, ok, err := c.FetchLoan(context.Background(), "corr", mobile)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, loan)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLoansClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := client.NewLoansClient(url, time.Second, zaptest.NewLogger(t))
	_, ok, err := c.FetchLoan(context.Background(), "corr", mobile)

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLoansClient_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := client.NewLoansClient(srv.URL, time.Second, zaptest.NewLogger(t))
	_, ok, err := c.FetchLoan(ctx, "corr", mobile)

	assert.NoError(t, err)
	assert.False(t, ok)
}

// Адаптер не повторяет запрос после неудачи
func TestClient_SingleAttempt(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := client.NewCardsClient(srv.URL+"/", time.Second, zaptest.NewLogger(t))
	_, ok, _ := c.FetchCard(context.Background(), "corr", mobile)

	assert.False(t, ok)
	assert.Equal(t, int32(1), hits.Load())
}
