package awesomeclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/msouza/vendas-dashboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.Collector.URL = serverURL
	cfg.Collector.Pairs = "USD-BRL,EUR-BRL"

	return &AwesomeClient{
		httpClient: &http.Client{Timeout: time.Second},
		config:     cfg,
	}
}

func TestGetLatestQuotes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "USD-BRL,EUR-BRL")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"USDBRL": {"code": "USD", "codein": "BRL", "bid": "5.1234", "timestamp": "1710500000"},
			"EURBRL": {"code": "EUR", "codein": "BRL", "bid": "5.9876", "timestamp": "1710500000"}
		}`))
	}))
	defer server.Close()

	quotes, err := newTestClient(server.URL).GetLatestQuotes()

	require.NoError(t, err)
	require.Len(t, quotes, 2)

	byPair := make(map[string]float64, len(quotes))
	for _, quote := range quotes {
		assert.Len(t, quote.ID, 6)
		assert.Equal(t, time.Unix(1710500000, 0), quote.QuotedAt)
		byPair[quote.Pair] = quote.Value
	}

	assert.Equal(t, 5.1234, byPair["USD-BRL"])
	assert.Equal(t, 5.9876, byPair["EUR-BRL"])
}

func TestGetLatestQuotes_StatusInesperado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetLatestQuotes()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "falhou com status")
}

func TestGetLatestQuotes_CotacaoInvalida(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"USDBRL": {"code": "USD", "codein": "BRL", "bid": "abc"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetLatestQuotes()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cotação inválida")
}
