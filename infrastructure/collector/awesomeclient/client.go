// Package awesomeclient implementa o cliente HTTP da AwesomeAPI, a
// fonte externa de cotações de moedas.
package awesomeclient

import (
	"net/http"
	"time"

	"github.com/msouza/vendas-dashboard-api/internal/config"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
)

type Client interface {
	GetLatestQuotes() ([]*domain.Quote, error)
}

type AwesomeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AwesomeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
