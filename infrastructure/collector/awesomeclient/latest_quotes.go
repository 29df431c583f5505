package awesomeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/msouza/vendas-dashboard-api/pkg/utils"
)

// quotePayload é o formato de cada cotação no retorno da AwesomeAPI.
// Valores numéricos chegam como strings.
type quotePayload struct {
	Code      string `json:"code"`
	CodeIn    string `json:"codein"`
	Bid       string `json:"bid"`
	Timestamp string `json:"timestamp"`
}

// GetLatestQuotes busca a última cotação de cada par configurado.
func (c *AwesomeClient) GetLatestQuotes() ([]*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Collector.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, c.config.Collector.Pairs)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// A resposta é um objeto chaveado por par (ex: "USDBRL").
	var payload map[string]quotePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	quotes := make([]*domain.Quote, 0, len(payload))
	for _, entry := range payload {
		value, err := strconv.ParseFloat(entry.Bid, 64)
		if err != nil {
			return nil, fmt.Errorf("cotação inválida para %s%s: %w", entry.Code, entry.CodeIn, err)
		}

		quotedAt := time.Now()
		if epoch, err := strconv.ParseInt(entry.Timestamp, 10, 64); err == nil {
			quotedAt = time.Unix(epoch, 0)
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID: %w", err)
		}

		quotes = append(quotes, &domain.Quote{
			ID:       id,
			Pair:     fmt.Sprintf("%s-%s", entry.Code, entry.CodeIn),
			Value:    value,
			QuotedAt: quotedAt,
		})
	}

	return quotes, nil
}
