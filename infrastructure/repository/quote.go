package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/msouza/vendas-dashboard-api/infrastructure/database/postgres"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
)

const (
	quotesTable = "cotacoes"
)

type QuoteRepository interface {
	InsertMany(ctx context.Context, quotes []*domain.Quote) error
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type quoteRepository struct {
	conn *postgres.Connection
}

func NewQuoteRepository(conn *postgres.Connection) QuoteRepository {
	return &quoteRepository{
		conn: conn,
	}
}

// InsertMany grava as cotações coletadas. A tabela é append-only.
func (r *quoteRepository) InsertMany(ctx context.Context, quotes []*domain.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(quotesTable).
		Columns("id", "moeda", "valor", "data_hora").
		PlaceholderFormat(squirrel.Dollar)

	for _, quote := range quotes {
		builder = builder.Values(quote.ID, quote.Pair, quote.Value, quote.QuotedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// DeleteOlderThan remove cotações antigas para conter o crescimento da
// tabela append-only.
func (r *quoteRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	query, args, err := squirrel.
		Delete(quotesTable).
		Where(fmt.Sprintf("data_hora < NOW() - INTERVAL '%d days'", days)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
