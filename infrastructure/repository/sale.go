package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/msouza/vendas-dashboard-api/infrastructure/database/postgres"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
)

const (
	salesTable = "vendas"
)

type SaleRepository interface {
	InsertMany(ctx context.Context, sales []*domain.Sale) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// InsertMany grava todas as vendas em uma única transação. Se qualquer
// linha falhar, nada é persistido.
func (r *saleRepository) InsertMany(ctx context.Context, sales []*domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		builder := squirrel.
			Insert(salesTable).
			Columns("id", "data", "produto", "categoria", "regiao", "vendedor", "quantidade", "valor_unitario", "valor_total").
			PlaceholderFormat(squirrel.Dollar)

		for _, sale := range sales {
			builder = builder.Values(
				sale.ID,
				sale.Date.Format(time.DateOnly),
				sale.Product,
				sale.Category,
				sale.Region,
				sale.Salesperson,
				sale.Quantity,
				sale.UnitValue,
				sale.TotalValue,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao executar a query: %w", err)
		}

		return nil
	})
}
