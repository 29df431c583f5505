package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/msouza/vendas-dashboard-api/infrastructure/database/postgres"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
)

const (
	costsTable = "custos"
)

type CostRepository interface {
	UpsertMany(ctx context.Context, costs []*domain.Cost) error
}

type costRepository struct {
	conn *postgres.Connection
}

func NewCostRepository(conn *postgres.Connection) CostRepository {
	return &costRepository{
		conn: conn,
	}
}

// UpsertMany grava os custos em uma única transação. Custos são chaveados
// por produto: um produto repetido atualiza o custo vigente.
func (r *costRepository) UpsertMany(ctx context.Context, costs []*domain.Cost) error {
	if len(costs) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, cost := range costs {
			query, args, err := squirrel.
				Insert(costsTable).
				Columns("id", "produto", "custo_unitario").
				Values(cost.ID, cost.Product, cost.UnitCost).
				Suffix(`
					ON CONFLICT (produto) DO UPDATE SET
						custo_unitario = EXCLUDED.custo_unitario,
						data_atualizacao = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}
