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
	goalsTable = "metas"
)

type GoalRepository interface {
	UpsertMany(ctx context.Context, goals []*domain.Goal) error
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

// UpsertMany grava as metas em uma única transação. O par (categoria,
// região) é único: repetições atualizam o valor da meta.
func (r *goalRepository) UpsertMany(ctx context.Context, goals []*domain.Goal) error {
	if len(goals) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, goal := range goals {
			query, args, err := squirrel.
				Insert(goalsTable).
				Columns("id", "categoria", "regiao", "meta_valor").
				Values(goal.ID, goal.Category, goal.Region, goal.TargetValue).
				Suffix(`
					ON CONFLICT (categoria, regiao) DO UPDATE SET
						meta_valor = EXCLUDED.meta_valor
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
