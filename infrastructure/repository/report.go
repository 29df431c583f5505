package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/msouza/vendas-dashboard-api/infrastructure/database/postgres"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
)

// ReportRepository busca linhas tabulares genéricas para o gerador de
// relatórios. A tabela, as colunas e a coluna de data vêm do descritor
// explícito registrado por tipo de relatório; nenhuma introspecção de
// linha é feita aqui.
type ReportRepository interface {
	FetchRows(ctx context.Context, table string, columns []string, dateColumn string, periodo domain.Periodo) ([][]string, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) FetchRows(ctx context.Context, table string, columns []string, dateColumn string, periodo domain.Periodo) ([][]string, error) {
	// Todas as colunas saem como texto: o relatório só formata valores.
	selected := make([]string, 0, len(columns))
	for _, column := range columns {
		selected = append(selected, fmt.Sprintf("%s::text", column))
	}

	builder := squirrel.
		Select(selected...).
		From(table).
		OrderBy(dateColumn + " ASC").
		PlaceholderFormat(squirrel.Dollar)

	if periodo.Inicio != nil {
		builder = builder.Where(squirrel.GtOrEq{dateColumn: periodo.Inicio.Format(time.DateOnly)})
	}
	if periodo.Fim != nil {
		// O limite superior é inclusivo também para colunas timestamp.
		builder = builder.Where(squirrel.Lt{dateColumn: periodo.Fim.AddDate(0, 0, 1).Format(time.DateOnly)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([][]string, 0)
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		scanTargets := make([]interface{}, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}

		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha do relatório: %w", err)
		}

		row := make([]string, len(columns))
		for i, value := range values {
			row[i] = value.String
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}
