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

// AnalyticsRepository concentra as queries de agregação sobre as tabelas
// de vendas, custos e metas. Todas as operações são somente leitura e
// aceitam um período inclusivo opcional.
type AnalyticsRepository interface {
	KPIs(ctx context.Context, periodo domain.Periodo) (*domain.KPIRow, error)
	VendasPorDia(ctx context.Context, periodo domain.Periodo) ([]*domain.VendaPorDia, error)
	VendasPorCategoria(ctx context.Context, periodo domain.Periodo) ([]*domain.VendaPorDimensao, error)
	VendasPorRegiao(ctx context.Context, periodo domain.Periodo) ([]*domain.VendaPorDimensao, error)
	TopProdutos(ctx context.Context, periodo domain.Periodo, limite uint64) ([]*domain.VendaPorDimensao, error)
	MargemPorCategoria(ctx context.Context, periodo domain.Periodo) ([]*domain.MargemPorCategoria, error)
	MetasComparadas(ctx context.Context, periodo domain.Periodo) ([]*domain.MetaComparada, error)
	TotaisMensais(ctx context.Context, periodo domain.Periodo) ([]*domain.TotalMensal, error)
	VendasPorVendedor(ctx context.Context, periodo domain.Periodo) ([]*domain.VendaPorVendedor, error)
	FunilPorCategoria(ctx context.Context, periodo domain.Periodo) ([]*domain.FunilCategoriaRow, error)
	TotaisPorDia(ctx context.Context, inicio, fim time.Time) ([]*domain.TotalPorDia, error)
}

type analyticsRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsRepository(conn *postgres.Connection) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

// aplicarFiltroData adiciona os limites inclusivos do período, quando
// presentes, sobre a coluna de data informada.
func aplicarFiltroData(builder squirrel.SelectBuilder, column string, periodo domain.Periodo) squirrel.SelectBuilder {
	if periodo.Inicio != nil {
		builder = builder.Where(squirrel.GtOrEq{column: periodo.Inicio.Format(time.DateOnly)})
	}
	if periodo.Fim != nil {
		builder = builder.Where(squirrel.LtOrEq{column: periodo.Fim.Format(time.DateOnly)})
	}
	return builder
}

func (r *analyticsRepository) KPIs(ctx context.Context, periodo domain.Periodo) (*domain.KPIRow, error) {
	builder := squirrel.
		Select(
			"COALESCE(SUM(valor_total), 0)",
			"COUNT(id)",
			"COALESCE(AVG(valor_total), 0)",
		).
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = aplicarFiltroData(builder, "data", periodo)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	kpis := &domain.KPIRow{}
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&kpis.ReceitaTotal, &kpis.NumVendas, &kpis.TicketMedio); err != nil {
		return nil, fmt.Errorf("erro ao escanear KPIs: %w", err)
	}

	return kpis, nil
}

func (r *analyticsRepository) VendasPorDia(ctx context.Context, periodo domain.Periodo) ([]*domain.VendaPorDia, error) {
	builder := squirrel.
		Select("data", "SUM(valor_total)", "SUM(quantidade)").
		From(salesTable).
		GroupBy("data").
		OrderBy("data ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = aplicarFiltroData(builder, "data", periodo)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	vendas := make([]*domain.VendaPorDia, 0)
	for rows.Next() {
		venda := &domain.VendaPorDia{}
		if err := rows.Scan(&venda.Data, &venda.Valor, &venda.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por dia: %w", err)
		}
		vendas = append(vendas, venda)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendas, nil
}

func (r *analyticsRepository) VendasPorCategoria(ctx context.Context, periodo domain.Periodo) ([]*domain.VendaPorDimensao, error) {
	return r.vendasPorDimensao(ctx, "categoria", periodo, 0)
}

func (r *analyticsRepository) VendasPorRegiao(ctx context.Context, periodo domain.Periodo) ([]*domain.VendaPorDimensao, error) {
	return r.vendasPorDimensao(ctx, "regiao", periodo, 0)
}

func (r *analyticsRepository) TopProdutos(ctx context.Context, periodo domain.Periodo, limite uint64) ([]*domain.VendaPorDimensao, error) {
	return r.vendasPorDimensao(ctx, "produto", periodo, limite)
}

// vendasPorDimensao agrega valor e quantidade pela coluna informada,
// sempre em ordem decrescente de valor.
func (r *analyticsRepository) vendasPorDimensao(ctx context.Context, column string, periodo domain.Periodo, limite uint64) ([]*domain.VendaPorDimensao, error) {
	builder := squirrel.
		Select(column, "SUM(valor_total)", "SUM(quantidade)").
		From(salesTable).
		GroupBy(column).
		OrderBy("SUM(valor_total) DESC").
		PlaceholderFormat(squirrel.Dollar)

	builder = aplicarFiltroData(builder, "data", periodo)

	if limite > 0 {
		builder = builder.Limit(limite)
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

	vendas := make([]*domain.VendaPorDimensao, 0)
	for rows.Next() {
		venda := &domain.VendaPorDimensao{}
		if err := rows.Scan(&venda.Label, &venda.Valor, &venda.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por %s: %w", column, err)
		}
		vendas = append(vendas, venda)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendas, nil
}

// MargemPorCategoria junta vendas e custos pelo nome do produto (inner
// join): categorias cujos produtos não têm custo cadastrado ficam de
// fora do resultado.
func (r *analyticsRepository) MargemPorCategoria(ctx context.Context, periodo domain.Periodo) ([]*domain.MargemPorCategoria, error) {
	builder := squirrel.
		Select(
			"v.categoria",
			"SUM(v.valor_total)",
			"SUM(v.quantidade * c.custo_unitario)",
			"SUM(v.valor_total) - SUM(v.quantidade * c.custo_unitario)",
		).
		From(salesTable+" v").
		Join(costsTable + " c ON c.produto = v.produto").
		GroupBy("v.categoria").
		OrderBy("SUM(v.valor_total) DESC").
		PlaceholderFormat(squirrel.Dollar)

	builder = aplicarFiltroData(builder, "v.data", periodo)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	margens := make([]*domain.MargemPorCategoria, 0)
	for rows.Next() {
		margem := &domain.MargemPorCategoria{}
		if err := rows.Scan(&margem.Categoria, &margem.Vendas, &margem.Custos, &margem.Lucro); err != nil {
			return nil, fmt.Errorf("erro ao escanear margem por categoria: %w", err)
		}
		margens = append(margens, margem)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return margens, nil
}

// MetasComparadas retorna todas as metas com o total vendido do par
// (categoria, região) no período, 0 quando não há vendas (left join).
func (r *analyticsRepository) MetasComparadas(ctx context.Context, periodo domain.Periodo) ([]*domain.MetaComparada, error) {
	sub := squirrel.
		Select("categoria", "regiao", "SUM(valor_total) AS total_vendas").
		From(salesTable).
		GroupBy("categoria", "regiao")

	sub = aplicarFiltroData(sub, "data", periodo)

	subQuery, subArgs, err := sub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a subquery: %w", err)
	}

	builder := squirrel.
		Select(
			"m.categoria",
			"m.regiao",
			"COALESCE(v.total_vendas, 0)",
			"m.meta_valor",
		).
		From(goalsTable+" m").
		JoinClause(
			fmt.Sprintf("LEFT JOIN (%s) v ON v.categoria = m.categoria AND v.regiao = m.regiao", subQuery),
			subArgs...,
		).
		OrderBy("m.categoria ASC", "m.regiao ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metas := make([]*domain.MetaComparada, 0)
	for rows.Next() {
		meta := &domain.MetaComparada{}
		if err := rows.Scan(&meta.Categoria, &meta.Regiao, &meta.Vendas, &meta.Meta); err != nil {
			return nil, fmt.Errorf("erro ao escanear metas comparadas: %w", err)
		}
		metas = append(metas, meta)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metas, nil
}

func (r *analyticsRepository) TotaisMensais(ctx context.Context, periodo domain.Periodo) ([]*domain.TotalMensal, error) {
	builder := squirrel.
		Select(
			"EXTRACT(YEAR FROM data)::int AS ano",
			"EXTRACT(MONTH FROM data)::int AS mes",
			"SUM(valor_total)",
		).
		From(salesTable).
		GroupBy("ano", "mes").
		OrderBy("ano ASC", "mes ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = aplicarFiltroData(builder, "data", periodo)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totais := make([]*domain.TotalMensal, 0)
	for rows.Next() {
		total := &domain.TotalMensal{}
		if err := rows.Scan(&total.Ano, &total.Mes, &total.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais mensais: %w", err)
		}
		totais = append(totais, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totais, nil
}

func (r *analyticsRepository) VendasPorVendedor(ctx context.Context, periodo domain.Periodo) ([]*domain.VendaPorVendedor, error) {
	builder := squirrel.
		Select("vendedor", "COALESCE(SUM(valor_total), 0)").
		From(salesTable).
		GroupBy("vendedor").
		OrderBy("vendedor ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = aplicarFiltroData(builder, "data", periodo)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	vendas := make([]*domain.VendaPorVendedor, 0)
	for rows.Next() {
		venda := &domain.VendaPorVendedor{}
		if err := rows.Scan(&venda.Vendedor, &venda.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por vendedor: %w", err)
		}
		vendas = append(vendas, venda)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendas, nil
}

func (r *analyticsRepository) FunilPorCategoria(ctx context.Context, periodo domain.Periodo) ([]*domain.FunilCategoriaRow, error) {
	builder := squirrel.
		Select("categoria", "COALESCE(SUM(valor_total), 0)", "COUNT(id)").
		From(salesTable).
		GroupBy("categoria").
		OrderBy("categoria ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = aplicarFiltroData(builder, "data", periodo)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	funil := make([]*domain.FunilCategoriaRow, 0)
	for rows.Next() {
		row := &domain.FunilCategoriaRow{}
		if err := rows.Scan(&row.Categoria, &row.TotalVendas, &row.NumVendas); err != nil {
			return nil, fmt.Errorf("erro ao escanear funil por categoria: %w", err)
		}
		funil = append(funil, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return funil, nil
}

// TotaisPorDia soma as vendas de cada dia dentro do intervalo fechado,
// em ordem crescente de dia. Dias sem vendas não aparecem no resultado.
func (r *analyticsRepository) TotaisPorDia(ctx context.Context, inicio, fim time.Time) ([]*domain.TotalPorDia, error) {
	builder := squirrel.
		Select("EXTRACT(DAY FROM data)::int AS dia", "SUM(valor_total)").
		From(salesTable).
		Where(squirrel.GtOrEq{"data": inicio.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"data": fim.Format(time.DateOnly)}).
		GroupBy("dia").
		OrderBy("dia ASC").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totais := make([]*domain.TotalPorDia, 0)
	for rows.Next() {
		total := &domain.TotalPorDia{}
		if err := rows.Scan(&total.Dia, &total.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais por dia: %w", err)
		}
		totais = append(totais, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totais, nil
}
