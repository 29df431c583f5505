package analytics

import (
	"context"

	"github.com/msouza/vendas-dashboard-api/internal/domain"
)

// Analyzer produz séries e indicadores derivados das tabelas de vendas,
// custos e metas, prontos para os gráficos do dashboard. Todas as
// operações são somente leitura e aceitam um período inclusivo opcional.
type Analyzer interface {
	// KPIs calcula receita total, número de vendas e ticket médio.
	KPIs(ctx context.Context, periodo domain.Periodo) (*domain.KPIsResponse, error)

	// VendasAoLongoDoTempo retorna a série temporal de vendas por dia.
	VendasAoLongoDoTempo(ctx context.Context, periodo domain.Periodo) (*domain.VendasChart, error)

	// VendasPorCategoria agrega vendas por categoria, decrescente por valor.
	VendasPorCategoria(ctx context.Context, periodo domain.Periodo) (*domain.VendasChart, error)

	// VendasPorRegiao agrega vendas por região com a participação
	// percentual de cada uma no total.
	VendasPorRegiao(ctx context.Context, periodo domain.Periodo) (*domain.VendasRegiaoChart, error)

	// TopProdutos retorna os produtos mais vendidos. Limite <= 0 usa o
	// padrão configurado.
	TopProdutos(ctx context.Context, periodo domain.Periodo, limite int) (*domain.VendasChart, error)

	// MargemLucro calcula vendas, custos e lucro por categoria.
	MargemLucro(ctx context.Context, periodo domain.Periodo) (*domain.MargemLucroChart, error)

	// CompararMetas compara o vendido com a meta de cada par
	// (categoria, região).
	CompararMetas(ctx context.Context, periodo domain.Periodo) (*domain.MetasChart, error)

	// TendenciaMensal retorna o crescimento percentual mês a mês.
	TendenciaMensal(ctx context.Context, periodo domain.Periodo) (*domain.TendenciaMensalChart, error)

	// VendasPorVendedor retorna o total vendido por vendedor.
	VendasPorVendedor(ctx context.Context, periodo domain.Periodo) (*domain.VendedorChart, error)

	// FunilPorCategoria monta o funil por categoria com visitas e
	// orçamentos simulados a partir das vendas.
	FunilPorCategoria(ctx context.Context, periodo domain.Periodo) (*domain.FunilCategoriaChart, error)

	// VendasPorMeses compara as vendas diárias dos meses selecionados
	// (formato YYYY-MM).
	VendasPorMeses(ctx context.Context, meses []string) (*domain.MesesChart, error)
}
