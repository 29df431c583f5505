package analytics

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/msouza/vendas-dashboard-api/infrastructure/repository"
	"github.com/msouza/vendas-dashboard-api/internal/config"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/msouza/vendas-dashboard-api/pkg/utils"
)

const defaultTopProdutosLimite = 10

type Service struct {
	repo   repository.AnalyticsRepository
	limite int
}

func NewService(cfg *config.Config, repo repository.AnalyticsRepository) Analyzer {
	limite := defaultTopProdutosLimite
	if cfg != nil && cfg.Analytics.TopProdutosLimite > 0 {
		limite = cfg.Analytics.TopProdutosLimite
	}

	return &Service{
		repo:   repo,
		limite: limite,
	}
}

func (s *Service) KPIs(ctx context.Context, periodo domain.Periodo) (*domain.KPIsResponse, error) {
	kpis, err := s.repo.KPIs(ctx, periodo)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular KPIs: %w", err)
	}

	return &domain.KPIsResponse{
		ReceitaTotal: kpis.ReceitaTotal,
		NumVendas:    kpis.NumVendas,
		TicketMedio:  kpis.TicketMedio,
	}, nil
}

func (s *Service) VendasAoLongoDoTempo(ctx context.Context, periodo domain.Periodo) (*domain.VendasChart, error) {
	vendas, err := s.repo.VendasPorDia(ctx, periodo)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por dia: %w", err)
	}

	chart := newVendasChart(len(vendas))
	for _, venda := range vendas {
		chart.Labels = append(chart.Labels, venda.Data.Format(time.DateOnly))
		chart.Valores = append(chart.Valores, venda.Valor)
		chart.Quantidades = append(chart.Quantidades, venda.Quantidade)
	}

	return chart, nil
}

func (s *Service) VendasPorCategoria(ctx context.Context, periodo domain.Periodo) (*domain.VendasChart, error) {
	vendas, err := s.repo.VendasPorCategoria(ctx, periodo)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por categoria: %w", err)
	}

	return dimensaoParaChart(vendas), nil
}

func (s *Service) VendasPorRegiao(ctx context.Context, periodo domain.Periodo) (*domain.VendasRegiaoChart, error) {
	vendas, err := s.repo.VendasPorRegiao(ctx, periodo)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por região: %w", err)
	}

	var total float64
	for _, venda := range vendas {
		total += venda.Valor
	}

	chart := &domain.VendasRegiaoChart{
		Labels:      make([]string, 0, len(vendas)),
		Valores:     make([]float64, 0, len(vendas)),
		Percentuais: make([]float64, 0, len(vendas)),
	}

	for _, venda := range vendas {
		chart.Labels = append(chart.Labels, venda.Label)
		chart.Valores = append(chart.Valores, venda.Valor)

		// Total zero significa participação zero para todas as regiões.
		percentual := 0.0
		if total > 0 {
			percentual = utils.RoundWithTwoDecimalPlace(venda.Valor / total * 100)
		}
		chart.Percentuais = append(chart.Percentuais, percentual)
	}

	return chart, nil
}

func (s *Service) TopProdutos(ctx context.Context, periodo domain.Periodo, limite int) (*domain.VendasChart, error) {
	if limite <= 0 {
		limite = s.limite
	}

	vendas, err := s.repo.TopProdutos(ctx, periodo, uint64(limite))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar top produtos: %w", err)
	}

	return dimensaoParaChart(vendas), nil
}

// MargemLucro calcula vendas - (quantidade × custo unitário) por
// categoria. O join com custos é inner join por produto: categorias sem
// nenhum custo cadastrado não aparecem no resultado. Limitação
// conhecida, herdada do modelo de dados.
func (s *Service) MargemLucro(ctx context.Context, periodo domain.Periodo) (*domain.MargemLucroChart, error) {
	margens, err := s.repo.MargemPorCategoria(ctx, periodo)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular margem de lucro: %w", err)
	}

	chart := &domain.MargemLucroChart{
		Labels: make([]string, 0, len(margens)),
		Vendas: make([]float64, 0, len(margens)),
		Custos: make([]float64, 0, len(margens)),
		Lucros: make([]float64, 0, len(margens)),
	}

	for _, margem := range margens {
		chart.Labels = append(chart.Labels, margem.Categoria)
		chart.Vendas = append(chart.Vendas, margem.Vendas)
		chart.Custos = append(chart.Custos, margem.Custos)
		chart.Lucros = append(chart.Lucros, margem.Lucro)
	}

	return chart, nil
}

// CompararMetas retorna todas as metas com o percentual atingido no
// período. Meta com valor zero reporta percentual 0 em vez de divisão
// por zero.
func (s *Service) CompararMetas(ctx context.Context, periodo domain.Periodo) (*domain.MetasChart, error) {
	metas, err := s.repo.MetasComparadas(ctx, periodo)
	if err != nil {
		return nil, fmt.Errorf("erro ao comparar metas: %w", err)
	}

	chart := &domain.MetasChart{
		Categorias: make([]string, 0, len(metas)),
		Regioes:    make([]string, 0, len(metas)),
		Vendas:     make([]float64, 0, len(metas)),
		Metas:      make([]float64, 0, len(metas)),
		Percentual: make([]float64, 0, len(metas)),
	}

	for _, meta := range metas {
		chart.Categorias = append(chart.Categorias, meta.Categoria)
		chart.Regioes = append(chart.Regioes, meta.Regiao)
		chart.Vendas = append(chart.Vendas, meta.Vendas)
		chart.Metas = append(chart.Metas, meta.Meta)

		percentual := 0.0
		if meta.Meta > 0 {
			percentual = utils.RoundWithTwoDecimalPlace(meta.Vendas / meta.Meta * 100)
		}
		chart.Percentual = append(chart.Percentual, percentual)
	}

	return chart, nil
}

// TendenciaMensal calcula o crescimento percentual mês a mês. O primeiro
// mês reporta sempre 0; um mês precedido por total zero também reporta 0.
func (s *Service) TendenciaMensal(ctx context.Context, periodo domain.Periodo) (*domain.TendenciaMensalChart, error) {
	totais, err := s.repo.TotaisMensais(ctx, periodo)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular tendência mensal: %w", err)
	}

	chart := &domain.TendenciaMensalChart{
		Labels:                make([]string, 0, len(totais)),
		Valores:               make([]float64, 0, len(totais)),
		CrescimentoPercentual: make([]float64, 0, len(totais)),
	}

	var anterior float64
	for i, total := range totais {
		chart.Labels = append(chart.Labels, fmt.Sprintf("%02d/%d", total.Mes, total.Ano))
		chart.Valores = append(chart.Valores, total.Total)

		crescimento := 0.0
		if i > 0 && anterior > 0 {
			crescimento = utils.RoundWithTwoDecimalPlace((total.Total - anterior) / anterior * 100)
		}
		chart.CrescimentoPercentual = append(chart.CrescimentoPercentual, crescimento)

		anterior = total.Total
	}

	return chart, nil
}

func (s *Service) VendasPorVendedor(ctx context.Context, periodo domain.Periodo) (*domain.VendedorChart, error) {
	vendas, err := s.repo.VendasPorVendedor(ctx, periodo)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por vendedor: %w", err)
	}

	chart := &domain.VendedorChart{
		Labels:  make([]string, 0, len(vendas)),
		Valores: make([]float64, 0, len(vendas)),
	}

	for _, venda := range vendas {
		chart.Labels = append(chart.Labels, venda.Vendedor)
		chart.Valores = append(chart.Valores, venda.Total)
	}

	return chart, nil
}

// FunilPorCategoria monta o funil de vendas por categoria. ATENÇÃO:
// visitas (vendas × 3) e orçamentos (vendas × 1.5) são SIMULADOS a
// partir do total vendido, não são dados medidos.
func (s *Service) FunilPorCategoria(ctx context.Context, periodo domain.Periodo) (*domain.FunilCategoriaChart, error) {
	funil, err := s.repo.FunilPorCategoria(ctx, periodo)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar funil por categoria: %w", err)
	}

	chart := &domain.FunilCategoriaChart{
		Categorias: make([]string, 0, len(funil)),
		Visitas:    make([]float64, 0, len(funil)),
		Orcamentos: make([]float64, 0, len(funil)),
		Vendas:     make([]float64, 0, len(funil)),
	}

	for _, row := range funil {
		chart.Categorias = append(chart.Categorias, row.Categoria)
		chart.Vendas = append(chart.Vendas, row.TotalVendas)
		chart.Orcamentos = append(chart.Orcamentos, row.TotalVendas*1.5)
		chart.Visitas = append(chart.Visitas, row.TotalVendas*3)
	}

	return chart, nil
}

// VendasPorMeses gera uma série diária por mês selecionado, com zeros
// nos dias sem vendas. O eixo de dias cobre o mês mais longo entre os
// selecionados: meses mais curtos ficam com o fim do eixo vazio.
// Seletores vazios ou malformados são ignorados.
func (s *Service) VendasPorMeses(ctx context.Context, meses []string) (*domain.MesesChart, error) {
	chart := &domain.MesesChart{
		Datas:    make([]string, 0),
		Datasets: make([]domain.MesDataset, 0, len(meses)),
	}

	maxDias := 0
	for _, mes := range meses {
		if mes == "" {
			continue
		}

		inicio, err := time.Parse("2006-01", mes)
		if err != nil {
			continue
		}

		fim := inicio.AddDate(0, 1, 0).AddDate(0, 0, -1)
		numDias := fim.Day()

		totais, err := s.repo.TotaisPorDia(ctx, inicio, fim)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar vendas do mês %s: %w", mes, err)
		}

		data := make([]float64, numDias)
		for _, total := range totais {
			if total.Dia >= 1 && total.Dia <= numDias {
				data[total.Dia-1] = total.Total
			}
		}

		chart.Datasets = append(chart.Datasets, domain.MesDataset{
			Label:           inicio.Format("01-2006"),
			Data:            data,
			BorderColor:     fmt.Sprintf("#%06x", rand.Intn(0x1000000)),
			BackgroundColor: "transparent",
			Tension:         0.3,
		})

		if numDias > maxDias {
			maxDias = numDias
		}
	}

	for dia := 1; dia <= maxDias; dia++ {
		chart.Datas = append(chart.Datas, strconv.Itoa(dia))
	}

	return chart, nil
}

func newVendasChart(capacity int) *domain.VendasChart {
	return &domain.VendasChart{
		Labels:      make([]string, 0, capacity),
		Valores:     make([]float64, 0, capacity),
		Quantidades: make([]int64, 0, capacity),
	}
}

func dimensaoParaChart(vendas []*domain.VendaPorDimensao) *domain.VendasChart {
	chart := newVendasChart(len(vendas))
	for _, venda := range vendas {
		chart.Labels = append(chart.Labels, venda.Label)
		chart.Valores = append(chart.Valores, venda.Valor)
		chart.Quantidades = append(chart.Quantidades, venda.Quantidade)
	}
	return chart
}
