package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/msouza/vendas-dashboard-api/infrastructure/repository/mocks"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockAnalyticsRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)

	return &Service{repo: mockRepo, limite: defaultTopProdutosLimite}, mockRepo
}

func TestKPIs_PeriodoSemVendas(t *testing.T) {
	service, mockRepo := newTestService(t)

	// Período sem nenhuma venda: zeros, nunca erro
	mockRepo.EXPECT().
		KPIs(gomock.Any(), gomock.Any()).
		Return(&domain.KPIRow{}, nil)

	kpis, err := service.KPIs(context.Background(), domain.Periodo{})

	require.NoError(t, err)
	assert.Equal(t, 0.0, kpis.ReceitaTotal)
	assert.Equal(t, int64(0), kpis.NumVendas)
	assert.Equal(t, 0.0, kpis.TicketMedio)
}

func TestVendasAoLongoDoTempo(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().
		VendasPorDia(gomock.Any(), gomock.Any()).
		Return([]*domain.VendaPorDia{
			{Data: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Valor: 1200.50, Quantidade: 4},
			{Data: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Valor: 800, Quantidade: 2},
		}, nil)

	chart, err := service.VendasAoLongoDoTempo(context.Background(), domain.Periodo{})

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, chart.Labels)
	assert.Equal(t, []float64{1200.50, 800}, chart.Valores)
	assert.Equal(t, []int64{4, 2}, chart.Quantidades)
}

func TestVendasPorRegiao(t *testing.T) {
	tests := []struct {
		name                string
		vendas              []*domain.VendaPorDimensao
		expectedPercentuais []float64
	}{
		{
			name: "Percentuais somam 100 quando há vendas",
			vendas: []*domain.VendaPorDimensao{
				{Label: "Sudeste", Valor: 750, Quantidade: 3},
				{Label: "Sul", Valor: 250, Quantidade: 1},
			},
			expectedPercentuais: []float64{75, 25},
		},
		{
			name: "Total zero reporta participação zero para todas as regiões",
			vendas: []*domain.VendaPorDimensao{
				{Label: "Sudeste", Valor: 0},
				{Label: "Sul", Valor: 0},
			},
			expectedPercentuais: []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := newTestService(t)

			mockRepo.EXPECT().
				VendasPorRegiao(gomock.Any(), gomock.Any()).
				Return(tt.vendas, nil)

			chart, err := service.VendasPorRegiao(context.Background(), domain.Periodo{})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPercentuais, chart.Percentuais)
		})
	}
}

func TestTopProdutos_LimiteInvalidoUsaPadrao(t *testing.T) {
	service, mockRepo := newTestService(t)

	// Limite não positivo cai no padrão configurado
	mockRepo.EXPECT().
		TopProdutos(gomock.Any(), gomock.Any(), uint64(defaultTopProdutosLimite)).
		Return([]*domain.VendaPorDimensao{}, nil)

	_, err := service.TopProdutos(context.Background(), domain.Periodo{}, -1)
	require.NoError(t, err)
}

func TestTopProdutos_LimiteExplicito(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().
		TopProdutos(gomock.Any(), gomock.Any(), uint64(5)).
		Return([]*domain.VendaPorDimensao{
			{Label: "Notebook Pro 15", Valor: 9000, Quantidade: 2},
		}, nil)

	chart, err := service.TopProdutos(context.Background(), domain.Periodo{}, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"Notebook Pro 15"}, chart.Labels)
}

func TestMargemLucro(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().
		MargemPorCategoria(gomock.Any(), gomock.Any()).
		Return([]*domain.MargemPorCategoria{
			{Categoria: "Eletrônicos", Vendas: 10000, Custos: 6500, Lucro: 3500},
		}, nil)

	chart, err := service.MargemLucro(context.Background(), domain.Periodo{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Eletrônicos"}, chart.Labels)
	assert.Equal(t, []float64{10000}, chart.Vendas)
	assert.Equal(t, []float64{6500}, chart.Custos)
	assert.Equal(t, []float64{3500}, chart.Lucros)
}

func TestCompararMetas(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().
		MetasComparadas(gomock.Any(), gomock.Any()).
		Return([]*domain.MetaComparada{
			{Categoria: "Eletrônicos", Regiao: "Sudeste", Vendas: 50000, Meta: 100000},
			// Meta zerada não divide por zero
			{Categoria: "Móveis", Regiao: "Sul", Vendas: 1500, Meta: 0},
			// Meta sem nenhuma venda no período
			{Categoria: "Periféricos", Regiao: "Nordeste", Vendas: 0, Meta: 20000},
		}, nil)

	chart, err := service.CompararMetas(context.Background(), domain.Periodo{})

	require.NoError(t, err)
	assert.Equal(t, []float64{50, 0, 0}, chart.Percentual)
	assert.Equal(t, []float64{50000, 1500, 0}, chart.Vendas)
	assert.Equal(t, []float64{100000, 0, 20000}, chart.Metas)
}

func TestTendenciaMensal(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().
		TotaisMensais(gomock.Any(), gomock.Any()).
		Return([]*domain.TotalMensal{
			{Ano: 2024, Mes: 1, Total: 1000},
			{Ano: 2024, Mes: 2, Total: 1500},
			{Ano: 2024, Mes: 3, Total: 0},
			{Ano: 2024, Mes: 4, Total: 800},
		}, nil)

	chart, err := service.TendenciaMensal(context.Background(), domain.Periodo{})

	require.NoError(t, err)
	assert.Equal(t, []string{"01/2024", "02/2024", "03/2024", "04/2024"}, chart.Labels)
	// Primeiro mês e mês precedido por total zero reportam crescimento 0
	assert.Equal(t, []float64{0, 50, -100, 0}, chart.CrescimentoPercentual)
}

func TestFunilPorCategoria_EstagiosSimulados(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().
		FunilPorCategoria(gomock.Any(), gomock.Any()).
		Return([]*domain.FunilCategoriaRow{
			{Categoria: "Eletrônicos", TotalVendas: 1000},
		}, nil)

	chart, err := service.FunilPorCategoria(context.Background(), domain.Periodo{})

	require.NoError(t, err)
	assert.Equal(t, []float64{3000}, chart.Visitas)
	assert.Equal(t, []float64{1500}, chart.Orcamentos)
	assert.Equal(t, []float64{1000}, chart.Vendas)
}

func TestVendasPorMeses(t *testing.T) {
	service, mockRepo := newTestService(t)

	// Janeiro: vendas nos dias 1 e 31
	mockRepo.EXPECT().
		TotaisPorDia(gomock.Any(),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)).
		Return([]*domain.TotalPorDia{
			{Dia: 1, Total: 500},
			{Dia: 31, Total: 700},
		}, nil)

	// Fevereiro bissexto: venda no dia 29
	mockRepo.EXPECT().
		TotaisPorDia(gomock.Any(),
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)).
		Return([]*domain.TotalPorDia{
			{Dia: 29, Total: 300},
		}, nil)

	chart, err := service.VendasPorMeses(context.Background(), []string{"2024-01", "2024-02"})

	require.NoError(t, err)

	// Eixo cobre o mês mais longo
	require.Len(t, chart.Datas, 31)
	assert.Equal(t, "1", chart.Datas[0])
	assert.Equal(t, "31", chart.Datas[30])

	require.Len(t, chart.Datasets, 2)

	janeiro := chart.Datasets[0]
	assert.Equal(t, "01-2024", janeiro.Label)
	require.Len(t, janeiro.Data, 31)
	assert.Equal(t, 500.0, janeiro.Data[0])
	assert.Equal(t, 0.0, janeiro.Data[14])
	assert.Equal(t, 700.0, janeiro.Data[30])

	fevereiro := chart.Datasets[1]
	assert.Equal(t, "02-2024", fevereiro.Label)
	require.Len(t, fevereiro.Data, 29)
	assert.Equal(t, 300.0, fevereiro.Data[28])
}

func TestVendasPorMeses_SeletoresInvalidosIgnorados(t *testing.T) {
	service, _ := newTestService(t)

	// Nenhum seletor válido: nenhuma query, gráfico vazio
	chart, err := service.VendasPorMeses(context.Background(), []string{"", "2024-13", "abc"})

	require.NoError(t, err)
	assert.Empty(t, chart.Datas)
	assert.Empty(t, chart.Datasets)
}
