package domain

// Payloads prontos para consumo direto pelos gráficos do dashboard.
// As chaves JSON seguem o contrato original do frontend (Chart.js).

type KPIsResponse struct {
	ReceitaTotal float64 `json:"receita_total"`
	NumVendas    int64   `json:"num_vendas"`
	TicketMedio  float64 `json:"ticket_medio"`
}

// VendasChart serve as séries de vendas no tempo, por categoria e o top
// de produtos: labels, valores e quantidades paralelos.
type VendasChart struct {
	Labels      []string  `json:"labels"`
	Valores     []float64 `json:"valores"`
	Quantidades []int64   `json:"quantidades"`
}

type VendasRegiaoChart struct {
	Labels      []string  `json:"labels"`
	Valores     []float64 `json:"valores"`
	Percentuais []float64 `json:"percentuais"`
}

type MargemLucroChart struct {
	Labels []string  `json:"labels"`
	Vendas []float64 `json:"vendas"`
	Custos []float64 `json:"custos"`
	Lucros []float64 `json:"lucros"`
}

type MetasChart struct {
	Categorias []string  `json:"categorias"`
	Regioes    []string  `json:"regioes"`
	Vendas     []float64 `json:"vendas"`
	Metas      []float64 `json:"metas"`
	Percentual []float64 `json:"percentual"`
}

type TendenciaMensalChart struct {
	Labels                []string  `json:"labels"`
	Valores               []float64 `json:"valores"`
	CrescimentoPercentual []float64 `json:"crescimento_percentual"`
}

type VendedorChart struct {
	Labels  []string  `json:"labels"`
	Valores []float64 `json:"valores"`
}

// FunilCategoriaChart carrega visitas e orçamentos SIMULADOS a partir das
// vendas (vendas × 3 e vendas × 1.5). Não são dados medidos.
type FunilCategoriaChart struct {
	Categorias []string  `json:"categorias"`
	Visitas    []float64 `json:"visitas"`
	Orcamentos []float64 `json:"orcamentos"`
	Vendas     []float64 `json:"vendas"`
}

// MesesChart compara vendas diárias entre meses selecionados. O eixo
// Datas tem o tamanho do mês mais longo entre os selecionados.
type MesesChart struct {
	Datas    []string     `json:"datas"`
	Datasets []MesDataset `json:"datasets"`
}

type MesDataset struct {
	Label           string    `json:"label"` // Formato mm-yyyy (ex: 01-2024)
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	Tension         float64   `json:"tension"`
}
