package domain

import "time"

// Periodo delimita um intervalo inclusivo de datas para as agregações.
// Qualquer limite nil significa "sem filtro" naquele lado.
type Periodo struct {
	Inicio *time.Time
	Fim    *time.Time
}

// Linhas agregadas retornadas pelo repositório de analytics.

type KPIRow struct {
	ReceitaTotal float64
	NumVendas    int64
	TicketMedio  float64
}

type VendaPorDia struct {
	Data       time.Time
	Valor      float64
	Quantidade int64
}

type VendaPorDimensao struct {
	Label      string
	Valor      float64
	Quantidade int64
}

type MargemPorCategoria struct {
	Categoria string
	Vendas    float64
	Custos    float64
	Lucro     float64
}

type MetaComparada struct {
	Categoria string
	Regiao    string
	Vendas    float64
	Meta      float64
}

type TotalMensal struct {
	Ano   int
	Mes   int
	Total float64
}

type VendaPorVendedor struct {
	Vendedor string
	Total    float64
}

type FunilCategoriaRow struct {
	Categoria   string
	TotalVendas float64
	NumVendas   int64
}

type TotalPorDia struct {
	Dia   int
	Total float64
}
