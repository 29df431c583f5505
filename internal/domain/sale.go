// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Sale é uma venda normalizada a partir de uma planilha importada.
// Registros são imutáveis depois de gravados.
type Sale struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"data"`
	Product     string    `json:"produto"`
	Category    string    `json:"categoria"`
	Region      string    `json:"regiao"`
	Salesperson string    `json:"vendedor"`
	Quantity    int64     `json:"quantidade"`
	UnitValue   float64   `json:"valor_unitario"`
	TotalValue  float64   `json:"valor_total"`
	CreatedAt   time.Time `json:"created_at"`
}

// Cost é o custo unitário vigente de um produto. Chaveado por produto;
// o join com vendas é feito pelo nome do produto.
type Cost struct {
	ID        string    `json:"id"`
	Product   string    `json:"produto"`
	UnitCost  float64   `json:"custo_unitario"`
	UpdatedAt time.Time `json:"data_atualizacao"`
}

// Goal é a meta de vendas de um par (categoria, região). Único por par.
type Goal struct {
	ID          string    `json:"id"`
	Category    string    `json:"categoria"`
	Region      string    `json:"regiao"`
	TargetValue float64   `json:"meta_valor"`
	CreatedAt   time.Time `json:"created_at"`
}
