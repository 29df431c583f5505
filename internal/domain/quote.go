package domain

import "time"

// Quote é uma cotação de moeda coletada da fonte externa.
// A tabela é append-only: somente a tarefa de atualização escreve nela.
type Quote struct {
	ID       string    `json:"id"`
	Pair     string    `json:"moeda"`
	Value    float64   `json:"valor"`
	QuotedAt time.Time `json:"data_hora"`
}
