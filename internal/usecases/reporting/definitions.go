package reporting

// Column descreve uma coluna do relatório: o nome no banco e o
// cabeçalho exibido.
type Column struct {
	Name   string
	Header string
}

// Definition é o descritor explícito de um tipo de relatório. Cada
// entidade registra sua tabela, suas colunas e a coluna de data usada
// no filtro de período. Nada é descoberto por introspecção.
type Definition struct {
	Tipo       string
	Titulo     string
	Table      string
	DateColumn string
	Columns    []Column
}

var definitions = map[string]Definition{
	"vendas": {
		Tipo:       "vendas",
		Titulo:     "Vendas",
		Table:      "vendas",
		DateColumn: "data",
		Columns: []Column{
			{Name: "id", Header: "ID"},
			{Name: "data", Header: "Data"},
			{Name: "produto", Header: "Produto"},
			{Name: "categoria", Header: "Categoria"},
			{Name: "regiao", Header: "Região"},
			{Name: "vendedor", Header: "Vendedor"},
			{Name: "quantidade", Header: "Quantidade"},
			{Name: "valor_unitario", Header: "Valor Unitário"},
			{Name: "valor_total", Header: "Valor Total"},
		},
	},
	"custos": {
		Tipo:       "custos",
		Titulo:     "Custos",
		Table:      "custos",
		DateColumn: "data_atualizacao",
		Columns: []Column{
			{Name: "id", Header: "ID"},
			{Name: "produto", Header: "Produto"},
			{Name: "custo_unitario", Header: "Custo Unitário"},
			{Name: "data_atualizacao", Header: "Atualizado em"},
		},
	},
	"metas": {
		Tipo:       "metas",
		Titulo:     "Metas",
		Table:      "metas",
		DateColumn: "created_at",
		Columns: []Column{
			{Name: "id", Header: "ID"},
			{Name: "categoria", Header: "Categoria"},
			{Name: "regiao", Header: "Região"},
			{Name: "meta_valor", Header: "Meta"},
			{Name: "created_at", Header: "Criado em"},
		},
	},
	"cotacoes": {
		Tipo:       "cotacoes",
		Titulo:     "Cotações",
		Table:      "cotacoes",
		DateColumn: "data_hora",
		Columns: []Column{
			{Name: "id", Header: "ID"},
			{Name: "moeda", Header: "Moeda"},
			{Name: "valor", Header: "Valor"},
			{Name: "data_hora", Header: "Data/Hora"},
		},
	},
	"uploads": {
		Tipo:       "uploads",
		Titulo:     "Uploads",
		Table:      "uploads",
		DateColumn: "created_at",
		Columns: []Column{
			{Name: "id", Header: "ID"},
			{Name: "nome_arquivo", Header: "Arquivo"},
			{Name: "tipo", Header: "Tipo"},
			{Name: "status", Header: "Status"},
			{Name: "num_registros", Header: "Registros"},
			{Name: "mensagem_erro", Header: "Mensagem de Erro"},
			{Name: "created_at", Header: "Criado em"},
		},
	},
}

// ColumnNames retorna os nomes das colunas na ordem do relatório.
func (d Definition) ColumnNames() []string {
	names := make([]string, 0, len(d.Columns))
	for _, column := range d.Columns {
		names = append(names, column.Name)
	}
	return names
}
