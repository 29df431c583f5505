package domain

// ReportFilters é o corpo de POST /relatorios/gerar. As chaves em
// camelCase vêm do frontend de relatórios.
type ReportFilters struct {
	TipoRelatorio string `json:"tipoRelatorio"`
	DataInicio    string `json:"dataInicio"`
	DataFim       string `json:"dataFim"`
	ExportarPDF   bool   `json:"exportarPDF"`
}

// ReportRow é uma linha tabular genérica: cabeçalho → valor formatado.
type ReportRow map[string]string

// ReportResult é o retorno do gerador. Quando PDF é solicitado, Document
// carrega o binário e Filename o nome de download; caso contrário Dados
// carrega os registros.
type ReportResult struct {
	Dados       []ReportRow `json:"dados,omitempty"`
	Document    []byte      `json:"-"`
	Filename    string      `json:"-"`
	ContentType string      `json:"-"`
}
