package reporting

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// renderPDF monta o documento A4 do relatório: título, subtítulo de
// período e grade com a linha de cabeçalho destacada. Conjuntos vazios
// viram um único aviso no lugar da tabela.
func renderPDF(def Definition, dataInicio, dataFim string, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Relatório: %s", def.Titulo)), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Período: %s a %s", periodOrDash(dataInicio), periodOrDash(dataFim))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(rows) == 0 {
		pdf.CellFormat(0, 8, tr("Nenhum dado encontrado para o período informado."), "", 1, "L", false, 0, "")
	} else {
		renderTable(pdf, tr, def, rows)
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func renderTable(pdf *gofpdf.Fpdf, tr func(string) string, def Definition, rows [][]string) {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(def.Columns))

	// Cabeçalho: fundo azul #007BFF, texto branco em negrito.
	pdf.SetFillColor(0, 123, 255)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetFont("Helvetica", "B", 8)
	for _, column := range def.Columns {
		pdf.CellFormat(colWidth, 7, tr(column.Header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 7)
	for _, row := range rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, tr(value), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func periodOrDash(date string) string {
	if date == "" {
		return "-"
	}
	return date
}
