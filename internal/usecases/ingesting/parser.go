package ingesting

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/msouza/vendas-dashboard-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// Cabeçalhos esperados na primeira linha da planilha, por tipo.
var (
	vendasHeader = []string{"data", "produto", "categoria", "regiao", "vendedor", "quantidade", "valor_unitario", "valor_total"}
	custosHeader = []string{"produto", "custo_unitario"}
	metasHeader  = []string{"categoria", "regiao", "meta_valor"}
)

// readRecords lê a planilha inteira em memória como matriz de células.
// O formato é decidido pela extensão do arquivo: .csv ou .xlsx.
func readRecords(filename string, file io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		reader := csv.NewReader(file)
		reader.TrimLeadingSpace = true

		records, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("erro ao ler CSV: %w", err)
		}
		return records, nil

	case ".xlsx":
		workbook, err := excelize.OpenReader(file)
		if err != nil {
			return nil, fmt.Errorf("erro ao abrir XLSX: %w", err)
		}
		defer workbook.Close()

		sheets := workbook.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("arquivo XLSX sem planilhas")
		}

		records, err := workbook.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("erro ao ler XLSX: %w", err)
		}
		return records, nil

	default:
		return nil, fmt.Errorf("formato de arquivo não suportado: %s", filepath.Ext(filename))
	}
}

// headerIndexes valida a linha de cabeçalho e devolve a posição de cada
// coluna esperada. Coluna ausente é erro de parse.
func headerIndexes(header []string, expected []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.ToLower(strings.TrimSpace(name))] = i
	}

	indexes := make(map[string]int, len(expected))
	for _, name := range expected {
		index, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("coluna obrigatória ausente: %s", name)
		}
		indexes[name] = index
	}

	return indexes, nil
}

func cell(record []string, indexes map[string]int, column string) string {
	index := indexes[column]
	if index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}

func parseVendas(records [][]string) ([]*domain.Sale, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("arquivo vazio")
	}

	indexes, err := headerIndexes(records[0], vendasHeader)
	if err != nil {
		return nil, err
	}

	sales := make([]*domain.Sale, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2 // Linha da planilha, contando o cabeçalho

		date, err := time.Parse(time.DateOnly, cell(record, indexes, "data"))
		if err != nil {
			return nil, fmt.Errorf("linha %d: data inválida: %w", line, err)
		}

		quantity, err := strconv.ParseInt(cell(record, indexes, "quantidade"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("linha %d: quantidade inválida: %w", line, err)
		}

		unitValue, err := strconv.ParseFloat(cell(record, indexes, "valor_unitario"), 64)
		if err != nil {
			return nil, fmt.Errorf("linha %d: valor_unitario inválido: %w", line, err)
		}

		totalValue, err := strconv.ParseFloat(cell(record, indexes, "valor_total"), 64)
		if err != nil {
			return nil, fmt.Errorf("linha %d: valor_total inválido: %w", line, err)
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID: %w", err)
		}

		sales = append(sales, &domain.Sale{
			ID:          id,
			Date:        date,
			Product:     cell(record, indexes, "produto"),
			Category:    cell(record, indexes, "categoria"),
			Region:      cell(record, indexes, "regiao"),
			Salesperson: cell(record, indexes, "vendedor"),
			Quantity:    quantity,
			UnitValue:   unitValue,
			TotalValue:  totalValue,
		})
	}

	return sales, nil
}

func parseCustos(records [][]string) ([]*domain.Cost, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("arquivo vazio")
	}

	indexes, err := headerIndexes(records[0], custosHeader)
	if err != nil {
		return nil, err
	}

	costs := make([]*domain.Cost, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2

		unitCost, err := strconv.ParseFloat(cell(record, indexes, "custo_unitario"), 64)
		if err != nil {
			return nil, fmt.Errorf("linha %d: custo_unitario inválido: %w", line, err)
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID: %w", err)
		}

		costs = append(costs, &domain.Cost{
			ID:       id,
			Product:  cell(record, indexes, "produto"),
			UnitCost: unitCost,
		})
	}

	return costs, nil
}

func parseMetas(records [][]string) ([]*domain.Goal, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("arquivo vazio")
	}

	indexes, err := headerIndexes(records[0], metasHeader)
	if err != nil {
		return nil, err
	}

	goals := make([]*domain.Goal, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2

		targetValue, err := strconv.ParseFloat(cell(record, indexes, "meta_valor"), 64)
		if err != nil {
			return nil, fmt.Errorf("linha %d: meta_valor inválido: %w", line, err)
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID: %w", err)
		}

		goals = append(goals, &domain.Goal{
			ID:          id,
			Category:    cell(record, indexes, "categoria"),
			Region:      cell(record, indexes, "regiao"),
			TargetValue: targetValue,
		})
	}

	return goals, nil
}
