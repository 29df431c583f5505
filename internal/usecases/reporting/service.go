package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/msouza/vendas-dashboard-api/infrastructure/repository"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/msouza/vendas-dashboard-api/pkg/utils"
	"github.com/pkg/errors"
)

// ErrInvalidReportType indica um tipo de relatório fora do conjunto
// registrado. É erro de validação, não de servidor.
var ErrInvalidReportType = errors.New("tipo de relatório inválido")

// Reporter gera relatórios tabulares (registros JSON ou PDF) para um
// tipo de entidade e um período.
type Reporter interface {
	Gerar(ctx context.Context, filtros domain.ReportFilters) (*domain.ReportResult, error)
}

type Service struct {
	repo repository.ReportRepository
	now  func() time.Time
}

func NewService(repo repository.ReportRepository) Reporter {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Gerar(ctx context.Context, filtros domain.ReportFilters) (*domain.ReportResult, error) {
	def, ok := definitions[filtros.TipoRelatorio]
	if !ok {
		return nil, errors.Wrap(ErrInvalidReportType, filtros.TipoRelatorio)
	}

	periodo := domain.Periodo{
		Inicio: utils.ParseOptionalDate(filtros.DataInicio),
		Fim:    utils.ParseOptionalDate(filtros.DataFim),
	}

	rows, err := s.repo.FetchRows(ctx, def.Table, def.ColumnNames(), def.DateColumn, periodo)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar linhas do relatório: %w", err)
	}

	if filtros.ExportarPDF {
		document, err := renderPDF(def, filtros.DataInicio, filtros.DataFim, rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar PDF: %w", err)
		}

		return &domain.ReportResult{
			Document:    document,
			Filename:    fmt.Sprintf("relatorio_%s_%s.pdf", def.Tipo, s.now().Format("20060102_150405")),
			ContentType: "application/pdf",
		}, nil
	}

	dados := make([]domain.ReportRow, 0, len(rows))
	for _, row := range rows {
		record := make(domain.ReportRow, len(def.Columns))
		for i, column := range def.Columns {
			record[column.Header] = row[i]
		}
		dados = append(dados, record)
	}

	return &domain.ReportResult{Dados: dados}, nil
}
