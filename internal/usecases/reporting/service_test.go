package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/msouza/vendas-dashboard-api/infrastructure/repository/mocks"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockReportRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockReportRepository(ctrl)

	service := &Service{
		repo: mockRepo,
		now: func() time.Time {
			return time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
		},
	}

	return service, mockRepo
}

func TestGerar_TipoInvalido(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Gerar(context.Background(), domain.ReportFilters{TipoRelatorio: "foo"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidReportType))
}

func TestGerar_RegistrosJSON(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().
		FetchRows(gomock.Any(), "cotacoes", []string{"id", "moeda", "valor", "data_hora"}, "data_hora", gomock.Any()).
		Return([][]string{
			{"a1B2c3", "USD-BRL", "5.123456", "2024-03-01 12:00:00"},
		}, nil)

	result, err := service.Gerar(context.Background(), domain.ReportFilters{TipoRelatorio: "cotacoes"})

	require.NoError(t, err)
	require.Len(t, result.Dados, 1)
	assert.Equal(t, "USD-BRL", result.Dados[0]["Moeda"])
	assert.Equal(t, "5.123456", result.Dados[0]["Valor"])
	assert.Empty(t, result.Document)
}

func TestGerar_DatasMalformadasViramFiltroAusente(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().
		FetchRows(gomock.Any(), "vendas", gomock.Any(), "data", domain.Periodo{}).
		Return([][]string{}, nil)

	_, err := service.Gerar(context.Background(), domain.ReportFilters{
		TipoRelatorio: "vendas",
		DataInicio:    "32/13/2024",
		DataFim:       "not-a-date",
	})

	require.NoError(t, err)
}

func TestGerar_PDF(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().
		FetchRows(gomock.Any(), "vendas", gomock.Any(), "data", gomock.Any()).
		Return([][]string{
			{"a1B2c3", "2024-03-01", "Notebook Pro 15", "Eletrônicos", "Sudeste", "Maria", "2", "4500.00", "9000.00"},
		}, nil)

	result, err := service.Gerar(context.Background(), domain.ReportFilters{
		TipoRelatorio: "vendas",
		ExportarPDF:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, "relatorio_vendas_20240315_103045.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.NotEmpty(t, result.Document)
	// Cabeçalho padrão de arquivos PDF
	assert.Equal(t, "%PDF", string(result.Document[:4]))
}

func TestGerar_PDFSemRegistros(t *testing.T) {
	service, mockRepo := newTestService(t)

	mockRepo.EXPECT().
		FetchRows(gomock.Any(), "metas", gomock.Any(), "created_at", gomock.Any()).
		Return([][]string{}, nil)

	result, err := service.Gerar(context.Background(), domain.ReportFilters{
		TipoRelatorio: "metas",
		ExportarPDF:   true,
	})

	// Conjunto vazio gera o PDF com o aviso, nunca erro
	require.NoError(t, err)
	assert.NotEmpty(t, result.Document)
}

func TestDefinitions_TodosOsTiposRegistrados(t *testing.T) {
	for _, tipo := range []string{"vendas", "custos", "metas", "cotacoes", "uploads"} {
		def, ok := definitions[tipo]
		require.True(t, ok, "tipo %s não registrado", tipo)
		assert.Equal(t, tipo, def.Tipo)
		assert.NotEmpty(t, def.Table)
		assert.NotEmpty(t, def.DateColumn)
		assert.NotEmpty(t, def.Columns)
		assert.Len(t, def.ColumnNames(), len(def.Columns))
	}
}
