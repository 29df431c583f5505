package ingesting

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/msouza/vendas-dashboard-api/infrastructure/repository/mocks"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testRepos struct {
	upload *mocks.MockUploadRepository
	sale   *mocks.MockSaleRepository
	cost   *mocks.MockCostRepository
	goal   *mocks.MockGoalRepository
}

func newTestService(t *testing.T) (Ingester, testRepos) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repos := testRepos{
		upload: mocks.NewMockUploadRepository(ctrl),
		sale:   mocks.NewMockSaleRepository(ctrl),
		cost:   mocks.NewMockCostRepository(ctrl),
		goal:   mocks.NewMockGoalRepository(ctrl),
	}

	return NewService(repos.upload, repos.sale, repos.cost, repos.goal), repos
}

func vendasCSV(rows int) string {
	var sb strings.Builder
	sb.WriteString("data,produto,categoria,regiao,vendedor,quantidade,valor_unitario,valor_total\n")
	for i := 0; i < rows; i++ {
		sb.WriteString(fmt.Sprintf("2024-03-%02d,Notebook Pro 15,Eletrônicos,Sudeste,Maria,%d,4500.00,%d\n", i+1, i+1, (i+1)*4500))
	}
	return sb.String()
}

func TestProcessarUpload_VendasComSucesso(t *testing.T) {
	service, repos := newTestService(t)

	repos.upload.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	repos.sale.EXPECT().
		InsertMany(gomock.Any(), gomock.Len(10)).
		Return(nil)

	repos.upload.EXPECT().
		Finalize(gomock.Any(), gomock.Any(), domain.UploadStatusSuccess, 10, "").
		Return(nil)

	upload, err := service.ProcessarUpload(context.Background(), "vendas.csv", "vendas", strings.NewReader(vendasCSV(10)))

	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatusSuccess, upload.Status)
	assert.Equal(t, 10, upload.RowCount)
	assert.NotEmpty(t, upload.ID)
}

func TestProcessarUpload_LinhaMalformada(t *testing.T) {
	service, repos := newTestService(t)

	// Data inválida na linha 3: nada é inserido e o upload fecha com erro
	content := "data,produto,categoria,regiao,vendedor,quantidade,valor_unitario,valor_total\n" +
		"2024-03-01,Mouse Sem Fio,Periféricos,Sul,João,1,120.00,120.00\n" +
		"31/02/2024,Mouse Sem Fio,Periféricos,Sul,João,1,120.00,120.00\n"

	repos.upload.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	repos.upload.EXPECT().
		Finalize(gomock.Any(), gomock.Any(), domain.UploadStatusError, 0, gomock.Any()).
		Return(nil)

	upload, err := service.ProcessarUpload(context.Background(), "vendas.csv", "vendas", strings.NewReader(content))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "linha 3")
	assert.Equal(t, domain.UploadStatusError, upload.Status)
	assert.NotEmpty(t, upload.ErrorMessage)
}

func TestProcessarUpload_ColunaAusente(t *testing.T) {
	service, repos := newTestService(t)

	content := "produto,custo\nMouse Sem Fio,65.00\n"

	repos.upload.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	repos.upload.EXPECT().
		Finalize(gomock.Any(), gomock.Any(), domain.UploadStatusError, 0, gomock.Any()).
		Return(nil)

	_, err := service.ProcessarUpload(context.Background(), "custos.csv", "custos", strings.NewReader(content))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "custo_unitario")
}

func TestProcessarUpload_TipoInvalido(t *testing.T) {
	service, repos := newTestService(t)

	repos.upload.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	repos.upload.EXPECT().
		Finalize(gomock.Any(), gomock.Any(), domain.UploadStatusError, 0, gomock.Any()).
		Return(nil)

	_, err := service.ProcessarUpload(context.Background(), "dados.csv", "estoque", strings.NewReader("a,b\n1,2\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo de upload inválido")
}

func TestProcessarUpload_FormatoNaoSuportado(t *testing.T) {
	service, repos := newTestService(t)

	repos.upload.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	repos.upload.EXPECT().
		Finalize(gomock.Any(), gomock.Any(), domain.UploadStatusError, 0, gomock.Any()).
		Return(nil)

	_, err := service.ProcessarUpload(context.Background(), "vendas.txt", "vendas", strings.NewReader("qualquer coisa"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "formato de arquivo não suportado")
}

func TestProcessarUpload_MetasUpsert(t *testing.T) {
	service, repos := newTestService(t)

	content := "categoria,regiao,meta_valor\nEletrônicos,Sudeste,250000\nMóveis,Sul,30000\n"

	repos.upload.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	repos.goal.EXPECT().
		UpsertMany(gomock.Any(), gomock.Len(2)).
		Return(nil)

	repos.upload.EXPECT().
		Finalize(gomock.Any(), gomock.Any(), domain.UploadStatusSuccess, 2, "").
		Return(nil)

	upload, err := service.ProcessarUpload(context.Background(), "metas.csv", "metas", strings.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, 2, upload.RowCount)
}

func TestListarUploads(t *testing.T) {
	service, repos := newTestService(t)

	repos.upload.EXPECT().
		ListRecent(gomock.Any(), uint64(50)).
		Return([]*domain.Upload{{ID: "a1B2c3"}}, nil)

	uploads, err := service.ListarUploads(context.Background())

	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.Equal(t, "a1B2c3", uploads[0].ID)
}
