package quoting

import (
	"context"
	"testing"

	clientmocks "github.com/msouza/vendas-dashboard-api/infrastructure/collector/awesomeclient/mocks"
	"github.com/msouza/vendas-dashboard-api/infrastructure/repository/mocks"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, retentionDays int) (*Service, *clientmocks.MockClient, *mocks.MockQuoteRepository) {
	ctrl := gomock.NewController(t)

	mockClient := clientmocks.NewMockClient(ctrl)
	mockRepo := mocks.NewMockQuoteRepository(ctrl)

	service := &Service{
		collector:     mockClient,
		quoteRepo:     mockRepo,
		retentionDays: retentionDays,
	}

	return service, mockClient, mockRepo
}

func TestAtualizarCotacoes(t *testing.T) {
	service, mockClient, mockRepo := newTestService(t, 90)

	quotes := []*domain.Quote{
		{ID: "a1B2c3", Pair: "USD-BRL", Value: 5.12},
		{ID: "d4E5f6", Pair: "EUR-BRL", Value: 5.98},
	}

	mockClient.EXPECT().GetLatestQuotes().Return(quotes, nil)
	mockRepo.EXPECT().InsertMany(gomock.Any(), quotes).Return(nil)
	mockRepo.EXPECT().DeleteOlderThan(gomock.Any(), 90).Return(int64(12), nil)

	total, err := service.AtualizarCotacoes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestAtualizarCotacoes_FalhaNaColeta(t *testing.T) {
	service, mockClient, _ := newTestService(t, 90)

	mockClient.EXPECT().GetLatestQuotes().Return(nil, errors.New("timeout"))

	total, err := service.AtualizarCotacoes(context.Background())

	require.Error(t, err)
	assert.Zero(t, total)
}

func TestAtualizarCotacoes_FalhaNaPersistencia(t *testing.T) {
	service, mockClient, mockRepo := newTestService(t, 90)

	mockClient.EXPECT().GetLatestQuotes().Return([]*domain.Quote{{ID: "a1B2c3"}}, nil)
	mockRepo.EXPECT().InsertMany(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))

	_, err := service.AtualizarCotacoes(context.Background())

	require.Error(t, err)
}

func TestAtualizarCotacoes_FalhaNaLimpezaNaoInvalidaColeta(t *testing.T) {
	service, mockClient, mockRepo := newTestService(t, 90)

	mockClient.EXPECT().GetLatestQuotes().Return([]*domain.Quote{{ID: "a1B2c3", Pair: "USD-BRL"}}, nil)
	mockRepo.EXPECT().InsertMany(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().DeleteOlderThan(gomock.Any(), 90).Return(int64(0), errors.New("deadlock"))

	total, err := service.AtualizarCotacoes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestAtualizarCotacoes_RetencaoDesativada(t *testing.T) {
	service, mockClient, mockRepo := newTestService(t, 0)

	mockClient.EXPECT().GetLatestQuotes().Return([]*domain.Quote{{ID: "a1B2c3", Pair: "USD-BRL"}}, nil)
	mockRepo.EXPECT().InsertMany(gomock.Any(), gomock.Any()).Return(nil)

	total, err := service.AtualizarCotacoes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
