// Package quoting coleta cotações da fonte externa e as persiste.
package quoting

import (
	"context"

	"github.com/msouza/vendas-dashboard-api/infrastructure/collector/awesomeclient"
	"github.com/msouza/vendas-dashboard-api/infrastructure/repository"
	"github.com/msouza/vendas-dashboard-api/internal/config"
	"github.com/sirupsen/logrus"
)

// QuoteUpdater executa uma rodada de coleta e persistência de cotações,
// retornando quantas foram gravadas.
type QuoteUpdater interface {
	AtualizarCotacoes(ctx context.Context) (int, error)
}

type Service struct {
	collector     awesomeclient.Client
	quoteRepo     repository.QuoteRepository
	retentionDays int
}

func NewService(cfg *config.Config, collector awesomeclient.Client, quoteRepo repository.QuoteRepository) QuoteUpdater {
	return &Service{
		collector:     collector,
		quoteRepo:     quoteRepo,
		retentionDays: cfg.QuoteRefresh.RetentionDays,
	}
}

func (s *Service) AtualizarCotacoes(ctx context.Context) (int, error) {
	quotes, err := s.collector.GetLatestQuotes()
	if err != nil {
		return 0, err
	}

	if err := s.quoteRepo.InsertMany(ctx, quotes); err != nil {
		return 0, err
	}

	logrus.WithField("total", len(quotes)).Info("Cotações atualizadas com sucesso")

	s.removerCotacoesAntigas(ctx)

	return len(quotes), nil
}

// removerCotacoesAntigas limpa a tabela append-only após uma coleta bem
// sucedida. Falhas na limpeza não invalidam a coleta.
func (s *Service) removerCotacoesAntigas(ctx context.Context) {
	if s.retentionDays <= 0 {
		return
	}

	removed, err := s.quoteRepo.DeleteOlderThan(ctx, s.retentionDays)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao remover cotações antigas")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removidas":     removed,
			"retencao_dias": s.retentionDays,
		}).Info("Cotações antigas removidas")
	}
}
