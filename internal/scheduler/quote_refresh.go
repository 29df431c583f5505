// Package scheduler contém a tarefa agendada de atualização de cotações
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/msouza/vendas-dashboard-api/internal/config"
	"github.com/msouza/vendas-dashboard-api/internal/usecases/quoting"
	"github.com/msouza/vendas-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type QuoteRefreshConfig struct {
	Interval   time.Duration
	MaxRetries int
	RetryDelay time.Duration
	Enabled    bool
}

// QuoteRefreshService executa a coleta de cotações em intervalo fixo.
// Falhas são retentadas um número limitado de vezes com espera fixa e
// depois abandonadas: nenhum erro sobe para quem agendou.
type QuoteRefreshService struct {
	scheduler          *gocron.Scheduler
	updater            quoting.QuoteUpdater
	config             QuoteRefreshConfig
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewQuoteRefreshService(updater quoting.QuoteUpdater, cfg *config.Config) *QuoteRefreshService {
	refreshConfig := QuoteRefreshConfig{
		Interval:   time.Duration(cfg.QuoteRefresh.IntervalSeconds) * time.Second,
		MaxRetries: cfg.QuoteRefresh.MaxRetries,
		RetryDelay: time.Duration(cfg.QuoteRefresh.RetryDelaySeconds) * time.Second,
		Enabled:    cfg.QuoteRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval":    refreshConfig.Interval.String(),
		"max_retries": refreshConfig.MaxRetries,
	}).Info("Configuração do agendador de cotações carregada")

	return &QuoteRefreshService{
		scheduler: scheduler,
		updater:   updater,
		config:    refreshConfig,
	}
}

func (s *QuoteRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização periódica de cotações desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval", s.config.Interval.String()).Info("Iniciando atualização periódica de cotações")

	_, err := s.scheduler.Every(s.config.Interval).Do(func() {
		// Erros já foram logados e retentados; o agendamento segue.
		_ = s.AtualizarCotacoes(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de cotações: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de cotações")
		s.scheduler.Stop()
	}()

	return nil
}

// AtualizarCotacoes executa uma rodada de coleta com retry limitado.
// Execuções concorrentes são recusadas silenciosamente.
func (s *QuoteRefreshService) AtualizarCotacoes(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização de cotações já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastRunStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastRunCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	// MaxRetries conta as retentativas após a primeira execução, então o
	// total de execuções é MaxRetries+1.
	var lastErr error
	for attempt := 0; attempt <= s.config.MaxRetries; attempt++ {
		total, err := s.updater.AtualizarCotacoes(ctx)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"total":     total,
				"tentativa": attempt + 1,
			}).Info("Atualização de cotações concluída")
			return nil
		}

		lastErr = err
		logrus.WithError(err).WithFields(logrus.Fields{
			"tentativa":   attempt + 1,
			"max_retries": s.config.MaxRetries,
		}).Warn("Falha ao atualizar cotações")

		if attempt < s.config.MaxRetries {
			time.Sleep(s.config.RetryDelay)
		}
	}

	logrus.WithError(lastErr).Error("Atualização de cotações abandonada após esgotar as tentativas")
	return lastErr
}

// Dispatch dispara uma atualização em background e retorna imediatamente
// o identificador da tarefa. O resultado não é aguardado.
func (s *QuoteRefreshService) Dispatch() (string, error) {
	taskID, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar ID da tarefa: %w", err)
	}

	go func() {
		logrus.WithField("task_id", taskID).Info("Atualização manual de cotações disparada")
		_ = s.AtualizarCotacoes(context.Background())
	}()

	return taskID, nil
}

// Status reporta o estado corrente do agendador.
type Status struct {
	Enabled            bool       `json:"habilitado"`
	Running            bool       `json:"em_execucao"`
	Interval           string     `json:"intervalo"`
	LastRunStartedAt   *time.Time `json:"ultima_execucao_inicio,omitempty"`
	LastRunCompletedAt *time.Time `json:"ultima_execucao_fim,omitempty"`
}

func (s *QuoteRefreshService) Status() Status {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := Status{
		Enabled:  s.config.Enabled,
		Running:  s.syncRunning,
		Interval: s.config.Interval.String(),
	}

	if !s.lastRunStartedAt.IsZero() {
		startedAt := s.lastRunStartedAt
		status.LastRunStartedAt = &startedAt
	}
	if !s.lastRunCompletedAt.IsZero() {
		completedAt := s.lastRunCompletedAt
		status.LastRunCompletedAt = &completedAt
	}

	return status
}
