package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/msouza/vendas-dashboard-api/infrastructure/collector/awesomeclient"
	"github.com/msouza/vendas-dashboard-api/infrastructure/database/postgres"
	"github.com/msouza/vendas-dashboard-api/infrastructure/repository"
	"github.com/msouza/vendas-dashboard-api/internal/api"
	"github.com/msouza/vendas-dashboard-api/internal/config"
	"github.com/msouza/vendas-dashboard-api/internal/scheduler"
	"github.com/msouza/vendas-dashboard-api/internal/usecases/analytics"
	"github.com/msouza/vendas-dashboard-api/internal/usecases/ingesting"
	"github.com/msouza/vendas-dashboard-api/internal/usecases/quoting"
	"github.com/msouza/vendas-dashboard-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	costRepo := repository.NewCostRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	quoteRepo := repository.NewQuoteRepository(pgConn)
	uploadRepo := repository.NewUploadRepository(pgConn)
	analyticsRepo := repository.NewAnalyticsRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)

	analyticsService := analytics.NewService(cfg, analyticsRepo)
	ingestService := ingesting.NewService(uploadRepo, saleRepo, costRepo, goalRepo)
	reportService := reporting.NewService(reportRepo)

	collectorClient := awesomeclient.NewClient(cfg)
	quoteService := quoting.NewService(cfg, collectorClient, quoteRepo)

	quoteRefreshService := scheduler.NewQuoteRefreshService(quoteService, cfg)
	if err := quoteRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de cotações")
	} else {
		logrus.Info("Agendador de cotações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		ingestService,
		reportService,
		quoteRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
