package handler

import (
	"net/http"

	"github.com/msouza/vendas-dashboard-api/internal/api/handler/router"
	"github.com/msouza/vendas-dashboard-api/internal/config"
	"github.com/msouza/vendas-dashboard-api/internal/scheduler"
	"github.com/msouza/vendas-dashboard-api/internal/usecases/analytics"
	"github.com/msouza/vendas-dashboard-api/internal/usecases/ingesting"
	"github.com/msouza/vendas-dashboard-api/internal/usecases/reporting"
	"github.com/msouza/vendas-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Data retorna as rotas de gráficos consumidas pelo dashboard.
func Data(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/data/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/data/vendas-tempo",
			Method:  http.MethodGet,
			Handler: GetVendasAoLongoDoTempo(service),
		},
		{
			Path:    "/data/vendas-categoria",
			Method:  http.MethodGet,
			Handler: GetVendasPorCategoria(service),
		},
		{
			Path:    "/data/vendas-regiao",
			Method:  http.MethodGet,
			Handler: GetVendasPorRegiao(service),
		},
		{
			Path:    "/data/top-produtos",
			Method:  http.MethodGet,
			Handler: GetTopProdutos(service),
		},
		{
			Path:    "/data/margem-lucro",
			Method:  http.MethodGet,
			Handler: GetMargemLucro(service),
		},
		{
			Path:    "/data/metas",
			Method:  http.MethodGet,
			Handler: GetMetas(service),
		},
		{
			Path:    "/data/tendencias",
			Method:  http.MethodGet,
			Handler: GetTendenciaMensal(service),
		},
		{
			Path:    "/data/vendas-vendedor",
			Method:  http.MethodGet,
			Handler: GetVendasPorVendedor(service),
		},
		{
			Path:    "/data/funil-categoria",
			Method:  http.MethodGet,
			Handler: GetFunilCategoria(service),
		},
		{
			Path:    "/data/vendas-meses",
			Method:  http.MethodGet,
			Handler: GetVendasPorMeses(service),
		},
	}
}

// Uploads retorna as rotas de ingestão de planilhas. Rotas que alteram
// dados exigem autenticação quando habilitada.
func Uploads(service ingesting.Ingester, cfg *config.Config) []router.Route {
	auth := middleware.AuthMiddleware(cfg.Auth.Secret, cfg.Auth.Enabled)

	return []router.Route{
		{
			Path:        "/upload",
			Method:      http.MethodPost,
			Handler:     UploadFile(service, cfg.Upload.MaxSizeMB),
			Middlewares: []func(http.Handler) http.Handler{auth},
		},
		{
			Path:    "/uploads",
			Method:  http.MethodGet,
			Handler: ListUploads(service),
		},
	}
}

func Reports(service reporting.Reporter, cfg *config.Config) []router.Route {
	auth := middleware.AuthMiddleware(cfg.Auth.Secret, cfg.Auth.Enabled)

	return []router.Route{
		{
			Path:        "/relatorios/gerar",
			Method:      http.MethodPost,
			Handler:     GenerateReport(service),
			Middlewares: []func(http.Handler) http.Handler{auth},
		},
	}
}

func Quotes(service *scheduler.QuoteRefreshService, cfg *config.Config) []router.Route {
	auth := middleware.AuthMiddleware(cfg.Auth.Secret, cfg.Auth.Enabled)

	return []router.Route{
		{
			Path:        "/cotacoes/atualizar",
			Method:      http.MethodPost,
			Handler:     TriggerQuoteRefresh(service),
			Middlewares: []func(http.Handler) http.Handler{auth},
		},
		{
			Path:    "/cotacoes/status",
			Method:  http.MethodGet,
			Handler: GetQuoteRefreshStatus(service),
		},
	}
}
