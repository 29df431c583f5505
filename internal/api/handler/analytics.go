package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/msouza/vendas-dashboard-api/internal/usecases/analytics"
	"github.com/msouza/vendas-dashboard-api/pkg/apiErrors"
	"github.com/msouza/vendas-dashboard-api/pkg/log"
	"github.com/msouza/vendas-dashboard-api/pkg/utils"
)

// periodoFromRequest lê data_inicio/data_fim da query string. Datas
// malformadas são tratadas como ausentes, nunca como erro.
func periodoFromRequest(r *http.Request) domain.Periodo {
	return domain.Periodo{
		Inicio: utils.ParseOptionalDate(r.URL.Query().Get("data_inicio")),
		Fim:    utils.ParseOptionalDate(r.URL.Query().Get("data_fim")),
	}
}

func respondJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("data: falha ao codificar resposta")
	}
}

func GetKPIs(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kpis, err := service.KPIs(r.Context(), periodoFromRequest(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("data: falha ao calcular KPIs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular os indicadores", nil)
			return
		}

		respondJSON(w, r, kpis)
	})
}

func GetVendasAoLongoDoTempo(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.VendasAoLongoDoTempo(r.Context(), periodoFromRequest(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("data: falha ao montar série temporal de vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas ao longo do tempo", nil)
			return
		}

		respondJSON(w, r, chart)
	})
}

func GetVendasPorCategoria(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.VendasPorCategoria(r.Context(), periodoFromRequest(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("data: falha ao agrupar vendas por categoria")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas por categoria", nil)
			return
		}

		respondJSON(w, r, chart)
	})
}

func GetVendasPorRegiao(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.VendasPorRegiao(r.Context(), periodoFromRequest(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("data: falha ao agrupar vendas por região")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas por região", nil)
			return
		}

		respondJSON(w, r, chart)
	})
}

func GetTopProdutos(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limite := 0
		if raw := r.URL.Query().Get("limite"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				logger.WithField("limite", raw).Warn("data: parâmetro limite inválido, usando padrão")
			} else {
				limite = parsed
			}
		}

		chart, err := service.TopProdutos(r.Context(), periodoFromRequest(r), limite)
		if err != nil {
			logger.WithError(err).Error("data: falha ao montar ranking de produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar os produtos mais vendidos", nil)
			return
		}

		respondJSON(w, r, chart)
	})
}

func GetMargemLucro(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.MargemLucro(r.Context(), periodoFromRequest(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("data: falha ao calcular margem de lucro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular a margem de lucro", nil)
			return
		}

		respondJSON(w, r, chart)
	})
}

func GetMetas(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.CompararMetas(r.Context(), periodoFromRequest(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("data: falha ao comparar metas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao comparar vendas com metas", nil)
			return
		}

		respondJSON(w, r, chart)
	})
}

func GetTendenciaMensal(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.TendenciaMensal(r.Context(), periodoFromRequest(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("data: falha ao calcular tendência mensal")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular a tendência mensal", nil)
			return
		}

		respondJSON(w, r, chart)
	})
}

func GetVendasPorVendedor(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.VendasPorVendedor(r.Context(), periodoFromRequest(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("data: falha ao agrupar vendas por vendedor")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas por vendedor", nil)
			return
		}

		respondJSON(w, r, chart)
	})
}

func GetFunilCategoria(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.FunilPorCategoria(r.Context(), periodoFromRequest(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("data: falha ao montar funil por categoria")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o funil por categoria", nil)
			return
		}

		respondJSON(w, r, chart)
	})
}

// GetVendasPorMeses compara meses informados em `meses` (CSV de YYYY-MM).
// Seletores vazios ou malformados são ignorados pelo serviço.
func GetVendasPorMeses(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var meses []string
		if raw := r.URL.Query().Get("meses"); raw != "" {
			meses = strings.Split(raw, ",")
		}

		chart, err := service.VendasPorMeses(r.Context(), meses)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("data: falha ao comparar meses")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao comparar vendas entre meses", nil)
			return
		}

		respondJSON(w, r, chart)
	})
}
