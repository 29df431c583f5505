package handler

import (
	"encoding/json"
	"net/http"

	"github.com/msouza/vendas-dashboard-api/internal/scheduler"
	"github.com/msouza/vendas-dashboard-api/pkg/apiErrors"
	"github.com/msouza/vendas-dashboard-api/pkg/log"
)

// TriggerQuoteRefresh dispara uma atualização de cotações em background
// e responde 202 com o identificador da tarefa.
func TriggerQuoteRefresh(service *scheduler.QuoteRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		taskID, err := service.Dispatch()
		if err != nil {
			logger.WithError(err).Error("cotacoes: falha ao disparar atualização")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao disparar a atualização de cotações", nil)
			return
		}

		logger.WithField("task_id", taskID).Info("cotacoes: atualização disparada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message": "Tarefa de atualização iniciada",
			"task_id": taskID,
		}); err != nil {
			logger.WithError(err).Error("cotacoes: falha ao codificar resposta")
		}
	})
}

// GetQuoteRefreshStatus reporta o estado do agendador de cotações.
func GetQuoteRefreshStatus(service *scheduler.QuoteRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, service.Status())
	})
}
