package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/msouza/vendas-dashboard-api/internal/usecases/reporting"
	"github.com/msouza/vendas-dashboard-api/pkg/apiErrors"
	"github.com/msouza/vendas-dashboard-api/pkg/log"
	"github.com/pkg/errors"
)

// GenerateReport monta um relatório tabular. Com exportarPDF o corpo da
// resposta é o binário do PDF como attachment; sem, os registros em JSON.
func GenerateReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var filtros domain.ReportFilters
		if err := json.NewDecoder(r.Body).Decode(&filtros); err != nil {
			logger.WithError(err).Warn("relatorios: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result, err := service.Gerar(r.Context(), filtros)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidReportType) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidReportType, err.Error(), nil)
				return
			}

			logger.WithError(err).WithField("tipo", filtros.TipoRelatorio).Error("relatorios: falha ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, err.Error(), nil)
			return
		}

		if len(result.Document) > 0 {
			w.Header().Set("Content-Type", result.ContentType)
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
			if _, err := w.Write(result.Document); err != nil {
				logger.WithError(err).Error("relatorios: falha ao enviar PDF")
			}
			return
		}

		respondJSON(w, r, result)
	})
}
