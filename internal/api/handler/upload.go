package handler

import (
	"encoding/json"
	"net/http"

	"github.com/msouza/vendas-dashboard-api/internal/usecases/ingesting"
	"github.com/msouza/vendas-dashboard-api/pkg/apiErrors"
	"github.com/msouza/vendas-dashboard-api/pkg/log"
)

// UploadFile recebe um multipart com os campos `file` e `tipo` e delega
// o processamento ao serviço de ingestão.
func UploadFile(service ingesting.Ingester, maxSizeMB int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxSizeMB<<20)

		if err := r.ParseMultipartForm(maxSizeMB << 20); err != nil {
			logger.WithError(err).Warn("upload: corpo multipart inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo multipart inválido ou acima do tamanho máximo", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.Warn("upload: nenhum arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrMissingFile, "Nenhum arquivo enviado", nil)
			return
		}
		defer file.Close()

		tipo := r.FormValue("tipo")
		if tipo == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de upload não informado", nil)
			return
		}

		upload, err := service.ProcessarUpload(r.Context(), header.Filename, tipo, file)
		if err != nil {
			logger.WithError(err).Error("upload: falha ao processar arquivo")
			apiErrors.WriteError(w, apiErrors.ErrUploadProcessing, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message":   "Arquivo processado com sucesso",
			"upload_id": upload.ID,
			"registros": upload.RowCount,
		}); err != nil {
			logger.WithError(err).Error("upload: falha ao codificar resposta")
		}
	})
}

// ListUploads retorna o histórico recente de uploads.
func ListUploads(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploads, err := service.ListarUploads(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("upload: falha ao listar uploads")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar uploads", nil)
			return
		}

		respondJSON(w, r, map[string]any{"uploads": uploads})
	})
}
