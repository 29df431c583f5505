package domain

import "time"

type UploadStatus string

const (
	UploadStatusProcessing UploadStatus = "processing"
	UploadStatusSuccess    UploadStatus = "success"
	UploadStatusError      UploadStatus = "error"
)

// Upload registra o ciclo de vida de um arquivo importado. Criado em
// "processing" e finalizado uma única vez em "success" ou "error".
type Upload struct {
	ID           string       `json:"id"`
	Filename     string       `json:"nome_arquivo"`
	Type         string       `json:"tipo"`
	Status       UploadStatus `json:"status"`
	RowCount     int          `json:"num_registros"`
	ErrorMessage string       `json:"mensagem_erro,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
