package ingesting

import (
	"context"
	"fmt"
	"io"

	"github.com/msouza/vendas-dashboard-api/infrastructure/repository"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
	"github.com/msouza/vendas-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Tipos de upload aceitos.
const (
	TipoVendas = "vendas"
	TipoCustos = "custos"
	TipoMetas  = "metas"
)

// Ingester processa uma planilha enviada: registra o Upload, grava as
// linhas e fecha o ciclo de vida em success ou error. Tentativa única,
// sem retry.
type Ingester interface {
	ProcessarUpload(ctx context.Context, filename, tipo string, file io.Reader) (*domain.Upload, error)
	ListarUploads(ctx context.Context) ([]*domain.Upload, error)
}

type Service struct {
	uploadRepo repository.UploadRepository
	saleRepo   repository.SaleRepository
	costRepo   repository.CostRepository
	goalRepo   repository.GoalRepository
}

func NewService(
	uploadRepo repository.UploadRepository,
	saleRepo repository.SaleRepository,
	costRepo repository.CostRepository,
	goalRepo repository.GoalRepository,
) Ingester {
	return &Service{
		uploadRepo: uploadRepo,
		saleRepo:   saleRepo,
		costRepo:   costRepo,
		goalRepo:   goalRepo,
	}
}

// ProcessarUpload registra o upload em "processing", processa o arquivo
// e finaliza o registro. A inserção das linhas é transacional: falha de
// parse ou de banco não persiste linha nenhuma. O erro de processamento
// volta ao chamador já gravado no registro do upload.
func (s *Service) ProcessarUpload(ctx context.Context, filename, tipo string, file io.Reader) (*domain.Upload, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do upload: %w", err)
	}

	upload := &domain.Upload{
		ID:       id,
		Filename: filename,
		Type:     tipo,
		Status:   domain.UploadStatusProcessing,
	}

	if err := s.uploadRepo.Create(ctx, upload); err != nil {
		return nil, fmt.Errorf("erro ao registrar upload: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"upload_id": upload.ID,
		"arquivo":   filename,
		"tipo":      tipo,
	}).Info("Processando upload")

	count, err := s.ingest(ctx, tipo, filename, file)
	if err != nil {
		upload.Status = domain.UploadStatusError
		upload.ErrorMessage = err.Error()

		if ferr := s.uploadRepo.Finalize(ctx, upload.ID, domain.UploadStatusError, 0, err.Error()); ferr != nil {
			logrus.WithError(ferr).Error("Erro ao finalizar upload com falha")
		}

		logrus.WithError(err).WithField("upload_id", upload.ID).Warn("Upload finalizado com erro")
		return upload, err
	}

	upload.Status = domain.UploadStatusSuccess
	upload.RowCount = count

	if err := s.uploadRepo.Finalize(ctx, upload.ID, domain.UploadStatusSuccess, count, ""); err != nil {
		return upload, fmt.Errorf("erro ao finalizar upload: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"upload_id": upload.ID,
		"registros": count,
	}).Info("Upload processado com sucesso")

	return upload, nil
}

func (s *Service) ListarUploads(ctx context.Context) ([]*domain.Upload, error) {
	return s.uploadRepo.ListRecent(ctx, 50)
}

func (s *Service) ingest(ctx context.Context, tipo, filename string, file io.Reader) (int, error) {
	records, err := readRecords(filename, file)
	if err != nil {
		return 0, err
	}

	switch tipo {
	case TipoVendas:
		sales, err := parseVendas(records)
		if err != nil {
			return 0, err
		}
		if err := s.saleRepo.InsertMany(ctx, sales); err != nil {
			return 0, err
		}
		return len(sales), nil

	case TipoCustos:
		costs, err := parseCustos(records)
		if err != nil {
			return 0, err
		}
		if err := s.costRepo.UpsertMany(ctx, costs); err != nil {
			return 0, err
		}
		return len(costs), nil

	case TipoMetas:
		goals, err := parseMetas(records)
		if err != nil {
			return 0, err
		}
		if err := s.goalRepo.UpsertMany(ctx, goals); err != nil {
			return 0, err
		}
		return len(goals), nil

	default:
		return 0, fmt.Errorf("tipo de upload inválido: %s", tipo)
	}
}
