package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/msouza/vendas-dashboard-api/infrastructure/database/postgres"
	"github.com/msouza/vendas-dashboard-api/internal/domain"
)

const (
	uploadsTable = "uploads u"
)

type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) error
	Finalize(ctx context.Context, id string, status domain.UploadStatus, rowCount int, errorMessage string) error
	ListRecent(ctx context.Context, limit uint64) ([]*domain.Upload, error)
}

type uploadRepository struct {
	conn *postgres.Connection
}

func NewUploadRepository(conn *postgres.Connection) UploadRepository {
	return &uploadRepository{
		conn: conn,
	}
}

func (r *uploadRepository) Create(ctx context.Context, upload *domain.Upload) error {
	query, args, err := squirrel.
		Insert("uploads").
		Columns("id", "nome_arquivo", "tipo", "status").
		Values(upload.ID, upload.Filename, upload.Type, upload.Status).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// Finalize fecha o ciclo de vida do upload: uma única atualização de
// linha para success ou error.
func (r *uploadRepository) Finalize(ctx context.Context, id string, status domain.UploadStatus, rowCount int, errorMessage string) error {
	query, args, err := squirrel.
		Update("uploads").
		Set("status", status).
		Set("num_registros", rowCount).
		Set("mensagem_erro", errorMessage).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *uploadRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.Upload, error) {
	query, args, err := squirrel.
		Select("u.id, u.nome_arquivo, u.tipo, u.status, u.num_registros, u.mensagem_erro, u.created_at").
		From(uploadsTable).
		OrderBy("u.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	uploads := make([]*domain.Upload, 0)
	for rows.Next() {
		upload := &domain.Upload{}
		var errorMessage sql.NullString

		if err := rows.Scan(
			&upload.ID,
			&upload.Filename,
			&upload.Type,
			&upload.Status,
			&upload.RowCount,
			&errorMessage,
			&upload.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear upload: %w", err)
		}

		upload.ErrorMessage = errorMessage.String
		uploads = append(uploads, upload)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return uploads, nil
}
