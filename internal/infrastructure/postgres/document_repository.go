package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentColumns = `id, title, description, file_name, file_path, file_size, content_type, uploaded_by, created_at`

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	db DB
}

// NewDocumentRepository construye el adaptador de persistencia para documentos.
func NewDocumentRepository(db DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Create persiste la ficha de un documento.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, title, description, file_name, file_path, file_size, content_type, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		doc.ID, doc.Title, doc.Description, doc.FileName, doc.FilePath, doc.FileSize,
		doc.ContentType, doc.UploadedBy, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID; (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	var d entity.Document
	err := r.db.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id).Scan(
		&d.ID, &d.Title, &d.Description, &d.FileName, &d.FilePath, &d.FileSize,
		&d.ContentType, &d.UploadedBy, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// List lista todos los documentos (vista admin) con paginación.
func (r *DocumentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Document, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM documents`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}
	query := `SELECT ` + documentColumns + ` FROM documents ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	list, err := scanDocuments(rows)
	return list, total, err
}

// ListByDistributor lista los documentos asignados a un distribuidor.
func (r *DocumentRepo) ListByDistributor(ctx context.Context, distributorID string, limit, offset int) ([]*entity.Document, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*) FROM documents d
		JOIN document_assignments a ON a.document_id = d.id
		WHERE a.distributor_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, distributorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assigned documents: %w", err)
	}
	query := `
		SELECT d.id, d.title, d.description, d.file_name, d.file_path, d.file_size, d.content_type, d.uploaded_by, d.created_at
		FROM documents d
		JOIN document_assignments a ON a.document_id = d.id
		WHERE a.distributor_id = $1
		ORDER BY a.assigned_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, distributorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list assigned documents: %w", err)
	}
	defer rows.Close()
	list, err := scanDocuments(rows)
	return list, total, err
}

// ListRecent últimos n documentos subidos (tablero admin).
func (r *DocumentRepo) ListRecent(ctx context.Context, n int) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("list recent documents: %w", err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

// Assign inserta las asignaciones del documento. ON CONFLICT DO NOTHING hace
// la operación idempotente frente a re-asignaciones.
func (r *DocumentRepo) Assign(ctx context.Context, documentID string, distributorIDs []string) error {
	query := `
		INSERT INTO document_assignments (document_id, distributor_id, assigned_at)
		VALUES ($1, $2, now())
		ON CONFLICT (document_id, distributor_id) DO NOTHING`
	for _, distID := range distributorIDs {
		if _, err := r.db.Exec(ctx, query, documentID, distID); err != nil {
			return fmt.Errorf("assign document: %w", err)
		}
	}
	return nil
}

// IsAssigned verifica si el documento está asignado al distribuidor.
func (r *DocumentRepo) IsAssigned(ctx context.Context, documentID, distributorID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM document_assignments WHERE document_id = $1 AND distributor_id = $2)`
	if err := r.db.QueryRow(ctx, query, documentID, distributorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check assignment: %w", err)
	}
	return exists, nil
}

// Delete elimina el documento; las asignaciones caen por ON DELETE CASCADE.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func scanDocuments(rows pgx.Rows) ([]*entity.Document, error) {
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.FileName, &d.FilePath, &d.FileSize, &d.ContentType, &d.UploadedBy, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
