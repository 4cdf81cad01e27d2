package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

var _ repository.NewsRepository = (*NewsRepo)(nil)

const newsColumns = `id, title, body, published, published_at, created_at, updated_at`

// NewsRepo implementación del puerto NewsRepository sobre PostgreSQL.
type NewsRepo struct {
	db DB
}

// NewNewsRepository construye el adaptador de persistencia para comunicados.
func NewNewsRepository(db DB) *NewsRepo {
	return &NewsRepo{db: db}
}

// Create persiste un comunicado.
func (r *NewsRepo) Create(ctx context.Context, n *entity.News) error {
	query := `
		INSERT INTO news (id, title, body, published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		n.ID, n.Title, n.Body, n.Published, n.PublishedAt, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert news: %w", err)
	}
	return nil
}

// GetByID obtiene un comunicado por ID; (nil, nil) si no existe.
func (r *NewsRepo) GetByID(ctx context.Context, id string) (*entity.News, error) {
	var n entity.News
	err := r.db.QueryRow(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id).Scan(
		&n.ID, &n.Title, &n.Body, &n.Published, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get news: %w", err)
	}
	return &n, nil
}

// List lista comunicados; publishedOnly restringe a los publicados (vista distribuidor).
func (r *NewsRepo) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*entity.News, int, error) {
	where := ``
	if publishedOnly {
		where = ` WHERE published`
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news`+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count news: %w", err)
	}

	query := `SELECT ` + newsColumns + ` FROM news` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()
	var list []*entity.News
	for rows.Next() {
		var n entity.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Published, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan news: %w", err)
		}
		list = append(list, &n)
	}
	return list, total, rows.Err()
}

// Update actualiza un comunicado (incluye el paso a publicado).
func (r *NewsRepo) Update(ctx context.Context, n *entity.News) error {
	query := `
		UPDATE news SET title = $2, body = $3, published = $4, published_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, n.ID, n.Title, n.Body, n.Published, n.PublishedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update news: %w", err)
	}
	return nil
}

// Delete elimina un comunicado por ID.
func (r *NewsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}
