package repository

import (
	"context"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

// NewsRepository puerto de persistencia para News.
type NewsRepository interface {
	Create(ctx context.Context, n *entity.News) error
	GetByID(ctx context.Context, id string) (*entity.News, error)
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*entity.News, int, error)
	Update(ctx context.Context, n *entity.News) error
	Delete(ctx context.Context, id string) error
}
