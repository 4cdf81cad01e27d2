package repository

import (
	"context"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para el catálogo de productos.
// search llega ya normalizado (textutil.Fold) y compara contra name_folded.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, search string, activeOnly bool, limit, offset int) ([]*entity.Product, int, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
}
