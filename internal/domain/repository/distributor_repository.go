package repository

import (
	"context"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

// DistributorRepository puerto de persistencia para Distributor.
// search llega ya normalizado (textutil.Fold) y compara contra company_name_folded.
type DistributorRepository interface {
	Create(ctx context.Context, d *entity.Distributor) error
	GetByID(ctx context.Context, id string) (*entity.Distributor, error)
	GetByEmail(ctx context.Context, email string) (*entity.Distributor, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Distributor, int, error)
	ListActive(ctx context.Context) ([]*entity.Distributor, error)
	Update(ctx context.Context, d *entity.Distributor) error
	Delete(ctx context.Context, id string) error
}
