package repository

import (
	"context"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

// DocumentRepository puerto de persistencia para Document y sus asignaciones.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Document, int, error)
	ListByDistributor(ctx context.Context, distributorID string, limit, offset int) ([]*entity.Document, int, error)
	ListRecent(ctx context.Context, n int) ([]*entity.Document, error)
	Assign(ctx context.Context, documentID string, distributorIDs []string) error
	IsAssigned(ctx context.Context, documentID, distributorID string) (bool, error)
	Delete(ctx context.Context, id string) error
}
