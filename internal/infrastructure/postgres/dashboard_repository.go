package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas para el tablero del administrador.
type DashboardRepo struct {
	db DB
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(db DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// Stats contadores del tablero en una sola consulta.
func (r *DashboardRepo) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM distributors WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM documents),
			(SELECT COUNT(*) FROM news WHERE published),
			(SELECT COUNT(*) FROM notifications WHERE NOT read)`
	var s entity.DashboardStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ActiveDistributors, &s.TotalDocuments, &s.PublishedNews, &s.UnreadNotifications,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &s, nil
}
