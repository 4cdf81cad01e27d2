package repository

import (
	"context"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

// DashboardRepository consultas agregadas para el tablero del administrador.
type DashboardRepository interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}
