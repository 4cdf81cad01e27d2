package usecase

import (
	"context"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

// DashboardUseCase tablero del administrador: contadores y actividad reciente.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
	docRepo  repository.DocumentRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, docRepo repository.DocumentRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, docRepo: docRepo}
}

// Get arma la respuesta del tablero.
func (uc *DashboardUseCase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := uc.dashRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.docRepo.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardResponse{
		ActiveDistributors:  stats.ActiveDistributors,
		TotalDocuments:      stats.TotalDocuments,
		PublishedNews:       stats.PublishedNews,
		UnreadNotifications: stats.UnreadNotifications,
		RecentDocuments:     make([]dto.DocumentResponse, 0, len(recent)),
	}
	for _, d := range recent {
		out.RecentDocuments = append(out.RecentDocuments, *toDocumentResponse(d))
	}
	return out, nil
}
