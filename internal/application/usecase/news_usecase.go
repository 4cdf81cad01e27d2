package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

// NewsUseCase comunicados del portal.
type NewsUseCase struct {
	newsRepo repository.NewsRepository
	tx       PublishTxRunner
}

// NewNewsUseCase construye el caso de uso.
func NewNewsUseCase(newsRepo repository.NewsRepository, tx PublishTxRunner) *NewsUseCase {
	return &NewsUseCase{newsRepo: newsRepo, tx: tx}
}

// Create da de alta un comunicado en borrador.
func (uc *NewsUseCase) Create(ctx context.Context, in dto.SaveNewsRequest) (*dto.NewsResponse, error) {
	if in.Title == "" || in.Body == "" {
		return nil, domain.Validation("title y body son requeridos")
	}
	now := time.Now()
	n := &entity.News{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Body:      in.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.newsRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	return toNewsResponse(n), nil
}

// GetByID obtiene un comunicado. publishedOnly oculta borradores a los distribuidores.
func (uc *NewsUseCase) GetByID(ctx context.Context, id string, publishedOnly bool) (*dto.NewsResponse, error) {
	n, err := uc.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil || (publishedOnly && !n.Published) {
		return nil, domain.NotFound("comunicado no encontrado")
	}
	return toNewsResponse(n), nil
}

// List lista comunicados; los distribuidores solo ven los publicados.
func (uc *NewsUseCase) List(ctx context.Context, publishedOnly bool, page dto.PageRequest) ([]*dto.NewsResponse, dto.Pagination, error) {
	page.Normalize()
	list, total, err := uc.newsRepo.List(ctx, publishedOnly, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]*dto.NewsResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNewsResponse(n))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// Update edita un comunicado (publicado o no).
func (uc *NewsUseCase) Update(ctx context.Context, id string, in dto.SaveNewsRequest) (*dto.NewsResponse, error) {
	n, err := uc.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.NotFound("comunicado no encontrado")
	}
	if in.Title != "" {
		n.Title = in.Title
	}
	if in.Body != "" {
		n.Body = in.Body
	}
	n.UpdatedAt = time.Now()
	if err := uc.newsRepo.Update(ctx, n); err != nil {
		return nil, err
	}
	return toNewsResponse(n), nil
}

// Publish marca el comunicado como publicado y notifica a todos los
// distribuidores activos en una sola transacción.
func (uc *NewsUseCase) Publish(ctx context.Context, id string) (*dto.NewsResponse, error) {
	n, err := uc.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.NotFound("comunicado no encontrado")
	}
	if n.Published {
		return nil, domain.E(domain.KindConflict, "el comunicado ya está publicado")
	}

	now := time.Now()
	n.Published = true
	n.PublishedAt = &now
	n.UpdatedAt = now

	err = uc.tx.RunPublish(ctx, func(news repository.NewsRepository, distributors repository.DistributorRepository, notifications repository.NotificationRepository) error {
		if err := news.Update(ctx, n); err != nil {
			return err
		}
		active, err := distributors.ListActive(ctx)
		if err != nil {
			return err
		}
		for _, dist := range active {
			notif := &entity.Notification{
				ID:            uuid.New().String(),
				DistributorID: dist.ID,
				Type:          entity.NotificationNews,
				Title:         "Nuevo comunicado",
				Message:       n.Title,
				CreatedAt:     now,
			}
			if err := notifications.Create(ctx, notif); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toNewsResponse(n), nil
}

// Delete elimina un comunicado.
func (uc *NewsUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.newsRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.NotFound("comunicado no encontrado")
	}
	return uc.newsRepo.Delete(ctx, id)
}

func toNewsResponse(n *entity.News) *dto.NewsResponse {
	if n == nil {
		return nil
	}
	return &dto.NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		Published:   n.Published,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}
