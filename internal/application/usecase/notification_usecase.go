package usecase

import (
	"context"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

// NotificationUseCase bandeja de notificaciones del distribuidor autenticado.
// La sesión se resuelve a un distribuidor por email (el par no tiene FK).
type NotificationUseCase struct {
	notifRepo repository.NotificationRepository
	distRepo  repository.DistributorRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifRepo repository.NotificationRepository, distRepo repository.DistributorRepository) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo, distRepo: distRepo}
}

// List lista las notificaciones del distribuidor de la sesión.
func (uc *NotificationUseCase) List(ctx context.Context, email string, page dto.PageRequest) ([]*dto.NotificationResponse, dto.Pagination, error) {
	dist, err := uc.requireDistributor(ctx, email)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	page.Normalize()
	list, total, err := uc.notifRepo.ListByDistributor(ctx, dist.ID, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]*dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// UnreadCount cuenta las notificaciones sin leer.
func (uc *NotificationUseCase) UnreadCount(ctx context.Context, email string) (*dto.UnreadCountResponse, error) {
	dist, err := uc.requireDistributor(ctx, email)
	if err != nil {
		return nil, err
	}
	n, err := uc.notifRepo.UnreadCount(ctx, dist.ID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Unread: n}, nil
}

// MarkRead marca una notificación como leída. Solo las propias: el repo
// filtra por distributor_id además del id.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, email, id string) error {
	dist, err := uc.requireDistributor(ctx, email)
	if err != nil {
		return err
	}
	ok, err := uc.notifRepo.MarkRead(ctx, id, dist.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("notificación no encontrada")
	}
	return nil
}

// MarkAllRead marca todas las notificaciones del distribuidor como leídas.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, email string) error {
	dist, err := uc.requireDistributor(ctx, email)
	if err != nil {
		return err
	}
	return uc.notifRepo.MarkAllRead(ctx, dist.ID)
}

func (uc *NotificationUseCase) requireDistributor(ctx context.Context, email string) (*entity.Distributor, error) {
	dist, err := uc.distRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, domain.Forbidden("la cuenta no está asociada a un distribuidor")
	}
	return dist, nil
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
