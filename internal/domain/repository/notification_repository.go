package repository

import (
	"context"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

// NotificationRepository puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByDistributor(ctx context.Context, distributorID string, limit, offset int) ([]*entity.Notification, int, error)
	UnreadCount(ctx context.Context, distributorID string) (int, error)
	MarkRead(ctx context.Context, id, distributorID string) (bool, error)
	MarkAllRead(ctx context.Context, distributorID string) error
}
