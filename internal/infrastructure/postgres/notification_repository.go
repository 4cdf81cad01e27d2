package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	db DB
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(db DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, distributor_id, type, title, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		n.ID, n.DistributorID, n.Type, n.Title, n.Message, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByDistributor lista las notificaciones de un distribuidor, recientes primero.
func (r *NotificationRepo) ListByDistributor(ctx context.Context, distributorID string, limit, offset int) ([]*entity.Notification, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE distributor_id = $1`, distributorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}
	query := `
		SELECT id, distributor_id, type, title, message, read, created_at
		FROM notifications WHERE distributor_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, distributorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.DistributorID, &n.Type, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, total, rows.Err()
}

// UnreadCount cuenta las notificaciones sin leer de un distribuidor.
func (r *NotificationRepo) UnreadCount(ctx context.Context, distributorID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM notifications WHERE distributor_id = $1 AND NOT read`
	if err := r.db.QueryRow(ctx, query, distributorID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// MarkRead marca una notificación como leída. Filtra también por
// distributor_id: un distribuidor no puede tocar notificaciones ajenas.
// Devuelve false si no existía tal fila.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, distributorID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND distributor_id = $2`, id, distributorID)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkAllRead marca todas las notificaciones del distribuidor como leídas.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, distributorID string) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE distributor_id = $1 AND NOT read`, distributorID)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
