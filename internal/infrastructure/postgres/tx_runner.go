package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de la aplicación.
var _ usecase.PairedTxRunner = (*TxRunner)(nil)
var _ usecase.AssignmentTxRunner = (*TxRunner)(nil)
var _ usecase.PublishTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPaired transacción para el par Distributor↔User: alta, cambio de email
// en cascada y baja. Commit o Rollback; jamás queda una fila sin la otra.
func (r *TxRunner) RunPaired(ctx context.Context, fn func(
	users repository.UserRepository,
	distributors repository.DistributorRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewDistributorRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAssignment transacción para asignar un documento y crear sus notificaciones.
func (r *TxRunner) RunAssignment(ctx context.Context, fn func(
	documents repository.DocumentRepository,
	notifications repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDocumentRepository(tx), NewNotificationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPublish transacción para publicar un comunicado y su fan-out de notificaciones.
func (r *TxRunner) RunPublish(ctx context.Context, fn func(
	news repository.NewsRepository,
	distributors repository.DistributorRepository,
	notifications repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewNewsRepository(tx), NewDistributorRepository(tx), NewNotificationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
