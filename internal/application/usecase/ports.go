package usecase

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

// PairedTxRunner ejecuta el alta/edición/baja de un distribuidor junto con su
// cuenta de usuario emparejada dentro de una transacción: nunca debe quedar
// una fila sin la otra.
type PairedTxRunner interface {
	RunPaired(ctx context.Context, fn func(
		users repository.UserRepository,
		distributors repository.DistributorRepository,
	) error) error
}

// AssignmentTxRunner ejecuta la asignación masiva de un documento y la
// creación de sus notificaciones en una transacción.
type AssignmentTxRunner interface {
	RunAssignment(ctx context.Context, fn func(
		documents repository.DocumentRepository,
		notifications repository.NotificationRepository,
	) error) error
}

// PublishTxRunner ejecuta la publicación de un comunicado y su fan-out de
// notificaciones a los distribuidores activos en una transacción.
type PublishTxRunner interface {
	RunPublish(ctx context.Context, fn func(
		news repository.NewsRepository,
		distributors repository.DistributorRepository,
		notifications repository.NotificationRepository,
	) error) error
}

// FileStore almacenamiento de los PDF subidos. Save devuelve la ruta relativa
// persistida en la fila de documents y el tamaño escrito.
type FileStore interface {
	Save(name string, r io.Reader) (path string, size int64, err error)
	Remove(path string) error
	FullPath(path string) string
}

// PriceListGenerator genera el PDF de la lista de precios del catálogo.
type PriceListGenerator interface {
	GeneratePriceList(ctx context.Context, products []*entity.Product, generatedAt time.Time) ([]byte, error)
}
