package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

// DocumentUseCase subida, asignación y descarga de documentos PDF.
type DocumentUseCase struct {
	docRepo  repository.DocumentRepository
	distRepo repository.DistributorRepository
	tx       AssignmentTxRunner
	store    FileStore
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(docRepo repository.DocumentRepository, distRepo repository.DistributorRepository, tx AssignmentTxRunner, store FileStore) *DocumentUseCase {
	return &DocumentUseCase{docRepo: docRepo, distRepo: distRepo, tx: tx, store: store}
}

// Upload guarda el PDF en el storage local y persiste la ficha del documento.
// Solo se acepta application/pdf.
func (uc *DocumentUseCase) Upload(ctx context.Context, uploadedBy string, in dto.CreateDocumentRequest, fileName, contentType string, r io.Reader) (*dto.DocumentResponse, error) {
	if in.Title == "" {
		return nil, domain.EField(domain.KindValidation, "title es requerido", "title")
	}
	if fileName == "" {
		return nil, domain.EField(domain.KindValidation, "el archivo es requerido", "file")
	}
	if contentType != "application/pdf" {
		return nil, domain.EField(domain.KindValidation, "solo se aceptan archivos PDF", "file")
	}

	path, size, err := uc.store.Save(uuid.New().String()+".pdf", r)
	if err != nil {
		return nil, err
	}
	doc := &entity.Document{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		FileName:    fileName,
		FilePath:    path,
		FileSize:    size,
		ContentType: contentType,
		UploadedBy:  uploadedBy,
		CreatedAt:   time.Now(),
	}
	if err := uc.docRepo.Create(ctx, doc); err != nil {
		// La fila no quedó: retirar el archivo huérfano del storage.
		_ = uc.store.Remove(path)
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// ListForSession lista documentos según el rol: admin ve todos, un
// distribuidor solo los que tiene asignados.
func (uc *DocumentUseCase) ListForSession(ctx context.Context, role, email string, page dto.PageRequest) ([]*dto.DocumentResponse, dto.Pagination, error) {
	page.Normalize()

	var (
		docs  []*entity.Document
		total int
		err   error
	)
	if role == entity.RoleAdmin {
		docs, total, err = uc.docRepo.List(ctx, page.Limit, page.Offset())
	} else {
		var dist *entity.Distributor
		dist, err = uc.requireDistributor(ctx, email)
		if err == nil {
			docs, total, err = uc.docRepo.ListByDistributor(ctx, dist.ID, page.Limit, page.Offset())
		}
	}
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// GetForSession obtiene la ficha de un documento aplicando el gate de rol.
func (uc *DocumentUseCase) GetForSession(ctx context.Context, id, role, email string) (*dto.DocumentResponse, error) {
	doc, err := uc.authorize(ctx, id, role, email)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// FileForSession devuelve la ruta absoluta y el nombre original del PDF,
// aplicando el mismo gate que la ficha.
func (uc *DocumentUseCase) FileForSession(ctx context.Context, id, role, email string) (fullPath, fileName string, err error) {
	doc, err := uc.authorize(ctx, id, role, email)
	if err != nil {
		return "", "", err
	}
	return uc.store.FullPath(doc.FilePath), doc.FileName, nil
}

// Assign asigna el documento a los distribuidores indicados y crea una
// notificación por cada uno, todo en una transacción.
func (uc *DocumentUseCase) Assign(ctx context.Context, documentID string, in dto.AssignDocumentRequest) error {
	if len(in.DistributorIDs) == 0 {
		return domain.EField(domain.KindValidation, "distributorIds no puede estar vacío", "distributorIds")
	}
	doc, err := uc.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.NotFound("documento no encontrado")
	}
	for _, distID := range in.DistributorIDs {
		dist, err := uc.distRepo.GetByID(ctx, distID)
		if err != nil {
			return err
		}
		if dist == nil {
			return domain.NotFound("distribuidor no encontrado: " + distID)
		}
	}

	now := time.Now()
	return uc.tx.RunAssignment(ctx, func(documents repository.DocumentRepository, notifications repository.NotificationRepository) error {
		if err := documents.Assign(ctx, documentID, in.DistributorIDs); err != nil {
			return err
		}
		for _, distID := range in.DistributorIDs {
			n := &entity.Notification{
				ID:            uuid.New().String(),
				DistributorID: distID,
				Type:          entity.NotificationDocument,
				Title:         "Nuevo documento disponible",
				Message:       doc.Title,
				CreatedAt:     now,
			}
			if err := notifications.Create(ctx, n); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete elimina la ficha y luego retira el archivo del storage (best effort).
func (uc *DocumentUseCase) Delete(ctx context.Context, id string) error {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.NotFound("documento no encontrado")
	}
	if err := uc.docRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = uc.store.Remove(doc.FilePath)
	return nil
}

// authorize carga el documento y verifica que el rol tenga acceso: admin
// siempre, distribuidor solo si el documento le fue asignado.
func (uc *DocumentUseCase) authorize(ctx context.Context, id, role, email string) (*entity.Document, error) {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NotFound("documento no encontrado")
	}
	if role == entity.RoleAdmin {
		return doc, nil
	}
	dist, err := uc.requireDistributor(ctx, email)
	if err != nil {
		return nil, err
	}
	assigned, err := uc.docRepo.IsAssigned(ctx, id, dist.ID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, domain.Forbidden("el documento no está asignado a su distribuidora")
	}
	return doc, nil
}

// requireDistributor resuelve el distribuidor emparejado a la sesión por
// email (el par no tiene FK, el email es la llave de emparejamiento).
func (uc *DocumentUseCase) requireDistributor(ctx context.Context, email string) (*entity.Distributor, error) {
	dist, err := uc.distRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, domain.Forbidden("la cuenta no está asociada a un distribuidor")
	}
	return dist, nil
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		FileName:    d.FileName,
		FileSize:    d.FileSize,
		ContentType: d.ContentType,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   d.CreatedAt,
	}
}
