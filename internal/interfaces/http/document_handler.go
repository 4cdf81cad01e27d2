package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
	"github.com/jhoicas/Distriquim-api/internal/domain"
)

// DocumentHandler documentos PDF: subida y asignación (admin), consulta y
// descarga (admin o distribuidor asignado; la autorización fina vive en el
// caso de uso).
type DocumentHandler struct {
	docUC *usecase.DocumentUseCase
}

func NewDocumentHandler(docUC *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{docUC: docUC}
}

// Upload multipart/form-data: campos title y description más el archivo "file".
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo de la petición inválido"))
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, domain.EField(domain.KindValidation, "el archivo es obligatorio", "file"))
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, domain.Internal(err))
	}
	defer f.Close()

	out, err := h.docUC.Upload(c.Context(), GetUserID(c), in, fh.Filename, fh.Header.Get(fiber.HeaderContentType), f)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.Validation("parámetros de paginación inválidos"))
	}
	out, pagination, err := h.docUC.ListForSession(c.Context(), GetRole(c), GetEmail(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, pagination)
}

func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.docUC.GetForSession(c.Context(), c.Params("id"), GetRole(c), GetEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Download sirve el PDF como attachment con su nombre original.
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	fullPath, fileName, err := h.docUC.FileForSession(c.Context(), c.Params("id"), GetRole(c), GetEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Download(fullPath, fileName)
}

// Assign asigna el documento a distribuidores y genera sus notificaciones en
// una transacción.
func (h *DocumentHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo de la petición inválido"))
	}
	if err := h.docUC.Assign(c.Context(), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"assigned": len(in.DistributorIDs)})
}

func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.docUC.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
