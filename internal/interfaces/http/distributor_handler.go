package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

// DistributorHandler administración de distribuidores. El alta, la edición y
// la baja mantienen la cuenta de usuario emparejada dentro de la misma
// transacción (eso vive en el caso de uso, no acá).
type DistributorHandler struct {
	distUC *usecase.DistributorUseCase
}

func NewDistributorHandler(distUC *usecase.DistributorUseCase) *DistributorHandler {
	return &DistributorHandler{distUC: distUC}
}

func (h *DistributorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo de la petición inválido"))
	}
	out, err := h.distUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID un administrador consulta cualquier distribuidor; un distribuidor
// sólo puede consultar su propia ficha.
func (h *DistributorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.distUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if GetRole(c) != entity.RoleAdmin && out.Email != GetEmail(c) {
		return respondError(c, domain.Forbidden("no tiene permisos para esta operación"))
	}
	return respondOK(c, out)
}

func (h *DistributorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.Validation("parámetros de paginación inválidos"))
	}
	out, pagination, err := h.distUC.List(c.Context(), c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, pagination)
}

func (h *DistributorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo de la petición inválido"))
	}
	out, err := h.distUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *DistributorHandler) Delete(c *fiber.Ctx) error {
	if err := h.distUC.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
