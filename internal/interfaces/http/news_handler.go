package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

// NewsHandler comunicados. Los distribuidores sólo ven los publicados; los
// administradores ven también los borradores.
type NewsHandler struct {
	newsUC *usecase.NewsUseCase
}

func NewNewsHandler(newsUC *usecase.NewsUseCase) *NewsHandler {
	return &NewsHandler{newsUC: newsUC}
}

// publishedOnly los borradores son visibles sólo para administradores.
func publishedOnly(c *fiber.Ctx) bool {
	return GetRole(c) != entity.RoleAdmin
}

func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveNewsRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo de la petición inválido"))
	}
	out, err := h.newsUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

func (h *NewsHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.newsUC.GetByID(c.Context(), c.Params("id"), publishedOnly(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *NewsHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.Validation("parámetros de paginación inválidos"))
	}
	out, pagination, err := h.newsUC.List(c.Context(), publishedOnly(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, pagination)
}

func (h *NewsHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveNewsRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo de la petición inválido"))
	}
	out, err := h.newsUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Publish publica el comunicado y notifica a los distribuidores activos en
// una transacción.
func (h *NewsHandler) Publish(c *fiber.Ctx) error {
	out, err := h.newsUC.Publish(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	if err := h.newsUC.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
