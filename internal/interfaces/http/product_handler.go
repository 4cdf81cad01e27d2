package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
	"github.com/jhoicas/Distriquim-api/internal/domain"
	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
)

// ProductHandler catálogo químico. El CRUD es de administradores; el listado
// y la lista de precios en PDF están abiertos a cualquier sesión.
type ProductHandler struct {
	productUC *usecase.ProductUseCase
}

func NewProductHandler(productUC *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo de la petición inválido"))
	}
	out, err := h.productUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.productUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// List los distribuidores sólo ven referencias activas; un administrador ve
// todo salvo que pida ?active=true.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.Validation("parámetros de paginación inválidos"))
	}
	activeOnly := GetRole(c) != entity.RoleAdmin || c.QueryBool("active")
	out, pagination, err := h.productUC.List(c.Context(), c.Query("search"), activeOnly, page)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, pagination)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Validation("cuerpo de la petición inválido"))
	}
	out, err := h.productUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.productUC.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": true})
}

// PriceList genera y sirve la lista de precios del catálogo activo en PDF.
func (h *ProductHandler) PriceList(c *fiber.Ctx) error {
	pdfBytes, err := h.productUC.PriceListPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lista-precios.pdf"`)
	return c.Send(pdfBytes)
}
