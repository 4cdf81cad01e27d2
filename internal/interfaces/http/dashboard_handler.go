package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
)

// DashboardHandler tablero del administrador: contadores agregados y los
// documentos más recientes.
type DashboardHandler struct {
	dashUC *usecase.DashboardUseCase
}

func NewDashboardHandler(dashUC *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashUC: dashUC}
}

func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.dashUC.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}
