package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
	"github.com/jhoicas/Distriquim-api/internal/domain"
)

// NotificationHandler bandeja de notificaciones del distribuidor autenticado.
// La cuenta se resuelve a su distribuidor por email dentro del caso de uso.
type NotificationHandler struct {
	notifUC *usecase.NotificationUseCase
}

func NewNotificationHandler(notifUC *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notifUC: notifUC}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.Validation("parámetros de paginación inválidos"))
	}
	out, pagination, err := h.notifUC.List(c.Context(), GetEmail(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, pagination)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	out, err := h.notifUC.UnreadCount(c.Context(), GetEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.notifUC.MarkRead(c.Context(), GetEmail(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"read": true})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.notifUC.MarkAllRead(c.Context(), GetEmail(c)); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"read": true})
}
