package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Distriquim-api/internal/application/dto"
	"github.com/jhoicas/Distriquim-api/internal/domain"
)

// statusForKind mapeo central Kind → status HTTP. Es el único lugar donde un
// error de dominio se traduce a status: los mensajes pueden cambiar sin
// romper nada (nunca se inspecciona el texto del error).
func statusForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindUnauthorized, domain.KindMissingRole, domain.KindTokenExpired, domain.KindTokenInvalid:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindAlreadyExists, domain.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// meta arma los metadatos de la respuesta; el requestId viene del middleware requestid.
func meta(c *fiber.Ctx) dto.Meta {
	m := dto.Meta{Timestamp: time.Now().UTC().Format(time.RFC3339)}
	if id, ok := c.Locals("requestid").(string); ok {
		m.RequestID = id
	}
	return m
}

// respondOK sobre de éxito con status 200.
func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.SuccessEnvelope{Success: true, Data: data, Meta: meta(c)})
}

// respondCreated sobre de éxito con status 201.
func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessEnvelope{Success: true, Data: data, Meta: meta(c)})
}

// respondList sobre de éxito para listados con bloque de paginación.
func respondList(c *fiber.Ctx, data interface{}, p dto.Pagination) error {
	return c.JSON(dto.ListEnvelope{Success: true, Data: data, Pagination: p, Meta: meta(c)})
}

// respondError traduce cualquier error al sobre de error. Los errores de
// dominio exponen su Kind como código de wire; el resto se loguea y sale como
// INTERNAL_ERROR genérico para no filtrar internals.
func respondError(c *fiber.Ctx, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		if de.Kind == domain.KindInternal && de.Err != nil {
			log.Error().Err(de.Err).Str("path", c.Path()).Msg("error interno")
		}
		return c.Status(statusForKind(de.Kind)).JSON(dto.ErrorEnvelope{
			Success: false,
			Error:   dto.ErrorBody{Code: string(de.Kind), Message: de.Message, Field: de.Field},
			Meta:    meta(c),
		})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no clasificado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorEnvelope{
		Success: false,
		Error:   dto.ErrorBody{Code: string(domain.KindInternal), Message: "error interno"},
		Meta:    meta(c),
	})
}
