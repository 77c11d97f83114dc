package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lmedina/abarrotes-api/internal/application/dto"
	"github.com/lmedina/abarrotes-api/internal/domain"
)

// respondError traduce un error de dominio a la respuesta HTTP.
// Exactamente una notificación por operación fallida; nada se traga.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrPartialFailure):
		// El movimiento quedó en el libro pero el stock no se ajustó:
		// estado incierto, no un simple fallo.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code:    "PARTIAL_FAILURE",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrBackendUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "BACKEND_UNAVAILABLE",
			Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: err.Error(),
		})
	}
}
