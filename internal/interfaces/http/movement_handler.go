package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lmedina/abarrotes-api/internal/application/dto"
	"github.com/lmedina/abarrotes-api/internal/application/inventory"
)

// MovementHandler maneja el historial y el registro de entradas y salidas.
type MovementHandler struct {
	ledger *inventory.LedgerUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledger *inventory.LedgerUseCase) *MovementHandler {
	return &MovementHandler{ledger: ledger}
}

// ListEntries historial de entradas, más reciente primero.
func (h *MovementHandler) ListEntries(c *fiber.Ctx) error {
	out, err := h.ledger.ListEntries(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateEntry registra una entrada de stock.
func (h *MovementHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledger.RecordEntry(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOutputs historial de salidas, más reciente primero.
func (h *MovementHandler) ListOutputs(c *fiber.Ctx) error {
	out, err := h.ledger.ListOutputs(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateOutput registra una salida de stock; con stock insuficiente responde
// 409 INSUFFICIENT_STOCK sin escribir nada.
func (h *MovementHandler) CreateOutput(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ledger.RecordOutput(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
