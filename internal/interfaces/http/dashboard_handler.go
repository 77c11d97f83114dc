package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lmedina/abarrotes-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen del tablero.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve los indicadores agregados del inventario y los últimos
// movimientos. Cada petición relee instantáneas frescas del backend.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
