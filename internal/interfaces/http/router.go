package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lmedina/abarrotes-api/internal/application/analytics"
	"github.com/lmedina/abarrotes-api/internal/application/inventory"
	"github.com/lmedina/abarrotes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	Ledger      *inventory.LedgerUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Reporte de caducidad
	api.Get("/expiration", productHandler.ListExpiration)

	// Movimientos de stock (libro append-only)
	movementHandler := NewMovementHandler(deps.Ledger)
	api.Get("/entries", movementHandler.ListEntries)
	api.Post("/entries", movementHandler.CreateEntry)
	api.Get("/outputs", movementHandler.ListOutputs)
	api.Post("/outputs", movementHandler.CreateOutput)

	// Tablero
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)
}
