package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lmedina/abarrotes-api/internal/domain/entity"
)

// ProductPatch campos a actualizar parcialmente en un producto.
// Los punteros a nil se omiten del PATCH.
type ProductPatch struct {
	Name           *string
	Price          *decimal.Decimal
	Stock          *decimal.Decimal
	ExpirationDate *string
}

// IsEmpty indica si el patch no toca ningún campo.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Stock == nil && p.ExpirationDate == nil
}

// ProductRepository puerto de acceso a la colección products del backend.
type ProductRepository interface {
	// List devuelve todos los productos conocidos.
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID devuelve un producto o domain.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// Create crea el producto con el ID explícito que trae p
	// (el backend no asigna identificadores de producto).
	Create(ctx context.Context, p entity.Product) (*entity.Product, error)
	// Patch actualiza parcialmente un producto y devuelve el estado resultante.
	Patch(ctx context.Context, id int64, patch ProductPatch) (*entity.Product, error)
	// Delete elimina el producto.
	Delete(ctx context.Context, id int64) error
}
