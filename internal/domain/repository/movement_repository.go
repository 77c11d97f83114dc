package repository

import (
	"context"

	"github.com/lmedina/abarrotes-api/internal/domain/entity"
)

// MovementRepository puerto de acceso a una colección de movimientos del
// backend (entries u outputs). El libro es append-only: no hay update ni
// delete de movimientos.
type MovementRepository interface {
	// List devuelve todos los movimientos de la colección.
	List(ctx context.Context) ([]entity.Movement, error)
	// Create añade un movimiento; el backend asigna el identificador.
	Create(ctx context.Context, m entity.Movement) (*entity.Movement, error)
}
