package restbackend

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lmedina/abarrotes-api/internal/domain/entity"
	"github.com/lmedina/abarrotes-api/internal/domain/repository"
)

// Colecciones de movimientos en el backend.
const (
	EntriesCollection = "entries"
	OutputsCollection = "outputs"
)

// movementDoc representación en el wire de un movimiento.
// Nombres de campo estables por compatibilidad con el backend existente.
type movementDoc struct {
	ID        flexID          `json:"id"`
	ProductID flexID          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Date      time.Time       `json:"date"`
}

// movementCreateDoc cuerpo del POST de un movimiento: sin id (lo asigna el
// backend) y con productId numérico.
type movementCreateDoc struct {
	ProductID int64           `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Date      time.Time       `json:"date"`
}

// MovementRepository implementación de repository.MovementRepository sobre
// una colección de movimientos (entries u outputs) del backend.
type MovementRepository struct {
	client     *Client
	collection string
}

// NewMovementRepository construye el repositorio atado a una colección.
func NewMovementRepository(client *Client, collection string) *MovementRepository {
	return &MovementRepository{client: client, collection: collection}
}

// List devuelve todos los movimientos de la colección.
func (r *MovementRepository) List(ctx context.Context) ([]entity.Movement, error) {
	var docs []movementDoc
	if err := r.client.do(ctx, http.MethodGet, r.collection, "/"+r.collection, nil, &docs); err != nil {
		return nil, err
	}
	movements := make([]entity.Movement, 0, len(docs))
	for _, d := range docs {
		movements = append(movements, entity.Movement{
			ID:        int64(d.ID),
			ProductID: int64(d.ProductID),
			Quantity:  d.Quantity,
			Date:      d.Date,
		})
	}
	return movements, nil
}

// Create añade un movimiento a la colección; el backend asigna el id.
func (r *MovementRepository) Create(ctx context.Context, m entity.Movement) (*entity.Movement, error) {
	in := movementCreateDoc{
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Date:      m.Date,
	}
	var out movementDoc
	if err := r.client.do(ctx, http.MethodPost, r.collection, "/"+r.collection, in, &out); err != nil {
		return nil, err
	}
	return &entity.Movement{
		ID:        int64(out.ID),
		ProductID: int64(out.ProductID),
		Quantity:  out.Quantity,
		Date:      out.Date,
	}, nil
}

var _ repository.MovementRepository = (*MovementRepository)(nil)
