package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para registrar una entrada o salida de stock.
// Date es opcional: si no viene se usa el instante actual.
type RecordMovementRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Date      *time.Time      `json:"date"`
}

// MovementRow fila de historial de movimientos con el nombre del producto
// resuelto. Si el producto ya no existe, ProductName lo dice explícitamente;
// la fila nunca se descarta.
type MovementRow struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        time.Time       `json:"date"`
}

// MovementListResponse historial de una colección de movimientos,
// ordenado por fecha descendente.
type MovementListResponse struct {
	Items []MovementRow `json:"items"`
	Total int           `json:"total"`
}

// MovementCommitResponse resultado de un movimiento confirmado: el registro
// añadido al libro y el producto con el stock ya ajustado.
type MovementCommitResponse struct {
	Movement MovementRow     `json:"movement"`
	Product  ProductResponse `json:"product"`
}
