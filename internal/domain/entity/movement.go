package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntry  = "entry"  // entrada: incrementa el stock
	MovementTypeOutput = "output" // salida: decrementa el stock
)

// Movement representa un movimiento de stock (entrada o salida) sobre un
// producto. Es un registro inmutable: se crea una sola vez y nunca se
// modifica ni se borra desde este servicio. La referencia a Product es
// débil: el producto puede haber sido eliminado después.
type Movement struct {
	ID        int64
	ProductID int64
	Quantity  decimal.Decimal // kilogramos, siempre > 0
	Date      time.Time       // momento del movimiento, lo aporta el cliente
}
