package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario.
// Stock se maneja en kilogramos (admite fracciones); ExpirationDate es una
// fecha de calendario "YYYY-MM-DD" sin hora ni zona, tal como la persiste
// el backend.
type Product struct {
	ID             int64
	Name           string
	Price          decimal.Decimal // precio de venta por unidad
	Stock          decimal.Decimal // kilogramos, >= 0 tras toda mutación confirmada
	ExpirationDate string          // "YYYY-MM-DD"
}
