package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
// Price y Stock son punteros para distinguir "no enviado" de cero.
type CreateProductRequest struct {
	Name           string           `json:"name"`
	Price          *decimal.Decimal `json:"price"`
	Stock          *decimal.Decimal `json:"stock"`
	ExpirationDate string           `json:"expiration_date"`
}

// UpdateProductRequest entrada para actualizar parcialmente un producto.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Price          *decimal.Decimal `json:"price"`
	Stock          *decimal.Decimal `json:"stock"`
	ExpirationDate *string          `json:"expiration_date"`
}

// ProductResponse salida de un producto, anotada con su estado de caducidad.
// Status queda vacío si la fecha guardada no parsea; la fila no se omite.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Stock          decimal.Decimal `json:"stock"`
	ExpirationDate string          `json:"expiration_date"`
	Status         string          `json:"status,omitempty"`
	DaysUntil      *int            `json:"days_until_expiration,omitempty"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
