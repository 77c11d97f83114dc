package dto

import "github.com/shopspring/decimal"

func init() {
	// Precios, stocks y cantidades viajan como números JSON, no como cadenas.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
