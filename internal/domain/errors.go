package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound el recurso referido no existe en el backend.
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrInvalidInput la entrada no cumple una regla local de validación.
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrInsufficientStock la salida pide más kilos de los que hay en stock.
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrBackendUnavailable fallo de red o del servicio de recursos.
	ErrBackendUnavailable = errors.New("backend no disponible")
	// ErrPartialFailure el movimiento quedó en el libro pero el stock no se
	// actualizó. Estado terminal: requiere conciliación manual, no se revierte.
	ErrPartialFailure = errors.New("fallo parcial: movimiento registrado sin ajuste de stock")
)
