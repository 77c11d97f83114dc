// Package expiration clasifica el estado de caducidad de un producto a
// partir de su fecha de caducidad y de un instante de referencia.
//
// Todas las funciones son puras: el "hoy" se inyecta siempre como parámetro,
// nunca se lee el reloj del sistema aquí dentro.
package expiration

import (
	"fmt"
	"time"

	"github.com/lmedina/abarrotes-api/internal/domain"
)

// Status estado de ciclo de vida derivado de la fecha de caducidad.
type Status string

const (
	// StatusExpired la fecha de caducidad ya pasó.
	StatusExpired Status = "expired"
	// StatusNearExpiry caduca hoy o dentro de la ventana de aviso.
	StatusNearExpiry Status = "near_expiry"
	// StatusCurrent caduca después de la ventana de aviso.
	StatusCurrent Status = "current"
)

// DefaultNearDays ventana de aviso por defecto: 0 <= días <= 7 es "por caducar".
const DefaultNearDays = 7

const dateLayout = "2006-01-02"

const dayMillis = 24 * 60 * 60 * 1000

// DaysUntil calcula los días de calendario completos entre el inicio del día
// de now y el final (23:59:59.999 local) del día de caducidad:
// floor(diferenciaMs / 86_400_000). Una caducidad el mismo día da 0; un día
// de calendario en el pasado da -1.
//
// expirationDate debe venir en "YYYY-MM-DD"; si no parsea se devuelve
// domain.ErrInvalidInput.
func DaysUntil(expirationDate string, now time.Time) (int, error) {
	loc := now.Location()
	exp, err := time.ParseInLocation(dateLayout, expirationDate, loc)
	if err != nil {
		return 0, fmt.Errorf("%w: fecha de caducidad %q", domain.ErrInvalidInput, expirationDate)
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	end := time.Date(exp.Year(), exp.Month(), exp.Day(), 23, 59, 59, int(999*time.Millisecond), loc)

	return int(floorDiv(end.Sub(start).Milliseconds(), dayMillis)), nil
}

// Classify clasifica con la ventana por defecto de 7 días.
// La caducidad en el límite exacto del día pertenece al día que nombra, no al
// siguiente; la ventana "por caducar" incluye tanto 0 como 7.
func Classify(expirationDate string, now time.Time) (Status, error) {
	return ClassifyWindow(expirationDate, now, DefaultNearDays)
}

// ClassifyWindow clasifica con una ventana de aviso configurable:
// expired cuando días < 0, near_expiry cuando 0 <= días <= nearDays,
// current cuando días > nearDays.
func ClassifyWindow(expirationDate string, now time.Time, nearDays int) (Status, error) {
	days, err := DaysUntil(expirationDate, now)
	if err != nil {
		return "", err
	}
	switch {
	case days < 0:
		return StatusExpired, nil
	case days <= nearDays:
		return StatusNearExpiry, nil
	default:
		return StatusCurrent, nil
	}
}

// floorDiv división entera redondeando hacia -inf (la de Go trunca hacia 0).
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
