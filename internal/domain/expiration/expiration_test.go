package expiration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmedina/abarrotes-api/internal/domain"
	"github.com/lmedina/abarrotes-api/internal/domain/expiration"
)

// Instante de referencia fijo para todos los tests: 2024-06-10 a media mañana.
// La hora del día no debe influir: el cálculo normaliza al inicio del día.
var hoy = time.Date(2024, 6, 10, 10, 30, 0, 0, time.UTC)

func TestDaysUntil_Limites(t *testing.T) {
	cases := []struct {
		name string
		date string
		want int
	}{
		{"mismo día", "2024-06-10", 0},
		{"un día en el pasado", "2024-06-09", -1},
		{"límite superior de la ventana", "2024-06-17", 7},
		{"justo después de la ventana", "2024-06-18", 8},
		{"cinco días en el pasado", "2024-06-05", -5},
		{"cruce de mes", "2024-07-01", 21},
		{"cruce de año hacia atrás", "2023-12-31", -162},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := expiration.DaysUntil(tc.date, hoy)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDaysUntil_HoraDelDiaNoInfluye(t *testing.T) {
	medianoche := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	ultimoInstante := time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)

	d1, err := expiration.DaysUntil("2024-06-12", medianoche)
	require.NoError(t, err)
	d2, err := expiration.DaysUntil("2024-06-12", ultimoInstante)
	require.NoError(t, err)

	assert.Equal(t, d1, d2, "el resultado debe ser el mismo a cualquier hora del día de referencia")
	assert.Equal(t, 2, d1)
}

func TestClassify_Limites(t *testing.T) {
	cases := []struct {
		date string
		want expiration.Status
	}{
		{"2024-06-09", expiration.StatusExpired},
		{"2024-06-10", expiration.StatusNearExpiry},
		{"2024-06-17", expiration.StatusNearExpiry},
		{"2024-06-18", expiration.StatusCurrent},
	}
	for _, tc := range cases {
		got, err := expiration.Classify(tc.date, hoy)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "fecha %s", tc.date)
	}
}

// TestClassify_EquivalenciaConDaysUntil verifica la propiedad:
// expired <=> días < 0; near_expiry <=> 0 <= días <= 7; current <=> días > 7.
func TestClassify_EquivalenciaConDaysUntil(t *testing.T) {
	// Barrido de -20 a +20 días alrededor de la referencia.
	for offset := -20; offset <= 20; offset++ {
		date := hoy.AddDate(0, 0, offset).Format("2006-01-02")

		days, err := expiration.DaysUntil(date, hoy)
		require.NoError(t, err)
		status, err := expiration.Classify(date, hoy)
		require.NoError(t, err)

		switch {
		case days < 0:
			assert.Equal(t, expiration.StatusExpired, status, "fecha %s (días=%d)", date, days)
		case days <= 7:
			assert.Equal(t, expiration.StatusNearExpiry, status, "fecha %s (días=%d)", date, days)
		default:
			assert.Equal(t, expiration.StatusCurrent, status, "fecha %s (días=%d)", date, days)
		}
	}
}

func TestClassify_Idempotente(t *testing.T) {
	s1, err1 := expiration.Classify("2024-06-15", hoy)
	s2, err2 := expiration.Classify("2024-06-15", hoy)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, s1, s2, "misma entrada debe dar siempre la misma salida")
}

func TestClassifyWindow_VentanaConfigurable(t *testing.T) {
	// Con ventana de 2 días, el día 3 ya es current.
	s, err := expiration.ClassifyWindow("2024-06-13", hoy, 2)
	require.NoError(t, err)
	assert.Equal(t, expiration.StatusCurrent, s)

	s, err = expiration.ClassifyWindow("2024-06-12", hoy, 2)
	require.NoError(t, err)
	assert.Equal(t, expiration.StatusNearExpiry, s)
}

func TestDaysUntil_FechaInvalida(t *testing.T) {
	for _, bad := range []string{"", "no-es-fecha", "2024/06/10", "10-06-2024"} {
		_, err := expiration.DaysUntil(bad, hoy)
		require.Error(t, err, "entrada %q", bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Escenario del producto caducado: Bananas con caducidad 2024-06-05 vista
// el 2024-06-10 lleva 5 días caducada.
func TestClassify_EscenarioBananas(t *testing.T) {
	days, err := expiration.DaysUntil("2024-06-05", hoy)
	require.NoError(t, err)
	assert.Equal(t, -5, days)

	status, err := expiration.Classify("2024-06-05", hoy)
	require.NoError(t, err)
	assert.Equal(t, expiration.StatusExpired, status)
}
