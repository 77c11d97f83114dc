package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas Prometheus del servicio. Se registran en el registry por defecto
// y se exponen en GET /metrics.
var (
	// HTTPRequestsTotal total de peticiones HTTP atendidas por este servicio.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "abarrotes_http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration duración de las peticiones HTTP en segundos.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "abarrotes_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// MovementsRecordedTotal movimientos de stock confirmados (entrada/salida).
	MovementsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "abarrotes_movements_recorded_total",
			Help: "Total de movimientos de stock confirmados",
		},
		[]string{"type"},
	)

	// MovementsRejectedTotal movimientos rechazados antes de escribir.
	MovementsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "abarrotes_movements_rejected_total",
			Help: "Total de movimientos rechazados (validación o stock insuficiente)",
		},
		[]string{"type", "reason"},
	)

	// MovementsPartialTotal movimientos con fallo parcial: el libro registró
	// el movimiento pero el stock no se pudo actualizar.
	MovementsPartialTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "abarrotes_movements_partial_failures_total",
			Help: "Total de movimientos en estado de fallo parcial",
		},
		[]string{"type"},
	)

	// BackendRequestDuration duración de las llamadas al backend REST.
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "abarrotes_backend_request_duration_seconds",
			Help:    "Duración de las llamadas al backend de recursos en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "collection"},
	)
)

// TrackBackendRequest devuelve una función que registra la duración de una
// llamada al backend; pensada para usarse con defer.
func TrackBackendRequest(method, collection string) func(start time.Time) {
	return func(start time.Time) {
		BackendRequestDuration.WithLabelValues(method, collection).Observe(time.Since(start).Seconds())
	}
}

// RecordMovement incrementa el contador de movimientos confirmados.
func RecordMovement(movType string) {
	MovementsRecordedTotal.WithLabelValues(movType).Inc()
}

// RecordRejection incrementa el contador de movimientos rechazados.
func RecordRejection(movType, reason string) {
	MovementsRejectedTotal.WithLabelValues(movType, reason).Inc()
}

// RecordPartialFailure incrementa el contador de fallos parciales.
func RecordPartialFailure(movType string) {
	MovementsPartialTotal.WithLabelValues(movType).Inc()
}
