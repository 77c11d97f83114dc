package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lmedina/abarrotes-api/pkg/metrics"
)

// MetricsMiddleware registra contador y duración por petición HTTP.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		// Ruta registrada, no URL cruda, para acotar la cardinalidad.
		path := c.Route().Path
		method := c.Method()
		code := strconv.Itoa(status)

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())

		return err
	}
}
