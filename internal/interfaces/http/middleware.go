package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Clientes-api/pkg/logger"
	"github.com/jhoicas/Clientes-api/pkg/metrics"
)

// RequestLogger registra cada petición con zerolog y observa su duración en Prometheus.
func RequestLogger(log *logger.Logger, m *metrics.Collector) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler de fiber fije el status antes de medir.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		m.ObservarHTTP(c.Method(), route, status, elapsed)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("http request")
		return nil
	}
}
