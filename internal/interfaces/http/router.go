package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/Clientes-api/internal/application/clientes"
	"github.com/jhoicas/Clientes-api/pkg/logger"
	"github.com/jhoicas/Clientes-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC   *clientes.ClienteUseCase
	Validator   *Validator
	Metrics     *metrics.Collector // nil = sin /metrics
	MetricsPath string
	Logger      *logger.Logger
	ServiceName string
	Ping        func(ctx context.Context) error // nil = /health sin verificar el store
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Logger, deps.Metrics))

	app.Get("/health", healthHandler(deps))
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	clientesGroup := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.Validator, deps.Metrics)
	clientesGroup.Post("/", clienteHandler.Create)
	clientesGroup.Get("/", clienteHandler.List)
	// /buscar antes de /:numeroDocumento para que no se tome como documento.
	clientesGroup.Get("/buscar", clienteHandler.Search)
	clientesGroup.Get("/:numeroDocumento", clienteHandler.GetByID)
	clientesGroup.Put("/:numeroDocumento", clienteHandler.Update)
	clientesGroup.Delete("/:numeroDocumento", clienteHandler.Delete)
}

func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":  "unavailable",
					"service": deps.ServiceName,
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	}
}
