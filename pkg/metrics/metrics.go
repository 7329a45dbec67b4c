package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados posibles de una operación del registro de clientes.
const (
	ResultadoOK        = "ok"
	ResultadoNotFound  = "not_found"
	ResultadoDuplicado = "already_exists"
	ResultadoInvalido  = "validation"
	ResultadoFallo     = "service_failure"
)

// Collector contadores e histogramas del servicio. Un *Collector nil no registra nada.
type Collector struct {
	registry    *prometheus.Registry
	operaciones *prometheus.CounterVec
	duracion    *prometheus.HistogramVec
	viables     *prometheus.CounterVec
}

// New crea un registro propio (no el global) con métricas de proceso y Go incluidas.
func New(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &Collector{
		registry: reg,
		operaciones: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operaciones_total",
				Help:      "Operaciones sobre clientes por tipo y resultado",
			},
			[]string{"operacion", "resultado"},
		),
		duracion: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duración de las peticiones HTTP",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		viables: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrados_total",
				Help:      "Clientes creados según viabilidad",
			},
			[]string{"es_viable"},
		),
	}
	reg.MustRegister(c.operaciones, c.duracion, c.viables)
	return c
}

// Operacion cuenta una operación con su resultado.
func (c *Collector) Operacion(operacion, resultado string) {
	if c == nil {
		return
	}
	c.operaciones.WithLabelValues(operacion, resultado).Inc()
}

// ClienteCreado cuenta un alta según su viabilidad.
func (c *Collector) ClienteCreado(esViable bool) {
	if c == nil {
		return
	}
	c.viables.WithLabelValues(strconv.FormatBool(esViable)).Inc()
}

// ObservarHTTP registra la duración de una petición.
func (c *Collector) ObservarHTTP(method, route string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.duracion.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Registry expone el registro (tests y handlers adicionales).
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler handler net/http para /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
