// Package metrics reúne las métricas Prometheus del BFF en un registry propio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados usados como etiqueta.
const (
	ResultadoOK    = "ok"
	ResultadoError = "error"
	ResultadoHit   = "hit"
	ResultadoMiss  = "miss"
	ResultadoStale = "stale"
)

// Metrics contadores del BFF. Un *Metrics nil es válido y no registra nada.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	backend         *prometheus.CounterVec
	obsoletas       prometheus.Counter
	cacheTasa       *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New crea el registry y registra las métricas.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	backend := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "negocify_backend_requests_total",
		Help: "Llamadas al backend por operación y resultado.",
	}, []string{"operacion", "resultado"})
	obsoletas := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "negocify_respuestas_obsoletas_total",
		Help: "Respuestas descartadas porque el almacén seleccionado cambió durante la consulta.",
	})
	cacheTasa := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "negocify_tasa_cache_total",
		Help: "Consultas al caché del valor del dólar por resultado.",
	}, []string{"resultado"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "negocify_http_requests_total",
		Help: "Peticiones HTTP por ruta y código.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "negocify_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP por ruta.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	registry.MustRegister(backend, obsoletas, cacheTasa, requests, duration)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		backend:         backend,
		obsoletas:       obsoletas,
		cacheTasa:       cacheTasa,
		requestsTotal:   requests,
		requestDuration: duration,
	}
}

// Handler http.Handler para /metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry expone el registry para tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Backend cuenta una llamada al backend.
func (m *Metrics) Backend(operacion string, err error) {
	if m == nil {
		return
	}
	resultado := ResultadoOK
	if err != nil {
		resultado = ResultadoError
	}
	m.backend.WithLabelValues(operacion, resultado).Inc()
}

// RespuestaObsoleta cuenta una respuesta descartada por cambio de almacén.
func (m *Metrics) RespuestaObsoleta() {
	if m == nil {
		return
	}
	m.obsoletas.Inc()
}

// CacheTasa cuenta un acceso al caché del dólar (hit, miss, stale).
func (m *Metrics) CacheTasa(resultado string) {
	if m == nil {
		return
	}
	m.cacheTasa.WithLabelValues(resultado).Inc()
}

// Peticion registra una petición HTTP ya respondida.
func (m *Metrics) Peticion(route string, status int, inicio time.Time) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(time.Since(inicio).Seconds())
}
