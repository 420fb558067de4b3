// Package metrics holds the prometheus collectors the API exports on /metrics
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for interpretations
const (
	OutcomeRecognized   = "recognized"
	OutcomeUnrecognized = "unrecognized"
)

// Metrics bundles the collectors; a nil *Metrics records nothing
type Metrics struct {
	Interpretations   *prometheus.CounterVec
	InterpretDuration *prometheus.HistogramVec
	FormUpdates       *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// Default is registered on the prometheus default registry
var Default = New(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

// New registers a fresh set of collectors on reg
func New(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Interpretations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formvoice_interpretations_total",
				Help: "Commands interpreted, by form type, outcome and extraction strategy",
			},
			[]string{"form_type", "outcome", "strategy"},
		),
		InterpretDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "formvoice_interpret_duration_seconds",
				Help:    "Time spent interpreting one command",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"form_type"},
		),
		FormUpdates: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formvoice_form_field_updates_total",
				Help: "Field values written, by form type and source",
			},
			[]string{"form_type", "source"},
		),
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formvoice_http_requests_total",
				Help: "HTTP requests served, by method, route pattern and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "formvoice_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route pattern",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		gatherer: g,
	}
}

// ObserveInterpretation records one interpreter call
func (m *Metrics) ObserveInterpretation(formType string, recognized bool, strategy string, d time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeUnrecognized
	if recognized {
		outcome = OutcomeRecognized
	}
	if strategy == "" {
		strategy = "none"
	}
	m.Interpretations.WithLabelValues(formType, outcome, strategy).Inc()
	m.InterpretDuration.WithLabelValues(formType).Observe(d.Seconds())
}

// FormUpdated counts n field writes from source (patch, command, reset)
func (m *Metrics) FormUpdated(formType, source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.FormUpdates.WithLabelValues(formType, source).Add(float64(n))
}

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency keyed by the chi route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
