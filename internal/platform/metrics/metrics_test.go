package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func fresh() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return New(reg, reg), reg
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	METRIC:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue METRIC
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestObserveInterpretation(t *testing.T) {
	m, reg := fresh()
	m.ObserveInterpretation("policy", true, "preposition", time.Millisecond)
	m.ObserveInterpretation("policy", true, "preposition", time.Millisecond)
	m.ObserveInterpretation("policy", false, "", time.Millisecond)

	got := counterValue(t, reg, "formvoice_interpretations_total",
		map[string]string{"form_type": "policy", "outcome": OutcomeRecognized, "strategy": "preposition"})
	if got != 2 {
		t.Fatalf("recognized = %v", got)
	}
	got = counterValue(t, reg, "formvoice_interpretations_total",
		map[string]string{"outcome": OutcomeUnrecognized, "strategy": "none"})
	if got != 1 {
		t.Fatalf("unrecognized = %v", got)
	}
}

func TestFormUpdated(t *testing.T) {
	m, reg := fresh()
	m.FormUpdated("policy", "patch", 3)
	m.FormUpdated("policy", "patch", 0)
	if got := counterValue(t, reg, "formvoice_form_field_updates_total", map[string]string{"source": "patch"}); got != 3 {
		t.Fatalf("updates = %v", got)
	}
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *Metrics
	m.ObserveInterpretation("x", true, "", 0)
	m.FormUpdated("x", "y", 1)
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("code = %d", rr.Code)
	}
}

func TestMiddleware_RoutePattern(t *testing.T) {
	m, reg := fresh()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/forms/{formType}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Get("/metrics", m.Handler().ServeHTTP)

	for range 2 {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/forms/policy", nil))
	}

	got := counterValue(t, reg, "formvoice_http_requests_total",
		map[string]string{"route": "/forms/{formType}", "status": "204"})
	if got != 2 {
		t.Fatalf("requests = %v", got)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rr.Body)
	if !strings.Contains(string(body), "formvoice_http_requests_total") {
		t.Fatalf("metrics body missing counter:\n%s", body)
	}
}
