package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"formvoice/internal/platform/config"
)

func chain(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestStackFromConfig(t *testing.T) {
	t.Setenv("T_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("T_MAX_IN_FLIGHT", "8")
	t.Setenv("T_REQUEST_TIMEOUT", "2s")

	o := StackFromConfig(config.New().Prefix("T_"))
	if len(o.CORSOrigins) != 2 || o.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %v", o.CORSOrigins)
	}
	if o.MaxInFlight != 8 || o.Timeout != 2*time.Second || o.Slow != 500*time.Millisecond {
		t.Fatalf("options = %+v", o)
	}
}

func TestCommonStack_ServesThroughToHandler(t *testing.T) {
	var gotID string
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusAccepted)
	}), CommonStack(StackFromConfig(config.New().Prefix("T_"))))

	req := httptest.NewRequest(http.MethodGet, "/forms/policy/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusAccepted || gotID != "req-1" {
		t.Fatalf("code=%d id=%q", rr.Code, gotID)
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatalf("NoCache did not run")
	}
}

func TestCommonStack_Heartbeat(t *testing.T) {
	h := chain(http.NotFoundHandler(), CommonStack(StackOptions{}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
}

func TestCommonStack_PanicBecomesJSON500(t *testing.T) {
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), CommonStack(StackOptions{}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rr.Code)
	}
}
