package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"formvoice/internal/core/fields"
	"formvoice/internal/core/interpret"
	phttp "formvoice/internal/platform/net/http"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type interps map[string]*interpret.Interpreter

func (i interps) FormTypes() []string { return []string{"policy"} }
func (i interps) Interpreter(ft string) (*interpret.Interpreter, error) {
	if in, ok := i[ft]; ok {
		return in, nil
	}
	return nil, errors.New("missing")
}

func serve(t *testing.T, d Deps, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	return rr
}

func TestReady(t *testing.T) {
	tests := []struct {
		name string
		d    Deps
		code int
		want string
	}{
		{"no backends", Deps{}, 200, `"status":"ok"`},
		{"disabled backend", Deps{Backends: []Backend{{Name: "pg"}}}, 200, `"name":"pg","status":"skipped"`},
		{"pg ok", Deps{Backends: []Backend{{"pg", pinger{}}}}, 200, `"status":"ok"`},
		{"ch down", Deps{Backends: []Backend{{"pg", pinger{}}, {"ch", pinger{err: errors.New("refused")}}}}, 503, `"error":"refused"`},
		{"unknown backend", Deps{Backends: []Backend{{"pg", struct{}{}}}}, 200, `"status":"degraded"`},
		{"redis down", Deps{Backends: []Backend{{"redis", pinger{err: errors.New("refused")}}}}, 503, `"name":"redis","status":"fail"`},
	}
	for _, tc := range tests {
		rr := serve(t, tc.d, "/ready")
		if rr.Code != tc.code || !strings.Contains(rr.Body.String(), tc.want) {
			t.Fatalf("%s: %d %s", tc.name, rr.Code, rr.Body.String())
		}
	}
}

func TestReady_KeepsBackendOrder(t *testing.T) {
	d := Deps{Backends: []Backend{{"pg", pinger{}}, {"ch", nil}, {"redis", pinger{}}}}
	body := serve(t, d, "/ready").Body.String()
	pg, ch, rd := strings.Index(body, `"pg"`), strings.Index(body, `"ch"`), strings.Index(body, `"redis"`)
	if pg < 0 || !(pg < ch && ch < rd) {
		t.Fatalf("order: %s", body)
	}
}

func TestHealthAndService(t *testing.T) {
	d := Deps{ServiceName: "formvoice-api", StartedAt: time.Now().Add(-time.Minute)}
	if rr := serve(t, d, "/health"); !strings.Contains(rr.Body.String(), `"ok":true`) {
		t.Fatalf("health = %s", rr.Body.String())
	}
	if rr := serve(t, d, "/service"); !strings.Contains(rr.Body.String(), `"name":"formvoice-api"`) {
		t.Fatalf("service = %s", rr.Body.String())
	}
	if rr := serve(t, d, "/version"); !strings.Contains(rr.Body.String(), `"service":"formvoice-api"`) {
		t.Fatalf("version = %s", rr.Body.String())
	}
}

func TestInterpreter(t *testing.T) {
	d, err := fields.Load("policy")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rr := serve(t, Deps{Interpreters: interps{"policy": interpret.New(d)}}, "/interpreter")
	body := rr.Body.String()
	if rr.Code != 200 || !strings.Contains(body, `"form_type":"policy"`) || !strings.Contains(body, `"prepositions":["to","as","with","is","for"]`) {
		t.Fatalf("interpreter = %d %s", rr.Code, body)
	}

	rr = serve(t, Deps{}, "/interpreter")
	if !strings.Contains(rr.Body.String(), `"forms":[]`) {
		t.Fatalf("empty interpreter = %s", rr.Body.String())
	}
}
