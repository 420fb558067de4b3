package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "formvoice/internal/platform/errors"
	"formvoice/internal/platform/net/middleware"
	"formvoice/internal/platform/testkit"
)

func TestRecoverJSON(t *testing.T) {
	h := middleware.RequestID()(middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("interpreter exploded")
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands/policy/apply", nil)
	req.Header.Set("X-Request-ID", "rid-9")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError || rr.Header().Get("X-Request-ID") != "rid-9" {
		t.Fatalf("code=%d headers=%v", rr.Code, rr.Header())
	}
	var body struct {
		Code      perr.ErrorCode `json:"code"`
		Error     string         `json:"error"`
		RequestID string         `json:"request_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != perr.ErrorCodePanic || body.RequestID != "rid-9" || body.Error != "panic recovered" {
		t.Fatalf("body = %+v", body)
	}
}

func TestRecoverJSON_AbortHandlerPropagates(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	testkit.MustPanic(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRecoverJSON_NoPanic(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("code = %d", rr.Code)
	}
}
