package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "formvoice/internal/platform/errors"
	"formvoice/internal/platform/logger"
	pnet "formvoice/internal/platform/net"
)

// panicBody mirrors the API envelope without importing the http package
type panicBody struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error"`
	RequestID  string         `json:"request_id,omitempty"`
}

// RecoverJSON turns a handler panic into a JSON 500 and logs the stack.
// http.ErrAbortHandler is re-panicked so the server can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(panicBody{
				StatusCode: http.StatusInternalServerError,
				Status:     http.StatusText(http.StatusInternalServerError),
				Code:       perr.ErrorCodePanic,
				Error:      "panic recovered",
				RequestID:  reqID,
			})
		}()
		next.ServeHTTP(w, r)
	})
}
