package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"formvoice/internal/platform/logger"
)

// AccessLogOptions tunes AccessLog
type AccessLogOptions struct {
	// Slow logs requests at or above it as warnings; 0 never does
	Slow time.Duration
}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// AccessLog writes one zerolog line per request through the request scoped logger.
// The form type is logged when the matched route has a {formType} param
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			elapsed := time.Since(start)

			log := logger.C(r.Context())
			evt := log.Info()
			if sw.status >= http.StatusInternalServerError || (opt.Slow > 0 && elapsed >= opt.Slow) {
				evt = log.Warn()
			}
			if ft := chi.URLParam(r, "formType"); ft != "" {
				evt = evt.Str("form_type", ft)
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Int("bytes", sw.bytes).
				Dur("elapsed", elapsed).
				Msg("request")
		})
	}
}
