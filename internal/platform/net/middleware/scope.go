package middleware

import (
	"net/http"

	"formvoice/internal/platform/logger"
	pnet "formvoice/internal/platform/net"
)

// RequestScope copies the chi request id into the logger context so logger.C
// stamps request_id on every line logged while serving the request.
// Mount it after RequestID
func RequestScope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if id := pnet.RequestID(ctx); id != "" {
				r = r.WithContext(logger.WithRequest(ctx, id, ""))
			}
			next.ServeHTTP(w, r)
		})
	}
}
