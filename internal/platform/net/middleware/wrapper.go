// Package middleware wraps the chi middlewares the API mounts so modules never import chi directly
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"

	pstrings "formvoice/internal/platform/strings"
)

// RequestID reuses an inbound X-Request-ID or mints one
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP for RemoteAddr
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// NoCache disables client and proxy caching of form state
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Compress compresses responses at level (see compress/flate)
func Compress(level int) func(http.Handler) http.Handler {
	c := chimw.NewCompressor(level)
	return c.Handler
}

// StripSlashes routes /forms/policy/ as /forms/policy
func StripSlashes() func(http.Handler) http.Handler { return chimw.StripSlashes }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// Throttle caps in-flight requests; excess requests wait up to wait then get 429
func Throttle(limit int, wait time.Duration) func(http.Handler) http.Handler {
	return chimw.ThrottleBacklog(limit, limit, wait)
}

// CORSOptions is the subset of go-chi/cors the API configures
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS wraps go-chi/cors; empty method and header lists get API defaults
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "PATCH", "OPTIONS"}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		MaxAge:         o.MaxAge,
	})
}
