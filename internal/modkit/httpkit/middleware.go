package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"formvoice/internal/platform/config"
	"formvoice/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	MaxInFlight int           // 0 disables throttling
	Timeout     time.Duration // per request
	Slow        time.Duration // access log warns at or above this
}

// StackFromConfig reads CORS_ORIGINS, MAX_IN_FLIGHT, REQUEST_TIMEOUT and SLOW_REQUEST from c
func StackFromConfig(c config.Conf) StackOptions {
	return StackOptions{
		CORSOrigins: c.MayCSV("CORS_ORIGINS", []string{"*"}),
		MaxInFlight: c.MayInt("MAX_IN_FLIGHT", 256),
		Timeout:     c.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:        c.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
	}
}

// CommonStack returns the middleware every API route runs behind, outermost first.
// Callers append their own, e.g. metrics
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RequestScope(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight, 5*time.Second))
	}
	if o.Timeout > 0 {
		stack = append(stack, middleware.Timeout(o.Timeout))
	}
	return stack
}
