package http

import (
	stdhttp "net/http"
	"strings"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof under prefix+"/pprof/" when enabled.
// A bare prefix redirects to the pprof index
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	prefix = "/" + strings.Trim(prefix, "/")
	pprof := stdhttp.StripPrefix(prefix, mw.Profiler())

	r.Get(prefix, func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		stdhttp.Redirect(w, req, prefix+"/pprof/", stdhttp.StatusMovedPermanently)
	})
	r.Handle(prefix+"/*", pprof)
}
