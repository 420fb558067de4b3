package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI scopes mw and the routes registered by mount under /api/{version}
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api/"+strings.Trim(version, "/"), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}
