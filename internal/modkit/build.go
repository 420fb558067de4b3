package modkit

import (
	"net/http"
	"strings"

	"formvoice/internal/modkit/httpkit"
)

// Built is a module's resolved options
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(httpkit.Router)
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	if b.Prefix != "" && !strings.HasPrefix(b.Prefix, "/") {
		b.Prefix = "/" + b.Prefix
	}
	return b
}

// Mount registers routes, then b.Register, under b.Prefix behind b.Mw
func (b Built) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	r.Route(b.Prefix, func(sub httpkit.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		if routes != nil {
			routes(sub)
		}
		if b.Register != nil {
			b.Register(sub)
		}
	})
}
