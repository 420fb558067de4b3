package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	perr "formvoice/internal/platform/errors"
)

type chiRouter struct {
	root *chi.Mux
	r    chi.Router
}

// AdaptChi wraps m as a Router. Unmatched paths get a JSON 404 envelope
func AdaptChi(m *chi.Mux) Router {
	m.NotFound(Handle(func(r *http.Request) Response {
		return Error(perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
	}))
	return chiRouter{root: m, r: m}
}

func (c chiRouter) Get(p string, h Handler)    { c.r.Get(p, h) }
func (c chiRouter) Post(p string, h Handler)   { c.r.Post(p, h) }
func (c chiRouter) Patch(p string, h Handler)  { c.r.Patch(p, h) }
func (c chiRouter) Delete(p string, h Handler) { c.r.Delete(p, h) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{root: c.root, r: sub}) })
}

func (c chiRouter) Mux() http.Handler { return c.root }
