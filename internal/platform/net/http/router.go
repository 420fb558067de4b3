package http

import "net/http"

// Handler is the handler shape routes take
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount routes on; chi sits behind it
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))

	// Mux is the root handler, also from a subrouter
	Mux() http.Handler
}
