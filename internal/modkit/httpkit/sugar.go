package httpkit

import (
	"net/http"

	phttp "formvoice/internal/platform/net/http"
)

// Get mounts a body-less handler; its result becomes the envelope's data
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.Call(h))
}

// Post mounts a body-less POST handler
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, phttp.Call(h))
}

// PostJSON mounts a handler taking a validated T body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// PatchJSON mounts a PATCH handler taking a validated T body
func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Patch(path, phttp.JSONHandler(h))
}
