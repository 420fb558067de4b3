// Package httpkit is what modules mount routes with, so they never import
// internal/platform/net/http directly
package httpkit

import phttp "formvoice/internal/platform/net/http"

type (
	// Envelope is the JSON body every endpoint replies with
	Envelope = phttp.Envelope

	// Response lets a handler pick its own status
	Response = phttp.Response

	// Router is the routing seam
	Router = phttp.Router
)

// Status wraps data with an explicit status code
func Status(code int, data any) Response { return phttp.Status(code, data) }
