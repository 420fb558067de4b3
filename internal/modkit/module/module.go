// Package module is the module contract and typed port lookup, kept apart
// from modkit so a module can import it next to its own port types
package module

import phttp "formvoice/internal/platform/net/http"

// Module is a mountable unit of the API
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
