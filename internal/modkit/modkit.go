// Package modkit builds API modules: each owns a route prefix, optional
// middleware, and a port set other modules are wired against
package modkit

import "formvoice/internal/modkit/module"

// Module is a mountable unit of the API
type Module = module.Module
