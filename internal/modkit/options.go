package modkit

import (
	"net/http"

	"formvoice/internal/modkit/httpkit"
)

// Option adjusts how a module is built
type Option func(*Built)

// WithName names the module in logs
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the route prefix, e.g. /forms
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends middleware scoped to the module's routes
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts injects the port set the module depends on; its type is owned by that module
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// WithRegister adds routes after the module's own
func WithRegister(fn func(httpkit.Router)) Option { return func(b *Built) { b.Register = fn } }
