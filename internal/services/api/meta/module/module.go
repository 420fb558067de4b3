// Package module wires meta endpoints into the API
package module

import (
	"time"

	"formvoice/internal/core/version"
	modkit "formvoice/internal/modkit"
	"formvoice/internal/modkit/httpkit"

	metahttp "formvoice/internal/services/api/meta/http"
)

// Module serves /meta. It exports no ports
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// Ports declares the optional ports meta reports on
type Ports struct {
	Interpreters metahttp.InterpreterSource
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	injected, _ := b.Ports.(Ports)
	d := metahttp.Deps{
		ServiceName:  version.Info().Service,
		StartedAt:    time.Now(),
		Backends:     []metahttp.Backend{{Name: "pg"}, {Name: "ch"}, {Name: "redis"}},
		Interpreters: injected.Interpreters,
	}
	// a typed nil would read as enabled, so only set what is there
	if deps.PG != nil {
		d.Backends[0].Target = deps.PG
	}
	if deps.CH != nil {
		d.Backends[1].Target = deps.CH
	}
	if deps.Redis != nil {
		d.Backends[2].Target = deps.Redis
	}
	return &Module{b: b, deps: d}
}

// MountRoutes mounts the meta routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(r httpkit.Router) { metahttp.Register(r, m.deps) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Ports returns nil
func (m *Module) Ports() any { return nil }
