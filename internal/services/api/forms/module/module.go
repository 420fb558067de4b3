// Package module wires forms into the API using modkit
package module

import (
	"formvoice/internal/core/fields"
	modkit "formvoice/internal/modkit"
	"formvoice/internal/modkit/httpkit"
	formshttp "formvoice/internal/services/api/forms/http"
	formsrepo "formvoice/internal/services/api/forms/repo"
	formssvc "formvoice/internal/services/api/forms/service"
)

// Module serves /forms
type Module struct {
	b     modkit.Built
	svc   formssvc.Service
	ports Ports
}

// New constructs a forms module; values live in postgres when deps.PG is set,
// then redis when deps.Redis is set, in memory otherwise
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("forms"), modkit.WithPrefix("/forms")}, opts...)...)

	var repo formsrepo.Repo
	switch {
	case deps.PG != nil:
		repo = formsrepo.NewPG().Bind(deps.PG)
	case deps.Redis != nil:
		repo = formsrepo.NewRedis(deps.Redis)
	default:
		repo = formsrepo.NewMemory()
	}
	svc := formssvc.New(repo, fields.MustLoadAll(), formssvc.WithMetrics(deps.Metrics))

	return &Module{b: b, svc: svc, ports: Ports{Forms: adaptFormsPort{svc: svc}}}
}

// MountRoutes mounts the forms routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(r httpkit.Router) { formshttp.Register(r, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the route prefix
func (m *Module) Prefix() string { return m.b.Prefix }
