// Package module wires commands into the API using modkit
package module

import (
	"formvoice/internal/core/fields"
	modkit "formvoice/internal/modkit"
	"formvoice/internal/modkit/httpkit"
	cmdhttp "formvoice/internal/services/api/commands/http"
	cmdrepo "formvoice/internal/services/api/commands/repo"
	cmdsvc "formvoice/internal/services/api/commands/service"
)

// Module serves /commands
type Module struct {
	b     modkit.Built
	svc   *cmdsvc.Svc
	ports Exports
}

// New constructs the commands module. The forms port must be injected with WithPorts(Ports{...});
// activity goes to clickhouse when deps.CH is set and stays in memory otherwise
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("commands"),
		modkit.WithPrefix("/commands"),
	}, opts...)...)

	injected, _ := b.Ports.(Ports)
	if injected.Forms == nil {
		panic("commands module: Forms port not injected")
	}

	cfg := FromConfig(deps.Cfg)

	var repo cmdrepo.Repo
	if deps.CH != nil {
		repo = cmdrepo.NewCH(deps.CH)
	} else {
		repo = cmdrepo.NewMemory(cfg.ActivityCapacity)
	}
	svc := cmdsvc.New(repo, injected.Forms, fields.MustLoadAll(), cmdsvc.Options{
		Interpreter: cfg.interpreter(),
		Metrics:     deps.Metrics,
	})

	return &Module{b: b, svc: svc, ports: Exports{Commands: svc, Interpreters: svc}}
}

// MountRoutes mounts the command routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(r httpkit.Router) { cmdhttp.Register(r, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
