// Package api provides the HTTP API for the application
package api

import (
	"formvoice/internal/platform/config"
	"formvoice/internal/platform/logger"
	"formvoice/internal/platform/metrics"
	phttp "formvoice/internal/platform/net/http"
	"formvoice/internal/platform/store"

	"formvoice/internal/modkit"
	"formvoice/internal/modkit/httpkit"
	"formvoice/internal/modkit/module"
	"formvoice/internal/modkit/swaggerkit"

	commandsmod "formvoice/internal/services/api/commands/module"
	formsmod "formvoice/internal/services/api/forms/module"
	metamod "formvoice/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Metrics        *metrics.Metrics
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
		deps.Redis = opt.Store.Redis
	}

	// forms owns the field values; commands writes through its port
	forms := formsmod.New(deps)
	commands := commandsmod.New(deps, modkit.WithPorts(commandsmod.Ports{
		Forms: module.MustPortsOf[formsmod.Ports](forms).Forms,
	}))
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Interpreters: module.MustPortsOf[commandsmod.Exports](commands).Interpreters,
	}))

	mods := []module.Module{meta, forms, commands}

	stack := httpkit.CommonStack(httpkit.StackFromConfig(opt.Config))
	if opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
		stack = append(stack, opt.Metrics.Middleware)
	}

	// versioned API with a common middleware stack
	httpkit.MountAPI(r, "v1", stack, func(api httpkit.Router) {
		swaggerkit.Mount(r, swaggerkit.Options{
			Enabled:     opt.EnableSwagger,
			TitleSuffix: opt.Config.MayString("DOCS_TITLE_SUFFIX", ""),
		})
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
