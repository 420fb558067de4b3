// Package http serves the meta endpoints: liveness, readiness, build info
// and a summary of the loaded interpreters
package http

import (
	stdctx "context"
	"net/http"
	"sync"
	"time"

	"formvoice/internal/core/interpret"
	"formvoice/internal/core/version"
	"formvoice/internal/modkit/httpkit"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by backends that can report readiness
type Pinger interface {
	Ping(stdctx.Context) error
}

// InterpreterSource lists the interpreters served by the API
type InterpreterSource interface {
	FormTypes() []string
	Interpreter(formType string) (*interpret.Interpreter, error)
}

// Backend is one dependency readiness reports on. A nil Target is a disabled
// backend and reports skipped
type Backend struct {
	Name   string
	Target any
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName  string
	StartedAt    time.Time
	Backends     []Backend
	Interpreters InterpreterSource
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/interpreter", h.interpreter)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"formvoice-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// Check statuses
const (
	CheckOK      = "ok"
	CheckFail    = "fail"
	CheckSkipped = "skipped"
	CheckUnknown = "unknown"
)

// ReadyCheck is the outcome for one backend
type ReadyCheck struct {
	Name      string `json:"name"   example:"pg"`
	Status    string `json:"status" example:"ok"`
	Error     string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
	ElapsedMs int64  `json:"elapsed_ms" example:"3"`
}

// ReadyResponse is ok, degraded when a backend cannot be pinged, or fail
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now" example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes the running process
type ServiceResponse struct {
	Name    string `json:"name"    example:"formvoice-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// InterpreterForm summarizes the interpreter of one form type
type InterpreterForm struct {
	FormType     string   `json:"form_type"     example:"policy"`
	Fields       int      `json:"fields"        example:"12"`
	Prepositions []string `json:"prepositions"  example:"to,as"`
	CommandVerbs []string `json:"command_verbs" example:"update,set"`
}

// InterpreterResponse reports the loaded interpreters and build info
type InterpreterResponse struct {
	Forms []InterpreterForm `json:"forms"`
	Build version.BuildInfo `json:"build"`
}

func (h *handlers) stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.stamp(h.deps.StartedAt),
		Now:     h.stamp(h.now()),
	}, nil
}

// @Summary Readiness with a ping per backend
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse "a backend failed its ping"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	checks := make([]ReadyCheck, len(h.deps.Backends))
	var wg sync.WaitGroup
	for i, b := range h.deps.Backends {
		wg.Add(1)
		go func() {
			defer wg.Done()
			checks[i] = h.check(ctx, b)
		}()
	}
	wg.Wait()

	resp := ReadyResponse{Status: CheckOK, Checks: checks, Now: h.stamp(h.now())}
	for _, c := range checks {
		switch {
		case c.Status == CheckFail:
			resp.Status = CheckFail
		case c.Status == CheckUnknown && resp.Status == CheckOK:
			resp.Status = "degraded"
		}
	}
	if resp.Status == CheckFail {
		return httpkit.Status(http.StatusServiceUnavailable, resp), nil
	}
	return resp, nil
}

func (h *handlers) check(ctx stdctx.Context, b Backend) ReadyCheck {
	c := ReadyCheck{Name: b.Name, Status: CheckSkipped}
	if b.Target == nil {
		return c
	}
	p, ok := b.Target.(Pinger)
	if !ok {
		c.Status = CheckUnknown
		return c
	}
	start := time.Now()
	err := p.Ping(ctx)
	c.ElapsedMs = time.Since(start).Milliseconds()
	if err != nil {
		c.Status, c.Error = CheckFail, err.Error()
		return c
	}
	c.Status = CheckOK
	return c
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.stamp(h.deps.StartedAt),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// @Summary Loaded interpreters and build
// @Tags Meta
// @Produce json
// @Success 200 {object} InterpreterResponse
// @Router /meta/interpreter [get]
func (h *handlers) interpreter(_ *http.Request) (any, error) {
	resp := InterpreterResponse{Forms: []InterpreterForm{}, Build: version.Info()}
	if h.deps.Interpreters == nil {
		return resp, nil
	}
	for _, ft := range h.deps.Interpreters.FormTypes() {
		in, err := h.deps.Interpreters.Interpreter(ft)
		if err != nil {
			return nil, err
		}
		resp.Forms = append(resp.Forms, InterpreterForm{
			FormType:     ft,
			Fields:       in.Dictionary().Len(),
			Prepositions: in.Prepositions(),
			CommandVerbs: in.CommandVerbs(),
		})
	}
	return resp, nil
}
