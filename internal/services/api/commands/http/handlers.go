// Package http provides http transport for commands
package http

import (
	stdhttp "net/http"
	"strconv"

	"formvoice/internal/modkit/httpkit"
	perr "formvoice/internal/platform/errors"
	"formvoice/internal/services/api/commands/domain"
	svc "formvoice/internal/services/api/commands/service"
)

// Register mounts commands endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CommandInput](r, "/{formType}/interpret", h.interpret)
	httpkit.PostJSON[domain.CommandInput](r, "/{formType}/apply", h.apply)
	httpkit.PostJSON[domain.CommandInput](r, "/{formType}/explain", h.explain)
	httpkit.Get(r, "/{formType}/activity", h.activity)
}

type handlers struct{ svc svc.Service }

// @Summary Interpret a command without applying it
// @Tags Commands
// @Accept json
// @Produce json
// @Param formType path string true "Form type" example(policy)
// @Param payload body domain.CommandInput true "Command text"
// @Success 200 {object} domain.Outcome "recognized or not understood"
// @Failure 404 {object} httpkit.Envelope "unknown form type"
// @Router /commands/{formType}/interpret [post]
func (h *handlers) interpret(r *stdhttp.Request, in domain.CommandInput) (any, error) {
	ctx, ft := httpkit.FormScope(r)
	return h.svc.Interpret(ctx, ft, in.Command)
}

// @Summary Interpret a command and update the form
// @Tags Commands
// @Accept json
// @Produce json
// @Param formType path string true "Form type" example(policy)
// @Param payload body domain.CommandInput true "Command text"
// @Success 200 {object} domain.Outcome "applied, or not understood"
// @Failure 404 {object} httpkit.Envelope "unknown form type"
// @Router /commands/{formType}/apply [post]
func (h *handlers) apply(r *stdhttp.Request, in domain.CommandInput) (any, error) {
	ctx, ft := httpkit.FormScope(r)
	return h.svc.Apply(ctx, ft, in.Command)
}

// @Summary Trace how a command is interpreted
// @Tags Commands
// @Accept json
// @Produce json
// @Param formType path string true "Form type" example(policy)
// @Param payload body domain.CommandInput true "Command text"
// @Success 200 {object} interpret.Trace "trace"
// @Router /commands/{formType}/explain [post]
func (h *handlers) explain(r *stdhttp.Request, in domain.CommandInput) (any, error) {
	ctx, ft := httpkit.FormScope(r)
	return h.svc.Explain(ctx, ft, in.Command)
}

// @Summary Applied commands, newest first
// @Tags Commands
// @Produce json
// @Param formType path string true "Form type" example(policy)
// @Param limit query int false "Max entries (1-200, default 50)"
// @Success 200 {array} domain.Activity "ok"
// @Failure 422 {object} httpkit.Envelope "bad limit"
// @Router /commands/{formType}/activity [get]
func (h *handlers) activity(r *stdhttp.Request) (any, error) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("limit must be an integer"), "limit")
		}
		limit = n
	}
	ctx, ft := httpkit.FormScope(r)
	return h.svc.Activity(ctx, ft, limit)
}
