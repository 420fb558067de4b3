// Package http provides http transport for forms
package http

import (
	stdhttp "net/http"

	"formvoice/internal/modkit/httpkit"
	"formvoice/internal/services/api/forms/domain"
	svc "formvoice/internal/services/api/forms/service"
)

// Register mounts forms endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{formType}", h.get)
	httpkit.PatchJSON[domain.PatchInput](r, "/{formType}", h.patch)
	httpkit.Post(r, "/{formType}/reset", h.reset)
	httpkit.Get(r, "/{formType}/fields", h.fields)
}

type handlers struct{ svc svc.Service }

// @Summary List editable forms
// @Tags Forms
// @Produce json
// @Success 200 {array} domain.FormSummary "ok"
// @Router /forms [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.Forms(r.Context())
}

// @Summary Current values of a form
// @Tags Forms
// @Produce json
// @Param formType path string true "Form type" example(policy)
// @Success 200 {object} domain.Form "ok"
// @Failure 404 {object} httpkit.Envelope "unknown form type"
// @Router /forms/{formType} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	ctx, ft := httpkit.FormScope(r)
	return h.svc.Get(ctx, ft)
}

// @Summary Update form fields
// @Tags Forms
// @Accept json
// @Produce json
// @Param formType path string true "Form type" example(policy)
// @Param payload body domain.PatchInput true "Field values keyed by id"
// @Success 200 {object} domain.Form "ok"
// @Failure 400 {object} httpkit.Envelope "no updates or unknown fields"
// @Failure 404 {object} httpkit.Envelope "unknown form type"
// @Router /forms/{formType} [patch]
func (h *handlers) patch(r *stdhttp.Request, in domain.PatchInput) (any, error) {
	in.Source = domain.SourcePatch
	ctx, ft := httpkit.FormScope(r)
	return h.svc.Patch(ctx, ft, in)
}

// @Summary Reset a form to its defaults
// @Tags Forms
// @Produce json
// @Param formType path string true "Form type" example(policy)
// @Success 200 {object} domain.Form "ok"
// @Router /forms/{formType}/reset [post]
func (h *handlers) reset(r *stdhttp.Request) (any, error) {
	ctx, ft := httpkit.FormScope(r)
	return h.svc.Reset(ctx, ft)
}

// @Summary Field definitions of a form
// @Tags Forms
// @Produce json
// @Param formType path string true "Form type" example(policy)
// @Success 200 {array} domain.FieldInfo "ok"
// @Router /forms/{formType}/fields [get]
func (h *handlers) fields(r *stdhttp.Request) (any, error) {
	ctx, ft := httpkit.FormScope(r)
	return h.svc.Fields(ctx, ft)
}
