package httpkit

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"formvoice/internal/platform/logger"
	pnet "formvoice/internal/platform/net"
)

// FormParam is the path parameter naming the form a route addresses
const FormParam = "formType"

// FormScope returns the {formType} path value and a context that carries it,
// so logger.C stamps form_type on lines logged further down
func FormScope(r *http.Request) (context.Context, string) {
	ft := chi.URLParam(r, FormParam)
	ctx := pnet.WithFormType(r.Context(), ft)
	return logger.WithRequest(ctx, "", pnet.FormType(ctx)), ft
}
