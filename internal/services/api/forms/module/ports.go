package module

import (
	"context"

	formsdom "formvoice/internal/services/api/forms/domain"
	formssvc "formvoice/internal/services/api/forms/service"
)

// Ports is the port set other modules pull from forms
type Ports struct {
	Forms formsdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptFormsPort adapts the forms service to the domain port interface
type adaptFormsPort struct{ svc formssvc.Service }

func (a adaptFormsPort) Forms(ctx context.Context) ([]formsdom.FormSummary, error) {
	return a.svc.Forms(ctx)
}

func (a adaptFormsPort) Fields(ctx context.Context, formType string) ([]formsdom.FieldInfo, error) {
	return a.svc.Fields(ctx, formType)
}

func (a adaptFormsPort) Get(ctx context.Context, formType string) (formsdom.Form, error) {
	return a.svc.Get(ctx, formType)
}

func (a adaptFormsPort) Patch(ctx context.Context, formType string, in formsdom.PatchInput) (formsdom.Form, error) {
	return a.svc.Patch(ctx, formType, in)
}

func (a adaptFormsPort) Reset(ctx context.Context, formType string) (formsdom.Form, error) {
	return a.svc.Reset(ctx, formType)
}
