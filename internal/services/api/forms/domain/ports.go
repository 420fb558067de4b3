package domain

import "context"

// ServicePort defines the service contract for forms
type ServicePort interface {
	Forms(ctx context.Context) ([]FormSummary, error)
	Fields(ctx context.Context, formType string) ([]FieldInfo, error)
	Get(ctx context.Context, formType string) (Form, error)
	Patch(ctx context.Context, formType string, in PatchInput) (Form, error)
	Reset(ctx context.Context, formType string) (Form, error)
}
