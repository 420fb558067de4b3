package domain

import (
	"context"

	"formvoice/internal/core/interpret"
	formsdom "formvoice/internal/services/api/forms/domain"
)

// ServicePort is the public contract of the commands service
type ServicePort interface {
	// Interpret resolves command against formType without changing any state
	Interpret(ctx context.Context, formType, command string) (Outcome, error)
	// Apply resolves command and writes the value to the form when recognized
	Apply(ctx context.Context, formType, command string) (Outcome, error)
	// Explain reports each interpretation step for command
	Explain(ctx context.Context, formType, command string) (interpret.Trace, error)
	// Activity lists applied commands for formType, newest first
	Activity(ctx context.Context, formType string, limit int) ([]Activity, error)
}

// FormsPort is the slice of the forms service commands write through
type FormsPort interface {
	Patch(ctx context.Context, formType string, in formsdom.PatchInput) (formsdom.Form, error)
}
