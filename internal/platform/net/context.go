// Package net carries request scoped values between transport and domain code
package net

import (
	"context"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type formTypeKey struct{}

// WithRequest stores the request id where chi's GetReqID finds it and the form
// type under this package's key. Empty values leave ctx untouched
func WithRequest(ctx context.Context, reqID, formType string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return WithFormType(ctx, formType)
}

// WithFormType records the form a request addresses. The value is lowercased
func WithFormType(ctx context.Context, formType string) context.Context {
	formType = strings.ToLower(strings.TrimSpace(formType))
	if formType == "" {
		return ctx
	}
	return context.WithValue(ctx, formTypeKey{}, formType)
}

// RequestID is chi's request id, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// FormType is the form type recorded by WithFormType, or ""
func FormType(ctx context.Context) string {
	v, _ := ctx.Value(formTypeKey{}).(string)
	return v
}
