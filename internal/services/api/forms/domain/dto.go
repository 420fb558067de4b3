// Package domain holds DTOs for forms http and service contracts
package domain

import "time"

// Update sources recorded in metrics
const (
	SourcePatch   = "patch"
	SourceCommand = "command"
	SourceReset   = "reset"
)

// FormSummary describes one editable form type
type FormSummary struct {
	FormType string `json:"form_type" example:"policy"`
	Title    string `json:"title" example:"Insurance Policy"`
	Fields   int    `json:"fields" example:"12"`
}

// FieldInfo is the public view of a field definition
type FieldInfo struct {
	ID          string   `json:"id" example:"deductible"`
	DisplayName string   `json:"display_name" example:"Deductible"`
	Aliases     []string `json:"aliases" example:"deductible amount"`
	Type        string   `json:"type" example:"currency"`
	Options     []string `json:"options,omitempty"`
	Default     string   `json:"default,omitempty" example:"1000"`
}

// Form is the current value of every field of one form
type Form struct {
	FormType  string            `json:"form_type" example:"policy"`
	Title     string            `json:"title" example:"Insurance Policy"`
	Values    map[string]string `json:"values"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
}

// PatchInput carries field updates keyed by field id
type PatchInput struct {
	Values map[string]string `json:"values" validate:"omitempty,max=64,dive,keys,min=1,max=64,endkeys,max=1000"`

	// Source tags the update for metrics; set by callers, never decoded
	Source string `json:"-"`
}
