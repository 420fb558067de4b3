// Package domain holds DTOs for commands http and service contracts
package domain

import (
	"time"

	formsdom "formvoice/internal/services/api/forms/domain"
)

// User facing messages
const (
	MessageNotUnderstood = "Sorry, I couldn't understand that command. Please try again."
	MessageUpdated       = "Updated %s to %s"
	MessagePreview       = "Would update %s to %s"
)

// Activity list bounds
const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

// MaxCommandLength caps a command body; dictated sentences are far shorter
const MaxCommandLength = 10000

// CommandInput carries one spoken or typed command
type CommandInput struct {
	Command string `json:"command" validate:"required,max=10000" example:"change the deductible to $2,000"`
}

// Outcome is the result of interpreting, and optionally applying, a command
type Outcome struct {
	Recognized bool   `json:"recognized"`
	Field      string `json:"field,omitempty" example:"deductible"`
	Label      string `json:"label,omitempty" example:"Deductible"`
	Value      string `json:"value,omitempty" example:"2000"`
	Strategy   string `json:"strategy,omitempty" example:"preposition"`
	Message    string `json:"message" example:"Updated Deductible to 2000"`

	// Form is the updated form, set by Apply when the command was recognized
	Form *formsdom.Form `json:"form,omitempty"`
}

// Activity is one applied command
type Activity struct {
	ID        string    `json:"id" example:"0b6f3c1e-8d4f-4c1b-9a55-3f1d2f6f8a10"`
	FormType  string    `json:"form_type" example:"policy"`
	Command   string    `json:"command" example:"change the deductible to $2,000"`
	Field     string    `json:"field" example:"deductible"`
	Label     string    `json:"label" example:"Deductible"`
	Value     string    `json:"value" example:"2000"`
	CreatedAt time.Time `json:"created_at"`
}
