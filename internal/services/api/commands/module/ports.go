package module

import (
	"formvoice/internal/core/interpret"
	cmddom "formvoice/internal/services/api/commands/domain"
)

// Ports declares the port the commands module needs injected
type Ports struct {
	Forms cmddom.FormsPort
}

// InterpreterSource exposes the per form type interpreters
type InterpreterSource interface {
	FormTypes() []string
	Interpreter(formType string) (*interpret.Interpreter, error)
}

// Exports is the port set commands offers other modules
type Exports struct {
	Commands     cmddom.ServicePort
	Interpreters InterpreterSource
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
