package module

import (
	"formvoice/internal/core/interpret"
	"formvoice/internal/platform/config"
	"formvoice/internal/services/api/commands/repo"
)

// Options controls the commands module
type Options struct {
	// ActivityCapacity bounds the in-memory log per form type
	ActivityCapacity int

	Prepositions []string
	CommandVerbs []string
}

// FromConfig reads COMMANDS_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	cc := cfg.Prefix("COMMANDS_")
	return Options{
		ActivityCapacity: cc.MayInt("ACTIVITY_CAPACITY", repo.DefaultCapacity),
		Prepositions:     cc.MayCSV("PREPOSITIONS", interpret.DefaultPrepositions()),
		CommandVerbs:     cc.MayCSV("VERBS", interpret.DefaultCommandVerbs()),
	}
}

func (o Options) interpreter() []interpret.Option {
	return []interpret.Option{
		interpret.WithPrepositions(o.Prepositions...),
		interpret.WithCommandVerbs(o.CommandVerbs...),
	}
}
