// Package fields holds the static field dictionaries that voice and text commands resolve against.
// A Dictionary is immutable once built and safe to share across goroutines
package fields

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the semantic tag that decides how a spoken value is normalized
type Type string

const (
	// TypeText passes values through apart from trailing punctuation
	TypeText Type = "text"
	// TypeEmail rewrites dictated "at" and "dot"
	TypeEmail Type = "email"
	// TypeTel keeps digits and formats ten digit numbers
	TypeTel Type = "tel"
	// TypeDate reformats parseable dates as YYYY-MM-DD
	TypeDate Type = "date"
	// TypeCurrency strips the dollar sign, the word dollars and separators
	TypeCurrency Type = "currency"
	// TypeSelect maps synonyms onto a fixed option list
	TypeSelect Type = "select"
)

// Valid reports whether t is a known type
func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeEmail, TypeTel, TypeDate, TypeCurrency, TypeSelect:
		return true
	}
	return false
}

// Definition describes one updatable form field
type Definition struct {
	ID          string
	DisplayName string
	Aliases     []string
	Type        Type
	Options     []string

	// Synonyms maps a lowercased spoken phrase to one of Options
	Synonyms map[string]string

	// Default is the value a fresh form starts with
	Default string
}

// Terms returns the lowercased id, display name and aliases, deduped, in declaration order
func (d Definition) Terms() []string {
	out := make([]string, 0, len(d.Aliases)+2)
	seen := make(map[string]struct{}, len(d.Aliases)+2)
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	add(d.ID)
	add(d.DisplayName)
	for _, a := range d.Aliases {
		add(a)
	}
	return out
}

// Option returns the canonical option matching v case-insensitively
func (d Definition) Option(v string) (string, bool) {
	for _, o := range d.Options {
		if strings.EqualFold(o, v) {
			return o, true
		}
	}
	return "", false
}

// Label returns the display name, falling back to the id
func (d Definition) Label() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.ID
}

// Dictionary is an ordered, read-only set of field definitions for one form type
type Dictionary struct {
	formType string
	title    string
	defs     []Definition
	byID     map[string]int
}

// New builds a Dictionary from defs in the given order.
// It rejects empty ids, unknown types, duplicate ids and terms shared by two fields
func New(formType string, defs ...Definition) (*Dictionary, error) {
	d := &Dictionary{
		formType: strings.TrimSpace(formType),
		defs:     make([]Definition, 0, len(defs)),
		byID:     make(map[string]int, len(defs)),
	}
	owner := make(map[string]string, len(defs)*4)

	for i, def := range defs {
		def.ID = strings.TrimSpace(def.ID)
		if def.ID == "" {
			return nil, fmt.Errorf("fields: definition %d has empty id", i)
		}
		if _, dup := d.byID[def.ID]; dup {
			return nil, fmt.Errorf("fields: duplicate id %q", def.ID)
		}
		if def.Type == "" {
			def.Type = TypeText
		}
		if !def.Type.Valid() {
			return nil, fmt.Errorf("fields: %s: unknown type %q", def.ID, def.Type)
		}
		if def.Type == TypeSelect && len(def.Options) == 0 {
			return nil, fmt.Errorf("fields: %s: select field without options", def.ID)
		}

		aliases := make([]string, 0, len(def.Aliases))
		for _, a := range def.Aliases {
			if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
				aliases = append(aliases, a)
			}
		}
		def.Aliases = aliases

		syn := make(map[string]string, len(def.Synonyms))
		for k, v := range def.Synonyms {
			opt, ok := def.Option(v)
			if !ok {
				return nil, fmt.Errorf("fields: %s: synonym %q points at unknown option %q", def.ID, k, v)
			}
			syn[strings.ToLower(strings.TrimSpace(k))] = opt
		}
		def.Synonyms = syn
		def.Options = append([]string(nil), def.Options...)

		for _, t := range def.Terms() {
			if prev, taken := owner[t]; taken {
				return nil, fmt.Errorf("fields: term %q used by both %s and %s", t, prev, def.ID)
			}
			owner[t] = def.ID
		}

		d.byID[def.ID] = len(d.defs)
		d.defs = append(d.defs, def)
	}
	return d, nil
}

// MustNew is New that panics, handy for tests and static tables
func MustNew(formType string, defs ...Definition) *Dictionary {
	d, err := New(formType, defs...)
	if err != nil {
		panic(err)
	}
	return d
}

// FormType returns the form type the dictionary belongs to
func (d *Dictionary) FormType() string { return d.formType }

// Title returns the human title of the form
func (d *Dictionary) Title() string { return d.title }

// Len returns the number of fields
func (d *Dictionary) Len() int { return len(d.defs) }

// Fields returns a copy of the definitions in declaration order
func (d *Dictionary) Fields() []Definition {
	return append([]Definition(nil), d.defs...)
}

// Lookup returns the definition for id
func (d *Dictionary) Lookup(id string) (Definition, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Definition{}, false
	}
	return d.defs[i], true
}

// Has reports whether id is a known field
func (d *Dictionary) Has(id string) bool {
	_, ok := d.byID[id]
	return ok
}

// Label returns the display label for id, or id itself when unknown
func (d *Dictionary) Label(id string) string {
	if def, ok := d.Lookup(id); ok {
		return def.Label()
	}
	return id
}

// Unknown returns the sorted ids in ids that are not part of the dictionary
func (d *Dictionary) Unknown(ids ...string) []string {
	var out []string
	for _, id := range ids {
		if !d.Has(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Defaults returns a fresh map of field id to default value, one entry per field
func (d *Dictionary) Defaults() map[string]string {
	out := make(map[string]string, len(d.defs))
	for _, def := range d.defs {
		out[def.ID] = def.Default
	}
	return out
}
