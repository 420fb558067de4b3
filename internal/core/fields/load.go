package fields

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed dictionaries/*.json
var embedded embed.FS

const dictionaryVersion = 1

type rawField struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Aliases     []string          `json:"aliases"`
	Type        string            `json:"type"`
	Options     []string          `json:"options,omitempty"`
	Synonyms    map[string]string `json:"synonyms,omitempty"`
	Default     string            `json:"default,omitempty"`
}

type rawDictionary struct {
	Version  int        `json:"version"`
	FormType string     `json:"form_type"`
	Title    string     `json:"title"`
	Fields   []rawField `json:"fields"`
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*Dictionary{}
)

// FormTypes lists the embedded form types, sorted
func FormTypes() []string {
	entries, err := embedded.ReadDir("dictionaries")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".json" {
			continue
		}
		out = append(out, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(out)
	return out
}

// Load returns the compiled dictionary for formType from the embedded set.
// Results are cached, so repeated calls share one immutable Dictionary
func Load(formType string) (*Dictionary, error) {
	formType = strings.ToLower(strings.TrimSpace(formType))
	if formType == "" || strings.ContainsAny(formType, `/\.`) {
		return nil, fmt.Errorf("fields: invalid form type %q", formType)
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if d, ok := cache[formType]; ok {
		return d, nil
	}

	b, err := embedded.ReadFile("dictionaries/" + formType + ".json")
	if err != nil {
		return nil, fmt.Errorf("fields: unknown form type %q: %w", formType, err)
	}
	d, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("fields: %s.json: %w", formType, err)
	}
	if d.formType != formType {
		return nil, fmt.Errorf("fields: %s.json declares form_type %q", formType, d.formType)
	}
	cache[formType] = d
	return d, nil
}

// Parse compiles a dictionary document
func Parse(b []byte) (*Dictionary, error) {
	var raw rawDictionary
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}
	if raw.Version != dictionaryVersion {
		return nil, fmt.Errorf("unsupported dictionary version %d (want %d)", raw.Version, dictionaryVersion)
	}
	if len(raw.Fields) == 0 {
		return nil, fmt.Errorf("dictionary %q has no fields", raw.FormType)
	}
	if err := validateDocument(b); err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(raw.Fields))
	for _, f := range raw.Fields {
		defs = append(defs, Definition{
			ID:          f.ID,
			DisplayName: f.DisplayName,
			Aliases:     f.Aliases,
			Type:        Type(strings.ToLower(strings.TrimSpace(f.Type))),
			Options:     f.Options,
			Synonyms:    f.Synonyms,
			Default:     f.Default,
		})
	}
	d, err := New(strings.ToLower(raw.FormType), defs...)
	if err != nil {
		return nil, err
	}
	d.title = raw.Title
	return d, nil
}

// LoadAll loads every embedded dictionary keyed by form type
func LoadAll() (map[string]*Dictionary, error) {
	out := make(map[string]*Dictionary)
	for _, ft := range FormTypes() {
		d, err := Load(ft)
		if err != nil {
			return nil, err
		}
		out[ft] = d
	}
	return out, nil
}

// MustLoadAll is LoadAll that panics; used at process start
func MustLoadAll() map[string]*Dictionary {
	out, err := LoadAll()
	if err != nil {
		panic(err)
	}
	return out
}
