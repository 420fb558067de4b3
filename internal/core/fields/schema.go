package fields

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v2"
)

//go:embed dictionary.schema.json
var schemaDoc []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func dictionarySchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaDoc))
	})
	return schema, schemaErr
}

// validateDocument checks the document shape, catching misspelled keys that
// would otherwise be dropped silently by the decoder
func validateDocument(b []byte) error {
	s, err := dictionarySchema()
	if err != nil {
		return fmt.Errorf("dictionary schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(b))
	if err != nil {
		return fmt.Errorf("parse dictionary: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("invalid dictionary: %s", strings.Join(msgs, "; "))
}

// ParseYAML compiles a dictionary written as YAML; keys match the JSON form
func ParseYAML(b []byte) (*Dictionary, error) {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}
	j, err := json.Marshal(jsonCompatible(doc))
	if err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}
	return Parse(j)
}

// LoadFile reads a dictionary from disk; .yaml and .yml files are parsed as YAML, anything else as JSON
func LoadFile(path string) (*Dictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fields: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(b)
	default:
		return Parse(b)
	}
}

// jsonCompatible rewrites yaml.v2 maps, which are keyed by any, into string keyed maps
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = jsonCompatible(val)
		}
		return out
	case []any:
		for i := range t {
			t[i] = jsonCompatible(t[i])
		}
		return t
	default:
		return v
	}
}
