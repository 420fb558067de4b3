package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	docs "formvoice/internal/services/api/docs"
)

var readDoc = func() string { return docs.SwaggerInfo.ReadDoc() }

// docHandler renders the generated template and patches it for the UI
func docHandler(o Options) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(readDoc()), &spec); err != nil {
			http.Error(w, "openapi document is not valid json", http.StatusInternalServerError)
			return
		}
		patch(spec, o)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

func patch(spec map[string]any, o Options) {
	// the bundled UI renders 3.0 only
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	delete(spec, "swagger")
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": o.BasePath}}
	}
	if info, ok := spec["info"].(map[string]any); ok && o.TitleSuffix != "" {
		info["title"] = strings.TrimSpace(stringOf(info["title"]) + " " + o.TitleSuffix)
	}

	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema
	}
	eachOperation(spec, func(responses map[string]any) {
		for code, r := range defaultResponses {
			if _, ok := responses[code]; !ok {
				responses[code] = r
			}
		}
	})
}

// errorSchema mirrors the envelope written by the http package on failure
var errorSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer"},
		"error":       map[string]any{"type": "string"},
		"field":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status", "error"},
}

var defaultResponses = map[string]any{
	"400": errorResponse("Bad Request", 400, 5, "value is required", "command"),
	"500": errorResponse("Internal Server Error", 500, 1, "panic recovered", ""),
}

func errorResponse(status string, httpCode, code int, msg, field string) map[string]any {
	example := map[string]any{
		"status_code": httpCode,
		"status":      status,
		"code":        code,
		"error":       msg,
		"request_id":  "f3a1c2/abc-000001",
	}
	if field != "" {
		example["field"] = field
	}
	return map[string]any{
		"description": status,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// eachOperation calls fn with the responses map of every operation, creating it when absent
func eachOperation(spec map[string]any, fn func(responses map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, op := range ops {
			if op, ok := op.(map[string]any); ok {
				fn(child(op, "responses"))
			}
		}
	}
}

// child returns m[key] as a map, creating it when missing
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}
