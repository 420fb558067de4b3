package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "formvoice/internal/platform/net/http"
	"formvoice/internal/platform/testkit"
)

func get(t *testing.T, o Options, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, o)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestDocJSON(t *testing.T) {
	rr := get(t, Options{Enabled: true, TitleSuffix: "(dev)"}, "/api/docs/doc.json")
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
	var spec map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	if title := spec["info"].(map[string]any)["title"].(string); title == "" || title[len(title)-5:] != "(dev)" {
		t.Fatalf("title = %q", title)
	}

	apply := spec["paths"].(map[string]any)["/commands/{formType}/apply"].(map[string]any)["post"].(map[string]any)
	responses := apply["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := responses[code]; !ok {
			t.Fatalf("response %s missing: %v", code, responses)
		}
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("ErrorResponse missing")
	}
}

func TestPatch_KeepsExisting(t *testing.T) {
	spec := map[string]any{
		"openapi": "3.0.1",
		"servers": []any{"kept"},
		"paths": map[string]any{
			"/x": map[string]any{
				"parameters": []any{},
				"get":        map[string]any{"responses": map[string]any{"400": "custom"}},
			},
		},
	}
	patch(spec, Options{BasePath: "/api/v1"})

	if spec["openapi"] != "3.0.1" || spec["servers"].([]any)[0] != "kept" {
		t.Fatalf("spec = %v", spec)
	}
	resp := spec["paths"].(map[string]any)["/x"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	if resp["400"] != "custom" || resp["500"] == nil {
		t.Fatalf("responses = %v", resp)
	}
}

func TestDocJSON_BadTemplate(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &readDoc, func() string { return "{" })
	if rr := get(t, Options{Enabled: true}, "/api/docs/doc.json"); rr.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rr.Code)
	}
}

func TestMount(t *testing.T) {
	if rr := get(t, Options{}, "/api/docs/doc.json"); rr.Code != http.StatusNotFound {
		t.Fatalf("disabled code = %d", rr.Code)
	}
	rr := get(t, Options{Enabled: true}, "/api/docs")
	if rr.Code != http.StatusPermanentRedirect || rr.Header().Get("Location") != "/api/docs/" {
		t.Fatalf("redirect = %d %q", rr.Code, rr.Header().Get("Location"))
	}
}
