package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "formvoice/internal/platform/errors"
)

type command struct {
	Command string            `json:"command" validate:"required,max=10"`
	Values  map[string]string `json:"values,omitempty" validate:"omitempty,max=2"`
	Note    string            `validate:"omitempty,min=3"`
}

func parse(t *testing.T, method, body string) (command, error) {
	t.Helper()
	return ParseJSON[command](httptest.NewRequest(method, "/", strings.NewReader(body)))
}

func TestParseJSON_OK(t *testing.T) {
	got, err := parse(t, http.MethodPost, ` {"command":"set x to 1"} `)
	if err != nil || got.Command != "set x to 1" {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestParseJSON_JSONErrors(t *testing.T) {
	for name, body := range map[string]string{
		"empty":    "",
		"blank":    " \n",
		"broken":   `{"command":`,
		"unknown":  `{"command":"a","extra":1}`,
		"trailing": `{"command":"a"}{"command":"b"}`,
		"wrong":    `{"command":5}`,
	} {
		if _, err := parse(t, http.MethodPost, body); perr.CodeOf(err) != perr.ErrorCodeJSON {
			t.Errorf("%s: code = %v (%v)", name, perr.CodeOf(err), err)
		}
	}
}

func TestParseJSON_EmptyBodyOnRead(t *testing.T) {
	if got, err := parse(t, http.MethodGet, ""); err != nil || got.Command != "" {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestParseJSON_Validation(t *testing.T) {
	tests := []struct {
		body  string
		field string
		msg   string
	}{
		{`{"command":""}`, "command", "command is a required field"},
		{`{"command":"this is far too long"}`, "command", "command must be at most 10"},
		{`{"command":"a","values":{"a":"1","b":"2","c":"3"}}`, "values", "values must be at most 2"},
		{`{"command":"a","Note":"x"}`, "Note", "Note must be at least 3"},
	}
	for _, tc := range tests {
		_, err := parse(t, http.MethodPost, tc.body)
		if perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("%s: code = %v (%v)", tc.body, perr.CodeOf(err), err)
		}
		if w := perr.WireFrom(err); w.Field != tc.field || w.Message != tc.msg {
			t.Fatalf("%s: wire = %+v", tc.body, w)
		}
	}
}

func TestParseJSON_NonStructTarget(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`"x"`))
	if _, err := ParseJSON[string](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("code = %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_BodyLimit(t *testing.T) {
	body := `{"command":"` + strings.Repeat("a", MaxBody) + `"}`
	if _, err := parse(t, http.MethodPost, body); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("code = %v (%v)", perr.CodeOf(err), err)
	}
}
