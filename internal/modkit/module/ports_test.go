package module

import (
	"strings"
	"testing"

	phttp "formvoice/internal/platform/net/http"
)

type counter interface{ Count() int }

type fixed int

func (f fixed) Count() int { return int(f) }

type stub struct {
	name  string
	ports any
}

func (s stub) Name() string             { return s.name }
func (s stub) Ports() any               { return s.ports }
func (s stub) MountRoutes(phttp.Router) {}

func TestPortsOf(t *testing.T) {
	type bundle struct {
		Label   string
		Counter counter
	}
	type hidden struct {
		c counter
	}

	tests := []struct {
		name  string
		ports any
		want  int
		ok    bool
	}{
		{"nil ports", nil, 0, false},
		{"direct", counter(fixed(4)), 4, true},
		{"exported field", bundle{Label: "x", Counter: fixed(7)}, 7, true},
		{"pointer to bundle", &bundle{Counter: fixed(9)}, 9, true},
		{"nil pointer", (*bundle)(nil), 0, false},
		{"unexported field", hidden{c: fixed(1)}, 0, false},
		{"not a struct", "forms", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[counter](stub{name: tc.name, ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v want %v", ok, tc.ok)
			}
			if ok && got.Count() != tc.want {
				t.Fatalf("Count() = %d want %d", got.Count(), tc.want)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	if got := MustPortsOf[counter](stub{ports: fixed(3)}); got.Count() != 3 {
		t.Fatalf("Count() = %d", got.Count())
	}

	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "module commands") || !strings.Contains(msg, "not found") {
			t.Fatalf("panic = %q", msg)
		}
	}()
	MustPortsOf[counter](stub{name: "commands"})
}
