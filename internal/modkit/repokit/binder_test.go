package repokit

import (
	"context"
	"testing"

	"formvoice/internal/platform/store"
)

type nopQ struct{ name string }

func (nopQ) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (nopQ) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (nopQ) QueryRow(context.Context, string, ...any) store.Row            { return nil }

func TestBindFunc(t *testing.T) {
	var b Binder[string] = BindFunc[string](func(q Queryer) string { return q.(nopQ).name })
	if got := b.Bind(nopQ{name: "tx"}); got != "tx" {
		t.Fatalf("Bind = %q", got)
	}
}
