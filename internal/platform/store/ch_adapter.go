package store

import (
	"context"
	"fmt"

	"formvoice/internal/platform/store/ch"
)

// chClient is the part of *ch.CH the store uses
type chClient interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (ch.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) error
	Ping(ctx context.Context) error
	Close() error
}

// chSeam narrows a ch client to Clickhouse. Exec, Ping and Close pass through
type chSeam struct{ chClient }

var (
	_ Clickhouse = chSeam{}
	_ Pinger     = chSeam{}
)

func newCHAdapter(c chClient) Clickhouse { return chSeam{c} }

// Insert wants data as [][]any, one slice per row in column order
func (s chSeam) Insert(ctx context.Context, table string, data any) error {
	rows, ok := data.([][]any)
	if !ok {
		return fmt.Errorf("store: clickhouse insert into %s wants [][]any, got %T", table, data)
	}
	return s.chClient.Insert(ctx, table, rows)
}

func (s chSeam) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := s.chClient.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r}, nil
}

// chRows drops the error from Close to fit Rows
type chRows struct{ ch.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }
