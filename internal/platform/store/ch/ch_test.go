package ch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"formvoice/internal/core/version"
)

type fakeBatch struct {
	driver.Batch

	rows    [][]any
	failAt  int
	sent    bool
	aborted bool
}

func (b *fakeBatch) Append(v ...any) error {
	if b.failAt > 0 && len(b.rows)+1 == b.failAt {
		return errors.New("bad row")
	}
	b.rows = append(b.rows, v)
	return nil
}

func (b *fakeBatch) Send() error  { b.sent = true; return nil }
func (b *fakeBatch) Abort() error { b.aborted = true; return nil }

type fakeConn struct {
	batch    *fakeBatch
	query    string
	queryErr error
	execErr  error
	closed   bool
}

func (c *fakeConn) Ping(context.Context) error { return nil }

func (c *fakeConn) PrepareBatch(_ context.Context, q string, _ ...driver.PrepareBatchOption) (driver.Batch, error) {
	c.query = q
	return c.batch, nil
}

func (c *fakeConn) Query(_ context.Context, q string, _ ...any) (driver.Rows, error) {
	c.query = q
	return nil, c.queryErr
}

func (c *fakeConn) Exec(_ context.Context, q string, _ ...any) error {
	c.query = q
	return c.execErr
}

func (c *fakeConn) Close() error { c.closed = true; return nil }

func TestOpen_RejectsBadDSN(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := Open(context.Background(), Config{URL: "::not a dsn"}); err == nil {
		t.Fatalf("expected error for malformed url")
	}
}

func TestInsert_BatchesRows(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{batch: &fakeBatch{}}
	c := &CH{conn: fc}

	rows := [][]any{{"a", 1}, {"b", 2}}
	if err := c.Insert(context.Background(), "command_activity", rows); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if fc.query != "INSERT INTO command_activity" {
		t.Fatalf("query = %q", fc.query)
	}
	if !fc.batch.sent || len(fc.batch.rows) != 2 {
		t.Fatalf("batch = %+v", fc.batch)
	}
}

func TestInsert_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{}
	c := &CH{conn: fc}
	if err := c.Insert(context.Background(), "t", nil); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if fc.query != "" {
		t.Fatalf("no batch expected, got %q", fc.query)
	}
}

func TestInsert_AbortsOnAppendError(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{batch: &fakeBatch{failAt: 2}}
	c := &CH{conn: fc}
	err := c.Insert(context.Background(), "t", [][]any{{1}, {2}})
	if err == nil || !strings.Contains(err.Error(), "row 1") {
		t.Fatalf("err = %v", err)
	}
	if !fc.batch.aborted || fc.batch.sent {
		t.Fatalf("batch should be aborted, not sent: %+v", fc.batch)
	}
}

func TestQuery_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	c := &CH{conn: &fakeConn{queryErr: boom}}
	rows, err := c.Query(context.Background(), "SELECT 1")
	if !errors.Is(err, boom) || rows != nil {
		t.Fatalf("rows=%v err=%v", rows, err)
	}
}

func TestExec(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{}
	c := &CH{conn: fc}
	if err := c.Exec(context.Background(), "CREATE TABLE t (a UInt8) ENGINE = Memory"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if !strings.HasPrefix(fc.query, "CREATE TABLE t") {
		t.Fatalf("query = %q", fc.query)
	}

	boom := errors.New("boom")
	fc.execErr = boom
	if err := c.Exec(context.Background(), "DROP TABLE t"); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	var nilCH *CH
	if err := nilCH.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
	fc := &fakeConn{}
	if err := (&CH{conn: fc}).Close(); err != nil || !fc.closed {
		t.Fatalf("Close did not reach conn")
	}
}

func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo("", "api")
	if len(ci.Products) < 3 {
		t.Fatalf("products = %+v", ci.Products)
	}
	if ci.Products[0].Name != "formvoice" || ci.Products[0].Version != "api" {
		t.Fatalf("first product = %+v", ci.Products[0])
	}
	if ci.Products[1].Name != "go" || ci.Products[2].Name != "commit" {
		t.Fatalf("products = %+v", ci.Products)
	}

	ci = BuildClientInfo(" reports ", "")
	if ci.Products[0].Name != "reports" || ci.Products[0].Version != version.Info().Version {
		t.Fatalf("defaults = %+v", ci.Products[0])
	}
}
