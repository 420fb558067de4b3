package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxQuerier is what a pool, a conn and a tx have in common
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgxDB adapts any pgxQuerier to RowQuerier
type pgxDB struct{ q pgxQuerier }

func (d pgxDB) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	// pgconn.CommandTag already has String and RowsAffected
	return d.q.Exec(ctx, sql, args...)
}

func (d pgxDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := d.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgxRows{rs}, nil
}

func (d pgxDB) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return d.q.QueryRow(ctx, sql, args...)
}

// pgxRows adds Columns on top of pgx.Rows
type pgxRows struct{ pgx.Rows }

func (r pgxRows) Columns() []string {
	fds := r.FieldDescriptions()
	out := make([]string, len(fds))
	for i, fd := range fds {
		out[i] = fd.Name
	}
	return out
}

// pgxPool is the TxRunner the store hands to repos
type pgxPool struct {
	pgxDB
	pool *pgxpool.Pool
}

func newPGXPool(p *pgxpool.Pool) *pgxPool { return &pgxPool{pgxDB: pgxDB{q: p}, pool: p} }

// Tx commits when fn returns nil and rolls back otherwise
func (p *pgxPool) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error { return fn(pgxDB{q: tx}) })
}

func (p *pgxPool) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

func (p *pgxPool) Close() error {
	p.pool.Close()
	return nil
}
