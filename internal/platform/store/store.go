// Package store opens the optional storage backends and exposes them through
// small seams repos can fake
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"formvoice/internal/platform/logger"
	"formvoice/internal/platform/store/rdb"
)

// Store holds the enabled backends; a disabled one stays nil
type Store struct {
	Log logger.Logger

	PG    TxRunner
	CH    Clickhouse
	Redis *rdb.Client
}

// Row is a single scanned row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a statement did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the sql surface repos use
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs fn in a transaction, committing only when fn returns nil
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar seam; Insert takes [][]any in column order
type Clickhouse interface {
	Insert(ctx context.Context, table string, data any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Exec(ctx context.Context, sql string, args ...any) error
	Close() error
}

// Pinger reports readiness
type Pinger interface{ Ping(context.Context) error }

// Open connects every backend cfg enables. On failure the backends already
// opened are closed again and no Store is returned
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: zerolog.Nop()}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	var err error
	if cfg.PG.Enabled {
		if s.PG, err = openPG(ctx, cfg, s); err != nil {
			return nil, s.abort(fmt.Errorf("postgres: %w", err))
		}
	}
	if cfg.CH.Enabled {
		if s.CH, err = openCH(ctx, cfg, s); err != nil {
			return nil, s.abort(fmt.Errorf("clickhouse: %w", err))
		}
	}
	if cfg.Redis.Enabled {
		if s.Redis, err = openRedis(ctx, cfg, s); err != nil {
			return nil, s.abort(fmt.Errorf("redis: %w", err))
		}
	}
	return s, nil
}

func (s *Store) abort(err error) error {
	if cerr := s.Close(context.Background()); cerr != nil {
		s.Log.Warn().Err(cerr).Msg("close after failed open")
	}
	return err
}

type backend struct {
	name string
	seam any
}

// enabled lists the non-nil backends in open order
func (s *Store) enabled() []backend {
	var out []backend
	if s.PG != nil {
		out = append(out, backend{"pg", s.PG})
	}
	if s.CH != nil {
		out = append(out, backend{"ch", s.CH})
	}
	if s.Redis != nil {
		out = append(out, backend{"redis", s.Redis})
	}
	return out
}

// Guard pings every enabled backend that can be pinged and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("store: nil")
	}
	var errs []error
	for _, b := range s.enabled() {
		p, ok := b.seam.(Pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes every enabled backend in reverse open order
func (s *Store) Close(context.Context) error {
	if s == nil {
		return nil
	}
	bs := s.enabled()
	var errs []error
	for i := len(bs) - 1; i >= 0; i-- {
		c, ok := bs[i].seam.(interface{ Close() error })
		if !ok {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", bs[i].name, err))
		}
	}
	return errors.Join(errs...)
}
