// Package pg opens the postgres pool: pgxpool with a statement log hooked
// in through pgx's tracer and a connect loop that waits for the server
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"formvoice/internal/platform/logger"
)

// Config configures the pool
type Config struct {
	URL      string
	MaxConns int32

	// Slow statements are logged at warn; zero disables the slow log
	Slow time.Duration
	// LogAll logs every statement at debug
	LogAll bool

	Attempts    int           // default 20
	PingTimeout time.Duration // default 3s
	Backoff     time.Duration // first wait between attempts, doubles up to 2s; default 150ms
}

const maxBackoff = 2 * time.Second

// seams for tests
var (
	newPool   = pgxpool.NewWithConfig
	pingPool  = (*pgxpool.Pool).Ping
	closePool = (*pgxpool.Pool).Close
)

// Open builds the pool and pings it until it answers, the attempts run out,
// or ctx is done
func Open(ctx context.Context, cfg Config, log logger.Logger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.Slow > 0 || cfg.LogAll {
		pcfg.ConnConfig.Tracer = newQueryLog(log, cfg.Slow, cfg.LogAll)
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("pg: new pool: %w", err)
	}

	attempts := cfg.Attempts
	if attempts <= 0 {
		attempts = 20
	}
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	wait := cfg.Backoff
	if wait <= 0 {
		wait = 150 * time.Millisecond
	}

	var lastErr error
	for i := range attempts {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = pingPool(pool, pctx)
		cancel()
		if lastErr == nil {
			return pool, nil
		}
		if i == attempts-1 {
			break
		}
		log.Debug().Err(lastErr).Int("attempt", i+1).Dur("wait", wait).Msg("postgres not ready")

		select {
		case <-ctx.Done():
			closePool(pool)
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait = min(wait*2, maxBackoff)
	}

	closePool(pool)
	return nil, fmt.Errorf("pg: ping failed after %d attempts: %w", attempts, lastErr)
}
