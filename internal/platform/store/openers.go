package store

import (
	"context"

	chx "formvoice/internal/platform/store/ch"
	"formvoice/internal/platform/store/pg"
	"formvoice/internal/platform/store/rdb"
)

// openPG waits for postgres and wraps the pool as the sql seam
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	pool, err := pg.Open(ctx, pg.Config{
		URL:         cfg.PG.URL,
		MaxConns:    cfg.PG.MaxConns,
		Slow:        cfg.PG.SlowQuery,
		LogAll:      cfg.PG.LogSQL,
		Attempts:    cfg.PG.ConnectAttempts,
		PingTimeout: cfg.PG.PingTimeout,
	}, s.Log)
	if err != nil {
		return nil, err
	}
	s.Log.Info().Int32("max_conns", pool.Config().MaxConns).Msg("postgres connected")
	return newPGXPool(pool), nil
}

// openCH dials clickhouse; ch.Open pings before returning
func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:        cfg.CH.URL,
		ClientName: cfg.CH.ClientName,
		ClientTag:  cfg.CH.ClientTag,
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info().Str("client", cfg.CH.ClientTag).Msg("clickhouse connected")
	return newCHAdapter(c), nil
}

// openRedis dials redis; rdb.Open pings before returning
func openRedis(ctx context.Context, cfg Config, s *Store) (*rdb.Client, error) {
	c, err := rdb.Open(ctx, rdb.Config{
		URL:       cfg.Redis.URL,
		KeyPrefix: cfg.Redis.KeyPrefix,
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info().Msg("redis connected")
	return c, nil
}
