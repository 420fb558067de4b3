// @title         formvoice API
// @version       1.0
// @description   Insurance form field values and natural language form commands

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"formvoice/internal/platform/config"
	"formvoice/internal/platform/logger"
	"formvoice/internal/platform/metrics"
	phttp "formvoice/internal/platform/net/http"
	"formvoice/internal/platform/store"

	"formvoice/internal/services/api"
	cmdrepo "formvoice/internal/services/api/commands/repo"
	formsrepo "formvoice/internal/services/api/forms/repo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env fills in anything the process env leaves unset
	dotenv, err := config.LoadDotEnv()
	if err != nil {
		logger.Get().Panic().Err(err).Msg("load .env failed")
	}

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	rdCfg := root.Prefix("SERVICE_REDIS_")      // rdCfg lives under SERVICE_REDIS_*
	l := logger.Get()
	if len(dotenv) > 0 {
		l.Info().Strs("files", dotenv).Msg("env files loaded")
	}

	// every backend is optional; without them forms and activity live in memory
	pgOn := pgCfg.MayBool("ENABLED", false)
	chOn := chCfg.MayBool("ENABLED", false)
	rdOn := rdCfg.MayBool("ENABLED", false)

	cfg := store.Config{
		AppName: "formvoice",
		PG:      store.PGConfig{Enabled: pgOn},
		CH:      store.CHConfig{Enabled: chOn},
		Redis:   store.RedisConfig{Enabled: rdOn},
	}
	if pgOn {
		cfg.PG.URL = pgCfg.MustString("DBURL")
		cfg.PG.MaxConns = int32(pgCfg.MayInt("MAX_CONNS", 4))
		cfg.PG.SlowQuery = pgCfg.MayDuration("SLOW_QUERY", 500*time.Millisecond)
		cfg.PG.LogSQL = pgCfg.MayBool("LOG_SQL", false)
		cfg.PG.ConnectAttempts = pgCfg.MayInt("CONNECT_ATTEMPTS", 20)
	}
	if chOn {
		cfg.CH.URL = chCfg.MustString("DBURL")
		cfg.CH.ClientName = "formvoice"
		cfg.CH.ClientTag = "api"
	}
	if rdOn {
		cfg.Redis.URL = rdCfg.MustString("URL")
		cfg.Redis.KeyPrefix = rdCfg.MayString("KEY_PREFIX", "formvoice")
	}

	st, err := store.Open(ctx, cfg, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if st.PG != nil {
		if err := formsrepo.Migrate(ctx, st.PG); err != nil {
			l.Panic().Err(err).Msg("forms migration failed")
		}
	}
	if st.CH != nil {
		if err := cmdrepo.Migrate(ctx, st.CH); err != nil {
			l.Panic().Err(err).Msg("command activity migration failed")
		}
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Metrics:        metrics.Default,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run until SIGINT/SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
