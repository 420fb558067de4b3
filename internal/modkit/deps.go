package modkit

import (
	"formvoice/internal/modkit/repokit"
	"formvoice/internal/platform/config"
	"formvoice/internal/platform/logger"
	"formvoice/internal/platform/metrics"
	"formvoice/internal/platform/store"
	"formvoice/internal/platform/store/rdb"
)

// Deps are the shared backends handed to every module. Each store is nil
// when disabled and modules fall back to memory
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse

	Redis *rdb.Client

	// Metrics nil disables instrumentation
	Metrics *metrics.Metrics
}
