package pg

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"formvoice/internal/platform/logger"
)

type startKey struct{}

type started struct {
	at  time.Time
	sql string
}

// queryLog is a pgx.QueryTracer writing one line per finished statement
type queryLog struct {
	log    logger.Logger
	slow   time.Duration
	logAll bool
	now    func() time.Time
}

var _ pgx.QueryTracer = (*queryLog)(nil)

func newQueryLog(log logger.Logger, slow time.Duration, logAll bool) *queryLog {
	return &queryLog{
		log:    log.With().Str("component", "pg").Logger(),
		slow:   slow,
		logAll: logAll,
		now:    time.Now,
	}
}

func (q *queryLog) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, startKey{}, started{at: q.now(), sql: data.SQL})
}

func (q *queryLog) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	s, ok := ctx.Value(startKey{}).(started)
	if !ok {
		return
	}
	elapsed := q.now().Sub(s.at)
	slow := q.slow > 0 && elapsed >= q.slow

	ev := q.log.Debug()
	if slow {
		ev = q.log.Warn()
	} else if !q.logAll {
		return
	}
	ev.Dur("elapsed", elapsed).
		Bool("slow", slow).
		Str("sql", squash(s.sql)).
		Str("tag", data.CommandTag.String()).
		Err(data.Err).
		Msg("pg query")
}

// squash collapses whitespace runs so multi-line SQL fits one log line
func squash(sql string) string { return strings.Join(strings.Fields(sql), " ") }
