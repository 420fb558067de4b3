package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repos react to
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgStringTooLong       = "22001"
	pgBadTextValue        = "22P02"
	pgSerialization       = "40001"
	pgDeadlock            = "40P01"
	pgLockNotAvailable    = "55P03"
	pgReadOnly            = "25006"
	pgCannotConnectNow    = "57P03"
)

// DBErrorCode classifies a postgres error; ok is false when err holds no *pgconn.PgError
func DBErrorCode(err error) (code ErrorCode, ok bool) {
	var pg *pgconn.PgError
	if !stderrs.As(err, &pg) {
		return ErrorCodeUnknown, false
	}
	switch pg.Code {
	case pgUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgForeignKeyViolation, pgStringTooLong, pgBadTextValue:
		return ErrorCodeInvalidArgument, true
	case pgNotNullViolation, pgCheckViolation:
		return ErrorCodeValidation, true
	case pgSerialization, pgDeadlock, pgLockNotAvailable:
		return ErrorCodeConflict, true
	case pgReadOnly, pgCannotConnectNow:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err under its classified code, ErrorCodeDB when unclassified.
// The column of a constraint violation becomes the field. nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	out := Wrap(err, code, msg)

	var pg *pgconn.PgError
	if stderrs.As(err, &pg) && strings.TrimSpace(pg.ColumnName) != "" {
		out = WithField(out, pg.ColumnName)
	}
	return out
}

// IsRetryable reports contention that a fresh attempt may clear. Context
// cancellation never is
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	var pg *pgconn.PgError
	if stderrs.As(err, &pg) {
		switch pg.Code {
		case pgSerialization, pgDeadlock, pgLockNotAvailable:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	return strings.Contains(s, "commit unexpectedly resulted in rollback") ||
		strings.Contains(s, "deadlock detected") ||
		strings.Contains(s, "could not serialize access")
}
