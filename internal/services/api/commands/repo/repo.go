// Package repo provides storage for the command activity log
package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	perr "formvoice/internal/platform/errors"
	"formvoice/internal/platform/store"
	"formvoice/internal/services/api/commands/domain"
)

// Repo stores applied commands
type Repo interface {
	// Append records one applied command
	Append(ctx context.Context, a domain.Activity) error
	// Recent returns up to limit entries of formType, newest first
	Recent(ctx context.Context, formType string, limit int) ([]domain.Activity, error)
}

// Table is the clickhouse table backing the CH repo
const Table = "command_activity"

// Schema creates Table
const Schema = `
CREATE TABLE IF NOT EXISTS ` + Table + ` (
	id         UUID,
	form_type  LowCardinality(String),
	command    String,
	field      LowCardinality(String),
	label      String,
	value      String,
	created_at DateTime64(3, 'UTC')
)
ENGINE = MergeTree
ORDER BY (form_type, created_at)`

// Migrate applies Schema
func Migrate(ctx context.Context, ch store.Clickhouse) error {
	if err := ch.Exec(ctx, Schema); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "commands: migrate")
	}
	return nil
}

// CH implements Repo on clickhouse
type CH struct{ ch store.Clickhouse }

// NewCH binds a Repo to the clickhouse seam
func NewCH(ch store.Clickhouse) *CH {
	if ch == nil {
		panic("commands.repo requires a non nil clickhouse")
	}
	return &CH{ch: ch}
}

// Append implements Repo
func (r *CH) Append(ctx context.Context, a domain.Activity) error {
	id, err := uuid.Parse(a.ID)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, fmt.Sprintf("commands: activity id %q", a.ID))
	}
	row := []any{id, a.FormType, a.Command, a.Field, a.Label, a.Value, a.CreatedAt.UTC()}
	if err := r.ch.Insert(ctx, Table, [][]any{row}); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "commands: append activity")
	}
	return nil
}

// Recent implements Repo
func (r *CH) Recent(ctx context.Context, formType string, limit int) ([]domain.Activity, error) {
	const sql = `
SELECT id, form_type, command, field, label, value, created_at
FROM ` + Table + `
WHERE form_type = ?
ORDER BY created_at DESC
LIMIT ?`
	rs, err := r.ch.Query(ctx, sql, formType, limit)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "commands: load activity")
	}
	defer rs.Close()

	out := make([]domain.Activity, 0, limit)
	for rs.Next() {
		var (
			id uuid.UUID
			a  domain.Activity
		)
		if err := rs.Scan(&id, &a.FormType, &a.Command, &a.Field, &a.Label, &a.Value, &a.CreatedAt); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "commands: scan activity")
		}
		a.ID = id.String()
		out = append(out, a)
	}
	if err := rs.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "commands: iterate activity")
	}
	return out, nil
}
