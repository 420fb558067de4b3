// Package repo provides storage for form field values
package repo

import (
	"context"
	"sort"
	"time"

	"formvoice/internal/modkit/repokit"
	perr "formvoice/internal/platform/errors"
	"formvoice/internal/platform/store"
)

// Repo stores the field values written over a form's defaults
type Repo interface {
	// Values returns the stored overrides for formType and the latest write time (zero when none)
	Values(ctx context.Context, formType string) (map[string]string, time.Time, error)
	// Upsert writes values, replacing stored values for the same field ids
	Upsert(ctx context.Context, formType string, values map[string]string, at time.Time) error
	// Clear drops every stored value of formType
	Clear(ctx context.Context, formType string) error
}

// Schema creates the postgres table used by the PG repo
const Schema = `
create table if not exists form_values (
	form_type  text not null,
	field_id   text not null,
	value      text not null,
	updated_at timestamptz not null default now(),
	primary key (form_type, field_id)
)`

// Migrate applies Schema
func Migrate(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, Schema)
	return perr.FromPostgres(err, "forms: migrate")
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type valueRow struct {
	id, value string
	at        time.Time
}

func (r *queries) Values(ctx context.Context, formType string) (map[string]string, time.Time, error) {
	const sql = `
select field_id, value, updated_at
from form_values
where form_type = $1
`
	rows, err := r.q.Query(ctx, sql, formType)
	if err != nil {
		return nil, time.Time{}, perr.FromPostgres(err, "forms: load values")
	}
	list, err := store.Many(rows, func(row store.Row) (valueRow, error) {
		var v valueRow
		err := row.Scan(&v.id, &v.value, &v.at)
		return v, err
	})
	if err != nil {
		return nil, time.Time{}, perr.FromPostgres(err, "forms: load values")
	}

	out := make(map[string]string, len(list))
	var latest time.Time
	for _, v := range list {
		out[v.id] = v.value
		if v.at.After(latest) {
			latest = v.at
		}
	}
	return out, latest, nil
}

// upsertAttempts bounds retries of an upsert that lost a lock race
const upsertAttempts = 3

func (r *queries) Upsert(ctx context.Context, formType string, values map[string]string, at time.Time) error {
	if len(values) == 0 {
		return nil
	}
	ids, vals := split(values)
	const sql = `
insert into form_values (form_type, field_id, value, updated_at)
select $1, t.field_id, t.value, $4
from unnest($2::text[], $3::text[]) as t(field_id, value)
on conflict (form_type, field_id)
do update set value = excluded.value, updated_at = greatest(form_values.updated_at, excluded.updated_at)
`
	var err error
	for attempt := 1; attempt <= upsertAttempts; attempt++ {
		if _, err = r.q.Exec(ctx, sql, formType, ids, vals, at); err == nil || !perr.IsRetryable(err) {
			break
		}
	}
	return perr.FromPostgres(err, "forms: upsert values")
}

func (r *queries) Clear(ctx context.Context, formType string) error {
	_, err := r.q.Exec(ctx, `delete from form_values where form_type = $1`, formType)
	return perr.FromPostgres(err, "forms: clear values")
}

// split returns ids and values in id order
func split(m map[string]string) ([]string, []string) {
	ids := make([]string, 0, len(m))
	for k := range m {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	vals := make([]string, len(ids))
	for i, k := range ids {
		vals[i] = m[k]
	}
	return ids, vals
}
