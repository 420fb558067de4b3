// Package service contains forms workflows
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"formvoice/internal/core/fields"
	perr "formvoice/internal/platform/errors"
	"formvoice/internal/platform/logger"
	"formvoice/internal/platform/metrics"
	ptime "formvoice/internal/platform/time"
	"formvoice/internal/services/api/forms/domain"
	"formvoice/internal/services/api/forms/repo"
)

// Service defines the service contract for forms
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo

	dicts   map[string]*fields.Dictionary
	order   []string
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option customizes Svc
type Option func(*Svc)

// WithMetrics records field writes on m
func WithMetrics(m *metrics.Metrics) Option { return func(s *Svc) { s.metrics = m } }

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option { return func(s *Svc) { s.now = now } }

// New creates a forms service over r and the given dictionaries keyed by form type
func New(r repo.Repo, dicts map[string]*fields.Dictionary, opts ...Option) *Svc {
	if r == nil {
		panic("forms.Service requires a non nil Repo")
	}
	if len(dicts) == 0 {
		panic("forms.Service requires at least one dictionary")
	}
	s := &Svc{Repo: r, dicts: dicts, now: time.Now}
	for ft := range dicts {
		s.order = append(s.order, ft)
	}
	sort.Strings(s.order)
	for _, o := range opts {
		o(s)
	}
	return s
}

// Forms lists the editable form types
func (s *Svc) Forms(_ context.Context) ([]domain.FormSummary, error) {
	out := make([]domain.FormSummary, 0, len(s.order))
	for _, ft := range s.order {
		d := s.dicts[ft]
		out = append(out, domain.FormSummary{FormType: ft, Title: d.Title(), Fields: d.Len()})
	}
	return out, nil
}

// Fields lists the field definitions of formType in declaration order
func (s *Svc) Fields(_ context.Context, formType string) ([]domain.FieldInfo, error) {
	d, err := s.dict(formType)
	if err != nil {
		return nil, err
	}
	defs := d.Fields()
	out := make([]domain.FieldInfo, 0, len(defs))
	for _, def := range defs {
		out = append(out, domain.FieldInfo{
			ID:          def.ID,
			DisplayName: def.Label(),
			Aliases:     def.Aliases,
			Type:        string(def.Type),
			Options:     def.Options,
			Default:     def.Default,
		})
	}
	return out, nil
}

// Get returns the current values of formType, defaults filled in for fields never written
func (s *Svc) Get(ctx context.Context, formType string) (domain.Form, error) {
	d, err := s.dict(formType)
	if err != nil {
		return domain.Form{}, err
	}
	stored, at, err := s.Repo.Values(ctx, d.FormType())
	if err != nil {
		return domain.Form{}, err
	}
	values := d.Defaults()
	for id, v := range stored {
		// values left behind by a field that was since removed from the dictionary are dropped
		if d.Has(id) {
			values[id] = v
		}
	}
	return domain.Form{
		FormType:  d.FormType(),
		Title:     d.Title(),
		Values:    values,
		UpdatedAt: ptime.Ptr(at),
	}, nil
}

// Patch writes in.Values over formType and returns the updated form
func (s *Svc) Patch(ctx context.Context, formType string, in domain.PatchInput) (domain.Form, error) {
	d, err := s.dict(formType)
	if err != nil {
		return domain.Form{}, err
	}
	if len(in.Values) == 0 {
		return domain.Form{}, perr.Newf(perr.ErrorCodeValidation, "no updates provided")
	}
	ids := make([]string, 0, len(in.Values))
	for id := range in.Values {
		ids = append(ids, id)
	}
	if unknown := d.Unknown(ids...); len(unknown) > 0 {
		return domain.Form{}, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "invalid fields: %s", strings.Join(unknown, ", ")),
			"values",
		)
	}

	if err := s.Repo.Upsert(ctx, d.FormType(), in.Values, s.now().UTC()); err != nil {
		return domain.Form{}, err
	}

	source := in.Source
	if source == "" {
		source = domain.SourcePatch
	}
	s.metrics.FormUpdated(d.FormType(), source, len(in.Values))
	logger.C(logger.WithRequest(ctx, "", d.FormType())).Debug().
		Strs("fields", ids).
		Str("source", source).
		Msg("form updated")

	return s.Get(ctx, d.FormType())
}

// Reset drops every stored value so formType reads as its defaults again
func (s *Svc) Reset(ctx context.Context, formType string) (domain.Form, error) {
	d, err := s.dict(formType)
	if err != nil {
		return domain.Form{}, err
	}
	if err := s.Repo.Clear(ctx, d.FormType()); err != nil {
		return domain.Form{}, err
	}
	s.metrics.FormUpdated(d.FormType(), domain.SourceReset, d.Len())
	return s.Get(ctx, d.FormType())
}

func (s *Svc) dict(formType string) (*fields.Dictionary, error) {
	d, ok := s.dicts[strings.ToLower(strings.TrimSpace(formType))]
	if !ok {
		return nil, perr.NotFoundf("form type %q not found", formType)
	}
	return d, nil
}
