// Package service contains command interpretation workflows
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"formvoice/internal/core/fields"
	"formvoice/internal/core/interpret"
	perr "formvoice/internal/platform/errors"
	"formvoice/internal/platform/logger"
	"formvoice/internal/platform/metrics"
	"formvoice/internal/services/api/commands/domain"
	"formvoice/internal/services/api/commands/repo"
	formsdom "formvoice/internal/services/api/forms/domain"
)

// Service defines the service contract for commands
type Service interface{ domain.ServicePort }

// Options controls the commands service
type Options struct {
	// Interpreter options applied to every form type
	Interpreter []interpret.Option

	Metrics *metrics.Metrics

	// Now replaces time.Now, for tests
	Now func() time.Time
	// NewID replaces uuid.NewString, for tests
	NewID func() string
}

// Svc implements the Service interface
type Svc struct {
	Repo  repo.Repo
	Forms domain.FormsPort

	interps map[string]*interpret.Interpreter
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() string
}

// New creates a commands service with one interpreter per dictionary
func New(r repo.Repo, forms domain.FormsPort, dicts map[string]*fields.Dictionary, opt Options) *Svc {
	if r == nil {
		panic("commands.Service requires a non nil Repo")
	}
	if forms == nil {
		panic("commands.Service requires a forms port")
	}
	if len(dicts) == 0 {
		panic("commands.Service requires at least one dictionary")
	}
	s := &Svc{
		Repo:    r,
		Forms:   forms,
		interps: make(map[string]*interpret.Interpreter, len(dicts)),
		metrics: opt.Metrics,
		now:     opt.Now,
		newID:   opt.NewID,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	for ft, d := range dicts {
		s.interps[ft] = interpret.New(d, opt.Interpreter...)
	}
	return s
}

// FormTypes lists the form types commands can target
func (s *Svc) FormTypes() []string {
	out := make([]string, 0, len(s.interps))
	for ft := range s.interps {
		out = append(out, ft)
	}
	sort.Strings(out)
	return out
}

// Interpreter returns the interpreter of formType
func (s *Svc) Interpreter(formType string) (*interpret.Interpreter, error) {
	in, ok := s.interps[strings.ToLower(strings.TrimSpace(formType))]
	if !ok {
		return nil, perr.NotFoundf("form type %q not found", formType)
	}
	return in, nil
}

// Interpret resolves command without touching the form
func (s *Svc) Interpret(ctx context.Context, formType, command string) (domain.Outcome, error) {
	in, err := s.Interpreter(formType)
	if err != nil {
		return domain.Outcome{}, err
	}
	out := s.interpret(ctx, in, command)
	if out.Recognized {
		out.Message = fmt.Sprintf(domain.MessagePreview, out.Label, out.Value)
	}
	return out, nil
}

// Explain runs the interpreter and returns its trace
func (s *Svc) Explain(_ context.Context, formType, command string) (interpret.Trace, error) {
	in, err := s.Interpreter(formType)
	if err != nil {
		return interpret.Trace{}, err
	}
	return in.Explain(command), nil
}

// Apply resolves command and, when recognized, writes the value and logs the activity
func (s *Svc) Apply(ctx context.Context, formType, command string) (domain.Outcome, error) {
	in, err := s.Interpreter(formType)
	if err != nil {
		return domain.Outcome{}, err
	}
	out := s.interpret(ctx, in, command)
	if !out.Recognized {
		return out, nil
	}

	ft := in.Dictionary().FormType()
	form, err := s.Forms.Patch(ctx, ft, formsdom.PatchInput{
		Values: map[string]string{out.Field: out.Value},
		Source: formsdom.SourceCommand,
	})
	if err != nil {
		return domain.Outcome{}, err
	}
	out.Form = &form

	a := domain.Activity{
		ID:        s.newID(),
		FormType:  ft,
		Command:   command,
		Field:     out.Field,
		Label:     out.Label,
		Value:     out.Value,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.Append(ctx, a); err != nil {
		// the form write stands even when the log append fails
		logger.C(logger.WithRequest(ctx, "", ft)).Warn().Err(err).Str("field", out.Field).Msg("activity append failed")
	}
	return out, nil
}

// Activity lists applied commands, newest first; limit 0 means the default
func (s *Svc) Activity(ctx context.Context, formType string, limit int) ([]domain.Activity, error) {
	in, err := s.Interpreter(formType)
	if err != nil {
		return nil, err
	}
	switch {
	case limit < 0 || limit > domain.MaxActivityLimit:
		return nil, perr.WithField(
			perr.InvalidArgf("limit must be between 1 and %d", domain.MaxActivityLimit),
			"limit",
		)
	case limit == 0:
		limit = domain.DefaultActivityLimit
	}
	return s.Repo.Recent(ctx, in.Dictionary().FormType(), limit)
}

func (s *Svc) interpret(ctx context.Context, in *interpret.Interpreter, command string) domain.Outcome {
	start := time.Now()
	tr := in.Explain(command)
	ft := in.Dictionary().FormType()
	s.metrics.ObserveInterpretation(ft, tr.Recognized, string(tr.Strategy), time.Since(start))

	logger.C(logger.WithRequest(ctx, "", ft)).Debug().
		Str("command", tr.Command).
		Str("field", tr.Field).
		Str("strategy", string(tr.Strategy)).
		Bool("recognized", tr.Recognized).
		Msg("command interpreted")

	res, ok := tr.Result()
	if !ok {
		return domain.Outcome{Message: domain.MessageNotUnderstood}
	}
	label := in.Dictionary().Label(res.Field)
	return domain.Outcome{
		Recognized: true,
		Field:      res.Field,
		Label:      label,
		Value:      res.Value,
		Strategy:   string(tr.Strategy),
		Message:    fmt.Sprintf(domain.MessageUpdated, label, res.Value),
	}
}
