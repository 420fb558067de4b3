// Package logger owns the process root zerolog logger and the request
// fields carried on a context
package logger

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level   string // trace..panic; unknown means debug
	Format  string // json or console
	Service string
	Writer  io.Writer // default stdout
	Caller  bool
	// Sample keeps one event in N; 0 and 1 keep all
	Sample uint32
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_CALLER and LOG_SAMPLE.
// It reads the environment directly since config logs through this package
func FromEnv() Options {
	env := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv("LOG_" + k)); v != "" {
			return v
		}
		return def
	}
	o := Options{
		Level:   env("LEVEL", "debug"),
		Format:  strings.ToLower(env("FORMAT", "console")),
		Service: env("SERVICE", "formvoice-api"),
	}
	o.Caller, _ = strconv.ParseBool(env("CALLER", "false"))
	if n, err := strconv.ParseUint(env("SAMPLE", "0"), 10, 32); err == nil {
		o.Sample = uint32(n)
	}
	return o
}

// New builds a logger from opt without touching the root
func New(opt Options) Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	zc := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		zc = zc.Str("service", opt.Service)
	}
	if opt.Caller {
		zc = zc.Caller()
	}
	l := zc.Logger()
	if opt.Sample > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: opt.Sample})
	}
	return l
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

var (
	rootOnce sync.Once
	root     Logger
)

// Init sets the root logger; only the first call has any effect
func Init(opt Options) {
	rootOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		root = New(opt)
	})
}

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	Init(FromEnv())
	return &root
}

// Named returns a root child tagged with component
func Named(component string) *Logger {
	l := Get().With().Str("component", component).Logger()
	return &l
}

type requestKey struct{}

type requestFields struct {
	id       string
	formType string
}

// WithRequest stores request fields on ctx; empty values keep what ctx already has
func WithRequest(ctx context.Context, reqID, formType string) context.Context {
	f, _ := ctx.Value(requestKey{}).(requestFields)
	if reqID != "" {
		f.id = reqID
	}
	if formType != "" {
		f.formType = formType
	}
	return context.WithValue(ctx, requestKey{}, f)
}

// C returns a root child carrying request_id and form_type from ctx
func C(ctx context.Context) *Logger {
	f, _ := ctx.Value(requestKey{}).(requestFields)
	zc := Get().With()
	if f.id != "" {
		zc = zc.Str("request_id", f.id)
	}
	if f.formType != "" {
		zc = zc.Str("form_type", f.formType)
	}
	l := zc.Logger()
	return &l
}
