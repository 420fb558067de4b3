// Package config reads settings from the environment through prefixed views.
// Each service scope takes its own view, e.g. CORE_API_ or SERVICE_PGSQL_
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"formvoice/internal/platform/logger"
)

// Conf is a prefixed, read-only view over a set of variables.
// The zero value reads the process environment
type Conf struct {
	prefix string
	lookup func(string) (string, bool)
}

// New returns an unprefixed view over the process environment
func New() Conf { return Conf{lookup: os.LookupEnv} }

// FromMap returns a view over vars instead of the environment
func FromMap(vars map[string]string) Conf {
	return Conf{lookup: func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}}
}

// Prefix narrows the view, e.g. New().Prefix("CORE_API_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, lookup: c.lookup} }

func (c Conf) key(k string) string { return c.prefix + k }

// get returns the trimmed value; blank counts as unset
func (c Conf) get(k string) (string, bool) {
	lookup := c.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(c.key(k))
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// MustString returns the value of key and panics when it is unset.
// Only boot code should call it
func (c Conf) MustString(key string) string {
	v, ok := c.get(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MayString returns the value of key or def
func (c Conf) MayString(key, def string) string {
	if v, ok := c.get(key); ok {
		return v
	}
	return def
}

// MayInt returns key as an int or def; an unparsable value is logged and ignored
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayBool accepts what strconv.ParseBool accepts
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration accepts Go durations such as 250ms or 2s
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma list, dropping blank items; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	v, ok := c.get(key)
	if !ok {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	v, ok := c.get(key)
	if !ok {
		return def
	}
	out, err := parse(v)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", v).Interface("default", def).Msg("invalid env value; using default")
		return def
	}
	return out
}
