package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"formvoice/internal/core/fields"
)

var std = New()

var (
	spokenAt    = regexp.MustCompile(`(?i)\s+at\s+`)
	spokenDot   = regexp.MustCompile(`(?i)\s+dot\s+`)
	dollarsWord = regexp.MustCompile(`(?i)\bdollars?\b`)
)

// Value normalizes a raw value phrase for def.
// It never fails; anything it cannot improve comes back trimmed and otherwise unchanged.
// Text values keep their exact runes; the structured types read compatibility
// forms such as fullwidth digits as ASCII first
func Value(def fields.Definition, raw string) string {
	v := TrimPunct(raw)
	switch def.Type {
	case fields.TypeEmail:
		return Email(norm.NFKC.String(v))
	case fields.TypeTel:
		return Phone(norm.NFKC.String(v))
	case fields.TypeDate:
		return Date(norm.NFKC.String(v))
	case fields.TypeCurrency:
		return Currency(norm.NFKC.String(v))
	case fields.TypeSelect:
		return Select(def, v)
	default:
		return v
	}
}

// TrimPunct trims surrounding space and one trailing sentence terminator
func TrimPunct(v string) string {
	v = strings.TrimSpace(v)
	if n := len(v); n > 0 {
		switch v[n-1] {
		case '.', '!', '?':
			v = strings.TrimSpace(v[:n-1])
		}
	}
	return v
}

// Email rewrites dictated addresses, "jane at example dot com" becomes "jane@example.com"
func Email(v string) string {
	v = spokenAt.ReplaceAllString(v, "@")
	v = spokenDot.ReplaceAllString(v, ".")
	return strings.TrimSpace(v)
}

// Phone keeps digits only and formats exactly ten of them as (XXX) XXX-XXXX
func Phone(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if c := v[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	d := b.String()
	if len(d) != 10 {
		return d
	}
	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
}

// Currency strips a leading dollar sign, the word dollars and thousands separators
func Currency(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "$")
	v = dollarsWord.ReplaceAllString(v, "")
	v = strings.ReplaceAll(v, ",", "")
	return strings.Join(strings.Fields(v), " ")
}

// Select maps v onto one of def.Options using the synonym table, then a case-insensitive option match.
// Both lookups use the folded key; unmatched values pass through as given
func Select(def fields.Definition, v string) string {
	key := std.Normalize(v)
	if opt, ok := def.Synonyms[key]; ok {
		return opt
	}
	if opt, ok := def.Option(key); ok {
		return opt
	}
	return v
}
