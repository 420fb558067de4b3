package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops what a transcript should never carry into matching: NUL and
// the other C0 controls except tab and line breaks, DEL, C1 controls and
// invalid UTF-8 (U+FFFD goes with it). Clean input comes back without allocating
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if dropRune(r) {
			return -1
		}
		return r
	}, s)
}

func dropRune(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return false
	case r < 0x20, r == 0x7f:
		return true
	case r >= 0x80 && r <= 0x9f:
		return true
	}
	return r == utf8.RuneError
}
