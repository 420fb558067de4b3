// Package normalize turns a spoken or typed command into the canonical form
// the interpreter matches against: sanitized, NFKC, case folded, stripped of
// combining and format marks, width folded, with whitespace collapsed.
//
// Folding is lossy, so Map also keeps the merely lowercased command and an
// offset table back into it; values are cut from that copy. Punctuation
// survives both forms. The per-type value normalizers live in values.go
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is safe for concurrent use
type Normalizer struct{}

// transform chains carry state, so each call takes its own
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)), // combining marks
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF and friends
			width.Fold,
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the folded single-line form of s
func (n *Normalizer) Normalize(s string) string {
	return n.Map(s).Folded
}

// Mapped is one command in two forms. Folded is what terms and prepositions
// are matched against; Plain is the sanitized, lowercased, whitespace collapsed
// command that values are taken from
type Mapped struct {
	Folded string
	Plain  string

	// offs[i] is the Plain offset of the source cluster of Folded[i], with
	// len(Plain) appended; nil when Folded == Plain
	offs []int
}

// PlainAt maps a byte offset in Folded to the start of the Plain text it came from
func (m Mapped) PlainAt(i int) int {
	switch {
	case i <= 0:
		return 0
	case m.offs == nil:
		return min(i, len(m.Plain))
	case i >= len(m.offs):
		return len(m.Plain)
	}
	return m.offs[i]
}

// Map normalizes s and records where each folded byte came from. A base rune
// and the combining marks after it fold as one cluster, so a Folded offset
// always lands on a cluster boundary in Plain
func (n *Normalizer) Map(s string) Mapped {
	plain := strings.Join(strings.Fields(strings.ToLower(Sanitize(s))), " ")
	if plain == "" {
		return Mapped{}
	}
	if isASCII(plain) {
		return Mapped{Folded: plain, Plain: plain}
	}

	tr := chainPool.Get().(transform.Transformer)
	defer chainPool.Put(tr)

	var b strings.Builder
	b.Grow(len(plain))
	offs := make([]int, 0, len(plain)+1)
	space := false

	for start := 0; start < len(plain); {
		end := clusterEnd(plain, start)
		tr.Reset()
		out, _, err := transform.String(tr, plain[start:end])
		if err != nil {
			out = plain[start:end]
		}
		for _, r := range out {
			if unicode.IsSpace(r) {
				// compatibility forms can expand to spaces
				if b.Len() == 0 || space {
					continue
				}
				b.WriteByte(' ')
				offs = append(offs, start)
				space = true
				continue
			}
			space = false
			b.WriteRune(r)
			for range utf8.RuneLen(r) {
				offs = append(offs, start)
			}
		}
		start = end
	}

	folded := b.String()
	if space {
		folded = folded[:len(folded)-1]
		offs = offs[:len(offs)-1]
	}
	return Mapped{Folded: folded, Plain: plain, offs: append(offs, len(plain))}
}

// clusterEnd returns the end of the rune at i plus any combining marks after it
func clusterEnd(s string, i int) int {
	_, size := utf8.DecodeRuneInString(s[i:])
	i += size
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.Is(unicode.M, r) {
			break
		}
		i += size
	}
	return i
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
