package interpret

import "formvoice/internal/core/normalize"

// Option customizes an Interpreter at construction time
type Option func(*config)

type config struct {
	preps []string
	verbs []string
}

// DefaultPrepositions are tried in this order between a field term and its value
func DefaultPrepositions() []string {
	return []string{"to", "as", "with", "is", "for"}
}

// DefaultCommandVerbs disqualify a value captured directly after a field term
func DefaultCommandVerbs() []string {
	return []string{"update", "change", "set", "modify", "make", "put", "please", "can you"}
}

// WithPrepositions replaces the preposition list; order is significant
func WithPrepositions(preps ...string) Option {
	return func(c *config) { c.preps = append([]string(nil), preps...) }
}

// WithCommandVerbs replaces the command verb list
func WithCommandVerbs(verbs ...string) Option {
	return func(c *config) { c.verbs = append([]string(nil), verbs...) }
}

// cleanWords normalizes words, dropping blanks and repeats but keeping order
func cleanWords(n *normalize.Normalizer, words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = n.Normalize(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
