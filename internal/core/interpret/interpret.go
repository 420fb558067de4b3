// Package interpret maps free-text form commands such as "change the deductible to $2,000"
// onto a field id and a normalized value.
//
// An Interpreter is built once per field dictionary and is safe for concurrent use.
// It never fails: anything it cannot resolve to both a field and a value is reported
// as not understood
package interpret

import (
	"regexp"
	"sort"
	"strings"

	"formvoice/internal/core/fields"
	"formvoice/internal/core/normalize"
)

// Result is a recognized command
type Result struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Strategy names the extraction step that produced a value
type Strategy string

const (
	// StrategyNone means no value was extracted
	StrategyNone Strategy = ""
	// StrategyPreposition is "<term> <preposition> <value>"
	StrategyPreposition Strategy = "preposition"
	// StrategyAdjacent is "<term> <value>" with no preposition
	StrategyAdjacent Strategy = "adjacent"
	// StrategyTo is everything after the first " to "
	StrategyTo Strategy = "to"
)

// Trace reports every intermediate step of one interpretation
type Trace struct {
	Command     string   `json:"command"`
	Field       string   `json:"field,omitempty"`
	Preposition string   `json:"preposition,omitempty"`
	Raw         string   `json:"raw,omitempty"`
	Value       string   `json:"value,omitempty"`
	Strategy    Strategy `json:"strategy,omitempty"`
	Recognized  bool     `json:"recognized"`
}

// Result returns the collapsed outcome of t
func (t Trace) Result() (Result, bool) {
	if !t.Recognized {
		return Result{}, false
	}
	return Result{Field: t.Field, Value: t.Value}, true
}

// matcher holds the precompiled extraction patterns for one field
type matcher struct {
	def      fields.Definition
	withPrep []*regexp.Regexp // aligned with Interpreter.preps
	adjacent *regexp.Regexp
}

// Interpreter resolves commands against one dictionary
type Interpreter struct {
	dict  *fields.Dictionary
	norm  *normalize.Normalizer
	preps []string
	verbs []string

	matchers []matcher
	ac       *termAutomaton
	termOf   []int // term id -> matcher index
}

// New builds an Interpreter over dict. It panics on a nil dictionary
func New(dict *fields.Dictionary, opts ...Option) *Interpreter {
	if dict == nil {
		panic("interpret: nil dictionary")
	}
	cfg := config{
		preps: DefaultPrepositions(),
		verbs: DefaultCommandVerbs(),
	}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	n := normalize.New()
	in := &Interpreter{
		dict:  dict,
		norm:  n,
		preps: cleanWords(n, cfg.preps),
		verbs: cleanWords(n, cfg.verbs),
		ac:    newTermAutomaton(),
	}

	for i, def := range dict.Fields() {
		terms := in.terms(def)
		for _, t := range terms {
			in.ac.Add(t, len(in.termOf))
			in.termOf = append(in.termOf, i)
		}

		alt := alternation(terms)
		m := matcher{def: def}
		for _, p := range in.preps {
			m.withPrep = append(m.withPrep, regexp.MustCompile(alt+`\s+`+regexp.QuoteMeta(p)+`\s+(.+)`))
		}
		m.adjacent = regexp.MustCompile(alt + `\s+(.+)`)
		in.matchers = append(in.matchers, m)
	}
	in.ac.Build()

	return in
}

// Dictionary returns the dictionary the Interpreter resolves against
func (in *Interpreter) Dictionary() *fields.Dictionary { return in.dict }

// Prepositions returns the prepositions tried, in order
func (in *Interpreter) Prepositions() []string { return append([]string(nil), in.preps...) }

// CommandVerbs returns the verbs that disqualify an adjacent value
func (in *Interpreter) CommandVerbs() []string { return append([]string(nil), in.verbs...) }

// Interpret resolves command to a field and normalized value.
// ok is false when the command was not understood
func (in *Interpreter) Interpret(command string) (Result, bool) {
	return in.Explain(command).Result()
}

// Explain runs the interpretation and reports how far it got
func (in *Interpreter) Explain(command string) Trace {
	mc := in.norm.Map(command)
	tr := Trace{Command: mc.Folded}
	if mc.Folded == "" {
		return tr
	}

	mi, ok := in.locate(mc.Folded)
	if !ok {
		return tr
	}
	m := in.matchers[mi]
	tr.Field = m.def.ID

	raw, prep, strategy := in.extract(m, mc)
	if strategy == StrategyNone {
		return tr
	}
	tr.Raw, tr.Preposition, tr.Strategy = raw, prep, strategy

	tr.Value = normalize.Value(m.def, raw)
	tr.Recognized = tr.Value != ""
	return tr
}

// locate returns the first field in declaration order with any term contained in cmd
func (in *Interpreter) locate(cmd string) (int, bool) {
	best := -1
	in.ac.Scan(cmd, func(id int) bool {
		if mi := in.termOf[id]; best == -1 || mi < best {
			best = mi
		}
		return best != 0
	})
	return best, best >= 0
}

// extract matches on the folded command and returns the value cut from the plain one
func (in *Interpreter) extract(m matcher, mc normalize.Mapped) (raw, prep string, s Strategy) {
	for i, re := range m.withPrep {
		if _, v := capture(re, mc); v != "" {
			return v, in.preps[i], StrategyPreposition
		}
	}

	if f, v := capture(m.adjacent, mc); v != "" && !in.startsWithVerb(f) && !in.startsWithPreposition(f) {
		return v, "", StrategyAdjacent
	}

	if i := strings.Index(mc.Folded, " to "); i >= 0 {
		if v := trimClause(mc.Plain[mc.PlainAt(i+len(" to ")):]); v != "" {
			return v, "to", StrategyTo
		}
	}
	return "", "", StrategyNone
}

func (in *Interpreter) startsWithVerb(v string) bool {
	for _, verb := range in.verbs {
		if v == verb || strings.HasPrefix(v, verb+" ") {
			return true
		}
	}
	return false
}

// startsWithPreposition catches a dangling "deductible to" or "deductible to, 500"
func (in *Interpreter) startsWithPreposition(v string) bool {
	words := strings.Fields(v)
	if len(words) == 0 {
		return false
	}
	first := strings.TrimRight(words[0], ",;:.")
	for _, p := range in.preps {
		if first == p {
			return true
		}
	}
	return false
}

// terms returns def's normalized terms, dropping any that normalize to nothing
func (in *Interpreter) terms(def fields.Definition) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, t := range def.Terms() {
		t = in.norm.Normalize(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// capture returns re's value group in both forms. The group always runs to the
// end of the command, so the plain value is everything from its mapped start
func capture(re *regexp.Regexp, mc normalize.Mapped) (folded, plain string) {
	loc := re.FindStringSubmatchIndex(mc.Folded)
	if len(loc) < 4 || loc[2] < 0 {
		return "", ""
	}
	if folded = trimClause(mc.Folded[loc[2]:loc[3]]); folded == "" {
		return "", ""
	}
	return folded, trimClause(mc.Plain[mc.PlainAt(loc[2]):])
}

// trimClause drops trailing list separators and surrounding space
func trimClause(v string) string {
	return strings.TrimRight(strings.TrimSpace(v), " ,;")
}

// alternation builds a non-capturing group over terms, longest first so that
// "phone number" wins over "phone" at the same offset
func alternation(terms []string) string {
	sorted := append([]string(nil), terms...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, t := range sorted {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return `(?:` + strings.Join(quoted, "|") + `)`
}
