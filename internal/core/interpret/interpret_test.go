package interpret

import (
	"strings"
	"sync"
	"testing"

	"formvoice/internal/core/fields"
	"formvoice/internal/platform/testkit"
)

func policy(t *testing.T) *Interpreter {
	t.Helper()
	d, err := fields.Load("policy")
	if err != nil {
		t.Fatalf("load policy: %v", err)
	}
	return New(d)
}

func TestInterpret_Commands(t *testing.T) {
	in := policy(t)

	tests := []struct {
		name  string
		cmd   string
		field string
		value string
	}{
		{"currency symbol and separators", "change the deductible to $2,000", "deductible", "2000"},
		{"dictated email", "update my email to name at example dot com", "email", "name@example.com"},
		{"policy type synonym", "change the policy type to Home Insurance", "policyType", "home"},
		{"phone reformat", "set the phone number to 5551234567", "phone", "(555) 123-4567"},
		{"date with comma and period", "Set the start date to January 15, 2024.", "startDate", "2024-01-15"},
		{"text is lowercased", "update first name to Jane", "firstName", "jane"},
		{"coverage type before coverage amount", "set coverage type to full coverage", "coverageType", "comprehensive"},
		{"currency word", "set coverage to 250,000 dollars", "coverageAmount", "250000"},
		{"adjacent value", "premium 200", "monthlyPremium", "200"},
		{"adjacent after verb", "make the policy number POL-999", "policyNumber", "pol-999"},
		{"as preposition", "can you set my email as jane at example dot com?", "email", "jane@example.com"},
		{"to fallback", "please update the last name please to doe", "lastName", "doe"},
		{"fullwidth input", "ｓｅｔ ｄｅｄｕｃｔｉｂｌｅ ｔｏ ５００", "deductible", "500"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := in.Interpret(tc.cmd)
			if !ok {
				t.Fatalf("Interpret(%q) not understood", tc.cmd)
			}
			if got.Field != tc.field || got.Value != tc.value {
				t.Fatalf("Interpret(%q) = %+v, want {%s %s}", tc.cmd, got, tc.field, tc.value)
			}
		})
	}
}

// folding is for matching only; text values keep the runes that were spoken
func TestInterpret_NonASCIITextValues(t *testing.T) {
	in := policy(t)

	tests := []struct {
		cmd   string
		field string
		value string
	}{
		{"update first name to कुमार", "firstName", "कुमार"},
		{"update last name to Strauß", "lastName", "strauß"},
		{"set first name to ﬁona", "firstName", "ﬁona"},
		{"set last name to Jose\u0301 Núñez.", "lastName", "jose\u0301 núñez"},
		{"please update the last name please to Ødegård", "lastName", "ødegård"},
	}
	for _, tc := range tests {
		got, ok := in.Interpret(tc.cmd)
		if !ok || got.Field != tc.field || got.Value != tc.value {
			t.Fatalf("Interpret(%q) = %+v/%v, want {%s %s}", tc.cmd, got, ok, tc.field, tc.value)
		}
	}

	tr := in.Explain("update last name to Strauß")
	if tr.Command != "update last name to strauss" || tr.Raw != "strauß" || tr.Strategy != StrategyPreposition {
		t.Fatalf("trace = %+v", tr)
	}
}

func TestInterpret_NotUnderstood(t *testing.T) {
	in := policy(t)
	for _, cmd := range []string{
		"what time is it",
		"set deductible",
		"set deductible to",
		"set deductible to, 500",
		"deductible update 500",
		"what is the deductible",
		"set the phone to call me",
	} {
		if got, ok := in.Interpret(cmd); ok {
			t.Fatalf("Interpret(%q) = %+v, want not understood", cmd, got)
		}
	}
}

func TestInterpret_NullSafety(t *testing.T) {
	in := policy(t)
	inputs := []string{
		"",
		"   ",
		"\t\n",
		string([]byte{0xff, 0xfe, 0xfd}),
		"😀🙃 ​‍",
		"\x00\x01\x02",
		strings.Repeat("to ", 2000),
	}
	for _, s := range inputs {
		testkit.MustNotPanic(t, func() {
			if got, ok := in.Interpret(s); ok {
				t.Fatalf("Interpret(%q) = %+v, want not understood", s, got)
			}
		})
	}
}

func TestInterpret_Deterministic(t *testing.T) {
	in := policy(t)
	cmds := []string{
		"change the deductible to $2,000",
		"what time is it",
		"set the end date to 3/4/2025",
	}
	for _, cmd := range cmds {
		a, okA := in.Interpret(cmd)
		b, okB := in.Interpret(cmd)
		if a != b || okA != okB {
			t.Fatalf("Interpret(%q) not deterministic: %+v/%v vs %+v/%v", cmd, a, okA, b, okB)
		}
	}
}

// every term of every embedded field resolves back to its own field
func TestInterpret_TermCoverage(t *testing.T) {
	sample := map[fields.Type]string{
		fields.TypeText:     "sample",
		fields.TypeEmail:    "a@b.co",
		fields.TypeTel:      "5551234567",
		fields.TypeDate:     "2024-02-03",
		fields.TypeCurrency: "500",
	}

	for _, ft := range fields.FormTypes() {
		d, err := fields.Load(ft)
		if err != nil {
			t.Fatalf("Load(%q): %v", ft, err)
		}
		in := New(d)
		for _, def := range d.Fields() {
			x := sample[def.Type]
			if def.Type == fields.TypeSelect {
				x = def.Options[0]
			}
			for _, term := range def.Terms() {
				cmd := "update " + term + " to " + x
				got, ok := in.Interpret(cmd)
				if !ok || got.Field != def.ID {
					t.Errorf("%s: Interpret(%q) = %+v/%v, want field %s", ft, cmd, got, ok, def.ID)
				}
			}
		}
	}
}

func TestExplain_Strategies(t *testing.T) {
	in := policy(t)

	tests := []struct {
		cmd      string
		field    string
		strategy Strategy
		prep     string
		ok       bool
	}{
		{"set deductible to 500", "deductible", StrategyPreposition, "to", true},
		{"set my email as a@b.co", "email", StrategyPreposition, "as", true},
		{"deductible 500", "deductible", StrategyAdjacent, "", true},
		{"update the deductible please to 500", "deductible", StrategyTo, "to", true},
		{"what is the deductible", "deductible", StrategyNone, "", false},
		{"hello there", "", StrategyNone, "", false},
	}
	for _, tc := range tests {
		tr := in.Explain(tc.cmd)
		if tr.Field != tc.field || tr.Strategy != tc.strategy || tr.Preposition != tc.prep || tr.Recognized != tc.ok {
			t.Fatalf("Explain(%q) = %+v", tc.cmd, tr)
		}
		if _, ok := tr.Result(); ok != tc.ok {
			t.Fatalf("Result ok = %v want %v", ok, tc.ok)
		}
	}

	tr := in.Explain("  SET Deductible TO $1,000. ")
	if tr.Command != "set deductible to $1,000." || tr.Raw != "$1,000." || tr.Value != "1000" {
		t.Fatalf("trace = %+v", tr)
	}
}

func TestInterpret_DeclarationOrderWins(t *testing.T) {
	d := fields.MustNew("custom",
		fields.Definition{ID: "coverage", Aliases: []string{"coverage"}},
		fields.Definition{ID: "coverageType", Aliases: []string{"coverage type"}},
	)
	got, ok := New(d).Interpret("set coverage type to collision")
	if !ok || got.Field != "coverage" {
		t.Fatalf("got %+v/%v, want first declared field", got, ok)
	}
	if got.Value != "type to collision" {
		t.Fatalf("value = %q", got.Value)
	}
}

// substring matching is not word aware: "as" is found inside "password"
func TestInterpret_SubstringMatch(t *testing.T) {
	d := fields.MustNew("custom", fields.Definition{ID: "alias", Aliases: []string{"as"}})
	got, ok := New(d).Interpret("update password to hunter2")
	if !ok || got != (Result{Field: "alias", Value: "hunter2"}) {
		t.Fatalf("got %+v/%v", got, ok)
	}
}

func TestOptions(t *testing.T) {
	d, err := fields.Load("policy")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	in := New(d, WithPrepositions("equals", "Equals", " "))
	if got := strings.Join(in.Prepositions(), ","); got != "equals" {
		t.Fatalf("prepositions = %q", got)
	}
	if got, ok := in.Interpret("set deductible equals 750"); !ok || got.Value != "750" {
		t.Fatalf("got %+v/%v", got, ok)
	}

	if _, ok := New(d).Interpret("deductible update 500"); ok {
		t.Fatalf("default verbs should reject an adjacent verb")
	}
	got, ok := New(d, WithCommandVerbs()).Interpret("deductible update 500")
	if !ok || got.Value != "update 500" {
		t.Fatalf("got %+v/%v", got, ok)
	}
	if len(New(d, nil).CommandVerbs()) != len(DefaultCommandVerbs()) {
		t.Fatalf("nil option should be ignored")
	}
}

func TestNew_NilDictionary(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil) })
}

func TestInterpret_Concurrent(t *testing.T) {
	in := policy(t)
	want := Result{Field: "deductible", Value: "2000"}

	var wg sync.WaitGroup
	errs := make(chan Result, 64)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if got, ok := in.Interpret("change the deductible to $2,000"); !ok || got != want {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("concurrent Interpret = %+v", got)
	}
}

func TestTermAutomaton(t *testing.T) {
	a := newTermAutomaton()
	for i, term := range []string{"he", "she", "his", "hers"} {
		a.Add(term, i)
	}
	a.Add("", 9)
	a.Build()

	var ids []int
	a.Scan("ushers", func(id int) bool {
		ids = append(ids, id)
		return true
	})
	// "she" and "he" end at the same byte, then "hers"
	if len(ids) != 3 {
		t.Fatalf("ids = %v", ids)
	}

	n := 0
	a.Scan("hehehe", func(int) bool { n++; return false })
	if n != 1 {
		t.Fatalf("scan should stop early, got %d", n)
	}
}
