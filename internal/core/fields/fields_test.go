package fields

import (
	"strings"
	"testing"
)

func TestLoad_Embedded(t *testing.T) {
	types := FormTypes()
	if len(types) < 2 {
		t.Fatalf("expected at least two embedded form types, got %v", types)
	}
	for _, ft := range types {
		d, err := Load(ft)
		if err != nil {
			t.Fatalf("Load(%q): %v", ft, err)
		}
		if d.FormType() != ft {
			t.Fatalf("form type = %q want %q", d.FormType(), ft)
		}
		if d.Len() == 0 || d.Title() == "" {
			t.Fatalf("%s: empty dictionary or title", ft)
		}
		again, _ := Load(ft)
		if again != d {
			t.Fatalf("%s: Load should return the cached dictionary", ft)
		}
	}
}

func TestLoad_PolicyFields(t *testing.T) {
	d, err := Load("policy")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{
		"firstName", "lastName", "email", "phone", "policyType", "policyNumber",
		"startDate", "endDate", "coverageType", "coverageAmount", "deductible", "monthlyPremium",
	}
	got := d.Fields()
	if len(got) != len(want) {
		t.Fatalf("len = %d want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("field %d = %q want %q", i, got[i].ID, id)
		}
	}

	pt, ok := d.Lookup("policyType")
	if !ok || pt.Type != TypeSelect {
		t.Fatalf("policyType missing or not select: %+v", pt)
	}
	if pt.Synonyms["home insurance"] != "home" {
		t.Fatalf("synonym home insurance = %q", pt.Synonyms["home insurance"])
	}
	if d.Label("monthlyPremium") != "Monthly Premium" {
		t.Fatalf("label = %q", d.Label("monthlyPremium"))
	}
	if d.Label("nope") != "nope" {
		t.Fatalf("unknown label should echo id")
	}
	if d.Defaults()["policyNumber"] != "POL-123456789" {
		t.Fatalf("default policyNumber = %q", d.Defaults()["policyNumber"])
	}
}

func TestLoad_Acord126(t *testing.T) {
	d, err := Load("acord126")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	types := map[string]Type{
		"agencyCustomerId":        TypeText,
		"effectiveDate":           TypeDate,
		"coverageType":            TypeSelect,
		"claimsOccurrence":        TypeSelect,
		"generalAggregate":        TypeCurrency,
		"eachOccurrence":          TypeCurrency,
		"proposedRetroactiveDate": TypeDate,
	}
	for id, want := range types {
		def, ok := d.Lookup(id)
		if !ok || def.Type != want {
			t.Fatalf("%s = %+v/%v, want type %s", id, def, ok, want)
		}
	}
	if d.Label("damageToRentedPremises") != "Damage To Rented Premises" {
		t.Fatalf("label = %q", d.Label("damageToRentedPremises"))
	}
	ct, _ := d.Lookup("coverageType")
	if ct.Synonyms["cgl"] != "Commercial General Liability" {
		t.Fatalf("cgl synonym = %q", ct.Synonyms["cgl"])
	}
	if d.Defaults()["claimsOccurrence"] != "Occurrence" {
		t.Fatalf("default claimsOccurrence = %q", d.Defaults()["claimsOccurrence"])
	}
}

func TestLoad_Rejects(t *testing.T) {
	for _, ft := range []string{"", "../policy", "missing", "a/b"} {
		if _, err := Load(ft); err == nil {
			t.Fatalf("Load(%q) should fail", ft)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"bad json", `{`, "parse dictionary"},
		{"version", `{"version":9,"form_type":"x","fields":[{"id":"a"}]}`, "unsupported dictionary version"},
		{"no fields", `{"version":1,"form_type":"x","fields":[]}`, "no fields"},
		{"bad type", `{"version":1,"form_type":"x","fields":[{"id":"a","type":"blob"}]}`, "unknown type"},
		{"select no options", `{"version":1,"form_type":"x","fields":[{"id":"a","type":"select"}]}`, "without options"},
		{"bad synonym", `{"version":1,"form_type":"x","fields":[{"id":"a","type":"select","options":["x"],"synonyms":{"y":"z"}}]}`, "unknown option"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestNew_DuplicateTerms(t *testing.T) {
	_, err := New("x",
		Definition{ID: "a", Aliases: []string{"shared"}},
		Definition{ID: "b", Aliases: []string{"Shared "}},
	)
	if err == nil || !strings.Contains(err.Error(), `"shared"`) {
		t.Fatalf("expected duplicate term error, got %v", err)
	}

	_, err = New("x", Definition{ID: "a"}, Definition{ID: "a"})
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}

	// overlapping substrings across fields are allowed
	if _, err := New("x",
		Definition{ID: "coverageType", Aliases: []string{"coverage type"}},
		Definition{ID: "coverageAmount", Aliases: []string{"coverage"}},
	); err != nil {
		t.Fatalf("substring overlap should be allowed: %v", err)
	}
}

func TestDefinition_Terms(t *testing.T) {
	d := Definition{ID: "firstName", DisplayName: "First Name", Aliases: []string{"first name", "Given Name"}}
	got := strings.Join(d.Terms(), "|")
	if got != "firstname|first name|given name" {
		t.Fatalf("terms = %q", got)
	}
}

func TestDictionary_Unknown(t *testing.T) {
	d := MustNew("x", Definition{ID: "a"}, Definition{ID: "b"})
	got := d.Unknown("b", "z", "c", "a")
	if strings.Join(got, ",") != "c,z" {
		t.Fatalf("unknown = %v", got)
	}
	if d.Unknown("a") != nil {
		t.Fatalf("expected nil for all-known ids")
	}
	if def, _ := d.Lookup("a"); def.Type != TypeText {
		t.Fatalf("empty type should default to text, got %q", def.Type)
	}
}
