package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	def := []string{"GET", "POST"}
	if got := IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("nil -> %v", got)
	}
	if got := IfEmpty([]string{}, def); len(got) != 2 {
		t.Fatalf("empty -> %v", got)
	}
	if got := IfEmpty([]string{"PATCH"}, def); len(got) != 1 || got[0] != "PATCH" {
		t.Fatalf("set -> %v", got)
	}
}
