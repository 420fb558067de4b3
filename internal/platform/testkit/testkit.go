// Package testkit holds assertions and seam helpers shared by package tests
package testkit

import (
	"encoding/json"
	"strings"
	"testing"
)

// MustPanic fails t unless fn panics and returns the recovered value
func MustPanic(t testing.TB, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
	return nil
}

// MustNotPanic fails t if fn panics
func MustNotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails t unless s contains sub
func MustContain(t testing.TB, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("missing %q in:\n%s", sub, s)
	}
}

// DecodeJSON unmarshals body into a T or fails t
func DecodeJSON[T any](t testing.TB, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return v
}
