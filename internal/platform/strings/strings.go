// Package strings holds slice and string helpers shared by the platform packages
package strings

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}
