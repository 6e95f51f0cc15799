// Package thirteen reports whether a value is thirteen. Every supported
// input shape has a constructor that wraps the value in a Predicate;
// the wrapper constructors (Roughly, AnagramOf, DivisibleBy, ...) pick
// an alternative rule for the same payload.
package thirteen

// Predicate represents a value that can be compared to thirteen
type Predicate interface {
	Thirteen() bool
}

// Is returns p.Thirteen(). A nil p is not thirteen.
func Is(p Predicate) bool {
	return p != nil && p.Thirteen()
}
