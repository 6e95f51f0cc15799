package thirteen

// Bool is never thirteen
func Bool(b bool) Predicate {
	return never{}
}

// Unit is never thirteen
func Unit() Predicate {
	return never{}
}

type never struct{}

func (never) Thirteen() bool {
	return false
}

var _ = Predicate(never{})
