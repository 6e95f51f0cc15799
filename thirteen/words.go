package thirteen

import "strings"

// Backwards is thirteen if s is "thirteen" spelled backwards, ignoring
// case.
func Backwards(s string) Predicate {
	return &backwards{s: s}
}

type backwards struct {
	s string
}

func (p *backwards) Thirteen() bool {
	return strings.EqualFold(p.s, "neetriht")
}

var _ = Predicate(&backwards{})

// AtomicNumber is thirteen if s names the element with atomic number 13.
func AtomicNumber(s string) Predicate {
	return &atomicNumber{s: s}
}

type atomicNumber struct {
	s string
}

func (p *atomicNumber) Thirteen() bool {
	return strings.EqualFold(p.s, "aluminum")
}

var _ = Predicate(&atomicNumber{})
