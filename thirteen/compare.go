package thirteen

import (
	"github.com/puppetlabs/thirteen/munge"
	"github.com/shopspring/decimal"
)

// DivisibleBy is thirteen if 13 divides n. Floats are allowed, so
// DivisibleBy(26.0) is thirteen while DivisibleBy(6.5) is not.
func DivisibleBy[T Number](n T) Predicate {
	d, err := munge.ToDecimal(n)
	return &divisibleBy{
		n:  d,
		ok: err == nil,
	}
}

type divisibleBy struct {
	n decimal.Decimal
	// ok is false for NaN and the infinities, which nothing divides
	ok bool
}

func (p *divisibleBy) Thirteen() bool {
	return p.ok && p.n.Mod(thirteenDecimal).IsZero()
}

var _ = Predicate(&divisibleBy{})

// GreaterThan is thirteen if n > 13
func GreaterThan[T Number](n T) Predicate {
	return &greaterThan[T]{n: n}
}

type greaterThan[T Number] struct {
	n T
}

func (p *greaterThan[T]) Thirteen() bool {
	return p.n > 13
}

var _ = Predicate(&greaterThan[int]{})

// LessThan is thirteen if n < 13
func LessThan[T Number](n T) Predicate {
	return &lessThan[T]{n: n}
}

type lessThan[T Number] struct {
	n T
}

func (p *lessThan[T]) Thirteen() bool {
	return p.n < 13
}

var _ = Predicate(&lessThan[int]{})
