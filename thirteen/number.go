package thirteen

import (
	"math"
	"reflect"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Number is satisfied by every integer and floating point type
type Number interface {
	constraints.Integer | constraints.Float
}

const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

var thirteenDecimal = decimal.New(13, 0)

// Int is thirteen if n == 13.
func Int[T constraints.Integer](n T) Predicate {
	return &integer[T]{n: n}
}

type integer[T constraints.Integer] struct {
	n T
}

func (p *integer[T]) Thirteen() bool {
	return p.n == 13
}

var _ = Predicate(&integer[int]{})

// Float is thirteen if f is within its type's machine epsilon of 13.
func Float[T constraints.Float](f T) Predicate {
	return &float[T]{f: f}
}

type float[T constraints.Float] struct {
	f T
}

func (p *float[T]) Thirteen() bool {
	epsilon := epsilon64
	if reflect.ValueOf(p.f).Kind() == reflect.Float32 {
		epsilon = epsilon32
	}
	return math.Abs(float64(p.f)-13) < epsilon
}

var _ = Predicate(&float[float64]{})

// Decimal is thirteen if d is exactly 13. It covers integers too large
// for any of Go's fixed-width types.
func Decimal(d decimal.Decimal) Predicate {
	return &decimalP{d: d}
}

type decimalP struct {
	d decimal.Decimal
}

func (p *decimalP) Thirteen() bool {
	// Equal rescales both sides to the smaller exponent, so rule out the
	// decimals whose coefficient can't be 13 * 10^-exp before calling it.
	// That keeps a huge exponent from costing time proportional to itself.
	exp := p.d.Exponent()
	if exp > 0 {
		return false
	}
	coefficient := p.d.Coefficient()
	if len(coefficient.Abs(coefficient).String()) != 2-int(exp) {
		return false
	}
	return p.d.Equal(thirteenDecimal)
}

var _ = Predicate(&decimalP{})
