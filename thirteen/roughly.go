package thirteen

import (
	"math"

	"github.com/pkg/errors"
	"github.com/puppetlabs/thirteen/munge"
)

// Roughly is thirteen if f is in [12.5, 13.5)
func Roughly(f float64) Predicate {
	return &roughly{f: f}
}

// ParseRoughly parses str as a number and returns Roughly of it.
func ParseRoughly(str string) (Predicate, error) {
	d, err := munge.ToDecimal(str)
	if err != nil {
		return nil, errors.Wrap(err, "roughly")
	}
	f, _ := d.Float64()
	return Roughly(f), nil
}

type roughly struct {
	f float64
}

func (p *roughly) Thirteen() bool {
	return p.f >= 12.5 && p.f < 13.5
}

var _ = Predicate(&roughly{})

// Within is thirteen if v is at most radius away from 13.
func Within(v float64, radius float64) Predicate {
	return &within{
		v:      v,
		radius: radius,
	}
}

type within struct {
	v      float64
	radius float64
}

func (p *within) Thirteen() bool {
	return math.Abs(p.v-13) <= p.radius
}

var _ = Predicate(&within{})
