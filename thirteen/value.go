package thirteen

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/puppetlabs/thirteen/munge"
	"github.com/shopspring/decimal"
)

// Of wraps a dynamically typed value in the Predicate for its shape.
// Use it when the value's type is only known at runtime, e.g. when it
// was decoded from JSON. Since rune is an alias for int32, runes are
// compared as integers here; use Rune for the glyph rule.
func Of(v interface{}) (Predicate, error) {
	switch t := v.(type) {
	case nil:
		return Unit(), nil
	case struct{}:
		return Unit(), nil
	case Predicate:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float32:
		return Float(t), nil
	case float64:
		return Float(t), nil
	case func() Predicate:
		return Returns(t), nil
	case decimal.Decimal, *big.Int:
		d, err := munge.ToDecimal(t)
		if err != nil {
			return nil, fmt.Errorf("%v (%T) cannot be compared to thirteen: %v", v, v, err)
		}
		return Decimal(d), nil
	}

	// Named types, and the integers, go by their kind.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Float32:
		return Float(float32(rv.Float())), nil
	case reflect.Float64:
		return Float(rv.Float()), nil
	}
	d, err := munge.ToDecimal(v)
	if err != nil {
		return nil, fmt.Errorf("%v (%T) cannot be compared to thirteen. Supported types are integers, floats, strings, bools, struct{}, decimal.Decimal, *big.Int, func() Predicate, and Predicate", v, v)
	}
	return Decimal(d), nil
}
