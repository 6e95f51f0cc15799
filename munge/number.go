package munge

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

// ToDecimal converts v to a decimal.Decimal. Named numeric types are
// converted through their underlying kind, so a `type Count uint8`
// munges the same way a plain uint8 does.
func ToDecimal(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case *big.Int:
		if n == nil {
			return decimal.Zero, fmt.Errorf("could not convert a nil *big.Int to a number")
		}
		return decimal.NewFromBigInt(n, 0), nil
	case string:
		return parseDecimal(n)
	}

	if v != nil {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return decimal.NewFromInt(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), nil
		case reflect.Float32, reflect.Float64:
			f := rv.Float()
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return decimal.Zero, fmt.Errorf("%v is not a finite number", f)
			}
			if rv.Kind() == reflect.Float32 {
				return decimal.NewFromFloat32(float32(f)), nil
			}
			return decimal.NewFromFloat(f), nil
		}
	}
	return decimal.Zero, fmt.Errorf("%v is not a valid number type. Valid number types are integers, floats, decimal.Decimal, *big.Int, and numeric strings", v)
}

var radixPrefixes = []string{"0x", "0X", "0o", "0O", "0b", "0B"}

// maxMagnitude bounds the order of magnitude of a parsed number. It sits
// past float64's range so that every rejected number would overflow or
// underflow a float64 anyway.
const maxMagnitude = 400

// parseDecimal parses str as a decimal number. Hex, octal and binary
// integers are accepted when they carry an explicit 0x/0o/0b prefix.
// A bare leading zero is not treated as octal. Numbers whose order of
// magnitude is beyond maxMagnitude are rejected, since rescaling them
// costs time proportional to the exponent rather than to str.
func parseDecimal(str string) (decimal.Decimal, error) {
	str = strings.TrimSpace(str)
	unsigned := strings.TrimLeft(str, "+-")
	for _, prefix := range radixPrefixes {
		if strings.HasPrefix(unsigned, prefix) {
			i, ok := new(big.Int).SetString(str, 0)
			if !ok {
				return decimal.Zero, fmt.Errorf("could not parse %q into a %v-prefixed integer", str, prefix)
			}
			return decimal.NewFromBigInt(i, 0), nil
		}
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not parse %q into a number: %v", str, err)
	}
	coefficient := d.Coefficient()
	if coefficient.Sign() == 0 {
		return decimal.Zero, nil
	}
	digits := len(coefficient.Abs(coefficient).String())
	magnitude := int64(digits) + int64(d.Exponent())
	if magnitude > maxMagnitude || magnitude < -maxMagnitude {
		return decimal.Zero, fmt.Errorf("could not parse %q into a number: number out of range", str)
	}
	return d, nil
}
