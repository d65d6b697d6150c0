package normdecimal

import (
	"fmt"
)

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Since both decimals are normalized, Cmp(e) == 0 holds exactly when d == e.
func (d Decimal) Cmp(e Decimal) int {
	return d.value.Cmp(e.value)
}

// Equal returns true if decimals are numerically equal.
// It is the same as d == e.
func (d Decimal) Equal(e Decimal) bool {
	return d == e
}

// Less returns true if d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// Min returns the smaller decimal.
// See also function [MinOf].
func (d Decimal) Min(e Decimal) Decimal {
	return newDecimal(d.value.Min(e.value))
}

// Max returns the larger decimal.
// See also function [MaxOf].
func (d Decimal) Max(e Decimal) Decimal {
	return newDecimal(d.value.Max(e.value))
}

// MinOf is like [Decimal.Min] but accepts any [Operand] as the second argument.
func MinOf[T Operand](d Decimal, e T) (Decimal, error) {
	f, err := Of(e)
	if err != nil {
		return Decimal{}, err
	}
	return d.Min(f), nil
}

// MaxOf is like [Decimal.Max] but accepts any [Operand] as the second argument.
func MaxOf[T Operand](d Decimal, e T) (Decimal, error) {
	f, err := Of(e)
	if err != nil {
		return Decimal{}, err
	}
	return d.Max(f), nil
}

// Clamp compares decimals and returns:
//
//	min if d < min
//	max if d > max
//	  d otherwise
//
// Clamp returns an error if min is greater than max.
func (d Decimal) Clamp(min, max Decimal) (Decimal, error) {
	if min.Cmp(max) > 0 {
		return Decimal{}, fmt.Errorf("clamping %v: invalid range [%v, %v]", d, min, max)
	}
	return d.Max(min).Min(max), nil
}

// Sum returns the (possibly rounded) sum of decimals.
// The decimals are added from left to right starting with [Zero],
// so the sum of no decimals is [Zero].
//
// Sum returns an error if the integer part of an intermediate result has
// more than [decimal.MaxPrec] digits.
func Sum(ds ...Decimal) (Decimal, error) {
	s := Zero
	for i, d := range ds {
		var err error
		s, err = s.Add(d)
		if err != nil {
			return Decimal{}, fmt.Errorf("summing element %v: %w", i, err)
		}
	}
	return s, nil
}

// Prod returns the (possibly rounded) product of decimals.
// The decimals are multiplied from left to right starting with [One],
// so the product of no decimals is [One].
//
// Prod returns an error if the integer part of an intermediate result has
// more than [decimal.MaxPrec] digits.
func Prod(ds ...Decimal) (Decimal, error) {
	p := One
	for i, d := range ds {
		var err error
		p, err = p.Mul(d)
		if err != nil {
			return Decimal{}, fmt.Errorf("multiplying element %v: %w", i, err)
		}
	}
	return p, nil
}
