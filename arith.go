package normdecimal

import (
	"fmt"

	"github.com/govalues/decimal"
)

// binop applies f to the underlying values of d and e and normalizes the result.
func (d Decimal) binop(e Decimal, f func(x, y decimal.Decimal) (decimal.Decimal, error)) (Decimal, error) {
	z, err := f(d.value, e.value)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimal(z), nil
}

// combine converts e to a decimal and applies op to d and the result.
func combine[T Operand](d Decimal, e T, op func(Decimal, Decimal) (Decimal, error)) (Decimal, error) {
	f, err := Of(e)
	if err != nil {
		return Decimal{}, err
	}
	return op(d, f)
}

func rem(x, y decimal.Decimal) (decimal.Decimal, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Add returns the (possibly rounded) sum of decimals d and e.
// See also function [AddOf].
//
// Add returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	f, err := d.binop(e, decimal.Decimal.Add)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return f, nil
}

// Sub returns the (possibly rounded) difference between decimals d and e.
// See also function [SubOf].
//
// Sub returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	f, err := d.binop(e, decimal.Decimal.Sub)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return f, nil
}

// Mul returns the (possibly rounded) product of decimals d and e.
// See also function [MulOf].
//
// Mul returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	f, err := d.binop(e, decimal.Decimal.Mul)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return f, nil
}

// Quo returns the (possibly rounded) quotient of decimals d and e.
// See also functions [QuoOf], [Decimal.Rem].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	f, err := d.binop(e, decimal.Decimal.Quo)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return f, nil
}

// Rem returns the remainder r of decimals d and e such that d = e * q + r,
// where q is an integer and the sign of r is the same as the sign of d.
// See also functions [RemOf], [Decimal.Quo].
//
// Rem returns an error if:
//   - the divisor is 0;
//   - the integer part of the quotient has more than [decimal.MaxPrec] digits.
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	f, err := d.binop(e, rem)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v mod %v]: %w", d, e, err)
	}
	return f, nil
}

// Neg returns a decimal with the opposite sign.
// The negation of zero is zero.
func (d Decimal) Neg() Decimal {
	return newDecimal(d.value.Neg())
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	return newDecimal(d.value.Abs())
}

// AddOf is like [Decimal.Add] but accepts any [Operand] as the second argument.
func AddOf[T Operand](d Decimal, e T) (Decimal, error) {
	return combine(d, e, Decimal.Add)
}

// SubOf is like [Decimal.Sub] but accepts any [Operand] as the second argument.
func SubOf[T Operand](d Decimal, e T) (Decimal, error) {
	return combine(d, e, Decimal.Sub)
}

// MulOf is like [Decimal.Mul] but accepts any [Operand] as the second argument.
func MulOf[T Operand](d Decimal, e T) (Decimal, error) {
	return combine(d, e, Decimal.Mul)
}

// QuoOf is like [Decimal.Quo] but accepts any [Operand] as the second argument.
func QuoOf[T Operand](d Decimal, e T) (Decimal, error) {
	return combine(d, e, Decimal.Quo)
}

// RemOf is like [Decimal.Rem] but accepts any [Operand] as the second argument.
func RemOf[T Operand](d Decimal, e T) (Decimal, error) {
	return combine(d, e, Decimal.Rem)
}

// assign replaces *d with the result of op, leaving it unchanged on error.
func (d *Decimal) assign(e Decimal, op func(Decimal, Decimal) (Decimal, error)) error {
	f, err := op(*d, e)
	if err != nil {
		return err
	}
	*d = f
	return nil
}

// AddAssign sets d to d + e.
// If an error is returned, d is left unchanged.
// See also method [Decimal.Add].
func (d *Decimal) AddAssign(e Decimal) error {
	return d.assign(e, Decimal.Add)
}

// SubAssign sets d to d - e.
// If an error is returned, d is left unchanged.
// See also method [Decimal.Sub].
func (d *Decimal) SubAssign(e Decimal) error {
	return d.assign(e, Decimal.Sub)
}

// MulAssign sets d to d * e.
// If an error is returned, d is left unchanged.
// See also method [Decimal.Mul].
func (d *Decimal) MulAssign(e Decimal) error {
	return d.assign(e, Decimal.Mul)
}

// QuoAssign sets d to d / e.
// If an error is returned, d is left unchanged.
// See also method [Decimal.Quo].
func (d *Decimal) QuoAssign(e Decimal) error {
	return d.assign(e, Decimal.Quo)
}

// RemAssign sets d to d mod e.
// If an error is returned, d is left unchanged.
// See also method [Decimal.Rem].
func (d *Decimal) RemAssign(e Decimal) error {
	return d.assign(e, Decimal.Rem)
}

// SetSignNegative makes d negative if negative is true and non-negative otherwise.
// Only the sign changes, the coefficient and scale are kept as they are.
// Zero has no sign, so it stays zero.
func (d *Decimal) SetSignNegative(negative bool) {
	if d.value.IsZero() || d.value.IsNeg() == negative {
		return
	}
	d.value = d.value.Neg()
}

// SetSignPositive makes d non-negative if positive is true and negative otherwise.
// See also method [Decimal.SetSignNegative].
func (d *Decimal) SetSignPositive(positive bool) {
	d.SetSignNegative(!positive)
}

// Round returns a decimal rounded to the specified number of digits after
// the decimal point using [rounding half to even] (banker's rounding).
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (d Decimal) Round(scale int) Decimal {
	return newDecimal(d.value.Round(scale))
}

// Trunc returns a decimal truncated to the specified number of digits after
// the decimal point using [rounding toward zero].
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (d Decimal) Trunc(scale int) Decimal {
	return newDecimal(d.value.Trunc(scale))
}

// Ceil returns a decimal rounded up to the specified number of digits after
// the decimal point using [rounding toward positive infinity].
//
// [rounding toward positive infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_up
func (d Decimal) Ceil(scale int) Decimal {
	return newDecimal(d.value.Ceil(scale))
}

// Floor returns a decimal rounded down to the specified number of digits after
// the decimal point using [rounding toward negative infinity].
//
// [rounding toward negative infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_down
func (d Decimal) Floor(scale int) Decimal {
	return newDecimal(d.value.Floor(scale))
}
