package normdecimal

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// Decimal type represents a decimal number that is always stored in its
// canonical form: trailing zeros after the decimal point are removed and the
// scale is the smallest one that represents the value exactly.
// For example, "1.50" and "1.5" are stored identically, so they are equal
// according to the == operator and can be used interchangeably as map keys.
// Its zero value corresponds to "0".
// Decimal is designed to be safe for concurrent use by multiple goroutines.
//
// All numeric computations are performed by [decimal.Decimal].
// Decimal only adds the normalization step after each of them.
type Decimal struct {
	value decimal.Decimal // trimmed to the minimal scale
}

var (
	// Zero is the additive identity.
	Zero = Decimal{}
	// One is the multiplicative identity.
	One = FromInt(1)
)

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Operand is a constraint that permits any type convertible to Decimal.
// See also function [Of].
type Operand interface {
	Decimal | decimal.Decimal | *decimal.Decimal |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64
}

// newDecimal normalizes d and wraps it.
func newDecimal(d decimal.Decimal) Decimal {
	return Decimal{value: d.Trim(0)}
}

// FromDecimal returns a normalized copy of decimal d.
// See also method [Decimal.Decimal].
func FromDecimal(d decimal.Decimal) Decimal {
	return newDecimal(d)
}

// FromDecimalPtr is like [FromDecimal] but takes a pointer.
// A nil pointer is converted to [Zero].
func FromDecimalPtr(d *decimal.Decimal) Decimal {
	if d == nil {
		return Zero
	}
	return newDecimal(*d)
}

// FromInt converts a signed integer to a decimal.
// Every signed integer up to 64 bits is representable, so FromInt never fails.
func FromInt[T Signed](v T) Decimal {
	return newDecimal(decimal.MustNew(int64(v), 0))
}

// FromUint converts an unsigned integer to a decimal.
//
// FromUint returns an error if the integer has more than [decimal.MaxPrec]
// digits. Only uint64 and uint values greater than or equal to 10^19 can
// trigger it.
func FromUint[T Unsigned](v T) (Decimal, error) {
	u := uint64(v)
	if u <= math.MaxInt64 {
		return FromInt(int64(u)), nil
	}
	d, err := decimal.Parse(strconv.FormatUint(u, 10))
	if err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", u, err)
	}
	return newDecimal(d), nil
}

// MustFromUint is like [FromUint] but panics if the integer cannot be represented.
func MustFromUint[T Unsigned](v T) Decimal {
	d, err := FromUint(v)
	if err != nil {
		panic(fmt.Sprintf("FromUint(%v) failed: %v", v, err))
	}
	return d
}

// Of converts any [Operand] to a decimal.
// It is the single conversion step behind the mixed-type operations,
// such as [AddOf] and [MaxOf].
//
// Of returns an error only for unsigned integers that [FromUint] rejects.
func Of[T Operand](v T) (Decimal, error) {
	switch v := any(v).(type) {
	case Decimal:
		return v, nil
	case decimal.Decimal:
		return FromDecimal(v), nil
	case *decimal.Decimal:
		return FromDecimalPtr(v), nil
	case int:
		return FromInt(v), nil
	case int8:
		return FromInt(v), nil
	case int16:
		return FromInt(v), nil
	case int32:
		return FromInt(v), nil
	case int64:
		return FromInt(v), nil
	case uint:
		return FromUint(v)
	case uint8:
		return FromUint(v)
	case uint16:
		return FromUint(v)
	case uint32:
		return FromUint(v)
	case uint64:
		return FromUint(v)
	}
	// unreachable, the type set of Operand is closed
	return Decimal{}, fmt.Errorf("type %T is not supported", v)
}

// MustOf is like [Of] but panics if the value cannot be converted.
func MustOf[T Operand](v T) Decimal {
	d, err := Of(v)
	if err != nil {
		panic(fmt.Sprintf("Of(%v) failed: %v", v, err))
	}
	return d
}

// New returns a decimal equal to value / 10^scale.
//
// New returns an error if the scale is negative or greater than [decimal.MaxScale].
func New(value int64, scale int) (Decimal, error) {
	d, err := decimal.New(value, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return newDecimal(d), nil
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(value int64, scale int) Decimal {
	d, err := New(value, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", value, scale, err))
	}
	return d
}

// NewFromFloat64 converts a float to a (possibly rounded) decimal.
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func NewFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("converting float: special value %v", f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	d, err := decimal.Parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting float: %w", err)
	}
	return newDecimal(d), nil
}

// Parse converts a string to a normalized decimal.
// The accepted syntax is the one of [decimal.Parse], and its errors are
// returned unchanged.
func Parse(s string) (Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimal(d), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

// Decimal returns a copy of the underlying normalized decimal.
// See also constructor [FromDecimal].
func (d Decimal) Decimal() decimal.Decimal {
	return d.value
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.value.Sign()
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Decimal) IsNeg() bool {
	return d.value.IsNeg()
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Decimal) IsPos() bool {
	return d.value.IsPos()
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

// IsOne returns:
//
//	true  if d = -1 or d = 1
//	false otherwise
func (d Decimal) IsOne() bool {
	return d.value.IsOne()
}

// IsInt returns true if there are no significant digits after the decimal point.
// For a normalized decimal this is the same as Scale() == 0.
func (d Decimal) IsInt() bool {
	return d.value.IsInt()
}

// WithinOne returns:
//
//	true  if -1 < d < 1
//	false otherwise
func (d Decimal) WithinOne() bool {
	return d.value.WithinOne()
}

// Scale returns the number of digits after the decimal point.
// Since d is normalized, it is always equal to [Decimal.MinScale].
func (d Decimal) Scale() int {
	return d.value.Scale()
}

// MinScale returns the smallest scale that d can be rescaled to without rounding.
func (d Decimal) MinScale() int {
	return d.value.MinScale()
}

// Prec returns the number of digits in the coefficient.
func (d Decimal) Prec() int {
	return d.value.Prec()
}

// Coef returns the coefficient of the decimal.
// See also method [Decimal.Prec].
func (d Decimal) Coef() uint64 {
	return d.value.Coef()
}

// Float64 returns the nearest binary floating-point number rounded
// using [rounding half to even] (banker's rounding).
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (d Decimal) Float64() (f float64, ok bool) {
	return d.value.Float64()
}

// Int64 returns a pair of integers representing the whole and (possibly
// rounded) fractional parts of the decimal, such that d = whole + frac / 10^scale.
//
// Int64 returns false if the result cannot be represented as a pair of int64 values.
func (d Decimal) Int64(scale int) (whole, frac int64, ok bool) {
	return d.value.Int64(scale)
}

// String implements the [fmt.Stringer] interface and returns the same string
// as the underlying [decimal.Decimal].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.value.String()
}

// Format implements the [fmt.Formatter] interface.
// The verbs and flags are those of [decimal.Decimal.Format].
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	d.value.Format(state, verb)
}
