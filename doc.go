/*
Package normdecimal implements decimal numbers that are always stored in
their canonical form.
It leverages the [decimal] package's capabilities for handling decimal floating-point
numbers and adds a normalization step after every operation, so that
"1.50", "1.5" and "1.500" all become the same value "1.5".

# Features

  - Immutable normalized values, ensuring safe usage across multiple goroutines
  - Numerically equal decimals are equal according to the == operator
    and can be used as map keys
  - Arithmetic and comparison operations, including mixed operands such as
    integers and [decimal.Decimal] values
  - Summation and product over a list of decimals
  - Serialization that is indistinguishable from the one of [decimal.Decimal]:
    JSON, text, binary, BSON, and SQL

# Representation

Decimal is a struct with a single [decimal.Decimal] field.
After construction, after every arithmetic operation, and after decoding,
trailing zeros after the decimal point are removed, so the scale of
a decimal is always the smallest scale that represents its value exactly.
The underlying value can be retrieved with [Decimal.Decimal].

# Supported Ranges

The range of decimals is that of the [decimal] package: the coefficient has
at most [decimal.MaxPrec] digits and the scale is at most [decimal.MaxScale].
All signed integers and unsigned integers up to 10^19 - 1 are representable.

# Operations

Each arithmetic method, such as [Decimal.Add] or [Decimal.Quo], has a
generic counterpart, such as [AddOf] or [QuoOf], that converts its second
argument with [Of] first.
Compound assignments, such as [Decimal.AddAssign], replace the value of a
variable in place.
[Decimal.SetSignNegative] and [Decimal.SetSignPositive] change only the sign.
Zero has no sign, so they keep zero as it is.

# Errors

Errors may occur during parsing and decoding, and during arithmetic
operations when certain conditions are not met
(e.g., division by zero, coefficient overflow).
Parsing and decoding errors of the [decimal] package are returned unchanged,
arithmetic errors are wrapped with %w together with the operands.
*/
package normdecimal
