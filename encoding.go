package normdecimal

import (
	"database/sql/driver"
	"fmt"

	"github.com/govalues/decimal"
)

// Every hook below writes exactly what the underlying [decimal.Decimal]
// writes, and every decoded value is normalized before it is stored.

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The JSON null leaves the decimal unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v decimal.Decimal
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*d = newDecimal(v)
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	return d.value.MarshalJSON()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalText(text); err != nil {
		return err
	}
	*d = newDecimal(v)
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (d Decimal) AppendText(text []byte) ([]byte, error) {
	b, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return append(text, b...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return d.value.MarshalText()
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal) UnmarshalBinary(data []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalBinary(data); err != nil {
		return err
	}
	*d = newDecimal(v)
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (d Decimal) AppendBinary(data []byte) ([]byte, error) {
	b, err := d.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(data, b...), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal) MarshalBinary() ([]byte, error) {
	return d.value.MarshalBinary()
}

// Marshal implements the gogoproto custom type interface.
// It uses the same layout as [Decimal.MarshalBinary].
func (d Decimal) Marshal() ([]byte, error) {
	return d.MarshalBinary()
}

// MarshalTo implements the gogoproto custom type interface.
// The data must have room for at least [Decimal.Size] bytes.
func (d *Decimal) MarshalTo(data []byte) (n int, err error) {
	b, err := d.Marshal()
	if err != nil {
		return 0, err
	}
	if len(data) < len(b) {
		return 0, fmt.Errorf("marshaling %v: buffer of %v bytes is too short, need %v", d, len(data), len(b))
	}
	return copy(data, b), nil
}

// Unmarshal implements the gogoproto custom type interface.
// Empty data is decoded as [Zero].
func (d *Decimal) Unmarshal(data []byte) error {
	if len(data) == 0 {
		*d = Zero
		return nil
	}
	return d.UnmarshalBinary(data)
}

// Size returns the size of the marshaled decimal in bytes.
func (d Decimal) Size() int {
	b, _ := d.Marshal()
	return len(b)
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// The BSON null leaves the decimal unchanged.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (d *Decimal) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	if typ == 10 {
		return nil
	}
	var v decimal.Decimal
	if err := v.UnmarshalBSONValue(typ, data); err != nil {
		return err
	}
	*d = newDecimal(v)
	return nil
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (d Decimal) MarshalBSONValue() (typ byte, data []byte, err error) {
	return d.value.MarshalBSONValue()
}

// Scan implements the [sql.Scanner] interface.
// Besides the types supported by [decimal.Decimal.Scan], it accepts
// the int64 and float64 values that some drivers return for numeric columns.
// If an error is returned, d is left unchanged.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var f Decimal
	var err error
	switch value := value.(type) {
	case string:
		f, err = Parse(value)
	case []byte:
		f, err = Parse(string(value))
	case int64:
		f = FromInt(value)
	case float64:
		f, err = NewFromFloat64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Decimal{}, NullDecimal{}, Decimal{})
	default:
		var v decimal.Decimal
		if err = v.Scan(value); err == nil {
			f = newDecimal(v)
		}
	}
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, Decimal{}, err)
	}
	*d = f
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.value.Value()
}

// GormDataType returns the generic column type used by [GORM] when migrating
// a schema. Each dialect maps it to its native decimal column type.
//
// [GORM]: https://gorm.io/docs/data_types.html
func (d Decimal) GormDataType() string {
	return "decimal"
}
