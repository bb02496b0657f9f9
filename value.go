package framefx

import "strconv"

// ValueType identifies the variant held by a Value.
type ValueType uint8

// Value variants.
const (
	TypeNumber ValueType = iota
	TypeBool
	TypeString
)

// String returns the variant name.
func (t ValueType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a parameter value: a number, a boolean or a string.
// Only numbers interpolate between keyframes.
//
// The zero Value is Number(0).
type Value struct {
	typ ValueType
	num float64
	b   bool
	str string
}

// Number returns a numeric Value.
func Number(v float64) Value { return Value{typ: TypeNumber, num: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{typ: TypeBool, b: v} }

// String returns a string Value.
func String(v string) Value { return Value{typ: TypeString, str: v} }

// Type returns the variant held by v.
func (v Value) Type() ValueType { return v.typ }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.typ == TypeNumber }

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) { return v.num, v.typ == TypeNumber }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.typ == TypeBool }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.str, v.typ == TypeString }

// String formats v for logs and error messages.
func (v Value) String() string {
	switch v.typ {
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeString:
		return strconv.Quote(v.str)
	default:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
}
