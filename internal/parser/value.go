package parser

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is one decoded subfield.
//
// Numeric values decoded from empty text are null: Int and Float report false
// and IsNull reports true. A String value is never null.
type Value struct {
	typ   ValueType
	str   string
	i     int64
	f     float64
	valid bool
}

// StringValue returns a String value.
func StringValue(s string) Value {
	return Value{typ: String, str: s, valid: true}
}

// IntegerValue returns a non-null Integer value.
func IntegerValue(i int64) Value {
	return Value{typ: Integer, i: i, valid: true}
}

// FloatValue returns a non-null Float value.
func FloatValue(f float64) Value {
	return Value{typ: Float, f: f, valid: true}
}

// NullInteger returns the Integer value decoded from empty text.
func NullInteger() Value {
	return Value{typ: Integer}
}

// NullFloat returns the Float value decoded from empty text.
func NullFloat() Value {
	return Value{typ: Float}
}

// Type returns the value's type.
func (v Value) Type() ValueType { return v.typ }

// IsNull reports whether a numeric value was empty in the source.
func (v Value) IsNull() bool { return !v.valid }

// Int returns the integer and true for a non-null Integer value.
func (v Value) Int() (int64, bool) {
	if v.typ != Integer || !v.valid {
		return 0, false
	}
	return v.i, true
}

// Float returns the float and true for a non-null Float value.
func (v Value) Float() (float64, bool) {
	if v.typ != Float || !v.valid {
		return 0, false
	}
	return v.f, true
}

// String returns the text of a String value, or a numeric value formatted as
// text. Null values render as the empty string.
func (v Value) String() string {
	if !v.valid {
		return ""
	}
	switch v.typ {
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.str
	}
}

// Equal reports whether v and o have the same type, nullness and payload.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ || v.valid != o.valid {
		return false
	}
	return v.Interface() == o.Interface()
}

// Interface returns the value as string, int64, float64, or nil when null.
func (v Value) Interface() any {
	if !v.valid {
		return nil
	}
	switch v.typ {
	case Integer:
		return v.i
	case Float:
		return v.f
	default:
		return v.str
	}
}

// MarshalJSON encodes the value as a JSON scalar or null.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML encodes the value as a YAML scalar or null.
func (v Value) MarshalYAML() (any, error) {
	if !v.valid {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	return v.Interface(), nil
}
