package parser

import (
	"bytes"
	"strconv"
)

// ValueType is the conversion applied to a subfield's text.
type ValueType int

const (
	String ValueType = iota
	Integer
	Float
)

var typeLetters = map[byte]ValueType{
	'A': String,
	'I': Integer,
	'R': Float,
}

// Letter returns the format control letter for t.
func (t ValueType) Letter() byte {
	switch t {
	case Integer:
		return 'I'
	case Float:
		return 'R'
	default:
		return 'A'
	}
}

func (t ValueType) String() string {
	switch t {
	case String:
		return "String"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	default:
		return "Unknown"
	}
}

// SubfieldSpec describes how to read one subfield.
//
// A positive Width is a fixed-width subfield of that many bytes. A zero Width is
// a variable-width subfield terminated by the unit separator.
type SubfieldSpec struct {
	Type  ValueType
	Width int
}

// Fixed returns the spec of a fixed-width subfield.
func Fixed(t ValueType, width int) SubfieldSpec {
	return SubfieldSpec{Type: t, Width: width}
}

// Variable returns the spec of a unit-separator terminated subfield.
func Variable(t ValueType) SubfieldSpec {
	return SubfieldSpec{Type: t}
}

// IsFixed reports whether the subfield has a declared width.
func (s SubfieldSpec) IsFixed() bool {
	return s.Width > 0
}

// String renders the spec in format control notation, e.g. "I(10)" or "R".
func (s SubfieldSpec) String() string {
	if s.IsFixed() {
		return string(s.Type.Letter()) + "(" + strconv.Itoa(s.Width) + ")"
	}
	return string(s.Type.Letter())
}

// maxSubfields bounds the expansion of a format control string whose array
// descriptor is not known.
const maxSubfields = 1 << 16

// ParseFormatControls expands a format control string such as
// "(A(2),2I(10),2R)" into one SubfieldSpec per subfield, in order.
//
// Each comma-separated token is an optional repeat count, a type letter
// (A, I or R) and an optional parenthesized width. A string expanding to more
// than 65536 subfields is rejected.
//
// Reference: S-57 Part 3 §7.2.2.1 (31Main.pdf p3.33) and ISO/IEC 8211 §6.4
func ParseFormatControls(b []byte) ([]SubfieldSpec, error) {
	return parseFormatControls(b, maxSubfields)
}

// parseFormatControls expands b, failing on the token that takes the total
// past limit.
func parseFormatControls(b []byte, limit int) ([]SubfieldSpec, error) {
	if len(b) < 2 {
		return nil, newError(EmptyFormatControls, string(b))
	}

	inner, err := parseText(b[1 : len(b)-1])
	if err != nil {
		return nil, err
	}

	var specs []SubfieldSpec
	for _, token := range bytes.Split([]byte(inner), []byte{','}) {
		count, spec, err := parseFormatToken(token)
		if err != nil {
			return nil, err
		}
		if count > limit-len(specs) {
			return nil, newError(UnParsableFormatControl, string(token))
		}
		for i := 0; i < count; i++ {
			specs = append(specs, spec)
		}
	}
	return specs, nil
}

// parseFormatToken reads [count] letter [(width)] from a single token.
func parseFormatToken(token []byte) (int, SubfieldSpec, error) {
	fail := func() (int, SubfieldSpec, error) {
		return 0, SubfieldSpec{}, newError(UnParsableFormatControl, string(token))
	}

	pos := 0
	digits := func() []byte {
		start := pos
		for pos < len(token) && token[pos] >= '0' && token[pos] <= '9' {
			pos++
		}
		return token[start:pos]
	}

	count := 1
	if run := digits(); len(run) > 0 {
		n, err := strconv.Atoi(string(run))
		if err != nil {
			return fail()
		}
		count = n
	}

	if pos >= len(token) {
		return fail()
	}
	typ, ok := typeLetters[token[pos]]
	if !ok {
		return fail()
	}
	pos++

	spec := Variable(typ)
	if pos < len(token) && token[pos] == '(' {
		pos++
		run := digits()
		if pos >= len(token) || token[pos] != ')' {
			return fail()
		}
		pos++
		if len(run) > 0 {
			width, err := strconv.Atoi(string(run))
			if err != nil || width == 0 {
				return fail()
			}
			spec = Fixed(typ, width)
		}
	}

	if pos != len(token) {
		return fail()
	}
	return count, spec, nil
}
