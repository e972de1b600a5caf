package parser

import (
	"bytes"
	"strconv"
	"strings"
)

// Cursor reads a field body front to back.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// ReadExact returns the next n bytes.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if n > c.Remaining() {
		return nil, newError(EOF, strconv.Itoa(n))
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadUntil returns the bytes before the next delim and skips the delim. With
// no delim left it returns the rest of the data.
func (c *Cursor) ReadUntil(delim byte) []byte {
	rest := c.data[c.pos:]
	i := bytes.IndexByte(rest, delim)
	if i < 0 {
		c.pos = len(c.data)
		return rest
	}
	c.pos += i + 1
	return rest[:i]
}

// ReadSubfield reads one subfield described by spec from c and converts it.
//
// Fixed-width subfields consume exactly Width bytes. Variable-width subfields
// consume up to and including the next unit separator, which is not part of
// the value.
func ReadSubfield(c *Cursor, spec SubfieldSpec) (Value, error) {
	var raw []byte
	if spec.IsFixed() {
		b, err := c.ReadExact(spec.Width)
		if err != nil {
			return Value{}, err
		}
		raw = b
	} else {
		raw = c.ReadUntil(UnitSeparator)
	}

	text, err := parseText(raw)
	if err != nil {
		return Value{}, err
	}
	return convert(text, spec.Type)
}

// convert applies the subfield type to its text. Numeric text is trimmed of
// ASCII spaces first, so blank-padded fields such as "   " decode to null and
// " 12" decodes to 12 rather than failing to parse.
func convert(text string, typ ValueType) (Value, error) {
	switch typ {
	case Integer:
		s := strings.Trim(text, " ")
		if s == "" {
			return NullInteger(), nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, wrapValue(ParseIntError, text, err)
		}
		return IntegerValue(i), nil
	case Float:
		s := strings.Trim(text, " ")
		if s == "" {
			return NullFloat(), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, wrapValue(ParseFloatError, text, err)
		}
		return FloatValue(f), nil
	default:
		return StringValue(text), nil
	}
}
