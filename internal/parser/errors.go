package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies where in the ISO 8211 framing a decode failure occurred.
//
// ErrorKind values are themselves errors so callers can match a kind anywhere
// in a cause chain:
//
//	if errors.Is(err, parser.InvalidLeader) {
//	    // the record preamble was malformed
//	}
type ErrorKind int

const (
	BadDataStructureCode ErrorKind = iota + 1
	BadDataTypeCode
	BadTruncEscSeq
	BadFieldControl
	BadDirectoryData
	InvalidLeader
	InvalidDDR
	InvalidDR
	InvalidDDF
	InvalidDDFS
	InvalidHeader
	EmptyFormatControls
	UnParsableFormatControl
	ParseIntError
	ParseFloatError
	UtfError
	IOError
	EOF
	CouldNotParseCatalog
	CouldNotParseName
)

var kindNames = map[ErrorKind]string{
	BadDataStructureCode:    "bad data structure code",
	BadDataTypeCode:         "bad data type code",
	BadTruncEscSeq:          "bad truncated escape sequence",
	BadFieldControl:         "bad field control",
	BadDirectoryData:        "bad directory data",
	InvalidLeader:           "invalid leader",
	InvalidDDR:              "invalid data descriptive record",
	InvalidDR:               "invalid data record",
	InvalidDDF:              "invalid data descriptive field",
	InvalidDDFS:             "invalid data descriptive fields",
	InvalidHeader:           "invalid field header",
	EmptyFormatControls:     "empty format controls",
	UnParsableFormatControl: "unparsable format control",
	ParseIntError:           "invalid integer",
	ParseFloatError:         "invalid float",
	UtfError:                "invalid utf-8",
	IOError:                 "i/o error",
	EOF:                     "unexpected end of data",
	CouldNotParseCatalog:    "could not parse catalog",
	CouldNotParseName:       "could not parse field name",
}

// Error implements the error interface.
func (k ErrorKind) Error() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// Error is a decode failure of a given kind.
//
// Value holds the offending literal (a code, a format token, a numeric text) or
// the name of the field being decoded. Err is the underlying cause, if any.
type Error struct {
	Kind  ErrorKind
	Value string
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Value != "" {
		fmt.Fprintf(&b, " %q", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func newError(kind ErrorKind, value string) error {
	return &Error{Kind: kind, Value: value}
}

func wrap(kind ErrorKind, err error) error {
	return &Error{Kind: kind, Err: err}
}

func wrapValue(kind ErrorKind, value string, err error) error {
	return &Error{Kind: kind, Value: value, Err: err}
}

// RecordError reports a Data Record that could not be decoded.
//
// Index is the zero-based position of the failing record after the DDR. Last is
// the last record that decoded successfully, nil if the failure was on the first.
type RecordError struct {
	Index int
	Last  *Record
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("data record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Chain flattens err and its causes, outermost first.
func Chain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		err = errors.Unwrap(err)
	}
	return chain
}
