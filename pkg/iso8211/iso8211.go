package iso8211

import (
	"io"

	"github.com/beetlebugorg/iso8211/internal/parser"
)

// Decoder types. They are defined in the internal parser and re-exported here
// unchanged.
type (
	Catalog         = parser.Catalog
	State           = parser.State
	Schema          = parser.Schema
	Record          = parser.Record
	Field           = parser.Field
	Subfield        = parser.Subfield
	Value           = parser.Value
	ValueType       = parser.ValueType
	Leader          = parser.Leader
	DirectoryEntry  = parser.DirectoryEntry
	FieldControls   = parser.FieldControls
	FieldDefinition = parser.FieldDefinition
	SubfieldSpec    = parser.SubfieldSpec
	Error           = parser.Error
	ErrorKind       = parser.ErrorKind
	RecordError     = parser.RecordError
)

// Catalog states.
const (
	Opening     = parser.Opening
	SchemaBuilt = parser.SchemaBuilt
	Reading     = parser.Reading
	Exhausted   = parser.Exhausted
	Failed      = parser.Failed
)

// Subfield value types.
const (
	String  = parser.String
	Integer = parser.Integer
	Float   = parser.Float
)

// Error kinds, usable as errors.Is targets.
const (
	BadDataStructureCode    = parser.BadDataStructureCode
	BadDataTypeCode         = parser.BadDataTypeCode
	BadTruncEscSeq          = parser.BadTruncEscSeq
	BadFieldControl         = parser.BadFieldControl
	BadDirectoryData        = parser.BadDirectoryData
	InvalidLeader           = parser.InvalidLeader
	InvalidDDR              = parser.InvalidDDR
	InvalidDR               = parser.InvalidDR
	InvalidDDF              = parser.InvalidDDF
	InvalidDDFS             = parser.InvalidDDFS
	InvalidHeader           = parser.InvalidHeader
	EmptyFormatControls     = parser.EmptyFormatControls
	UnParsableFormatControl = parser.UnParsableFormatControl
	ParseIntError           = parser.ParseIntError
	ParseFloatError         = parser.ParseFloatError
	UtfError                = parser.UtfError
	IOError                 = parser.IOError
	EOF                     = parser.EOF
	CouldNotParseCatalog    = parser.CouldNotParseCatalog
	CouldNotParseName       = parser.CouldNotParseName
)

// Open reads the DDR from r and returns a Catalog positioned at the first Data
// Record.
//
// Example:
//
//	cat, err := iso8211.Open(f, iso8211.WithLogger(slog.Default()))
//	if err != nil {
//	    return err
//	}
//	for rec, err := range cat.Records() {
//	    ...
//	}
func Open(r io.Reader, opts ...Option) (*Catalog, error) {
	o := DefaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return parser.Open(r, o.internal())
}

// ParseDDR compiles a single Data Descriptive Record.
func ParseDDR(record []byte) (*Schema, error) {
	return parser.ParseDDR(record)
}

// SplitRecords slices an in-memory file into whole records by the record
// length in each leader. The first record is the DDR. On a framing failure the
// records framed before it are returned with the error.
func SplitRecords(data []byte) ([][]byte, error) {
	return parser.SplitRecords(data)
}

// Chain flattens err and its causes, outermost first.
func Chain(err error) []error {
	return parser.Chain(err)
}
