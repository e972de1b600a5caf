package parser

import "strconv"

// FieldControlsSize is the width of the field controls prefix of a data
// descriptive field.
const FieldControlsSize = 9

// DataStructureCode describes how a field's subfields are arranged.
//
// Reference: S-57 Part 3 §7.2.2.1 (31Main.pdf p3.32, table 7.2)
type DataStructureCode int

const (
	SingleDataItem DataStructureCode = iota
	LinearStructure
	MultiDimensional
)

var dataStructureCodes = map[string]DataStructureCode{
	"0": SingleDataItem,
	"1": LinearStructure,
	"2": MultiDimensional,
}

// ParseDataStructureCode maps a one-character code to its DataStructureCode.
func ParseDataStructureCode(s string) (DataStructureCode, error) {
	if c, ok := dataStructureCodes[s]; ok {
		return c, nil
	}
	return 0, newError(BadDataStructureCode, s)
}

func (c DataStructureCode) String() string {
	switch c {
	case SingleDataItem:
		return "Single Data Item"
	case LinearStructure:
		return "Linear Structure"
	case MultiDimensional:
		return "Multi-Dimensional Structure"
	default:
		return "Unknown"
	}
}

// DataTypeCode describes the kind of data a field holds.
type DataTypeCode int

const (
	CharacterString DataTypeCode = iota
	ImplicitPoint
	ExplicitPoint
	BinaryForm
	MixedDataTypes
)

var dataTypeCodes = map[string]DataTypeCode{
	"0": CharacterString,
	"1": ImplicitPoint,
	"2": ExplicitPoint,
	"5": BinaryForm,
	"6": MixedDataTypes,
}

// ParseDataTypeCode maps a one-character code to its DataTypeCode.
func ParseDataTypeCode(s string) (DataTypeCode, error) {
	if c, ok := dataTypeCodes[s]; ok {
		return c, nil
	}
	return 0, newError(BadDataTypeCode, s)
}

func (c DataTypeCode) String() string {
	switch c {
	case CharacterString:
		return "Character String"
	case ImplicitPoint:
		return "Implicit Point"
	case ExplicitPoint:
		return "Explicit Point"
	case BinaryForm:
		return "Binary Form"
	case MixedDataTypes:
		return "Mixed Data Types"
	default:
		return "Unknown"
	}
}

// TruncatedEscapeSequence gives the lexical level of a field's character set.
//
// Reference: S-57 Part 3 §2.4 (31Main.pdf p3.9)
type TruncatedEscapeSequence int

const (
	LexicalLevel0 TruncatedEscapeSequence = iota // ASCII
	LexicalLevel1                                // ISO 8859-1
	LexicalLevel2                                // UCS-2
)

var truncatedEscapeSequences = map[string]TruncatedEscapeSequence{
	"   ": LexicalLevel0,
	"-A ": LexicalLevel1,
	"%/A": LexicalLevel2,
}

// ParseTruncatedEscapeSequence maps a three-character code to its lexical level.
func ParseTruncatedEscapeSequence(s string) (TruncatedEscapeSequence, error) {
	if t, ok := truncatedEscapeSequences[s]; ok {
		return t, nil
	}
	return 0, newError(BadTruncEscSeq, s)
}

func (t TruncatedEscapeSequence) String() string {
	switch t {
	case LexicalLevel0:
		return "Lexical Level 0"
	case LexicalLevel1:
		return "Lexical Level 1"
	case LexicalLevel2:
		return "Lexical Level 2"
	default:
		return "Unknown"
	}
}

// FieldControls is the 9-byte code block opening each data descriptive field.
type FieldControls struct {
	DataStructure     DataStructureCode
	DataType          DataTypeCode
	AuxiliaryControls string // bytes 2-3
	PrintableGraphics string // bytes 4-5
	EscapeSequence    TruncatedEscapeSequence
}

// ParseFieldControls decodes the field controls prefix of a DDF.
func ParseFieldControls(b []byte) (FieldControls, error) {
	if len(b) != FieldControlsSize {
		return FieldControls{}, newError(BadFieldControl, strconv.Itoa(len(b)))
	}

	text, err := parseText(b)
	if err != nil {
		return FieldControls{}, wrap(BadFieldControl, err)
	}
	// The code block is single-byte ASCII, so byte offsets are safe once the
	// length matches the rune count.
	if len([]rune(text)) != FieldControlsSize {
		return FieldControls{}, newError(BadFieldControl, text)
	}

	var fc FieldControls
	if fc.DataStructure, err = ParseDataStructureCode(text[0:1]); err != nil {
		return FieldControls{}, wrap(BadFieldControl, err)
	}
	if fc.DataType, err = ParseDataTypeCode(text[1:2]); err != nil {
		return FieldControls{}, wrap(BadFieldControl, err)
	}
	fc.AuxiliaryControls = text[2:4]
	fc.PrintableGraphics = text[4:6]
	if fc.EscapeSequence, err = ParseTruncatedEscapeSequence(text[6:9]); err != nil {
		return FieldControls{}, wrap(BadFieldControl, err)
	}

	return fc, nil
}
