package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFieldControls(t *testing.T) {
	got, err := ParseFieldControls([]byte("1600;&-A "))
	if err != nil {
		t.Fatalf("ParseFieldControls() error = %v", err)
	}

	want := FieldControls{
		DataStructure:     LinearStructure,
		DataType:          MixedDataTypes,
		AuxiliaryControls: "00",
		PrintableGraphics: ";&",
		EscapeSequence:    LexicalLevel1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseFieldControls() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFieldControlsCodes(t *testing.T) {
	tests := []struct {
		controls string
		dsc      DataStructureCode
		dtc      DataTypeCode
		tes      TruncatedEscapeSequence
	}{
		{"0000;&   ", SingleDataItem, CharacterString, LexicalLevel0},
		{"0100;&   ", SingleDataItem, ImplicitPoint, LexicalLevel0},
		{"1200;&-A ", LinearStructure, ExplicitPoint, LexicalLevel1},
		{"2500;&%/A", MultiDimensional, BinaryForm, LexicalLevel2},
	}

	for _, tt := range tests {
		t.Run(tt.controls, func(t *testing.T) {
			got, err := ParseFieldControls([]byte(tt.controls))
			if err != nil {
				t.Fatalf("ParseFieldControls() error = %v", err)
			}
			if got.DataStructure != tt.dsc || got.DataType != tt.dtc || got.EscapeSequence != tt.tes {
				t.Errorf("ParseFieldControls() = %v/%v/%v, want %v/%v/%v",
					got.DataStructure, got.DataType, got.EscapeSequence, tt.dsc, tt.dtc, tt.tes)
			}
		})
	}
}

func TestParseFieldControlsErrors(t *testing.T) {
	tests := []struct {
		name     string
		controls string
		kind     ErrorKind
		literal  string
	}{
		{"bad data structure code", "3600;&-A ", BadDataStructureCode, "3"},
		{"bad data type code", "1300;&-A ", BadDataTypeCode, "3"},
		{"bad escape sequence", "1600;&-B ", BadTruncEscSeq, "-B "},
		{"too short", "1600;&-A", BadFieldControl, "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFieldControls([]byte(tt.controls))
			if !errors.Is(err, BadFieldControl) {
				t.Fatalf("ParseFieldControls() error = %v, want BadFieldControl", err)
			}
			var perr *Error
			for _, e := range Chain(err) {
				if pe, ok := e.(*Error); ok && pe.Kind == tt.kind {
					perr = pe
				}
			}
			if perr == nil {
				t.Fatalf("ParseFieldControls() error = %v, want kind %v in chain", err, tt.kind)
			}
			if perr.Value != tt.literal {
				t.Errorf("literal = %q, want %q", perr.Value, tt.literal)
			}
		})
	}
}

func TestCodeStrings(t *testing.T) {
	if got := LinearStructure.String(); got != "Linear Structure" {
		t.Errorf("LinearStructure.String() = %q", got)
	}
	if got := MixedDataTypes.String(); got != "Mixed Data Types" {
		t.Errorf("MixedDataTypes.String() = %q", got)
	}
	if got := LexicalLevel2.String(); got != "Lexical Level 2" {
		t.Errorf("LexicalLevel2.String() = %q", got)
	}
}
