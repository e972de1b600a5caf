package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFormatControls(t *testing.T) {
	got, err := ParseFormatControls([]byte("(A(2),2I(10),2R)"))
	if err != nil {
		t.Fatalf("ParseFormatControls() error = %v", err)
	}

	want := []SubfieldSpec{
		Fixed(String, 2),
		Fixed(Integer, 10),
		Fixed(Integer, 10),
		Variable(Float),
		Variable(Float),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseFormatControls() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormatToken(t *testing.T) {
	tests := []struct {
		token string
		count int
		spec  SubfieldSpec
	}{
		{"A(3)", 1, Fixed(String, 3)},
		{"I(10)", 1, Fixed(Integer, 10)},
		{"R(5)", 1, Fixed(Float, 5)},
		{"5R", 5, Variable(Float)},
		{"10I", 10, Variable(Integer)},
		{"1A", 1, Variable(String)},
		{"2A(3)", 2, Fixed(String, 3)},
		{"10I(10)", 10, Fixed(Integer, 10)},
		{"1R(5)", 1, Fixed(Float, 5)},
		{"A()", 1, Variable(String)},
		{"A", 1, Variable(String)},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			count, spec, err := parseFormatToken([]byte(tt.token))
			if err != nil {
				t.Fatalf("parseFormatToken() error = %v", err)
			}
			if count != tt.count || spec != tt.spec {
				t.Errorf("parseFormatToken() = %d %v, want %d %v", count, spec, tt.count, tt.spec)
			}
		})
	}
}

func TestParseFormatControlsEmpty(t *testing.T) {
	for _, in := range []string{"", "("} {
		_, err := ParseFormatControls([]byte(in))
		if !errors.Is(err, EmptyFormatControls) {
			t.Errorf("ParseFormatControls(%q) error = %v, want EmptyFormatControls", in, err)
		}
	}
}

func TestParseFormatControlsUnparsable(t *testing.T) {
	tests := []struct {
		controls string
		token    string
	}{
		{"(A(2),b12)", "b12"},
		{"(A(2),B(40))", "B(40)"},
		{"(X)", "X"},
		{"(2)", "2"},
		{"(A(2)", "A(2"},
		{"(I(5)x)", "I(5)x"},
		{"(I(0))", "I(0)"},
		{"(A,3(I,R))", "3(I"},
		{"()", ""},
	}

	for _, tt := range tests {
		t.Run(tt.controls, func(t *testing.T) {
			_, err := ParseFormatControls([]byte(tt.controls))
			var perr *Error
			if !errors.As(err, &perr) || perr.Kind != UnParsableFormatControl {
				t.Fatalf("ParseFormatControls() error = %v, want UnParsableFormatControl", err)
			}
			if perr.Value != tt.token {
				t.Errorf("token = %q, want %q", perr.Value, tt.token)
			}
		})
	}
}

func TestParseFormatControlsRepeatLimit(t *testing.T) {
	got, err := ParseFormatControls([]byte("(65536A)"))
	if err != nil {
		t.Fatalf("ParseFormatControls() error = %v", err)
	}
	if len(got) != maxSubfields {
		t.Errorf("len(ParseFormatControls()) = %d, want %d", len(got), maxSubfields)
	}

	tests := []struct {
		controls string
		limit    int
		token    string
	}{
		{"(400000000A)", maxSubfields, "400000000A"},
		{"(65536A,I)", maxSubfields, "I"},
		{"(2A,I)", 2, "I"},
		{"(3R(4))", 2, "3R(4)"},
	}

	for _, tt := range tests {
		t.Run(tt.controls, func(t *testing.T) {
			_, err := parseFormatControls([]byte(tt.controls), tt.limit)
			var perr *Error
			if !errors.As(err, &perr) || perr.Kind != UnParsableFormatControl {
				t.Fatalf("parseFormatControls() error = %v, want UnParsableFormatControl", err)
			}
			if perr.Value != tt.token {
				t.Errorf("token = %q, want %q", perr.Value, tt.token)
			}
		})
	}
}

func TestSubfieldSpecString(t *testing.T) {
	if got := Fixed(Integer, 10).String(); got != "I(10)" {
		t.Errorf("String() = %q, want I(10)", got)
	}
	if got := Variable(Float).String(); got != "R" {
		t.Errorf("String() = %q, want R", got)
	}
}
