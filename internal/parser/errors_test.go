package parser

import (
	"errors"
	"io"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{newError(BadDataTypeCode, "3"), `bad data type code "3"`},
		{wrap(InvalidLeader, newError(EOF, "9")), `invalid leader: unexpected end of data "9"`},
		{wrapValue(InvalidDR, "CATD", io.ErrUnexpectedEOF), `invalid data record "CATD": unexpected EOF`},
		{ErrorKind(99), "error kind 99"},
		{&RecordError{Index: 4, Err: newError(InvalidDR, "DSID")}, `data record 4: invalid data record "DSID"`},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := &RecordError{Err: wrap(InvalidDR, wrapValue(ParseIntError, "x", errors.New("boom")))}

	for _, kind := range []ErrorKind{InvalidDR, ParseIntError} {
		if !errors.Is(err, kind) {
			t.Errorf("errors.Is(%v) = false", kind)
		}
	}
	if errors.Is(err, InvalidDDR) {
		t.Error("errors.Is(InvalidDDR) = true")
	}
}

func TestChain(t *testing.T) {
	root := io.ErrUnexpectedEOF
	err := wrap(CouldNotParseCatalog, wrap(InvalidDDR, root))

	chain := Chain(err)
	if len(chain) != 3 {
		t.Fatalf("len(Chain()) = %d, want 3", len(chain))
	}
	if chain[2] != root {
		t.Errorf("Chain()[2] = %v, want root cause", chain[2])
	}
	if pe, ok := chain[1].(*Error); !ok || pe.Kind != InvalidDDR {
		t.Errorf("Chain()[1] = %v, want InvalidDDR", chain[1])
	}
	if Chain(nil) != nil {
		t.Error("Chain(nil) is not nil")
	}
}
