package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDirectory(t *testing.T) {
	got, err := ParseDirectory([]byte("0000019000000010440019CATD1200063"), testLeader())
	if err != nil {
		t.Fatalf("ParseDirectory() error = %v", err)
	}

	want := []DirectoryEntry{
		{Tag: "0000", Length: 19, Offset: 0},
		{Tag: "0001", Length: 44, Offset: 19},
		{Tag: "CATD", Length: 120, Offset: 63},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDirectory() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDirectoryEmpty(t *testing.T) {
	got, err := ParseDirectory(nil, testLeader())
	if err != nil {
		t.Fatalf("ParseDirectory() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ParseDirectory() = %v, want no entries", got)
	}
}

func TestParseDirectoryErrors(t *testing.T) {
	tests := []struct {
		name string
		dir  string
	}{
		{"one byte short", "0000019000000010440019CATD120006"},
		{"one byte long", "0000019000000010440019CATD12000630"},
		{"shorter than one entry", "000001"},
		{"length not a number", "00000x90000"},
		{"offset not a number", "000001900x0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDirectory([]byte(tt.dir), testLeader())
			if !errors.Is(err, BadDirectoryData) {
				t.Errorf("ParseDirectory() error = %v, want BadDirectoryData", err)
			}
		})
	}
}

func TestParseDirectoryUsesEntryMap(t *testing.T) {
	l := testLeader()
	l.FieldTagSize = 2
	l.FieldLengthSize = 1
	l.FieldPositionSize = 2

	got, err := ParseDirectory([]byte("AB900CD512"), l)
	if err != nil {
		t.Fatalf("ParseDirectory() error = %v", err)
	}
	want := []DirectoryEntry{
		{Tag: "AB", Length: 9, Offset: 0},
		{Tag: "CD", Length: 5, Offset: 12},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDirectory() mismatch (-want +got):\n%s", diff)
	}
}
