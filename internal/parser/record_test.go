package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/beetlebugorg/iso8211/internal/testutil"
)

func mustParseDDR(t *testing.T) *Schema {
	t.Helper()
	schema, err := ParseDDR(testutil.CatalogDDR())
	if err != nil {
		t.Fatalf("ParseDDR() error = %v", err)
	}
	return schema
}

func TestParseDDR(t *testing.T) {
	schema := mustParseDDR(t)

	if schema.Leader.LeaderID != 'L' {
		t.Errorf("LeaderID = %c, want L", schema.Leader.LeaderID)
	}
	if len(schema.Directory) != 3 {
		t.Fatalf("len(Directory) = %d, want 3", len(schema.Directory))
	}
	if schema.Len() != len(schema.Directory)-1 {
		t.Errorf("Len() = %d, want %d", schema.Len(), len(schema.Directory)-1)
	}
	if diff := cmp.Diff([]string{"0001", "CATD"}, schema.Tags()); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := schema.Field("0000"); ok {
		t.Error("file control field 0000 is in the schema")
	}

	catd, ok := schema.Field("CATD")
	if !ok {
		t.Fatal("CATD missing from schema")
	}
	if catd.Name != "Catalogue Directory Field" {
		t.Errorf("CATD name = %q", catd.Name)
	}
	want := []SubfieldSpec{
		Fixed(String, 2), Fixed(Integer, 10),
		Variable(String), Variable(String), Variable(String),
		Fixed(String, 3),
		Variable(Float), Variable(Float), Variable(Float), Variable(Float),
		Variable(String), Variable(String),
	}
	if diff := cmp.Diff(want, catd.Specs()); diff != "" {
		t.Errorf("CATD specs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDDRErrors(t *testing.T) {
	tests := []struct {
		name   string
		record []byte
		kind   ErrorKind
	}{
		{
			name:   "no directory terminator",
			record: []byte("002413LE1 0900058 ! 34040000019000000010440019"),
			kind:   BadDirectoryData,
		},
		{
			name:   "misaligned directory",
			record: []byte("002413LE1 0900058 ! 34040000019000\x1e"),
			kind:   BadDirectoryData,
		},
		{
			name: "bad ddf",
			record: testutil.Record('L',
				testutil.Field{Tag: "0000", Body: []byte("0000;&   ")},
				testutil.Field{Tag: "CATD", Body: testutil.DDF("1600;&   ", "Catalogue", "RCNM!RCID", "(A(2))")},
			),
			kind: InvalidDDFS,
		},
		{
			name: "duplicate tag",
			record: testutil.Record('L',
				testutil.Field{Tag: "0000", Body: []byte("0000;&   ")},
				testutil.Field{Tag: "0001", Body: testutil.DDF("0100;&   ", "Id", "", "(I(5))")},
				testutil.Field{Tag: "0001", Body: testutil.DDF("0100;&   ", "Id", "", "(I(5))")},
			),
			kind: InvalidDDFS,
		},
		{
			name:   "short leader",
			record: []byte("00010LE1 "),
			kind:   InvalidLeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDDR(tt.record)
			if !errors.Is(err, InvalidDDR) {
				t.Fatalf("ParseDDR() error = %v, want InvalidDDR", err)
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("ParseDDR() error = %v, want %v", err, tt.kind)
			}
		})
	}
}

func TestDecodeRecord(t *testing.T) {
	schema := mustParseDDR(t)
	raw := testutil.CatalogDR(testutil.CatalogEntry{
		RecordID: 2,
		File:     "US5MA22M/US5MA22M.000",
		Volume:   "V01X01",
		Impl:     "BIN",
		SLAT:     "42.2",
		WLON:     "-71.1",
		NLAT:     "42.4",
		ELON:     "-70.9",
		CRC:      "1A2B3C4D",
	})

	rec, err := schema.DecodeRecord(raw)
	if err != nil {
		t.Fatalf("DecodeRecord() error = %v", err)
	}
	if diff := cmp.Diff([]string{"0001", "CATD"}, rec.Tags()); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}

	id, _ := rec.Field("0001")
	if v, _ := id.Value("DRID"); !v.Equal(IntegerValue(2)) {
		t.Errorf("DRID = %v, want 2", v)
	}

	catd, ok := rec.Field("CATD")
	if !ok {
		t.Fatal("CATD missing from record")
	}
	want := []Subfield{
		{"RCNM", StringValue("CD")},
		{"RCID", IntegerValue(2)},
		{"FILE", StringValue("US5MA22M/US5MA22M.000")},
		{"LFIL", StringValue("")},
		{"VOLM", StringValue("V01X01")},
		{"IMPL", StringValue("BIN")},
		{"SLAT", FloatValue(42.2)},
		{"WLON", FloatValue(-71.1)},
		{"NLAT", FloatValue(42.4)},
		{"ELON", FloatValue(-70.9)},
		{"CRCS", StringValue("1A2B3C4D")},
		{"COMT", StringValue("")},
	}
	if diff := cmp.Diff(want, catd.Subfields); diff != "" {
		t.Errorf("CATD mismatch (-want +got):\n%s", diff)
	}
	if catd.Values()["VOLM"].String() != "V01X01" {
		t.Errorf("Values()[VOLM] = %v", catd.Values()["VOLM"])
	}
}

func TestDecodeRecordNullBounds(t *testing.T) {
	schema := mustParseDDR(t)
	rec, err := schema.DecodeRecord(testutil.CatalogDR(testutil.CatalogEntry{
		RecordID: 1,
		File:     "CATALOG.031",
		Impl:     "ASC",
	}))
	if err != nil {
		t.Fatalf("DecodeRecord() error = %v", err)
	}
	catd, _ := rec.Field("CATD")
	for _, name := range []string{"SLAT", "WLON", "NLAT", "ELON"} {
		v, ok := catd.Value(name)
		if !ok || !v.IsNull() {
			t.Errorf("%s = %v, want null", name, v)
		}
	}
}

func TestDecodeRecordErrors(t *testing.T) {
	schema := mustParseDDR(t)

	tests := []struct {
		name   string
		record []byte
		kind   ErrorKind
	}{
		{
			name: "unknown tag",
			record: testutil.Record('D',
				testutil.Field{Tag: "0001", Body: []byte("00001")},
				testutil.Field{Tag: "DSID", Body: []byte("x")},
			),
			kind: InvalidDR,
		},
		{
			name: "bad integer",
			record: testutil.Record('D',
				testutil.Field{Tag: "0001", Body: []byte("0000x")},
			),
			kind: ParseIntError,
		},
		{
			name: "trailing bytes",
			record: testutil.Record('D',
				testutil.Field{Tag: "0001", Body: []byte("000011")},
			),
			kind: InvalidDR,
		},
		{
			name: "truncated fixed subfield",
			record: testutil.Record('D',
				testutil.Field{Tag: "0001", Body: []byte("001")},
			),
			kind: EOF,
		},
		{
			name:   "bad directory",
			record: []byte("000343D     00027   3404000100\x1e00001\x1e"),
			kind:   BadDirectoryData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.DecodeRecord(tt.record)
			if !errors.Is(err, InvalidDR) {
				t.Fatalf("DecodeRecord() error = %v, want InvalidDR", err)
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("DecodeRecord() error = %v, want %v", err, tt.kind)
			}
		})
	}
}
