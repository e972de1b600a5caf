// Package testutil builds ISO 8211 records in memory for tests.
package testutil

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	fieldTerminator = 0x1e
	unitTerminator  = 0x1f
)

// Field is one directory entry and its body, without the field terminator.
type Field struct {
	Tag  string
	Body []byte
}

// Record frames fields into a complete record with the given leader identifier
// ('L' for a DDR, 'D' for a DR). The entry map is flf=3, fpf=4, ftf=4.
func Record(leaderID byte, fields ...Field) []byte {
	var dir, area bytes.Buffer
	for _, f := range fields {
		fmt.Fprintf(&dir, "%-4s%03d%04d", f.Tag, len(f.Body)+1, area.Len())
		area.Write(f.Body)
		area.WriteByte(fieldTerminator)
	}
	dir.WriteByte(fieldTerminator)

	base := 24 + dir.Len()
	length := base + area.Len()

	var rec bytes.Buffer
	fmt.Fprintf(&rec, "%05d3%cE1 09%05d ! 3404", length, leaderID, base)
	rec.Write(dir.Bytes())
	rec.Write(area.Bytes())
	return rec.Bytes()
}

// DDF builds a data descriptive field body.
func DDF(controls, name, descriptor, format string) []byte {
	return []byte(controls + name + "\x1f" + descriptor + "\x1f" + format)
}

// Subfields joins variable-width subfield texts, terminating each with a unit
// separator.
func Subfields(values ...string) []byte {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(v)
		b.WriteByte(unitTerminator)
	}
	return []byte(b.String())
}

// CatalogDDR returns the DDR of an S-57 CATALOG.031 exchange set catalog, with
// the record identifier field 0001 and the catalogue directory field CATD.
func CatalogDDR() []byte {
	return Record('L',
		Field{Tag: "0000", Body: []byte("0000;&   \x1f0001CATD")},
		Field{Tag: "0001", Body: DDF("0100;&   ", "ISO 8211 Record Identifier", "", "(I(5))")},
		Field{Tag: "CATD", Body: DDF("1600;&   ", "Catalogue Directory Field",
			"RCNM!RCID!FILE!LFIL!VOLM!IMPL!SLAT!WLON!NLAT!ELON!CRCS!COMT",
			"(A(2),I(10),3A,A(3),4R,2A)")},
	)
}

// CatalogEntry is the text of one CATD field.
type CatalogEntry struct {
	RecordID               int
	File, LongFile, Volume string
	Impl                   string // three characters
	SLAT, WLON, NLAT, ELON string
	CRC, Comment           string
}

// CatalogDR returns a Data Record holding one CATD field.
func CatalogDR(e CatalogEntry) []byte {
	var catd bytes.Buffer
	fmt.Fprintf(&catd, "CD%010d", e.RecordID)
	catd.Write(Subfields(e.File, e.LongFile, e.Volume))
	fmt.Fprintf(&catd, "%-3s", e.Impl)
	catd.Write(Subfields(e.SLAT, e.WLON, e.NLAT, e.ELON, e.CRC, e.Comment))

	return Record('D',
		Field{Tag: "0001", Body: []byte(fmt.Sprintf("%05d", e.RecordID))},
		Field{Tag: "CATD", Body: catd.Bytes()},
	)
}

// CatalogFile returns a complete CATALOG.031 with one record per entry.
func CatalogFile(entries ...CatalogEntry) []byte {
	file := CatalogDDR()
	for _, e := range entries {
		file = append(file, CatalogDR(e)...)
	}
	return file
}
