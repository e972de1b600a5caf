// Package exchangeset reads the catalogue file (CATALOG.031) of an S-57
// exchange set and indexes the coverage of the files it lists.
package exchangeset

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/beetlebugorg/iso8211/pkg/iso8211"
)

// CatalogTag is the catalogue directory field of CATALOG.031.
const CatalogTag = "CATD"

// Entry is one catalogue directory record.
//
// Reference: S-57 Part 3 §7.4.1 (31Main.pdf p3.36, catalogue directory field)
type Entry struct {
	RecordID       int64  `json:"record_id" yaml:"record_id"`                     // RCID
	File           string `json:"file" yaml:"file"`                               // FILE, path relative to the exchange set root
	LongFile       string `json:"long_file,omitempty" yaml:"long_file,omitempty"` // LFIL
	Volume         string `json:"volume,omitempty" yaml:"volume,omitempty"`       // VOLM
	Implementation string `json:"implementation" yaml:"implementation"`           // IMPL: "ASC", "BIN" or "TXT"
	Bounds         Bounds `json:"bounds" yaml:"bounds"`                           // SLAT, WLON, NLAT, ELON
	HasBounds      bool   `json:"has_bounds" yaml:"has_bounds"`                   // false when any corner is null
	CRC            string `json:"crc,omitempty" yaml:"crc,omitempty"`             // CRCS
	Comment        string `json:"comment,omitempty" yaml:"comment,omitempty"`     // COMT
}

// IsBaseCell reports whether the entry names an ENC base cell (.000).
func (e Entry) IsBaseCell() bool {
	return e.Implementation == "BIN" && strings.HasSuffix(e.File, ".000")
}

// Catalog is a decoded exchange set catalogue.
type Catalog struct {
	Entries []Entry
}

// Load decodes a CATALOG.031 from r.
func Load(r io.Reader, opts ...iso8211.Option) (*Catalog, error) {
	cat, err := iso8211.Open(r, opts...)
	if err != nil {
		return nil, err
	}
	return load(cat)
}

// LoadFile decodes a CATALOG.031 from disk. Paths of the form
// zip://archive!entry are read from inside the archive.
func LoadFile(file string, opts ...iso8211.Option) (*Catalog, error) {
	f, err := iso8211.OpenFile(file, opts...)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := load(f.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", file, err)
	}
	return c, nil
}

func load(cat *iso8211.Catalog) (*Catalog, error) {
	if _, ok := cat.Schema().Field(CatalogTag); !ok {
		return nil, fmt.Errorf("not a catalogue: no %s field defined", CatalogTag)
	}

	c := &Catalog{}
	for rec, err := range cat.Records() {
		if err != nil {
			return nil, err
		}
		field, ok := rec.Field(CatalogTag)
		if !ok {
			continue
		}
		e, err := entryFromField(field)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", CatalogTag, len(c.Entries), err)
		}
		c.Entries = append(c.Entries, e)
	}
	return c, nil
}

// entryFromField maps CATD subfields onto an Entry. Missing subfields are
// left zero.
func entryFromField(f *iso8211.Field) (Entry, error) {
	v := f.Values()

	e := Entry{
		File:           v["FILE"].String(),
		LongFile:       v["LFIL"].String(),
		Volume:         v["VOLM"].String(),
		Implementation: v["IMPL"].String(),
		CRC:            v["CRCS"].String(),
		Comment:        v["COMT"].String(),
	}
	e.RecordID, _ = v["RCID"].Int()

	slat, okS := v["SLAT"].Float()
	wlon, okW := v["WLON"].Float()
	nlat, okN := v["NLAT"].Float()
	elon, okE := v["ELON"].Float()
	if okS && okW && okN && okE {
		e.Bounds = Bounds{MinLon: wlon, MaxLon: elon, MinLat: slat, MaxLat: nlat}
		if err := ValidateBounds(e.Bounds); err != nil {
			return Entry{}, fmt.Errorf("%s: %w", e.File, err)
		}
		e.HasBounds = true
	}
	return e, nil
}

// Find returns the entry for a file path, compared without regard to case or
// path separator style.
func (c *Catalog) Find(file string) (Entry, bool) {
	want := normalize(file)
	for _, e := range c.Entries {
		if normalize(e.File) == want {
			return e, true
		}
	}
	return Entry{}, false
}

// BaseCells returns the ENC base cells listed in the catalogue, sorted by file.
func (c *Catalog) BaseCells() []Entry {
	var cells []Entry
	for _, e := range c.Entries {
		if e.IsBaseCell() {
			cells = append(cells, e)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].File < cells[j].File })
	return cells
}

// Index builds a coverage index over the entries that carry bounds.
func (c *Catalog) Index() *Index {
	return NewIndex(c.Entries)
}

func normalize(file string) string {
	return strings.ToUpper(path.Clean(strings.ReplaceAll(file, "\\", "/")))
}
