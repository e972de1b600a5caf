// Package iso8211 decodes ISO/IEC 8211 files as used by IHO S-57 exchange sets.
//
// An ISO 8211 file is a Data Descriptive Record (DDR), which declares every
// field and the type of each subfield, followed by Data Records (DRs) that are
// decoded against it. This package compiles the DDR into a Schema and then
// streams the DRs as typed values.
//
// # Basic Usage
//
//	f, err := iso8211.OpenFile("ENC_ROOT/CATALOG.031")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	for rec, err := range f.Records() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    catd, _ := rec.Field("CATD")
//	    file, _ := catd.Value("FILE")
//	    fmt.Println(file)
//	}
//
// Archives can be read in place with a zip:// path:
//
//	f, err := iso8211.OpenFile("zip:///charts/ENC_ROOT.zip!ENC_ROOT/CATALOG.031")
//
// # Schema
//
// The schema lists the defined fields in DDR order. The file control field
// (the first directory entry) is not part of it.
//
//	schema := f.Schema()
//	for _, tag := range schema.Tags() {
//	    def, _ := schema.Field(tag)
//	    fmt.Printf("%s %s %v\n", tag, def.Name, def.Specs())
//	}
//
// # Values
//
// Subfields decode to String, Integer or Float values. An empty numeric
// subfield is null, which is distinct from zero:
//
//	v, _ := catd.Value("SLAT")
//	if lat, ok := v.Float(); ok {
//	    // lat is present
//	}
//
// # Errors
//
// Every failure carries an ErrorKind that can be matched anywhere in the
// cause chain with errors.Is. A failed Data Record is reported as a
// *RecordError holding the last record that decoded:
//
//	var rerr *iso8211.RecordError
//	if errors.As(err, &rerr) && errors.Is(err, iso8211.EOF) {
//	    // file truncated after rerr.Last
//	}
//
// # Concurrency
//
// A Catalog reads sequentially and is not safe for concurrent use. A Schema is
// immutable, so DecodeParallel can decode records already in memory on
// several goroutines.
package iso8211
