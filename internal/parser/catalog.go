package parser

import (
	"bufio"
	"io"
	"iter"
	"log/slog"
	"strconv"
)

// recordLengthSize is the width of the record length at the start of every
// record.
const recordLengthSize = 5

// State is a Catalog's position in its lifecycle.
type State int

const (
	Opening State = iota
	SchemaBuilt
	Reading
	Exhausted
	Failed
)

func (s State) String() string {
	switch s {
	case Opening:
		return "Opening"
	case SchemaBuilt:
		return "SchemaBuilt"
	case Reading:
		return "Reading"
	case Exhausted:
		return "Exhausted"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Catalog is an open ISO 8211 file: its compiled schema plus a forward-only
// cursor over the Data Records that follow the DDR.
//
// A Catalog owns its reader. It is not safe for concurrent use; the Schema it
// returns is.
type Catalog struct {
	schema *Schema
	rdr    *bufio.Reader
	log    *slog.Logger

	state State
	index int     // records decoded so far
	last  *Record // last good record
	err   error   // sticky failure
}

// Open reads and compiles the DDR from r. The returned Catalog reads Data
// Records from r on demand.
func Open(r io.Reader, opts Options) (*Catalog, error) {
	c := &Catalog{
		rdr:   bufio.NewReader(r),
		log:   opts.logger(),
		state: Opening,
	}

	record, err := c.readRecord()
	if err != nil {
		if err == io.EOF {
			err = newError(EOF, "")
		}
		return nil, wrap(CouldNotParseCatalog, err)
	}

	schema, err := ParseDDR(record)
	if err != nil {
		return nil, wrap(CouldNotParseCatalog, err)
	}
	c.schema = schema
	c.state = SchemaBuilt

	c.log.Debug("Schema compiled.",
		"record_length", schema.Leader.RecordLength,
		"directory_entries", len(schema.Directory),
		"fields", schema.Len(),
		"tags", schema.order)
	return c, nil
}

// Schema returns the compiled DDR.
func (c *Catalog) Schema() *Schema {
	return c.schema
}

// State returns the current lifecycle state.
func (c *Catalog) State() State {
	return c.state
}

// Next decodes the next Data Record.
//
// At a clean end of input Next returns io.EOF. Any other failure is a
// *RecordError carrying the last good record; once failed, the Catalog keeps
// returning that error.
func (c *Catalog) Next() (*Record, error) {
	switch c.state {
	case Exhausted:
		return nil, io.EOF
	case Failed:
		return nil, c.err
	}
	c.state = Reading

	raw, err := c.readRecord()
	if err == io.EOF {
		c.state = Exhausted
		c.log.Debug("Data records exhausted.", "records", c.index)
		return nil, io.EOF
	}
	if err != nil {
		return nil, c.fail(wrap(InvalidDR, err))
	}

	rec, err := c.schema.DecodeRecord(raw)
	if err != nil {
		return nil, c.fail(err)
	}

	c.log.Debug("Data record decoded.", "index", c.index, "tags", rec.Tags())
	c.index++
	c.last = rec
	return rec, nil
}

// Records returns a single-pass sequence over the remaining Data Records. It
// ends at a clean end of input, or after yielding the first error.
func (c *Catalog) Records() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		for {
			rec, err := c.Next()
			if err == io.EOF {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

func (c *Catalog) fail(err error) error {
	c.state = Failed
	c.err = &RecordError{Index: c.index, Last: c.last, Err: err}
	c.log.Debug("Data record failed.", "index", c.index, "error", err)
	return c.err
}

// readRecord reads one whole record including its length prefix. It returns
// io.EOF only when no byte of the record was available.
func (c *Catalog) readRecord() ([]byte, error) {
	head := make([]byte, recordLengthSize)
	n, err := io.ReadFull(c.rdr, head)
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		return nil, wrapValue(EOF, strconv.Itoa(n), err)
	case err != nil:
		return nil, wrap(IOError, err)
	}

	length, err := parseUint(head)
	if err != nil {
		return nil, wrap(InvalidLeader, err)
	}
	if length < LeaderSize {
		return nil, wrap(InvalidLeader, newError(EOF, strconv.Itoa(length)))
	}

	record := make([]byte, length)
	copy(record, head)
	if _, err := io.ReadFull(c.rdr, record[recordLengthSize:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, wrapValue(EOF, strconv.Itoa(length), io.ErrUnexpectedEOF)
		}
		return nil, wrap(IOError, err)
	}
	return record, nil
}
