package parser

import (
	"bytes"
	"strconv"
)

// Schema is the compiled Data Descriptive Record of a file.
//
// A Schema is immutable once built and safe for concurrent use; DecodeRecord
// may be called from several goroutines on independent buffers.
type Schema struct {
	Leader    Leader
	Directory []DirectoryEntry
	fields    map[string]*FieldDefinition
	order     []string
}

// Field returns the definition of a field tag.
func (s *Schema) Field(tag string) (*FieldDefinition, bool) {
	f, ok := s.fields[tag]
	return f, ok
}

// Tags returns the defined field tags in DDR order.
func (s *Schema) Tags() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of defined fields. The file control field is not
// counted.
func (s *Schema) Len() int {
	return len(s.order)
}

// Subfield is one named value of a decoded field.
type Subfield struct {
	Name  string
	Value Value
}

// Field is a decoded field of a Data Record. Subfields keep schema order.
type Field struct {
	Tag       string
	Name      string
	Subfields []Subfield
}

// Value returns the value of the named subfield.
func (f *Field) Value(name string) (Value, bool) {
	for _, sf := range f.Subfields {
		if sf.Name == name {
			return sf.Value, true
		}
	}
	return Value{}, false
}

// Values returns the subfields keyed by name.
func (f *Field) Values() map[string]Value {
	m := make(map[string]Value, len(f.Subfields))
	for _, sf := range f.Subfields {
		m[sf.Name] = sf.Value
	}
	return m
}

// Record is a decoded Data Record. Fields keep directory order.
type Record struct {
	Leader Leader
	Fields []Field
}

// Field returns the first field with the given tag.
func (r *Record) Field(tag string) (*Field, bool) {
	for i := range r.Fields {
		if r.Fields[i].Tag == tag {
			return &r.Fields[i], true
		}
	}
	return nil, false
}

// Tags returns the tags of the record's fields in order.
func (r *Record) Tags() []string {
	tags := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		tags[i] = f.Tag
	}
	return tags
}

// frame is a record split into its leader, directory and field area.
type frame struct {
	leader Leader
	dirs   []DirectoryEntry
	area   []byte
}

// splitRecord applies the leader and directory framing to a whole record,
// including its 5-byte length prefix.
func splitRecord(record []byte) (frame, error) {
	if len(record) < LeaderSize {
		return frame{}, wrap(InvalidLeader, newError(EOF, strconv.Itoa(len(record))))
	}
	leader, err := ParseLeader(record[:LeaderSize])
	if err != nil {
		return frame{}, err
	}

	end := bytes.IndexByte(record[LeaderSize:], RecordSeparator)
	if end < 0 {
		return frame{}, newError(BadDirectoryData, "missing field terminator")
	}
	end += LeaderSize

	dirs, err := ParseDirectory(record[LeaderSize:end], leader)
	if err != nil {
		return frame{}, err
	}

	return frame{leader: leader, dirs: dirs, area: record[end+1:]}, nil
}

// ParseDDR compiles a Data Descriptive Record into a Schema.
//
// Reference: S-57 Part 3 §7.2 (31Main.pdf p3.31-3.33)
func ParseDDR(record []byte) (*Schema, error) {
	fr, err := splitRecord(record)
	if err != nil {
		return nil, wrap(InvalidDDR, err)
	}
	fields, order, err := compileFields(fr.area, fr.dirs)
	if err != nil {
		return nil, wrap(InvalidDDR, err)
	}
	return &Schema{
		Leader:    fr.leader,
		Directory: fr.dirs,
		fields:    fields,
		order:     order,
	}, nil
}

// DecodeRecord decodes one whole Data Record, including its 5-byte length
// prefix, with the schema's compiled subfield specs.
//
// Reference: S-57 Part 3 §7.3 (31Main.pdf p3.33)
func (s *Schema) DecodeRecord(record []byte) (*Record, error) {
	fr, err := splitRecord(record)
	if err != nil {
		return nil, wrap(InvalidDR, err)
	}

	rec := &Record{Leader: fr.leader, Fields: make([]Field, 0, len(fr.dirs))}
	for _, dir := range fr.dirs {
		def, ok := s.fields[dir.Tag]
		if !ok {
			return nil, newError(InvalidDR, dir.Tag)
		}
		body, err := fieldBody(fr.area, dir)
		if err != nil {
			return nil, wrap(InvalidDR, err)
		}
		field, err := decodeField(def, body)
		if err != nil {
			return nil, wrapValue(InvalidDR, dir.Tag, err)
		}
		rec.Fields = append(rec.Fields, field)
	}
	return rec, nil
}

// decodeField reads every subfield of def from body. The body must be used up
// exactly.
func decodeField(def *FieldDefinition, body []byte) (Field, error) {
	c := NewCursor(body)
	field := Field{Tag: def.Tag, Name: def.Name, Subfields: make([]Subfield, len(def.Subfields))}
	for i, sf := range def.Subfields {
		v, err := ReadSubfield(c, sf.Spec)
		if err != nil {
			return Field{}, wrapValue(InvalidDR, sf.Name, err)
		}
		field.Subfields[i] = Subfield{Name: sf.Name, Value: v}
	}
	if n := c.Remaining(); n > 0 {
		return Field{}, newError(InvalidDR, strconv.Itoa(n)+" trailing bytes")
	}
	return field, nil
}
