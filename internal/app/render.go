package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/iso8211/pkg/exchangeset"
	"github.com/beetlebugorg/iso8211/pkg/iso8211"
)

type leaderDoc struct {
	RecordLength int    `json:"record_length" yaml:"record_length"`
	LeaderID     string `json:"leader_id" yaml:"leader_id"`
	BaseAddress  int    `json:"base_address" yaml:"base_address"`
	EntryMap     string `json:"entry_map" yaml:"entry_map"`
}

type subfieldDefDoc struct {
	Name   string `json:"name" yaml:"name"`
	Format string `json:"format" yaml:"format"`
}

type fieldDefDoc struct {
	Tag       string           `json:"tag" yaml:"tag"`
	Name      string           `json:"name" yaml:"name"`
	Structure string           `json:"structure" yaml:"structure"`
	DataType  string           `json:"data_type" yaml:"data_type"`
	Subfields []subfieldDefDoc `json:"subfields" yaml:"subfields"`
}

type schemaDoc struct {
	Leader leaderDoc     `json:"leader" yaml:"leader"`
	Fields []fieldDefDoc `json:"fields" yaml:"fields"`
}

type subfieldDoc struct {
	Name  string        `json:"name" yaml:"name"`
	Value iso8211.Value `json:"value" yaml:"value"`
}

type fieldDoc struct {
	Tag       string        `json:"tag" yaml:"tag"`
	Subfields []subfieldDoc `json:"subfields" yaml:"subfields"`
}

type recordDoc struct {
	Index  int        `json:"index" yaml:"index"`
	Fields []fieldDoc `json:"fields" yaml:"fields"`
}

type entriesDoc struct {
	Query   exchangeset.Bounds  `json:"query" yaml:"query"`
	Entries []exchangeset.Entry `json:"entries" yaml:"entries"`
}

func newSchemaDoc(s *iso8211.Schema) schemaDoc {
	l := s.Leader
	doc := schemaDoc{
		Leader: leaderDoc{
			RecordLength: l.RecordLength,
			LeaderID:     string(l.LeaderID),
			BaseAddress:  l.BaseAddress,
			EntryMap:     fmt.Sprintf("%d%d%c%d", l.FieldLengthSize, l.FieldPositionSize, l.Reserved, l.FieldTagSize),
		},
	}
	for _, tag := range s.Tags() {
		def, _ := s.Field(tag)
		fd := fieldDefDoc{
			Tag:       tag,
			Name:      def.Name,
			Structure: def.Controls.DataStructure.String(),
			DataType:  def.Controls.DataType.String(),
		}
		for _, sf := range def.Subfields {
			fd.Subfields = append(fd.Subfields, subfieldDefDoc{Name: sf.Name, Format: sf.Spec.String()})
		}
		doc.Fields = append(doc.Fields, fd)
	}
	return doc
}

func newRecordDoc(index int, rec *iso8211.Record) recordDoc {
	doc := recordDoc{Index: index}
	for _, f := range rec.Fields {
		fd := fieldDoc{Tag: f.Tag}
		for _, sf := range f.Subfields {
			fd.Subfields = append(fd.Subfields, subfieldDoc{Name: sf.Name, Value: sf.Value})
		}
		doc.Fields = append(doc.Fields, fd)
	}
	return doc
}

// encoder writes a stream of documents in one output format.
type encoder interface {
	Schema(schemaDoc) error
	Record(recordDoc) error
	Entries(entriesDoc) error
	Close() error
}

func newEncoder(format string, w io.Writer) encoder {
	switch format {
	case FormatJSON:
		return &jsonEncoder{enc: json.NewEncoder(w)}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlEncoder{enc: enc}
	default:
		return &textEncoder{w: w}
	}
}

// jsonEncoder writes one JSON document per line.
type jsonEncoder struct {
	enc *json.Encoder
}

func (e *jsonEncoder) Schema(d schemaDoc) error {
	return e.enc.Encode(struct {
		Schema schemaDoc `json:"schema"`
	}{d})
}

func (e *jsonEncoder) Record(d recordDoc) error {
	return e.enc.Encode(struct {
		Record recordDoc `json:"record"`
	}{d})
}

func (e *jsonEncoder) Entries(d entriesDoc) error { return e.enc.Encode(d) }

func (e *jsonEncoder) Close() error { return nil }

// yamlEncoder writes a multi-document YAML stream.
type yamlEncoder struct {
	enc *yaml.Encoder
}

func (e *yamlEncoder) Schema(d schemaDoc) error {
	return e.enc.Encode(map[string]schemaDoc{"schema": d})
}

func (e *yamlEncoder) Record(d recordDoc) error {
	return e.enc.Encode(map[string]recordDoc{"record": d})
}

func (e *yamlEncoder) Entries(d entriesDoc) error { return e.enc.Encode(d) }

func (e *yamlEncoder) Close() error { return e.enc.Close() }

// textEncoder writes an aligned listing for terminals.
type textEncoder struct {
	w io.Writer
}

func (e *textEncoder) Schema(d schemaDoc) error {
	fmt.Fprintf(e.w, "Schema: %d fields (leader %s, record length %d, entry map %s)\n",
		len(d.Fields), d.Leader.LeaderID, d.Leader.RecordLength, d.Leader.EntryMap)

	tw := tabwriter.NewWriter(e.w, 0, 4, 2, ' ', 0)
	for _, f := range d.Fields {
		subs := make([]string, len(f.Subfields))
		for i, sf := range f.Subfields {
			subs[i] = sf.Name + "=" + sf.Format
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s, %s\t%s\n", f.Tag, f.Name, f.Structure, f.DataType, strings.Join(subs, " "))
	}
	return tw.Flush()
}

func (e *textEncoder) Record(d recordDoc) error {
	if _, err := fmt.Fprintf(e.w, "Record %d\n", d.Index); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(e.w, 0, 4, 2, ' ', 0)
	for _, f := range d.Fields {
		subs := make([]string, len(f.Subfields))
		for i, sf := range f.Subfields {
			subs[i] = sf.Name + "=" + textValue(sf.Value)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", f.Tag, strings.Join(subs, " "))
	}
	return tw.Flush()
}

func (e *textEncoder) Entries(d entriesDoc) error {
	fmt.Fprintf(e.w, "%d entries intersect %v\n", len(d.Entries), d.Query)
	tw := tabwriter.NewWriter(e.w, 0, 4, 2, ' ', 0)
	for _, en := range d.Entries {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%v\t%s\n", en.RecordID, en.File, en.Implementation, en.Bounds, en.CRC)
	}
	return tw.Flush()
}

func (e *textEncoder) Close() error { return nil }

func textValue(v iso8211.Value) string {
	if v.IsNull() {
		return "null"
	}
	if v.Type() == iso8211.String {
		return fmt.Sprintf("%q", v.String())
	}
	return v.String()
}
