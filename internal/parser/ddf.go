package parser

import (
	"bytes"
	"strings"
)

// RecordIdentifierName names the unnamed subfield of the record identifier
// field, whose array descriptor is empty.
const RecordIdentifierName = "DRID"

// SubfieldDefinition is one named, typed subfield of a field.
type SubfieldDefinition struct {
	Name string
	Spec SubfieldSpec
}

// FieldDefinition is the compiled schema of one field tag, taken from a data
// descriptive field of the DDR.
type FieldDefinition struct {
	Tag       string
	Controls  FieldControls
	Name      string
	Subfields []SubfieldDefinition
}

// Specs returns the subfield specs in declaration order.
func (f *FieldDefinition) Specs() []SubfieldSpec {
	specs := make([]SubfieldSpec, len(f.Subfields))
	for i, sf := range f.Subfields {
		specs[i] = sf.Spec
	}
	return specs
}

// ParseArrayDescriptor splits an array descriptor such as "RCNM!RCID!FILE" into
// subfield names.
func ParseArrayDescriptor(b []byte) ([]string, error) {
	if len(b) == 0 {
		return []string{RecordIdentifierName}, nil
	}
	s, err := parseText(b)
	if err != nil {
		return nil, err
	}
	return strings.Split(s, "!"), nil
}

// ParseDDF compiles one data descriptive field body, without its trailing field
// terminator, into a FieldDefinition. The returned definition has no Tag; the
// caller sets it from the directory.
//
// The body is three unit-separated parts: field controls and name, array
// descriptor, format controls.
//
// Reference: S-57 Part 3 §7.2.2.1 (31Main.pdf p3.32-3.33)
func ParseDDF(b []byte) (*FieldDefinition, error) {
	parts := bytes.Split(b, []byte{UnitSeparator})
	if len(parts[0]) < FieldControlsSize {
		return nil, newError(InvalidHeader, string(parts[0]))
	}

	name, err := parseText(parts[0][FieldControlsSize:])
	if err != nil {
		return nil, wrap(CouldNotParseName, err)
	}
	if len(parts) < 3 {
		return nil, wrapValue(InvalidDDF, name, newError(InvalidHeader, ""))
	}
	if len(parts) > 3 {
		return nil, newError(InvalidDDF, name)
	}

	controls, err := ParseFieldControls(parts[0][:FieldControlsSize])
	if err != nil {
		return nil, wrapValue(InvalidDDF, name, err)
	}
	names, err := ParseArrayDescriptor(parts[1])
	if err != nil {
		return nil, wrapValue(InvalidDDF, name, err)
	}
	specs, err := parseFormatControls(parts[2], len(names))
	if err != nil {
		return nil, wrapValue(InvalidDDF, name, err)
	}
	if len(names) != len(specs) {
		return nil, newError(InvalidDDF, name)
	}

	subfields := make([]SubfieldDefinition, len(names))
	for i := range names {
		subfields[i] = SubfieldDefinition{Name: names[i], Spec: specs[i]}
	}

	return &FieldDefinition{
		Controls:  controls,
		Name:      name,
		Subfields: subfields,
	}, nil
}

// compileFields builds field definitions for every directory entry except the
// first, which is the file control field.
func compileFields(area []byte, dirs []DirectoryEntry) (map[string]*FieldDefinition, []string, error) {
	fields := make(map[string]*FieldDefinition, len(dirs))
	var order []string

	if len(dirs) == 0 {
		return fields, order, nil
	}
	for _, dir := range dirs[1:] {
		body, err := fieldBody(area, dir)
		if err != nil {
			return nil, nil, wrap(InvalidDDFS, err)
		}
		def, err := ParseDDF(body)
		if err != nil {
			return nil, nil, wrapValue(InvalidDDFS, dir.Tag, err)
		}
		if _, dup := fields[dir.Tag]; dup {
			return nil, nil, newError(InvalidDDFS, dir.Tag)
		}
		def.Tag = dir.Tag
		fields[dir.Tag] = def
		order = append(order, dir.Tag)
	}
	return fields, order, nil
}

// fieldBody slices a field out of the field area, dropping its terminator.
func fieldBody(area []byte, dir DirectoryEntry) ([]byte, error) {
	end := dir.Offset + dir.Length
	if dir.Length < 1 || end > len(area) {
		return nil, newError(BadDirectoryData, dir.Tag)
	}
	return area[dir.Offset : end-1], nil
}
