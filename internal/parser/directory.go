package parser

import "strconv"

// DirectoryEntry locates one field inside a record's field area.
//
// Offset is relative to the start of the field area, which begins right after
// the field terminator closing the directory.
type DirectoryEntry struct {
	Tag    string
	Length int
	Offset int
}

func (d DirectoryEntry) String() string {
	return d.Tag
}

// ParseDirectory splits a directory into entries using the widths declared in
// the leader's entry map. The directory must be an exact multiple of the entry
// size.
//
// Reference: S-57 Part 3 §7.2.2 (31Main.pdf p3.32)
func ParseDirectory(b []byte, l Leader) ([]DirectoryEntry, error) {
	size := l.EntrySize()
	if size <= 0 || len(b)%size != 0 {
		return nil, newError(BadDirectoryData, strconv.Itoa(len(b)))
	}

	entries := make([]DirectoryEntry, 0, len(b)/size)
	for off := 0; off < len(b); off += size {
		chunk := b[off : off+size]
		tagEnd := l.FieldTagSize
		lenEnd := tagEnd + l.FieldLengthSize

		tag, err := parseText(chunk[:tagEnd])
		if err != nil {
			return nil, wrap(BadDirectoryData, err)
		}
		length, err := parseUint(chunk[tagEnd:lenEnd])
		if err != nil {
			return nil, wrapValue(BadDirectoryData, tag, err)
		}
		offset, err := parseUint(chunk[lenEnd:])
		if err != nil {
			return nil, wrapValue(BadDirectoryData, tag, err)
		}

		entries = append(entries, DirectoryEntry{Tag: tag, Length: length, Offset: offset})
	}

	return entries, nil
}
