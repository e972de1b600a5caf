package parser

import (
	"strconv"
	"unicode/utf8"
)

// Control bytes delimiting ISO 8211 structures.
//
// Reference: ISO/IEC 8211 §4 and S-57 Part 3 §7.1 (31Main.pdf p3.31)
const (
	RecordSeparator byte = 0x1e // field terminator
	UnitSeparator   byte = 0x1f // unit terminator
)

// LeaderSize is the fixed size of every record leader in bytes.
const LeaderSize = 24

// Leader is the fixed 24-byte preamble of every ISO 8211 record.
//
// The entry map (the last four bytes) holds the widths needed to split the
// directory that follows the leader.
//
// Reference: S-57 Part 3 §7.2.1 (31Main.pdf p3.31, table 7.1) for the DDR leader
// and §7.3.1 (table 7.3) for the DR leader.
type Leader struct {
	RecordLength         int    // rl, bytes 0-4
	InterchangeLevel     byte   // il, byte 5
	LeaderID             byte   // li, byte 6 ('L' for a DDR, 'D' or 'R' for a DR)
	InlineCodeExtension  byte   // cei, byte 7
	Version              byte   // vn, byte 8
	ApplicationIndicator byte   // ai, byte 9
	FieldControlLength   string // fcl, bytes 10-11
	BaseAddress          int    // ba, bytes 12-16
	ExtendedCharacterSet string // csi, bytes 17-19
	FieldLengthSize      int    // flf, byte 20
	FieldPositionSize    int    // fpf, byte 21
	Reserved             byte   // rsv, byte 22
	FieldTagSize         int    // ftf, byte 23
}

// EntrySize is the width of one directory entry.
func (l Leader) EntrySize() int {
	return l.FieldTagSize + l.FieldLengthSize + l.FieldPositionSize
}

// ParseLeader decodes a record leader from exactly LeaderSize bytes.
func ParseLeader(b []byte) (Leader, error) {
	if len(b) != LeaderSize {
		return Leader{}, wrap(InvalidLeader, newError(EOF, strconv.Itoa(len(b))))
	}

	var l Leader
	var err error
	if l.RecordLength, err = parseUint(b[0:5]); err != nil {
		return Leader{}, wrap(InvalidLeader, err)
	}
	l.InterchangeLevel = b[5]
	l.LeaderID = b[6]
	l.InlineCodeExtension = b[7]
	l.Version = b[8]
	l.ApplicationIndicator = b[9]
	if l.FieldControlLength, err = parseText(b[10:12]); err != nil {
		return Leader{}, wrap(InvalidLeader, err)
	}
	if l.BaseAddress, err = parseUint(b[12:17]); err != nil {
		return Leader{}, wrap(InvalidLeader, err)
	}
	if l.ExtendedCharacterSet, err = parseText(b[17:20]); err != nil {
		return Leader{}, wrap(InvalidLeader, err)
	}

	// Entry map
	if l.FieldLengthSize, err = parseWidth(b[20:21]); err != nil {
		return Leader{}, wrap(InvalidLeader, err)
	}
	if l.FieldPositionSize, err = parseWidth(b[21:22]); err != nil {
		return Leader{}, wrap(InvalidLeader, err)
	}
	l.Reserved = b[22]
	if l.FieldTagSize, err = parseWidth(b[23:24]); err != nil {
		return Leader{}, wrap(InvalidLeader, err)
	}

	return l, nil
}

// parseWidth decodes one entry map digit, which must be strictly positive.
func parseWidth(b []byte) (int, error) {
	n, err := parseUint(b)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, newError(ParseIntError, string(b))
	}
	return n, nil
}

// parseText decodes b as UTF-8 text.
func parseText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", newError(UtfError, strconv.QuoteToASCII(string(b)))
	}
	return string(b), nil
}

// parseUint decodes b as an unsigned ASCII decimal.
func parseUint(b []byte) (int, error) {
	s, err := parseText(b)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, wrapValue(ParseIntError, s, err)
	}
	return int(n), nil
}
