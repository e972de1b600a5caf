package parser

import "strconv"

// SplitRecords slices an in-memory file into whole records using the record
// length in each leader. Only the framing is checked; the records are not
// decoded. On a framing failure it returns the records framed so far along
// with the error.
func SplitRecords(data []byte) ([][]byte, error) {
	var records [][]byte
	for off := 0; off < len(data); {
		rest := data[off:]
		if len(rest) < recordLengthSize {
			return records, newError(EOF, strconv.Itoa(off))
		}
		length, err := parseUint(rest[:recordLengthSize])
		if err != nil {
			return records, wrapValue(InvalidLeader, strconv.Itoa(off), err)
		}
		if length < LeaderSize {
			return records, wrapValue(InvalidLeader, strconv.Itoa(off), newError(EOF, strconv.Itoa(length)))
		}
		if length > len(rest) {
			return records, newError(EOF, strconv.Itoa(off))
		}
		records = append(records, rest[:length:length])
		off += length
	}
	return records, nil
}
