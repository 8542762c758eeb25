package hwp5

import "fmt"

// sectionCount extracts the section count from the DocInfo record
// sequence. The first record must be DOCUMENT_PROPERTIES with a body of
// at least 2 bytes; its first u16 is the section count.
func sectionCount(records []Record) (int, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("%w: empty DocInfo", ErrParse)
	}

	first := records[0]
	if first.Tag != TagDocumentProperties {
		return 0, fmt.Errorf("%w: expected DOCUMENT_PROPERTIES, got tag 0x%x", ErrParse, first.Tag)
	}
	if len(first.Body) < 2 {
		return 0, fmt.Errorf("%w: DOCUMENT_PROPERTIES body too short", ErrParse)
	}

	n, _ := readU16LE(first.Body, 0)
	return int(n), nil
}
