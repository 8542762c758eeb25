package hwp5

import (
	"errors"
	"testing"
)

func TestSectionCountReadsFirstU16(t *testing.T) {
	records := []Record{
		{Tag: TagDocumentProperties, Level: 0, Body: []byte{3, 0, 0, 0}},
	}
	n, err := sectionCount(records)
	if err != nil {
		t.Fatalf("sectionCount() error = %v", err)
	}
	if n != 3 {
		t.Errorf("sectionCount() = %d, want 3", n)
	}
}

func TestSectionCountRejectsWrongFirstRecord(t *testing.T) {
	records := []Record{
		{Tag: TagParaHeader, Level: 0, Body: []byte{1, 0}},
	}
	_, err := sectionCount(records)
	if !errors.Is(err, ErrParse) {
		t.Errorf("sectionCount() error = %v, want ErrParse", err)
	}
}

func TestSectionCountRejectsEmptyRecords(t *testing.T) {
	_, err := sectionCount(nil)
	if !errors.Is(err, ErrParse) {
		t.Errorf("sectionCount() error = %v, want ErrParse", err)
	}
}
