package hwp5

import (
	"bytes"
	"errors"
	"testing"
)

func buildFileHeader(flags uint32) []byte {
	buf := make([]byte, fileHeaderSize)
	copy(buf, signatureText)
	buf[35] = 5 // version major byte (big-endian within the packed u32)
	putU32LE(buf, 36, flags)
	return buf
}

func putU32LE(buf []byte, off int, v uint32) {
	buf[off] = byte(v)
	buf[off+1] = byte(v >> 8)
	buf[off+2] = byte(v >> 16)
	buf[off+3] = byte(v >> 24)
}

func TestReadFileHeaderValid(t *testing.T) {
	h, err := readFileHeader(bytes.NewReader(buildFileHeader(flagCompressed)))
	if err != nil {
		t.Fatalf("readFileHeader() error = %v", err)
	}
	if !h.Compressed() {
		t.Error("Compressed() = false, want true")
	}
	if h.Password() || h.Distribution() {
		t.Error("Password()/Distribution() = true, want false")
	}
}

func TestReadFileHeaderRejectsBadSignature(t *testing.T) {
	buf := buildFileHeader(0)
	copy(buf, "not an hwp file at all")

	_, err := readFileHeader(bytes.NewReader(buf))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("readFileHeader() error = %v, want ErrInvalidSignature", err)
	}
}

func TestReadFileHeaderRejectsPasswordProtected(t *testing.T) {
	buf := buildFileHeader(flagPassword)
	_, err := readFileHeader(bytes.NewReader(buf))
	if !errors.Is(err, ErrPasswordProtected) {
		t.Errorf("readFileHeader() error = %v, want ErrPasswordProtected", err)
	}
}

func TestReadFileHeaderTooShort(t *testing.T) {
	_, err := readFileHeader(bytes.NewReader(make([]byte, 10)))
	if err == nil {
		t.Fatal("readFileHeader() error = nil, want error for truncated input")
	}
}
