package hwp5

import (
	"bytes"
	"fmt"
	"io"
)

const (
	fileHeaderSize = 256
	signatureText  = "HWP Document File"

	flagCompressed   = 1 << 0
	flagPassword     = 1 << 1
	flagDistribution = 1 << 2
)

// Version is the four-part HWP version number (major.minor.build.revision).
type Version struct {
	Major, Minor, Build, Revision byte
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// FileHeader mirrors the fixed 256-byte FileHeader stream.
type FileHeader struct {
	Version Version
	Flags   uint32
}

func (h FileHeader) Compressed() bool   { return h.Flags&flagCompressed != 0 }
func (h FileHeader) Password() bool     { return h.Flags&flagPassword != 0 }
func (h FileHeader) Distribution() bool { return h.Flags&flagDistribution != 0 }

// readFileHeader reads and validates the 256-byte FileHeader stream.
func readFileHeader(r io.Reader) (FileHeader, error) {
	var buf [fileHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return FileHeader{}, fmt.Errorf("read FileHeader: %w", err)
	}

	sig := bytes.TrimRight(buf[0:32], "\x00")
	if string(sig) != signatureText {
		return FileHeader{}, fmt.Errorf("%w: got %q", ErrInvalidSignature, sig)
	}

	verRaw, _ := readU32LE(buf[:], 32)
	version := Version{
		Major:    byte(verRaw >> 24),
		Minor:    byte(verRaw >> 16),
		Build:    byte(verRaw >> 8),
		Revision: byte(verRaw),
	}

	flags, _ := readU32LE(buf[:], 36)

	h := FileHeader{Version: version, Flags: flags}
	if h.Password() {
		return FileHeader{}, ErrPasswordProtected
	}
	return h, nil
}
