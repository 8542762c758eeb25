// Package hwp extracts plain text, including tabular content rendered as
// Markdown, from Korean HWP word-processor documents.
//
// Three on-disk representations are recognized by their leading bytes:
// the binary HWP 5.x format (OLE compound-file container, signature
// D0 CF 11 E0), HWPX (ZIP container, signature 50 4B 03 04), and HWPML
// (a bare XML file, signature 3C 3F 78 6D — "<?xm"). Only the binary HWP
// 5.x pipeline (internal/hwp5) is hardened to the degree a production
// parser needs; the HWPX and HWPML readers are thin boundary packages
// that exist so format auto-detection has somewhere to dispatch to.
//
// # Example
//
//	f, err := os.Open("document.hwp")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	text, err := hwp.ExtractText(f)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(text)
package hwp

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/kohwp/hwp/internal/container"
	"github.com/kohwp/hwp/internal/hwp5"
	"github.com/kohwp/hwp/internal/hwpml"
	"github.com/kohwp/hwp/internal/hwpx"
)

var (
	signatureOLE   = []byte{0xD0, 0xCF, 0x11, 0xE0}
	signatureZIP   = []byte{0x50, 0x4B, 0x03, 0x04}
	signatureHWPML = []byte{0x3C, 0x3F, 0x78, 0x6D}
)

// ErrUnsupportedFormat is returned when the input's leading bytes don't
// match any of the three recognized representations.
var ErrUnsupportedFormat = fmt.Errorf("hwp: unsupported file format")

// Errors reported by the binary HWP 5.x pipeline, re-exported so callers
// can match them with errors.Is.
var (
	ErrInvalidSignature  = hwp5.ErrInvalidSignature
	ErrPasswordProtected = hwp5.ErrPasswordProtected
	ErrStreamNotFound    = hwp5.ErrStreamNotFound
	ErrInvalidRecord     = hwp5.ErrInvalidRecord
	ErrDecompressFailed  = hwp5.ErrDecompressFailed
	ErrDecryptFailed     = hwp5.ErrDecryptFailed
	ErrParse             = hwp5.ErrParse
)

// Metadata is the document properties (title/author/subject) that the
// binary HWP 5.x pipeline can recover from its OLE property-set stream.
// HWPX and HWPML inputs always report a zero Metadata: neither boundary
// package reads one.
type Metadata = container.Metadata

// ExtractText detects the input's format from its first four bytes and
// extracts its plain text. The file must support random access: the
// binary HWP 5.x format needs it for its OLE container, and HWPX needs it
// for its ZIP container.
func ExtractText(f *os.File) (string, error) {
	text, _, err := ExtractTextWithMetadata(f)
	return text, err
}

// ExtractTextWithMetadata is ExtractText, also returning the document
// metadata described by Metadata.
func ExtractTextWithMetadata(f *os.File) (string, Metadata, error) {
	info, err := f.Stat()
	if err != nil {
		return "", Metadata{}, fmt.Errorf("hwp: %w", err)
	}
	return ExtractTextSizeWithMetadata(f, info.Size())
}

// ExtractTextSize is ExtractText for callers that already know the input's
// size (e.g. they opened it some way other than os.Open).
func ExtractTextSize(ra io.ReaderAt, size int64) (string, error) {
	text, _, err := ExtractTextSizeWithMetadata(ra, size)
	return text, err
}

// ExtractTextSizeWithMetadata is ExtractTextSize, also returning the
// document metadata described by Metadata.
func ExtractTextSizeWithMetadata(ra io.ReaderAt, size int64) (string, Metadata, error) {
	var magic [4]byte
	if _, err := ra.ReadAt(magic[:], 0); err != nil {
		return "", Metadata{}, fmt.Errorf("hwp: reading signature: %w", err)
	}

	switch {
	case bytes.Equal(magic[:], signatureOLE):
		return extractHWP5(ra)
	case bytes.Equal(magic[:], signatureZIP):
		text, err := extractHWPX(ra, size)
		return text, Metadata{}, err
	case bytes.Equal(magic[:], signatureHWPML):
		text, err := extractHWPML(ra, size)
		return text, Metadata{}, err
	default:
		return "", Metadata{}, ErrUnsupportedFormat
	}
}

func extractHWP5(ra io.ReaderAt) (string, Metadata, error) {
	c, err := container.Open(ra)
	if err != nil {
		return "", Metadata{}, err
	}
	doc, err := hwp5.Open(c)
	if err != nil {
		return "", Metadata{}, err
	}
	return doc.ExtractText()
}

func extractHWPX(ra io.ReaderAt, size int64) (string, error) {
	reader, err := hwpx.Open(ra, size)
	if err != nil {
		return "", fmt.Errorf("hwp: %w", err)
	}
	return reader.ExtractText()
}

func extractHWPML(ra io.ReaderAt, size int64) (string, error) {
	return hwpml.ExtractText(io.NewSectionReader(ra, 0, size))
}
