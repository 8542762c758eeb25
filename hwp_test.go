package hwp

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExtractTextSizeDispatchesHWPML(t *testing.T) {
	doc := `<?xml version="1.0"?><HWPML><BODY><SECTION><P>plain text</P></SECTION></BODY></HWPML>`
	ra := bytes.NewReader([]byte(doc))

	got, err := ExtractTextSize(ra, int64(len(doc)))
	if err != nil {
		t.Fatalf("ExtractTextSize() error = %v", err)
	}
	if !strings.Contains(got, "plain text") {
		t.Errorf("ExtractTextSize() = %q, want HWPML text", got)
	}
}

func TestExtractTextSizeRejectsUnrecognizedSignature(t *testing.T) {
	ra := bytes.NewReader([]byte("PK nope nothing recognized here"))
	_, err := ExtractTextSize(ra, 32)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ExtractTextSize() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractTextSizeRejectsTooShortInput(t *testing.T) {
	ra := bytes.NewReader([]byte{0x01})
	_, err := ExtractTextSize(ra, 1)
	if err == nil {
		t.Fatal("ExtractTextSize() error = nil, want error for input shorter than the signature")
	}
}

func TestExtractTextSizeWithMetadataHWPMLReportsZeroMetadata(t *testing.T) {
	doc := `<?xml version="1.0"?><HWPML><BODY><SECTION><P>text</P></SECTION></BODY></HWPML>`
	ra := bytes.NewReader([]byte(doc))

	_, meta, err := ExtractTextSizeWithMetadata(ra, int64(len(doc)))
	if err != nil {
		t.Fatalf("ExtractTextSizeWithMetadata() error = %v", err)
	}
	if meta != (Metadata{}) {
		t.Errorf("ExtractTextSizeWithMetadata() metadata = %+v, want zero value for HWPML input", meta)
	}
}
