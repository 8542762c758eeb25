package hwpml

import (
	"strings"
	"testing"
)

func TestExtractTextJoinsParagraphsWithNewlines(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<HWPML>
  <BODY>
    <SECTION>
      <P><TEXT><CHAR>first paragraph</CHAR></TEXT></P>
      <P><TEXT><CHAR>second paragraph</CHAR></TEXT></P>
    </SECTION>
  </BODY>
</HWPML>`

	got, err := ExtractText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	want := "first paragraph\nsecond paragraph\n"
	if got != want {
		t.Errorf("ExtractText() = %q, want %q", got, want)
	}
}

func TestExtractTextSkipsCharDataOutsideParagraphs(t *testing.T) {
	doc := `<HWPML><HEAD><STYLE>ignored</STYLE></HEAD><BODY><SECTION><P>inside</P></SECTION></BODY></HWPML>`

	got, err := ExtractText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if strings.Contains(got, "ignored") {
		t.Errorf("ExtractText() = %q, should not contain text outside <P> elements", got)
	}
	if !strings.Contains(got, "inside") {
		t.Errorf("ExtractText() = %q, want it to contain paragraph text", got)
	}
}

func TestExtractTextNestedParagraphLikeElementsStillClose(t *testing.T) {
	// Malformed/unexpected nesting shouldn't panic; the decoder just
	// unwinds depth as end tags are seen.
	doc := `<HWPML><BODY><SECTION><P>outer<P>inner</P></P></SECTION></BODY></HWPML>`

	got, err := ExtractText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if !strings.Contains(got, "outer") || !strings.Contains(got, "inner") {
		t.Errorf("ExtractText() = %q, want both outer and inner text present", got)
	}
}

func TestExtractTextInvalidXMLIsAnError(t *testing.T) {
	_, err := ExtractText(strings.NewReader("<HWPML><BODY>"))
	if err == nil {
		t.Fatal("ExtractText() error = nil, want error for unclosed XML")
	}
}
