package hwpx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

type closingReader struct{ io.Reader }

func (closingReader) Close() error { return nil }

func TestExtractSectionTextParagraphsAndTables(t *testing.T) {
	section := `<?xml version="1.0" encoding="UTF-8"?>
<hs:sec xmlns:hp="http://www.hancom.co.kr/hwpml/2011/paragraph">
  <hp:p><hp:run><hp:t>hello world</hp:t></hp:run></hp:p>
  <hp:tbl rowCnt="1" colCnt="2">
    <hp:tr>
      <hp:tc>
        <hp:cellAddr colAddr="0" rowAddr="0"/>
        <hp:cellSpan colSpan="1" rowSpan="1"/>
        <hp:subList><hp:p><hp:run><hp:t>a</hp:t></hp:run></hp:p></hp:subList>
      </hp:tc>
      <hp:tc>
        <hp:cellAddr colAddr="1" rowAddr="0"/>
        <hp:cellSpan colSpan="1" rowSpan="1"/>
        <hp:subList><hp:p><hp:run><hp:t>b</hp:t></hp:run></hp:p></hp:subList>
      </hp:tc>
    </hp:tr>
  </hp:tbl>
</hs:sec>`

	got, err := extractSectionText(closingReader{strings.NewReader(section)})
	if err != nil {
		t.Fatalf("extractSectionText() error = %v", err)
	}
	if !strings.Contains(got, "hello world") {
		t.Errorf("extractSectionText() = %q, want paragraph text", got)
	}
	if !strings.Contains(got, "| a | b |") {
		t.Errorf("extractSectionText() = %q, want the table rendered as Markdown", got)
	}
}

func TestExtractSectionTextSkipsEmptyParagraphs(t *testing.T) {
	section := `<hs:sec><hp:p><hp:run></hp:run></hp:p></hs:sec>`

	got, err := extractSectionText(closingReader{strings.NewReader(section)})
	if err != nil {
		t.Fatalf("extractSectionText() error = %v", err)
	}
	if got != "" {
		t.Errorf("extractSectionText() = %q, want empty output for an empty paragraph", got)
	}
}

func buildHWPXZip(t *testing.T, sections map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	write := func(name, content string) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zw.Create(%s) error = %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s error = %v", name, err)
		}
	}

	write("mimetype", "application/hwp+zip")
	write("version.xml", `<HCFVersion major="5" minor="1" micro="0" buildNumber="0" xmlVersion="1.4"/>`)
	for name, content := range sections {
		write(name, content)
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("zw.Close() error = %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestOpenAndExtractTextAcrossSections(t *testing.T) {
	ra := buildHWPXZip(t, map[string]string{
		"Contents/section0.xml": `<hs:sec><hp:p><hp:run><hp:t>first</hp:t></hp:run></hp:p></hs:sec>`,
		"Contents/section1.xml": `<hs:sec><hp:p><hp:run><hp:t>second</hp:t></hp:run></hp:p></hs:sec>`,
	})

	r, err := Open(ra, ra.Size())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	got, err := r.ExtractText()
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("ExtractText() = %q, want text from both sections", got)
	}
}

func TestOpenRejectsWrongMimetype(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("mimetype")
	w.Write([]byte("application/zip"))
	zw.Close()

	ra := bytes.NewReader(buf.Bytes())
	if _, err := Open(ra, ra.Size()); err == nil {
		t.Fatal("Open() error = nil, want error for wrong mimetype")
	}
}
