package hwp5

import (
	"encoding/binary"
	"testing"
)

func buildEqEditBody(script string) []byte {
	units := []rune(script)
	body := make([]byte, 6+len(units)*2)
	binary.LittleEndian.PutUint16(body[4:], uint16(len(units)))
	for i, r := range units {
		binary.LittleEndian.PutUint16(body[6+i*2:], uint16(r))
	}
	return body
}

func TestExtractEqEditScript(t *testing.T) {
	body := buildEqEditBody("x = {a over b}")
	got := extractEqEditScript(body)
	if got != "x = {a over b}" {
		t.Errorf("extractEqEditScript() = %q", got)
	}
}

func TestExtractEqEditScriptEmpty(t *testing.T) {
	if got := extractEqEditScript(buildEqEditBody("")); got != "" {
		t.Errorf("extractEqEditScript() = %q, want empty", got)
	}
}

func TestExtractEqEditScriptTruncatedBody(t *testing.T) {
	body := make([]byte, 3) // shorter than the 4-byte property prefix
	if got := extractEqEditScript(body); got != "" {
		t.Errorf("extractEqEditScript() = %q, want empty for truncated body", got)
	}
}

func TestExtractEqEditScriptTruncatedMidCount(t *testing.T) {
	body := buildEqEditBody("abcdef")
	body = body[:len(body)-3] // drop the last code unit and half of the one before it
	got := extractEqEditScript(body)
	if got != "abcd" {
		t.Errorf("extractEqEditScript() = %q, want the decoded prefix before truncation", got)
	}
}
