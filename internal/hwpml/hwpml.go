// Package hwpml is the HWPML boundary: a single XML file using the legacy
// HWPML element vocabulary (HWP's predecessor markup before HWPX/OWPML).
// This boundary is intentionally out of scope for hardening — only the
// interface contract the rest of the module dispatches to lives here, in
// the same thin texture as internal/hwpx.
package hwpml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ExtractText collects the character data found inside an HWPML document's
// P elements (at any depth below them) and returns it as plain text, one
// newline per closing P element. HWPML's
// full element vocabulary (CHARSHAPE, drawing objects, field codes) is not
// modeled; unrecognized elements are skipped rather than rejected, so a
// document using them still yields whatever text sits in the elements this
// boundary does understand.
func ExtractText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	var paraDepth int

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("hwpml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "P" {
				paraDepth++
			}
		case xml.EndElement:
			if el.Name.Local == "P" {
				paraDepth--
				sb.WriteString("\n")
			}
		case xml.CharData:
			if paraDepth > 0 {
				sb.Write(el)
			}
		}
	}

	return sb.String(), nil
}
