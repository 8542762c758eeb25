package hwp5

import "unicode/utf16"

// extractEqEditScript decodes an EQEDIT record body: 4 bytes of
// properties, a u16 character count, then that many UTF-16LE code units
// holding the raw equation script. A body too short to hold the count
// yields an empty script, and a body cut off inside the code units yields
// the units that are present; neither is an error — equations are a
// best-effort enrichment, never load-bearing for the rest of the extraction.
func extractEqEditScript(body []byte) string {
	count, ok := readU16LE(body, 4)
	if !ok || count == 0 {
		return ""
	}

	units := make([]uint16, 0, count)
	off := 6
	for i := 0; i < int(count); i++ {
		u, ok := readU16LE(body, off)
		if !ok {
			break
		}
		units = append(units, u)
		off += 2
	}

	return string(utf16.Decode(units))
}
