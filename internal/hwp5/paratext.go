package hwp5

import "unicode/utf16"

// Segment is one run of text from a PARA_TEXT body. HasExtendAfter is set
// when the segment was terminated by an extend-control marker, meaning
// the next CTRL_HEADER sub-tree at the paragraph's child level should be
// woven in immediately after this segment's text.
type Segment struct {
	Text           string
	HasExtendAfter bool
}

// segmentParaText splits a PARA_TEXT body into text segments separated
// by extend-control markers, per the control-code table: normal code
// units accumulate as text (recomposing surrogate pairs), char controls
// emit a fixed substitution, inline controls skip their 14-byte payload
// without starting a new segment, and extend controls flush the current
// segment (marking it HasExtendAfter) before skipping their 14-byte
// payload.
func segmentParaText(body []byte) []Segment {
	var segments []Segment
	var cur []rune
	pos := 0
	n := len(body)

	flush := func(hasExtendAfter bool) {
		segments = append(segments, Segment{Text: string(cur), HasExtendAfter: hasExtendAfter})
		cur = cur[:0]
	}

	for pos+2 <= n {
		code, _ := readU16LE(body, pos)
		pos += 2

		switch classify(code) {
		case classNormal:
			r := rune(code)
			if utf16.IsSurrogate(r) && pos+2 <= n {
				next, _ := readU16LE(body, pos)
				if combined := utf16.DecodeRune(r, rune(next)); combined != 0xFFFD {
					cur = append(cur, combined)
					pos += 2
					continue
				}
			}
			cur = append(cur, r)

		case classChar:
			switch code {
			case 10:
				cur = append(cur, '\n')
			case 24:
				cur = append(cur, '-')
			case 30, 31:
				cur = append(cur, ' ')
			case 13:
				// paragraph end: discarded
			default:
				// other low codes: discarded
			}

		case classInline:
			if code == 9 {
				cur = append(cur, '\t')
			}
			skip := 14
			if pos+skip > n {
				skip = n - pos
			}
			pos += skip

		case classExtend:
			flush(true)
			skip := 14
			if pos+skip > n {
				skip = n - pos
			}
			pos += skip
		}
	}

	flush(false)
	return segments
}
