package hwp5

// codeClass classifies a PARA_TEXT 16-bit code unit.
type codeClass int

const (
	classNormal codeClass = iota
	classChar
	classInline
	classExtend
)

// classify maps a PARA_TEXT code unit to its class per the format's
// control-code table. Codes above 31 are ordinary Unicode BMP code
// points; codes 0-31 are either plain char controls (2 bytes total),
// inline controls (16 bytes total, no split point), or extend controls
// (16 bytes total, a split point paired with a sibling CTRL_HEADER).
func classify(code uint16) codeClass {
	if code > 31 {
		return classNormal
	}
	switch code {
	case 1, 2, 3, 11, 12, 14, 15, 16, 17, 18, 21, 22, 23:
		return classExtend
	case 4, 5, 6, 7, 8, 9, 19, 20:
		return classInline
	default:
		return classChar
	}
}
