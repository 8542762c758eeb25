package hwp5

import (
	"strings"

	"github.com/kohwp/hwp/internal/document"
	"github.com/kohwp/hwp/internal/mdtable"
)

// sectionWalker turns one section's flat record sequence into text. The
// cursor is passed explicitly: walkParagraphList and walkParagraph take a
// start index and return the index just past whatever they consumed, so
// the caller resumes exactly where the callee left off; emitSubtree and
// walkLinear work on a [start, end) span fixed by their caller.
type sectionWalker struct {
	records []Record
}

func newSectionWalker(records []Record) *sectionWalker {
	return &sectionWalker{records: records}
}

// walk extracts the full text of a section starting at record index 0,
// level 0.
func (w *sectionWalker) walk() string {
	text, _ := w.walkParagraphList(0, 0, len(w.records))
	return text
}

// walkParagraphList consumes every PARA_HEADER at baseLevel starting at
// pos, stopping at the first record whose level drops below baseLevel or
// at limit. It returns the accumulated text and the index just past the
// last record it consumed.
func (w *sectionWalker) walkParagraphList(pos, baseLevel, limit int) (string, int) {
	var sb strings.Builder

	for pos < limit {
		r := w.records[pos]
		if int(r.Level) < baseLevel {
			break
		}
		if int(r.Level) == baseLevel && r.Tag == TagParaHeader {
			text, next := w.walkParagraph(pos, baseLevel, limit)
			sb.WriteString(text)
			pos = next
			continue
		}
		// Record at or above baseLevel that isn't a paragraph start at
		// this exact depth: not expected in a well-formed stream, skip it
		// rather than lose the rest of the list.
		pos++
	}

	return sb.String(), pos
}

// walkParagraph consumes one PARA_HEADER and its children: a single
// PARA_TEXT at childLevel, zero or more CTRL_HEADER sub-trees at
// childLevel interleaved with PARA_TEXT via extend markers, and any
// EQEDIT records found as direct children (not already swallowed by a
// captured sub-tree span). Returns the paragraph's rendered text,
// including its closing newline, and the index just past the paragraph.
func (w *sectionWalker) walkParagraph(pos, level, limit int) (string, int) {
	childLevel := level + 1
	pos++ // past PARA_HEADER

	var textBody []byte
	type span struct{ start, end int }
	var subtrees []span
	var eqeditBodies [][]byte

	i := pos
	for i < limit {
		r := w.records[i]
		if int(r.Level) < level {
			break
		}
		if int(r.Level) == level {
			if r.Tag == TagParaHeader {
				break
			}
			i++
			continue
		}
		if int(r.Level) == childLevel {
			switch r.Tag {
			case TagParaText:
				if textBody == nil {
					textBody = r.Body
				}
				i++
			case TagCtrlHeader:
				start := i
				j := i + 1
				for j < limit && int(w.records[j].Level) > childLevel {
					j++
				}
				subtrees = append(subtrees, span{start, j})
				i = j
			case TagEqEdit:
				eqeditBodies = append(eqeditBodies, r.Body)
				i++
			default:
				i++
			}
			continue
		}
		// Deeper than childLevel without having been claimed by a
		// sub-tree span above: defensively collect stray EQEDIT records,
		// otherwise skip.
		if r.Tag == TagEqEdit {
			eqeditBodies = append(eqeditBodies, r.Body)
		}
		i++
	}
	paragraphEnd := i

	var sb strings.Builder
	if textBody == nil {
		sb.WriteString("\n\n")
	} else {
		segments := segmentParaText(textBody)
		subIdx := 0
		for _, seg := range segments {
			sb.WriteString(seg.Text)
			if seg.HasExtendAfter && subIdx < len(subtrees) {
				st := subtrees[subIdx]
				sb.WriteString(w.emitSubtree(st.start, st.end, childLevel))
				subIdx++
			}
		}
		for ; subIdx < len(subtrees); subIdx++ {
			st := subtrees[subIdx]
			sb.WriteString(w.emitSubtree(st.start, st.end, childLevel))
		}
		for _, body := range eqeditBodies {
			sb.WriteString(extractEqEditScript(body))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String(), paragraphEnd
}

// emitSubtree renders one CTRL_HEADER sub-tree spanning
// [start, end): start is the CTRL_HEADER record itself, end is the index
// of its first non-descendant. Table controls render as Markdown; every
// other control walks its children linearly.
func (w *sectionWalker) emitSubtree(start, end, ctrlLevel int) string {
	ctrl := w.records[start]
	if isTableControl(ctrl) {
		if text, ok := w.emitTable(start, end, ctrlLevel); ok {
			return text
		}
		// Degenerate table: fall back to a linear walk so no text is lost.
	}
	return w.walkLinear(start+1, end)
}

// isTableControl reports whether a CTRL_HEADER's 4-character control id
// is "tbl " (table).
func isTableControl(ctrl Record) bool {
	return len(ctrl.Body) >= 4 &&
		ctrl.Body[0] == 't' && ctrl.Body[1] == 'b' && ctrl.Body[2] == 'l' && ctrl.Body[3] == ' '
}

// walkLinear walks the records in [start, end) without any table
// structure: LIST_HEADER records introducing a nested paragraph list (used
// for headers, footers, footnotes, endnotes, text boxes, and memos) recurse
// into walkParagraphList bounded to end; EQEDIT records emit their script
// directly; everything else is skipped.
func (w *sectionWalker) walkLinear(start, end int) string {
	var sb strings.Builder
	pos := start

	for pos < end {
		r := w.records[pos]
		switch r.Tag {
		case TagListHeader:
			if pos+1 < end && w.records[pos+1].Tag == TagParaHeader {
				childLevel := int(w.records[pos+1].Level)
				text, next := w.walkParagraphList(pos+1, childLevel, end)
				sb.WriteString(text)
				pos = next
				continue
			}
			pos++
		case TagEqEdit:
			sb.WriteString(extractEqEditScript(r.Body))
			sb.WriteString("\n")
			pos++
		default:
			pos++
		}
	}

	return sb.String()
}

// emitTable builds a document.Table from a "tbl " sub-tree and renders it
// as Markdown. ok is false for any degenerate shape (missing TABLE record,
// zero rows/cols, no cell LIST_HEADERs at the expected depth) so the
// caller can fall back to a linear walk instead of losing the content.
func (w *sectionWalker) emitTable(start, end, ctrlLevel int) (string, bool) {
	cellLevel := ctrlLevel + 1

	var tableRec *Record
	for i := start + 1; i < end; i++ {
		if int(w.records[i].Level) == cellLevel && w.records[i].Tag == TagTable {
			tableRec = &w.records[i]
			break
		}
	}
	if tableRec == nil || len(tableRec.Body) < 8 {
		return "", false
	}

	rows, _ := readU16LE(tableRec.Body, 4)
	cols, _ := readU16LE(tableRec.Body, 6)
	if rows == 0 || cols == 0 {
		return "", false
	}

	var cells []document.Cell
	pos := start + 1
	for pos < end {
		r := w.records[pos]
		if int(r.Level) == cellLevel && r.Tag == TagListHeader && len(r.Body) >= 33 {
			colU16, _ := readU16LE(r.Body, 8)
			rowU16, _ := readU16LE(r.Body, 10)
			colSpanU16, _ := readU16LE(r.Body, 12)
			rowSpanU16, _ := readU16LE(r.Body, 14)
			col, row, colSpan, rowSpan := int(colU16), int(rowU16), int(colSpanU16), int(rowSpanU16)
			if colSpan == 0 {
				colSpan = 1
			}
			if rowSpan == 0 {
				rowSpan = 1
			}

			cellEnd := pos + 1
			for cellEnd < end && int(w.records[cellEnd].Level) > cellLevel {
				cellEnd++
			}

			text := ""
			if cellEnd > pos+1 && w.records[pos+1].Tag == TagParaHeader {
				text, _ = w.walkParagraphList(pos+1, cellLevel+1, cellEnd)
			}

			cells = append(cells, document.Cell{
				Row:     row,
				Col:     col,
				RowSpan: rowSpan,
				ColSpan: colSpan,
				Text:    strings.TrimSuffix(text, "\n"),
			})
			pos = cellEnd
			continue
		}
		pos++
	}

	if len(cells) == 0 {
		return "", false
	}

	table := &document.Table{Rows: int(rows), Cols: int(cols), Cells: cells}
	return mdtable.Render(table) + "\n", true
}
