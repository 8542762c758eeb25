// Package mdtable renders a document.Table as a Markdown table.
package mdtable

import (
	"strings"

	"github.com/kohwp/hwp/internal/document"
)

// layout separates grid computation (which cell owns which row/col
// position, accounting for spans) from rendering, mirroring the split the
// teacher's ASCII renderer uses for the same reason: the two concerns
// change for different reasons and are easier to get right apart.
type layout struct {
	table     *document.Table
	cellOwner [][]*document.Cell // cellOwner[row][col] = the Cell occupying this grid position
}

// Render formats a table as Markdown. It does not check for degenerate
// tables: a table with zero rows renders as an empty string, and missing
// cells render empty. The binary-format walker does not call Render for
// tables with zero rows/cols or no cells; it walks those linearly instead.
func Render(t *document.Table) string {
	l := buildLayout(t)
	return l.render()
}

func buildLayout(t *document.Table) *layout {
	l := &layout{
		table:     t,
		cellOwner: make([][]*document.Cell, t.Rows),
	}
	for i := range l.cellOwner {
		l.cellOwner[i] = make([]*document.Cell, t.Cols)
	}

	for i := range t.Cells {
		cell := &t.Cells[i]
		rowSpan, colSpan := cell.RowSpan, cell.ColSpan
		if rowSpan < 1 {
			rowSpan = 1
		}
		if colSpan < 1 {
			colSpan = 1
		}
		for r := 0; r < rowSpan && cell.Row+r < t.Rows; r++ {
			for c := 0; c < colSpan && cell.Col+c < t.Cols; c++ {
				l.cellOwner[cell.Row+r][cell.Col+c] = cell
			}
		}
	}

	return l
}

func (l *layout) render() string {
	var sb strings.Builder

	for row := 0; row < l.table.Rows; row++ {
		sb.WriteString(l.renderRow(row))
		sb.WriteString("\n")
		if row == 0 {
			sb.WriteString(l.separatorRow())
			sb.WriteString("\n")
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (l *layout) renderRow(row int) string {
	var sb strings.Builder
	sb.WriteString("|")

	for col := 0; col < l.table.Cols; col++ {
		owner := l.cellOwner[row][col]

		var text string
		if owner != nil && owner.Row == row && owner.Col == col {
			text = escape(owner.Text)
		}

		sb.WriteString(" ")
		sb.WriteString(text)
		sb.WriteString(" |")
	}

	return sb.String()
}

func (l *layout) separatorRow() string {
	return "|" + strings.Repeat(" --- |", l.table.Cols)
}

// escape applies the Markdown cell escaping rule: pipes and newlines
// would otherwise break the table's row structure.
func escape(s string) string {
	s = strings.TrimRight(s, "\n")
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
