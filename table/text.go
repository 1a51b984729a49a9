package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextRenderer renders a table as monospaced text. Group-start rows show the
// grouping-column value; the rows merged into them show blank padding of
// equal width so columns stay aligned. A rule line follows every row that
// ends a group of the outermost grouping column.
type TextRenderer struct {
	// Gap is the number of spaces between columns. Zero means the default
	// of two.
	Gap int
}

// pad fills the given string to the given display width. Widths are computed
// from rendered rune width, not byte length, so wide characters line up.
func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// Render produces the text rendition of the table. If spans is nil, the
// group spans are computed here.
func (r *TextRenderer) Render(t *Table, spans *Spans) (string, error) {
	if spans == nil {
		var err error
		spans, err = Compute(t)
		if err != nil {
			return "", err
		}
	}

	gap := r.Gap
	if gap == 0 {
		gap = 2
	}
	sep := strings.Repeat(" ", gap)

	// column width = widest of the header and every rendered cell
	widths := make([]int, len(t.Columns))
	for c, col := range t.Columns {
		widths[c] = runewidth.StringWidth(col)
		for i := range t.Rows {
			if w := runewidth.StringWidth(Format(t.Cell(i, col))); w > widths[c] {
				widths[c] = w
			}
		}
	}

	total := gap * (len(t.Columns) - 1)
	for _, w := range widths {
		total += w
	}
	rule := strings.Repeat("-", total)

	var b strings.Builder

	cells := make([]string, len(t.Columns))
	for c, col := range t.Columns {
		cells[c] = pad(col, widths[c])
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, sep), " "))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")

	for i := range t.Rows {
		for c, col := range t.Columns {
			v := ""
			if spans.Cell(i, col).Start {
				v = Format(t.Cell(i, col))
			}
			cells[c] = pad(v, widths[c])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, sep), " "))
		b.WriteString("\n")

		if spans.Grouped() && spans.IsLastGroupRow(i, spans.Outermost()) {
			b.WriteString(rule)
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
