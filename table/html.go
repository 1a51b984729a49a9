package table

import (
	"fmt"
	"html"
	"strings"
)

// HTMLTheme supplies the attribute strings attached to the elements of a
// rendered HTML table. Attribute strings include their leading space, so an
// empty string means a bare element.
type HTMLTheme struct {
	Name       string
	TableAttrs string
	HeadAttrs  string
	CellAttrs  string
	GroupAttrs string
}

// Modest is the default HTML theme: a compact look with light rules between
// groups, named for the table style it imitates.
var Modest = HTMLTheme{
	Name:       "modest",
	TableAttrs: ` style="border-collapse: collapse; font-family: sans-serif; font-size: 14px;"`,
	HeadAttrs:  ` style="text-align: left; padding: 4px 8px; border-bottom: 2px solid #999;"`,
	CellAttrs:  ` style="padding: 4px 8px; border-bottom: 1px solid #ddd;"`,
	GroupAttrs: ` style="padding: 4px 8px; border-bottom: 1px solid #999; vertical-align: top;"`,
}

// PlainHTML is a theme with no styling at all.
var PlainHTML = HTMLTheme{Name: "plain"}

// HTMLRenderer renders a table as an HTML fragment. Group-start cells in
// grouping columns carry a rowspan covering their whole group; the rows a
// spanning cell covers omit that cell entirely.
type HTMLRenderer struct {
	Theme HTMLTheme
}

// Render produces the HTML fragment for the table. If spans is nil, the
// group spans are computed here.
func (r *HTMLRenderer) Render(t *Table, spans *Spans) (string, error) {
	if spans == nil {
		var err error
		spans, err = Compute(t)
		if err != nil {
			return "", err
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "<table%s>\n<thead>\n<tr>", r.Theme.TableAttrs)
	for _, col := range t.Columns {
		fmt.Fprintf(&b, "<th%s>%s</th>", r.Theme.HeadAttrs, html.EscapeString(col))
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for i := range t.Rows {
		b.WriteString("<tr>")
		for _, col := range t.Columns {
			sp := spans.Cell(i, col)
			if !sp.Start {
				continue
			}

			attrs := r.Theme.CellAttrs
			rowspan := ""
			if sp.Length > 1 {
				attrs = r.Theme.GroupAttrs
				rowspan = fmt.Sprintf(` rowspan="%d"`, sp.Length)
			}

			fmt.Fprintf(&b, "<td%s%s>%s</td>",
				rowspan, attrs, html.EscapeString(Format(t.Cell(i, col))))
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>")
	return b.String(), nil
}
