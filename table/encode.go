package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteCSV writes the table as comma-separated values: one header record in
// column order followed by one record per row. Cell values are written in
// their rendered form.
func WriteCSV(w io.Writer, t *Table) error {
	return writeSeparated(w, t, ',')
}

// WriteTSV writes the table as tab-separated values.
func WriteTSV(w io.Writer, t *Table) error {
	return writeSeparated(w, t, '\t')
}

func writeSeparated(w io.Writer, t *Table, comma rune) error {
	if err := t.Validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for i := range t.Rows {
		for c, col := range t.Columns {
			record[c] = Format(t.Cell(i, col))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMarkdown writes the table as a pipe-delimited Markdown table: a header
// row, a divider row, and one row per table row. Pipes inside cell values are
// escaped.
func WriteMarkdown(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	writeRow := func(cells []string) error {
		for c, cell := range cells {
			cells[c] = strings.ReplaceAll(cell, "|", `\|`)
		}
		_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
		return err
	}

	if err := writeRow(append([]string(nil), t.Columns...)); err != nil {
		return err
	}

	divider := make([]string, len(t.Columns))
	for c := range divider {
		divider[c] = "---"
	}
	if err := writeRow(divider); err != nil {
		return err
	}

	cells := make([]string, len(t.Columns))
	for i := range t.Rows {
		for c, col := range t.Columns {
			cells[c] = Format(t.Cell(i, col))
		}
		if err := writeRow(cells); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON writes the table as a JSON array with one object per row. Keys
// within an object are emitted in the encoder's order, not column order;
// only the delimited formats preserve column order.
func WriteJSON(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	rows := make([]map[string]any, len(t.Rows))
	for i := range t.Rows {
		row := make(map[string]any, len(t.Columns))
		for _, col := range t.Columns {
			row[col] = t.Cell(i, col)
		}
		rows[i] = row
	}

	enc := json.NewEncoder(w)
	return enc.Encode(rows)
}
