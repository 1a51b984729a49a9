package table

import (
	"errors"
	"fmt"
)

// Errors returned when validating a table.
var (
	// ErrNoColumns is returned for a table declaring no columns.
	ErrNoColumns = errors.New("table has no columns")

	// ErrDuplicateColumn is returned when a column name is declared twice.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrBadGroupBy is returned when the grouping columns are not a prefix
	// of the declared column order.
	ErrBadGroupBy = errors.New("grouping columns must be a prefix of the column order")
)

// Row is a single table row. Keys are column names. A missing key reads as
// nil.
type Row map[string]any

// Table is an ordered collection of rows. GroupBy, when set, names the
// leading columns that define visual grouping, outermost first. It must be a
// prefix of Columns.
type Table struct {
	Columns []string
	GroupBy []string
	Rows    []Row
}

// New builds a table with the given column order and no grouping.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// GroupedBy returns a copy of the table grouped by the given leading
// columns.
func (t *Table) GroupedBy(columns ...string) *Table {
	return &Table{Columns: t.Columns, GroupBy: columns, Rows: t.Rows}
}

// Append adds a row given as values in column order. Extra values are
// dropped; missing values read as nil.
func (t *Table) Append(values ...any) {
	row := make(Row, len(t.Columns))
	for i, col := range t.Columns {
		if i < len(values) {
			row[col] = values[i]
		}
	}
	t.Rows = append(t.Rows, row)
}

// AppendRow adds a row given as a column-to-value mapping.
func (t *Table) AppendRow(row Row) {
	t.Rows = append(t.Rows, row)
}

// Cell returns the value at the given row for the named column. Missing
// values are nil.
func (t *Table) Cell(row int, column string) any {
	return t.Rows[row][column]
}

// Validate checks the structural invariants of the table: at least one
// column, unique column names, and grouping columns forming a prefix of the
// column order.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return ErrNoColumns
	}

	seen := make(map[string]struct{}, len(t.Columns))
	for _, col := range t.Columns {
		if _, dup := seen[col]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, col)
		}
		seen[col] = struct{}{}
	}

	if len(t.GroupBy) > len(t.Columns) {
		return ErrBadGroupBy
	}
	for i, col := range t.GroupBy {
		if t.Columns[i] != col {
			return ErrBadGroupBy
		}
	}

	return nil
}

// Format renders a single cell value for display. Nil renders as an empty
// string.
func Format(v any) string {
	if v == nil {
		return ""
	}
	if s, isStr := v.(string); isStr {
		return s
	}
	return fmt.Sprintf("%v", v)
}
