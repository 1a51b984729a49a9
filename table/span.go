package table

// Span describes a single cell's role in its visual group. A cell that
// starts a group has Length >= 1 counting itself and every consecutive row
// merged into it. A cell inside a group it did not start has Start false and
// Length 0; its content is suppressed in rendering.
type Span struct {
	Start  bool
	Length int
}

// Spans holds the computed group spans for one table. Both renderers consume
// the same Spans so their group boundaries always agree.
type Spans struct {
	table *Table
	// start and length are indexed [row][grouping ordinal]
	start  [][]bool
	length [][]int
	// ordinal maps a grouping column name to its position in GroupBy
	ordinal map[string]int
}

// sameGroupValue reports whether two rows hold the same value for a grouping
// column. Nil compares equal to nil only; a missing key reads as nil.
func sameGroupValue(a, b Row, column string) bool {
	av, bv := a[column], b[column]
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	return av == bv
}

// Compute calculates group spans for every (row, grouping column) pair of
// the table. Grouping is hierarchical: a group in column k continues only
// while all columns 0..k hold unchanged values, so a new group in column k-1
// always begins a new group in column k as well.
func Compute(t *Table) (*Spans, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	nr, ng := len(t.Rows), len(t.GroupBy)

	s := &Spans{
		table:   t,
		start:   make([][]bool, nr),
		length:  make([][]int, nr),
		ordinal: make(map[string]int, ng),
	}
	for k, col := range t.GroupBy {
		s.ordinal[col] = k
	}
	for i := range t.Rows {
		s.start[i] = make([]bool, ng)
		s.length[i] = make([]int, ng)
	}

	for k, col := range t.GroupBy {
		for i, row := range t.Rows {
			switch {
			case i == 0:
				s.start[i][k] = true
			case k > 0 && s.start[i][k-1]:
				s.start[i][k] = true
			default:
				s.start[i][k] = !sameGroupValue(row, t.Rows[i-1], col)
			}
		}

		for i := range t.Rows {
			if !s.start[i][k] {
				continue
			}
			length := 1
			for j := i + 1; j < nr && !s.start[j][k]; j++ {
				length++
			}
			s.length[i][k] = length
		}
	}

	return s, nil
}

// Cell returns the span for the given row and column. Columns that are not
// grouping columns always return a span of one: every row is its own group
// and nothing merges.
func (s *Spans) Cell(row int, column string) Span {
	k, grouped := s.ordinal[column]
	if !grouped {
		return Span{Start: true, Length: 1}
	}
	return Span{Start: s.start[row][k], Length: s.length[row][k]}
}

// IsLastGroupRow reports whether the given row is the final row of its group
// in the given column. For a column that is not a grouping column every row
// is the last row of its own group.
func (s *Spans) IsLastGroupRow(row int, column string) bool {
	k, grouped := s.ordinal[column]
	if !grouped {
		return true
	}
	if row+1 >= len(s.start) {
		return true
	}
	return s.start[row+1][k]
}

// Grouped reports whether the table has any grouping columns.
func (s *Spans) Grouped() bool {
	return len(s.table.GroupBy) > 0
}

// Outermost returns the name of the outermost grouping column. It must not
// be called unless Grouped returns true.
func (s *Spans) Outermost() string {
	return s.table.GroupBy[0]
}
