package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-courier/table"
)

func deptTable() *table.Table {
	t := table.New("dept", "name", "sales")
	t.Append("A", "alice", 10)
	t.Append("A", "bob", 20)
	t.Append("B", "carol", 30)
	return t.GroupedBy("dept")
}

func TestComputeSingleGroupColumn(t *testing.T) {
	t.Parallel()

	spans, err := table.Compute(deptTable())
	require.NoError(t, err)

	assert.Equal(t, table.Span{Start: true, Length: 2}, spans.Cell(0, "dept"))
	assert.Equal(t, table.Span{Start: false, Length: 0}, spans.Cell(1, "dept"))
	assert.Equal(t, table.Span{Start: true, Length: 1}, spans.Cell(2, "dept"))

	// non-grouping columns never merge
	for i := 0; i < 3; i++ {
		assert.Equal(t, table.Span{Start: true, Length: 1}, spans.Cell(i, "name"))
		assert.Equal(t, table.Span{Start: true, Length: 1}, spans.Cell(i, "sales"))
	}

	assert.False(t, spans.IsLastGroupRow(0, "dept"))
	assert.True(t, spans.IsLastGroupRow(1, "dept"))
	assert.True(t, spans.IsLastGroupRow(2, "dept"))

	assert.True(t, spans.Grouped())
	assert.Equal(t, "dept", spans.Outermost())
}

func TestComputeHierarchical(t *testing.T) {
	t.Parallel()

	// an outer group change restarts inner groups even when the inner
	// value repeats
	tbl := table.New("region", "team", "who")
	tbl.Append("east", "red", "a")
	tbl.Append("east", "red", "b")
	tbl.Append("west", "red", "c")
	tbl.Append("west", "blue", "d")
	tbl = tbl.GroupedBy("region", "team")

	spans, err := table.Compute(tbl)
	require.NoError(t, err)

	assert.Equal(t, table.Span{Start: true, Length: 2}, spans.Cell(0, "region"))
	assert.Equal(t, table.Span{Start: true, Length: 2}, spans.Cell(0, "team"))
	assert.Equal(t, table.Span{Start: false, Length: 0}, spans.Cell(1, "team"))

	// row 2 keeps team "red" but region changed, so team starts anew
	assert.Equal(t, table.Span{Start: true, Length: 2}, spans.Cell(2, "region"))
	assert.Equal(t, table.Span{Start: true, Length: 1}, spans.Cell(2, "team"))
	assert.Equal(t, table.Span{Start: true, Length: 1}, spans.Cell(3, "team"))
}

func TestComputeSpanLengthsCoverAllRows(t *testing.T) {
	t.Parallel()

	tbl := table.New("g", "v")
	tbl.Append("x", 1)
	tbl.Append("x", 2)
	tbl.Append("y", 3)
	tbl.Append("y", 4)
	tbl.Append("y", 5)
	tbl = tbl.GroupedBy("g")

	spans, err := table.Compute(tbl)
	require.NoError(t, err)

	total := 0
	for i := range tbl.Rows {
		total += spans.Cell(i, "g").Length
	}
	assert.Equal(t, len(tbl.Rows), total)
}

func TestComputeNilGroupValues(t *testing.T) {
	t.Parallel()

	// nil equals nil; nil never equals a value
	tbl := table.New("g", "v")
	tbl.AppendRow(table.Row{"v": 1})
	tbl.AppendRow(table.Row{"v": 2})
	tbl.AppendRow(table.Row{"g": "x", "v": 3})
	tbl = tbl.GroupedBy("g")

	spans, err := table.Compute(tbl)
	require.NoError(t, err)

	assert.Equal(t, table.Span{Start: true, Length: 2}, spans.Cell(0, "g"))
	assert.Equal(t, table.Span{Start: false, Length: 0}, spans.Cell(1, "g"))
	assert.Equal(t, table.Span{Start: true, Length: 1}, spans.Cell(2, "g"))
}

func TestComputeNoGrouping(t *testing.T) {
	t.Parallel()

	tbl := table.New("a", "b")
	tbl.Append(1, 2)
	tbl.Append(3, 4)

	spans, err := table.Compute(tbl)
	require.NoError(t, err)

	assert.False(t, spans.Grouped())
	for i := range tbl.Rows {
		assert.Equal(t, table.Span{Start: true, Length: 1}, spans.Cell(i, "a"))
		assert.True(t, spans.IsLastGroupRow(i, "a"))
	}
}

func TestComputeValidates(t *testing.T) {
	t.Parallel()

	_, err := table.Compute(&table.Table{})
	assert.ErrorIs(t, err, table.ErrNoColumns)

	_, err = table.Compute(&table.Table{Columns: []string{"a", "a"}})
	assert.ErrorIs(t, err, table.ErrDuplicateColumn)

	_, err = table.Compute(&table.Table{
		Columns: []string{"a", "b"},
		GroupBy: []string{"b"},
	})
	assert.ErrorIs(t, err, table.ErrBadGroupBy)
}
