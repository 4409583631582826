package listview

import "sort"

// placedRow pairs a row's index with its vertical placement.
type placedRow struct {
	index Index
	span  Span
}

// layoutTable maps every row of the loaded dataset to its vertical span.
// Entries are stored in ascending offset order, which coincides with
// section-major index order. The table is rebuilt wholesale on reload and
// never mutated in between.
type layoutTable struct {
	rows   []placedRow
	height int
}

// buildLayout stacks fixed-height rows top to bottom, sections in order,
// rows in order within each section. It panics on a negative section count
// or a non-positive row height.
func buildLayout(dimensions []int, rowHeight int) *layoutTable {
	if rowHeight <= 0 {
		panic("listview: row height must be positive")
	}
	total := 0
	for _, count := range dimensions {
		if count < 0 {
			panic("listview: section row count must not be negative")
		}
		total += count
	}

	table := &layoutTable{rows: make([]placedRow, 0, total)}
	y := 0
	for section, count := range dimensions {
		for row := 0; row < count; row++ {
			table.rows = append(table.rows, placedRow{
				index: Index{Section: section, Row: row},
				span:  NewSpan(y, rowHeight),
			})
			y += rowHeight
		}
	}
	table.height = y
	return table
}

// visibleIn returns the rows whose spans intersect the window, in layout
// order. Spans are non-overlapping and sorted by offset, so the result is
// one contiguous run whose start is found by binary search.
func (t *layoutTable) visibleIn(window Span) []placedRow {
	first := sort.Search(len(t.rows), func(i int) bool {
		return t.rows[i].span.MaxY() >= window.Y
	})
	last := first
	for last < len(t.rows) && t.rows[last].span.Y <= window.MaxY() {
		last++
	}
	return t.rows[first:last]
}
