package listview

import "fmt"

// Index identifies a row by its section and its position within that
// section. Indices are only meaningful for the currently loaded dataset;
// a reload may change the row count and the mapping entirely.
type Index struct {
	Section int
	Row     int
}

// Compare orders indices section-major: it returns a negative number if i
// precedes other, zero if they are equal, and a positive number otherwise.
func (i Index) Compare(other Index) int {
	if i.Section != other.Section {
		return i.Section - other.Section
	}
	return i.Row - other.Row
}

// Less reports whether i orders before other.
func (i Index) Less(other Index) bool {
	return i.Compare(other) < 0
}

func (i Index) String() string {
	return fmt.Sprintf("(%d, %d)", i.Section, i.Row)
}
