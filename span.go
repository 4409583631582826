package listview

// Span is a one-dimensional vertical interval: a top offset and a
// non-negative height, both in screen cells.
type Span struct {
	Y      int
	Height int
}

// NewSpan returns a span starting at the given offset. It panics if height
// is negative.
func NewSpan(y, height int) Span {
	if height < 0 {
		panic("listview: span height must not be negative")
	}
	return Span{Y: y, Height: height}
}

// MaxY returns the bottom edge of the span.
func (s Span) MaxY() int {
	return s.Y + s.Height
}

// Intersects reports whether the two spans overlap. Boundaries are
// inclusive: spans that merely touch at an edge count as intersecting.
func (s Span) Intersects(other Span) bool {
	return !(s.MaxY() < other.Y || s.Y > other.MaxY())
}
