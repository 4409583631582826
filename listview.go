// Package listview provides a virtualized, vertically scrolling row
// container for tcell programs. The container keeps only the rows that
// intersect the viewport alive; row views scrolled out of sight are retired
// into a kind-keyed reuse pool and recycled for rows scrolling in, so the
// number of live views is bounded by the viewport, not the dataset.
package listview

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Row is the capability a widget needs to serve as a list row: it must be
// drawable, positionable, and hideable. Box provides everything but Draw,
// so any Box-embedding widget qualifies.
type Row interface {
	Draw(screen tcell.Screen)
	GetRect() (x, y, width, height int)
	SetRect(x, y, width, height int)
	SetVisible(visible bool)
	IsVisible() bool
}

// RowFactory populates the view for a row. Implementations must obtain the
// view with DequeueRow on the container they are given, fill in the row's
// content, and return it.
type RowFactory func(index Index, list *ListView) Row

// DefaultRowHeight is the row height of a freshly created ListView, in
// cells.
const DefaultRowHeight = 1

// ListView displays uniform-height rows grouped into sections. Only the
// rows intersecting the visible window hold a live view; everything else
// exists solely as an entry in the layout table.
//
// A ListView is inert until the first Reload. All methods must be called
// from the goroutine driving the screen; the container performs no locking.
type ListView struct {
	*Box

	rowHeight int
	layout    *layoutTable
	factory   RowFactory

	// Scroll offset of the visible window into the content, in cells.
	offset int

	// The rows currently intersecting the visible window, each holding the
	// live view fetched for it.
	visible map[Index]Row

	pool *reusePool

	// True while a RowFactory invocation is on the stack; DequeueRow is
	// only legal then.
	dequeueing bool

	scrollBarVisibility ScrollBarVisibility
	scrollBarTrackStyle tcell.Style
	scrollBarThumbStyle tcell.Style

	clicked func(index Index)
}

// NewListView returns an empty list view. Call RegisterKind for every row
// kind the factory will dequeue, then Reload to populate.
func NewListView() *ListView {
	return &ListView{
		Box:                 NewBox(),
		rowHeight:           DefaultRowHeight,
		visible:             make(map[Index]Row),
		pool:                newReusePool(),
		scrollBarVisibility: ScrollBarAuto,
		scrollBarTrackStyle: tcell.StyleDefault.Dim(true),
		scrollBarThumbStyle: tcell.StyleDefault,
	}
}

// SetRowHeight sets the fixed height of every row, in cells. It takes
// effect on the next Reload. It panics if height is not positive.
func (l *ListView) SetRowHeight(height int) *ListView {
	if height <= 0 {
		panic("listview: row height must be positive")
	}
	l.rowHeight = height
	return l
}

// RowHeight returns the fixed row height in cells.
func (l *ListView) RowHeight() int {
	return l.rowHeight
}

// RegisterKind registers a constructor for a row kind. The reuse pool calls
// it whenever a row of that kind is dequeued and no idle view is available.
func (l *ListView) RegisterKind(kind Kind, construct func() Row) *ListView {
	l.pool.register(kind, construct)
	return l
}

// Reload replaces the entire dataset. Every section is described by its row
// count: Reload([]int{100, 200}, f) loads section 0 with 100 rows and
// section 1 with 200. All currently visible rows are retired to the reuse
// pool, the layout table is rebuilt, the scroll position resets to the top,
// and the visible window is reconciled against the new layout.
//
// Reload is the only way to (re)populate the list. It panics on a negative
// row count.
func (l *ListView) Reload(dimensions []int, factory RowFactory) *ListView {
	l.retireAll()
	l.layout = buildLayout(dimensions, l.rowHeight)
	l.factory = factory
	l.offset = 0
	l.reconcile()
	return l
}

// Clear unloads the dataset, retiring all visible rows. The container
// returns to its inert pre-Reload state; the reuse pool keeps its views.
func (l *ListView) Clear() *ListView {
	l.retireAll()
	l.layout = nil
	l.factory = nil
	l.offset = 0
	return l
}

func (l *ListView) retireAll() {
	for index, view := range l.visible {
		l.pool.checkin(view)
		delete(l.visible, index)
	}
}

// DequeueRow returns a ready-to-populate view of the given kind for the row
// at index, reusing the most recently retired view of that kind if one is
// idle. It may only be called from within a RowFactory; anywhere else it
// panics.
func (l *ListView) DequeueRow(kind Kind, index Index) Row {
	if !l.dequeueing {
		panic("listview: DequeueRow called outside a row factory for " + index.String())
	}
	view := l.pool.checkout(kind)
	view.SetVisible(true)
	return view
}

// ContentHeight returns the total height of the loaded content, in cells.
func (l *ListView) ContentHeight() int {
	if l.layout == nil {
		return 0
	}
	return l.layout.height
}

// GetScrollOffset returns the current scroll offset, in cells.
func (l *ListView) GetScrollOffset() int {
	return l.offset
}

// ScrollTo scrolls the visible window so it starts at the given content
// offset, clamped to the scrollable range, and reconciles.
func (l *ListView) ScrollTo(offset int) *ListView {
	if offset < 0 {
		offset = 0
	}
	if m := l.maxOffset(); offset > m {
		offset = m
	}
	if offset != l.offset {
		l.offset = offset
		l.reconcile()
	}
	return l
}

// ScrollBy scrolls by delta cells; positive scrolls down.
func (l *ListView) ScrollBy(delta int) *ListView {
	return l.ScrollTo(l.offset + delta)
}

// ScrollToTop scrolls to the beginning of the content.
func (l *ListView) ScrollToTop() *ListView {
	return l.ScrollTo(0)
}

// ScrollToBottom scrolls so the end of the content aligns with the bottom
// of the viewport.
func (l *ListView) ScrollToBottom() *ListView {
	return l.ScrollTo(l.maxOffset())
}

func (l *ListView) maxOffset() int {
	if l.layout == nil {
		return 0
	}
	_, _, _, height := l.GetInnerRect()
	m := l.layout.height - height
	if m < 0 {
		m = 0
	}
	return m
}

// SetRect sets the outer rectangle, re-clamps the scroll offset against the
// new viewport, and reconciles.
func (l *ListView) SetRect(x, y, width, height int) {
	l.Box.SetRect(x, y, width, height)
	if m := l.maxOffset(); l.offset > m {
		l.offset = m
	}
	l.reconcile()
}

// VisibleIndices returns the indices of the rows currently holding a live
// view, in layout order.
func (l *ListView) VisibleIndices() []Index {
	indices := make([]Index, 0, len(l.visible))
	for index := range l.visible {
		indices = append(indices, index)
	}
	sort.Slice(indices, func(i, j int) bool {
		return indices[i].Less(indices[j])
	})
	return indices
}

// RowForIndex returns the live view for the given row, or nil if the row is
// not currently visible.
func (l *ListView) RowForIndex(index Index) Row {
	return l.visible[index]
}

// IndexAtPoint maps a screen coordinate to the row rendered there.
func (l *ListView) IndexAtPoint(x, y int) (Index, bool) {
	innerX, innerY, width, height := l.GetInnerRect()
	if l.layout == nil || x < innerX || x >= innerX+width || y < innerY || y >= innerY+height {
		return Index{}, false
	}
	content := y - innerY + l.offset
	for _, placed := range l.layout.visibleIn(Span{Y: content}) {
		if content >= placed.span.Y && content < placed.span.MaxY() {
			return placed.index, true
		}
	}
	return Index{}, false
}

// SetRowClickedFunc sets a handler invoked when a row is left-clicked.
func (l *ListView) SetRowClickedFunc(handler func(index Index)) *ListView {
	l.clicked = handler
	return l
}

// SetScrollBarVisibility controls when the scrollbar column is drawn.
func (l *ListView) SetScrollBarVisibility(visibility ScrollBarVisibility) *ListView {
	l.scrollBarVisibility = visibility
	l.reconcile()
	return l
}

// SetScrollBarStyle sets the styles of the scrollbar track and thumb.
func (l *ListView) SetScrollBarStyle(track, thumb tcell.Style) *ListView {
	l.scrollBarTrackStyle = track
	l.scrollBarThumbStyle = thumb
	return l
}

func (l *ListView) scrollBarVisible() bool {
	switch l.scrollBarVisibility {
	case ScrollBarNever:
		return false
	case ScrollBarAlways:
		return true
	default:
		_, _, _, height := l.GetInnerRect()
		return l.layout != nil && l.layout.height > height
	}
}

// reconcile brings the set of live views in line with the current visible
// window. Rows that left the window are retired to the pool first, so a
// just-vacated view can immediately serve a row that entered; rows already
// visible keep their view untouched. Finally every visible view is
// positioned from its span. Before the first Reload this is a no-op.
func (l *ListView) reconcile() {
	if l.layout == nil {
		return
	}

	x, y, width, height := l.GetInnerRect()
	window := Span{Y: l.offset, Height: height}
	placedRows := l.layout.visibleIn(window)

	// Retire rows that are no longer in the window.
	inWindow := make(map[Index]struct{}, len(placedRows))
	for _, placed := range placedRows {
		inWindow[placed.index] = struct{}{}
	}
	for index, view := range l.visible {
		if _, ok := inWindow[index]; !ok {
			l.pool.checkin(view)
			delete(l.visible, index)
		}
	}

	rowWidth := width
	if l.scrollBarVisible() {
		rowWidth--
		if rowWidth < 0 {
			rowWidth = 0
		}
	}

	// Fetch views for rows that entered the window and position everything.
	for _, placed := range placedRows {
		view, ok := l.visible[placed.index]
		if !ok {
			if l.factory == nil {
				panic("listview: row " + placed.index.String() + " became visible without a row factory")
			}
			l.dequeueing = true
			view = l.factory(placed.index, l)
			l.dequeueing = false
			if view == nil {
				panic("listview: row factory returned nil for " + placed.index.String())
			}
			view.SetVisible(true)
			l.visible[placed.index] = view
		}
		// SetRect skips identical rectangles, so unchanged rows cost
		// nothing here.
		view.SetRect(x, y+placed.span.Y-l.offset, rowWidth, placed.span.Height)
	}
}

// Draw draws this primitive onto the screen.
func (l *ListView) Draw(screen tcell.Screen) {
	if !l.IsVisible() {
		return
	}
	l.Box.Draw(screen)

	x, y, width, height := l.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	clipped := newClippedScreen(screen, x, y, width, height)
	for _, index := range l.VisibleIndices() {
		l.visible[index].Draw(clipped)
	}

	if l.scrollBarVisible() {
		drawScrollBar(screen, x+width-1, y, height,
			l.ContentHeight(), l.offset,
			l.scrollBarTrackStyle, l.scrollBarThumbStyle)
	}
}

// InputHandler handles a key event and reports whether it was consumed.
// Arrow keys scroll by one row, PgUp/PgDn by one viewport, Home/End to the
// ends of the content.
func (l *ListView) InputHandler(event *tcell.EventKey) bool {
	_, _, _, height := l.GetInnerRect()
	page := max(height, 1)
	switch event.Key() {
	case tcell.KeyUp:
		l.ScrollBy(-l.rowHeight)
	case tcell.KeyDown:
		l.ScrollBy(l.rowHeight)
	case tcell.KeyPgUp:
		l.ScrollBy(-page)
	case tcell.KeyPgDn:
		l.ScrollBy(page)
	case tcell.KeyHome:
		l.ScrollToTop()
	case tcell.KeyEnd:
		l.ScrollToBottom()
	default:
		return false
	}
	return true
}

// MouseHandler handles a mouse event and reports whether it was consumed.
// The wheel scrolls by three cells; a left click on a row fires the
// row-clicked handler.
func (l *ListView) MouseHandler(event *tcell.EventMouse) bool {
	x, y := event.Position()
	if !l.InRect(x, y) {
		return false
	}
	switch event.Buttons() {
	case tcell.WheelUp:
		l.ScrollBy(-3)
	case tcell.WheelDown:
		l.ScrollBy(3)
	case tcell.Button1:
		if index, ok := l.IndexAtPoint(x, y); ok && l.clicked != nil {
			l.clicked(index)
		}
	default:
		return false
	}
	return true
}
