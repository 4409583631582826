package listview

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

const testKind = Kind("test")

// newLoadedList returns a list of the given viewport size with every row
// populated as a TextRow carrying its index.
func newLoadedList(t *testing.T, dims []int, rowHeight, width, height int) *ListView {
	t.Helper()
	list := NewListView()
	list.SetRowHeight(rowHeight)
	list.RegisterKind(testKind, func() Row { return NewTextRow() })
	list.SetRect(0, 0, width, height)
	list.Reload(dims, func(index Index, lv *ListView) Row {
		row := lv.DequeueRow(testKind, index).(*TextRow)
		row.SetText(index.String())
		return row
	})
	return list
}

// expectedVisible recomputes the visible set directly from the stacking
// rule and the intersection policy, independently of the layout table.
func expectedVisible(dims []int, rowHeight, offset, height int) []Index {
	window := Span{Y: offset, Height: height}
	indices := []Index{}
	y := 0
	for section, count := range dims {
		for row := 0; row < count; row++ {
			if NewSpan(y, rowHeight).Intersects(window) {
				indices = append(indices, Index{section, row})
			}
			y += rowHeight
		}
	}
	return indices
}

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	sim.SetSize(width, height)
	t.Cleanup(sim.Fini)
	return sim
}

func screenLine(t *testing.T, sim tcell.SimulationScreen, y int) string {
	t.Helper()
	cells, width, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		for _, r := range cells[y*width+x].Runes {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestReload(t *testing.T) {
	t.Run("PopulatesVisibleWindow", func(t *testing.T) {
		list := newLoadedList(t, []int{3, 2}, 2, 20, 20)
		if got := list.ContentHeight(); got != 10 {
			t.Errorf("ContentHeight() = %d, want 10", got)
		}
		want := []Index{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}}
		if got := list.VisibleIndices(); !reflect.DeepEqual(got, want) {
			t.Errorf("VisibleIndices() = %v, want %v", got, want)
		}
	})

	t.Run("ResetsScrollToTop", func(t *testing.T) {
		list := newLoadedList(t, []int{50}, 1, 20, 10)
		list.ScrollTo(30)
		list.Reload([]int{50}, list.factory)
		if got := list.GetScrollOffset(); got != 0 {
			t.Errorf("offset after reload = %d, want 0", got)
		}
	})

	t.Run("RetiresPreviousRows", func(t *testing.T) {
		list := newLoadedList(t, []int{4}, 1, 20, 10)
		old := make([]Row, 0, 4)
		for _, index := range list.VisibleIndices() {
			old = append(old, list.RowForIndex(index))
		}

		list.Reload([]int{3, 2}, list.factory)

		// The five new rows must be drawn from the four retired views plus
		// exactly one fresh construction.
		recycled := 0
		for _, index := range list.VisibleIndices() {
			view := list.RowForIndex(index)
			for _, previous := range old {
				if view == previous {
					recycled++
				}
			}
		}
		if recycled != 4 {
			t.Errorf("%d of the old views were recycled, want 4", recycled)
		}
	})

	t.Run("NegativeCountPanics", func(t *testing.T) {
		list := NewListView()
		list.RegisterKind(testKind, func() Row { return NewTextRow() })
		expectPanic(t, func() {
			list.Reload([]int{-1}, func(index Index, lv *ListView) Row {
				return lv.DequeueRow(testKind, index)
			})
		})
	})
}

func TestClear(t *testing.T) {
	list := newLoadedList(t, []int{4}, 1, 20, 10)
	views := make([]Row, 0, 4)
	for _, index := range list.VisibleIndices() {
		views = append(views, list.RowForIndex(index))
	}

	list.Clear()

	if got := list.VisibleIndices(); len(got) != 0 {
		t.Errorf("tracked rows after Clear = %v, want none", got)
	}
	if got := list.ContentHeight(); got != 0 {
		t.Errorf("ContentHeight() after Clear = %d, want 0", got)
	}
	for i, view := range views {
		if view.IsVisible() {
			t.Errorf("view %d is still visible after Clear", i)
		}
	}
}

func TestReconcile(t *testing.T) {
	dims := []int{30, 20}

	t.Run("TrackedMatchesWindow", func(t *testing.T) {
		list := newLoadedList(t, dims, 1, 20, 10)
		for _, offset := range []int{0, 1, 7, 25, 40, 0, 39} {
			list.ScrollTo(offset)
			want := expectedVisible(dims, 1, list.GetScrollOffset(), 10)
			if got := list.VisibleIndices(); !reflect.DeepEqual(got, want) {
				t.Fatalf("offset %d: VisibleIndices() = %v, want %v", offset, got, want)
			}
		}
	})

	t.Run("NoSharedViews", func(t *testing.T) {
		list := newLoadedList(t, dims, 1, 20, 10)
		for _, offset := range []int{0, 5, 6, 35, 12} {
			list.ScrollTo(offset)
			seen := make(map[Row]Index)
			for _, index := range list.VisibleIndices() {
				view := list.RowForIndex(index)
				if previous, ok := seen[view]; ok {
					t.Fatalf("offset %d: rows %v and %v share a view", offset, previous, index)
				}
				seen[view] = index
			}
		}
	})

	t.Run("VisibleViewsAreShown", func(t *testing.T) {
		list := newLoadedList(t, dims, 1, 20, 10)
		for _, offset := range []int{0, 17, 44, 3} {
			list.ScrollTo(offset)
			for _, index := range list.VisibleIndices() {
				if !list.RowForIndex(index).IsVisible() {
					t.Fatalf("offset %d: view for %v is hidden", offset, index)
				}
			}
		}
	})

	t.Run("StableRowKeepsItsView", func(t *testing.T) {
		// Widening the window must not recycle a row that stayed visible.
		list := newLoadedList(t, []int{2}, 2, 20, 1)
		if want := []Index{{0, 0}}; !reflect.DeepEqual(list.VisibleIndices(), want) {
			t.Fatalf("VisibleIndices() = %v, want %v", list.VisibleIndices(), want)
		}
		view := list.RowForIndex(Index{0, 0})

		list.SetRect(0, 0, 20, 3)
		if want := []Index{{0, 0}, {0, 1}}; !reflect.DeepEqual(list.VisibleIndices(), want) {
			t.Fatalf("VisibleIndices() = %v, want %v", list.VisibleIndices(), want)
		}
		if list.RowForIndex(Index{0, 0}) != view {
			t.Error("row (0, 0) was handed a different view instance")
		}
	})

	t.Run("RetiredViewIsReusedLIFO", func(t *testing.T) {
		// Scrolling two row heights retires row 0; the next row of the
		// same kind to appear must receive that exact instance.
		list := newLoadedList(t, []int{10}, 2, 20, 2)
		first := list.RowForIndex(Index{0, 0})
		second := list.RowForIndex(Index{0, 1})

		list.ScrollTo(4)

		if got := list.RowForIndex(Index{0, 2}); got != first {
			t.Error("row (0, 2) did not receive row (0, 0)'s retired view")
		}
		if got := list.RowForIndex(Index{0, 3}); got == first || got == second {
			t.Error("row (0, 3) should have been constructed fresh")
		}
	})
}

func TestInertBeforeReload(t *testing.T) {
	list := NewListView()
	list.SetRect(0, 0, 20, 10)
	list.ScrollTo(5)
	list.InputHandler(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))

	sim := newSimScreen(t, 20, 10)
	list.Draw(sim)
	sim.Show()

	if got := list.VisibleIndices(); len(got) != 0 {
		t.Errorf("tracked rows before any Reload = %v, want none", got)
	}
	if got := list.GetScrollOffset(); got != 0 {
		t.Errorf("offset before any Reload = %d, want 0", got)
	}
}

func TestDequeueRowOutsideFactory(t *testing.T) {
	list := newLoadedList(t, []int{5}, 1, 20, 10)
	expectPanic(t, func() { list.DequeueRow(testKind, Index{0, 0}) })
}

func TestScrolling(t *testing.T) {
	t.Run("Clamped", func(t *testing.T) {
		list := newLoadedList(t, []int{50}, 1, 20, 10)
		list.ScrollTo(-5)
		if got := list.GetScrollOffset(); got != 0 {
			t.Errorf("offset = %d, want 0", got)
		}
		list.ScrollTo(1000)
		if got := list.GetScrollOffset(); got != 40 {
			t.Errorf("offset = %d, want 40", got)
		}
	})

	t.Run("Keys", func(t *testing.T) {
		list := newLoadedList(t, []int{50}, 1, 20, 10)
		presses := []struct {
			key    tcell.Key
			offset int
		}{
			{tcell.KeyDown, 1},
			{tcell.KeyDown, 2},
			{tcell.KeyUp, 1},
			{tcell.KeyPgDn, 11},
			{tcell.KeyEnd, 40},
			{tcell.KeyPgUp, 30},
			{tcell.KeyHome, 0},
		}
		for _, press := range presses {
			if !list.InputHandler(tcell.NewEventKey(press.key, 0, tcell.ModNone)) {
				t.Fatalf("key %v was not consumed", press.key)
			}
			if got := list.GetScrollOffset(); got != press.offset {
				t.Fatalf("key %v: offset = %d, want %d", press.key, got, press.offset)
			}
		}
		if list.InputHandler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
			t.Error("Enter should not be consumed")
		}
	})

	t.Run("Wheel", func(t *testing.T) {
		list := newLoadedList(t, []int{50}, 1, 20, 10)
		list.MouseHandler(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModNone))
		if got := list.GetScrollOffset(); got != 3 {
			t.Errorf("offset after wheel down = %d, want 3", got)
		}
		list.MouseHandler(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
		if got := list.GetScrollOffset(); got != 0 {
			t.Errorf("offset after wheel up = %d, want 0", got)
		}
		if list.MouseHandler(tcell.NewEventMouse(50, 50, tcell.WheelDown, tcell.ModNone)) {
			t.Error("wheel outside the list should not be consumed")
		}
	})

	t.Run("Click", func(t *testing.T) {
		list := newLoadedList(t, []int{30, 20}, 1, 20, 10)
		var clicked []Index
		list.SetRowClickedFunc(func(index Index) {
			clicked = append(clicked, index)
		})

		list.MouseHandler(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
		list.ScrollTo(28)
		list.MouseHandler(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))

		want := []Index{{0, 4}, {1, 2}}
		if !reflect.DeepEqual(clicked, want) {
			t.Errorf("clicked = %v, want %v", clicked, want)
		}
	})
}

func TestDraw(t *testing.T) {
	t.Run("RendersVisibleRows", func(t *testing.T) {
		sim := newSimScreen(t, 20, 6)
		list := newLoadedList(t, []int{10}, 1, 20, 6)
		list.Draw(sim)
		sim.Show()

		if line := screenLine(t, sim, 0); !strings.Contains(line, "(0, 0)") {
			t.Errorf("top line = %q, want row (0, 0)", line)
		}
		if line := screenLine(t, sim, 5); !strings.Contains(line, "(0, 5)") {
			t.Errorf("bottom line = %q, want row (0, 5)", line)
		}
	})

	t.Run("RendersAfterScroll", func(t *testing.T) {
		sim := newSimScreen(t, 20, 6)
		list := newLoadedList(t, []int{10}, 1, 20, 6)
		list.ScrollToBottom()
		list.Draw(sim)
		sim.Show()

		if line := screenLine(t, sim, 0); !strings.Contains(line, "(0, 4)") {
			t.Errorf("top line = %q, want row (0, 4)", line)
		}
		if line := screenLine(t, sim, 5); !strings.Contains(line, "(0, 9)") {
			t.Errorf("bottom line = %q, want row (0, 9)", line)
		}
	})

	t.Run("ClipsRowsToBounds", func(t *testing.T) {
		// With two-cell rows and an odd viewport height, the last visible
		// row is cut in half rather than painted below the list.
		sim := newSimScreen(t, 20, 8)
		list := newLoadedList(t, []int{10}, 2, 20, 5)
		list.Draw(sim)
		sim.Show()

		if line := screenLine(t, sim, 4); !strings.Contains(line, "(0, 2)") {
			t.Errorf("line 4 = %q, want the top half of row (0, 2)", line)
		}
		for y := 5; y < 8; y++ {
			if line := screenLine(t, sim, y); strings.Contains(line, "(0,") {
				t.Errorf("line %d = %q, drawn outside the list bounds", y, line)
			}
		}
	})

	t.Run("ScrollBarColumn", func(t *testing.T) {
		sim := newSimScreen(t, 20, 6)
		list := newLoadedList(t, []int{30}, 1, 20, 6)
		list.Draw(sim)
		sim.Show()

		cells, width, _ := sim.GetContents()
		thumb, track := 0, 0
		for y := 0; y < 6; y++ {
			switch cells[y*width+19].Runes[0] {
			case scrollBarThumbRune:
				thumb++
			case scrollBarTrackRune:
				track++
			}
		}
		if thumb == 0 || thumb+track != 6 {
			t.Errorf("scrollbar column has %d thumb and %d track cells", thumb, track)
		}
	})

	t.Run("NoScrollBarWhenContentFits", func(t *testing.T) {
		sim := newSimScreen(t, 20, 10)
		list := newLoadedList(t, []int{4}, 1, 20, 10)
		list.Draw(sim)
		sim.Show()

		cells, width, _ := sim.GetContents()
		for y := 0; y < 10; y++ {
			if r := cells[y*width+19].Runes[0]; r == scrollBarThumbRune || r == scrollBarTrackRune {
				t.Fatalf("unexpected scrollbar cell at y=%d", y)
			}
		}
	})
}
