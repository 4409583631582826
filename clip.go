package listview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// clippedScreen restricts all drawing to a rectangle. Row views draw
// through it so a partially visible row cannot paint outside the
// container's inner rectangle.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.HideCursor()
		return
	}
	s.Screen.ShowCursor(x, y)
}

// printString draws text at (x, y), clipping to maxWidth cells, and returns
// the width drawn. A wide grapheme that would straddle the clip edge is
// dropped entirely.
func printString(screen tcell.Screen, text string, x, y, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	width := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := max(uniseg.StringWidth(gr.Str()), 1)
		if width+w > maxWidth {
			break
		}
		screen.SetContent(x+width, y, runes[0], runes[1:], style)
		width += w
	}
	return width
}
