package listview

import "github.com/gdamore/tcell/v2"

// ScrollBarVisibility controls when the scrollbar column is drawn.
type ScrollBarVisibility uint8

const (
	// ScrollBarAuto shows the scrollbar only when the content overflows
	// the viewport.
	ScrollBarAuto ScrollBarVisibility = iota
	// ScrollBarAlways always reserves and draws the scrollbar column.
	ScrollBarAlways
	// ScrollBarNever disables the scrollbar.
	ScrollBarNever
)

const (
	scrollBarTrackRune = '│'
	scrollBarThumbRune = '█'
)

// drawScrollBar draws a one-column vertical scrollbar at x: a track with a
// proportional thumb, at least one cell tall, mapped from the content
// length and scroll offset. The viewport length equals height.
func drawScrollBar(screen tcell.Screen, x, y, height, contentLen, offset int, trackStyle, thumbStyle tcell.Style) {
	if height <= 0 || contentLen <= 0 {
		return
	}

	thumbLen := height * height / contentLen
	if thumbLen < 1 {
		thumbLen = 1
	}
	if thumbLen > height {
		thumbLen = height
	}

	thumbY := 0
	if maxOffset := contentLen - height; maxOffset > 0 {
		thumbY = offset * (height - thumbLen) / maxOffset
	}

	for row := 0; row < height; row++ {
		ch, style := scrollBarTrackRune, trackStyle
		if row >= thumbY && row < thumbY+thumbLen {
			ch, style = scrollBarThumbRune, thumbStyle
		}
		screen.SetContent(x, y+row, ch, nil, style)
	}
}
