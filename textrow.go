package listview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// TextRow is a ready-made Row rendering a single line of main text with an
// optional right-aligned secondary column. Applications with richer row
// content implement Row themselves, typically by embedding Box the same
// way.
type TextRow struct {
	*Box

	text      string
	textStyle tcell.Style

	secondary      string
	secondaryStyle tcell.Style
}

// NewTextRow returns an empty text row.
func NewTextRow() *TextRow {
	return &TextRow{
		Box:            NewBox(),
		textStyle:      tcell.StyleDefault,
		secondaryStyle: tcell.StyleDefault.Dim(true),
	}
}

// SetText sets the row's main text.
func (t *TextRow) SetText(text string) *TextRow {
	t.text = text
	return t
}

// Text returns the row's main text.
func (t *TextRow) Text() string {
	return t.text
}

// SetTextStyle sets the style of the main text.
func (t *TextRow) SetTextStyle(style tcell.Style) *TextRow {
	t.textStyle = style
	return t
}

// SetSecondary sets the right-aligned secondary text.
func (t *TextRow) SetSecondary(text string) *TextRow {
	t.secondary = text
	return t
}

// Secondary returns the right-aligned secondary text.
func (t *TextRow) Secondary() string {
	return t.secondary
}

// SetSecondaryStyle sets the style of the secondary text.
func (t *TextRow) SetSecondaryStyle(style tcell.Style) *TextRow {
	t.secondaryStyle = style
	return t
}

// Draw draws this row onto the screen. The main text is truncated at the
// row edge; the secondary text is dropped when it would collide with the
// main text.
func (t *TextRow) Draw(screen tcell.Screen) {
	if !t.IsVisible() {
		return
	}
	t.Box.Draw(screen)

	x, y, width, height := t.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	used := printString(screen, t.text, x, y, width, t.textStyle)

	if t.secondary != "" {
		secondaryWidth := uniseg.StringWidth(t.secondary)
		if start := x + width - secondaryWidth; start > x+used {
			printString(screen, t.secondary, start, y, secondaryWidth, t.secondaryStyle)
		}
	}
}

var _ Row = (*TextRow)(nil)
