package listview

import "github.com/gdamore/tcell/v2"

// Box implements the geometry and chrome shared by all widgets in this
// package: a rectangle, optional border and title, padding, a background,
// and visibility and focus flags. Box itself draws no content; widgets
// embed it and draw inside its inner rectangle.
type Box struct {
	// The position of the rect.
	x, y, width, height int

	// Border padding.
	paddingTop, paddingBottom, paddingLeft, paddingRight int

	backgroundColor tcell.Color

	border      bool
	borderStyle tcell.Style

	title      string
	titleStyle tcell.Style

	// Hidden boxes draw nothing. The reuse pool hides idle row views.
	visible bool

	hasFocus bool
}

// NewBox returns a visible Box without a border.
func NewBox() *Box {
	return &Box{
		width:           15,
		height:          10,
		visible:         true,
		backgroundColor: tcell.ColorDefault,
		borderStyle:     tcell.StyleDefault,
		titleStyle:      tcell.StyleDefault,
	}
}

// GetRect returns the current position of the rectangle, x, y, width, and
// height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the position of the inner rectangle (x, y, width,
// height), without the border and without any padding. Width and height
// values will clamp to 0 and thus never be negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	x, y, width, height := b.GetRect()
	if b.border {
		x++
		y++
		width -= 2
		height -= 2
	}
	x += b.paddingLeft
	y += b.paddingTop
	width -= b.paddingLeft + b.paddingRight
	height -= b.paddingTop + b.paddingBottom
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return x, y, width, height
}

// SetRect sets a new position of the primitive. Setting an identical
// rectangle is a no-op.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x = x
		b.y = y
		b.width = width
		b.height = height
	}
}

// SetBorderPadding sets the size of the borders around the box content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
	return b
}

// SetBackgroundColor sets the box's background color.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.backgroundColor = color
	return b
}

// GetBackgroundColor returns the box's background color.
func (b *Box) GetBackgroundColor() tcell.Color {
	return b.backgroundColor
}

// SetBorder sets whether a single-line border is drawn around the box.
func (b *Box) SetBorder(show bool) *Box {
	b.border = show
	return b
}

// SetBorderStyle sets the box's border style.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	b.borderStyle = style
	return b
}

// GetTitle returns the box's current title.
func (b *Box) GetTitle() string {
	return b.title
}

// SetTitle sets the box's title, shown in the top border.
func (b *Box) SetTitle(title string) *Box {
	b.title = title
	return b
}

// SetTitleStyle sets the style of the title.
func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	b.titleStyle = style
	return b
}

// SetVisible sets whether the box is drawn.
func (b *Box) SetVisible(visible bool) {
	b.visible = visible
}

// IsVisible returns whether the box is drawn.
func (b *Box) IsVisible() bool {
	return b.visible
}

// InRect returns true if the given coordinate is within the bounds of the
// box's rectangle.
func (b *Box) InRect(x, y int) bool {
	rectX, rectY, width, height := b.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// Draw draws the box's background, border, and title onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	if !b.visible || b.width <= 0 || b.height <= 0 {
		return
	}

	// Fill background.
	background := tcell.StyleDefault.Background(b.backgroundColor)
	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.SetContent(x, y, ' ', nil, background)
		}
	}

	// Draw border.
	if b.border && b.width >= 2 && b.height >= 2 {
		for x := b.x + 1; x < b.x+b.width-1; x++ {
			screen.SetContent(x, b.y, tcell.RuneHLine, nil, b.borderStyle)
			screen.SetContent(x, b.y+b.height-1, tcell.RuneHLine, nil, b.borderStyle)
		}
		for y := b.y + 1; y < b.y+b.height-1; y++ {
			screen.SetContent(b.x, y, tcell.RuneVLine, nil, b.borderStyle)
			screen.SetContent(b.x+b.width-1, y, tcell.RuneVLine, nil, b.borderStyle)
		}
		screen.SetContent(b.x, b.y, tcell.RuneULCorner, nil, b.borderStyle)
		screen.SetContent(b.x+b.width-1, b.y, tcell.RuneURCorner, nil, b.borderStyle)
		screen.SetContent(b.x, b.y+b.height-1, tcell.RuneLLCorner, nil, b.borderStyle)
		screen.SetContent(b.x+b.width-1, b.y+b.height-1, tcell.RuneLRCorner, nil, b.borderStyle)
	}

	// Draw title.
	if b.title != "" && b.width >= 4 {
		printString(screen, b.title, b.x+1, b.y, b.width-2, b.titleStyle)
	}
}

// Focus is called when this box receives focus.
func (b *Box) Focus() {
	b.hasFocus = true
}

// Blur is called when this box loses focus.
func (b *Box) Blur() {
	b.hasFocus = false
}

// HasFocus returns whether or not this box has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}
