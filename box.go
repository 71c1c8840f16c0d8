package reel

import (
	"sync/atomic"

	"github.com/ayn2op/reel/centered"
	"github.com/gdamore/tcell/v3"
)

// Box is the base every primitive embeds: a rectangle with a background, and
// optionally borders and a title. Embedding primitives draw their content
// inside the inner rectangle.
type Box struct {
	x, y, width, height int
	padding             centered.Insets

	background tcell.Color

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	// Containers that delegate focus to a child leave this unset.
	hasFocus bool

	dirty atomic.Bool
	// dirtyParent is marked dirty when this box turns dirty, so containers
	// learn about changes without scanning their children.
	dirtyParent atomic.Pointer[Box]
}

// NewBox returns a Box without borders.
func NewBox() *Box {
	b := &Box{
		width:          15,
		height:         10,
		background:     Styles.PrimitiveBackgroundColor,
		borderSet:      BorderSetPlain(),
		borderStyle:    tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		titleStyle:     tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment: AlignmentCenter,
	}
	b.dirty.Store(true)
	return b
}

// setField assigns v to *field and marks b dirty when the value changed.
func setField[T comparable](b *Box, field *T, v T) *Box {
	if *field != v {
		*field = v
		b.MarkDirty()
	}
	return b
}

// SetPadding sets the space kept free between the borders and the content.
func (b *Box) SetPadding(padding centered.Insets) *Box {
	return setField(b, &b.padding, padding)
}

// GetRect returns the position and size of the box.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// SetRect moves and resizes the box. Containers and the application call it
// before every draw.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x, b.y, b.width, b.height = x, y, width, height
		b.MarkDirty()
	}
}

// GetInnerRect returns the rectangle left for content once borders, the
// title row and padding are taken away. Width and height never go negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	x, y, width, height := b.x, b.y, b.width, b.height
	if b.title != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}
	if b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x++
		width--
	}
	if b.borders.Has(BordersRight) {
		width--
	}
	x += b.padding.Left
	y += b.padding.Top
	width -= b.padding.Left + b.padding.Right
	height -= b.padding.Top + b.padding.Bottom
	return x, y, max(width, 0), max(height, 0)
}

// InRect reports whether (x, y) lies inside the box.
func (b *Box) InRect(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

// IsDirty reports whether the box changed since it was last drawn.
func (b *Box) IsDirty() bool {
	return b.dirty.Load()
}

// MarkDirty flags the box, and its dirty parent, for a redraw.
func (b *Box) MarkDirty() {
	if b.dirty.Swap(true) {
		return
	}
	if parent := b.dirtyParent.Load(); parent != nil {
		parent.MarkDirty()
	}
}

// MarkClean clears the dirty flag.
func (b *Box) MarkClean() {
	b.dirty.Store(false)
}

func (b *Box) setDirtyParent(parent *Box) {
	if parent != nil && parent != b {
		b.dirtyParent.Store(parent)
	}
}

// bindDirtyParent makes parent dirty whenever child turns dirty, for
// children that embed a Box.
func bindDirtyParent(child Primitive, parent *Box) {
	if child == nil || parent == nil {
		return
	}
	if setter, ok := child.(interface{ setDirtyParent(*Box) }); ok {
		setter.setDirtyParent(parent)
	}
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// PasteHandler ignores pasted text.
func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler consumes left button presses inside the box so they do not
// fall through to primitives drawn underneath.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, ConsumeEventCommand{}
	}
	return nil, nil
}

// GetBackgroundColor returns the background color.
func (b *Box) GetBackgroundColor() tcell.Color {
	return b.background
}

// SetBackgroundColor sets the background color, borders included.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.borderStyle = b.borderStyle.Background(color)
	return setField(b, &b.background, color)
}

// SetBorders sets which borders to draw.
func (b *Box) SetBorders(borders Borders) *Box {
	return setField(b, &b.borders, borders)
}

// SetBorderSet sets the glyphs borders are drawn with.
func (b *Box) SetBorderSet(set BorderSet) *Box {
	return setField(b, &b.borderSet, set)
}

// SetBorderStyle sets the style borders are drawn with.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	return setField(b, &b.borderStyle, style)
}

// SetTitle sets the text shown in the top row.
func (b *Box) SetTitle(title string) *Box {
	return setField(b, &b.title, title)
}

// SetTitleStyle sets the style of the title.
func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	return setField(b, &b.titleStyle, style)
}

// SetTitleAlignment sets the alignment of the title.
func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	return setField(b, &b.titleAlignment, alignment)
}

// Draw draws the box.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the box of primitive p, which embeds it. Primitives
// call it first in their own Draw and then fill the inner rectangle.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	fill := tcell.StyleDefault.Background(b.background)
	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.Put(x, y, " ", fill)
		}
	}
	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		b.drawBorders(screen)
	}
	if b.width >= 4 {
		b.drawTitle(screen)
	}
}

func (b *Box) drawBorders(screen tcell.Screen) {
	left, right := b.x, b.x+b.width-1
	top, bottom := b.y, b.y+b.height-1
	set, style := b.borderSet, b.borderStyle

	for x := left + 1; x < right; x++ {
		if b.borders.Has(BordersTop) {
			screen.Put(x, top, set.Top, style)
		}
		if b.borders.Has(BordersBottom) {
			screen.Put(x, bottom, set.Bottom, style)
		}
	}
	for y := top + 1; y < bottom; y++ {
		if b.borders.Has(BordersLeft) {
			screen.Put(left, y, set.Left, style)
		}
		if b.borders.Has(BordersRight) {
			screen.Put(right, y, set.Right, style)
		}
	}

	corners := []struct {
		flag  Borders
		x, y  int
		glyph string
	}{
		{BordersTop | BordersLeft, left, top, set.TopLeft},
		{BordersTop | BordersRight, right, top, set.TopRight},
		{BordersBottom | BordersLeft, left, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, c := range corners {
		if b.borders.Has(c.flag) {
			screen.Put(c.x, c.y, c.glyph, style)
		}
	}
}

// drawTitle prints the title on the top row and replaces its last visible
// cell with an ellipsis when it does not fit.
func (b *Box) drawTitle(screen tcell.Screen) {
	if b.title == "" {
		return
	}
	p := printText(screen, b.title, b.x+1, b.y, b.width-2, b.titleStyle, printOptions{align: b.titleAlignment, keepBackground: true})
	if p.end == p.start || p.end-p.start >= len(b.title) {
		return
	}
	x := b.x + b.width - 2
	if b.titleAlignment == AlignmentRight {
		x = b.x + 1
	}
	_, existing, _ := screen.Get(x, b.y)
	screen.Put(x, b.y, SemigraphicsHorizontalEllipsis, existing)
}

// Focus is called when the box itself receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	if !b.hasFocus {
		b.hasFocus = true
		b.MarkDirty()
	}
}

// Blur is called when the box itself loses focus.
func (b *Box) Blur() {
	if b.hasFocus {
		b.hasFocus = false
		b.MarkDirty()
	}
}

// HasFocus reports whether the box has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}
