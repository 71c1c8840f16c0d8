package reel

import (
	"github.com/ayn2op/reel/centered"
	"github.com/gdamore/tcell/v3"
	"github.com/mattn/go-runewidth"
)

// ReelItem is one materialized row of a [ReelList]. Items are pooled by the
// list and rebound to other indices as the reel scrolls, so never keep a
// reference to one after the list released it.
type ReelItem struct {
	index    int
	text     string
	rect     centered.Rect
	alpha    float64
	selected bool
}

// Index returns the data index the item is bound to.
func (r *ReelItem) Index() int {
	return r.index
}

// Text returns the bound text.
func (r *ReelItem) Text() string {
	return r.text
}

// Rect returns the rectangle the item was placed at, relative to the list.
func (r *ReelItem) Rect() centered.Rect {
	return r.rect
}

// Alpha returns the opacity in [0, 1].
func (r *ReelItem) Alpha() float64 {
	return r.alpha
}

// SetAlpha sets the opacity, clamped to [0, 1].
func (r *ReelItem) SetAlpha(alpha float64) {
	r.alpha = min(max(alpha, 0), 1)
}

// Selected reports whether the item is the one nearest the center.
func (r *ReelItem) Selected() bool {
	return r.selected
}

// SetSelected marks the item as the one nearest the center.
func (r *ReelItem) SetSelected(selected bool) {
	r.selected = selected
}

func (r *ReelItem) bind(index int, text string) {
	r.index = index
	r.text = text
	r.alpha = 1
	r.selected = false
}

func (r *ReelItem) reset() {
	*r = ReelItem{}
}

// draw prints the text on the middle row of the item. originX and originY
// translate list coordinates to screen coordinates; indent is the number of
// cells left blank before the text.
func (r *ReelItem) draw(screen tcell.Screen, originX, originY, indent int, style tcell.Style) {
	width := r.rect.Right - r.rect.Left - indent
	if width <= 0 || r.rect.Height() <= 0 {
		return
	}
	y := originY + r.rect.Top + (r.rect.Height()-1)/2
	text := runewidth.Truncate(r.text, width, SemigraphicsHorizontalEllipsis)
	Print(screen, text, originX+r.rect.Left+indent, y, width, AlignmentLeft, style)
}
