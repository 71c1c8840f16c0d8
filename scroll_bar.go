package reel

import "github.com/gdamore/tcell/v3"

// eighths is the thumb resolution: block glyphs fill a cell in 1/8 steps.
const eighths = 8

var (
	// thumbBottom[n-1] fills the lower n eighths of a cell, thumbTop[n-1]
	// the upper n.
	thumbBottom = [eighths]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}
	thumbTop    = [eighths]string{"▔", "🮂", "🮃", "▀", "🮄", "🮅", "🮆", "█"}
)

// ScrollBar is a one cell wide vertical indicator of a reel's scroll
// position.
type ScrollBar struct {
	*Box

	position, maxPosition, viewport int

	autoHide   bool
	track      string
	trackStyle tcell.Style
	thumbStyle tcell.Style
}

// NewScrollBar returns a scroll bar that hides while there is nothing to
// scroll.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:        NewBox(),
		autoHide:   true,
		track:      " ",
		trackStyle: tcell.StyleDefault.Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.GraphicsColor),
	}
}

// SetScroll sets the scroll position within [0, maxPosition] and the height
// of the visible part, in the same units.
func (s *ScrollBar) SetScroll(position, maxPosition, viewport int) *ScrollBar {
	maxPosition, viewport = max(maxPosition, 0), max(viewport, 0)
	position = min(max(position, 0), maxPosition)
	if s.position != position || s.maxPosition != maxPosition || s.viewport != viewport {
		s.position, s.maxPosition, s.viewport = position, maxPosition, viewport
		s.MarkDirty()
	}
	return s
}

// SetAutoHide sets whether the bar is hidden while there is nothing to scroll.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	s.MarkDirty()
	return s
}

// SetStyles sets the styles of the track and the thumb.
func (s *ScrollBar) SetStyles(track, thumb tcell.Style) *ScrollBar {
	s.trackStyle, s.thumbStyle = track, thumb
	s.MarkDirty()
	return s
}

// thumbSpan returns where the thumb starts on a track of cells rows and how
// long it is, both in eighths of a cell. The thumb is at least one cell long.
func thumbSpan(cells, position, maxPosition, viewport int) (start, length int) {
	track := cells * eighths
	if track <= 0 {
		return 0, 0
	}
	if maxPosition <= 0 {
		return 0, track
	}
	viewport = max(viewport, 1)
	length = min(max(track*viewport/(maxPosition+viewport), eighths), track)
	position = min(max(position, 0), maxPosition)
	return (track - length) * position / maxPosition, length
}

// thumbGlyph returns the glyph for cell given the thumb span, and whether the
// thumb covers any of it.
func thumbGlyph(cell, start, length int) (string, bool) {
	top, bottom := cell*eighths, (cell+1)*eighths
	from, to := max(start, top), min(start+length, bottom)
	fill := to - from
	switch {
	case fill <= 0:
		return "", false
	case fill >= eighths:
		return thumbBottom[eighths-1], true
	case from == top:
		return thumbTop[fill-1], true
	default:
		return thumbBottom[fill-1], true
	}
}

// visible reports whether the bar draws anything on a track of cells rows.
func (s *ScrollBar) visible(cells int) bool {
	if cells <= 0 {
		return false
	}
	return !s.autoHide || s.maxPosition > 0
}

// Draw draws the track and the thumb down the inner rectangle.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, _, height := s.GetInnerRect()
	if !s.visible(height) {
		return
	}
	start, length := thumbSpan(height, s.position, s.maxPosition, s.viewport)
	for cell := range height {
		if glyph, ok := thumbGlyph(cell, start, length); ok {
			screen.Put(x, y+cell, glyph, s.thumbStyle)
		} else {
			screen.Put(x, y+cell, s.track, s.trackStyle)
		}
	}
}
