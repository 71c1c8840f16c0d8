package centered

// Insets is the padding between a host's outer rectangle and the region the
// engine lays items out in.
type Insets struct {
	Top, Bottom, Left, Right int
}

// Viewport is the visible region in engine coordinates.
type Viewport struct {
	Left, Top, Right, Bottom int
}

// NewViewport derives the viewport of a host with the given size and padding.
// Negative extents collapse to an empty viewport.
func NewViewport(width, height int, padding Insets) Viewport {
	v := Viewport{
		Left:   padding.Left,
		Top:    padding.Top,
		Right:  width - padding.Right,
		Bottom: height - padding.Bottom,
	}
	if v.Right < v.Left {
		v.Right = v.Left
	}
	if v.Bottom < v.Top {
		v.Bottom = v.Top
	}
	return v
}

// CenterY returns the vertical center of the viewport.
func (v Viewport) CenterY() int {
	return (v.Top + v.Bottom) / 2
}

// Height returns the height of the viewport.
func (v Viewport) Height() int {
	return v.Bottom - v.Top
}

// Width returns the width of the viewport.
func (v Viewport) Width() int {
	return v.Right - v.Left
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width() <= 0 || v.Height() <= 0
}

// Rect is the rectangle an item was placed at.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Height returns the height of the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() int {
	return (r.Top + r.Bottom) / 2
}

// Intersects reports whether r touches v. Edges count as touching.
func (r Rect) Intersects(v Viewport) bool {
	return r.Right >= v.Left &&
		r.Left <= v.Right &&
		r.Bottom >= v.Top &&
		r.Top <= v.Bottom
}
