package reel

// SemigraphicsHorizontalEllipsis marks text cut short.
const SemigraphicsHorizontalEllipsis = "…"

// Borders is a set of box sides.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll          = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether every side in flag is set.
func (b Borders) Has(flag Borders) bool {
	return b&flag == flag
}

// BorderSet holds the glyphs a box border is drawn with.
type BorderSet struct {
	Top, Bottom, Left, Right string

	TopLeft, TopRight, BottomLeft, BottomRight string
}

// BorderSetPlain draws light lines with square corners.
func BorderSetPlain() BorderSet {
	return BorderSet{
		Top: "─", Bottom: "─", Left: "│", Right: "│",
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
	}
}

// BorderSetRound draws light lines with arcs for corners.
func BorderSetRound() BorderSet {
	b := BorderSetPlain()
	b.TopLeft, b.TopRight, b.BottomLeft, b.BottomRight = "╭", "╮", "╰", "╯"
	return b
}
