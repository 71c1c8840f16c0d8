package reel

import "github.com/rivo/uniseg"

// grapheme is one user-perceived character of a string.
type grapheme struct {
	text   string
	offset int // byte offset in the source string
	width  int // cells
}

// graphemes splits text into grapheme clusters along with their widths.
func graphemes(text string) []grapheme {
	var (
		out    []grapheme
		offset int
		state  = -1
	)
	for len(text) > 0 {
		var (
			cluster    string
			boundaries int
		)
		cluster, text, boundaries, state = uniseg.StepString(text, state)
		out = append(out, grapheme{
			text:   cluster,
			offset: offset,
			width:  boundaries >> uniseg.ShiftWidth,
		})
		offset += len(cluster)
	}
	return out
}

// StringWidth returns the number of cells text occupies on screen.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}
