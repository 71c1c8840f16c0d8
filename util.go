package reel

import "github.com/gdamore/tcell/v3"

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// printOptions tune printText.
type printOptions struct {
	align Alignment
	// skip is the number of cells cut from the start of the text.
	skip int
	// keepBackground keeps the background already on screen and ignores the
	// style's.
	keepBackground bool
}

// printed is the part of a string that made it onto the screen: the byte
// range [start, end) of the text and the cells it covers.
type printed struct {
	start, end int
	width      int
}

// Print prints text on row y within [x, x+maxWidth) and returns the number of
// cells used. Text that does not fit is cut on the side alignment dictates.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) int {
	return printText(screen, text, x, y, maxWidth, style, printOptions{align: alignment}).width
}

func printText(screen tcell.Screen, text string, x, y, maxWidth int, style tcell.Style, opts printOptions) printed {
	screenWidth, screenHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= screenHeight {
		return printed{}
	}

	clusters := graphemes(text)
	for opts.skip > 0 && len(clusters) > 0 {
		opts.skip -= clusters[0].width
		clusters = clusters[1:]
	}
	textWidth := 0
	for _, g := range clusters {
		textWidth += g.width
	}

	// Right and center alignment cut from the left, then print left aligned.
	switch opts.align {
	case AlignmentRight:
		for len(clusters) > 0 && textWidth > maxWidth {
			textWidth -= clusters[0].width
			clusters = clusters[1:]
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		for cut := (textWidth - maxWidth) / 2; len(clusters) > 0 && cut > 0; clusters = clusters[1:] {
			cut -= clusters[0].width
			textWidth -= clusters[0].width
		}
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	p := printed{start: len(text), end: len(text)}
	if len(clusters) > 0 {
		p.start, p.end = clusters[0].offset, clusters[0].offset
	}
	right := min(x+maxWidth, screenWidth)
	for _, g := range clusters {
		if x >= right {
			break
		}
		if g.width > 0 {
			cellStyle := style
			if opts.keepBackground {
				_, existing, _ := screen.Get(x, y)
				cellStyle = cellStyle.Background(existing.GetBackground())
			}
			// Fill the trailing cells of wide clusters first so the cluster
			// itself is not overwritten.
			for offset := g.width - 1; offset > 0; offset-- {
				screen.Put(x+offset, y, " ", cellStyle)
			}
			screen.Put(x, y, g.text, cellStyle)
		}
		x += g.width
		p.end += len(g.text)
		p.width += g.width
	}
	return p
}
