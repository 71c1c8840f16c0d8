// Package help renders a one-line summary of key bindings.
package help

import (
	"cmp"
	"strings"

	"github.com/ayn2op/reel"
	"github.com/ayn2op/reel/keybind"
	"github.com/gdamore/tcell/v3"
)

// KeyMap is anything that can list the bindings worth showing in one line.
type KeyMap interface {
	ShortHelp() []keybind.Keybind
}

// Help draws the short help of a key map on the first row of its inner
// rectangle. Bindings that do not fit are replaced by an ellipsis.
type Help struct {
	*reel.Box

	keyMap    KeyMap
	styles    Styles
	separator string
	ellipsis  string
}

func New() *Help {
	return &Help{
		Box:       reel.NewBox(),
		styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  reel.SemigraphicsHorizontalEllipsis,
	}
}

func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetSeparator sets the text placed between bindings. Empty means a space.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	h.MarkDirty()
	return h
}

// SetEllipsis sets the marker shown when bindings were left out. Empty turns
// the marker off.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	h.MarkDirty()
	return h
}

func (h *Help) SetStyles(styles Styles) *Help {
	h.styles = styles
	h.MarkDirty()
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	if height <= 0 || width <= 0 {
		return
	}
	for _, s := range h.layout(width) {
		printed := reel.Print(screen, s.text, x, y, width, reel.AlignmentLeft, s.style)
		x += printed
		width -= printed
		if width <= 0 {
			return
		}
	}
}

// Line renders the short help as plain text at most maxWidth cells wide. A
// maxWidth of 0 means no limit.
func (h *Help) Line(maxWidth int) string {
	var b strings.Builder
	for _, s := range h.layout(maxWidth) {
		b.WriteString(s.text)
	}
	return b.String()
}

type segment struct {
	text  string
	style tcell.Style
}

// layout returns the whole bindings that fit into maxWidth, followed by the
// ellipsis when some were left out and it fits as well.
func (h *Help) layout(maxWidth int) []segment {
	if h.keyMap == nil {
		return nil
	}

	separator := segment{text: cmp.Or(h.separator, " "), style: h.styles.SeparatorStyle}
	var (
		line  []segment
		width int
	)
	for _, kb := range h.keyMap.ShortHelp() {
		item := h.item(kb)
		if item == nil {
			continue
		}
		if len(line) > 0 {
			item = append([]segment{separator}, item...)
		}
		itemWidth := segmentsWidth(item)
		if maxWidth > 0 && width+itemWidth > maxWidth {
			return h.withEllipsis(line, width, maxWidth)
		}
		line = append(line, item...)
		width += itemWidth
	}
	return line
}

// withEllipsis appends the ellipsis to a non-empty line when it fits whole.
func (h *Help) withEllipsis(line []segment, width, maxWidth int) []segment {
	if len(line) == 0 || h.ellipsis == "" {
		return line
	}
	tail := segment{text: " " + h.ellipsis, style: h.styles.EllipsisStyle}
	if width+reel.StringWidth(tail.text) > maxWidth {
		return line
	}
	return append(line, tail)
}

// item returns the segments of one enabled binding, or nil when it has
// nothing to show.
func (h *Help) item(kb keybind.Keybind) []segment {
	if !kb.Enabled() {
		return nil
	}
	help := kb.Help()
	key := segment{text: help.Key, style: h.styles.KeyStyle}
	desc := segment{text: help.Desc, style: h.styles.DescStyle}
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return []segment{desc}
	case help.Desc == "":
		return []segment{key}
	}
	return []segment{key, {text: " ", style: h.styles.DescStyle}, desc}
}

func segmentsWidth(segments []segment) int {
	width := 0
	for _, s := range segments {
		width += reel.StringWidth(s.text)
	}
	return width
}
