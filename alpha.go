package reel

import (
	"math"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultAlphaFactor is how fast items fade with their distance from the
// center. With 1.2 an item is fully faded a little before the viewport edge.
const DefaultAlphaFactor = 1.2

// AlphaTransformer fades items as they move away from the center:
// alpha = max(1 - Factor*|offset|, 0).
type AlphaTransformer struct {
	Factor float64
}

// NewAlphaTransformer returns a transformer with the given factor. A
// non-positive factor selects DefaultAlphaFactor.
func NewAlphaTransformer(factor float64) *AlphaTransformer {
	if factor <= 0 {
		factor = DefaultAlphaFactor
	}
	return &AlphaTransformer{Factor: factor}
}

// Apply sets the alpha of item.
func (t *AlphaTransformer) Apply(item *ReelItem, index, slot int, offset float64) {
	item.SetAlpha(math.Max(1-t.Factor*math.Abs(offset), 0))
}

// fade returns the style of text drawn with the given alpha over bg. The
// foreground is blended towards bg in L*a*b* space. Terminals without usable
// RGB values for either color fall back to dimming.
func fade(style tcell.Style, bg tcell.Color, alpha float64) tcell.Style {
	if alpha >= 1 {
		return style
	}
	to, okFg := toColorful(style.GetForeground())
	from, okBg := toColorful(bg)
	if !okFg || !okBg {
		return style.Dim(alpha < 0.5)
	}
	r, g, b := from.BlendLab(to, alpha).Clamped().RGB255()
	return style.Foreground(color.NewRGBColor(int32(r), int32(g), int32(b)))
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	if c == tcell.ColorDefault {
		return colorful.Color{}, false
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}
