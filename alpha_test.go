package reel

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaTransformerApply(t *testing.T) {
	tests := []struct {
		offset float64
		want   float64
	}{
		{offset: 0, want: 1},
		{offset: 0.25, want: 0.7},
		{offset: -0.25, want: 0.7},
		{offset: 0.5, want: 0.4},
		{offset: 0.8, want: 0.04},
		{offset: 1, want: 0},
		{offset: -1, want: 0},
	}
	transformer := NewAlphaTransformer(DefaultAlphaFactor)
	for _, tt := range tests {
		item := &ReelItem{}
		transformer.Apply(item, 0, 0, tt.offset)
		assert.InDelta(t, tt.want, item.Alpha(), 1e-9, "offset %v", tt.offset)
	}
}

func TestNewAlphaTransformerDefaultsFactor(t *testing.T) {
	assert.Equal(t, DefaultAlphaFactor, NewAlphaTransformer(0).Factor)
	assert.Equal(t, DefaultAlphaFactor, NewAlphaTransformer(-3).Factor)
	assert.Equal(t, 2.0, NewAlphaTransformer(2).Factor)
}

func TestReelItemAlphaIsClamped(t *testing.T) {
	item := &ReelItem{}
	item.SetAlpha(1.5)
	assert.Equal(t, 1.0, item.Alpha())
	item.SetAlpha(-0.5)
	assert.Equal(t, 0.0, item.Alpha())
}

func TestReelListAlpha(t *testing.T) {
	l := NewReelList().SetItems(numbers).SetTransformer(NewAlphaTransformer(DefaultAlphaFactor))
	l.SetRect(0, 0, 20, 5)
	l.Draw(newTestScreen(20, 5))

	alphas := map[int]float64{}
	for index, item := range l.Engine().Items() {
		alphas[index] = item.Alpha()
	}
	require.Len(t, alphas, 3)
	assert.InDelta(t, 1, alphas[0], 1e-9)
	assert.InDelta(t, 0.4, alphas[1], 1e-9)
	assert.InDelta(t, 0, alphas[2], 1e-9)
}

func TestReelListAlphaResetsWithoutTransformer(t *testing.T) {
	l := NewReelList().SetItems(numbers).SetTransformer(NewAlphaTransformer(DefaultAlphaFactor))
	l.SetRect(0, 0, 20, 5)
	screen := newTestScreen(20, 5)
	l.Draw(screen)

	l.SetTransformer(nil)
	l.Draw(screen)

	count := 0
	for index, item := range l.Engine().Items() {
		assert.InDelta(t, 1, item.Alpha(), 1e-9, "item %d", index)
		count++
	}
	assert.Equal(t, 3, count)
}

func TestFade(t *testing.T) {
	style := tcell.StyleDefault.Foreground(color.White)

	assert.Equal(t, style, fade(style, color.Black, 1))

	r, g, b := fade(style, color.Black, 0).GetForeground().RGB()
	assert.Equal(t, [3]int32{0, 0, 0}, [3]int32{r, g, b})

	r, g, b = fade(style, color.Black, 0.5).GetForeground().RGB()
	assert.Greater(t, r, int32(0))
	assert.Less(t, r, int32(255))
	assert.InDelta(t, r, g, 1)
	assert.InDelta(t, g, b, 1)
}

func TestFadeWithoutColorsDims(t *testing.T) {
	assert.Equal(t, tcell.StyleDefault.Dim(true), fade(tcell.StyleDefault, color.Black, 0.2))
	assert.Equal(t, tcell.StyleDefault.Dim(false), fade(tcell.StyleDefault, color.Black, 0.8))
}
