package reel

import (
	"testing"

	"github.com/ayn2op/reel/centered"
	"github.com/stretchr/testify/assert"
)

func TestBordersHas(t *testing.T) {
	assert.True(t, BordersAll.Has(BordersTop|BordersLeft))
	assert.True(t, BordersTop.Has(BordersTop))
	assert.False(t, BordersTop.Has(BordersTop|BordersLeft))
	assert.False(t, BordersNone.Has(BordersBottom))
}

func TestBoxDrawBorders(t *testing.T) {
	b := NewBox().SetBorders(BordersAll).SetBorderSet(BorderSetRound())
	b.SetRect(0, 0, 6, 3)
	screen := newTestScreen(6, 3)
	b.Draw(screen)

	assert.Equal(t, "╭────╮", screen.row(0))
	assert.Equal(t, "│    │", screen.row(1))
	assert.Equal(t, "╰────╯", screen.row(2))

	x, y, width, height := b.GetInnerRect()
	assert.Equal(t, [4]int{1, 1, 4, 1}, [4]int{x, y, width, height})
}

func TestBoxDrawTopBorderOnly(t *testing.T) {
	b := NewBox().SetBorders(BordersTop)
	b.SetRect(0, 0, 4, 2)
	screen := newTestScreen(4, 2)
	b.Draw(screen)

	// No corners without a side border.
	assert.Equal(t, " ──", screen.row(0))
	assert.Equal(t, "", screen.row(1))
}

func TestBoxTitleEllipsis(t *testing.T) {
	b := NewBox().SetBorders(BordersAll).SetTitle("a long title").SetTitleAlignment(AlignmentLeft)
	b.SetRect(0, 0, 8, 3)
	screen := newTestScreen(8, 3)
	b.Draw(screen)

	assert.Equal(t, "┌a lon…┐", screen.row(0))
}

func TestBoxMouseConsumesClicksInside(t *testing.T) {
	b := NewBox()
	b.SetRect(0, 0, 4, 4)

	_, cmd := b.MouseHandler(MouseLeftDown, mouseEvent(1, 1, 0))
	assert.Equal(t, ConsumeEventCommand{}, cmd)
	_, cmd = b.MouseHandler(MouseLeftDown, mouseEvent(9, 9, 0))
	assert.Nil(t, cmd)
	_, cmd = b.MouseHandler(MouseMove, mouseEvent(1, 1, 0))
	assert.Nil(t, cmd)
}

func TestBoxDirtyPropagatesToParent(t *testing.T) {
	parent, child := NewBox(), NewBox()
	bindDirtyParent(child, parent)
	parent.MarkClean()
	child.MarkClean()

	child.SetTitle("x")
	assert.True(t, parent.IsDirty())
}

func TestBoxInnerRect(t *testing.T) {
	tests := []struct {
		name string
		box  *Box
		want [4]int
	}{
		{name: "plain", box: NewBox(), want: [4]int{0, 0, 10, 6}},
		{name: "title takes the top row", box: NewBox().SetTitle("t"), want: [4]int{0, 1, 10, 5}},
		{name: "padding", box: NewBox().SetPadding(centered.Insets{Top: 1, Bottom: 2, Left: 3, Right: 4}), want: [4]int{3, 1, 3, 3}},
		{name: "never negative", box: NewBox().SetBorders(BordersAll).SetPadding(centered.Insets{Left: 20, Top: 20}), want: [4]int{21, 21, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.box.SetRect(0, 0, 10, 6)
			x, y, width, height := tt.box.GetInnerRect()
			assert.Equal(t, tt.want, [4]int{x, y, width, height})
		})
	}
}

func TestBoxSettersOnlyDirtyOnChange(t *testing.T) {
	b := NewBox().SetTitle("a")
	b.MarkClean()

	b.SetTitle("a").SetBorders(BordersNone)
	assert.False(t, b.IsDirty())

	b.SetTitleAlignment(AlignmentRight)
	assert.True(t, b.IsDirty())
}
