package reel

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
)

type testCell struct {
	text  string
	style tcell.Style
}

// testScreen records what primitives draw. Methods the primitives never call
// are left to the nil embedded screen.
type testScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]testCell

	cursorX, cursorY int
	cursorVisible    bool
}

func newTestScreen(width, height int) *testScreen {
	return &testScreen{width: width, height: height, cells: make(map[[2]int]testCell)}
}

func (s *testScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *testScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if str == "" {
		return "", 0
	}
	cluster, remain, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return remain, width
	}
	s.cells[[2]int{x, y}] = testCell{text: cluster, style: style}
	return remain, width
}

func (s *testScreen) Get(x, y int) (string, tcell.Style, int) {
	if c, ok := s.cells[[2]int{x, y}]; ok {
		return c.text, c.style, max(uniseg.StringWidth(c.text), 1)
	}
	return " ", tcell.StyleDefault, 1
}

func (s *testScreen) ShowCursor(x, y int) {
	s.cursorX, s.cursorY, s.cursorVisible = x, y, true
}

func (s *testScreen) HideCursor() {
	s.cursorVisible = false
}

func (s *testScreen) Clear() {
	clear(s.cells)
}

func (s *testScreen) Show() {}

func (s *testScreen) Sync() {}

// row returns the text of row y with trailing blanks removed.
func (s *testScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < s.width; x++ {
		text, _, _ := s.Get(x, y)
		b.WriteString(text)
	}
	return strings.TrimRight(b.String(), " ")
}

func (s *testScreen) style(x, y int) tcell.Style {
	_, style, _ := s.Get(x, y)
	return style
}

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, "", tcell.ModNone)
}

func runeEvent(str string) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, str, tcell.ModNone)
}

func mouseEvent(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestClippedScreen(t *testing.T) {
	screen := newTestScreen(10, 5)
	clipped := newClippedScreen(screen, 2, 1, 3, 2)

	for x := 0; x < 10; x++ {
		for y := 0; y < 5; y++ {
			clipped.Put(x, y, "x", tcell.StyleDefault)
		}
	}

	assert.Equal(t, "", screen.row(0))
	assert.Equal(t, "  xxx", screen.row(1))
	assert.Equal(t, "  xxx", screen.row(2))
	assert.Equal(t, "", screen.row(3))

	clipped.ShowCursor(3, 1)
	assert.True(t, screen.cursorVisible)
	clipped.ShowCursor(9, 1)
	assert.False(t, screen.cursorVisible)
}

// hasCommand reports whether cmd contains a command of type C.
func hasCommand[C any](cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		for _, item := range c {
			if hasCommand[C](item) {
				return true
			}
		}
		return false
	case C:
		return true
	}
	return false
}

func TestAppendCommand(t *testing.T) {
	assert.Nil(t, AppendCommand(nil, nil))
	assert.Equal(t, RedrawCommand{}, AppendCommand(nil, RedrawCommand{}))
	assert.Equal(t,
		BatchCommand{RedrawCommand{}, QuitCommand{}, ConsumeEventCommand{}},
		AppendCommand(BatchCommand{RedrawCommand{}}, BatchCommand{QuitCommand{}, ConsumeEventCommand{}}),
	)
}
