package reel

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInputField(width int) (*InputField, *testScreen) {
	i := NewInputField().SetLabel("> ")
	i.SetRect(0, 0, width, 1)
	return i, newTestScreen(width, 1)
}

func TestInputFieldTyping(t *testing.T) {
	i, _ := newTestInputField(20)
	var changes []string
	i.SetChangedFunc(func(text string) { changes = append(changes, text) })

	for _, s := range []string{"h", "i"} {
		assert.Equal(t, RedrawCommand{}, i.InputHandler(runeEvent(s)))
	}
	i.InputHandler(keyEvent(tcell.KeyLeft))
	i.InputHandler(runeEvent("x"))

	assert.Equal(t, "hxi", i.GetText())
	assert.Equal(t, 2, i.cursor)
	assert.Equal(t, []string{"h", "hi", "hxi"}, changes)

	i.InputHandler(keyEvent(tcell.KeyBackspace2))
	assert.Equal(t, "hi", i.GetText())
	i.InputHandler(keyEvent(tcell.KeyHome))
	i.InputHandler(keyEvent(tcell.KeyDelete))
	assert.Equal(t, "i", i.GetText())
	i.InputHandler(keyEvent(tcell.KeyEnd))
	assert.Equal(t, 1, i.cursor)
}

func TestInputFieldGraphemeClusters(t *testing.T) {
	i, _ := newTestInputField(20)
	i.SetText("e\u0301a")
	require.Equal(t, 4, i.cursor)

	i.InputHandler(keyEvent(tcell.KeyLeft))
	assert.Equal(t, 3, i.cursor)
	i.InputHandler(keyEvent(tcell.KeyLeft))
	assert.Equal(t, 0, i.cursor)
	i.InputHandler(keyEvent(tcell.KeyRight))
	assert.Equal(t, 3, i.cursor)

	i.InputHandler(keyEvent(tcell.KeyBackspace))
	assert.Equal(t, "a", i.GetText())
	assert.Equal(t, 0, i.cursor)
}

func TestInputFieldControlKeys(t *testing.T) {
	i, _ := newTestInputField(20)
	i.SetText("hello")

	i.InputHandler(keyEvent(tcell.KeyCtrlA))
	assert.Equal(t, 0, i.cursor)
	i.InputHandler(keyEvent(tcell.KeyCtrlE))
	assert.Equal(t, 5, i.cursor)
	i.InputHandler(keyEvent(tcell.KeyCtrlU))
	assert.Equal(t, "", i.GetText())
	assert.Equal(t, 0, i.cursor)
	assert.Nil(t, i.InputHandler(keyEvent(tcell.KeyCtrlZ)))
}

func TestInputFieldDone(t *testing.T) {
	i, _ := newTestInputField(20)
	var keys []tcell.Key
	i.SetDoneFunc(func(key tcell.Key) { keys = append(keys, key) })

	i.InputHandler(keyEvent(tcell.KeyEnter))
	i.InputHandler(keyEvent(tcell.KeyEscape))
	assert.Equal(t, []tcell.Key{tcell.KeyEnter, tcell.KeyEscape}, keys)
}

func TestInputFieldPaste(t *testing.T) {
	i, _ := newTestInputField(20)
	i.SetText("<>")
	i.InputHandler(keyEvent(tcell.KeyLeft))

	assert.Equal(t, RedrawCommand{}, i.PasteHandler("a\r\nb\tc"))
	assert.Equal(t, "<a b c>", i.GetText())
	assert.Nil(t, i.PasteHandler(""))
}

func TestInputFieldDisabled(t *testing.T) {
	i, _ := newTestInputField(20)
	i.SetDisabled(true)

	assert.Nil(t, i.InputHandler(runeEvent("a")))
	assert.Nil(t, i.PasteHandler("a"))
	_, cmd := i.MouseHandler(MouseLeftDown, mouseEvent(3, 0, tcell.ButtonPrimary))
	assert.Nil(t, cmd)
	assert.Equal(t, "", i.GetText())
	assert.True(t, i.GetDisabled())
}

func TestInputFieldDraw(t *testing.T) {
	i, screen := newTestInputField(20)
	i.SetPlaceholder("Type to search")
	i.Focus(nil)

	i.Draw(screen)
	assert.Equal(t, "> Type to search", screen.row(0))
	assert.True(t, screen.cursorVisible)
	assert.Equal(t, 2, screen.cursorX)

	i.SetText("AP").SetSuggestion("apple")
	screen.Clear()
	i.Draw(screen)
	assert.Equal(t, "> APple", screen.row(0))
	assert.Equal(t, i.GetFieldStyle(), screen.style(3, 0))
	assert.Equal(t, i.suggestionStyle, screen.style(4, 0))
	assert.Equal(t, 4, screen.cursorX)
}

func TestInputFieldCompletion(t *testing.T) {
	i, _ := newTestInputField(20)

	tests := []struct {
		text, suggestion, want string
	}{
		{"ap", "apple", "ple"},
		{"AP", "apple", "ple"},
		{"apple", "apple", ""},
		{"ax", "apple", ""},
		{"", "apple", "apple"},
		{"apples", "apple", ""},
	}
	for _, tt := range tests {
		i.SetText(tt.text).SetSuggestion(tt.suggestion)
		assert.Equal(t, tt.want, i.completion(), "%q %q", tt.text, tt.suggestion)
	}
}

func TestInputFieldScrollsToCursor(t *testing.T) {
	i, screen := newTestInputField(6)
	i.SetText("abcdefgh")
	i.Focus(nil)

	i.Draw(screen)
	assert.Equal(t, "> fgh", screen.row(0))
	assert.Equal(t, 5, screen.cursorX)

	i.InputHandler(keyEvent(tcell.KeyHome))
	screen.Clear()
	i.Draw(screen)
	assert.Equal(t, "> abcd", screen.row(0))
	assert.Equal(t, 2, screen.cursorX)
}

func TestInputFieldClickMovesCursor(t *testing.T) {
	i, _ := newTestInputField(20)
	i.SetText("hello")

	_, cmd := i.MouseHandler(MouseLeftDown, mouseEvent(3, 0, tcell.ButtonPrimary))
	assert.Equal(t, SetFocusCommand{Target: i}, cmd)
	assert.Equal(t, 1, i.cursor)

	i.MouseHandler(MouseLeftDown, mouseEvent(15, 0, tcell.ButtonPrimary))
	assert.Equal(t, 5, i.cursor)
}
