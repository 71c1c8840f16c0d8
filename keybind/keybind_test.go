package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"  ":          "",
		"Esc":         "esc",
		"escape":      "esc",
		"Return":      "enter",
		"PageUp":      "pgup",
		"pagedown":    "pgdn",
		"Ctrl + A":    "ctrl+a",
		"control+End": "ctrl+end",
		"ctrl-c":      "ctrl+c",
		"backtab":     "shift+tab",
		"Rune[x]":     "x",
		"J":           "J",
		"alt+ctrl+x":  "ctrl+alt+x",
		"ctrl+X":      "ctrl+x",
		"ctrl+ctrl+x": "ctrl+x",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeKey(in), "%q", in)
	}
}

func TestEventKeyString(t *testing.T) {
	tests := []struct {
		name  string
		event *tcell.EventKey
		want  string
	}{
		{name: "enter", event: tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone), want: "enter"},
		{name: "tab", event: tcell.NewEventKey(tcell.KeyTab, "", tcell.ModNone), want: "tab"},
		{name: "backspace", event: tcell.NewEventKey(tcell.KeyBackspace, "", tcell.ModNone), want: "backspace"},
		{name: "escape", event: tcell.NewEventKey(tcell.KeyEscape, "", tcell.ModNone), want: "esc"},
		{name: "down", event: tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone), want: "down"},
		{name: "ctrl+end", event: tcell.NewEventKey(tcell.KeyEnd, "", tcell.ModCtrl), want: "ctrl+end"},
		{name: "backtab", event: tcell.NewEventKey(tcell.KeyBacktab, "", tcell.ModNone), want: "shift+tab"},
		{name: "alt+ctrl+down", event: tcell.NewEventKey(tcell.KeyDown, "", tcell.ModAlt|tcell.ModCtrl), want: "ctrl+alt+down"},
		{name: "rune", event: tcell.NewEventKey(tcell.KeyRune, "q", tcell.ModNone), want: "q"},
		{name: "nil", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, eventKeyString(tt.event), tt.name)
	}
}

func TestMatches(t *testing.T) {
	down := NewKeybind(WithKeys("down", "ctrl+n"), WithHelp("↓", "next"))
	quit := NewKeybind(WithKeys("q"))

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone), down))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "q", tcell.ModNone), down, quit))
	assert.False(t, Matches(tcell.NewEventKey(tcell.KeyUp, "", tcell.ModNone), down, quit))
	assert.False(t, Matches(nil, down))
	assert.False(t, Matches(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone)))
}

func TestEnterIsNotCtrlM(t *testing.T) {
	ctrlM := NewKeybind(WithKeys("ctrl+m"))
	enter := NewKeybind(WithKeys("enter"))
	event := tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone)

	assert.True(t, Matches(event, enter))
	assert.False(t, Matches(event, ctrlM))
}

func TestDisabledKeybind(t *testing.T) {
	event := tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModNone)
	k := NewKeybind(WithKeys("x"), WithDisabled())

	assert.False(t, k.Enabled())
	assert.False(t, Matches(event, k))

	k.SetEnabled(true)
	assert.True(t, k.Enabled())
	assert.True(t, Matches(event, k))

	assert.False(t, NewKeybind().Enabled(), "no keys")
}

func TestSetKeysAndHelp(t *testing.T) {
	var k Keybind
	k.SetKeys("PageDown", "", "ctrl+D")
	k.SetHelp("pgdn", "page down")

	assert.Equal(t, []string{"pgdn", "ctrl+d"}, k.Keys())
	assert.Equal(t, Help{Key: "pgdn", Desc: "page down"}, k.Help())
}

func TestDefaultReelKeyMap(t *testing.T) {
	keys := DefaultReelKeyMap()

	home := tcell.NewEventKey(tcell.KeyHome, "", tcell.ModNone)
	assert.False(t, Matches(home, keys.Navigation()...), "plain home belongs to the text field")
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyHome, "", tcell.ModCtrl), keys.Top))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone), keys.Select))
	assert.False(t, Matches(tcell.NewEventKey(tcell.KeyEnter, "", tcell.ModNone), keys.Navigation()...))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyEscape, "", tcell.ModNone), keys.Quit))

	assert.Len(t, keys.Navigation(), 6)
	assert.Equal(t, []Keybind{keys.Up, keys.Down, keys.Select, keys.Quit}, keys.ShortHelp())
}
