package help

import (
	"testing"

	"github.com/ayn2op/reel/keybind"
	"github.com/stretchr/testify/assert"
)

type testKeyMap []keybind.Keybind

func (m testKeyMap) ShortHelp() []keybind.Keybind {
	return m
}

func TestLine(t *testing.T) {
	h := New().SetKeyMap(keybind.DefaultReelKeyMap())

	full := "↑ previous • ↓ next • enter select • esc quit"
	assert.Equal(t, full, h.Line(0))
	assert.Equal(t, full, h.Line(80))

	// "↑ previous • ↓ next" is 19 cells wide; the ellipsis needs two more.
	assert.Equal(t, "↑ previous • ↓ next …", h.Line(21))
	assert.Equal(t, "↑ previous • ↓ next", h.Line(20))
	assert.Equal(t, "", h.Line(5), "nothing fits")
}

func TestLineSkipsDisabledAndEmptyBindings(t *testing.T) {
	hidden := keybind.NewKeybind(keybind.WithKeys("x"), keybind.WithHelp("x", "hidden"), keybind.WithDisabled())
	silent := keybind.NewKeybind(keybind.WithKeys("y"))
	descOnly := keybind.NewKeybind(keybind.WithKeys("z"), keybind.WithHelp("", "zap"))
	keyOnly := keybind.NewKeybind(keybind.WithKeys("w"), keybind.WithHelp("w", ""))

	h := New().SetKeyMap(testKeyMap{hidden, silent, descOnly, keyOnly}).SetSeparator(" | ")
	assert.Equal(t, "zap | w", h.Line(0))
}

func TestLineWithoutKeyMap(t *testing.T) {
	assert.Equal(t, "", New().Line(80))
}

func TestLineWithoutEllipsis(t *testing.T) {
	h := New().SetKeyMap(keybind.DefaultReelKeyMap()).SetEllipsis("")

	assert.Equal(t, "↑ previous • ↓ next", h.Line(21))
}
