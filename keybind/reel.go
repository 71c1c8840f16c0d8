package keybind

// ReelKeyMap holds the bindings a reel reacts to. Navigation avoids plain
// home and end so a text field sharing the keyboard keeps them.
type ReelKeyMap struct {
	Up       Keybind
	Down     Keybind
	PageUp   Keybind
	PageDown Keybind
	Top      Keybind
	Bottom   Keybind
	Select   Keybind
	Quit     Keybind
}

func DefaultReelKeyMap() ReelKeyMap {
	return ReelKeyMap{
		Up: NewKeybind(
			WithKeys("up", "ctrl+p"),
			WithHelp("↑", "previous"),
		),
		Down: NewKeybind(
			WithKeys("down", "ctrl+n"),
			WithHelp("↓", "next"),
		),
		PageUp: NewKeybind(
			WithKeys("pgup"),
			WithHelp("pgup", "page up"),
		),
		PageDown: NewKeybind(
			WithKeys("pgdn"),
			WithHelp("pgdn", "page down"),
		),
		Top: NewKeybind(
			WithKeys("ctrl+home"),
			WithHelp("ctrl+home", "first"),
		),
		Bottom: NewKeybind(
			WithKeys("ctrl+end"),
			WithHelp("ctrl+end", "last"),
		),
		Select: NewKeybind(
			WithKeys("enter"),
			WithHelp("enter", "select"),
		),
		Quit: NewKeybind(
			WithKeys("esc", "ctrl+c"),
			WithHelp("esc", "quit"),
		),
	}
}

// Navigation returns the bindings that move the selection.
func (m ReelKeyMap) Navigation() []Keybind {
	return []Keybind{m.Up, m.Down, m.PageUp, m.PageDown, m.Top, m.Bottom}
}

func (m ReelKeyMap) ShortHelp() []Keybind {
	return []Keybind{m.Up, m.Down, m.Select, m.Quit}
}
