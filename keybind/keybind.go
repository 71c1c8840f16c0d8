// Package keybind matches tcell key events against configurable key names
// such as "ctrl+n" or "pgdn".
package keybind

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of equivalent keys plus the help shown for them. The zero
// value matches nothing.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is how a binding presents itself in the help line.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) { k.SetKeys(keys...) }
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) { k.SetHelp(key, desc) }
}

// WithDisabled creates the binding in the disabled state.
func WithDisabled() Option {
	return func(k *Keybind) { k.disabled = true }
}

// Keys returns the normalised key names.
func (k Keybind) Keys() []string {
	return k.keys
}

// SetKeys replaces the keys. Names that normalise to nothing are dropped.
func (k *Keybind) SetKeys(keys ...string) {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			normalized = append(normalized, key)
		}
	}
	k.keys = normalized
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the binding is active. Disabled bindings neither
// match nor show up in help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	key := eventKeyString(event)
	if key == "" {
		return false
	}
	return slices.ContainsFunc(keybinds, func(k Keybind) bool {
		return k.Enabled() && slices.Contains(k.keys, key)
	})
}

// modifier is a set of modifier keys. Names list them in a fixed order so
// "alt+ctrl+x" and "ctrl+alt+x" are the same key.
type modifier uint8

const (
	modCtrl modifier = 1 << iota
	modAlt
	modShift
	modMeta
)

var modifiers = []struct {
	mod   modifier
	name  string
	event tcell.ModMask
}{
	{modCtrl, "ctrl", tcell.ModCtrl},
	{modAlt, "alt", tcell.ModAlt},
	{modShift, "shift", tcell.ModShift},
	{modMeta, "meta", tcell.ModMeta},
}

func parseModifier(name string) (modifier, bool) {
	name = strings.ToLower(name)
	if name == "control" {
		name = "ctrl"
	}
	for _, m := range modifiers {
		if m.name == name {
			return m.mod, true
		}
	}
	return 0, false
}

func formatKey(mods modifier, primary string) string {
	var b strings.Builder
	for _, m := range modifiers {
		if mods&m.mod != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(primary)
	return b.String()
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
}

// normalizeKey turns a configured key name into the form eventKeyString
// produces. Single characters keep their case unless a modifier is held.
func normalizeKey(key string) string {
	var (
		mods    modifier
		primary string
	)
	for part := range strings.SplitSeq(key, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := parseModifier(part); ok {
			mods |= mod
			continue
		}
		primary = part
	}
	if primary == "" {
		return ""
	}

	const ctrlDash = "ctrl-"
	if len(primary) > len(ctrlDash) && strings.EqualFold(primary[:len(ctrlDash)], ctrlDash) {
		mods |= modCtrl
		primary = primary[len(ctrlDash):]
	}
	// tcell's names for rune keys.
	if strings.HasPrefix(primary, "Rune[") && strings.HasSuffix(primary, "]") && len(primary) > len("Rune[]") {
		primary = primary[len("Rune[") : len(primary)-1]
	}
	if utf8.RuneCountInString(primary) > 1 {
		primary = strings.ToLower(primary)
		if alias, ok := keyAliases[primary]; ok {
			primary = alias
		}
	}
	if primary == "backtab" {
		mods |= modShift
		primary = "tab"
	}
	if mods != 0 {
		primary = strings.ToLower(primary)
	}
	return formatKey(mods, primary)
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}

func eventKeyString(event *tcell.EventKey) string {
	if event == nil {
		return ""
	}

	key := event.Key()
	primary, named := keyNames[key]
	// Enter, tab and backspace are never reported as ctrl letters.
	switch {
	case named:
	case key == tcell.KeyRune:
		primary = event.Str()
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return formatKey(modCtrl, string(rune('a'+(key-tcell.KeyCtrlA))))
	default:
		return normalizeKey(event.Name())
	}

	var mods modifier
	if key == tcell.KeyBacktab {
		mods |= modShift
	}
	for _, m := range modifiers {
		if event.Modifiers()&m.event != 0 {
			mods |= m.mod
		}
	}
	return formatKey(mods, primary)
}
