package reel

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// InputField is a one-line box into which the user can enter text. Use
// [InputField.SetChangedFunc] to follow edits and [InputField.SetDoneFunc] to
// learn when the user is done.
//
// Editing keys:
//
//   - Left, Right: Move by one grapheme cluster.
//   - Home, Ctrl-A: Move to the beginning.
//   - End, Ctrl-E: Move to the end.
//   - Backspace, Delete: Remove the cluster before or under the cursor.
//   - Ctrl-U: Clear the field.
//   - Enter, Escape, Tab, BackTab: Finish editing.
//
// A suggestion, when set and when it extends the typed text, is shown after
// the text in the suggestion style.
type InputField struct {
	*Box

	text string
	// Byte offset of the cursor into text, always on a cluster boundary.
	cursor int
	// Number of cells scrolled out on the left.
	offset int

	label       string
	placeholder string
	suggestion  string
	disabled    bool

	labelStyle       tcell.Style
	fieldStyle       tcell.Style
	placeholderStyle tcell.Style
	suggestionStyle  tcell.Style

	changed func(text string)
	done    func(key tcell.Key)
}

// NewInputField returns a new input field.
func NewInputField() *InputField {
	return &InputField{
		Box:              NewBox(),
		labelStyle:       tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
		fieldStyle:       tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.PrimaryTextColor),
		placeholderStyle: tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.TertiaryTextColor),
		suggestionStyle:  tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.TertiaryTextColor),
	}
}

// SetText replaces the text and moves the cursor to its end. The changed
// handler is called if the text differs.
func (i *InputField) SetText(text string) *InputField {
	i.replace(text, len(text))
	return i
}

// GetText returns the current text of the input field.
func (i *InputField) GetText() string {
	return i.text
}

// SetLabel sets the text to be displayed before the input area.
func (i *InputField) SetLabel(label string) *InputField {
	if i.label != label {
		i.label = label
		i.MarkDirty()
	}
	return i
}

// GetLabel returns the text to be displayed before the input area.
func (i *InputField) GetLabel() string {
	return i.label
}

// SetPlaceholder sets the text to be displayed when the input text is empty.
func (i *InputField) SetPlaceholder(text string) *InputField {
	if i.placeholder != text {
		i.placeholder = text
		i.MarkDirty()
	}
	return i
}

// SetSuggestion sets the completion hint drawn after the typed text.
func (i *InputField) SetSuggestion(suggestion string) *InputField {
	if i.suggestion != suggestion {
		i.suggestion = suggestion
		i.MarkDirty()
	}
	return i
}

// SetLabelStyle sets the style of the label.
func (i *InputField) SetLabelStyle(style tcell.Style) *InputField {
	if i.labelStyle != style {
		i.labelStyle = style
		i.MarkDirty()
	}
	return i
}

// SetFieldStyle sets the style of the input area when no placeholder is
// shown.
func (i *InputField) SetFieldStyle(style tcell.Style) *InputField {
	if i.fieldStyle != style {
		i.fieldStyle = style
		i.MarkDirty()
	}
	return i
}

// GetFieldStyle returns the style of the input area.
func (i *InputField) GetFieldStyle() tcell.Style {
	return i.fieldStyle
}

// SetPlaceholderStyle sets the style of the input area when the placeholder
// is shown.
func (i *InputField) SetPlaceholderStyle(style tcell.Style) *InputField {
	if i.placeholderStyle != style {
		i.placeholderStyle = style
		i.MarkDirty()
	}
	return i
}

// SetSuggestionStyle sets the style of the completion hint.
func (i *InputField) SetSuggestionStyle(style tcell.Style) *InputField {
	if i.suggestionStyle != style {
		i.suggestionStyle = style
		i.MarkDirty()
	}
	return i
}

// GetFieldHeight returns this primitive's field height.
func (i *InputField) GetFieldHeight() int {
	return 1
}

// SetDisabled sets whether or not the field rejects input.
func (i *InputField) SetDisabled(disabled bool) *InputField {
	if i.disabled != disabled {
		i.disabled = disabled
		i.MarkDirty()
	}
	return i
}

// GetDisabled returns whether or not the field rejects input.
func (i *InputField) GetDisabled() bool {
	return i.disabled
}

// SetChangedFunc sets a handler which is called whenever the text of the input
// field has changed. It receives the current text (after the change).
func (i *InputField) SetChangedFunc(handler func(text string)) *InputField {
	i.changed = handler
	return i
}

// SetDoneFunc sets a handler which is called when the user is done entering
// text. The callback function is provided with the key that was pressed, which
// is one of the following:
//
//   - KeyEnter: Done entering text.
//   - KeyEscape: Abort text input.
//   - KeyTab: Move to the next field.
//   - KeyBacktab: Move to the previous field.
func (i *InputField) SetDoneFunc(handler func(key tcell.Key)) *InputField {
	i.done = handler
	return i
}

// Draw draws this primitive onto the screen.
func (i *InputField) Draw(screen tcell.Screen) {
	i.DrawForSubclass(screen, i)

	x, y, width, height := i.GetInnerRect()
	if height < 1 || width < 1 {
		return
	}

	labelWidth := 0
	if i.label != "" {
		labelWidth = Print(screen, i.label, x, y, width, AlignmentLeft, i.labelStyle)
	}
	fieldX, fieldWidth := x+labelWidth, width-labelWidth
	if fieldWidth <= 0 {
		return
	}

	for cx := fieldX; cx < fieldX+fieldWidth; cx++ {
		screen.Put(cx, y, " ", i.fieldStyle)
	}

	if i.text == "" {
		Print(screen, i.placeholder, fieldX, y, fieldWidth, AlignmentLeft, i.placeholderStyle)
		if i.HasFocus() {
			screen.ShowCursor(fieldX, y)
		}
		return
	}

	// Keep the cursor cell inside the field.
	cursorCell := StringWidth(i.text[:i.cursor])
	if cursorCell < i.offset {
		i.offset = cursorCell
	} else if cursorCell-i.offset >= fieldWidth {
		i.offset = cursorCell - fieldWidth + 1
	}

	text := printText(screen, i.text, fieldX, y, fieldWidth, i.fieldStyle, printOptions{skip: i.offset})
	if hint := i.completion(); hint != "" && text.end == len(i.text) && text.width < fieldWidth {
		Print(screen, hint, fieldX+text.width, y, fieldWidth-text.width, AlignmentLeft, i.suggestionStyle)
	}

	if i.HasFocus() {
		screen.ShowCursor(fieldX+cursorCell-i.offset, y)
	}
}

// completion returns the part of the suggestion that extends the typed text.
func (i *InputField) completion() string {
	if len(i.suggestion) <= len(i.text) || !strings.EqualFold(i.suggestion[:len(i.text)], i.text) {
		return ""
	}
	return i.suggestion[len(i.text):]
}

// InputHandler edits the text.
func (i *InputField) InputHandler(event *tcell.EventKey) Command {
	if i.disabled {
		return nil
	}

	switch key := event.Key(); key {
	case tcell.KeyEnter, tcell.KeyEscape, tcell.KeyTab, tcell.KeyBacktab:
		if i.done != nil {
			i.done(key)
		}
		return RedrawCommand{}
	case tcell.KeyRune:
		if event.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
			return i.controlKey(strings.ToLower(event.Str()))
		}
		i.insert(event.Str())
	case tcell.KeyLeft:
		i.moveCursor(previousBoundary(i.text, i.cursor))
	case tcell.KeyRight:
		i.moveCursor(nextBoundary(i.text, i.cursor))
	case tcell.KeyHome:
		i.moveCursor(0)
	case tcell.KeyEnd:
		i.moveCursor(len(i.text))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if i.cursor > 0 {
			start := previousBoundary(i.text, i.cursor)
			i.replace(i.text[:start]+i.text[i.cursor:], start)
		}
	case tcell.KeyDelete:
		if i.cursor < len(i.text) {
			end := nextBoundary(i.text, i.cursor)
			i.replace(i.text[:i.cursor]+i.text[end:], i.cursor)
		}
	default:
		if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
			return i.controlKey(string(rune('a' + (key - tcell.KeyCtrlA))))
		}
		return nil
	}
	return RedrawCommand{}
}

func (i *InputField) controlKey(name string) Command {
	switch name {
	case "a":
		i.moveCursor(0)
	case "e":
		i.moveCursor(len(i.text))
	case "u":
		i.replace("", 0)
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler focuses the field on click and moves the cursor to the
// clicked cell.
func (i *InputField) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if i.disabled || action != MouseLeftDown || !i.InRect(x, y) {
		return nil, nil
	}

	innerX, _, _, _ := i.GetInnerRect()
	cell := x - innerX - StringWidth(i.label) + i.offset
	i.moveCursor(cursorForCell(i.text, cell))
	return nil, SetFocusCommand{Target: i}
}

// PasteHandler inserts pasted text with line breaks removed.
func (i *InputField) PasteHandler(text string) Command {
	if i.disabled {
		return nil
	}
	text = strings.NewReplacer("\r", "", "\n", " ", "\t", " ").Replace(text)
	if text == "" {
		return nil
	}
	i.insert(text)
	return RedrawCommand{}
}

func (i *InputField) insert(s string) {
	i.replace(i.text[:i.cursor]+s+i.text[i.cursor:], i.cursor+len(s))
}

func (i *InputField) moveCursor(cursor int) {
	if i.cursor != cursor {
		i.cursor = cursor
		i.MarkDirty()
	}
}

func (i *InputField) replace(text string, cursor int) {
	i.moveCursor(min(max(cursor, 0), len(text)))
	if i.text == text {
		return
	}
	i.text = text
	i.MarkDirty()
	if i.changed != nil {
		i.changed(text)
	}
}

// previousBoundary returns the start of the cluster that ends at cursor.
func previousBoundary(text string, cursor int) int {
	start, state := 0, -1
	for rest := text; len(rest) > 0; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if start+len(cluster) >= cursor {
			return start
		}
		start += len(cluster)
	}
	return start
}

// nextBoundary returns the end of the cluster that starts at cursor.
func nextBoundary(text string, cursor int) int {
	if cursor >= len(text) {
		return len(text)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[cursor:], -1)
	return cursor + len(cluster)
}

// cursorForCell returns the byte offset of the cluster covering the given
// cell, or the end of the text.
func cursorForCell(text string, cell int) int {
	if cell <= 0 {
		return 0
	}
	offset, width, state := 0, 0, -1
	for rest := text; len(rest) > 0; {
		var (
			cluster string
			w       int
		)
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width+w > cell {
			return offset
		}
		width += w
		offset += len(cluster)
	}
	return offset
}
