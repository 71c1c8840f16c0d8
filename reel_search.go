package reel

import (
	"errors"
	"fmt"

	"github.com/ayn2op/reel/keybind"
	"github.com/gdamore/tcell/v3"
)

// Setup errors returned by NewReelSearch.
var (
	ErrChildCount = errors.New("reel: reel search must have exactly 2 children")
	ErrListChild  = errors.New("reel: first child must be a *ReelList")
	ErrInputChild = errors.New("reel: second child must be an *InputField")
)

// ReelSearch lays an input field over the center row of a reel. The reel
// spans the whole inner rectangle and the field covers the row the selection
// settles on, so typing filters the reel while the selected item reads as the
// completion of the typed text.
//
// The input field keeps the keyboard focus. Keys bound to reel navigation go
// to the reel, everything else to the field.
type ReelSearch struct {
	*Box

	list  *ReelList
	input *InputField

	selected func(index int, text string)
}

// NewReelSearch composes children, which must be a *ReelList followed by an
// *InputField. The list gets an AlphaTransformer with the default factor.
func NewReelSearch(children ...Primitive) (*ReelSearch, error) {
	if len(children) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrChildCount, len(children))
	}
	list, ok := children[0].(*ReelList)
	if !ok || list == nil {
		return nil, fmt.Errorf("%w: got %T", ErrListChild, children[0])
	}
	input, ok := children[1].(*InputField)
	if !ok || input == nil {
		return nil, fmt.Errorf("%w: got %T", ErrInputChild, children[1])
	}

	list.SetTransformer(NewAlphaTransformer(DefaultAlphaFactor))

	s := &ReelSearch{
		Box:   NewBox(),
		list:  list,
		input: input,
	}
	bindDirtyParent(list, s.Box)
	bindDirtyParent(input, s.Box)
	return s, nil
}

// List returns the reel.
func (s *ReelSearch) List() *ReelList {
	return s.list
}

// Input returns the input field.
func (s *ReelSearch) Input() *InputField {
	return s.input
}

// Selection returns the selection of the reel.
func (s *ReelSearch) Selection() int {
	return s.list.Selection()
}

// SetSelectionChangedFunc sets the reel's selection handler.
func (s *ReelSearch) SetSelectionChangedFunc(handler func(previous, next int)) *ReelSearch {
	s.list.SetSelectionChangedFunc(handler)
	return s
}

// SetSelectedFunc sets the handler called when the select binding is pressed
// while the reel has a selection.
func (s *ReelSearch) SetSelectedFunc(handler func(index int, text string)) *ReelSearch {
	s.selected = handler
	return s
}

// Draw draws this primitive onto the screen.
func (s *ReelSearch) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	s.list.SetIndent(StringWidth(s.input.GetLabel()))
	s.list.SetRect(x, y, width, height)
	s.list.Draw(screen)

	// The field sits where the engine centers the selection.
	fieldHeight := s.input.GetFieldHeight()
	centerY := y + height/2
	s.input.SetRect(x, centerY-fieldHeight/2, width-s.list.scrollBarWidth(), fieldHeight)
	suggestion, _ := s.list.SelectedText()
	s.input.SetSuggestion(suggestion)
	s.input.Draw(screen)
}

// InputHandler routes navigation keys to the reel and the rest to the field.
func (s *ReelSearch) InputHandler(event *tcell.EventKey) Command {
	keys := s.list.KeyMap()
	switch {
	case keybind.Matches(event, keys.Navigation()...):
		return s.list.InputHandler(event)
	case keybind.Matches(event, keys.Select):
		if text, ok := s.list.SelectedText(); ok && s.selected != nil {
			s.selected(s.list.Selection(), text)
			return RedrawCommand{}
		}
	}
	return s.input.InputHandler(event)
}

// MouseHandler scrolls the reel with the wheel anywhere and lets the field
// handle clicks on its row.
func (s *ReelSearch) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !s.InRect(event.Position()) {
		return nil, nil
	}
	switch action {
	case MouseScrollUp, MouseScrollDown:
		return s.list.MouseHandler(action, event)
	}
	if s.input.InRect(event.Position()) {
		return s.input.MouseHandler(action, event)
	}
	return s.list.MouseHandler(action, event)
}

// PasteHandler pastes into the field.
func (s *ReelSearch) PasteHandler(text string) Command {
	return s.input.PasteHandler(text)
}

// Focus hands the focus to the field.
func (s *ReelSearch) Focus(delegate func(p Primitive)) {
	delegate(s.input)
}

// HasFocus returns whether the field or the reel has focus.
func (s *ReelSearch) HasFocus() bool {
	return s.input.HasFocus() || s.list.HasFocus()
}

// IsDirty returns whether this primitive or one of its children needs redraw.
func (s *ReelSearch) IsDirty() bool {
	return s.Box.IsDirty() || s.list.IsDirty() || s.input.IsDirty()
}

// MarkClean marks this primitive and children as clean.
func (s *ReelSearch) MarkClean() {
	s.Box.MarkClean()
	s.list.MarkClean()
	s.input.MarkClean()
}

var _ Primitive = &ReelSearch{}
