package reel

import "github.com/gdamore/tcell/v3"

// Primitive is anything the Application can lay out, draw and send events to.
// Handlers return a Command instead of acting on the application directly.
type Primitive interface {
	// Draw draws the primitive. Only a focused primitive may show the cursor.
	Draw(screen tcell.Screen)

	GetRect() (int, int, int, int)
	// SetRect is called by the parent before every Draw.
	SetRect(x, y, width, height int)

	// InputHandler receives key events while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse actions. A non-nil capture receives the
	// following actions until it returns nil.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)
	// PasteHandler receives bracketed pastes while the primitive has focus.
	PasteHandler(text string) Command

	// HasFocus is true when the primitive or one of its children has focus.
	HasFocus() bool
	// Focus gives the primitive focus. Containers pass it on with delegate.
	Focus(delegate func(p Primitive))
	Blur()
}
