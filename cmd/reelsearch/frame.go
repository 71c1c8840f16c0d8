package main

import (
	"github.com/ayn2op/reel"
	"github.com/ayn2op/reel/help"
	"github.com/ayn2op/reel/keybind"
	"github.com/gdamore/tcell/v3"
)

// frame stacks a body over a one-row footer and owns the quit binding.
type frame struct {
	*reel.Box

	body   *reel.ReelSearch
	footer *help.Help
	quit   keybind.Keybind
}

func newFrame(body *reel.ReelSearch, footer *help.Help, quit keybind.Keybind) *frame {
	return &frame{
		Box:    reel.NewBox(),
		body:   body,
		footer: footer,
		quit:   quit,
	}
}

func (f *frame) Draw(screen tcell.Screen) {
	f.DrawForSubclass(screen, f)

	x, y, width, height := f.GetInnerRect()
	footerHeight := min(1, max(height-1, 0))
	f.body.SetRect(x, y, width, height-footerHeight)
	f.body.Draw(screen)
	if footerHeight > 0 {
		f.footer.SetRect(x, y+height-footerHeight, width, footerHeight)
		f.footer.Draw(screen)
	}
}

func (f *frame) InputHandler(event *tcell.EventKey) reel.Command {
	if keybind.Matches(event, f.quit) {
		return reel.QuitCommand{}
	}
	return f.body.InputHandler(event)
}

func (f *frame) MouseHandler(action reel.MouseAction, event *tcell.EventMouse) (reel.Primitive, reel.Command) {
	if !f.InRect(event.Position()) {
		return nil, nil
	}
	return f.body.MouseHandler(action, event)
}

func (f *frame) PasteHandler(text string) reel.Command {
	return f.body.PasteHandler(text)
}

func (f *frame) Focus(delegate func(p reel.Primitive)) {
	if delegate == nil {
		return
	}
	delegate(f.body)
}

func (f *frame) HasFocus() bool {
	return f.body.HasFocus() || f.Box.HasFocus()
}

func (f *frame) IsDirty() bool {
	return f.Box.IsDirty() || f.body.IsDirty() || f.footer.IsDirty()
}

func (f *frame) MarkClean() {
	f.Box.MarkClean()
	f.body.MarkClean()
	f.footer.MarkClean()
}
