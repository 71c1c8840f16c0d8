package reel

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100

	// A burst of resizes ends with one full redraw this long after the last.
	resizeSettle = 50 * time.Millisecond
	resizeKey    = "application.resize"
)

// MouseAction is what the mouse did, derived from raw tcell mouse events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	// MouseLeftClick follows MouseLeftUp when the button is released on the
	// cell where it went down.
	MouseLeftClick
	MouseScrollUp
	MouseScrollDown
)

// queuedUpdate is f waiting to run on the event loop. done, when set,
// receives one value after f returned.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// scheduledCommand is a pending ScheduleCommand. seq identifies the latest
// schedule for a key; older timers that still fire are dropped.
type scheduledCommand struct {
	seq   uint64
	timer *time.Timer
}

// mouseState is what fireMouseActions remembers between events.
type mouseState struct {
	// capture receives all actions until it stops asking for them.
	capture      Primitive
	x, y         int
	downX, downY int
	buttons      tcell.ButtonMask
}

// pasteState collects the key events of a bracketed paste.
type pasteState struct {
	active bool
	text   strings.Builder
}

func (p *pasteState) add(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		p.text.WriteString(event.Str())
	case tcell.KeyEnter:
		p.text.WriteByte('\n')
	case tcell.KeyTab:
		p.text.WriteByte('\t')
	}
}

// Application owns the screen and runs the event loop. Primitives are only
// touched from the loop goroutine; other goroutines hand work to it with
// QueueUpdate and QueueUpdateDraw.
//
//	if err := reel.NewApplication().SetRoot(p).Run(); err != nil {
//	    log.Fatal(err)
//	}
type Application struct {
	sync.RWMutex

	// Set by SetScreen or Run and cleared by Stop.
	screen tcell.Screen
	root   Primitive
	focus  Primitive

	updates chan queuedUpdate
	// Closed once the event loop is gone; queued updates are dropped after.
	done     chan struct{}
	doneOnce sync.Once

	// Loop goroutine only.
	mouse mouseState
	paste pasteState

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool

	// Pending keyed schedules.
	scheduled    map[string]scheduledCommand
	scheduledSeq uint64
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		updates:   make(chan queuedUpdate, updatesQueueSize),
		done:      make(chan struct{}),
		scheduled: make(map[string]scheduledCommand),
	}
}

// SetScreen makes the application draw on screen instead of the terminal.
// It has no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// SetRoot sets the primitive that fills the screen and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	a.forceRedraw = a.screen != nil
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus blurs the focused primitive and focuses p, which may hand the
// focus on to one of its children.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()

	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// Run initialises the terminal unless a screen was set and runs the event
// loop until [Application.Stop] is called or a QuitCommand is executed.
//
// While an application is running it fully claims stdin, stdout and stderr.
// Log to a file instead.
func (a *Application) Run() error {
	screen, err := a.ensureScreen()
	if err != nil {
		return err
	}
	defer a.finish()

	// Restore the terminal before a panic is printed.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()
	events := screen.EventQ()
	for {
		select {
		case event := <-events:
			// Stop finalises the screen, which closes the queue.
			if event == nil {
				return nil
			}
			if err := a.handleEvent(event); err != nil {
				a.Stop()
				return err
			}
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
			a.drawIfDirty()
		}
	}
}

func (a *Application) ensureScreen() (tcell.Screen, error) {
	a.Lock()
	defer a.Unlock()
	if a.screen != nil {
		return a.screen, nil
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	a.screen = screen
	return screen, nil
}

// handleEvent dispatches one terminal event. It returns the error of an
// EventError.
func (a *Application) handleEvent(event tcell.Event) error {
	switch event := event.(type) {
	case *tcell.EventKey:
		if a.paste.active {
			a.paste.add(event)
			return nil
		}
		if root := a.focusedRoot(); root != nil {
			a.apply(root.InputHandler(event))
		}
	case *tcell.EventPaste:
		switch {
		case event.Start():
			a.paste.active = true
			a.paste.text.Reset()
		case event.End():
			a.paste.active = false
			if root := a.focusedRoot(); root != nil && a.paste.text.Len() > 0 {
				a.apply(root.PasteHandler(a.paste.text.String()))
			}
		}
	case *tcell.EventResize:
		// A resize can leave stale cells even when the size is unchanged.
		a.requestFullRedraw()
		a.draw()
		a.schedule(ScheduleCommand{After: resizeSettle, Key: resizeKey, Fire: func() Command {
			a.requestFullRedraw()
			return RedrawCommand{}
		}})
	case *tcell.EventMouse:
		if a.fireMouseActions(event) {
			a.draw()
		}
	case *tcell.EventError:
		return event
	}
	return nil
}

// focusedRoot returns the root when it, or one of its children, has focus.
func (a *Application) focusedRoot() Primitive {
	a.RLock()
	root := a.root
	a.RUnlock()
	if root == nil || !root.HasFocus() {
		return nil
	}
	return root
}

// apply executes cmd and redraws when it asks for it.
func (a *Application) apply(cmd Command) {
	if a.executeCommand(cmd) {
		a.draw()
	}
}

func (a *Application) requestFullRedraw() {
	a.Lock()
	a.forceRedraw = true
	a.Unlock()
}

// fireMouseActions derives the actions of event and hands them to the
// capturing primitive, or the root. It reports whether one of them asked for
// a redraw.
func (a *Application) fireMouseActions(event *tcell.EventMouse) bool {
	x, y := event.Position()
	buttons := event.Buttons()
	m := &a.mouse

	var actions []MouseAction
	if x != m.x || y != m.y {
		actions = append(actions, MouseMove)
		m.x, m.y = x, y
	}
	if (buttons^m.buttons)&tcell.ButtonPrimary != 0 {
		if buttons&tcell.ButtonPrimary != 0 {
			actions = append(actions, MouseLeftDown)
			m.downX, m.downY = x, y
		} else {
			actions = append(actions, MouseLeftUp)
			if x == m.downX && y == m.downY {
				actions = append(actions, MouseLeftClick)
			}
		}
	}
	if buttons&tcell.WheelUp != 0 {
		actions = append(actions, MouseScrollUp)
	}
	if buttons&tcell.WheelDown != 0 {
		actions = append(actions, MouseScrollDown)
	}
	m.buttons = buttons

	a.RLock()
	root := a.root
	a.RUnlock()

	// Once a primitive captures, the rest of the event follows it.
	var target Primitive
	handled := false
	for _, action := range actions {
		if m.capture != nil {
			target = m.capture
		}
		p := root
		if target != nil {
			p = target
		}
		if p == nil {
			m.capture = nil
			continue
		}
		capture, cmd := p.MouseHandler(action, event)
		if a.executeCommand(cmd) {
			handled = true
		}
		m.capture = capture
	}
	return handled
}

// Stop finalises the screen, cancels pending schedules and makes Run return.
// Updates queued after Stop are dropped, so an application cannot be run
// again.
func (a *Application) Stop() {
	a.finish()
	a.Lock()
	defer a.Unlock()
	for key, pending := range a.scheduled {
		pending.timer.Stop()
		delete(a.scheduled, key)
	}
	if a.screen != nil {
		a.screen.Fini()
		a.screen = nil
	}
}

// finish marks the event loop as gone.
func (a *Application) finish() {
	a.doneOnce.Do(func() { close(a.done) })
}

// draw lays the root out over the whole screen and draws it.
func (a *Application) draw() {
	a.Lock()
	screen, root, clear := a.screen, a.root, a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// Show only sends what changed since the last frame, so a clear is
	// reserved for forced redraws.
	if clear {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
	if d, ok := root.(dirtyTracker); ok {
		d.MarkClean()
	}
}

type dirtyTracker interface {
	IsDirty() bool
	MarkClean()
}

// drawIfDirty draws when the root reports pending changes, which covers
// queued updates that mutate primitives without asking for a redraw.
func (a *Application) drawIfDirty() {
	a.RLock()
	root := a.root
	a.RUnlock()
	if d, ok := root.(dirtyTracker); ok && d.IsDirty() {
		a.draw()
	}
}

// QueueUpdate runs f on the event loop and waits for it. It returns at once,
// without running f, when the application has stopped.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{}, 1)
	if a.enqueue(queuedUpdate{f: f, done: ch}) {
		select {
		case <-ch:
		case <-a.done:
		}
	}
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws after f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// enqueue hands u to the event loop. It reports false, dropping u, once the
// application has stopped.
func (a *Application) enqueue(u queuedUpdate) bool {
	select {
	case <-a.done:
		return false
	default:
	}
	select {
	case a.updates <- u:
		return true
	case <-a.done:
		return false
	}
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.RLock()
		changed := a.focus != c.Target
		a.RUnlock()
		a.SetFocus(c.Target)
		return changed
	case ScheduleCommand:
		a.schedule(c)
	}
	return false
}

// schedule arms a timer for c. When it fires, Fire runs on the event loop and
// its command is executed like any other, unless a newer schedule with the
// same key replaced it in the meantime.
func (a *Application) schedule(c ScheduleCommand) {
	if c.Fire == nil {
		return
	}

	a.Lock()
	defer a.Unlock()
	a.scheduledSeq++
	seq := a.scheduledSeq
	key := c.Key
	timer := time.AfterFunc(max(c.After, 0), func() {
		a.enqueue(queuedUpdate{f: func() {
			if !a.claimScheduled(key, seq) {
				return
			}
			if a.executeCommand(c.Fire()) {
				a.draw()
			}
		}})
	})
	if key == "" {
		return
	}
	if pending, ok := a.scheduled[key]; ok {
		pending.timer.Stop()
	}
	a.scheduled[key] = scheduledCommand{seq: seq, timer: timer}
}

// claimScheduled reports whether the schedule identified by key and seq is
// still current and forgets it.
func (a *Application) claimScheduled(key string, seq uint64) bool {
	if key == "" {
		return true
	}
	a.Lock()
	defer a.Unlock()
	pending, ok := a.scheduled[key]
	if !ok || pending.seq != seq {
		return false
	}
	delete(a.scheduled, key)
	return true
}
