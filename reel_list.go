package reel

import (
	"fmt"
	"time"

	"github.com/ayn2op/reel/centered"
	"github.com/ayn2op/reel/keybind"
	"github.com/gdamore/tcell/v3"
)

// DefaultSettleDelay is how long a reel waits after the last wheel event
// before it snaps to the nearest item and reports the selection.
const DefaultSettleDelay = 150 * time.Millisecond

// ReelList is a vertical list of strings laid out by a [centered.Engine]: the
// item nearest the vertical center is the selection and scrolling always
// settles with an item centered.
//
// ReelList is the engine's Materializer. Rows are kept in a free list and
// rebound to other indices as the reel moves, so only the visible rows exist
// at any time.
//
// Navigation uses the bindings of [keybind.ReelKeyMap]. Key steps settle
// immediately; wheel scrolling settles once the wheel has been still for the
// settle delay.
type ReelList struct {
	*Box

	engine *centered.Engine[*ReelItem]
	items  []string

	itemHeight int
	indent     int
	pool       []*ReelItem
	live       int

	itemStyle     tcell.Style
	selectedStyle tcell.Style

	scrollBar     *ScrollBar
	showScrollBar bool

	settleDelay time.Duration
	settleKey   string
	keyMap      keybind.ReelKeyMap

	// The viewport of the last layout and whether the data changed since.
	viewport    centered.Viewport
	needsLayout bool

	selectionChanged centered.SelectionListener
}

// NewReelList returns an empty reel with one-row items.
func NewReelList() *ReelList {
	l := &ReelList{
		Box:           NewBox(),
		itemHeight:    1,
		itemStyle:     tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
		selectedStyle: tcell.StyleDefault.Foreground(Styles.SecondaryTextColor).Bold(true),
		scrollBar:     NewScrollBar(),
		settleDelay:   DefaultSettleDelay,
		keyMap:        keybind.DefaultReelKeyMap(),
		needsLayout:   true,
	}
	l.settleKey = fmt.Sprintf("reel-settle-%p", l)
	l.engine = centered.New[*ReelItem](l)
	bindDirtyParent(l.scrollBar, l.Box)
	return l
}

// SetItems replaces the data. The next draw lays the reel out again; the
// scroll position is kept and pulled back into range if the reel shrank.
func (l *ReelList) SetItems(items []string) *ReelList {
	l.items = items
	l.needsLayout = true
	l.MarkDirty()
	return l
}

// Items returns the data.
func (l *ReelList) Items() []string {
	return l.items
}

// GetItemCount returns the number of items.
func (l *ReelList) GetItemCount() int {
	return len(l.items)
}

// SetItemHeight sets the number of rows every item occupies. Values below one
// are raised to one.
func (l *ReelList) SetItemHeight(height int) *ReelList {
	height = max(height, 1)
	if l.itemHeight != height {
		l.itemHeight = height
		l.needsLayout = true
		l.MarkDirty()
	}
	return l
}

// SetIndent sets the number of blank cells before the text of every item.
func (l *ReelList) SetIndent(indent int) *ReelList {
	indent = max(indent, 0)
	if l.indent != indent {
		l.indent = indent
		l.MarkDirty()
	}
	return l
}

// SetItemStyle sets the style of items.
func (l *ReelList) SetItemStyle(style tcell.Style) *ReelList {
	if l.itemStyle != style {
		l.itemStyle = style
		l.MarkDirty()
	}
	return l
}

// SetSelectedStyle sets the style of the selected item.
func (l *ReelList) SetSelectedStyle(style tcell.Style) *ReelList {
	if l.selectedStyle != style {
		l.selectedStyle = style
		l.MarkDirty()
	}
	return l
}

// SetTransformer installs the transformer applied to visible items. Nil
// draws every item fully opaque.
func (l *ReelList) SetTransformer(t centered.Transformer[*ReelItem]) *ReelList {
	l.engine.SetTransformer(t)
	l.needsLayout = true
	l.MarkDirty()
	return l
}

// SetScrollBar shows or hides the scroll bar in the rightmost column.
func (l *ReelList) SetScrollBar(show bool) *ReelList {
	if l.showScrollBar != show {
		l.showScrollBar = show
		l.MarkDirty()
	}
	return l
}

// ScrollBar returns the scroll bar so it can be styled.
func (l *ReelList) ScrollBar() *ScrollBar {
	return l.scrollBar
}

// SetSettleDelay sets how long wheel scrolling has to pause before the reel
// snaps.
func (l *ReelList) SetSettleDelay(delay time.Duration) *ReelList {
	l.settleDelay = max(delay, 0)
	return l
}

// SetKeyMap replaces the navigation bindings.
func (l *ReelList) SetKeyMap(keyMap keybind.ReelKeyMap) *ReelList {
	l.keyMap = keyMap
	return l
}

// KeyMap returns the navigation bindings.
func (l *ReelList) KeyMap() keybind.ReelKeyMap {
	return l.keyMap
}

// SetSelectionChangedFunc sets the handler called when the settled selection
// changes. It replaces the previous handler; use AddSelectionListener to
// register more than one.
func (l *ReelList) SetSelectionChangedFunc(handler func(previous, next int)) *ReelList {
	if l.selectionChanged != nil {
		l.engine.RemoveSelectionListener(l.selectionChanged)
		l.selectionChanged = nil
	}
	if handler != nil {
		l.selectionChanged = centered.ListenerFunc(handler)
		l.engine.AddSelectionListener(l.selectionChanged)
	}
	return l
}

// AddSelectionListener registers a listener for settled selection changes.
func (l *ReelList) AddSelectionListener(listener centered.SelectionListener) *ReelList {
	l.engine.AddSelectionListener(listener)
	return l
}

// RemoveSelectionListener unregisters a listener.
func (l *ReelList) RemoveSelectionListener(listener centered.SelectionListener) *ReelList {
	l.engine.RemoveSelectionListener(listener)
	return l
}

// Selection returns the index of the item nearest the center, or
// centered.NoSelection.
func (l *ReelList) Selection() int {
	return l.engine.Selection()
}

// SelectedText returns the text of the selected item.
func (l *ReelList) SelectedText() (string, bool) {
	selection := l.engine.Selection()
	if selection < 0 || selection >= len(l.items) {
		return "", false
	}
	return l.items[selection], true
}

// Engine returns the layout engine. It is laid out on draw.
func (l *ReelList) Engine() *centered.Engine[*ReelItem] {
	return l.engine
}

// Create binds a pooled row to index.
func (l *ReelList) Create(index int) *ReelItem {
	var item *ReelItem
	if n := len(l.pool); n > 0 {
		item = l.pool[n-1]
		l.pool[n-1] = nil
		l.pool = l.pool[:n-1]
	} else {
		item = &ReelItem{}
	}
	item.bind(index, l.itemText(index))
	l.live++
	return item
}

// Measure returns the configured item height.
func (l *ReelList) Measure(item *ReelItem) int {
	return l.itemHeight
}

// Place records where item goes and refreshes its text, which may have
// changed since it was created. Alpha starts opaque again; the transformer
// runs after Place.
func (l *ReelList) Place(item *ReelItem, rect centered.Rect) {
	item.rect = rect
	item.text = l.itemText(item.index)
	item.alpha = 1
}

// Release returns item to the pool.
func (l *ReelList) Release(item *ReelItem) {
	item.reset()
	l.pool = append(l.pool, item)
	l.live--
}

func (l *ReelList) itemText(index int) string {
	if index < 0 || index >= len(l.items) {
		return ""
	}
	return l.items[index]
}

// ScrollToIndex centers the item at index and settles.
func (l *ReelList) ScrollToIndex(index int) Command {
	if l.engine.ItemHeight() <= 0 {
		return nil
	}
	l.engine.ScrollToIndex(index)
	return l.settle()
}

// step moves the selection by delta items and settles.
func (l *ReelList) step(delta int) Command {
	selection := l.engine.Selection()
	if selection == centered.NoSelection {
		return nil
	}
	return l.ScrollToIndex(selection + delta)
}

// pageSize is the number of items in half the viewport.
func (l *ReelList) pageSize() int {
	h := l.engine.ItemHeight()
	if h <= 0 {
		return 1
	}
	return max(l.engine.Viewport().Height()/2/h, 1)
}

// settle snaps the nearest item to the center and reports the selection.
func (l *ReelList) settle() Command {
	l.engine.ScrollBy(l.engine.SnapDelta())
	l.engine.NotifyIdle()
	l.syncScrollBar()
	l.MarkDirty()
	return RedrawCommand{}
}

// scroll moves the reel by dy rows without settling and asks for a settle
// once the reel has been still for the settle delay.
func (l *ReelList) scroll(dy int) Command {
	if l.engine.ScrollBy(dy) == 0 {
		return nil
	}
	l.syncScrollBar()
	l.MarkDirty()
	return AppendCommand(RedrawCommand{}, ScheduleCommand{After: l.settleDelay, Key: l.settleKey, Fire: l.settle})
}

// InputHandler moves the selection.
func (l *ReelList) InputHandler(event *tcell.EventKey) Command {
	keys := l.keyMap
	switch {
	case keybind.Matches(event, keys.Up):
		return l.step(-1)
	case keybind.Matches(event, keys.Down):
		return l.step(1)
	case keybind.Matches(event, keys.PageUp):
		return l.step(-l.pageSize())
	case keybind.Matches(event, keys.PageDown):
		return l.step(l.pageSize())
	case keybind.Matches(event, keys.Top):
		return l.ScrollToIndex(0)
	case keybind.Matches(event, keys.Bottom):
		return l.ScrollToIndex(len(l.items) - 1)
	}
	return nil
}

// MouseHandler scrolls with the wheel and centers clicked items.
func (l *ReelList) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !l.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseScrollUp:
		return nil, l.scroll(-1)
	case MouseScrollDown:
		return nil, l.scroll(1)
	case MouseLeftClick:
		_, innerY, _, _ := l.GetInnerRect()
		if index := l.engine.IndexAt(y - innerY); index >= 0 {
			return nil, l.ScrollToIndex(index)
		}
	}
	return nil, nil
}

// Draw draws this primitive onto the screen.
func (l *ReelList) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	listWidth := width - l.scrollBarWidth()
	l.layout(listWidth, height)
	if listWidth <= 0 || height <= 0 {
		return
	}

	clipped := newClippedScreen(screen, x, y, listWidth, height)
	background := l.GetBackgroundColor()
	selection := l.engine.Selection()
	for index, item := range l.engine.Items() {
		item.SetSelected(index == selection)
		style := l.itemStyle
		if item.Selected() {
			style = l.selectedStyle
		}
		item.draw(clipped, x, y, l.indent, fade(style, background, item.Alpha()))
	}

	if l.showScrollBar && width > 1 {
		l.scrollBar.SetRect(x+listWidth, y, 1, height)
		l.scrollBar.Draw(screen)
	}
}

func (l *ReelList) scrollBarWidth() int {
	if l.showScrollBar {
		_, _, width, _ := l.GetInnerRect()
		if width > 1 {
			return 1
		}
	}
	return 0
}

// layout runs a full engine layout when the viewport or the data changed.
// A relayout while the reel is idle snaps again and reports the selection,
// which may now point at a different item.
func (l *ReelList) layout(width, height int) {
	v := centered.NewViewport(width, height, centered.Insets{})
	if !l.needsLayout && v == l.viewport && l.engine.ItemCount() == len(l.items) {
		return
	}
	l.engine.Layout(v, len(l.items))
	l.viewport = v
	l.needsLayout = false
	if l.engine.State() == centered.Idle {
		l.engine.ScrollBy(l.engine.SnapDelta())
		l.engine.NotifyIdle()
	}
	l.syncScrollBar()
}

func (l *ReelList) syncScrollBar() {
	l.scrollBar.SetScroll(l.engine.ScrollY(), l.engine.MaxScrollY(), l.engine.Viewport().Height())
}

// MarkClean marks the list and its scroll bar as clean.
func (l *ReelList) MarkClean() {
	l.Box.MarkClean()
	l.scrollBar.MarkClean()
}

var (
	_ Primitive                        = &ReelList{}
	_ centered.Materializer[*ReelItem] = &ReelList{}
	_ centered.Transformer[*ReelItem]  = &AlphaTransformer{}
)
