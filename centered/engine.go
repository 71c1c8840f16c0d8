// Package centered implements the reel layout: a virtualized, single-column
// list of equally tall items whose scroll position maps onto the item sitting
// under the vertical center of the viewport.
//
// The engine never draws anything itself. Items are obtained from, placed
// through and handed back to a [Materializer], and an optional [Transformer]
// decorates each visible item according to its distance from the center.
// The engine is not safe for concurrent use; drive it from a single goroutine
// and never call back into it from a Materializer, Transformer or
// SelectionListener.
package centered

import (
	"iter"
	"maps"
	"slices"
)

// NoSelection is returned by [Engine.Selection] while no item can be selected.
const NoSelection = -1

// ScrollState is the settle state of the engine as reported by the host.
type ScrollState int

const (
	// Idle means the host reported that scrolling has stopped.
	Idle ScrollState = iota
	// Scrolling means a scroll step happened since the last idle report.
	Scrolling
)

func (s ScrollState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scrolling:
		return "scrolling"
	default:
		return "unknown"
	}
}

// Materializer creates, measures, places and releases concrete items.
type Materializer[T any] interface {
	// Create returns an item bound to the given index. The engine only asks
	// for indices in [0, itemCount).
	Create(index int) T
	// Measure returns the height of the item.
	Measure(item T) int
	// Place positions the item.
	Place(item T, rect Rect)
	// Release hands the item back. The engine does not touch it afterwards.
	Release(item T)
}

// Transformer decorates a visible item. offset is the distance between the
// item's vertical center and the viewport's, divided by half the viewport
// height and clamped to [-1, 1]; negative values are above the center.
type Transformer[T any] interface {
	Apply(item T, index, slot int, offset float64)
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc[T any] func(item T, index, slot int, offset float64)

// Apply calls f.
func (f TransformerFunc[T]) Apply(item T, index, slot int, offset float64) {
	f(item, index, slot, offset)
}

// Option configures an Engine.
type Option[T any] func(*Engine[T])

// WithTransformer installs a transformer.
func WithTransformer[T any](t Transformer[T]) Option[T] {
	return func(e *Engine[T]) {
		e.transformer = t
	}
}

type attachedItem[T any] struct {
	index int
	item  T
	rect  Rect
}

// Engine lays out a reel.
type Engine[T any] struct {
	materializer Materializer[T]
	transformer  Transformer[T]
	listeners    listenerSet

	// Geometry, recomputed by every full layout.
	viewport     Viewport
	itemCount    int
	childHeight  int
	centerY      int
	topOffset    int
	bottomOffset int
	maxScrollY   int

	scrollY int

	// The last selection reported to listeners.
	previousSelection int
	state             ScrollState

	// Items on screen, in index order.
	attached []attachedItem[T]
	// Detached items waiting to be reclaimed by the next render, by index.
	scrap map[int]T
}

// New returns an engine that obtains its items from m. It panics if m is nil.
func New[T any](m Materializer[T], opts ...Option[T]) *Engine[T] {
	if m == nil {
		panic("centered: nil materializer")
	}
	e := &Engine[T]{
		materializer:      m,
		previousSelection: NoSelection,
		scrap:             make(map[int]T),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetTransformer installs t. A nil transformer leaves items untouched. The
// new transformer applies from the next layout or scroll step.
func (e *Engine[T]) SetTransformer(t Transformer[T]) {
	e.transformer = t
}

// Transformer returns the installed transformer, if any.
func (e *Engine[T]) Transformer() Transformer[T] {
	return e.transformer
}

// Layout runs a full layout pass for the given viewport and item count.
//
// Every attached item is detached first and reused if its index is still
// visible. The item height is sampled from item 0 and the scroll range is
// recomputed; the scroll position is kept where possible and pulled back into
// range otherwise.
func (e *Engine[T]) Layout(v Viewport, itemCount int) {
	e.detachAll()

	e.viewport = v
	e.itemCount = max(itemCount, 0)
	if e.itemCount == 0 {
		e.childHeight = 0
		e.centerY = v.CenterY()
		e.topOffset, e.bottomOffset = 0, 0
		e.maxScrollY, e.scrollY = 0, 0
		e.recycle()
		return
	}

	e.calculateDimensions()
	e.render()
	e.recycle()
}

// ScrollBy scrolls by dy and returns the delta actually consumed, which is
// smaller than dy in magnitude when an end of the reel is reached. Reels with
// fewer than two items never scroll.
func (e *Engine[T]) ScrollBy(dy int) int {
	if e.itemCount < 2 || e.childHeight <= 0 {
		return 0
	}
	e.state = Scrolling

	last := e.scrollY
	e.scrollY = min(max(e.scrollY+dy, 0), e.maxScrollY)

	e.detachAll()
	e.render()
	e.recycle()

	return e.scrollY - last
}

// ScrollToIndex scrolls so that the item at index is centered. The index is
// clamped to the item range. It returns the consumed delta.
func (e *Engine[T]) ScrollToIndex(index int) int {
	if e.itemCount == 0 || e.childHeight <= 0 {
		return 0
	}
	index = min(max(index, 0), e.itemCount-1)
	return e.ScrollBy(index*e.childHeight - e.scrollY)
}

// SnapDelta returns the scroll delta that centers the current selection.
func (e *Engine[T]) SnapDelta() int {
	selection := e.Selection()
	if selection == NoSelection {
		return 0
	}
	target := min(selection*e.childHeight, e.maxScrollY)
	return target - e.scrollY
}

// NotifyIdle tells the engine that scrolling has settled. Listeners are
// notified, in registration order, when the selection differs from the one
// reported last time.
func (e *Engine[T]) NotifyIdle() {
	e.state = Idle

	next := e.Selection()
	if next == e.previousSelection {
		return
	}
	previous := e.previousSelection
	for _, l := range e.listeners.snapshot() {
		l.SelectionChanged(previous, next)
	}
	e.previousSelection = next
}

// Selection returns the index of the item closest to the viewport center, or
// NoSelection before a layout produced a usable item height.
func (e *Engine[T]) Selection() int {
	if e.itemCount == 0 || e.childHeight <= 0 {
		return NoSelection
	}
	// Round half up: scrollY/h + 0.5, truncated.
	selection := (2*e.scrollY + e.childHeight) / (2 * e.childHeight)
	return min(max(selection, 0), e.itemCount-1)
}

// AddSelectionListener registers l. Adding a listener twice has no effect.
func (e *Engine[T]) AddSelectionListener(l SelectionListener) {
	e.listeners.add(l)
}

// RemoveSelectionListener unregisters l.
func (e *Engine[T]) RemoveSelectionListener(l SelectionListener) {
	e.listeners.remove(l)
}

// ScrollY returns the scroll position.
func (e *Engine[T]) ScrollY() int {
	return e.scrollY
}

// MaxScrollY returns the largest scroll position of the current layout.
func (e *Engine[T]) MaxScrollY() int {
	return e.maxScrollY
}

// ItemHeight returns the sampled item height, 0 before a layout.
func (e *Engine[T]) ItemHeight() int {
	return e.childHeight
}

// ItemCount returns the item count of the last layout.
func (e *Engine[T]) ItemCount() int {
	return e.itemCount
}

// Viewport returns the viewport of the last layout.
func (e *Engine[T]) Viewport() Viewport {
	return e.viewport
}

// State returns the settle state.
func (e *Engine[T]) State() ScrollState {
	return e.state
}

// VisibleRange returns the first and last attached index. ok is false when
// nothing is attached.
func (e *Engine[T]) VisibleRange() (first, last int, ok bool) {
	if len(e.attached) == 0 {
		return 0, -1, false
	}
	return e.attached[0].index, e.attached[len(e.attached)-1].index, true
}

// Items iterates over the attached items in index order.
func (e *Engine[T]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, a := range e.attached {
			if !yield(a.index, a.item) {
				return
			}
		}
	}
}

// ItemRect returns the rectangle the item at index was placed at.
func (e *Engine[T]) ItemRect(index int) (Rect, bool) {
	for _, a := range e.attached {
		if a.index == index {
			return a.rect, true
		}
	}
	return Rect{}, false
}

// IndexAt returns the attached index whose rectangle contains y, or -1.
func (e *Engine[T]) IndexAt(y int) int {
	for _, a := range e.attached {
		if y >= a.rect.Top && y < a.rect.Bottom {
			return a.index
		}
	}
	return -1
}

func (e *Engine[T]) calculateDimensions() {
	e.centerY = e.viewport.CenterY()

	// Sample the height from item 0, reusing it if it was on screen.
	sample, ok := e.scrap[0]
	if !ok {
		sample = e.materializer.Create(0)
		e.scrap[0] = sample
	}
	e.childHeight = max(e.materializer.Measure(sample), 0)

	half := e.childHeight / 2
	height := e.viewport.Height()
	e.topOffset = e.centerY - half
	e.bottomOffset = height - e.centerY - half
	e.maxScrollY = max(e.topOffset+e.itemCount*e.childHeight+e.bottomOffset-height, 0)
	e.scrollY = min(max(e.scrollY, 0), e.maxScrollY)
}

func (e *Engine[T]) render() {
	h := e.childHeight
	if h <= 0 || e.itemCount == 0 {
		return
	}

	first, top := e.firstVisible()
	for index := first; index < e.itemCount && top < e.viewport.Bottom; index++ {
		item := e.obtain(index)
		rect := Rect{
			Left:   e.viewport.Left,
			Top:    top,
			Right:  e.viewport.Right,
			Bottom: top + h,
		}
		e.materializer.Place(item, rect)
		e.attached = append(e.attached, attachedItem[T]{index: index, item: item, rect: rect})

		if e.transformer != nil {
			e.transformer.Apply(item, index, index-first, e.centerOffset(rect))
		}
		top = rect.Bottom
	}
}

// firstVisible returns the first index to render and its top edge, which may
// lie above the viewport.
func (e *Engine[T]) firstVisible() (index, top int) {
	h := e.childHeight
	if e.scrollY >= e.topOffset {
		scrolled := e.scrollY - e.topOffset
		return min(scrolled/h, e.itemCount-1), -(scrolled % h)
	}
	return 0, e.topOffset - e.scrollY
}

func (e *Engine[T]) centerOffset(rect Rect) float64 {
	offset := rect.CenterY() - e.centerY
	half := e.centerY - e.viewport.Top
	if half <= 0 {
		switch {
		case offset < 0:
			return -1
		case offset > 0:
			return 1
		}
		return 0
	}
	return min(max(float64(offset)/float64(half), -1), 1)
}

func (e *Engine[T]) obtain(index int) T {
	if item, ok := e.scrap[index]; ok {
		delete(e.scrap, index)
		return item
	}
	return e.materializer.Create(index)
}

func (e *Engine[T]) detachAll() {
	for _, a := range e.attached {
		e.scrap[a.index] = a.item
	}
	clear(e.attached)
	e.attached = e.attached[:0]
}

// recycle releases attached items that left the viewport and every scrapped
// item the last render did not reclaim.
func (e *Engine[T]) recycle() {
	kept := e.attached[:0]
	for _, a := range e.attached {
		if a.rect.Intersects(e.viewport) {
			kept = append(kept, a)
			continue
		}
		e.materializer.Release(a.item)
	}
	clear(e.attached[len(kept):])
	e.attached = kept

	for _, index := range slices.Sorted(maps.Keys(e.scrap)) {
		item := e.scrap[index]
		delete(e.scrap, index)
		e.materializer.Release(item)
	}
}
