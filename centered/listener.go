package centered

// SelectionListener is notified when the settled selection changes.
//
// Listeners are kept in a set keyed by interface identity, so implementations
// must be comparable. Pointer receivers are the usual choice; use
// [ListenerFunc] to register a plain function.
type SelectionListener interface {
	SelectionChanged(previous, next int)
}

type funcListener struct {
	fn func(previous, next int)
}

func (l *funcListener) SelectionChanged(previous, next int) {
	l.fn(previous, next)
}

// ListenerFunc wraps fn in a listener with its own identity. Keep the
// returned value around to remove it later.
func ListenerFunc(fn func(previous, next int)) SelectionListener {
	return &funcListener{fn: fn}
}

// listenerSet is an insertion-ordered set of listeners.
type listenerSet struct {
	order []SelectionListener
	index map[SelectionListener]int
}

func (s *listenerSet) add(l SelectionListener) bool {
	if l == nil {
		return false
	}
	if s.index == nil {
		s.index = make(map[SelectionListener]int)
	}
	if _, ok := s.index[l]; ok {
		return false
	}
	s.index[l] = len(s.order)
	s.order = append(s.order, l)
	return true
}

func (s *listenerSet) remove(l SelectionListener) bool {
	if l == nil {
		return false
	}
	i, ok := s.index[l]
	if !ok {
		return false
	}
	delete(s.index, l)
	s.order = append(s.order[:i], s.order[i+1:]...)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	return true
}

func (s *listenerSet) len() int {
	return len(s.order)
}

// snapshot returns the listeners at the time of the call so that a listener
// removing itself does not disturb the notification loop.
func (s *listenerSet) snapshot() []SelectionListener {
	out := make([]SelectionListener, len(s.order))
	copy(out, s.order)
	return out
}
