package reel

import "time"

// Command is a side effect a primitive asks for while handling an event. The
// Application executes it on the event loop.
type Command any

// BatchCommand executes its commands in order.
type BatchCommand []Command

// AppendCommand combines current and next into one command. Nil commands
// vanish and batches are flattened.
func AppendCommand(current, next Command) Command {
	if next == nil {
		return current
	}
	if current == nil {
		return next
	}
	var batch BatchCommand
	for _, c := range []Command{current, next} {
		if inner, ok := c.(BatchCommand); ok {
			batch = append(batch, inner...)
		} else {
			batch = append(batch, c)
		}
	}
	return batch
}

// SetFocusCommand moves the keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand redraws the screen once the event is handled.
type RedrawCommand struct{}

// QuitCommand stops the application.
type QuitCommand struct{}

// ConsumeEventCommand marks an event as handled without asking for a redraw.
type ConsumeEventCommand struct{}

// ScheduleCommand runs Fire on the event loop once After has elapsed and
// executes the command it returns. Scheduling again with the same non-empty
// Key replaces the pending run, which is how settle timers are debounced.
type ScheduleCommand struct {
	After time.Duration
	Key   string
	Fire  func() Command
}
