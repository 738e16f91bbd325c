package app

import "github.com/majiayu000/rnk/runtime/inputreg"

// EventKind discriminates the kind of terminal event the input source
// delivered.
type EventKind uint8

const (
	EventKey EventKind = iota
	EventMouse
	EventPaste
	EventResize
)

// Event is one decoded terminal event. The app runner itself never
// parses raw bytes — an InputSource implementation owns that — it only
// dispatches already-decoded events in the order
// original_source's EventLoop::handle_event does.
type Event struct {
	Kind EventKind

	Key       string
	Ctrl      bool
	KeyRepeat bool // true for key-repeat/release reports, ignored like the original's KeyEventKind::Press check

	Mouse inputreg.MouseEvent

	Paste string

	Width, Height int
}

// InputSource polls for the next terminal event, blocking up to timeout.
// ok is false on a timeout with no event; err is non-nil only on a fatal
// read error.
type InputSource interface {
	Poll(timeoutMs int) (ev Event, ok bool, err error)
}
