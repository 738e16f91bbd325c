// Package inputreg holds the input/mouse/paste handler lists a
// RuntimeContext clears at the start of every frame (spec I4: a handler
// registered during render R is live only for events dispatched after R
// completes and before R+1 begins registering new handlers). Dispatch
// walks handlers strictly in registration order and stops at the first
// one that reports the event consumed.
package inputreg

// MouseButton identifies which button a mouse event concerns.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseEventKind discriminates the kind of mouse action.
type MouseEventKind uint8

const (
	MouseDown MouseEventKind = iota
	MouseUp
	MouseMoved
	MouseDrag
)

// MouseEvent is a decoded terminal mouse report.
type MouseEvent struct {
	Kind   MouseEventKind
	Button MouseButton
	Col    int
	Row    int
}

// KeyHandler handles a decoded key input; key is the raw key string
// (e.g. "a", "ctrl+c", "enter"). Returning true marks the event consumed,
// stopping further dispatch.
type KeyHandler func(key string) bool

// MouseHandler handles a decoded mouse event.
type MouseHandler func(ev MouseEvent) bool

// PasteHandler handles bracketed-paste content.
type PasteHandler func(text string) bool

// Registry is the per-frame handler list set. A RuntimeContext owns
// exactly one, cleared at the start of every render.
type Registry struct {
	keyHandlers   []KeyHandler
	mouseHandlers []MouseHandler
	pasteHandlers []PasteHandler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Reset clears all handler lists, called once at the start of each
// render pass before component functions run and re-register theirs.
func (r *Registry) Reset() {
	r.keyHandlers = r.keyHandlers[:0]
	r.mouseHandlers = r.mouseHandlers[:0]
	r.pasteHandlers = r.pasteHandlers[:0]
}

// RegisterKey appends h to the key handler list.
func (r *Registry) RegisterKey(h KeyHandler) { r.keyHandlers = append(r.keyHandlers, h) }

// RegisterMouse appends h to the mouse handler list.
func (r *Registry) RegisterMouse(h MouseHandler) { r.mouseHandlers = append(r.mouseHandlers, h) }

// RegisterPaste appends h to the paste handler list.
func (r *Registry) RegisterPaste(h PasteHandler) { r.pasteHandlers = append(r.pasteHandlers, h) }

// DispatchKey walks key handlers in registration order, stopping at the
// first one that consumes the event. Reports whether any handler did.
func (r *Registry) DispatchKey(key string) bool {
	for _, h := range r.keyHandlers {
		if h(key) {
			return true
		}
	}
	return false
}

// DispatchMouse walks mouse handlers in registration order.
func (r *Registry) DispatchMouse(ev MouseEvent) bool {
	for _, h := range r.mouseHandlers {
		if h(ev) {
			return true
		}
	}
	return false
}

// DispatchPaste walks paste handlers in registration order.
func (r *Registry) DispatchPaste(text string) bool {
	for _, h := range r.pasteHandlers {
		if h(text) {
			return true
		}
	}
	return false
}
