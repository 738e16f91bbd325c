package hooks

// Ref is a mutable cell whose mutation never schedules a render — the
// escape hatch for values a component needs to remember without
// participating in the reactive render cycle (DOM-handle analogues, latch
// variables read inside event handlers, etc).
type Ref[T any] struct {
	value *T
}

// Get returns the current value.
func (r Ref[T]) Get() T { return *r.value }

// Set mutates the cell without scheduling a render.
func (r Ref[T]) Set(value T) { *r.value = value }

// UseRef stores a mutable cell that persists across renders without ever
// triggering one.
func UseRef[T any](c *Context, init func() T) Ref[T] {
	cell := UseHook(c, func() *T {
		v := init()
		return &v
	})
	return Ref[T]{value: *cell}
}
