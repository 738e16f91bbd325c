package hooks

type memoSlot[T any] struct {
	value T
	deps  DepsHash
}

// UseMemo recomputes compute() only when the hash of deps differs from the
// stored hash (or on first visit).
func UseMemo[T any](c *Context, compute func() T, deps DepsHash) T {
	slot := UseHook(c, func() memoSlot[T] {
		return memoSlot[T]{value: compute(), deps: deps}
	})
	if slot.deps != deps {
		slot.value = compute()
		slot.deps = deps
	}
	return slot.value
}

// Callback is an identity-stable handle over a function whose underlying
// implementation is replaced only when its deps change.
type Callback[F any] struct {
	fn F
}

// Fn returns the wrapped function. Go has no uniform "call any function
// value" operation, so callers read Fn and call the result themselves.
func (cb Callback[F]) Fn() F { return cb.fn }

type callbackSlot[F any] struct {
	fn   F
	deps DepsHash
}

// UseCallback returns an identity-stable Callback whose Fn is replaced iff
// deps changed since the previous render.
func UseCallback[F any](c *Context, fn F, deps DepsHash) Callback[F] {
	slot := UseHook(c, func() callbackSlot[F] {
		return callbackSlot[F]{fn: fn, deps: deps}
	})
	if slot.deps != deps {
		slot.fn = fn
		slot.deps = deps
	}
	return Callback[F]{fn: slot.fn}
}
