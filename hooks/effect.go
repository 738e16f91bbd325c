package hooks

type effectSlot struct {
	deps DepsHash
	has  bool
}

// UseEffect queues effect to run after the render pass completes iff deps
// changed since the previous render (or this is the first render). The
// returned cleanup, if any, runs before the next invocation and on
// unmount.
func UseEffect(c *Context, effect EffectFunc, deps DepsHash) {
	useEffectImpl(c, effect, deps, false)
}

// UseEffectOnce is UseEffect with an always-equal deps hash, so it fires
// exactly once per mount.
func UseEffectOnce(c *Context, effect EffectFunc) {
	UseEffect(c, effect, DepsHash("__once__"))
}

// UseLayoutEffect has the same contract as UseEffect but is scheduled
// earlier: after the layout solve, before the dirty-row paint of the same
// frame. See Context.RunLayoutEffects for the implementation choice this
// makes on the spec's open question.
func UseLayoutEffect(c *Context, effect EffectFunc, deps DepsHash) {
	useEffectImpl(c, effect, deps, true)
}

func useEffectImpl(c *Context, effect EffectFunc, deps DepsHash, layout bool) {
	slotIndex := c.index
	slot := UseHook(c, func() effectSlot {
		return effectSlot{}
	})
	if !slot.has || slot.deps != deps {
		slot.deps = deps
		slot.has = true
		c.queueEffect(slotIndex, effect, layout)
	}
}
