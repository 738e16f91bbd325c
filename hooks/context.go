// Package hooks implements the ordered per-component slot store and the
// fixed family of hook primitives (use_signal, use_state, use_effect, …)
// that component functions call during render.
package hooks

import (
	"fmt"
	"reflect"
)

// RenderCallback schedules a render. It must be safe to call from any
// goroutine, since signals set from async command callbacks invoke it.
type RenderCallback func()

// OrderError is returned (and, for hard violations, panicked with) when a
// component's hook call sequence changes between renders — the ordering
// invariant every other hook guarantee is built on.
type OrderError struct {
	Index    int
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *OrderError) Error() string {
	return fmt.Sprintf(
		"hook order violation at slot %d: expected %v, got %v — hooks must be called "+
			"unconditionally and in the same order on every render; move conditional "+
			"logic inside the hook or split into separate components",
		e.Index, e.Expected, e.Actual,
	)
}

// EffectCleanup is returned by an effect callback to be run before the
// effect re-runs (deps changed) or on unmount.
type EffectCleanup func()

// EffectFunc is the callback passed to UseEffect/UseLayoutEffect.
type EffectFunc func() EffectCleanup

type effectEntry struct {
	slot int
	fn   EffectFunc
	// layout marks this as a layout effect, queued for the layout-effect
	// flush rather than the post-render effect flush.
	layout bool
}

type slot struct {
	value     any
	valueType reflect.Type
}

// Context is the per-component-instance ordered slot store. One Context
// exists per mounted component instance and is matched by ordinal, not by
// name, across renders — see UseHook.
type Context struct {
	slots     []slot
	index     int
	rendering bool
	firstDone bool

	pendingEffects       []effectEntry
	pendingLayoutEffects []effectEntry
	cleanups             map[int]EffectCleanup
	layoutCleanups       map[int]EffectCleanup

	renderCallback RenderCallback
}

// NewContext creates an empty hook context for a freshly mounted component
// instance.
func NewContext() *Context {
	return &Context{
		cleanups:       make(map[int]EffectCleanup),
		layoutCleanups: make(map[int]EffectCleanup),
	}
}

// SetRenderCallback installs the callback signals invoke to schedule a
// render. It is propagated to every Signal created via UseSignal.
func (c *Context) SetRenderCallback(cb RenderCallback) { c.renderCallback = cb }

// RenderCallback returns the currently installed render callback, or nil.
func (c *Context) RenderCallback() RenderCallback { return c.renderCallback }

// BeginRender resets the slot cursor and effect queues for a new render
// pass. Must be paired with EndRender.
func (c *Context) BeginRender() {
	c.index = 0
	c.pendingEffects = c.pendingEffects[:0]
	c.pendingLayoutEffects = c.pendingLayoutEffects[:0]
	c.rendering = true
}

// EndRender marks the render pass complete; subsequent UseHook calls with a
// mismatched type will panic with *OrderError.
func (c *Context) EndRender() {
	c.rendering = false
	c.firstDone = true
}

// UseHook is the primitive every other hook is built on: on first visit it
// allocates a slot by calling init; on every subsequent visit it advances
// the cursor and returns the existing value, panicking if the requested
// type no longer matches what occupied this slot on the previous render.
func UseHook[T any](c *Context, init func() T) *T {
	index := c.index
	c.index++

	wantType := reflect.TypeOf((*T)(nil)).Elem()

	if index >= len(c.slots) {
		v := init()
		c.slots = append(c.slots, slot{value: &v, valueType: wantType})
		return c.slots[index].value.(*T)
	}

	s := &c.slots[index]
	if c.firstDone && s.valueType != wantType {
		panic(&OrderError{Index: index, Expected: s.valueType, Actual: wantType})
	}
	return s.value.(*T)
}

// SlotCount reports how many hook slots this instance currently has,
// primarily useful for tests asserting P1 (hook order) stability.
func (c *Context) SlotCount() int { return len(c.slots) }

// queueEffect schedules fn to run after the render pass completes if deps
// changed (the caller — UseEffect — has already made that decision).
func (c *Context) queueEffect(slotIndex int, fn EffectFunc, layout bool) {
	entry := effectEntry{slot: slotIndex, fn: fn, layout: layout}
	if layout {
		c.pendingLayoutEffects = append(c.pendingLayoutEffects, entry)
	} else {
		c.pendingEffects = append(c.pendingEffects, entry)
	}
}

// RunLayoutEffects runs queued layout effects. Per this implementation's
// resolution of the spec's open question, layout effects run after the
// layout solve and before the dirty-row paint of the same frame — a
// genuinely earlier phase than post-render effects, not a collapse.
func (c *Context) RunLayoutEffects() {
	runQueue(c.pendingLayoutEffects, c.layoutCleanups)
	c.pendingLayoutEffects = c.pendingLayoutEffects[:0]
}

// RunEffects runs queued post-render effects, invoking each slot's previous
// cleanup (if any) first.
func (c *Context) RunEffects() {
	runQueue(c.pendingEffects, c.cleanups)
	c.pendingEffects = c.pendingEffects[:0]
}

func runQueue(queue []effectEntry, cleanups map[int]EffectCleanup) {
	for _, entry := range queue {
		if prev, ok := cleanups[entry.slot]; ok && prev != nil {
			prev()
		}
		cleanups[entry.slot] = entry.fn()
	}
}

// Unmount runs every remaining cleanup in reverse slot order, per the
// spec's effect-cleanup-ordering rule, then clears the context.
func (c *Context) Unmount() {
	maxSlot := -1
	for s := range c.cleanups {
		if s > maxSlot {
			maxSlot = s
		}
	}
	for s := range c.layoutCleanups {
		if s > maxSlot {
			maxSlot = s
		}
	}
	for s := maxSlot; s >= 0; s-- {
		if cleanup, ok := c.layoutCleanups[s]; ok && cleanup != nil {
			cleanup()
		}
		if cleanup, ok := c.cleanups[s]; ok && cleanup != nil {
			cleanup()
		}
	}
	c.cleanups = make(map[int]EffectCleanup)
	c.layoutCleanups = make(map[int]EffectCleanup)
	c.slots = nil
	c.index = 0
	c.firstDone = false
}

// currentContext is the single "UI thread" hook context in scope for the
// duration of one with_hooks call. Rendering is single-threaded and
// cooperative (spec §5), so a package-level pointer plays the role the
// original implementation gives a thread-local: it is only ever mutated
// from the one goroutine driving the render loop.
var currentContext *Context

// Current returns the hook context bound for the current render, or nil if
// none is active.
func Current() *Context { return currentContext }

// WithHooks binds ctx as the current hook context for the duration of fn,
// running BeginRender/EndRender around it (queued effects are not run here;
// RunLayoutEffects and RunEffects are called separately) and restoring whatever
// context (possibly nil) was previously bound — so nested use from an
// effect callback that itself triggers a nested with_runtime still resolves
// to the right slot store.
func WithHooks(ctx *Context, fn func()) {
	prev := currentContext
	currentContext = ctx
	defer func() { currentContext = prev }()

	ctx.BeginRender()
	defer func() {
		ctx.EndRender()
	}()
	fn()
}
