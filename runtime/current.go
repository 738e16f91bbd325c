package runtime

import "github.com/majiayu000/rnk/hooks"

// currentRuntime is the single application instance bound for the
// duration of one WithRuntime call, the runtime-level counterpart to
// hooks.currentContext. Rendering is single-threaded and cooperative
// (spec.md §5), so a package-level pointer is safe: it is only ever
// mutated from the one goroutine driving the render loop, exactly as
// original_source's runtime.rs exposes current_runtime() against a
// thread-local cell.
var currentRuntime *Context

// Current returns the runtime instance bound for the current render, or
// nil if none is active.
func Current() *Context { return currentRuntime }

// WithRuntime binds rt as the current runtime for the duration of fn,
// restoring whatever instance (possibly nil) was previously bound
// afterward. Nested calls are supported — an effect callback that itself
// triggers work under a different runtime still resolves correctly once
// its WithRuntime call returns.
func WithRuntime(rt *Context, fn func()) {
	prev := currentRuntime
	currentRuntime = rt
	defer func() { currentRuntime = prev }()
	fn()
}

// RunFrame performs all four steps of one frame's with_runtime contract:
// bind rt as the current runtime, run its start-of-frame bookkeeping
// (prepare_render), bind hooksCtx as the current hook context for the
// render pass, run body, then unwind both bindings in reverse order.
// WithRuntime alone only performs the bind/restore half of this (steps 1
// and 4); every production render goes through RunFrame instead, so a
// component never needs to hand-compose BeginFrame and hooks.WithHooks
// itself the way tests in this package still do for isolation.
func RunFrame(rt *Context, hooksCtx *hooks.Context, body func()) {
	WithRuntime(rt, func() {
		rt.BeginFrame()
		hooks.WithHooks(hooksCtx, body)
	})
}
