// Package app is the App Runner: the event loop that polls input,
// dispatches it, drives renders at a paced frame rate, and services the
// small queues (terminal commands, mode switches, exec requests,
// println) a runtime.Context accumulates during render. Grounded on
// original_source's renderer/runtime.rs (EventLoop::run/handle_event)
// and renderer/frame_rate.rs.
package app

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// SuspendHandler tracks a requested Ctrl+Z suspend-to-shell and whether
// the process has since been resumed, ported from
// original_source's runtime/suspend.rs SuspendHandler. Unlike the
// original, which shells out to libc.raise(SIGTSTP), SuspendSelf here
// delivers SIGTSTP via the Go runtime's own signal machinery — no cgo
// needed.
type SuspendHandler struct {
	suspendRequested atomic.Bool
	resumed          atomic.Bool
}

// NewSuspendHandler creates a handler with nothing pending.
func NewSuspendHandler() *SuspendHandler { return &SuspendHandler{} }

// RequestSuspend marks that a suspend was requested (called on Ctrl+Z
// detection in the event loop).
func (h *SuspendHandler) RequestSuspend() { h.suspendRequested.Store(true) }

// TakeSuspendRequest reports whether a suspend was requested and clears
// the flag.
func (h *SuspendHandler) TakeSuspendRequest() bool { return h.suspendRequested.Swap(false) }

// SuspendRequested reports whether a suspend was requested, without
// clearing the flag.
func (h *SuspendHandler) SuspendRequested() bool { return h.suspendRequested.Load() }

// MarkResumed marks that the process has been resumed after a suspend.
func (h *SuspendHandler) MarkResumed() { h.resumed.Store(true) }

// TakeResumed reports whether the process was resumed and clears the
// flag.
func (h *SuspendHandler) TakeResumed() bool { return h.resumed.Swap(false) }

// SuspendSelf sends SIGTSTP to the current process, suspending it; the
// shell resumes it with `fg`. Unix only: it calls syscall.Kill with
// SIGTSTP, and there is no fallback for other platforms.
func SuspendSelf() error {
	return syscall.Kill(os.Getpid(), syscall.SIGTSTP)
}

// NotifyResume registers ch to receive a value whenever the process
// receives SIGCONT (i.e. resumed via `fg` after SuspendSelf), so the
// event loop can call MarkResumed and trigger a repaint.
func NotifyResume(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGCONT)
}
