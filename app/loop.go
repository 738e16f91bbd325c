package app

import (
	"time"

	"github.com/majiayu000/rnk/command"
	"github.com/majiayu000/rnk/runtime"
)

// Loop is the App Runner's event loop, ported from original_source's
// EventLoop::run/handle_event: drain queues, poll input, dispatch,
// check exit/suspend, render if requested and frame-rate paced, repeat.
type Loop struct {
	RT          *runtime.Context
	FrameRate   *FrameRateController
	Suspend     *SuspendHandler
	ExitOnCtrlC bool
	Input       InputSource

	// OnRender builds one frame (component render, reconcile, layout
	// solve, paint, flush) and reports how long it took.
	OnRender func() (time.Duration, error)

	// OnTerminalCmd services one queued terminal command; OnModeSwitch
	// one requested composition-mode switch; OnExec one pending exec
	// request; OnPrintln one queued println. All are optional — a nil
	// hook means that queue is drained and discarded.
	OnTerminalCmd func(command.TerminalCmd)
	OnModeSwitch  func(runtime.CompositionMode)
	OnExec        func(runtime.ExecRequest)
	OnPrintln     func(runtime.PrintlnRequest)

	// OnResize services a terminal resize event, normally wired to a
	// Renderer's Resize so the next frame solves and paints at the new
	// size. Optional — a nil hook means resize events only trigger the
	// render request every event already carries.
	OnResize func(width, height int)

	// PollIntervalMs is how long Input.Poll blocks per iteration before
	// returning with ok=false; defaults to 10ms if zero.
	PollIntervalMs int
}

func (l *Loop) pollInterval() int {
	if l.PollIntervalMs <= 0 {
		return 10
	}
	return l.PollIntervalMs
}

// Run drives the loop until the runtime requests exit, a suspend is
// requested (the caller is expected to call SuspendSelf and, on resume,
// call Run again), or OnRender/Input.Poll returns a fatal error.
func (l *Loop) Run() error {
	if err := l.renderFrame(); err != nil {
		return err
	}

	for {
		l.drainQueues()

		ev, ok, err := l.Input.Poll(l.pollInterval())
		if err != nil {
			return err
		}
		if ok {
			l.handleEvent(ev)
		}

		if l.RT.ExitRequested() {
			return nil
		}
		if l.Suspend.TakeSuspendRequest() {
			l.RT.Logger.Debug("suspend requested, returning control to caller")
			return nil
		}

		if l.RT.RenderRequested() && l.FrameRate.ShouldRender() {
			l.RT.ClearRenderRequest()
			if err := l.renderFrame(); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) renderFrame() error {
	start := time.Now()
	if _, err := l.OnRender(); err != nil {
		l.RT.Logger.Error("render failed", "error", err)
		return err
	}
	l.FrameRate.RecordFrame(time.Since(start))
	return nil
}

func (l *Loop) drainQueues() {
	if l.OnTerminalCmd != nil {
		for _, tc := range l.RT.DrainTerminalCmds() {
			l.OnTerminalCmd(tc)
		}
	} else {
		l.RT.DrainTerminalCmds()
	}

	if mode, ok := l.RT.TakeModeSwitch(); ok && l.OnModeSwitch != nil {
		l.OnModeSwitch(mode)
	}

	if req, ok := l.RT.TakeExecRequest(); ok && l.OnExec != nil {
		l.OnExec(req)
	}

	if l.OnPrintln != nil {
		for _, p := range l.RT.DrainPrintln() {
			l.OnPrintln(p)
		}
	} else {
		l.RT.DrainPrintln()
	}
}

func (l *Loop) handleEvent(ev Event) {
	switch ev.Kind {
	case EventKey:
		if ev.KeyRepeat {
			return
		}
		if l.ExitOnCtrlC && ev.Ctrl && ev.Key == "c" {
			l.RT.RequestExit()
			return
		}
		if ev.Ctrl && ev.Key == "z" {
			l.Suspend.RequestSuspend()
			return
		}
		l.RT.Input.DispatchKey(ev.Key)
		l.RT.RequestRender()
	case EventMouse:
		l.RT.Input.DispatchMouse(ev.Mouse)
		l.RT.RequestRender()
	case EventPaste:
		l.RT.Input.DispatchPaste(ev.Paste)
		l.RT.RequestRender()
	case EventResize:
		if l.OnResize != nil {
			l.OnResize(ev.Width, ev.Height)
		}
		l.RT.RequestRender()
	}
}
