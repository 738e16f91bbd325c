package runtime

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/majiayu000/rnk/command"
	"github.com/majiayu000/rnk/hooks"
	"github.com/majiayu000/rnk/layout"
	"github.com/majiayu000/rnk/reconciler"
	"github.com/majiayu000/rnk/runtime/focus"
	"github.com/majiayu000/rnk/runtime/inputreg"
	"github.com/majiayu000/rnk/runtime/measure"
	"github.com/majiayu000/rnk/runtime/theme"
)

// PrintlnRequest is one queued println call (spec.md §4.2: components may
// ask to print a line above the managed screen region without corrupting
// the frame currently being painted).
type PrintlnRequest struct {
	Text string
}

// ExecRequest is a command.Exec invocation the app runner must service
// outside the render pass (suspending raw mode around it).
type ExecRequest struct {
	Config   command.ExecConfig
	Callback func(command.ExecResult)
}

// Context is one application instance's full runtime state: every hook
// context keyed by the node that owns it, the previous frame's VNode
// tree, the persistent layout graph, the focus/input/measure/theme
// sub-managers, and the small queues and flags the render loop drains
// each frame. Exactly the field list spec.md §4.2 describes for
// RuntimeContext. One Context belongs to one application; nothing here
// is process-global except via the package-level "current runtime"
// pointer WithRuntime manages, which plays the same single-cooperative-
// goroutine role as hooks.currentContext.
type Context struct {
	AppID AppId

	// DebugID is a process-unique instance tag (a v4 UUID, independent
	// of the dense recyclable AppID) stamped onto every log record this
	// instance emits, so logs from concurrently running instances in a
	// test suite can be told apart even after their AppIDs are recycled.
	DebugID string
	Logger  *slog.Logger
	LogRing *RingLogHandler

	hookContexts map[reconciler.NodeKey]*hooks.Context

	PrevTree reconciler.VNode
	HasPrev  bool

	Layout *layout.Engine

	Focus   *focus.Ring
	Input   *inputreg.Registry
	Measure *measure.Cache

	theme      theme.Theme
	themeIsSet bool

	terminalQueue []command.TerminalCmd
	pendingMode   *CompositionMode

	execRequest *ExecRequest

	printlnQueue []PrintlnRequest

	exitRequested   bool
	renderRequested bool

	screenReaderOnce    sync.Once
	screenReaderProbed  bool
	screenReaderPresent bool
	probeScreenReader   func() bool

	onInvalidate func()
}

// New creates a fresh runtime instance. probeScreenReader, if non-nil, is
// invoked at most once (lazily, on first ScreenReaderDetected call) to
// answer the one-shot accessibility probe spec.md §4.2 describes;
// passing nil means the probe always reports false without side effects.
func New(probeScreenReader func() bool) (*Context, error) {
	id, err := AcquireAppId()
	if err != nil {
		return nil, err
	}
	logger, ring := NewRingLogger(0)
	debugID := uuid.NewString()
	logger = logger.With("debug_id", debugID)
	return &Context{
		AppID:             id,
		DebugID:           debugID,
		Logger:            logger,
		LogRing:           ring,
		hookContexts:      make(map[reconciler.NodeKey]*hooks.Context),
		Layout:            layout.New(),
		Focus:             focus.NewRing(),
		Input:             inputreg.NewRegistry(),
		Measure:           measure.New(),
		probeScreenReader: probeScreenReader,
	}, nil
}

// Close releases the instance's AppId and measurement resources. Call
// once, when the application exits.
func (c *Context) Close() {
	ReleaseAppId(c.AppID)
	if c.Measure != nil {
		c.Measure.Close()
	}
}

// HooksFor returns the hook context owned by key, creating one on first
// mount. Never call concurrently with a patch stream that might remove
// the same key — the render/reconcile/commit sequence is single-threaded
// per frame (spec.md §5).
func (c *Context) HooksFor(key reconciler.NodeKey) *hooks.Context {
	if ctx, ok := c.hookContexts[key]; ok {
		return ctx
	}
	ctx := hooks.NewContext()
	ctx.SetRenderCallback(c.scheduleRender)
	c.hookContexts[key] = ctx
	return ctx
}

// UnmountHooks runs and discards the hook context owned by key, called
// when the reconciler emits a Remove patch for that node.
func (c *Context) UnmountHooks(key reconciler.NodeKey) {
	ctx, ok := c.hookContexts[key]
	if !ok {
		return
	}
	ctx.Unmount()
	delete(c.hookContexts, key)
	c.Logger.Debug("unmounted component", "node_key", key)
}

// scheduleRender is the callback every hook context created by HooksFor
// uses to request a re-render: it sets the render-requested flag the
// app runner polls every loop iteration (original_source's
// runtime.request_render()), and additionally invokes onInvalidate, an
// optional hook for waking a blocked input poll.
func (c *Context) scheduleRender() {
	c.renderRequested = true
	if c.onInvalidate != nil {
		c.onInvalidate()
	}
}

// RequestRender marks that a render is needed before the next frame
// delay elapses; also used directly by the app runner after dispatching
// input, per original_source's handle_event.
func (c *Context) RequestRender() { c.scheduleRender() }

// TakeRenderRequested reports whether a render was requested and clears
// the flag unconditionally — a convenience swap for callers (tests,
// simple loops) that always render immediately after checking.
func (c *Context) TakeRenderRequested() bool {
	v := c.renderRequested
	c.renderRequested = false
	return v
}

// RenderRequested reports whether a render was requested, without
// clearing the flag — original_source's render_requested(), used by the
// app runner together with ClearRenderRequest so a render pending but
// not yet due (frame-rate paced) is not silently dropped.
func (c *Context) RenderRequested() bool { return c.renderRequested }

// ClearRenderRequest clears the render-requested flag once the app
// runner has actually rendered — original_source's clear_render_request().
func (c *Context) ClearRenderRequest() { c.renderRequested = false }

// SetInvalidateCallback installs fn as an additional hook invoked every
// time a render is requested, for waking a blocked input poll.
func (c *Context) SetInvalidateCallback(fn func()) {
	c.onInvalidate = fn
	for _, h := range c.hookContexts {
		h.SetRenderCallback(c.scheduleRender)
	}
}

// BeginFrame runs the start-of-frame bookkeeping spec.md §4.2 describes:
// clear the input/mouse/paste handler lists (components re-register them
// during this frame's render) and clear the println queue so stale
// entries from a skipped frame never double-print.
func (c *Context) BeginFrame() {
	c.Input.Reset()
	c.Focus.Reset()
	c.printlnQueue = c.printlnQueue[:0]
}

// QueueTerminalCmd appends a terminal control command for the app runner
// to drain and execute outside the render pass.
func (c *Context) QueueTerminalCmd(tc command.TerminalCmd) {
	c.terminalQueue = append(c.terminalQueue, tc)
}

// DrainTerminalCmds removes and returns every queued terminal command.
func (c *Context) DrainTerminalCmds() []command.TerminalCmd {
	q := c.terminalQueue
	c.terminalQueue = nil
	return q
}

// CompositionMode is the screen composition mode the terminal is
// rendering in.
type CompositionMode uint8

const (
	// Inline composition paints below the cursor's starting position,
	// preserving scrollback.
	Inline CompositionMode = iota
	// AltScreen composition takes over the full alternate screen buffer.
	AltScreen
)

func (m CompositionMode) String() string {
	if m == AltScreen {
		return "alt-screen"
	}
	return "inline"
}

// RequestModeSwitch marks that the app runner should transition to mode
// before the next frame (original_source's ModeSwitch::EnterAltScreen /
// ExitAltScreen, generalized to either direction through one enum).
func (c *Context) RequestModeSwitch(mode CompositionMode) {
	m := mode
	c.pendingMode = &m
	c.Logger.Debug("composition mode switch requested", "mode", mode)
}

// TakeModeSwitch returns the requested composition mode and clears the
// request, reporting whether one was pending.
func (c *Context) TakeModeSwitch() (CompositionMode, bool) {
	if c.pendingMode == nil {
		return Inline, false
	}
	m := *c.pendingMode
	c.pendingMode = nil
	return m, true
}

// SetExecRequest records a pending child-process execution for the app
// runner to service (suspending raw mode) before the next frame starts.
func (c *Context) SetExecRequest(req ExecRequest) { c.execRequest = &req }

// TakeExecRequest removes and returns the pending exec request, if any.
func (c *Context) TakeExecRequest() (ExecRequest, bool) {
	if c.execRequest == nil {
		return ExecRequest{}, false
	}
	req := *c.execRequest
	c.execRequest = nil
	return req, true
}

// Println queues a line to be printed above the managed screen region.
func (c *Context) Println(text string) {
	c.printlnQueue = append(c.printlnQueue, PrintlnRequest{Text: text})
}

// DrainPrintln removes and returns every queued println request.
func (c *Context) DrainPrintln() []PrintlnRequest {
	q := c.printlnQueue
	c.printlnQueue = nil
	return q
}

// RequestExit marks that the application should exit after this frame.
func (c *Context) RequestExit() {
	c.exitRequested = true
	c.Logger.Debug("exit requested")
}

// ExitRequested reports whether RequestExit has been called.
func (c *Context) ExitRequested() bool { return c.exitRequested }

// Theme returns this instance's theme if SetTheme has been called, else
// the package-level fallback.
func (c *Context) Theme() theme.Theme {
	if c.themeIsSet {
		return c.theme
	}
	return theme.CurrentFallback()
}

// SetTheme sets this instance's theme.
func (c *Context) SetTheme(t theme.Theme) {
	c.theme = t
	c.themeIsSet = true
}

// ScreenReaderDetected runs the one-shot screen-reader probe at most
// once and caches the result for the lifetime of the instance.
func (c *Context) ScreenReaderDetected() bool {
	c.screenReaderOnce.Do(func() {
		c.screenReaderProbed = true
		if c.probeScreenReader != nil {
			c.screenReaderPresent = c.probeScreenReader()
		}
	})
	return c.screenReaderPresent
}
