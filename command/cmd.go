// Package command implements the unified side-effect/message command type
// (spec §7, grounded on original_source's src/cmd/core.rs and
// src/cmd/exec.rs) and the scheduler that runs it: a single goroutine
// draining a container/heap timer queue for Sleep/Tick/Every, an
// errgroup-backed pool for Batch/Perform fan-out, and a one-exec-at-a-time
// gate for Exec.
package command

import (
	"time"
)

// Kind discriminates the Cmd union.
type Kind uint8

const (
	KindNone Kind = iota
	KindBatch
	KindSequence
	KindPerform
	KindSleep
	KindTick
	KindEvery
	KindExec
	KindTerminal
)

// TerminalCmd is a stateless terminal control command, handled directly by
// the app runner rather than producing a message.
type TerminalCmd uint8

const (
	ClearScreen TerminalCmd = iota
	HideCursor
	ShowCursor
	SetWindowTitle
	WindowSize
	EnterAltScreen
	ExitAltScreen
	EnableMouse
	DisableMouse
	EnableBracketedPaste
	DisableBracketedPaste
)

// Cmd is the unified command type. Use Cmd[struct{}] for side-effect-only
// flows and Cmd[MyMsg] when commands should produce typed messages, same
// division of labor as the original's Cmd<()> / Cmd<M>.
type Cmd[M any] struct {
	Kind Kind

	Batch    []Cmd[M]
	Sequence []Cmd[M]

	Perform func() M

	SleepFor time.Duration
	Then     *Cmd[M]

	TickEvery time.Duration
	MsgFn     func(time.Time) M

	ExecConfig ExecConfig
	ExecMsgFn  func(ExecResult) M

	Terminal       TerminalCmd
	WindowTitle    string
}

// None is the no-op command.
func None[M any]() Cmd[M] { return Cmd[M]{Kind: KindNone} }

// BatchOf builds a command that runs every non-None member of cmds
// concurrently, collapsing to None or the single remaining command when
// fewer than two survive the filter — same arity-collapsing as the
// original's Cmd::batch.
func BatchOf[M any](cmds ...Cmd[M]) Cmd[M] {
	filtered := filterNone(cmds)
	switch len(filtered) {
	case 0:
		return None[M]()
	case 1:
		return filtered[0]
	default:
		return Cmd[M]{Kind: KindBatch, Batch: filtered}
	}
}

// SequenceOf builds a command that runs every non-None member of cmds in
// order, one completing before the next starts.
func SequenceOf[M any](cmds ...Cmd[M]) Cmd[M] {
	filtered := filterNone(cmds)
	switch len(filtered) {
	case 0:
		return None[M]()
	case 1:
		return filtered[0]
	default:
		return Cmd[M]{Kind: KindSequence, Sequence: filtered}
	}
}

func filterNone[M any](cmds []Cmd[M]) []Cmd[M] {
	out := make([]Cmd[M], 0, len(cmds))
	for _, c := range cmds {
		if c.Kind != KindNone {
			out = append(out, c)
		}
	}
	return out
}

// Perform calls f on the goroutine that dispatches it (the Dispatch
// caller, or the goroutine of the Batch member it belongs to) and
// delivers its return value as a message; f is not moved to a separate
// worker pool.
func Perform[M any](f func() M) Cmd[M] {
	return Cmd[M]{Kind: KindPerform, Perform: f}
}

// Sleep waits for d, then runs then (None by default).
func Sleep[M any](d time.Duration) Cmd[M] {
	none := None[M]()
	return Cmd[M]{Kind: KindSleep, SleepFor: d, Then: &none}
}

// SleepThen waits for d, then runs then.
func SleepThen[M any](d time.Duration, then Cmd[M]) Cmd[M] {
	return Cmd[M]{Kind: KindSleep, SleepFor: d, Then: &then}
}

// Tick produces a message after d elapses, stamped with the fire time.
func Tick[M any](d time.Duration, msgFn func(time.Time) M) Cmd[M] {
	return Cmd[M]{Kind: KindTick, TickEvery: d, MsgFn: msgFn}
}

// Every produces a message every d, aligned to wall-clock boundaries
// (a 1s Every fires at :00, not at d-after-registration).
func Every[M any](d time.Duration, msgFn func(time.Time) M) Cmd[M] {
	return Cmd[M]{Kind: KindEvery, TickEvery: d, MsgFn: msgFn}
}

// Exec runs an external interactive process, suspending the terminal's
// raw/alt-screen mode for the duration, and delivers the outcome.
func Exec[M any](cfg ExecConfig, msgFn func(ExecResult) M) Cmd[M] {
	return Cmd[M]{Kind: KindExec, ExecConfig: cfg, ExecMsgFn: msgFn}
}

// ExecCmd is a convenience constructor for the common case of a program
// plus flat arguments.
func ExecCmd[M any](program string, args []string, msgFn func(ExecResult) M) Cmd[M] {
	return Exec(NewExecConfig(program).WithArgs(args...), msgFn)
}

func terminal[M any](tc TerminalCmd) Cmd[M] { return Cmd[M]{Kind: KindTerminal, Terminal: tc} }

func TerminalClearScreen[M any]() Cmd[M]  { return terminal[M](ClearScreen) }
func TerminalHideCursor[M any]() Cmd[M]   { return terminal[M](HideCursor) }
func TerminalShowCursor[M any]() Cmd[M]   { return terminal[M](ShowCursor) }
func TerminalEnterAltScreen[M any]() Cmd[M] { return terminal[M](EnterAltScreen) }
func TerminalExitAltScreen[M any]() Cmd[M]  { return terminal[M](ExitAltScreen) }
func TerminalEnableMouse[M any]() Cmd[M]    { return terminal[M](EnableMouse) }
func TerminalDisableMouse[M any]() Cmd[M]   { return terminal[M](DisableMouse) }

// TerminalSetWindowTitle sets the terminal window title.
func TerminalSetWindowTitle[M any](title string) Cmd[M] {
	return Cmd[M]{Kind: KindTerminal, Terminal: SetWindowTitle, WindowTitle: title}
}
