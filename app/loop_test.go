package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majiayu000/rnk/command"
	"github.com/majiayu000/rnk/runtime"
)

type scriptedInput struct {
	events []Event
	i      int
}

func (s *scriptedInput) Poll(timeoutMs int) (Event, bool, error) {
	if s.i >= len(s.events) {
		return Event{}, false, nil
	}
	ev := s.events[s.i]
	s.i++
	return ev, true, nil
}

func newTestLoop(t *testing.T, rt *runtime.Context, input InputSource) (*Loop, *int) {
	t.Helper()
	renders := 0
	l := &Loop{
		RT:        rt,
		FrameRate: NewFrameRateController(DefaultFrameRateConfig()),
		Suspend:   NewSuspendHandler(),
		Input:     input,
		OnRender: func() (time.Duration, error) {
			renders++
			if renders >= 3 {
				rt.RequestExit()
			} else {
				rt.RequestRender()
			}
			return time.Millisecond, nil
		},
	}
	return l, &renders
}

func newRT(t *testing.T) *runtime.Context {
	t.Helper()
	rt, err := runtime.New(nil)
	require.NoError(t, err)
	t.Cleanup(rt.Close)
	return rt
}

func TestRunRendersOnceUpFrontThenExitsWhenRequested(t *testing.T) {
	rt := newRT(t)
	l, renders := newTestLoop(t, rt, &scriptedInput{})

	err := l.Run()
	require.NoError(t, err)
	assert.Equal(t, 3, *renders)
}

func TestRunDispatchesKeyEventsAndRequestsRender(t *testing.T) {
	rt := newRT(t)
	seen := ""
	rt.Input.RegisterKey(func(k string) bool { seen += k; return true })

	input := &scriptedInput{events: []Event{{Kind: EventKey, Key: "a"}}}
	l, _ := newTestLoop(t, rt, input)

	err := l.Run()
	require.NoError(t, err)
	assert.Equal(t, "a", seen)
}

func TestRunIgnoresKeyRepeatEvents(t *testing.T) {
	rt := newRT(t)
	calls := 0
	rt.Input.RegisterKey(func(k string) bool { calls++; return true })

	input := &scriptedInput{events: []Event{{Kind: EventKey, Key: "a", KeyRepeat: true}}}
	l, _ := newTestLoop(t, rt, input)

	require.NoError(t, l.Run())
	assert.Equal(t, 0, calls)
}

func TestRunExitsOnCtrlCWhenEnabled(t *testing.T) {
	rt := newRT(t)
	l, renders := newTestLoop(t, rt, &scriptedInput{events: []Event{{Kind: EventKey, Key: "c", Ctrl: true}}})
	l.ExitOnCtrlC = true
	l.OnRender = func() (time.Duration, error) {
		*renders++
		return time.Millisecond, nil
	}

	require.NoError(t, l.Run())
	assert.True(t, rt.ExitRequested())
	assert.Equal(t, 1, *renders)
}

func TestRunRequestsSuspendOnCtrlZAndReturns(t *testing.T) {
	rt := newRT(t)
	l, _ := newTestLoop(t, rt, &scriptedInput{events: []Event{{Kind: EventKey, Key: "z", Ctrl: true}}})
	l.OnRender = func() (time.Duration, error) { return time.Millisecond, nil }

	require.NoError(t, l.Run())
	assert.False(t, l.Suspend.SuspendRequested())
}

func TestRunPropagatesRenderError(t *testing.T) {
	rt := newRT(t)
	l, _ := newTestLoop(t, rt, &scriptedInput{})
	boom := errors.New("boom")
	l.OnRender = func() (time.Duration, error) { return 0, boom }

	err := l.Run()
	assert.ErrorIs(t, err, boom)
}

func TestRunDrainsTerminalCmdsModeSwitchExecAndPrintln(t *testing.T) {
	rt := newRT(t)
	rt.QueueTerminalCmd(command.ClearScreen)
	rt.RequestModeSwitch(runtime.AltScreen)
	rt.SetExecRequest(runtime.ExecRequest{Config: command.NewExecConfig("ls")})
	rt.Println("hi")

	var gotCmd command.TerminalCmd
	var gotMode runtime.CompositionMode
	var gotExec runtime.ExecRequest
	var gotPrintln string

	l, _ := newTestLoop(t, rt, &scriptedInput{})
	l.OnTerminalCmd = func(tc command.TerminalCmd) { gotCmd = tc }
	l.OnModeSwitch = func(m runtime.CompositionMode) { gotMode = m }
	l.OnExec = func(r runtime.ExecRequest) { gotExec = r }
	l.OnPrintln = func(p runtime.PrintlnRequest) { gotPrintln = p.Text }

	require.NoError(t, l.Run())
	assert.Equal(t, command.ClearScreen, gotCmd)
	assert.Equal(t, runtime.AltScreen, gotMode)
	assert.Equal(t, "ls", gotExec.Config.Command)
	assert.Equal(t, "hi", gotPrintln)
}
