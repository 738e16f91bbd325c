//go:build unix

package testharness

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majiayu000/rnk/app"
	"github.com/majiayu000/rnk/runtime"
	"github.com/majiayu000/rnk/terminal"
)

func TestHarnessDrivesAppLoopOverRealPTY(t *testing.T) {
	h, err := New(context.Background())
	require.NoError(t, err)
	defer h.Close()

	rt, err := runtime.New(nil)
	require.NoError(t, err)
	defer rt.Close()

	term := terminal.New(h.PTS(), int(h.PTS().Fd()))
	frames := 0

	loop := &app.Loop{
		RT:          rt,
		FrameRate:   app.NewFrameRateController(app.DefaultFrameRateConfig()),
		Suspend:     app.NewSuspendHandler(),
		Input:       NewPTYInputSource(h.PTS()),
		ExitOnCtrlC: true,
		OnRender: func() (time.Duration, error) {
			frames++
			return 0, term.Println("frame " + itoa(frames))
		},
	}

	done := make(chan error, 1)
	go func() { done <- loop.Run() }()

	require.NoError(t, h.WaitForOutput("frame 1", time.Second))

	require.NoError(t, h.SendKeys("ctrl-c"))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		rt.RequestExit()
		t.Fatal("loop did not exit after Ctrl+C")
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
