package testharness

import (
	"errors"
	"os"
	"time"

	"github.com/majiayu000/rnk/app"
)

// PTYInputSource decodes the handful of byte sequences Harness.SendKeys
// emits into app.Event values. It exists only so loop_test-style
// end-to-end tests can drive an app.Loop over a real PTY without a
// production-facing byte decoder: the event loop itself never parses
// raw input (app/event.go), this is a test-only stand-in for whatever
// terminal library would normally own that job.
type PTYInputSource struct {
	f *os.File
}

// NewPTYInputSource wraps f (typically a Harness's PTS file) as an
// app.InputSource.
func NewPTYInputSource(f *os.File) *PTYInputSource { return &PTYInputSource{f: f} }

func (s *PTYInputSource) Poll(timeoutMs int) (app.Event, bool, error) {
	if err := s.f.SetReadDeadline(time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)); err != nil {
		return app.Event{}, false, err
	}

	buf := make([]byte, 16)
	n, err := s.f.Read(buf)
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return app.Event{}, false, nil
		}
		return app.Event{}, false, err
	}
	if n == 0 {
		return app.Event{}, false, nil
	}

	return decodeKey(buf[:n]), true, nil
}

func decodeKey(b []byte) app.Event {
	switch {
	case len(b) == 1 && b[0] == 0x03:
		return app.Event{Kind: app.EventKey, Key: "c", Ctrl: true}
	case len(b) == 1 && b[0] == 0x1a:
		return app.Event{Kind: app.EventKey, Key: "z", Ctrl: true}
	case len(b) == 1 && b[0] == 0x1b:
		return app.Event{Kind: app.EventKey, Key: "escape"}
	case len(b) == 1 && (b[0] == '\r' || b[0] == '\n'):
		return app.Event{Kind: app.EventKey, Key: "enter"}
	case len(b) == 1 && b[0] == '\t':
		return app.Event{Kind: app.EventKey, Key: "tab"}
	case len(b) == 1 && b[0] == 0x7f:
		return app.Event{Kind: app.EventKey, Key: "backspace"}
	case len(b) == 3 && b[0] == 0x1b && b[1] == '[':
		switch b[2] {
		case 'A':
			return app.Event{Kind: app.EventKey, Key: "up"}
		case 'B':
			return app.Event{Kind: app.EventKey, Key: "down"}
		case 'C':
			return app.Event{Kind: app.EventKey, Key: "right"}
		case 'D':
			return app.Event{Kind: app.EventKey, Key: "left"}
		}
	}
	return app.Event{Kind: app.EventKey, Key: string(b)}
}
