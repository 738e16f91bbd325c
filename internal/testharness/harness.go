// Package testharness drives the App Runner end to end over a real
// pseudo-terminal, adapted from internal/termtest/pty.go's
// NewForProgram path: a real program never runs under the harness as a
// subprocess (there is no CLI entrypoint to exec), it runs in the same
// process, attached to the PTY's slave side, exactly the way
// NewForProgram lets a test drive a function directly instead of
// spawning a binary.
package testharness

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

// Harness owns one PTY pair. The slave side (PTS) is handed to a
// terminal.Terminal as its output and to an app.Loop's InputSource as
// its input; the master side (PTM) is what the test drives — writing
// simulates a human at the keyboard, reading captures everything the
// App Runner painted.
type Harness struct {
	ptm *os.File
	pts *os.File

	reader *bufio.Reader

	output   strings.Builder
	outputMu sync.RWMutex

	cancel context.CancelFunc
	closed bool
}

// New opens a PTY pair sized to 80x24 and begins capturing everything
// written to the slave side.
func New(ctx context.Context) (*Harness, error) {
	_, cancel := context.WithCancel(ctx)

	ptm, pts, err := pty.Open()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open pty: %w", err)
	}
	if err := pty.Setsize(ptm, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		cancel()
		return nil, fmt.Errorf("set pty size: %w", err)
	}

	h := &Harness{
		ptm:    ptm,
		pts:    pts,
		reader: bufio.NewReader(ptm),
		cancel: cancel,
	}
	go h.readOutput()
	return h, nil
}

// PTS is the slave side: the file descriptor a Terminal should write
// frames to and an InputSource should read keystrokes from.
func (h *Harness) PTS() *os.File { return h.pts }

// PTM is the master side: what the harness itself reads and writes.
func (h *Harness) PTM() *os.File { return h.ptm }

func (h *Harness) readOutput() {
	buf := make([]byte, 4096)
	for {
		n, err := h.ptm.Read(buf)
		if n > 0 {
			h.outputMu.Lock()
			h.output.Write(buf[:n])
			h.outputMu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Type writes input one rune at a time with delay between each,
// simulating a human typing rather than a paste.
func (h *Harness) Type(input string, delay time.Duration) error {
	if h.closed {
		return fmt.Errorf("harness is closed")
	}
	for _, r := range input {
		if _, err := h.ptm.WriteString(string(r)); err != nil {
			return fmt.Errorf("write input: %w", err)
		}
		time.Sleep(delay)
	}
	time.Sleep(10 * time.Millisecond)
	return nil
}

// SendLine types input then Enter.
func (h *Harness) SendLine(input string) error {
	if err := h.Type(input, 15*time.Millisecond); err != nil {
		return err
	}
	return h.SendKeys("enter")
}

// SendKeys writes one of the named control sequences — the same set
// the App Runner's event loop recognizes by name (ctrl-c, ctrl-z) plus
// the common navigation keys.
func (h *Harness) SendKeys(keys string) error {
	var seq string
	switch strings.ToLower(keys) {
	case "ctrl-c":
		seq = "\x03"
	case "ctrl-d":
		seq = "\x04"
	case "ctrl-z":
		seq = "\x1a"
	case "escape", "esc":
		seq = "\x1b"
	case "tab":
		seq = "\t"
	case "enter":
		seq = "\r"
	case "backspace":
		seq = "\x7f"
	case "up":
		seq = "\x1b[A"
	case "down":
		seq = "\x1b[B"
	case "right":
		seq = "\x1b[C"
	case "left":
		seq = "\x1b[D"
	default:
		return fmt.Errorf("unknown key sequence: %s", keys)
	}
	_, err := h.ptm.WriteString(seq)
	return err
}

// WaitForOutput blocks until expected appears anywhere in the captured
// output, or timeout elapses.
func (h *Harness) WaitForOutput(expected string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(h.GetOutput(), expected) {
			return nil
		}
		time.Sleep(5 * time.Millisecond)
	}
	return fmt.Errorf("expected output %q not found within %v (got %q)", expected, timeout, h.GetOutput())
}

// GetOutput returns everything captured from the slave side so far.
func (h *Harness) GetOutput() string {
	h.outputMu.RLock()
	defer h.outputMu.RUnlock()
	return h.output.String()
}

// ClearOutput discards everything captured so far.
func (h *Harness) ClearOutput() {
	h.outputMu.Lock()
	defer h.outputMu.Unlock()
	h.output.Reset()
}

// AssertOutputContains reports an error if expected is absent from the
// captured output.
func (h *Harness) AssertOutputContains(expected string) error {
	if !strings.Contains(h.GetOutput(), expected) {
		return fmt.Errorf("expected output %q not found in %q", expected, h.GetOutput())
	}
	return nil
}

// Close releases both PTY file descriptors.
func (h *Harness) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.cancel()

	var errs []error
	if err := h.pts.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := h.ptm.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
