// Package terminal is the raw-mode/ANSI bridge between the dirty
// renderer's cell buffer and the real terminal device: entering and
// restoring raw mode, switching between inline and alternate-screen
// composition, cursor control, mouse tracking, bracketed paste, and the
// window-title OSC, per spec.md §6. Grounded on original_source's
// renderer/terminal_controller.rs and renderer/terminal.rs for the
// operation set, reimplemented over golang.org/x/term plus hand-written
// escape sequences instead of crossterm, since no ANSI-sequence library
// appears with concrete usage anywhere in the pack (DESIGN.md).
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	escClearScreen      = "\x1b[2J\x1b[H"
	escHideCursor       = "\x1b[?25l"
	escShowCursor       = "\x1b[?25h"
	escEnterAltScreen   = "\x1b[?1049h"
	escExitAltScreen    = "\x1b[?1049l"
	escEnableMouse      = "\x1b[?1000h\x1b[?1006h"
	escDisableMouse     = "\x1b[?1006l\x1b[?1000l"
	escEnableBracketed  = "\x1b[?2004h"
	escDisableBracketed = "\x1b[?2004l"
)

// Terminal owns the connection between the process and the real
// terminal device: raw-mode state, which composition mode is active,
// and the writer every control sequence goes through.
type Terminal struct {
	out       io.Writer
	fd        int
	oldState  *term.State
	altScreen bool
}

// New wraps out (typically os.Stdout) for escape-sequence writes. fd is
// the file descriptor raw-mode toggling applies to — pass
// int(os.Stdout.Fd()) in production, an arbitrary value in tests that
// never call EnterRawMode.
func New(out io.Writer, fd int) *Terminal {
	return &Terminal{out: out, fd: fd}
}

// EnterRawMode puts the terminal into raw mode, remembering the prior
// state for ExitRawMode.
func (t *Terminal) EnterRawMode() error {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores whatever terminal mode preceded EnterRawMode. A
// no-op if EnterRawMode was never called or already undone.
func (t *Terminal) ExitRawMode() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	return err
}

// Size reports the terminal's current width/height in cells, falling
// back to 80x24 if the query fails (e.g. output is not a real tty).
func Size(fd int) (width, height int) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 80, 24
	}
	return w, h
}

func (t *Terminal) write(s string) error {
	_, err := io.WriteString(t.out, s)
	return err
}

// Writer returns the io.Writer every control sequence and painted frame
// goes through, for the dirty renderer's Writer to share rather than
// opening a second handle onto the same device.
func (t *Terminal) Writer() io.Writer { return t.out }

// IsAltScreen reports whether alternate-screen composition is active.
func (t *Terminal) IsAltScreen() bool { return t.altScreen }

// EnterAltScreen switches to alternate-screen composition, a no-op if
// already active.
func (t *Terminal) EnterAltScreen() error {
	if t.altScreen {
		return nil
	}
	if err := t.write(escEnterAltScreen); err != nil {
		return err
	}
	t.altScreen = true
	return nil
}

// ExitAltScreen switches back to inline composition, a no-op if already
// inactive.
func (t *Terminal) ExitAltScreen() error {
	if !t.altScreen {
		return nil
	}
	if err := t.write(escExitAltScreen); err != nil {
		return err
	}
	t.altScreen = false
	return nil
}

// ClearScreen clears the visible screen and homes the cursor.
func (t *Terminal) ClearScreen() error { return t.write(escClearScreen) }

// HideCursor / ShowCursor toggle cursor visibility.
func (t *Terminal) HideCursor() error { return t.write(escHideCursor) }
func (t *Terminal) ShowCursor() error { return t.write(escShowCursor) }

// EnableMouse / DisableMouse toggle SGR mouse-tracking mode.
func (t *Terminal) EnableMouse() error  { return t.write(escEnableMouse) }
func (t *Terminal) DisableMouse() error { return t.write(escDisableMouse) }

// EnableBracketedPaste / DisableBracketedPaste toggle bracketed-paste
// mode.
func (t *Terminal) EnableBracketedPaste() error  { return t.write(escEnableBracketed) }
func (t *Terminal) DisableBracketedPaste() error { return t.write(escDisableBracketed) }

// SetWindowTitle emits the OSC 0 window-title sequence.
func (t *Terminal) SetWindowTitle(title string) error {
	return t.write(fmt.Sprintf("\x1b]0;%s\x07", title))
}

// MoveCursor positions the cursor at (col, row), both 1-indexed per the
// CUP control sequence.
func (t *Terminal) MoveCursor(col, row int) error {
	return t.write(fmt.Sprintf("\x1b[%d;%dH", row, col))
}

// Println writes a line above the managed screen region, for inline
// mode only: it scrolls the terminal's own history rather than the
// dirty renderer's cell buffer. Callers must not call this while
// alternate-screen composition is active.
func (t *Terminal) Println(text string) error {
	if t.altScreen {
		return nil
	}
	return t.write(text + "\r\n")
}

// Stdout returns a Terminal wired to the process's real stdout.
func Stdout() *Terminal {
	return New(os.Stdout, int(os.Stdout.Fd()))
}
