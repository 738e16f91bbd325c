package terminal

import "github.com/majiayu000/rnk/command"

// Dispatch executes one terminal command against t, the Go counterpart
// of original_source's TerminalController::handle_terminal_cmd (ported
// from its crossterm call-per-variant match to x/term plus the hand-
// written sequences in terminal.go).
func (t *Terminal) Dispatch(cmd command.TerminalCmd, windowTitle string) error {
	switch cmd {
	case command.ClearScreen:
		return t.ClearScreen()
	case command.HideCursor:
		return t.HideCursor()
	case command.ShowCursor:
		return t.ShowCursor()
	case command.SetWindowTitle:
		return t.SetWindowTitle(windowTitle)
	case command.WindowSize:
		return nil
	case command.EnterAltScreen:
		return t.EnterAltScreen()
	case command.ExitAltScreen:
		return t.ExitAltScreen()
	case command.EnableMouse:
		return t.EnableMouse()
	case command.DisableMouse:
		return t.DisableMouse()
	case command.EnableBracketedPaste:
		return t.EnableBracketedPaste()
	case command.DisableBracketedPaste:
		return t.DisableBracketedPaste()
	default:
		return nil
	}
}
