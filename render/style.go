package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/majiayu000/rnk/element"
)

// lipglossStyle converts the visual facet of an element.Style into a
// lipgloss.Style, the same conversion the teacher's bubbletea views do
// when composing colors and attributes into SGR sequences.
func lipglossStyle(s element.Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if s.Color != nil && !s.Color.IsReset() {
		ls = ls.Foreground(lipgloss.Color(s.Color.Lipgloss()))
	}
	if s.BackgroundColor != nil && !s.BackgroundColor.IsReset() {
		ls = ls.Background(lipgloss.Color(s.BackgroundColor.Lipgloss()))
	}
	if s.Bold {
		ls = ls.Bold(true)
	}
	if s.Italic {
		ls = ls.Italic(true)
	}
	if s.Underline {
		ls = ls.Underline(true)
	}
	if s.Strikethrough {
		ls = ls.Strikethrough(true)
	}
	if s.Dim {
		ls = ls.Faint(true)
	}
	if s.Inverse {
		ls = ls.Reverse(true)
	}
	return ls
}

// RenderRun applies a single cell style to the given text, producing the
// SGR-wrapped bytes lipgloss emits for one contiguous same-style run.
// Callers are expected to batch whole runs before calling this — invoking
// it per cell would be correct but would defeat the point of coalescing
// dirty spans into the fewest possible escape sequences.
func RenderRun(s element.Style, text string) string {
	return lipglossStyle(s).Render(text)
}
