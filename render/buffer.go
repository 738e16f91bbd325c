// Package render owns the cell buffer, the dirty-row diff between
// consecutive frames, and ANSI/SGR composition (spec §6). Cell width and
// grapheme-cluster segmentation are delegated to uniseg; SGR byte
// composition is delegated to lipgloss — adapted from the teacher's
// goja-bound internal/builtin/unicodetext/unicodetext.go into real
// terminal-writing code rather than a scripting shim.
package render

import "github.com/majiayu000/rnk/element"

// Cell is one terminal column's worth of content: a single grapheme
// cluster (which may be empty, for the second column of a wide glyph, or
// a space) plus the style painted under/over it.
type Cell struct {
	Grapheme string
	Width    int // 0, 1, or 2; 0 marks the continuation column of a wide glyph
	Style    element.Style
}

var blankCell = Cell{Grapheme: " ", Width: 1}

// Buffer is a full-screen grid of Cells, row-major.
type Buffer struct {
	W, H  int
	cells []Cell
}

// NewBuffer allocates a blank buffer of the given terminal size.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{W: w, H: h, cells: make([]Cell, w*h)}
	b.Clear(element.Style{})
	return b
}

// Resize reallocates the buffer in place, discarding old content — used
// when the terminal window changes size, which always forces a full
// redraw (spec §6's "never diff across a resize").
func (b *Buffer) Resize(w, h int) {
	b.W, b.H = w, h
	b.cells = make([]Cell, w*h)
	b.Clear(element.Style{})
}

// Clear fills every cell with a blank glyph painted in the given base
// style (normally the root element's resolved background).
func (b *Buffer) Clear(base element.Style) {
	blank := blankCell
	blank.Style = base
	for i := range b.cells {
		b.cells[i] = blank
	}
}

func (b *Buffer) at(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return 0, false
	}
	return y*b.W + x, true
}

// Set writes a single cell, clamped to bounds.
func (b *Buffer) Set(x, y int, c Cell) {
	if i, ok := b.at(x, y); ok {
		b.cells[i] = c
	}
}

// Get reads a single cell; out-of-bounds reads return the zero Cell.
func (b *Buffer) Get(x, y int) Cell {
	if i, ok := b.at(x, y); ok {
		return b.cells[i]
	}
	return Cell{}
}

// Row returns the backing slice for one row, for diffing and painting.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.H {
		return nil
	}
	return b.cells[y*b.W : y*b.W+b.W]
}
