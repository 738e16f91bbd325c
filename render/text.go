package render

import (
	"strings"

	"github.com/majiayu000/rnk/element"
	"github.com/rivo/uniseg"
)

// WriteText paints s into the buffer starting at (x, y), one grapheme
// cluster per cell (two cells for wide glyphs, the second left as a
// zero-width continuation marker), stopping at maxWidth columns. Wrap
// controls what happens to content that would overflow maxWidth,
// mirroring element.TextWrap's truncate-with-ellipsis variants — adapted
// from the teacher's unicodetext.truncate grapheme-walking loop.
func WriteText(b *Buffer, x, y int, s string, maxWidth int, style element.Style) {
	switch style.TextWrap {
	case element.TruncateText, element.TruncateEnd:
		s = truncateEnd(s, maxWidth, "…")
	case element.TruncateStart:
		s = truncateStart(s, maxWidth, "…")
	case element.TruncateMiddle:
		s = truncateMiddle(s, maxWidth, "…")
	}

	col := x
	state := -1
	remaining := s
	for len(remaining) > 0 && col < x+maxWidth {
		var cluster string
		var width int
		cluster, remaining, width, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		if width == 0 {
			width = 1
		}
		if col+width > x+maxWidth {
			break
		}
		b.Set(col, y, Cell{Grapheme: cluster, Width: width, Style: style})
		for i := 1; i < width; i++ {
			b.Set(col+i, y, Cell{Grapheme: "", Width: 0, Style: style})
		}
		col += width
	}
}

func truncateEnd(s string, maxWidth int, tail string) string {
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}
	tailWidth := uniseg.StringWidth(tail)
	if tailWidth > maxWidth {
		return tail
	}
	target := maxWidth - tailWidth
	var sb strings.Builder
	var w int
	state := -1
	remaining := s
	for len(remaining) > 0 {
		var cluster string
		var cw int
		cluster, remaining, cw, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		if w+cw > target {
			break
		}
		w += cw
		sb.WriteString(cluster)
	}
	sb.WriteString(tail)
	return sb.String()
}

func truncateStart(s string, maxWidth int, tail string) string {
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}
	tailWidth := uniseg.StringWidth(tail)
	if tailWidth > maxWidth {
		return tail
	}
	target := maxWidth - tailWidth

	type run struct {
		cluster string
		width   int
	}
	var runs []run
	state := -1
	remaining := s
	for len(remaining) > 0 {
		var cluster string
		var cw int
		cluster, remaining, cw, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		runs = append(runs, run{cluster, cw})
	}

	var w int
	start := len(runs)
	for i := len(runs) - 1; i >= 0; i-- {
		if w+runs[i].width > target {
			break
		}
		w += runs[i].width
		start = i
	}
	var sb strings.Builder
	sb.WriteString(tail)
	for _, r := range runs[start:] {
		sb.WriteString(r.cluster)
	}
	return sb.String()
}

func truncateMiddle(s string, maxWidth int, tail string) string {
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}
	tailWidth := uniseg.StringWidth(tail)
	if tailWidth > maxWidth {
		return tail
	}
	target := maxWidth - tailWidth
	headBudget := target / 2
	tailBudget := target - headBudget

	head := truncateEnd(s, headBudget, "")
	tailPart := truncateStart(s, tailBudget, "")
	return head + tail + tailPart
}
