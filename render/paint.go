package render

import (
	"github.com/majiayu000/rnk/element"
	"github.com/majiayu000/rnk/layout"
	"github.com/majiayu000/rnk/reconciler"
)

// Paint walks v and its rects (from the layout engine's last Solve) and
// writes background fills, borders, and text into buf. It is the only
// place in the pipeline that turns a VNode tree plus rects into cells —
// everything downstream is pure diff-and-write.
func Paint(buf *Buffer, v reconciler.VNode, eng *layout.Engine) {
	rect, ok := eng.Rect(v.Key)
	if !ok {
		return
	}
	paintNode(buf, v, rect, eng)
}

func paintNode(buf *Buffer, v reconciler.VNode, rect layout.Rect, eng *layout.Engine) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	if v.Style.BackgroundColor != nil && !v.Style.BackgroundColor.IsReset() {
		fillRect(buf, rect, v.Style)
	}

	content := rect
	if v.Style.BorderStyle.IsVisible() {
		paintBorder(buf, rect, v.Style)
		if v.Style.BorderTop {
			content.Y++
			content.H--
		}
		if v.Style.BorderBottom {
			content.H--
		}
		if v.Style.BorderLeft {
			content.X++
			content.W--
		}
		if v.Style.BorderRight {
			content.W--
		}
	}

	if v.Kind == element.KindText {
		if content.H > 0 && content.W > 0 {
			WriteText(buf, content.X, content.Y, v.Text, content.W, v.Style)
		}
		return
	}

	for _, child := range v.Children {
		childRect, ok := eng.Rect(child.Key)
		if !ok {
			continue
		}
		paintNode(buf, child, childRect, eng)
	}
}

func fillRect(buf *Buffer, rect layout.Rect, style element.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			buf.Set(x, y, Cell{Grapheme: " ", Width: 1, Style: style})
		}
	}
}

func paintBorder(buf *Buffer, rect layout.Rect, style element.Style) {
	chars := style.BorderStyle.Chars()
	borderStyle := style
	if style.BorderColor != nil {
		borderStyle.Color = style.BorderColor
	}

	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.W-1, rect.Y+rect.H-1

	if style.BorderTop {
		for x := x0; x <= x1; x++ {
			ch := chars.Horizontal
			if x == x0 && style.BorderLeft {
				ch = chars.TopLeft
			} else if x == x1 && style.BorderRight {
				ch = chars.TopRight
			}
			buf.Set(x, y0, Cell{Grapheme: ch, Width: 1, Style: borderStyle})
		}
	}
	if style.BorderBottom {
		for x := x0; x <= x1; x++ {
			ch := chars.Horizontal
			if x == x0 && style.BorderLeft {
				ch = chars.BottomLeft
			} else if x == x1 && style.BorderRight {
				ch = chars.BottomRight
			}
			buf.Set(x, y1, Cell{Grapheme: ch, Width: 1, Style: borderStyle})
		}
	}
	if style.BorderLeft {
		for y := y0; y <= y1; y++ {
			if (y == y0 && style.BorderTop) || (y == y1 && style.BorderBottom) {
				continue
			}
			buf.Set(x0, y, Cell{Grapheme: chars.Vertical, Width: 1, Style: borderStyle})
		}
	}
	if style.BorderRight {
		for y := y0; y <= y1; y++ {
			if (y == y0 && style.BorderTop) || (y == y1 && style.BorderBottom) {
				continue
			}
			buf.Set(x1, y, Cell{Grapheme: chars.Vertical, Width: 1, Style: borderStyle})
		}
	}
}
