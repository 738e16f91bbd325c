package render

import (
	"strings"
	"testing"

	"github.com/majiayu000/rnk/element"
	"github.com/majiayu000/rnk/layout"
	"github.com/majiayu000/rnk/reconciler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boxTag = element.NewTypeTag()
var textTag = element.NewTypeTag()

func TestDiffFirstFrameMarksEveryRowDirty(t *testing.T) {
	buf := NewBuffer(5, 3)
	spans := Diff(nil, buf)
	assert.Len(t, spans, 3)
}

func TestDiffOnlyMarksChangedColumns(t *testing.T) {
	prev := NewBuffer(5, 1)
	cur := NewBuffer(5, 1)
	cur.Set(2, 0, Cell{Grapheme: "x", Width: 1})

	spans := Diff(prev, cur)
	require.Len(t, spans, 1)
	assert.Equal(t, DirtySpan{Row: 0, StartCol: 2, EndCol: 3}, spans[0])
}

func TestDiffSeparatesNonContiguousRuns(t *testing.T) {
	prev := NewBuffer(6, 1)
	cur := NewBuffer(6, 1)
	cur.Set(0, 0, Cell{Grapheme: "a", Width: 1})
	cur.Set(4, 0, Cell{Grapheme: "b", Width: 1})

	spans := Diff(prev, cur)
	require.Len(t, spans, 2)
	assert.Equal(t, 0, spans[0].StartCol)
	assert.Equal(t, 4, spans[1].StartCol)
}

func TestWriteTextTruncatesEndWithEllipsis(t *testing.T) {
	buf := NewBuffer(5, 1)
	WriteText(buf, 0, 0, "HelloWorld", 5, element.Style{TextWrap: element.TruncateEnd})
	var sb strings.Builder
	for x := 0; x < 5; x++ {
		sb.WriteString(buf.Get(x, 0).Grapheme)
	}
	assert.Equal(t, "Hell…", sb.String())
}

func TestWriteTextWideGlyphLeavesContinuationCell(t *testing.T) {
	buf := NewBuffer(4, 1)
	WriteText(buf, 0, 0, "世界", 4, element.Style{})
	assert.Equal(t, 2, buf.Get(0, 0).Width)
	assert.Equal(t, 0, buf.Get(1, 0).Width)
}

func TestFlushMovesCursorAndWritesSGR(t *testing.T) {
	buf := NewBuffer(3, 1)
	red := element.Named(element.Red)
	buf.Set(0, 0, Cell{Grapheme: "a", Width: 1, Style: element.Style{}.Fg(red)})

	var out strings.Builder
	w := NewWriter(&out)
	require.NoError(t, w.Flush(buf, []DirtySpan{{Row: 0, StartCol: 0, EndCol: 1}}))

	s := out.String()
	assert.Contains(t, s, "\x1b[1;1H")
	assert.Contains(t, s, "a")
}

func TestPaintFillsBorderAndText(t *testing.T) {
	style := element.NewStyle()
	style.BorderStyle = element.BorderSingle

	inner := element.NewStyle()
	inner.BorderTop, inner.BorderBottom, inner.BorderLeft, inner.BorderRight = false, false, false, false

	e := element.Container(boxTag, style, element.Text(textTag, inner, "hi"))
	v := reconciler.BuildRoot(e)
	eng := layout.New()
	eng.SyncRoot(v)
	eng.Solve(10, 4)

	buf := NewBuffer(10, 4)
	Paint(buf, v, eng)

	assert.Equal(t, "┌", buf.Get(0, 0).Grapheme)
	assert.Equal(t, "h", buf.Get(1, 1).Grapheme)
	assert.Equal(t, "i", buf.Get(2, 1).Grapheme)
}
