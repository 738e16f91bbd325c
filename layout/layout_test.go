package layout

import (
	"testing"

	"github.com/majiayu000/rnk/element"
	"github.com/majiayu000/rnk/reconciler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boxTag = element.NewTypeTag()
var textTag = element.NewTypeTag()

func buildAndSolve(t *testing.T, e element.Element, w, h int) (*Engine, reconciler.VNode) {
	t.Helper()
	v := reconciler.BuildRoot(e)
	eng := New()
	eng.SyncRoot(v)
	eng.Solve(w, h)
	return eng, v
}

func TestSolveRootFillsTerminal(t *testing.T) {
	eng, v := buildAndSolve(t, element.Container(boxTag, element.NewStyle()), 80, 24)
	r, ok := eng.Rect(v.Key)
	require.True(t, ok)
	assert.Equal(t, Rect{0, 0, 80, 24}, r)
}

func TestSolveRowDistributesChildrenLeftToRight(t *testing.T) {
	style := element.NewStyle()
	style.BorderStyle = element.BorderNone
	style.BorderTop, style.BorderBottom, style.BorderLeft, style.BorderRight = false, false, false, false
	style.FlexDirection = element.Row

	child := element.NewStyle()
	child.BorderTop, child.BorderBottom, child.BorderLeft, child.BorderRight = false, false, false, false
	child.Width = element.Points(10)

	e := element.Container(boxTag, style,
		element.Container(boxTag, child).WithKey("a"),
		element.Container(boxTag, child).WithKey("b"),
	)
	eng, v := buildAndSolve(t, e, 40, 5)

	ra, ok := eng.Rect(v.Children[0].Key)
	require.True(t, ok)
	rb, ok := eng.Rect(v.Children[1].Key)
	require.True(t, ok)

	assert.Equal(t, 0, ra.X)
	assert.Equal(t, 10, ra.W)
	assert.Equal(t, 10, rb.X)
	assert.Equal(t, 10, rb.W)
}

func TestSolveFlexGrowDistributesRemainingSpace(t *testing.T) {
	style := element.NewStyle()
	style.BorderTop, style.BorderBottom, style.BorderLeft, style.BorderRight = false, false, false, false
	style.FlexDirection = element.Row

	grow := element.NewStyle()
	grow.BorderTop, grow.BorderBottom, grow.BorderLeft, grow.BorderRight = false, false, false, false
	grow.FlexGrow = 1

	e := element.Container(boxTag, style,
		element.Container(boxTag, grow).WithKey("a"),
		element.Container(boxTag, grow).WithKey("b"),
	)
	eng, v := buildAndSolve(t, e, 20, 5)

	ra, _ := eng.Rect(v.Children[0].Key)
	rb, _ := eng.Rect(v.Children[1].Key)
	assert.Equal(t, 10, ra.W)
	assert.Equal(t, 10, rb.W)
	assert.Equal(t, 10, rb.X)
}

func TestSolveJustifyCenterCentersSingleChild(t *testing.T) {
	style := element.NewStyle()
	style.BorderTop, style.BorderBottom, style.BorderLeft, style.BorderRight = false, false, false, false
	style.FlexDirection = element.Row
	style.JustifyContent = element.JustifyCenter

	child := element.NewStyle()
	child.BorderTop, child.BorderBottom, child.BorderLeft, child.BorderRight = false, false, false, false
	child.Width = element.Points(10)

	e := element.Container(boxTag, style, element.Container(boxTag, child))
	eng, v := buildAndSolve(t, e, 30, 5)

	rc, _ := eng.Rect(v.Children[0].Key)
	assert.Equal(t, 10, rc.X)
}

func TestSolveBorderInsetsContent(t *testing.T) {
	style := element.NewStyle()
	style.BorderStyle = element.BorderSingle

	child := element.NewStyle()
	child.BorderTop, child.BorderBottom, child.BorderLeft, child.BorderRight = false, false, false, false

	e := element.Container(boxTag, style, element.Text(textTag, child, "hi"))
	eng, v := buildAndSolve(t, e, 20, 10)

	rChild, ok := eng.Rect(v.Children[0].Key)
	require.True(t, ok)
	assert.Equal(t, 1, rChild.X)
	assert.Equal(t, 1, rChild.Y)
}

func TestSolveAbsolutePositionIgnoresFlexFlow(t *testing.T) {
	style := element.NewStyle()
	style.BorderTop, style.BorderBottom, style.BorderLeft, style.BorderRight = false, false, false, false

	abs := element.NewStyle()
	abs.BorderTop, abs.BorderBottom, abs.BorderLeft, abs.BorderRight = false, false, false, false
	abs.Position = element.PositionAbsolute
	left := 3.0
	top := 2.0
	abs.Left = &left
	abs.Top = &top

	e := element.Container(boxTag, style, element.Text(textTag, abs, "x"))
	eng, v := buildAndSolve(t, e, 20, 10)

	rc, ok := eng.Rect(v.Children[0].Key)
	require.True(t, ok)
	assert.Equal(t, 3, rc.X)
	assert.Equal(t, 2, rc.Y)
}

func TestSolveProjectsRectsByElementID(t *testing.T) {
	eng, v := buildAndSolve(t, element.Container(boxTag, element.NewStyle()), 10, 10)
	r, ok := eng.RectByElement(v.ElementID)
	require.True(t, ok)
	assert.Equal(t, 10, r.W)
}

func TestApplyRebuildsFromFullOnInconsistentPatch(t *testing.T) {
	e := element.Container(boxTag, element.NewStyle())
	v := reconciler.BuildRoot(e)
	eng := New()
	eng.SyncRoot(v)

	bogus := reconciler.Patch{Kind: reconciler.PatchRemove, Key: "does-not-exist"}
	before := eng.RebuildCount()
	eng.Apply([]reconciler.Patch{bogus}, v)
	assert.Equal(t, before+1, eng.RebuildCount())
}
