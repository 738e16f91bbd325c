package reconciler

import (
	"testing"

	"github.com/majiayu000/rnk/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boxTag = element.NewTypeTag()
var textTag = element.NewTypeTag()

func TestDiffIdenticalTreesProducesNoPatches(t *testing.T) {
	e := element.Container(boxTag, element.NewStyle(), element.Text(textTag, element.NewStyle(), "hi"))
	old := reconcilerBuildTwice(e)
	new := reconcilerBuildTwice(e)

	var fb FallbackCounter
	patches := Diff(old, new, &fb)
	assert.Empty(t, patches, "P3: unchanged frame produces zero patches")
	assert.Zero(t, fb.Count())
}

func reconcilerBuildTwice(e element.Element) VNode { return BuildRoot(e) }

func TestDiffEquivalentFreshlyAllocatedPointerStylesProduceNoPatches(t *testing.T) {
	build := func() element.Element {
		style := element.NewStyle().Fg(element.Named(element.Red)).Bg(element.Named(element.Blue))
		top := 2.0
		style.Top = &top
		return element.Container(boxTag, style, element.Text(textTag, element.NewStyle(), "hi"))
	}
	old := BuildRoot(build())
	new := BuildRoot(build())

	var fb FallbackCounter
	patches := Diff(old, new, &fb)
	assert.Empty(t, patches, "P3: equal colors/offsets behind distinct pointer allocations produce zero patches")
	assert.Zero(t, fb.Count())
}

func TestDiffTextChangeEmitsReplace(t *testing.T) {
	old := BuildRoot(element.Text(textTag, element.NewStyle(), "Hello"))
	new := BuildRoot(element.Text(textTag, element.NewStyle(), "World"))

	var fb FallbackCounter
	patches := Diff(old, new, &fb)
	require.Len(t, patches, 1)
	assert.Equal(t, PatchReplace, patches[0].Kind)
}

func TestDiffPropsChangeEmitsUpdate(t *testing.T) {
	styleA := element.NewStyle()
	styleB := element.NewStyle()
	styleB.Padding.Top = 10

	old := BuildRoot(element.Container(boxTag, styleA))
	new := BuildRoot(element.Container(boxTag, styleB))

	var fb FallbackCounter
	patches := Diff(old, new, &fb)
	require.Len(t, patches, 1)
	assert.Equal(t, PatchUpdate, patches[0].Kind)
}

func TestDiffAddedChildEmitsInsert(t *testing.T) {
	old := BuildRoot(element.Container(boxTag, element.NewStyle()))
	new := BuildRoot(element.Container(boxTag, element.NewStyle(),
		element.Text(textTag, element.NewStyle(), "new")))

	var fb FallbackCounter
	patches := Diff(old, new, &fb)
	require.Len(t, patches, 1)
	assert.Equal(t, PatchInsert, patches[0].Kind)
}

func TestDiffRemovedChildEmitsRemove(t *testing.T) {
	old := BuildRoot(element.Container(boxTag, element.NewStyle(),
		element.Text(textTag, element.NewStyle(), "gone")))
	new := BuildRoot(element.Container(boxTag, element.NewStyle()))

	var fb FallbackCounter
	patches := Diff(old, new, &fb)
	require.Len(t, patches, 1)
	assert.Equal(t, PatchRemove, patches[0].Kind)
}

func TestDiffKeyedReorderEmitsSingleReorderPatch(t *testing.T) {
	old := BuildRoot(element.Container(boxTag, element.NewStyle(),
		element.Text(textTag, element.NewStyle(), "A").WithKey("a"),
		element.Text(textTag, element.NewStyle(), "B").WithKey("b"),
		element.Text(textTag, element.NewStyle(), "C").WithKey("c"),
	))
	new := BuildRoot(element.Container(boxTag, element.NewStyle(),
		element.Text(textTag, element.NewStyle(), "C").WithKey("c"),
		element.Text(textTag, element.NewStyle(), "A").WithKey("a"),
		element.Text(textTag, element.NewStyle(), "B").WithKey("b"),
	))

	var fb FallbackCounter
	patches := Diff(old, new, &fb)

	var reorders, inserts, removes int
	for _, p := range patches {
		switch p.Kind {
		case PatchReorder:
			reorders++
		case PatchInsert:
			inserts++
		case PatchRemove:
			removes++
		}
	}
	assert.Equal(t, 1, reorders)
	assert.Zero(t, inserts)
	assert.Zero(t, removes)
}

func TestDiffCrossBranchKeyReuseDoesNotCollide(t *testing.T) {
	containerTagA := element.NewTypeTag()
	containerTagB := element.NewTypeTag()

	tree := element.Container(boxTag, element.NewStyle(),
		element.Container(containerTagA, element.NewStyle(),
			element.Text(textTag, element.NewStyle(), "left").WithKey("x")),
		element.Container(containerTagB, element.NewStyle(),
			element.Text(textTag, element.NewStyle(), "right").WithKey("x")),
	)
	v := BuildRoot(tree)
	assert.NotEqual(t, v.Children[0].Children[0].Key, v.Children[1].Children[0].Key)
}

func TestDiffTypeChangeAtSameKeyFallsBackToReplace(t *testing.T) {
	old := BuildRoot(element.Text(textTag, element.NewStyle(), "leaf"))
	new := BuildRoot(element.Container(boxTag, element.NewStyle()))
	// Force same key by giving both the same tag path position but different kinds;
	// since tags differ the keys already differ, so force equal keys directly.
	new.Key = old.Key

	var fb FallbackCounter
	patches := Diff(old, new, &fb)
	require.Len(t, patches, 1)
	assert.Equal(t, PatchReplace, patches[0].Kind)
	assert.Equal(t, uint64(1), fb.Count())
}
