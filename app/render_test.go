package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majiayu000/rnk/element"
	"github.com/majiayu000/rnk/hooks"
	"github.com/majiayu000/rnk/runtime"
	"github.com/majiayu000/rnk/terminal"
)

var renderTag = element.NewTypeTag()

func TestRendererPaintsRootComponentToTerminal(t *testing.T) {
	rt := newRT(t)
	var buf bytes.Buffer
	term := terminal.New(&buf, -1)

	root := func() element.Element {
		return element.Container(renderTag, element.NewStyle(),
			element.Text(renderTag, element.NewStyle(), "hi"))
	}

	r := NewRenderer(rt, root, term, 10, 3)
	_, err := r.Render()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hi")
}

func TestRendererProducesNoPatchesOrWritesOnAnIdenticalSecondFrame(t *testing.T) {
	rt := newRT(t)
	var buf bytes.Buffer
	term := terminal.New(&buf, -1)

	root := func() element.Element {
		style := element.NewStyle().Fg(element.Named(element.Red))
		return element.Container(renderTag, element.NewStyle(),
			element.Text(renderTag, style, "same"))
	}

	r := NewRenderer(rt, root, term, 10, 3)
	_, err := r.Render()
	require.NoError(t, err)
	before := r.Fallback.Count()

	buf.Reset()
	_, err = r.Render()
	require.NoError(t, err)

	assert.Empty(t, buf.String(), "an unchanged frame must flush zero dirty spans")
	assert.Equal(t, before, r.Fallback.Count())
}

func TestRendererRerendersWhenAUseSignalUpdateRequestsRender(t *testing.T) {
	rt := newRT(t)
	var buf bytes.Buffer
	term := terminal.New(&buf, -1)

	var hooksCtx *hooks.Context
	var label *hooks.Signal[string]

	root := func() element.Element {
		hooksCtx = hooks.Current()
		label = hooks.UseSignal(hooksCtx, func() string { return "first" })
		return element.Text(renderTag, element.NewStyle(), label.Get())
	}

	r := NewRenderer(rt, root, term, 10, 3)
	_, err := r.Render()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "first")

	label.Set("second")
	assert.True(t, rt.TakeRenderRequested())

	buf.Reset()
	_, err = r.Render()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "second")
}

func TestRunFrameBindsRuntimeAndHooksForTheDurationOfBody(t *testing.T) {
	rt := newRT(t)
	hc := hooks.NewContext()

	var sawRuntime *runtime.Context
	var sawHooks *hooks.Context
	runtime.RunFrame(rt, hc, func() {
		sawRuntime = runtime.Current()
		sawHooks = hooks.Current()
	})

	assert.Same(t, rt, sawRuntime)
	assert.Same(t, hc, sawHooks)
	assert.Nil(t, runtime.Current())
	assert.Nil(t, hooks.Current())
}
