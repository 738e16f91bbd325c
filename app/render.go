package app

import (
	"time"

	"github.com/majiayu000/rnk/element"
	"github.com/majiayu000/rnk/hooks"
	"github.com/majiayu000/rnk/reconciler"
	"github.com/majiayu000/rnk/render"
	"github.com/majiayu000/rnk/runtime"
	"github.com/majiayu000/rnk/terminal"
)

// Renderer is the App Runner's per-frame composition: it owns the root
// component function, the runtime context, the previous VNode tree (held
// on RT across frames), and the root hook context, and turns one call to
// Root into painted terminal output. Production code normally assigns
// Renderer.Render to Loop.OnRender; tests may still supply their own
// OnRender and skip Renderer entirely.
type Renderer struct {
	RT       *runtime.Context
	Hooks    *hooks.Context
	Root     func() element.Element
	Terminal *terminal.Terminal
	Fallback *reconciler.FallbackCounter

	Width, Height int

	buf *render.Buffer
}

// NewRenderer wires root against rt and term, solving and painting at the
// given terminal size. The root component's hook context is obtained via
// rt.HooksFor(reconciler.RootKey) rather than hooks.NewContext() directly,
// so signals it creates schedule renders on rt the same way any other
// mounted component's hooks would.
func NewRenderer(rt *runtime.Context, root func() element.Element, term *terminal.Terminal, width, height int) *Renderer {
	return &Renderer{
		RT:       rt,
		Hooks:    rt.HooksFor(reconciler.RootKey),
		Root:     root,
		Terminal: term,
		Fallback: &reconciler.FallbackCounter{},
		Width:    width,
		Height:   height,
	}
}

// Resize changes the size the next frame solves and paints at. render.Diff
// already treats a buffer-size mismatch as "everything dirty", so no
// explicit full-repaint bookkeeping is needed here.
func (r *Renderer) Resize(width, height int) {
	r.Width, r.Height = width, height
}

// Render runs exactly one frame: render the root component under the
// bound runtime and hook contexts, reconcile against the previous tree,
// apply the patch stream to the persistent layout graph (or sync it whole
// on the first frame), solve, run queued layout effects, paint into a
// fresh cell buffer, diff against the previous frame's buffer, flush only
// the dirty spans to the terminal, and finally run queued post-render
// effects.
func (r *Renderer) Render() (time.Duration, error) {
	start := time.Now()

	var tree element.Element
	runtime.RunFrame(r.RT, r.Hooks, func() {
		tree = r.Root()
	})

	vnode := reconciler.BuildRoot(tree)

	if r.RT.HasPrev {
		patches := reconciler.Diff(r.RT.PrevTree, vnode, r.Fallback)
		r.RT.Layout.Apply(patches, vnode)
	} else {
		r.RT.Layout.SyncRoot(vnode)
	}
	r.RT.PrevTree = vnode
	r.RT.HasPrev = true

	r.RT.Layout.Solve(r.Width, r.Height)
	r.Hooks.RunLayoutEffects()

	cur := render.NewBuffer(r.Width, r.Height)
	render.Paint(cur, vnode, r.RT.Layout)

	spans := render.Diff(r.buf, cur)
	if r.Terminal != nil {
		if err := render.NewWriter(r.Terminal.Writer()).Flush(cur, spans); err != nil {
			return time.Since(start), err
		}
	}
	r.buf = cur

	r.Hooks.RunEffects()

	return time.Since(start), nil
}
