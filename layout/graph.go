package layout

import (
	"github.com/majiayu000/rnk/element"
	"github.com/majiayu000/rnk/reconciler"
)

// node is one entry of the persistent flex graph.
type node struct {
	key      reconciler.NodeKey
	elemID   element.Id
	kind     element.Kind
	style    element.Style
	text     string
	children []reconciler.NodeKey
	parent   reconciler.NodeKey
}

// Engine holds the persistent flex-solver graph and the most recently
// solved rects.
type Engine struct {
	nodes map[reconciler.NodeKey]*node
	root  reconciler.NodeKey

	rects        map[reconciler.NodeKey]Rect
	elementRects map[element.Id]Rect

	rebuildCount uint64
}

// New creates an empty layout engine.
func New() *Engine {
	return &Engine{
		nodes:        map[reconciler.NodeKey]*node{},
		rects:        map[reconciler.NodeKey]Rect{},
		elementRects: map[element.Id]Rect{},
	}
}

// RebuildCount reports how many times the graph has been rebuilt from
// scratch, by SyncRoot or after a failed incremental apply (spec §4.4
// observability hook).
func (e *Engine) RebuildCount() uint64 { return e.rebuildCount }

// Rect returns the last-solved rect for key and whether one exists. Per
// spec §4.4, use_measure reads the rect from the previous completed
// frame — callers are expected to read this after Solve, one frame lagged
// relative to the render that queried it.
func (e *Engine) Rect(key reconciler.NodeKey) (Rect, bool) {
	r, ok := e.rects[key]
	return r, ok
}

// RectByElement projects the rect lookup through an element.Id, for code
// that still addresses nodes by the frame-local id rather than NodeKey.
func (e *Engine) RectByElement(id element.Id) (Rect, bool) {
	r, ok := e.elementRects[id]
	return r, ok
}

// Apply applies a reconciler patch stream to the graph in order. If an
// incremental step finds the graph inconsistent with what the patch
// expects (a structural assertion failure), the whole graph is rebuilt
// from full instead — never left half-applied.
func (e *Engine) Apply(patches []reconciler.Patch, fullTree reconciler.VNode) {
	for _, p := range patches {
		if !e.applyOne(p) {
			e.rebuild(fullTree)
			return
		}
	}
}

func (e *Engine) applyOne(p reconciler.Patch) bool {
	switch p.Kind {
	case reconciler.PatchInsert:
		e.insertSubtree(p.Node, p.Parent)
		parent, ok := e.nodes[p.Parent]
		if !ok {
			return false
		}
		parent.children = append(parent.children, p.Node.Key)
		return true

	case reconciler.PatchRemove:
		n, ok := e.nodes[p.Key]
		if !ok {
			return false
		}
		e.removeSubtree(p.Key)
		if parent, ok := e.nodes[n.parent]; ok {
			parent.children = removeKey(parent.children, p.Key)
		}
		return true

	case reconciler.PatchUpdate:
		if _, ok := e.nodes[p.Key]; !ok {
			return false
		}
		e.RefreshStyle(p.Key, p.Node)
		return true

	case reconciler.PatchReplace:
		n, ok := e.nodes[p.Key]
		if !ok {
			return false
		}
		parentKey := n.parent
		e.removeSubtree(p.Key)
		if parent, ok := e.nodes[parentKey]; ok {
			parent.children = removeKey(parent.children, p.Key)
			e.insertSubtree(p.Node, parentKey)
			parent.children = append(parent.children, p.Node.Key)
		} else {
			e.insertSubtree(p.Node, parentKey)
			e.root = p.Node.Key
		}
		return true

	case reconciler.PatchReorder:
		parent, ok := e.nodes[p.Parent]
		if !ok {
			return false
		}
		reordered := make([]reconciler.NodeKey, len(parent.children))
		copy(reordered, parent.children)
		for _, mv := range p.Moves {
			if mv.From >= len(parent.children) || mv.To >= len(reordered) {
				return false
			}
			reordered[mv.To] = parent.children[mv.From]
		}
		parent.children = reordered
		return true
	}
	return false
}

// RefreshStyle updates an already-inserted node's style/text in place;
// applyOne calls this for every PatchUpdate using the patch's own Node
// field, which carries the new VNode's data.
func (e *Engine) RefreshStyle(key reconciler.NodeKey, v reconciler.VNode) {
	if n, ok := e.nodes[key]; ok {
		n.style = v.Style
		n.text = v.Text
	}
}

func (e *Engine) insertSubtree(v reconciler.VNode, parent reconciler.NodeKey) {
	n := &node{key: v.Key, elemID: v.ElementID, kind: v.Kind, style: v.Style, text: v.Text, parent: parent}
	for _, c := range v.Children {
		n.children = append(n.children, c.Key)
	}
	e.nodes[v.Key] = n
	for _, c := range v.Children {
		e.insertSubtree(c, v.Key)
	}
}

func (e *Engine) removeSubtree(key reconciler.NodeKey) {
	n, ok := e.nodes[key]
	if !ok {
		return
	}
	for _, c := range n.children {
		e.removeSubtree(c)
	}
	delete(e.nodes, key)
	delete(e.rects, key)
	delete(e.elementRects, n.elemID)
}

func (e *Engine) rebuild(full reconciler.VNode) {
	e.nodes = map[reconciler.NodeKey]*node{}
	e.rebuildCount++
	e.insertSubtree(full, "")
	e.root = full.Key
}

// SyncRoot resets the graph to exactly match full; called on the very
// first frame (when there is no previous tree to diff against) and
// whenever the app runner chooses to force a full rebuild (e.g. after a
// reconcile fallback storm).
func (e *Engine) SyncRoot(full reconciler.VNode) {
	e.rebuild(full)
}

func removeKey(keys []reconciler.NodeKey, target reconciler.NodeKey) []reconciler.NodeKey {
	out := keys[:0]
	for _, k := range keys {
		if k != target {
			out = append(out, k)
		}
	}
	return out
}
