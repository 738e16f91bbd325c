package reconciler

import "github.com/majiayu000/rnk/element"

// FallbackCounter counts whole-subtree replacements forced by an internal
// reconcile inconsistency (duplicate keys, type change at the same key) —
// the spec's "never silently drop a node" escape hatch (§4.3, §7).
type FallbackCounter struct {
	n uint64
}

// Count returns the number of fallback replacements recorded so far.
func (f *FallbackCounter) Count() uint64 { return f.n }

func (f *FallbackCounter) inc() { f.n++ }

// Diff compares old and new VNode trees and returns the patch list that
// transforms old into new. Grounded on original_source's
// reconciler::diff::diff / diff_node / diff_children.
func Diff(old, new VNode, fallback *FallbackCounter) []Patch {
	var patches []Patch
	diffNode(old, new, &patches, fallback)
	return patches
}

func diffNode(old, new VNode, patches *[]Patch, fallback *FallbackCounter) {
	if old.Key != new.Key {
		*patches = append(*patches, replacePatch(old.Key, new))
		fallback.inc()
		return
	}
	if old.Kind != new.Kind {
		*patches = append(*patches, replacePatch(old.Key, new))
		fallback.inc()
		return
	}
	if old.Kind == element.KindText && old.Text != new.Text {
		*patches = append(*patches, replacePatch(old.Key, new))
		return
	}
	if old.PropsHash != new.PropsHash {
		*patches = append(*patches, updatePatch(new, old.PropsHash))
	}
	diffChildren(old.Children, new.Children, old.Key, patches, fallback)
}

// diffChildren runs the keyed two-pass diff: match new children to old by
// NodeKey, recursing into matches; create unmatched new children; remove
// unmatched old children; and emit one Reorder patch if any match moved
// backwards relative to its previous position (forward moves are implied
// by inserts/removes and need no explicit patch).
func diffChildren(oldChildren, newChildren []VNode, parent NodeKey, patches *[]Patch, fallback *FallbackCounter) {
	oldIndexByKey := make(map[NodeKey]int, len(oldChildren))
	for i, c := range oldChildren {
		if _, dup := oldIndexByKey[c.Key]; dup {
			fallback.inc()
			continue
		}
		oldIndexByKey[c.Key] = i
	}

	matchedOld := make([]bool, len(oldChildren))
	var moves []Move

	for newIdx, newChild := range newChildren {
		if oldIdx, ok := oldIndexByKey[newChild.Key]; ok {
			matchedOld[oldIdx] = true
			diffNode(oldChildren[oldIdx], newChild, patches, fallback)
			if oldIdx != newIdx {
				moves = append(moves, Move{From: oldIdx, To: newIdx})
			}
		} else {
			*patches = append(*patches, insertPatch(newChild, parent))
		}
	}

	for oldIdx, matched := range matchedOld {
		if !matched {
			*patches = append(*patches, removePatch(oldChildren[oldIdx].Key))
		}
	}

	if len(moves) > 0 && needsReorder(moves) {
		*patches = append(*patches, reorderPatch(parent, moves))
	}
}

// needsReorder applies the same heuristic as the grounding source: any
// backward move genuinely requires reordering; a set of only-forward moves
// is fully explained by the inserts/removes already emitted.
func needsReorder(moves []Move) bool {
	for _, m := range moves {
		if m.To < m.From {
			return true
		}
	}
	return false
}
