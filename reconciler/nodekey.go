// Package reconciler turns an element.Element tree into a VNode tree,
// diffs it against the previous frame's tree, and emits a minimal patch
// list addressed by stable NodeKeys.
package reconciler

import (
	"fmt"

	"github.com/majiayu000/rnk/element"
)

// NodeKey is the path-based stable identifier for one VNode: the
// concatenation, from the root, of each ancestor's sibling identifier. A
// sibling identifier is the author key if present, else the synthetic pair
// (index, type_tag); both forms carry the type_tag so the same key string
// naming nodes of different kinds in sibling subtrees never collides (spec
// §4.3, grounded on original_source's NodeKey::matches semantics — a
// per-level comparison here generalized into a full path since two
// distinct paths built from identical segments are themselves identical
// strings, which is a strictly stronger stability guarantee).
type NodeKey string

// RootKey is the parent key the tree root is built under: BuildRoot passes
// it to Build, so the root node's own key is Child(RootKey, key, 0, tag).
const RootKey NodeKey = ""

// Child computes the NodeKey of one child of parent. userKey is the
// author-supplied key, or "" if none was given; index is the child's
// position among siblings; tag is its component-type tag.
func Child(parent NodeKey, userKey string, index int, tag element.TypeTag) NodeKey {
	if userKey != "" {
		return NodeKey(fmt.Sprintf("%s/k:%s:%d", parent, userKey, tag))
	}
	return NodeKey(fmt.Sprintf("%s/i:%d:%d", parent, index, tag))
}
