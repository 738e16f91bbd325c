package reconciler

// PatchKind discriminates the Patch union.
type PatchKind uint8

const (
	PatchInsert PatchKind = iota
	PatchRemove
	PatchUpdate
	PatchReplace
	PatchReorder
)

// Move records that the child previously at From is now at To.
type Move struct {
	From, To int
}

// Patch is one minimal mutation needed to transform the previous VNode
// tree into the current one (spec §3, grounded on original_source's
// reconciler::diff::Patch enum — Create/Update/Remove/Replace/Reorder,
// renamed Create→Insert to match spec.md's vocabulary).
type Patch struct {
	Kind PatchKind

	Key    NodeKey // Insert, Remove, Update, Replace
	Parent NodeKey // Insert, Reorder

	OldProps PropsHash // Update
	NewProps PropsHash // Update, Replace

	Node VNode // Insert, Replace, Update: the node's current data

	Moves []Move // Reorder
}

func insertPatch(node VNode, parent NodeKey) Patch {
	return Patch{Kind: PatchInsert, Key: node.Key, Parent: parent, NewProps: node.PropsHash, Node: node}
}

func updatePatch(node VNode, oldProps PropsHash) Patch {
	return Patch{Kind: PatchUpdate, Key: node.Key, OldProps: oldProps, NewProps: node.PropsHash, Node: node}
}

func removePatch(key NodeKey) Patch {
	return Patch{Kind: PatchRemove, Key: key}
}

func replacePatch(key NodeKey, node VNode) Patch {
	return Patch{Kind: PatchReplace, Key: key, NewProps: node.PropsHash, Node: node}
}

func reorderPatch(parent NodeKey, moves []Move) Patch {
	return Patch{Kind: PatchReorder, Parent: parent, Moves: moves}
}
