// Package layout holds a persistent flexbox graph keyed by NodeKey,
// applies reconciler patches to it incrementally, and solves positions for
// the current terminal size. The solve algorithm is grounded on
// other_examples/germtb-goli__layout.go's layoutFlexChildren (grow
// distribution with remainder redistribution, justify-content variants,
// default-stretch cross-axis alignment, margin-aware main-axis
// accumulation) — no third-party Go flexbox-for-terminals library exists
// anywhere in the retrieval pack, so this solver is a from-scratch,
// adapted port of that reference rather than an import.
package layout

// Rect is an axis-aligned terminal-cell box.
type Rect struct {
	X, Y, W, H int
}
