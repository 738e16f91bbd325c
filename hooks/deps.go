package hooks

import (
	"fmt"
)

// DepsHash is the stable structural hash used to decide whether a memo,
// callback, or effect's dependency list changed. Deps must be compared
// structurally, never by pointer identity, so %#v formatting (stable for
// any comparable/printable Go value) stands in for the original's derived
// Hash implementation.
type DepsHash string

// HashDeps computes a DepsHash over an arbitrary dependency list.
func HashDeps(deps ...any) DepsHash {
	return DepsHash(fmt.Sprintf("%#v", deps))
}
