// File: state.go
// Role: Per-vertex SCC bookkeeping, carried in core.Scratch (spec §9).
package scc

import "github.com/katalvlaran/dfgdecomp/core"

// unassigned marks a state field as not yet touched by Color. It is
// distinct from 0, which Color uses to mean "visited, confirmed acyclic".
const unassigned = -1

type state struct {
	index     int
	component int
	merged    bool
}

// stateOf returns v's scc bookkeeping, allocating a fresh, unassigned one
// on first touch. Requires an active scratch scope on v.Graph().
func stateOf(v *core.Vertex) *state {
	st, _ := v.Scratch.Get().(*state)
	if st == nil {
		st = &state{index: unassigned, component: unassigned}
		v.Scratch.Set(st)
	}
	return st
}

// ComponentOf reports the component id Color (and, where run, Merge)
// assigned to v: 0 means v stays in the residual graph, a positive id
// names a non-trivial SCC. Only meaningful after Color has run over the
// whole graph v belongs to.
func ComponentOf(v *core.Vertex) int {
	return stateOf(v).component
}

// SetComponent assigns v's component directly, bypassing traversal. It
// exists for vertices created after Color/Merge have already run — a
// variable clone extract.Extract allocates mid-pass has no scratch state
// of its own until its destination component is known.
func SetComponent(v *core.Vertex, id int) {
	stateOf(v).component = id
}
