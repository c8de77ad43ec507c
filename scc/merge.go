// File: merge.go
// Role: Variable-boundary coarsening of SCC ids (spec §4.4, C4).
package scc

import "github.com/katalvlaran/dfgdecomp/core"

// Merge coarsens every non-trivial SCC Color found so that its boundary
// runs only through variables. For each operator Color left with a
// positive component id, it walks both sources and sinks, stopping at
// variables, and relabels every non-variable vertex it reaches with the
// starting operator's component id.
//
// Must run after Color and before extract.Extract; a no-op if Color
// returned 0. Requires the same active scratch scope Color used.
//
// Complexity: O(V + E).
func Merge(g *core.Graph) {
	for _, v := range g.Operators() {
		st := stateOf(v)
		if st.component > 0 {
			visitMerge(v, st.component)
		}
	}
}

func visitMerge(v *core.Vertex, target int) {
	st := stateOf(v)
	if st.merged {
		return
	}
	st.merged = true
	st.component = target

	v.ForEachSource(func(other *core.Vertex) {
		if other.IsVariable() {
			return
		}
		visitMerge(other, target)
	})
	v.ForEachSink(func(other *core.Vertex) {
		if other.IsVariable() {
			return
		}
		visitMerge(other, target)
	})
}
