// File: view.go
// Role: Non-mutating consistency checks (spec §4.5 step 5 "graph closure
// check", §7 "graph closure check fails").
//
// These are read-only diagnostics; they never mutate g.
package core

// CheckClosure verifies invariant I1: every edge endpoint observed while
// walking g is itself a member of g. It panics with *InvariantError at the
// first violation found; spec §4.5 gates calling this behind a debug flag,
// since it is O(V+E) and only useful after a pass that moves vertices
// between graphs.
//
// Complexity: O(V+E).
func (g *Graph) CheckClosure() {
	member := make(map[*Vertex]bool, g.Size())
	all := make([]*Vertex, 0, g.Size())
	all = append(all, g.variables...)
	all = append(all, g.constants...)
	all = append(all, g.operators...)
	for _, v := range all {
		member[v] = true
	}
	for _, v := range all {
		v.ForEachSourceEdge(func(e *Edge, _ int) {
			if e.source != nil && !member[e.source] {
				fatalf("CheckClosure", v, "source vertex %s not in graph %q", e.source, g.name)
			}
		})
		v.ForEachSinkEdge(func(e *Edge) {
			if !member[e.sink] {
				fatalf("CheckClosure", v, "sink vertex %s not in graph %q", e.sink, g.name)
			}
		})
	}
}
