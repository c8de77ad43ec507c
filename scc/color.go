// File: color.go
// Role: Pearce's algorithm — single-pass SCC coloring (spec §4.3, C3).
package scc

import "github.com/katalvlaran/dfgdecomp/core"

// Color runs a single depth-first pass over g and assigns every vertex a
// component id: 0 for vertices confirmed acyclic, or a shared positive id
// for each maximal non-trivial SCC. Returns the number of non-trivial SCCs
// found. Requires an active scratch scope on g.
//
// A non-trivial SCC is either more than one vertex mutually reachable via
// sink edges, or a single vertex with a direct self-loop (spec §4.3 edge
// case "single-vertex cycle").
//
// Complexity: O(V + E).
func Color(g *core.Graph) int {
	c := &colorer{}

	for _, v := range g.Constants() {
		st := stateOf(v)
		st.index = 0
		st.component = 0
	}

	for _, v := range g.Variables() {
		st := stateOf(v)
		if v.Arity() == 0 || !v.HasSinks() {
			// Cannot be driven into, or cannot close a cycle back to its
			// own driver: trivially acyclic without traversal.
			st.index = 0
			st.component = 0
			continue
		}
		if st.index == unassigned {
			c.visit(v, st)
		}
	}

	for _, v := range g.Operators() {
		st := stateOf(v)
		if st.index == unassigned {
			// Every cycle passes through a variable; an operator never
			// reached from one is guaranteed acyclic.
			st.index = 0
			st.component = 0
		}
	}

	return c.nonTrivial
}

type colorer struct {
	index      int
	stack      []*core.Vertex
	nonTrivial int
}

// visit implements Pearce's single pass for the subtree rooted at v: it
// assigns v the smallest index reachable from it among sinks not yet
// resolved into a component, and upon returning to the root of a
// non-trivial SCC, pops every stack entry belonging to that SCC and
// assigns it a fresh component id.
func (c *colorer) visit(v *core.Vertex, st *state) {
	c.index++
	rootIndex := c.index
	st.index = rootIndex

	v.ForEachSink(func(child *core.Vertex) {
		cst := stateOf(child)
		if cst.index == unassigned {
			c.visit(child, cst)
		}
		if cst.component == unassigned && st.index > cst.index {
			st.index = cst.index
		}
	})

	if st.index != rootIndex {
		// Part of an ancestor's still-open SCC: leave resolution to it.
		c.stack = append(c.stack, v)
		return
	}

	isTrivial := len(c.stack) == 0 || stateOf(c.stack[len(c.stack)-1]).index < rootIndex
	drivesSelf := v.FindSink(func(s *core.Vertex) bool { return s == v }) != nil

	if !isTrivial || drivesSelf {
		c.nonTrivial++
		st.component = c.nonTrivial
		for len(c.stack) > 0 {
			top := c.stack[len(c.stack)-1]
			topSt := stateOf(top)
			if topSt.index < rootIndex {
				break
			}
			c.stack = c.stack[:len(c.stack)-1]
			topSt.component = c.nonTrivial
		}
	} else {
		st.component = 0
	}
}
