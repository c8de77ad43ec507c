// File: split.go
// Role: Split — weakly-connected-component partition (spec §4.2).
package component

import (
	"fmt"

	"github.com/katalvlaran/dfgdecomp/core"
)

// Split partitions g into its weakly-connected components and returns the
// resulting sub-graphs, ordered by the encounter order of the variable
// that seeded each one. g is emptied by a successful call; every returned
// sub-graph is non-empty and contains at least one variable (P1, P2, P3).
//
// Complexity: O(V + E) to color; migration splices each vertex out of its
// bucket in O(n) (see core.Graph.RemoveVertex), so it is O(V²) in the
// worst case.
func Split(g *core.Graph, label string) []*core.Graph {
	release := g.ScratchScope()
	defer release()

	counter := colorComponents(g)
	subgraphs := allocateComponents(g, label, counter-1)

	migrate := func(v *core.Vertex) {
		if id := componentOf(v); id > 0 {
			_ = g.RemoveVertex(v)
			subgraphs[id-1].AddVertex(v)
		} else {
			// Unreachable from any variable: pure dead logic.
			g.UnlinkAndDelete(v)
		}
	}
	g.IterateUnlinkable(core.KindVariable, migrate)
	g.IterateUnlinkable(core.KindConstant, migrate)
	g.IterateUnlinkable(core.KindOperator, migrate)

	if g.Size() != 0 {
		panic(&core.InvariantError{Op: "Split", Msg: "input graph was not emptied"})
	}

	return subgraphs
}

// colorComponents assigns each vertex reachable from some variable a
// shared, 1-based component id via iterative DFS over both source and
// sink edges. Returns the next unused id (component count == return-1).
func colorComponents(g *core.Graph) int {
	counter := 1
	var worklist []*core.Vertex

	for _, root := range g.Variables() {
		if componentOf(root) != 0 {
			continue
		}
		worklist = append(worklist[:0], root)
		for len(worklist) > 0 {
			item := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]
			if componentOf(item) != 0 {
				continue
			}
			item.Scratch.Set(counter)
			item.ForEachSource(func(s *core.Vertex) { worklist = append(worklist, s) })
			item.ForEachSink(func(s *core.Vertex) { worklist = append(worklist, s) })
		}
		counter++
	}

	return counter
}

func componentOf(v *core.Vertex) int {
	id, _ := v.Scratch.Get().(int)
	return id
}

func allocateComponents(g *core.Graph, label string, n int) []*core.Graph {
	subgraphs := make([]*core.Graph, n)
	for i := 0; i < n; i++ {
		sg, err := core.NewGraph(componentName(g.Name(), label, i), g.Modulep())
		if err != nil {
			// Name is derived from g.Name(), already validated non-empty.
			panic(err)
		}
		subgraphs[i] = sg
	}
	return subgraphs
}

// componentName builds "<parent>[-<label>]-component-<index>" (spec §6).
func componentName(parent, label string, index int) string {
	if label == "" {
		return fmt.Sprintf("%s-component-%d", parent, index)
	}
	return fmt.Sprintf("%s-%s-component-%d", parent, label, index)
}
