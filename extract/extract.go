// File: extract.go
// Role: Cyclic-component extraction — cloning and edge rewiring at
// variable cut points (spec §4.5, C5).
package extract

import (
	"fmt"

	"github.com/katalvlaran/dfgdecomp/core"
	"github.com/katalvlaran/dfgdecomp/scc"
)

// Option configures an Extract call.
type Option func(*options)

type options struct {
	checks bool
}

// WithConsistencyChecks enables the O(V+E) closure and component-crossing
// checks after extraction. Off by default; meant for tests and debug
// builds, not hot paths (spec §4.5 step 5).
func WithConsistencyChecks() Option {
	return func(o *options) { o.checks = true }
}

// Extract allocates n sub-graphs — one per non-trivial SCC scc.Color (and,
// if n > 0, scc.Merge) assigned — and migrates every vertex whose
// component is non-zero out of g and into its sub-graph. Variables that
// sit at a component boundary are cloned, one clone per foreign component
// that touches them, so every migrated edge stays within a single
// sub-graph; the original variable is left in its own component as an
// external pin, and each clone keeps the original's symbol so downstream
// tooling can reconnect sub-graphs by variable identity.
//
// Preconditions: scc.Color has run over g; if it returned n > 0, scc.Merge
// has also run. Returns nil if n == 0 (no cyclic components to extract).
//
// Complexity: O(V + E) to rewire; migration splices each moved vertex out
// of its bucket in O(n) (see core.Graph.RemoveVertex), so it is O(V²) in
// the worst case.
func Extract(g *core.Graph, n int, label string, opts ...Option) []*core.Graph {
	if n == 0 {
		return nil
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	c := &cloner{
		subgraphs: allocate(g, label, n),
		clones:    make(map[*core.Vertex]map[int]*core.Vertex),
	}

	// Clones appended mid-loop must never themselves be visited: they
	// belong to exactly one component and carry no cross-component edges.
	lastOriginal := lastOf(g.Variables())
	for _, v := range g.Variables() {
		c.fixEdges(v)
		if v == lastOriginal {
			break
		}
	}

	if o.checks {
		checkEdges(g)
	}

	migrate := func(v *core.Vertex) {
		if id := scc.ComponentOf(v); id > 0 {
			_ = g.RemoveVertex(v)
			c.subgraphs[id-1].AddVertex(v)
		}
	}
	g.IterateUnlinkable(core.KindVariable, migrate)
	g.IterateUnlinkable(core.KindConstant, migrate)
	g.IterateUnlinkable(core.KindOperator, migrate)

	if o.checks {
		g.CheckClosure()
		for _, sg := range c.subgraphs {
			sg.CheckClosure()
		}
	}

	return c.subgraphs
}

type cloner struct {
	subgraphs []*core.Graph
	clones    map[*core.Vertex]map[int]*core.Vertex
}

// fixEdges relinks every edge incident to v that crosses a component
// boundary so the foreign side of the cut talks to a clone of v instead
// of v itself.
func (c *cloner) fixEdges(v *core.Vertex) {
	vComponent := scc.ComponentOf(v)

	v.ForEachSourceEdge(func(e *core.Edge, slot int) {
		src := e.Source()
		if src == nil {
			return
		}
		srcComponent := scc.ComponentOf(src)
		if srcComponent == vComponent {
			return
		}
		// The producer moves to a different sub-graph than v: it needs
		// its own local copy of v to drive.
		e.UnlinkSource()
		clone := c.cloneFor(v, srcComponent)
		clone.SetSourceAt(0, src)
	})

	v.ForEachSinkEdge(func(e *core.Edge) {
		sink := e.Sink()
		sinkComponent := scc.ComponentOf(sink)
		if sinkComponent == vComponent {
			return
		}
		// The consumer moves to a different sub-graph than v: redirect it
		// to read a local clone instead of reaching across the cut.
		clone := c.cloneFor(v, sinkComponent)
		e.RelinkSource(clone)
	})
}

// cloneFor returns the clone of v that belongs to component, creating it
// on first request.
func (c *cloner) cloneFor(v *core.Vertex, component int) *core.Vertex {
	byComponent, ok := c.clones[v]
	if !ok {
		byComponent = make(map[int]*core.Vertex)
		c.clones[v] = byComponent
	}
	if clone, ok := byComponent[component]; ok {
		return clone
	}

	clone := v.Graph().CloneVariable(v)
	v.SetDfgRefs(true)
	clone.SetDfgRefs(true)
	scc.SetComponent(clone, component)
	byComponent[component] = clone

	return clone
}

func allocate(g *core.Graph, label string, n int) []*core.Graph {
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

func lastOf(vs []*core.Vertex) *core.Vertex {
	if len(vs) == 0 {
		return nil
	}
	return vs[len(vs)-1]
}

// checkEdges asserts every edge between two non-variable vertices stays
// within a single component — the invariant scc.Merge establishes and
// Extract relies on to cut only at variables.
func checkEdges(g *core.Graph) {
	check := func(v *core.Vertex) {
		vComponent := scc.ComponentOf(v)
		v.ForEachSource(func(other *core.Vertex) {
			if other.IsVariable() {
				return
			}
			if scc.ComponentOf(other) != vComponent {
				panic(&core.InvariantError{Op: "checkEdges", At: v,
					Msg: "edge crosses components without variable involvement"})
			}
		})
	}
	for _, v := range g.Constants() {
		check(v)
	}
	for _, v := range g.Operators() {
		check(v)
	}
}
