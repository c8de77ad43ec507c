// File: driver.go
// Role: Public entry points (spec §4.6, C6 "Driver façade").
package decompose

import (
	"github.com/katalvlaran/dfgdecomp/component"
	"github.com/katalvlaran/dfgdecomp/core"
	"github.com/katalvlaran/dfgdecomp/extract"
	"github.com/katalvlaran/dfgdecomp/scc"
)

// Split partitions g into its weakly-connected components. See
// component.Split for the full contract; g is emptied on success.
func Split(g *core.Graph, label string) []*core.Graph {
	return component.Split(g, label)
}

// ExtractCyclic pulls every non-trivial strongly-connected component out
// of g into its own sub-graph, cloning variables at cut points so no
// extracted sub-graph shares a non-variable edge with anything left
// behind. Returns nil if g has no cyclic components — g is left
// untouched in that case.
//
// opts are forwarded to extract.Extract; see extract.WithConsistencyChecks.
func ExtractCyclic(g *core.Graph, label string, opts ...extract.Option) []*core.Graph {
	release := g.ScratchScope()
	defer release()

	n := scc.Color(g)
	if n == 0 {
		return nil
	}
	scc.Merge(g)

	return extract.Extract(g, n, label, opts...)
}
