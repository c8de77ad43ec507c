package extract

import (
	"testing"

	"github.com/katalvlaran/dfgdecomp/core"
	"github.com/katalvlaran/dfgdecomp/scc"
)

func mustGraph(t *testing.T, name string) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(name, nil)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

// buildCyclicWithExternalFeed builds: ext --> v (variable) --> opSelf
// (operator with a self-loop on slot 1) --> out. opSelf is the only
// non-trivial SCC; Merge pulls out into it, ext stays in the residual, and
// v is the cut point that gets a clone inside the extracted sub-graph.
func buildCyclicWithExternalFeed(t *testing.T, g *core.Graph) (ext, v, opSelf, out *core.Vertex) {
	t.Helper()
	ext = core.NewOperator(g, 0)
	v = core.NewVariable(g, core.VarPacked, core.Symbol{Name: "v"}, false, 1)
	opSelf = core.NewOperator(g, 2)
	out = core.NewOperator(g, 1)

	core.Connect(ext, v, 0)
	core.Connect(v, opSelf, 0)
	core.Connect(opSelf, opSelf, 1)
	core.Connect(opSelf, out, 0)

	return ext, v, opSelf, out
}

func TestExtract_NoCycles(t *testing.T) {
	g := mustGraph(t, "acyclic")
	a := core.NewVariable(g, core.VarPacked, core.Symbol{Name: "a"}, false, 0)
	op := core.NewOperator(g, 1)
	core.Connect(a, op, 0)

	release := g.ScratchScope()
	n := scc.Color(g)
	release()

	if n != 0 {
		t.Fatalf("Color() = %d; want 0", n)
	}
	if out := Extract(g, n, ""); out != nil {
		t.Fatalf("Extract(g, 0, \"\") = %v; want nil", out)
	}
	if g.Size() != 2 {
		t.Errorf("g.Size() = %d; want 2, Extract must be a no-op when n == 0", g.Size())
	}
}

func TestExtract_SelfLoopMovesToItsOwnSubgraph(t *testing.T) {
	g := mustGraph(t, "cyclic")
	_, v, opSelf, _ := buildCyclicWithExternalFeed(t, g)

	release := g.ScratchScope()
	n := scc.Color(g)
	if n != 1 {
		release()
		t.Fatalf("Color() = %d; want 1", n)
	}
	scc.Merge(g)

	subgraphs := Extract(g, n, "cyc", WithConsistencyChecks())
	release()

	if len(subgraphs) != 1 {
		t.Fatalf("len(subgraphs) = %d; want 1", len(subgraphs))
	}
	sub := subgraphs[0]

	if opSelf.Graph() != sub {
		t.Errorf("opSelf migrated to %v; want the extracted sub-graph", opSelf.Graph())
	}
	if v.Graph() != g {
		t.Errorf("v.Graph() = %v; want the original graph (cut point stays put)", v.Graph())
	}

	// v must have picked up a clone living in sub that opSelf now reads.
	found := false
	for _, sv := range sub.Variables() {
		if sv.Symbol().Name == "v" && sv != v {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a clone of v inside the extracted sub-graph")
	}
}

// TestExtract_PureVariableSelfLoop covers spec scenario 3: a lone variable
// a with a->a and nothing else. No foreign neighbor exists, so no clone is
// needed; a itself is the whole non-trivial SCC and moves to the one
// extracted sub-graph, leaving the residual graph empty.
func TestExtract_PureVariableSelfLoop(t *testing.T) {
	g := mustGraph(t, "selfassign")
	a := core.NewVariable(g, core.VarPacked, core.Symbol{Name: "a"}, false, 1)
	core.Connect(a, a, 0)

	release := g.ScratchScope()
	n := scc.Color(g)
	if n != 1 {
		release()
		t.Fatalf("Color() = %d; want 1", n)
	}
	scc.Merge(g)

	subgraphs := Extract(g, n, "", WithConsistencyChecks())
	release()

	if len(subgraphs) != 1 {
		t.Fatalf("len(subgraphs) = %d; want 1", len(subgraphs))
	}
	if a.Graph() != subgraphs[0] {
		t.Errorf("a.Graph() = %v; want the extracted sub-graph", a.Graph())
	}
	if g.Size() != 0 {
		t.Errorf("g.Size() = %d; want 0, residual has nothing left over", g.Size())
	}
	if subgraphs[0].Size() != 1 {
		t.Errorf("subgraphs[0].Size() = %d; want 1 (just a, no clone needed)", subgraphs[0].Size())
	}
}

func TestExtract_ClonePreservesSymbolAndVariant(t *testing.T) {
	g := mustGraph(t, "cyclic")
	_, v, _, _ := buildCyclicWithExternalFeed(t, g)

	release := g.ScratchScope()
	n := scc.Color(g)
	scc.Merge(g)
	subgraphs := Extract(g, n, "")
	release()

	var clone *core.Vertex
	for _, sv := range subgraphs[0].Variables() {
		if sv.Symbol().Name == "v" {
			clone = sv
		}
	}
	if clone == nil {
		t.Fatalf("no clone of v found in extracted sub-graph")
	}
	if clone.Variant() != v.Variant() {
		t.Errorf("clone.Variant() = %v; want %v", clone.Variant(), v.Variant())
	}
	if clone.Symbol() != v.Symbol() {
		t.Errorf("clone.Symbol() = %+v; want %+v", clone.Symbol(), v.Symbol())
	}
	if !v.DfgRefs() || !clone.DfgRefs() {
		t.Errorf("both v and its clone should have DfgRefs set after extraction")
	}
}
