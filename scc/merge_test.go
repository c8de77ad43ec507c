package scc

import (
	"testing"

	"github.com/katalvlaran/dfgdecomp/core"
)

// Two unrelated self-loops bridged by a pure acyclic operator must end up
// in the same component after Merge, since a component boundary may only
// be cut at a variable and opSelf1/opSelf2 share a non-variable edge via
// opMid.
func TestMerge_BridgesDistinctSCCsAtNonVariableEdge(t *testing.T) {
	g := mustGraph(t, "bridge")
	leaf := core.NewOperator(g, 0)
	v1 := core.NewVariable(g, core.VarPacked, core.Symbol{Name: "v1"}, false, 1)
	core.Connect(leaf, v1, 0)

	opSelf1 := core.NewOperator(g, 2)
	core.Connect(v1, opSelf1, 0)
	core.Connect(opSelf1, opSelf1, 1)

	opMid := core.NewOperator(g, 1)
	core.Connect(opSelf1, opMid, 0)

	opSelf2 := core.NewOperator(g, 2)
	core.Connect(opMid, opSelf2, 0)
	core.Connect(opSelf2, opSelf2, 1)

	release := g.ScratchScope()
	defer release()

	if n := Color(g); n != 2 {
		t.Fatalf("Color() = %d; want 2 independent self-loops before merging", n)
	}
	if ComponentOf(opMid) != 0 {
		t.Fatalf("ComponentOf(opMid) = %d; want 0 (acyclic) before merging", ComponentOf(opMid))
	}
	if ComponentOf(opSelf1) == ComponentOf(opSelf2) {
		t.Fatalf("the two self-loops should start in distinct components")
	}

	Merge(g)

	want := ComponentOf(opSelf1)
	if want == 0 {
		t.Fatalf("ComponentOf(opSelf1) = 0 after Merge; want a non-trivial component id")
	}
	if ComponentOf(opMid) != want {
		t.Errorf("ComponentOf(opMid) = %d; want %d (merged with opSelf1/opSelf2)", ComponentOf(opMid), want)
	}
	if ComponentOf(opSelf2) != want {
		t.Errorf("ComponentOf(opSelf2) = %d; want %d (merged with opSelf1/opMid)", ComponentOf(opSelf2), want)
	}
}

// Merge must not cross a variable boundary: two self-loops separated by a
// variable stay in distinct components.
func TestMerge_StopsAtVariable(t *testing.T) {
	g := mustGraph(t, "stop-at-variable")
	leaf := core.NewOperator(g, 0)
	v1 := core.NewVariable(g, core.VarPacked, core.Symbol{Name: "v1"}, false, 1)
	core.Connect(leaf, v1, 0)

	opSelf1 := core.NewOperator(g, 2)
	core.Connect(v1, opSelf1, 0)
	core.Connect(opSelf1, opSelf1, 1)

	vBoundary := core.NewVariable(g, core.VarPacked, core.Symbol{Name: "boundary"}, false, 1)
	core.Connect(opSelf1, vBoundary, 0)

	opSelf2 := core.NewOperator(g, 2)
	core.Connect(vBoundary, opSelf2, 0)
	core.Connect(opSelf2, opSelf2, 1)

	release := g.ScratchScope()
	defer release()

	if n := Color(g); n != 2 {
		t.Fatalf("Color() = %d; want 2", n)
	}

	Merge(g)

	if ComponentOf(opSelf1) == ComponentOf(opSelf2) {
		t.Errorf("Merge crossed the variable boundary: opSelf1 and opSelf2 share component %d", ComponentOf(opSelf1))
	}
	if ComponentOf(vBoundary) != 0 {
		t.Errorf("ComponentOf(vBoundary) = %d; want 0, variables are never merge targets", ComponentOf(vBoundary))
	}
}
