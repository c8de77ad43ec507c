package component

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/dfgdecomp/core"
)

func mustGraph(t *testing.T, name string) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(name, nil)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestSplit_EmptyGraph(t *testing.T) {
	g := mustGraph(t, "empty")
	subgraphs := Split(g, "")
	if len(subgraphs) != 0 {
		t.Fatalf("Split(empty) = %d sub-graphs; want 0", len(subgraphs))
	}
	if g.Size() != 0 {
		t.Errorf("g.Size() = %d; want 0", g.Size())
	}
}

func TestSplit_SingleComponent(t *testing.T) {
	g := mustGraph(t, "top")
	a := core.NewVariable(g, core.VarPacked, core.Symbol{Name: "a"}, false, 0)
	op := core.NewOperator(g, 1)
	b := core.NewVariable(g, core.VarPacked, core.Symbol{Name: "b"}, false, 1)
	core.Connect(a, op, 0)
	core.Connect(op, b, 0)

	subgraphs := Split(g, "")
	if len(subgraphs) != 1 {
		t.Fatalf("Split() = %d sub-graphs; want 1", len(subgraphs))
	}
	if subgraphs[0].Size() != 3 {
		t.Errorf("subgraphs[0].Size() = %d; want 3", subgraphs[0].Size())
	}
	if g.Size() != 0 {
		t.Errorf("g.Size() = %d after Split; want 0 (g is emptied)", g.Size())
	}
}

func TestSplit_TwoDisjointComponents(t *testing.T) {
	g := mustGraph(t, "top")
	a := core.NewVariable(g, core.VarPacked, core.Symbol{Name: "a"}, false, 0)
	opA := core.NewOperator(g, 1)
	core.Connect(a, opA, 0)

	b := core.NewVariable(g, core.VarPacked, core.Symbol{Name: "b"}, false, 0)
	opB := core.NewOperator(g, 1)
	core.Connect(b, opB, 0)

	subgraphs := Split(g, "part")
	if len(subgraphs) != 2 {
		t.Fatalf("Split() = %d sub-graphs; want 2", len(subgraphs))
	}
	for i, sg := range subgraphs {
		if sg.Size() != 2 {
			t.Errorf("subgraphs[%d].Size() = %d; want 2", i, sg.Size())
		}
		wantName := "top-part-component-" + strconv.Itoa(i)
		if sg.Name() != wantName {
			t.Errorf("subgraphs[%d].Name() = %q; want %q", i, sg.Name(), wantName)
		}
	}
}

func TestSplit_DeletesLogicUnreachableFromAnyVariable(t *testing.T) {
	g := mustGraph(t, "top")
	dead := core.NewOperator(g, 0)
	deadSink := core.NewOperator(g, 1)
	core.Connect(dead, deadSink, 0)

	subgraphs := Split(g, "")
	if len(subgraphs) != 0 {
		t.Fatalf("Split() = %d sub-graphs; want 0, nothing reaches a variable", len(subgraphs))
	}
	if dead.Graph() != nil || deadSink.Graph() != nil {
		t.Errorf("dead logic should have been unlinked and dropped from g")
	}
}
