// File: vertex.go
// Role: Vertex construction and per-vertex query/traversal contracts
// (spec §6 "Vertex" and "Variable sub-variants" collaborator surfaces).
//
// Determinism:
//   - ForEachSource/ForEachSink/ForEachSourceEdge/ForEachSinkEdge all walk
//     slices in the order the engine itself populated them (slot order for
//     sources, encounter order for sinks). No map iteration is involved.
package core

// NewConstant allocates a detached constant vertex (zero source slots, per
// I3) and attaches it to g.
//
// Complexity: O(1).
func NewConstant(g *Graph) *Vertex {
	v := &Vertex{seq: nextVertexSeq(), kind: KindConstant}
	attach(g, v, KindConstant)
	return v
}

// NewOperator allocates a detached operator vertex with the given fixed
// fan-in (arity >= 0) and attaches it to g. Fan-out is unbounded and grows
// dynamically as sink edges are added.
//
// Complexity: O(arity).
func NewOperator(g *Graph, arity int) *Vertex {
	v := &Vertex{seq: nextVertexSeq(), kind: KindOperator}
	v.sourceSlots = allocSlots(v, arity)
	attach(g, v, KindOperator)
	return v
}

// NewVariable allocates a detached variable vertex bound to sym, of the
// given Variant, and attaches it to g.
//
// arity must be 0 or 1: 0 means the variable has no driver slot at all
// (spec §9 Open Question — e.g. a pure external input, still a legal,
// acyclic cut point); 1 means it has a single, possibly-unconnected,
// driver slot. hasScope records whether sym.Scope is meaningful (a Symbol
// with an empty Scope is legitimately unscoped, so the flag disambiguates
// "no scope" from "empty-string scope").
//
// Complexity: O(1).
func NewVariable(g *Graph, variant Variant, sym Symbol, hasScope bool, arity int) *Vertex {
	if arity != 0 && arity != 1 {
		fatalf("NewVariable", nil, "variable arity must be 0 or 1, got %d", arity)
	}
	v := &Vertex{
		seq:  nextVertexSeq(),
		kind: KindVariable,
		v: &variableData{
			variant:  variant,
			symbol:   sym,
			hasScope: hasScope,
		},
	}
	v.sourceSlots = allocSlots(v, arity)
	attach(g, v, KindVariable)
	return v
}

// allocSlots pre-allocates n source-slot Edge stubs bound to sink v, each
// initially unconnected (Source() == nil).
func allocSlots(v *Vertex, n int) []*Edge {
	if n == 0 {
		return nil
	}
	slots := make([]*Edge, n)
	for i := range slots {
		slots[i] = &Edge{sink: v, slot: i}
	}
	return slots
}

// attach appends v to the bucket for kind and records its owning graph.
// Panics if v already belongs to a graph (I2).
func attach(g *Graph, v *Vertex, kind Kind) {
	if v.graph != nil {
		fatalf("attach", v, "vertex already belongs to graph %q", v.graph.name)
	}
	bucket := g.bucketOf(kind)
	v.graph = g
	*bucket = append(*bucket, v)
}

// Graph returns the graph v currently belongs to, or nil if detached.
func (v *Vertex) Graph() *Graph { return v.graph }

// Kind reports which of the three disjoint buckets v belongs to.
func (v *Vertex) Kind() Kind { return v.kind }

// IsVariable reports whether v is a KindVariable vertex.
func (v *Vertex) IsVariable() bool { return v.kind == KindVariable }

// AsVariable is the engine's safe downcast: it returns a handle usable with
// the Variable* accessor methods below, or ok == false if v is not a
// variable. The returned handle is simply v itself — callers still call
// v.Symbol(), v.SetModRefs(), etc. — AsVariable exists purely so call sites
// can branch once instead of repeating IsVariable checks.
func (v *Vertex) AsVariable() (vertex *Vertex, ok bool) {
	if v.kind != KindVariable {
		return nil, false
	}
	return v, true
}

// Variant returns the variable sub-variant (Packed/Array). Panics if v is
// not a variable.
func (v *Vertex) Variant() Variant { return v.mustVar("Variant").variant }

// Symbol returns the bound external symbol. Panics if v is not a variable.
func (v *Vertex) Symbol() Symbol { return v.mustVar("Symbol").symbol }

// HasScope reports whether Symbol().Scope is meaningful for v.
func (v *Vertex) HasScope() bool { return v.mustVar("HasScope").hasScope }

// ModRefs / ExtRefs / DfgRefs report the visibility flags spec §3 assigns
// to variables: module-internal references, external (cross-module)
// references, and cross-sub-graph (post-extraction clone) references.
func (v *Vertex) ModRefs() bool { return v.mustVar("ModRefs").modRefs }
func (v *Vertex) ExtRefs() bool { return v.mustVar("ExtRefs").extRefs }
func (v *Vertex) DfgRefs() bool { return v.mustVar("DfgRefs").dfgRefs }

// SetModRefs / SetExtRefs / SetDfgRefs set the corresponding visibility flag.
func (v *Vertex) SetModRefs(b bool) { v.mustVar("SetModRefs").modRefs = b }
func (v *Vertex) SetExtRefs(b bool) { v.mustVar("SetExtRefs").extRefs = b }
func (v *Vertex) SetDfgRefs(b bool) { v.mustVar("SetDfgRefs").dfgRefs = b }

func (v *Vertex) mustVar(op string) *variableData {
	if v.v == nil {
		fatalf(op, v, "not a variable vertex")
	}
	return v.v
}

// Arity returns the number of source slots v declares.
func (v *Vertex) Arity() int { return len(v.sourceSlots) }

// HasSinks reports whether v has at least one consumer.
func (v *Vertex) HasSinks() bool { return len(v.sinkEdges) > 0 }

// FindSink returns the first sink vertex satisfying pred, walking fan-out
// in encounter order, or nil if none match.
func (v *Vertex) FindSink(pred func(*Vertex) bool) *Vertex {
	for _, e := range v.sinkEdges {
		if pred(e.sink) {
			return e.sink
		}
	}
	return nil
}

// ForEachSource invokes fn for every connected source vertex, in slot
// order. Unconnected slots are skipped.
func (v *Vertex) ForEachSource(fn func(*Vertex)) {
	for _, e := range v.sourceSlots {
		if e.source != nil {
			fn(e.source)
		}
	}
}

// ForEachSink invokes fn for every sink (consumer) vertex, in fan-out
// encounter order. A consumer with multiple input slots fed by v appears
// once per edge.
func (v *Vertex) ForEachSink(fn func(*Vertex)) {
	for _, e := range v.sinkEdges {
		fn(e.sink)
	}
}

// ForEachSourceEdge invokes fn for every source slot (including
// unconnected ones), passing the Edge and its slot index.
func (v *Vertex) ForEachSourceEdge(fn func(e *Edge, slot int)) {
	for i, e := range v.sourceSlots {
		fn(e, i)
	}
}

// ForEachSinkEdge invokes fn for every fan-out edge, in encounter order.
func (v *Vertex) ForEachSinkEdge(fn func(e *Edge)) {
	// Snapshot: fn may relink/unlink edges, which would mutate v.sinkEdges
	// while we range over it.
	edges := make([]*Edge, len(v.sinkEdges))
	copy(edges, v.sinkEdges)
	for _, e := range edges {
		fn(e)
	}
}

// SourceAt returns the Edge occupying source slot i. Panics on an
// out-of-range slot.
func (v *Vertex) SourceAt(slot int) *Edge { return v.sourceSlots[slot] }

// SetSourceAt sets the source of slot i to src (which may be nil to leave
// it unconnected), wiring src's fan-out accordingly.
func (v *Vertex) SetSourceAt(slot int, src *Vertex) {
	v.sourceSlots[slot].RelinkSource(src)
}
