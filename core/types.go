// File: types.go
// Role: Core types — Kind, Variant, Symbol, Scratch, Vertex, Edge, Graph —
// and the sentinel/invariant error vocabulary used throughout the engine.
//
// This file declares the arena: three disjoint intrusive vertex buckets per
// Graph (variable, constant, operator), fixed-arity source slots per
// Vertex, dynamic fan-out, and the one-word scratch slot used by later
// passes to carry transient coloring state.
//
// Errors:
//
//	ErrEmptyName      - Graph constructed with an empty name.
//	ErrVertexNotFound - operation referenced a vertex absent from this graph.
//	ErrForeignVertex  - vertex belongs to a different graph than expected.
//	ErrUnknownVariant - variable of an unrecognized Variant seen during cloning.
package core

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors for core graph operations. Callers branch on these with
// errors.Is; none are ever wrapped with formatted text at the definition
// site (context, if any, is attached with %w at the call site).
var (
	// ErrEmptyName indicates a Graph was given an empty name. Symbol names
	// are not checked.
	ErrEmptyName = errors.New("core: name is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex that is
	// not a member of the graph it was invoked against.
	ErrVertexNotFound = errors.New("core: vertex not found in graph")

	// ErrForeignVertex indicates a vertex belongs to a different graph than
	// the one an operation assumed.
	ErrForeignVertex = errors.New("core: vertex belongs to a different graph")

	// ErrUnknownVariant indicates a variable carries a Variant this engine
	// does not know how to clone.
	ErrUnknownVariant = errors.New("core: unhandled variable variant")
)

// InvariantError reports a fatal, non-recoverable consistency violation
// (spec §7): re-entrant scratch activation, a vertex observed outside its
// owning graph during migration, or a closure-check failure. The engine
// never recovers from these; callers that choose to recover() do so at
// their own risk and should treat the graph as corrupt.
type InvariantError struct {
	// Op names the operation that detected the violation.
	Op string
	// At, if non-nil, is the vertex the violation was detected at.
	At *Vertex
	// Msg is a short, human-readable diagnostic.
	Msg string
}

func (e *InvariantError) Error() string {
	if e.At != nil {
		return fmt.Sprintf("core: invariant violation in %s at %s: %s", e.Op, e.At, e.Msg)
	}
	return fmt.Sprintf("core: invariant violation in %s: %s", e.Op, e.Msg)
}

func fatalf(op string, at *Vertex, format string, args ...any) {
	panic(&InvariantError{Op: op, At: at, Msg: fmt.Sprintf(format, args...)})
}

// Kind discriminates the three disjoint vertex variants a Graph holds.
type Kind int

const (
	// KindConstant vertices have zero source edges by construction (I3).
	KindConstant Kind = iota
	// KindOperator vertices have a fixed declared fan-in and arbitrary fan-out.
	KindOperator
	// KindVariable vertices are the only legal cut points between sub-graphs.
	KindVariable
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "const"
	case KindOperator:
		return "op"
	case KindVariable:
		return "var"
	default:
		return "unknown"
	}
}

// Variant distinguishes the two Variable sub-variants.
type Variant int

const (
	// VarPacked is a scalar/packed net.
	VarPacked Variant = iota
	// VarArray is an array-typed net.
	VarArray
)

func (vt Variant) String() string {
	if vt == VarArray {
		return "array"
	}
	return "packed"
}

// Symbol anchors a Variable to an external name, with an optional scope
// (empty Scope means unscoped / module-global).
type Symbol struct {
	Name  string
	Scope string
}

// Scratch is one machine word of per-vertex, user-assignable storage. Its
// meaning is defined entirely by whichever pass currently holds an active
// ScratchScope on the owning Graph (spec §4.1, §9 "tagged-variant payload").
// Never read or write Scratch outside an active scope.
type Scratch struct {
	value any
}

// Get returns the current payload, or nil if unset.
func (s *Scratch) Get() any { return s.value }

// Set stores a new payload, overwriting any previous one.
func (s *Scratch) Set(v any) { s.value = v }

// reset clears the payload back to its zero default. Called only by the
// owning Graph's scratch-scope machinery.
func (s *Scratch) reset() { s.value = nil }

// variableData holds the fields specific to KindVariable vertices. It is
// non-nil if and only if the owning Vertex.kind == KindVariable — this is
// the engine's "safe downcast": AsVariable() returns it, or (nil, false).
type variableData struct {
	variant  Variant
	symbol   Symbol
	hasScope bool
	modRefs  bool
	extRefs  bool
	dfgRefs  bool
}

// Vertex is a node belonging to at most one Graph at a time (I2).
//
// sourceSlots has length == Arity(): every slot is a pre-allocated *Edge
// whose Source() may be nil (unconnected). sinkEdges is the dynamic,
// insertion-ordered fan-out list: one entry per consumer edge.
type Vertex struct {
	seq   uint64 // process-wide creation order, for diagnostics only
	kind  Kind
	graph *Graph

	sourceSlots []*Edge
	sinkEdges   []*Edge

	v *variableData // non-nil iff kind == KindVariable

	// Scratch is this vertex's one-word scoped scratch slot.
	Scratch Scratch
}

var vertexSeq uint64

func nextVertexSeq() uint64 { return atomic.AddUint64(&vertexSeq, 1) }

func (v *Vertex) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.v != nil {
		if v.v.symbol.Name != "" {
			return fmt.Sprintf("%s/%s#%d", v.kind, v.v.symbol.Name, v.seq)
		}
	}
	return fmt.Sprintf("%s#%d", v.kind, v.seq)
}

// Edge is a directed relation from an optional source vertex (producer) to
// a fixed sink vertex (consumer), occupying one numbered input slot on the
// sink.
type Edge struct {
	source *Vertex
	sink   *Vertex
	slot   int
}

// Graph is a named, mutable arena parameterized by an opaque module handle.
// It holds three disjoint vertex buckets (variable, constant, operator) in
// insertion order, and a scoped scratch activation flag (I5).
type Graph struct {
	name   string
	module any

	variables []*Vertex
	constants []*Vertex
	operators []*Vertex

	scratchActive bool
}

// NewGraph constructs an empty, named Graph bound to the given opaque
// module handle. The module handle is never interpreted by this engine; it
// is carried only so sub-graphs can be built against the same module.
//
// Complexity: O(1).
func NewGraph(name string, module any) (*Graph, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Graph{name: name, module: module}, nil
}
