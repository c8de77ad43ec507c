// Package core defines the data-flow-graph substrate: Graph, Vertex, and
// Edge, plus the scoped per-vertex scratch slot that later passes use to
// carry transient coloring state.
//
// A Graph G = (V, E) is an arena of vertices partitioned into three
// disjoint, intrusive buckets by Kind:
//
//   - Variable — the only legal cut point between sub-graphs. Carries a
//     bound Symbol (name + optional scope), a Variant (Packed/Array), and
//     visibility flags (ModRefs/ExtRefs/DfgRefs). Arity is 0 or 1: the
//     single optional slot is its driver.
//   - Constant — zero source edges by construction (I3).
//   - Operator — fixed declared fan-in (arity), arbitrary fan-out.
//
// Every Vertex belongs to at most one Graph at a time (I2); every Edge
// endpoint is a vertex currently in that same Graph (I1).
//
// Why use core.Graph?
//
//   - Single arena, three typed buckets — no separate graph type per kind.
//   - Deterministic iteration — buckets preserve insertion order, which the
//     decomposition passes rely on for reproducible component numbering.
//   - O(1) amortized AddVertex; RemoveVertex is O(n) in the bucket's size,
//     splicing the vertex out in place rather than swapping with the last
//     entry, so the remaining vertices keep their order.
//   - Scoped scratch — ScratchScope() hands every vertex one word of
//     user-assignable storage for the duration of a pass; nested activation
//     on the same graph is a programmer error (I5).
//
// Vertex/Edge contracts:
//
//	ForEachSource(fn)                // non-nil source vertices, in slot order
//	ForEachSink(fn)                  // sink vertices, in fan-out order
//	ForEachSourceEdge(fn(edge,slot)) // every source slot, including unconnected
//	ForEachSinkEdge(fn(edge))        // every fan-out edge
//	Arity() int                      // number of source slots
//	HasSinks() bool
//	FindSink(pred) *Vertex
//
//	Edge.Source() *Vertex            // nil if unconnected
//	Edge.Sink() *Vertex              // always non-nil
//	Edge.UnlinkSource()
//	Edge.RelinkSource(newSrc *Vertex)
//
// Errors:
//
//	ErrEmptyName      - graph constructed with an empty name.
//	ErrVertexNotFound - requested vertex not present in this graph.
//	ErrForeignVertex  - vertex belongs to a different graph.
//	ErrUnknownVariant - variable of an unrecognized Variant during cloning.
//
// Invariant violations (scratch re-activation, migrating a vertex not owned
// by the graph, closure-check failures) are not sentinel errors: per spec
// they are fatal and never recovered. They panic with *InvariantError.
package core
