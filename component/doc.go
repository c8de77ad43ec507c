// Package component implements weakly-connected-component splitting over a
// core.Graph (spec §4.2, C2 "Component colorer").
//
// Split colors every vertex reachable from a variable root with a shared
// component id via iterative depth-first search over both source and sink
// edges, then bulk-migrates colored vertices to freshly-allocated
// sub-graphs. Vertices unreachable from any variable — dead logic, since
// only variables carry externally-observable effect — are deleted.
//
// Steps:
//  1. Activate scratch; interpret each vertex's slot as a component id
//     (0 = unassigned, counter starts at 1).
//  2. For each variable in declared order, if uncolored, push it and run
//     an iterative DFS that enqueues every source and sink of each popped,
//     still-uncolored vertex. Increment the counter when the worklist
//     drains.
//  3. Allocate counter-1 sub-graphs, named per spec §6.
//  4. Walk each of the three buckets unlinkably: move colored vertices to
//     their sub-graph; delete uncolored ones.
//  5. Assert the input graph is empty.
//
// Time complexity: O(V + E) to color; the bulk migration is O(V²) in the
// worst case, since each removal from a bucket is an O(n) ordered splice.
// Memory: O(V) for the worklist and component
// tags (carried in each vertex's existing scratch slot).
package component
