// Package scc implements strongly-connected-component coloring and
// variable-boundary coarsening over a core.Graph (spec §4.3 C3 "SCC
// colorer", §4.4 C4 "SCC merger").
//
// Color runs Pearce's improved SCC algorithm (Pearce, 2005), "An Improved
// Algorithm for Finding the Strongly Connected Components of a Directed
// Graph", with three shortcuts the upstream lowering makes safe:
//
//   - Constants have no in-edges by construction, so they can never join a
//     non-trivial SCC; they are marked acyclic without traversal.
//   - A variable with no driver slot, or with no consumers, cannot close a
//     cycle through itself; it is marked acyclic without traversal.
//   - Every cycle passes through a variable (an invariant of the upstream
//     lowering), so any operator never reached while traversing from a
//     variable is guaranteed acyclic.
//
// Per-vertex state (index, component, merged) rides in the vertex's
// scratch slot as a *state, allocated individually on first touch —
// spec §9's "tagged-variant payload" made concrete.
//
// Merge then coarsens SCC boundaries: for every operator left in a
// non-trivial SCC, it DFS-walks both sources and sinks, halting at
// variables, so that after Merge every non-variable edge has matching
// component ids on both ends — the precondition extract.Extract needs to
// cut cleanly at variables only.
package scc
