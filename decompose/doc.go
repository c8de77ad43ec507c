// Package decompose is the driver façade tying component splitting and
// cyclic-component extraction into the two public entry points described
// by spec §4.6 (C6): Split and ExtractCyclic.
//
// Split delegates to package component. ExtractCyclic runs scc.Color
// first; if it finds no non-trivial SCCs it returns immediately with g
// untouched (the common case — most designs are acyclic), otherwise it
// runs scc.Merge then extract.Extract to pull each SCC into its own
// sub-graph.
//
// Neither operation logs, reads configuration, or performs I/O: the
// engine is a pure, synchronous, single-threaded library call, same as
// every operation the upstream graph and algorithm packages expose.
package decompose
