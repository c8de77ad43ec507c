// Package dfgdecomp decomposes a data-flow graph into independently
// processable pieces.
//
// 🚀 What is dfgdecomp?
//
//	A pure-Go library for splitting an intermediate-representation graph
//	of variables, constants, and operators into:
//
//	  • Weakly-connected components — independent islands of logic
//	  • Cyclic sub-graphs — strongly-connected regions extracted so the
//	    rest of the graph stays acyclic
//
// ✨ Why decompose?
//
//   - Parallel downstream passes — disjoint components can be processed
//     concurrently by callers, with no shared mutable state between them
//   - Cycle isolation — code that assumes acyclic input (topological
//     sort, scheduling) can run unmodified once cycles are carved out
//   - Deterministic output — identical input always yields
//     identically-shaped components, independent of map iteration order
//
// Under the hood, everything is organized under five subpackages:
//
//	core/       — the Graph/Vertex/Edge arena and its invariants
//	component/  — weakly-connected-component splitting
//	scc/        — strongly-connected-component coloring and merging
//	extract/    — cyclic sub-graph extraction and variable cloning
//	decompose/  — the two public entry points: Split and ExtractCyclic
//
// Quick ASCII example, one variable feeding two independent operators:
//
//	a ──▶ op1
//	  └─▶ op2
//
// Split(g, "") returns one sub-graph holding a, op1 and op2: a links both
// operators, so all three are weakly connected.
//
//	go get github.com/katalvlaran/dfgdecomp
package dfgdecomp
