// Package extract implements cyclic-component extraction, the step that
// turns scc.Color/scc.Merge's coloring into standalone sub-graphs (spec
// §4.5, C5 "Component extractor").
//
// Extract assumes g has already been colored and merged (see package scc)
// so that every cross-component edge is incident to a variable: that is
// the only place Extract is allowed to cut. Crossing a boundary means
// cloning the variable — one clone per foreign component that reads or
// drives it — and rewiring edges so the producer and each consumer side
// of the cut talk to the correct clone instead of the original.
//
// Clones are keyed by (original variable, destination component) so a
// variable read from the same foreign component twice gets only one
// clone. Edge rewiring only ever walks the variables that existed when
// Extract started; clones appended mid-pass are never themselves
// rewired, since a clone belongs to exactly one component by
// construction and has no cross-component edges of its own.
package extract
