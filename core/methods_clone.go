// File: methods_clone.go
// Role: Variable cloning — the only cloning operation this engine performs
// (spec §4.5 step 2, §9 "Clone").
//
// Determinism:
//   - CloneVariable never consults pointer identity for anything but
//     lookup; callers (extract package) are responsible for keying their
//     clone map by (original, foreignComponent) and reusing the result.
package core

// CloneVariable creates a new variable vertex of the same Variant, bound to
// the same Symbol (and scope), attached to into. The clone copies orig's
// ModRefs/ExtRefs flags; DfgRefs is left false — callers that need the
// "referenced across sub-graphs" marker (spec §4.5 step 2) set it
// explicitly on both orig and the clone.
//
// Complexity: O(1).
func (into *Graph) CloneVariable(orig *Vertex) *Vertex {
	vd := orig.mustVar("CloneVariable")
	if vd.variant != VarPacked && vd.variant != VarArray {
		fatalf("CloneVariable", orig, "%v", ErrUnknownVariant)
	}
	clone := NewVariable(into, vd.variant, vd.symbol, vd.hasScope, orig.Arity())
	clone.v.modRefs = vd.modRefs
	clone.v.extRefs = vd.extRefs
	return clone
}
