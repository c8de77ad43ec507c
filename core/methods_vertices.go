// File: methods_vertices.go
// Role: Vertex lifecycle on Graph — AddVertex/RemoveVertex, the
// iterate-and-possibly-unlink walk, and UnlinkAndDelete (spec §4.1).
//
// Determinism:
//   - Buckets preserve insertion order; removal splices in place rather
//     than swap-with-last, so the relative order of untouched vertices
//     never changes.
package core

// AddVertex moves a currently-detached vertex v into g's bucket for its
// Kind. Panics (I2) if v already belongs to a graph.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v *Vertex) { attach(g, v, v.kind) }

// RemoveVertex detaches v from g without destroying it: v.Graph() becomes
// nil and v retains its edges. Returns ErrVertexNotFound if v does not
// currently belong to g.
//
// Complexity: O(n) in the size of v's bucket.
func (g *Graph) RemoveVertex(v *Vertex) error {
	if v.graph != g {
		return ErrVertexNotFound
	}
	bucket := g.bucketOf(v.kind)
	*bucket = spliceOut(*bucket, v)
	v.graph = nil
	return nil
}

// spliceOut returns bucket with the first occurrence of v removed,
// preserving the relative order of the remaining elements.
func spliceOut(bucket []*Vertex, v *Vertex) []*Vertex {
	for i, cur := range bucket {
		if cur == v {
			return append(bucket[:i:i], bucket[i+1:]...)
		}
	}
	return bucket
}

// UnlinkAndDelete detaches v from every edge it participates in (as both
// source and sink) and removes it from g. After this call v must not be
// referenced again.
//
// Complexity: O(fan-in + fan-out) to unlink edges, plus the O(n) bucket
// splice of RemoveVertex.
func (g *Graph) UnlinkAndDelete(v *Vertex) {
	for _, e := range v.sourceSlots {
		e.UnlinkSource()
	}
	// Sink edges reference v as their Source; unlink each so the consumer's
	// slot becomes cleanly disconnected rather than dangling.
	v.ForEachSinkEdge(func(e *Edge) { e.UnlinkSource() })
	if v.graph == g {
		_ = g.RemoveVertex(v)
	}
}

// IterateUnlinkable walks a snapshot of g's bucket for kind, yielding each
// vertex to fn. fn may call RemoveVertex/UnlinkAndDelete on the current
// vertex (or any other) without corrupting the walk: the snapshot is taken
// up front, so later mutation of the live bucket never affects which
// vertices are visited or in what order (spec §4.1 "iterate_unlinkable").
//
// Complexity: O(n) plus whatever fn does.
func (g *Graph) IterateUnlinkable(kind Kind, fn func(v *Vertex)) {
	bucket := *g.bucketOf(kind)
	snapshot := make([]*Vertex, len(bucket))
	copy(snapshot, bucket)
	for _, v := range snapshot {
		fn(v)
	}
}
