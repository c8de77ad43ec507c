// File: edge.go
// Role: Edge queries and mutation — Source/Sink, UnlinkSource, RelinkSource
// (spec §3 "Edge" and §6 collaborator contract).
//
// An Edge always has a fixed Sink (the vertex owning the input slot it
// occupies) and an optional Source (nil when the slot is unconnected).
package core

// Source returns the producer vertex, or nil if this slot is unconnected.
func (e *Edge) Source() *Vertex { return e.source }

// Sink returns the consumer vertex that owns this edge's input slot. Always
// non-nil.
func (e *Edge) Sink() *Vertex { return e.sink }

// Slot returns the input-slot index this edge occupies on Sink().
func (e *Edge) Slot() int { return e.slot }

// UnlinkSource detaches the current source, if any, leaving the slot
// unconnected. A no-op if already unconnected.
//
// Complexity: O(fan-out of the old source).
func (e *Edge) UnlinkSource() { e.RelinkSource(nil) }

// RelinkSource atomically swaps this edge's source to newSrc (which may be
// nil to leave the slot unconnected), updating the old and new source's
// fan-out lists accordingly.
//
// Complexity: O(fan-out of the old source) to remove the stale fan-out
// entry; O(1) amortized to append the new one.
func (e *Edge) RelinkSource(newSrc *Vertex) {
	if e.source == newSrc {
		return
	}
	if e.source != nil {
		e.source.sinkEdges = removeEdge(e.source.sinkEdges, e)
	}
	e.source = newSrc
	if newSrc != nil {
		newSrc.sinkEdges = append(newSrc.sinkEdges, e)
	}
}

// removeEdge returns slice with the first occurrence of e removed,
// preserving the relative order of the remaining elements (fan-out
// encounter order is an observable, documented property).
func removeEdge(slice []*Edge, e *Edge) []*Edge {
	for i, cur := range slice {
		if cur == e {
			return append(slice[:i:i], slice[i+1:]...)
		}
	}
	return slice
}
