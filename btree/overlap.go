package btree

import (
	"iter"

	"github.com/arborix/octree3d/geom"
)

// OverlapPair is one pair of blobs, one from each of two trees, whose
// extents are not disjoint.
type OverlapPair[V any] struct {
	Coords       geom.Point
	Extent       geom.Box
	Payload      V
	OtherCoords  geom.Point
	OtherExtent  geom.Box
	OtherPayload V
}

// PossibleOverlaps finds every pair of blobs (one from self, one from
// other) whose extents are not disjoint. bounds addresses self (and is
// reused, inertly, to address other: SubsetByExtent's bounds argument
// only threads octant sub-boxes through recursion bookkeeping, never
// compares against them, so self and other need not share the same
// actual bounding box).
//
// At every Node visited in self, other is first narrowed to
// intersectionWithBox(self's cached extent) and rerooted, so each of
// self's children is compared only against the blobs of other that
// could possibly meet it — regardless of which octant slot those blobs
// occupy in other's own structure, since a blob's extent can straddle
// into a neighbouring octant from the one its reference point narrows
// to. A Node whose cached extent cannot possibly meet other's is
// pruned whole, without visiting a single blob beneath it.
func PossibleOverlaps[V any](self, other Tree[V], bounds geom.Box) iter.Seq[OverlapPair[V]] {
	return func(yield func(OverlapPair[V]) bool) {
		joinOverlap(self, other, bounds, yield)
	}
}

func joinOverlap[V any](self, other Tree[V], bounds geom.Box, yield func(OverlapPair[V]) bool) bool {
	sExt, sOk := self.Extent()
	if !sOk {
		return true
	}
	if _, ok := other.Extent(); !ok {
		return true
	}

	sn, sIsNode := self.(*node[V])
	if !sIsNode {
		return leafOverlaps(self, other, bounds, yield)
	}

	pruned := IntersectionWithBox(other, bounds, sExt)
	if _, ok := pruned.Extent(); !ok {
		return true
	}
	for _, c := range sn.content {
		if !joinOverlap(c, pruned, bounds, yield) {
			return false
		}
	}
	return true
}

// leafOverlaps handles self once it has narrowed to a single blob (a
// Singleton): every blob of other whose extent meets self's is paired
// with it, via the same extent-indexed lookup a Node uses to narrow
// other, rather than a blind scan of other's contents.
func leafOverlaps[V any](self, other Tree[V], bounds geom.Box, yield func(OverlapPair[V]) bool) bool {
	ok := true
	self.Each(func(p1 geom.Point, e1 geom.Box, d1 V) {
		if !ok {
			return
		}
		for r := range IntersectWithBox(other, bounds, e1) {
			if !yield(OverlapPair[V]{
				Coords: p1, Extent: e1, Payload: d1,
				OtherCoords: r.Coords, OtherExtent: r.Extent, OtherPayload: r.Payload,
			}) {
				ok = false
				return
			}
		}
	})
	return ok
}
