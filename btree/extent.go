package btree

import (
	"iter"

	"github.com/arborix/octree3d/geom"
)

// BlobResult is one stored blob yielded by an extent-indexed query.
type BlobResult[V any] struct {
	Coords  geom.Point
	Extent  geom.Box
	Payload V
}

// boxNodePred builds the NodePred for "does this subtree possibly hold a
// blob whose extent meets query": False once the cached extent and query
// are disjoint, True once query fully contains the cached extent (every
// blob beneath is then guaranteed to meet it), Unknown otherwise.
func boxNodePred(query geom.Box) NodePred {
	return func(extent geom.Box, ok bool) Tri {
		if !ok {
			return False
		}
		if geom.BoxesDisjoint(extent, query) {
			return False
		}
		if geom.BoxContains(query, extent) {
			return True
		}
		return Unknown
	}
}

// IntersectionWithBox returns the subtree of root holding exactly the
// blobs whose extent is not disjoint from query.
func IntersectionWithBox[V any](root Tree[V], bounds, query geom.Box) Tree[V] {
	extentFn := func(e geom.Box) bool { return !geom.BoxesDisjoint(e, query) }
	return root.SubsetByExtent(bounds, extentFn, boxNodePred(query)).Reroot()
}

// IntersectWithBox iterates every blob in root whose extent is not
// disjoint from query, in canonical octant order.
func IntersectWithBox[V any](root Tree[V], bounds, query geom.Box) iter.Seq[BlobResult[V]] {
	return eachOf(IntersectionWithBox(root, bounds, query))
}

// IntersectWithLine iterates every blob whose extent the infinite line
// through origin in direction dir passes through.
func IntersectWithLine[V any](root Tree[V], bounds geom.Box, origin, dir geom.Vector) iter.Seq[BlobResult[V]] {
	hits := func(e geom.Box) bool { return geom.LineIntersectsBox(origin, dir, e) }
	nodeFn := func(extent geom.Box, ok bool) Tri {
		if !ok || !geom.LineIntersectsBox(origin, dir, extent) {
			return False
		}
		return Unknown
	}
	return eachOf(root.SubsetByExtent(bounds, hits, nodeFn).Reroot())
}

// IntersectWithLineSegment iterates every blob whose extent the closed
// segment [p, q] passes through.
func IntersectWithLineSegment[V any](root Tree[V], bounds geom.Box, p, q geom.Point) iter.Seq[BlobResult[V]] {
	hits := func(e geom.Box) bool { return geom.LineSegmentIntersectsBox(p, q, e) }
	nodeFn := func(extent geom.Box, ok bool) Tri {
		if !ok || !geom.LineSegmentIntersectsBox(p, q, extent) {
			return False
		}
		return Unknown
	}
	return eachOf(root.SubsetByExtent(bounds, hits, nodeFn).Reroot())
}

// IntersectWithPlane iterates every blob whose extent the implicit
// surface f == 0 crosses.
func IntersectWithPlane[V any](root Tree[V], bounds geom.Box, f geom.PlaneFunc) iter.Seq[BlobResult[V]] {
	hits := func(e geom.Box) bool { return geom.BoxIntersectsPlane(e, f) }
	nodeFn := func(extent geom.Box, ok bool) Tri {
		if !ok || !geom.BoxIntersectsPlane(extent, f) {
			return False
		}
		return Unknown
	}
	return eachOf(root.SubsetByExtent(bounds, hits, nodeFn).Reroot())
}

// eachOf adapts Tree.Each (a total, non-interruptible traversal) into an
// iter.Seq; a consumer that stops early still lets the underlying Each
// run to completion, which is acceptable here because Each never
// allocates beyond the yielded values themselves.
func eachOf[V any](t Tree[V]) iter.Seq[BlobResult[V]] {
	return func(yield func(BlobResult[V]) bool) {
		stopped := false
		t.Each(func(p geom.Point, e geom.Box, v V) {
			if stopped {
				return
			}
			if !yield(BlobResult[V]{Coords: p, Extent: e, Payload: v}) {
				stopped = true
			}
		})
	}
}
