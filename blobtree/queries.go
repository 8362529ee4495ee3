package blobtree

import (
	"iter"

	"github.com/arborix/octree3d/btree"
	"github.com/arborix/octree3d/geom"
)

// IntersectionWithBox returns the sub-tree of regions whose extent is
// not disjoint from query, sharing o's bounds.
func (o *BlobOctree[V]) IntersectionWithBox(query geom.Box) *BlobOctree[V] {
	return &BlobOctree[V]{bounds: o.bounds, tree: btree.IntersectionWithBox(o.tree, o.bounds, query)}
}

// IntersectWithBox iterates every region whose extent is not disjoint
// from query.
func (o *BlobOctree[V]) IntersectWithBox(query geom.Box) iter.Seq[Region[V]] {
	return wrapBlobs(btree.IntersectWithBox(o.tree, o.bounds, query))
}

// IntersectWithLine iterates every region whose extent the infinite
// line through origin in direction dir passes through.
func (o *BlobOctree[V]) IntersectWithLine(origin, dir geom.Vector) iter.Seq[Region[V]] {
	return wrapBlobs(btree.IntersectWithLine(o.tree, o.bounds, origin, dir))
}

// IntersectWithLineSegment iterates every region whose extent the
// closed segment [p, q] passes through.
func (o *BlobOctree[V]) IntersectWithLineSegment(p, q geom.Point) iter.Seq[Region[V]] {
	return wrapBlobs(btree.IntersectWithLineSegment(o.tree, o.bounds, p, q))
}

// IntersectWithPlane iterates every region whose extent the implicit
// surface f == 0 crosses.
func (o *BlobOctree[V]) IntersectWithPlane(f geom.PlaneFunc) iter.Seq[Region[V]] {
	return wrapBlobs(btree.IntersectWithPlane(o.tree, o.bounds, f))
}

func wrapBlobs[V any](seq iter.Seq[btree.BlobResult[V]]) iter.Seq[Region[V]] {
	return func(yield func(Region[V]) bool) {
		for r := range seq {
			if !yield(Region[V]{Coords: r.Coords, Extent: r.Extent, Payload: r.Payload}) {
				return
			}
		}
	}
}

// Overlap is one pair of regions, one from each of two BlobOctrees,
// whose extents are not disjoint.
type Overlap[V any] struct {
	Region      Region[V]
	OtherRegion Region[V]
}

// PossibleOverlaps iterates every pair of regions, one from o and one
// from other, whose extents are not disjoint. o and other need not
// share Bounds(): the join works entirely from cached extents, never
// from either tree's bounding box.
func (o *BlobOctree[V]) PossibleOverlaps(other *BlobOctree[V]) iter.Seq[Overlap[V]] {
	return func(yield func(Overlap[V]) bool) {
		for p := range btree.PossibleOverlaps(o.tree, other.tree, o.bounds) {
			region := Region[V]{Coords: p.Coords, Extent: p.Extent, Payload: p.Payload}
			otherRegion := Region[V]{Coords: p.OtherCoords, Extent: p.OtherExtent, Payload: p.OtherPayload}
			if !yield(Overlap[V]{Region: region, OtherRegion: otherRegion}) {
				return
			}
		}
	}
}

// Overlapping is one region of self, together with every region of
// other whose extent overlaps it.
type Overlapping[V any] struct {
	Region   Region[V]
	Overlaps []Region[V]
}

// ByPossibleOverlap groups PossibleOverlaps by the region of self: one
// entry per region of o that overlaps anything in other, each carrying
// the full list of overlapping regions from other. A region of o with
// no overlaps in other is omitted. o and other need not share Bounds();
// see PossibleOverlaps.
func (o *BlobOctree[V]) ByPossibleOverlap(other *BlobOctree[V]) iter.Seq[Overlapping[V]] {
	pairs := o.PossibleOverlaps(other)
	return func(yield func(Overlapping[V]) bool) {
		var current *Overlapping[V]
		flush := func() bool {
			if current == nil {
				return true
			}
			ok := yield(*current)
			current = nil
			return ok
		}
		for p := range pairs {
			if current == nil || current.Region.Coords != p.Region.Coords {
				if !flush() {
					return
				}
				current = &Overlapping[V]{Region: p.Region}
			}
			current.Overlaps = append(current.Overlaps, p.OtherRegion)
		}
		flush()
	}
}
