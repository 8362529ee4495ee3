// Package blobtree is the blob-octree facade: a BlobOctree[V] pairs a
// fixed bounding Box with a btree.Tree[V], the same way octree.Octree
// wraps ptree.Tree — bounds-checking the reference point of every
// inserted region (reported as this package's ErrOutOfBounds) and
// returning btree's errors unchanged. The region's extent itself is not required to lie
// within Bounds(); only its reference point is.
//
// What:
//
//   - BlobOctree[V]: Insert/Update/Len/All/Equal/Bounds/Copy/Extend,
//     each region keyed by a reference point, stored with its extent
//     box and payload.
//   - IntersectionWithBox / IntersectWithBox / IntersectWithLine /
//     IntersectWithLineSegment / IntersectWithPlane: the extent-indexed
//     queries, delegating directly to btree's free functions.
//   - PossibleOverlaps: pairs of regions (one from each of two
//     BlobOctrees) whose extents are not disjoint. The two BlobOctrees
//     need not share Bounds(): the join works from cached extents alone.
//   - ByPossibleOverlap: each region of self that overlaps at least one
//     region of other, grouped with the list of regions from other whose
//     extents overlap it; a region of self that overlaps nothing in
//     other is not yielded. This is the shape needed to
//     compute a geometric difference region-by-region, rather than
//     pair-by-pair.
//
// Why: a caller writing, say, collision detection wants "for each of my
// objects, what from the other set might it touch", not a flat stream
// of pairs it has to regroup itself; ByPossibleOverlap does that
// regrouping once, in the facade, instead of leaving every caller to
// reimplement it over PossibleOverlaps.
//
// Errors:
//
//   - ErrOutOfBounds — same meaning as octree's.
//   - btree.ErrDuplicateKey propagates unwrapped from Insert and Extend.
package blobtree
