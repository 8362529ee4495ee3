package btree

import "github.com/arborix/octree3d/geom"

// Tri mirrors ptree.Tri: a three-valued answer for a cached-extent
// predicate, letting extent-indexed queries skip whole subtrees.
type Tri int

const (
	Unknown Tri = iota
	True
	False
)

// PointPred, PointMap and BoxMap mirror ptree's: they act on a blob's
// anchor coordinates and not on its extent. Deform takes PointMap and
// BoxMap; no operation in this package takes a PointPred.
type PointPred func(geom.Point) bool
type PointMap func(geom.Point) geom.Point
type BoxMap func(geom.Box) geom.Box

// ExtentPred judges a single stored blob by its own extent (not the
// tree's bounding box) — the blob-tree analogue of ptree.PointPred.
type ExtentPred func(geom.Box) bool

// NodePred judges a subtree by its cached extent, answering Tri so a
// query can keep or drop the whole subtree without visiting its blobs.
type NodePred func(extent geom.Box, ok bool) Tri

// Score, Absent, Of, PointScoreFunc and BoxScoreFunc mirror ptree's
// best-first search types exactly; ByScore here scores by a blob's
// anchor coordinates the same way ptree does (extent-aware scoring is
// a caller concern, built from Extent() on the yielded result if needed).
type Score struct {
	Value float64
	Ok    bool
}

var Absent = Score{}

func Of(v float64) Score { return Score{Value: v, Ok: true} }

type PointScoreFunc func(geom.Point) Score
type BoxScoreFunc func(geom.Box) Score

// Tree is the persistent blob-octree: Empty, Singleton, or an 8-way
// Node, each additionally exposing its cached Extent — the union of the
// extents of every blob stored beneath it, or (zero value, false) when
// nothing is stored there.
type Tree[V any] interface {
	// Len returns the number of stored blobs.
	Len() int

	// Extent returns the cached union of every stored blob's extent
	// beneath this subtree, and false if the subtree is empty.
	Extent() (geom.Box, bool)

	// Get returns the payload stored at p, or dflt if absent.
	Get(bounds geom.Box, p geom.Point, dflt V) V

	// Insert adds (p, extent, data); fails with ErrDuplicateKey if p is
	// already present.
	Insert(bounds geom.Box, p geom.Point, extent geom.Box, data V) (Tree[V], error)

	// Update adds or overwrites (p, extent, data); keeps the existing
	// entry when replace is false and p is already present.
	Update(bounds geom.Box, p geom.Point, extent geom.Box, data V, replace bool) Tree[V]

	// Remove deletes the entry at p; fails with ErrMissingKey if absent.
	Remove(bounds geom.Box, p geom.Point) (Tree[V], error)

	// Union merges with other (same bounds on both sides); see ptree.Union
	// for the swapped/collision contract.
	Union(other Tree[V], bounds geom.Box, swapped bool) Tree[V]

	// Rebound produces a tree valid for newBounds, dropping blobs whose
	// anchor point falls outside it.
	Rebound(oldBounds, newBounds geom.Box) Tree[V]

	// Deform transforms every anchor point with pointFn and rebounds the
	// result to newBounds; boxFn must bound the image of a box under
	// pointFn. Stored extents are left untouched (they describe object
	// shape, not position, in this transform).
	Deform(oldBounds, newBounds geom.Box, pointFn PointMap, boxFn BoxMap) Tree[V]

	// Enqueue pushes this subtree's contribution onto a best-first
	// search heap, scored by anchor coordinates exactly as in ptree.
	Enqueue(h *Heap[V], bounds geom.Box, pointScore PointScoreFunc, boxScore BoxScoreFunc)

	// Each calls fn for every stored (coords, extent, payload) triple,
	// in canonical octant order.
	Each(fn func(geom.Point, geom.Box, V))

	// Equal reports structural equality: same variant, same contents,
	// same cached extents.
	Equal(other Tree[V]) bool

	// SubsetByExtent keeps exactly the blobs whose own extent satisfies
	// extentFn, pruning whole subtrees whose cached extent lets nodeFn
	// decide outright.
	SubsetByExtent(bounds geom.Box, extentFn ExtentPred, nodeFn NodePred) Tree[V]

	// Reroot collapses a chain of Nodes that have exactly one non-Empty
	// child down to that child, recursively. A tree produced by
	// SubsetByExtent (or any other filter) tends to accumulate such
	// chains; Reroot removes the bookkeeping before further recursion
	// has to pay for it.
	Reroot() Tree[V]
}
