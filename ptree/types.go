package ptree

import "github.com/arborix/octree3d/geom"

// Tri is a three-valued answer used by the Subset box predicate:
// an entire subtree can be kept wholesale (True), dropped wholesale
// (False), or must be examined octant-by-octant (Unknown).
type Tri int

const (
	// Unknown means "recurse into children and decide per-point/per-child".
	Unknown Tri = iota
	// True means "keep the whole subtree without looking inside it".
	True
	// False means "drop the whole subtree without looking inside it".
	False
)

// PointPred reports whether a stored point should be kept.
type PointPred func(geom.Point) bool

// BoxPred answers Tri for a bounding box, letting Subset skip entire
// subtrees instead of visiting every point.
type BoxPred func(geom.Box) Tri

// PointMap transforms a point's coordinates (used by Deform).
type PointMap func(geom.Point) geom.Point

// BoxMap transforms a bounding box, bounding the image of PointMap
// applied to every point within it (used by Deform).
type BoxMap func(geom.Box) geom.Box

// Score is a node or point's priority in a best-first search: lower
// scores are visited first. Ok is false to mean "absent" (prune this
// point/subtree entirely), matching spec's "None is infinite" sentinel.
type Score struct {
	Value float64
	Ok    bool
}

// Absent is the score meaning "prune".
var Absent = Score{}

// Of wraps a finite value as a present score.
func Of(v float64) Score { return Score{Value: v, Ok: true} }

// PointScoreFunc assigns a priority to a single point's coordinates.
type PointScoreFunc func(geom.Point) Score

// BoxScoreFunc assigns a lower bound on PointScoreFunc over every point
// currently contained in the box; this lower-bound obligation is the
// precondition that makes ByScore's traversal order correct (see heap.go).
type BoxScoreFunc func(geom.Box) Score

// Tree is the persistent point-octree: Empty, Singleton, or an 8-way
// Node. No value stores its own bounding box; every operation takes the
// bounds of the caller's current position in the tree as an explicit
// argument.
type Tree[V any] interface {
	// Len returns the number of stored points.
	Len() int

	// Get returns the payload stored at p, or dflt if absent.
	Get(bounds geom.Box, p geom.Point, dflt V) V

	// Insert adds (p, data); fails with ErrDuplicateKey if p is already present.
	Insert(bounds geom.Box, p geom.Point, data V) (Tree[V], error)

	// Update adds or overwrites (p, data). If replace is false and p is
	// already present, the existing entry is kept.
	Update(bounds geom.Box, p geom.Point, data V, replace bool) Tree[V]

	// Remove deletes the entry at p; fails with ErrMissingKey if absent.
	Remove(bounds geom.Box, p geom.Point) (Tree[V], error)

	// Subset keeps exactly the points for which pointFn holds, pruning
	// whole subtrees whose bounds boxFn can decide outright.
	Subset(bounds geom.Box, pointFn PointPred, boxFn BoxPred) Tree[V]

	// Union merges with other (same bounds on both sides). On a
	// coordinate collision the retained payload is unspecified; swapped
	// tracks which operand "wins" collisions across the asymmetric
	// dispatch so the result is the same regardless of call order.
	Union(other Tree[V], bounds geom.Box, swapped bool) Tree[V]

	// Rebound produces a tree valid for newBounds, dropping points that
	// fall outside it.
	Rebound(oldBounds, newBounds geom.Box) Tree[V]

	// Deform transforms every point with pointFn and rebounds the result
	// to newBounds; boxFn must bound the image of a box under pointFn.
	Deform(oldBounds, newBounds geom.Box, pointFn PointMap, boxFn BoxMap) Tree[V]

	// Enqueue pushes this subtree's contribution onto a best-first
	// search heap: a scored point for a Singleton, or a scored box
	// (the whole Node, to be expanded later) for a Node. Nothing is
	// pushed for Empty, or when the relevant score is Absent.
	Enqueue(h *Heap[V], bounds geom.Box, pointScore PointScoreFunc, boxScore BoxScoreFunc)

	// Each calls fn for every stored (coords, payload) pair. Traversal
	// order is octant order, recursively — deterministic, used to give
	// iteration and equality a canonical shape.
	Each(fn func(geom.Point, V))

	// Equal reports structural equality: same variant, same contents.
	Equal(other Tree[V]) bool
}
