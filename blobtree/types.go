package blobtree

import (
	"github.com/arborix/octree3d/btree"
	"github.com/arborix/octree3d/geom"
)

// BlobOctree pairs a fixed bounding Box with a persistent blob-tree. The
// zero value is not usable; construct with New.
type BlobOctree[V any] struct {
	bounds geom.Box
	tree   btree.Tree[V]
}

// New returns an empty BlobOctree over bounds.
func New[V any](bounds geom.Box) *BlobOctree[V] {
	return &BlobOctree[V]{bounds: bounds, tree: btree.Empty[V]()}
}

// Bounds returns the BlobOctree's bounding box.
func (o *BlobOctree[V]) Bounds() geom.Box { return o.bounds }

// Len returns the number of stored regions.
func (o *BlobOctree[V]) Len() int { return o.tree.Len() }

// Copy returns a BlobOctree sharing the same persistent tree, in
// constant time — mutating the copy never affects o.
func (o *BlobOctree[V]) Copy() *BlobOctree[V] {
	return &BlobOctree[V]{bounds: o.bounds, tree: o.tree}
}

// Equal reports whether o and other have the same bounds and
// structurally equal trees.
func (o *BlobOctree[V]) Equal(other *BlobOctree[V]) bool {
	return o.bounds == other.bounds && o.tree.Equal(other.tree)
}
