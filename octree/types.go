package octree

import (
	"github.com/arborix/octree3d/geom"
	"github.com/arborix/octree3d/ptree"
)

// Octree pairs a fixed bounding Box with a persistent point-tree. The
// zero value is not usable; construct with New.
type Octree[V any] struct {
	bounds geom.Box
	tree   ptree.Tree[V]
}

// New returns an empty Octree over bounds.
func New[V any](bounds geom.Box) *Octree[V] {
	return &Octree[V]{bounds: bounds, tree: ptree.Empty[V]()}
}

// Bounds returns the Octree's bounding box.
func (o *Octree[V]) Bounds() geom.Box { return o.bounds }

// Len returns the number of stored points.
func (o *Octree[V]) Len() int { return o.tree.Len() }

// Copy returns an Octree sharing the same persistent tree; mutating the
// copy never affects o (every tree operation returns a new tree value
// rather than mutating in place).
func (o *Octree[V]) Copy() *Octree[V] {
	return &Octree[V]{bounds: o.bounds, tree: o.tree}
}

// Equal reports whether o and other have the same bounds and
// structurally equal trees.
func (o *Octree[V]) Equal(other *Octree[V]) bool {
	return o.bounds == other.bounds && o.tree.Equal(other.tree)
}
