package octree

import (
	"fmt"

	"github.com/arborix/octree3d/geom"
	"github.com/arborix/octree3d/ptree"
)

func (o *Octree[V]) checkBounds(p geom.Point) error {
	if !geom.PointInBox(p, o.bounds) {
		return fmt.Errorf("%w: (%g,%g,%g)", ErrOutOfBounds, p.X, p.Y, p.Z)
	}
	return nil
}

// Get returns the payload stored at p, or dflt if p is absent or out of
// bounds.
func (o *Octree[V]) Get(p geom.Point, dflt V) V {
	if !geom.PointInBox(p, o.bounds) {
		return dflt
	}
	return o.tree.Get(o.bounds, p, dflt)
}

// Insert adds a point at p with payload data. Fails with
// ErrOutOfBounds if p lies outside Bounds(), or ptree.ErrDuplicateKey if
// p is already occupied.
func (o *Octree[V]) Insert(p geom.Point, data V) error {
	if err := o.checkBounds(p); err != nil {
		return err
	}
	next, err := o.tree.Insert(o.bounds, p, data)
	if err != nil {
		return err
	}
	o.tree = next
	return nil
}

// Update adds or overwrites the point at p with payload data. Fails
// with ErrOutOfBounds if p lies outside Bounds().
func (o *Octree[V]) Update(p geom.Point, data V) error {
	if err := o.checkBounds(p); err != nil {
		return err
	}
	o.tree = o.tree.Update(o.bounds, p, data, true)
	return nil
}

// Remove deletes the point at p. Fails with ErrOutOfBounds if p lies
// outside Bounds(), or ptree.ErrMissingKey if no point is stored there.
func (o *Octree[V]) Remove(p geom.Point) error {
	if err := o.checkBounds(p); err != nil {
		return err
	}
	next, err := o.tree.Remove(o.bounds, p)
	if err != nil {
		return err
	}
	o.tree = next
	return nil
}

// Extend inserts every (point, payload) pair from items, stopping and
// returning the first error encountered (leaving earlier insertions in
// place).
func (o *Octree[V]) Extend(items []ptree.PointData[V]) error {
	for _, it := range items {
		if err := o.Insert(it.Coords, it.Data); err != nil {
			return err
		}
	}
	return nil
}

// All calls fn for every stored (point, payload) pair, in canonical
// octant order.
func (o *Octree[V]) All(fn func(geom.Point, V)) {
	o.tree.Each(fn)
}

// SimpleUnion returns the union of o and other, which must share the
// same Bounds(). On a coincident point the surviving payload is
// unspecified.
func (o *Octree[V]) SimpleUnion(other *Octree[V]) (*Octree[V], error) {
	if o.bounds != other.bounds {
		return nil, ErrBoundsMismatch
	}
	return &Octree[V]{bounds: o.bounds, tree: o.tree.Union(other.tree, o.bounds, false)}, nil
}

// Rebound returns an Octree valid for newBounds, dropping points that
// fall outside it.
func (o *Octree[V]) Rebound(newBounds geom.Box) *Octree[V] {
	return &Octree[V]{bounds: newBounds, tree: o.tree.Rebound(o.bounds, newBounds)}
}

// GeneralUnion returns the union of o and other, regardless of whether
// their bounds agree: both are rebounded to the union of their two
// boxes first, then merged.
func (o *Octree[V]) GeneralUnion(other *Octree[V]) (*Octree[V], error) {
	ub := geom.UnionBox(o.bounds, other.bounds)
	x := o
	if ub != o.bounds {
		x = o.Rebound(ub)
	}
	y := other
	if ub != other.bounds {
		y = other.Rebound(ub)
	}
	return x.SimpleUnion(y)
}

// ApplyMatrix returns an Octree with every point transformed by m as a
// linear map, and bounds replaced by the bounding box of the image of
// Bounds() under that map.
func (o *Octree[V]) ApplyMatrix(m geom.Matrix) *Octree[V] {
	f := func(p geom.Point) geom.Point { return geom.MatrixAction(m, p) }
	newBounds := geom.ConvexBoxDeform(f, o.bounds)
	boxFn := func(b geom.Box) geom.Box { return geom.ConvexBoxDeform(f, b) }
	return &Octree[V]{bounds: newBounds, tree: o.tree.Deform(o.bounds, newBounds, f, boxFn)}
}

// Subset keeps exactly the points for which pointFn holds, pruning
// whole subtrees whose bounds boxFn can decide outright.
func (o *Octree[V]) Subset(pointFn ptree.PointPred, boxFn ptree.BoxPred) *Octree[V] {
	return &Octree[V]{bounds: o.bounds, tree: o.tree.Subset(o.bounds, pointFn, boxFn)}
}
