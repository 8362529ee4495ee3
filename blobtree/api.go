package blobtree

import (
	"fmt"

	"github.com/arborix/octree3d/geom"
)

func (o *BlobOctree[V]) checkBounds(p geom.Point) error {
	if !geom.PointInBox(p, o.bounds) {
		return fmt.Errorf("%w: (%g,%g,%g)", ErrOutOfBounds, p.X, p.Y, p.Z)
	}
	return nil
}

// Region is one stored (reference point, extent, payload) entry.
type Region[V any] struct {
	Coords  geom.Point
	Extent  geom.Box
	Payload V
}

// Insert adds a region with reference point p, extent box and payload
// data. Fails with ErrOutOfBounds if p lies outside Bounds(), or
// btree.ErrDuplicateKey if p already names a stored region.
func (o *BlobOctree[V]) Insert(p geom.Point, extent geom.Box, data V) error {
	if err := o.checkBounds(p); err != nil {
		return err
	}
	next, err := o.tree.Insert(o.bounds, p, extent, data)
	if err != nil {
		return err
	}
	o.tree = next
	return nil
}

// Update adds or overwrites the region at reference point p. Fails with
// ErrOutOfBounds if p lies outside Bounds().
func (o *BlobOctree[V]) Update(p geom.Point, extent geom.Box, data V) error {
	if err := o.checkBounds(p); err != nil {
		return err
	}
	o.tree = o.tree.Update(o.bounds, p, extent, data, true)
	return nil
}

// Extend inserts every region in items, stopping and returning the
// first error encountered.
func (o *BlobOctree[V]) Extend(items []Region[V]) error {
	for _, it := range items {
		if err := o.Insert(it.Coords, it.Extent, it.Payload); err != nil {
			return err
		}
	}
	return nil
}

// All calls fn for every stored (reference point, extent, payload)
// triple, in canonical octant order.
func (o *BlobOctree[V]) All(fn func(geom.Point, geom.Box, V)) {
	o.tree.Each(fn)
}
