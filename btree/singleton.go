package btree

import (
	"reflect"

	"github.com/arborix/octree3d/geom"
)

// singleton stores exactly one (coords, extent, payload) triple.
type singleton[V any] struct {
	coords geom.Point
	extent geom.Box
	data   V
}

// Singleton returns a one-element blob-tree.
func Singleton[V any](p geom.Point, extent geom.Box, data V) Tree[V] {
	return &singleton[V]{coords: p, extent: extent, data: data}
}

func (s *singleton[V]) Len() int { return 1 }

func (s *singleton[V]) Extent() (geom.Box, bool) { return s.extent, true }

func (s *singleton[V]) Get(_ geom.Box, p geom.Point, dflt V) V {
	if s.coords == p {
		return s.data
	}
	return dflt
}

func (s *singleton[V]) Insert(bounds geom.Box, p geom.Point, extent geom.Box, data V) (Tree[V], error) {
	if s.coords == p {
		return nil, ErrDuplicateKey
	}

	n, err := newNodeWith(bounds, s.coords, s.extent, s.data)
	if err != nil {
		// Unreachable: s.coords != p was just checked, and n starts empty.
		return nil, err
	}
	return n.Insert(bounds, p, extent, data)
}

func (s *singleton[V]) Update(bounds geom.Box, p geom.Point, extent geom.Box, data V, replace bool) Tree[V] {
	if s.coords == p {
		if replace {
			return Singleton(p, extent, data)
		}
		return s
	}

	n, _ := newNodeWith(bounds, s.coords, s.extent, s.data)
	return n.Update(bounds, p, extent, data, replace)
}

func (s *singleton[V]) Remove(_ geom.Box, p geom.Point) (Tree[V], error) {
	if s.coords == p {
		return Empty[V](), nil
	}
	return nil, ErrMissingKey
}

func (s *singleton[V]) Union(other Tree[V], bounds geom.Box, swapped bool) Tree[V] {
	return other.Update(bounds, s.coords, s.extent, s.data, swapped)
}

func (s *singleton[V]) Rebound(_, newBounds geom.Box) Tree[V] {
	if geom.PointInBox(s.coords, newBounds) {
		return s
	}
	return Empty[V]()
}

func (s *singleton[V]) Deform(_, newBounds geom.Box, pointFn PointMap, _ BoxMap) Tree[V] {
	coords := pointFn(s.coords)
	if geom.PointInBox(coords, newBounds) {
		return Singleton(coords, s.extent, s.data)
	}
	return Empty[V]()
}

func (s *singleton[V]) Enqueue(h *Heap[V], _ geom.Box, pointScore PointScoreFunc, _ BoxScoreFunc) {
	sc := pointScore(s.coords)
	if sc.Ok {
		h.pushPoint(sc.Value, s.coords, s.data)
	}
}

func (s *singleton[V]) Each(fn func(geom.Point, geom.Box, V)) {
	fn(s.coords, s.extent, s.data)
}

func (s *singleton[V]) Equal(other Tree[V]) bool {
	o, ok := other.(*singleton[V])
	if !ok {
		return false
	}
	return s.coords == o.coords && s.extent == o.extent && reflect.DeepEqual(s.data, o.data)
}

func (s *singleton[V]) SubsetByExtent(_ geom.Box, extentFn ExtentPred, _ NodePred) Tree[V] {
	if extentFn(s.extent) {
		return s
	}
	return Empty[V]()
}

func (s *singleton[V]) Reroot() Tree[V] { return s }

// newNodeWith builds an empty 8-way node and inserts (p, extent, data)
// into it; used whenever a Singleton must split because a second,
// distinct coordinate needs to live alongside it.
func newNodeWith[V any](bounds geom.Box, p geom.Point, extent geom.Box, data V) (Tree[V], error) {
	var empty [8]Tree[V]
	for i := range empty {
		empty[i] = Empty[V]()
	}
	n := &node[V]{content: empty}
	return n.Insert(bounds, p, extent, data)
}
