package btree

import "github.com/arborix/octree3d/geom"

// emptyTree is the zero-element variant, on the same rationale as
// ptree.emptyTree: a fresh zero-size value per call, all behaviorally
// identical.
type emptyTree[V any] struct{}

// Empty returns the empty blob-tree for payload type V.
func Empty[V any]() Tree[V] {
	return emptyTree[V]{}
}

func (emptyTree[V]) Len() int { return 0 }

func (emptyTree[V]) Extent() (geom.Box, bool) { return geom.Box{}, false }

func (emptyTree[V]) Get(_ geom.Box, _ geom.Point, dflt V) V { return dflt }

func (e emptyTree[V]) Insert(bounds geom.Box, p geom.Point, extent geom.Box, data V) (Tree[V], error) {
	return Singleton(p, extent, data), nil
}

func (e emptyTree[V]) Update(_ geom.Box, p geom.Point, extent geom.Box, data V, _ bool) Tree[V] {
	return Singleton(p, extent, data)
}

func (e emptyTree[V]) Remove(_ geom.Box, _ geom.Point) (Tree[V], error) {
	return nil, ErrMissingKey
}

func (e emptyTree[V]) Union(other Tree[V], _ geom.Box, _ bool) Tree[V] {
	return other
}

func (e emptyTree[V]) Rebound(_, _ geom.Box) Tree[V] {
	return e
}

func (e emptyTree[V]) Deform(_, _ geom.Box, _ PointMap, _ BoxMap) Tree[V] {
	return e
}

func (emptyTree[V]) Enqueue(_ *Heap[V], _ geom.Box, _ PointScoreFunc, _ BoxScoreFunc) {}

func (emptyTree[V]) Each(func(geom.Point, geom.Box, V)) {}

func (emptyTree[V]) Equal(other Tree[V]) bool {
	_, ok := other.(emptyTree[V])
	return ok
}

func (e emptyTree[V]) SubsetByExtent(_ geom.Box, _ ExtentPred, _ NodePred) Tree[V] {
	return e
}

func (e emptyTree[V]) Reroot() Tree[V] { return e }
