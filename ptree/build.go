package ptree

import (
	"github.com/arborix/octree3d/geom"
	"github.com/arborix/octree3d/partition"
)

// PointData pairs coordinates with a payload for bulk construction.
type PointData[V any] struct {
	Coords geom.Point
	Data   V
}

// BuildFromSlice builds a tree from items in O(n log n): items is
// recursively three-way partitioned by x, then y, then z around each
// box's centroid (the same split geom.Subboxes uses), so the result is
// structurally identical to inserting the same items one at a time via
// Tree.Insert in any order — not merely equal in content.
//
// items is not mutated; BuildFromSlice partitions a private copy.
func BuildFromSlice[V any](bounds geom.Box, items []PointData[V]) Tree[V] {
	buf := make([]PointData[V], len(items))
	copy(buf, items)
	return buildRange(bounds, buf, 0, len(buf))
}

func buildRange[V any](bounds geom.Box, buf []PointData[V], start, stop int) Tree[V] {
	switch stop - start {
	case 0:
		return Empty[V]()
	case 1:
		item := buf[start]
		return Singleton(item.Coords, item.Data)
	}

	mid := geom.Centroid(bounds)
	lowX := func(it PointData[V]) bool { return it.Coords.X < mid.X }
	lowY := func(it PointData[V]) bool { return it.Coords.Y < mid.Y }
	lowZ := func(it PointData[V]) bool { return it.Coords.Z < mid.Z }

	n4 := partition.Pivot(buf, lowX, start, stop)
	n2 := partition.Pivot(buf, lowY, start, n4)
	n6 := partition.Pivot(buf, lowY, n4, stop)
	n1 := partition.Pivot(buf, lowZ, start, n2)
	n3 := partition.Pivot(buf, lowZ, n2, n4)
	n5 := partition.Pivot(buf, lowZ, n4, n6)
	n7 := partition.Pivot(buf, lowZ, n6, stop)

	bounds8 := geom.Subboxes(bounds)
	starts := [8]int{start, n1, n2, n3, n4, n5, n6, n7}
	stops := [8]int{n1, n2, n3, n4, n5, n6, n7, stop}

	var content [8]Tree[V]
	for i := 0; i < 8; i++ {
		content[i] = buildRange(bounds8[i], buf, starts[i], stops[i])
	}

	return &node[V]{content: content}
}
